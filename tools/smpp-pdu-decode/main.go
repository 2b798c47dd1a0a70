package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/smpp-go/smpp"
)

var (
	layoutFlag = flag.String(
		"layout",
		"",
		"Comma separated body fields to read after the header: cstring, uint1, uint2, uint4, address, date, bytes:N, string:N.",
	)
	trailing = flag.Bool(
		"allow-trailing",
		false,
		"Accept PDUs with bytes left over after the last -layout field.",
	)
	maxPDUSize = flag.Int(
		"max-pdu-size",
		64*1024,
		"The largest PDU, in bytes, that will be decoded.",
	)
	verbose = flag.Bool(
		"verbose",
		false,
		"Turn on logging of the smpp package.",
	)
)

type result struct {
	hex    string
	header *smpp.Header
	pdu    *layoutPDU
}

func main() {
	flag.Parse()

	if *verbose {
		smpp.Logger = log.New(os.Stderr, "[smpp] ", log.LstdFlags)
		smpp.DebugLogger = smpp.Logger
	}

	layout, err := parseLayout(*layoutFlag)
	if err != nil {
		printUsageErrorAndExit(err.Error())
	}

	config := smpp.NewConfig()
	config.MaxPDUSize = *maxPDUSize
	config.AllowTrailingBytes = *trailing
	if err := config.Validate(); err != nil {
		printUsageErrorAndExit(err.Error())
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs, err = readLines(os.Stdin)
		if err != nil {
			printErrorAndExit(69, "Failed to read stdin: %s", err)
		}
	}

	results, err := decodeAll(inputs, layout, config)
	for _, r := range results {
		if r != nil {
			printResult(os.Stdout, r)
		}
	}
	if err != nil {
		printErrorAndExit(65, "%s", err)
	}
}

// decodeAll decodes every input on its own Decoder. Results keep the order of inputs;
// entries for PDUs that failed are nil and their errors are combined in the returned error.
func decodeAll(inputs []string, layout []field, config *smpp.Config) ([]*result, error) {
	results := make([]*result, len(inputs))
	errs := make([]error, len(inputs))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			r, err := decodeOne(in, layout, config)
			if err != nil {
				errs[i] = fmt.Errorf("pdu %d: %w", i, err)
				return nil
			}
			results[i] = r
			return nil
		})
	}
	_ = g.Wait()

	var merr *multierror.Error
	for _, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	return results, merr.ErrorOrNil()
}

func decodeOne(in string, layout []field, config *smpp.Config) (*result, error) {
	buf, err := hex.DecodeString(strings.Join(strings.Fields(in), ""))
	if err != nil {
		return nil, err
	}

	header, err := smpp.DecodeHeader(buf, config)
	if err != nil {
		return nil, err
	}

	pdu := &layoutPDU{layout: layout}
	if err := smpp.Decode(buf, pdu, config); err != nil {
		return nil, err
	}
	return &result{hex: in, header: header, pdu: pdu}, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

func printResult(w io.Writer, r *result) {
	h := r.header
	fmt.Fprintf(w, "%s length=%d status=0x%08x sequence=%d\n",
		h.CommandID, h.CommandLength, h.CommandStatus, h.SequenceNumber)
	for i, v := range r.pdu.values {
		if v == nil {
			v = "<absent>"
		}
		fmt.Fprintf(w, "  %2d %-10s %v\n", i, r.pdu.layout[i], v)
	}
}

func printErrorAndExit(code int, format string, values ...interface{}) {
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", fmt.Sprintf(format, values...))
	fmt.Fprintln(os.Stderr)
	os.Exit(code)
}

func printUsageErrorAndExit(message string) {
	fmt.Fprintln(os.Stderr, "ERROR:", message)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Available command line options:")
	flag.PrintDefaults()
	os.Exit(64)
}
