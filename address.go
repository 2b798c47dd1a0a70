package smpp

import "fmt"

// TON is the type-of-number octet of an SMPP address.
type TON uint8

const (
	TONUnknown          TON = 0x00
	TONInternational    TON = 0x01
	TONNational         TON = 0x02
	TONNetworkSpecific  TON = 0x03
	TONSubscriberNumber TON = 0x04
	TONAlphanumeric     TON = 0x05
	TONAbbreviated      TON = 0x06
)

// NPI is the numbering-plan-indicator octet of an SMPP address.
type NPI uint8

const (
	NPIUnknown    NPI = 0x00
	NPIISDN       NPI = 0x01 // E.163/E.164
	NPIData       NPI = 0x03 // X.121
	NPITelex      NPI = 0x04 // F.69
	NPILandMobile NPI = 0x06 // E.212
	NPINational   NPI = 0x08
	NPIPrivate    NPI = 0x09
	NPIERMES      NPI = 0x0a
	NPIInternet   NPI = 0x0e // IP
	NPIWAP        NPI = 0x12 // WAP client id
)

// Address is a source or destination address: TON, NPI and the address digits. The
// zero value is the empty address sent as three null octets. TON and NPI values are
// carried as read, known or not.
type Address struct {
	TON    TON
	NPI    NPI
	Digits string
}

// IsEmpty reports whether a is the empty address.
func (a Address) IsEmpty() bool {
	return a == Address{}
}

func (a Address) String() string {
	return fmt.Sprintf("%d/%d/%s", a.TON, a.NPI, a.Digits)
}
