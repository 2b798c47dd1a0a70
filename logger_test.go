package smpp

import (
	"fmt"
	"sync"
)

// recordingLogger implements StdLogger and keeps every line so tests can assert on
// what was logged.
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Print(v ...interface{}) {
	l.add(fmt.Sprint(v...))
}

func (l *recordingLogger) Printf(format string, v ...interface{}) {
	l.add(fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Println(v ...interface{}) {
	l.add(fmt.Sprintln(v...))
}

func (l *recordingLogger) add(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
}
