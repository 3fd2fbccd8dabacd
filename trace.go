package dyckprng

import (
	"fmt"
	"io"
	"os"
)

// debugEnabled controls whether tracing is enabled via the DYCKPRNG_DEBUG env var
var debugEnabled = os.Getenv("DYCKPRNG_DEBUG") == "1"

// traceOut receives trace lines. Standard output usually carries the
// generated words, so traces go to standard error.
var traceOut io.Writer = os.Stderr

// traceLog outputs a debug message if tracing is enabled
func traceLog(format string, args ...interface{}) {
	if debugEnabled {
		fmt.Fprintf(traceOut, "[TRACE] "+format+"\n", args...)
	}
}

// traceWord outputs a single 64-bit word
func traceWord(name string, value uint64) {
	if debugEnabled {
		fmt.Fprintf(traceOut, "[TRACE] %s = 0x%016x\n", name, value)
	}
}

// traceSeparator prints a visual separator in debug output
func traceSeparator(title string) {
	if debugEnabled {
		fmt.Fprintf(traceOut, "[TRACE] ========== %s ==========\n", title)
	}
}
