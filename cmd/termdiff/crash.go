package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/termdiff/terminal"
)

// crashConsole restores the open console during a crash; nil when none is open
var crashConsole func() error

// handleCrash resets the terminal, prints the panic with its stack and exits
func handleCrash(r any) {
	if r == nil {
		return
	}

	if crashConsole != nil {
		crashConsole()
	}
	terminal.EmergencyReset(os.Stdout)

	// Raw mode may still be in effect on some terminals, so lines end in \r\n
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTERMDIFF CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}
