// Command bemestar drives a rule-based well-being session from the command
// line. Every invocation starts a fresh in-memory session, runs one
// operation and prints the result as JSON.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
