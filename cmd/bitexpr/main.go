// Command bitexpr evaluates boolean expressions over bit vectors, such as
// `~1010 -> 0110` or `1011 & 1100`.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errNoResult) {
			fmt.Fprintf(os.Stderr, "bitexpr: %v\n", err)
		}
		os.Exit(1)
	}
}
