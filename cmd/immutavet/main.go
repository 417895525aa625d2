// Command immutavet runs the immutability rules as a standard multichecker,
// so they compose with other go/analysis drivers and flags.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/comalice/immutalint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
