// Command immutablecheck is a linter that proves types marked
// //immutablecheck:immutable are deeply immutable.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/mpyw/immutablecheck"
)

func main() {
	singlechecker.Main(immutablecheck.Analyzer)
}
