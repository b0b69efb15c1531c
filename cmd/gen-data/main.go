// Command gen-data writes a synthetic movie dataset CSV for demos and
// local runs.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/okian/reel/internal/datagen"
)

var (
	flagOut     = flag.String("out", "movies.csv", "Output CSV path")
	flagCount   = flag.Int("count", 60, "Number of rows to generate")
	flagSeed    = flag.Int64("seed", 1, "Random seed for reproducible output")
	flagSubject = flag.String("subject", "Nicolas Cage", "Actor present in every cast")
)

func main() {
	flag.Parse()

	g := datagen.New(
		datagen.WithSeed(*flagSeed),
		datagen.WithCount(*flagCount),
		datagen.WithSubject(*flagSubject),
	)

	f, err := os.Create(*flagOut)
	if err != nil {
		fmt.Fprintln(os.Stderr, "create output:", err)
		os.Exit(1)
	}
	defer f.Close() //nolint:errcheck // best effort on exit

	rows := g.Rows()
	if err := datagen.WriteCSV(f, rows); err != nil {
		fmt.Fprintln(os.Stderr, "write csv:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d rows to %s\n", len(rows), *flagOut)
}
