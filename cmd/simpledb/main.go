// Command simpledb is an interactive, single-table embedded database:
// a REPL over a B+ tree-indexed paged file.
package main

import (
	"fmt"
	"os"

	"simpledb/internal/repl"
	"simpledb/table"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Must supply a database filename.")
		os.Exit(1)
	}

	tbl, err := table.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "simpledb: %v\n", err)
		os.Exit(1)
	}

	os.Exit(repl.Run(os.Stdin, os.Stdout, tbl))
}
