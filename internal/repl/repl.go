// Package repl implements the line-oriented command loop: dot-prefixed
// meta-commands and the insert/select statement grammar, dispatching
// into the table package for everything that touches storage.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"simpledb/table"
)

// fatalLog is where every fatal engine-level diagnostic raised inside the
// loop goes: I/O failures, an internal node that can't hold another
// separator, a child index past the end of a node. These never reach
// the REPL's own output stream, since that's where row data is printed.
// Failures opening the file (including a corrupt file) happen before Run
// and are reported by cmd/simpledb.
var fatalLog = log.New(os.Stderr, "simpledb: ", log.LstdFlags)

// Run reads lines from in until ".exit" or EOF, writing prompts and
// output to out. It returns 0 on a clean ".exit"; a fatal engine-level
// error terminates the process via fatalLog instead of returning.
func Run(in io.Reader, out io.Writer, tbl *table.Table) int {
	reader := bufio.NewReader(in)

	for {
		fmt.Fprint(out, "db > ")

		line, err := readLine(reader)
		if err != nil {
			if err == io.EOF {
				return 0
			}
			fatalLog.Fatalf("error reading input: %v", err)
		}
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			switch handleMetaCommand(line, out) {
			case metaCommandExit:
				if err := tbl.Close(); err != nil {
					fatalLog.Fatalf("error closing database: %v", err)
				}
				return 0
			case metaCommandSuccess, metaCommandUnrecognized:
				continue
			}
		}

		stmt, result := prepareStatement(line)
		switch result {
		case prepareNegativeID:
			fmt.Fprintln(out, "ID must be positive.")
			continue
		case prepareStringTooLong:
			fmt.Fprintln(out, "string is too long")
			continue
		case prepareSyntaxError:
			fmt.Fprintf(out, "Unrecognized keyword at start of '%s'.\n", line)
			continue
		case prepareUnrecognizedStatement:
			fmt.Fprintf(out, "Unrecognized keyword at start of '%s'.\n", line)
			continue
		}

		switch stmt.kind {
		case statementInsert:
			execResult, err := executeInsert(tbl, stmt)
			if err != nil {
				fatalLog.Fatalf("insert failed: %v", err)
			}
			if execResult == executeDuplicateKey {
				fmt.Fprintln(out, "ERROR: Duplicate key.")
				continue
			}
			fmt.Fprintln(out, "Executed.")
		case statementSelect:
			if err := executeSelect(tbl, out); err != nil {
				fatalLog.Fatalf("select failed: %v", err)
			}
			fmt.Fprintln(out, "Executed.")
		}
	}
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
