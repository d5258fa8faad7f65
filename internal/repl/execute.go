package repl

import (
	"fmt"
	"io"

	"simpledb/table"
)

type executeResult int

const (
	executeSuccess executeResult = iota
	executeDuplicateKey
)

// executeInsert detects a duplicate key via the cursor Find already
// produced, then inserts. A fatal error here (I/O failure, internal
// node overflow, ...) propagates up to the REPL loop, which terminates
// the process.
func executeInsert(tbl *table.Table, stmt statement) (executeResult, error) {
	cursor, err := tbl.Find(stmt.key)
	if err != nil {
		return 0, err
	}

	page, err := tbl.Pager.GetPage(cursor.PageNum)
	if err != nil {
		return 0, err
	}
	if cursor.CellNum < table.LeafNodeNumCells(page) {
		if existing := table.LeafNodeKey(page, cursor.CellNum); existing == stmt.key {
			return executeDuplicateKey, nil
		}
	}

	if err := tbl.LeafNodeInsert(cursor, stmt.key, stmt.row); err != nil {
		return 0, err
	}
	return executeSuccess, nil
}

// executeSelect prints every row in ascending key order.
func executeSelect(tbl *table.Table, out io.Writer) error {
	cursor, err := tbl.Start()
	if err != nil {
		return err
	}
	for !cursor.EndOfTable {
		value, err := cursor.Value()
		if err != nil {
			return err
		}
		row, err := table.DeserializeRow(value)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "(%d, %s, %s )\n", row.ID, row.Username, row.Email)
		if err := cursor.Advance(); err != nil {
			return err
		}
	}
	return nil
}
