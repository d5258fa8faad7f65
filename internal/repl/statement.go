package repl

import (
	"strconv"
	"strings"

	"simpledb/table"
)

type statementType int

const (
	statementInsert statementType = iota
	statementSelect
)

// prepareResult mirrors the user-level, recoverable outcomes of parsing
// a line into a statement.
type prepareResult int

const (
	prepareSuccess prepareResult = iota
	prepareNegativeID
	prepareStringTooLong
	prepareSyntaxError
	prepareUnrecognizedStatement
)

type statement struct {
	kind statementType
	key  uint32
	row  table.Row
}

// prepareStatement parses a single input line into a statement. It
// never touches the table; syntax and field-length validation happen
// here so execute* only sees well-formed statements.
func prepareStatement(line string) (statement, prepareResult) {
	if strings.HasPrefix(line, "insert") {
		return prepareInsert(line)
	}
	if line == "select" {
		return statement{kind: statementSelect}, prepareSuccess
	}
	return statement{}, prepareUnrecognizedStatement
}

func prepareInsert(line string) (statement, prepareResult) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return statement{}, prepareSyntaxError
	}

	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return statement{}, prepareSyntaxError
	}
	if id < 0 {
		return statement{}, prepareNegativeID
	}

	username, email := fields[2], fields[3]
	if len(username) > table.ColumnUsernameSize || len(email) > table.ColumnEmailSize {
		return statement{}, prepareStringTooLong
	}

	return statement{
		kind: statementInsert,
		key:  uint32(id),
		row:  table.Row{ID: uint32(id), Username: username, Email: email},
	}, prepareSuccess
}
