package repl

import (
	"fmt"
	"io"

	"simpledb/table"
)

type metaCommandResult int

const (
	metaCommandSuccess metaCommandResult = iota
	metaCommandExit
	metaCommandUnrecognized
)

// handleMetaCommand dispatches a dot-prefixed line. It writes any
// user-facing output directly to out.
func handleMetaCommand(line string, out io.Writer) metaCommandResult {
	switch line {
	case ".exit":
		return metaCommandExit
	case ".constants":
		printConstants(out)
		return metaCommandSuccess
	default:
		fmt.Fprintf(out, "Unrecognized command '%s'.\n", line)
		return metaCommandUnrecognized
	}
}

func printConstants(out io.Writer) {
	fmt.Fprintf(out, "ROW_SIZE: %d\n", table.RowSize)
	fmt.Fprintf(out, "COMMON_NODE_HEADER_SIZE: %d\n", table.CommonNodeHeaderSize)
	fmt.Fprintf(out, "LEAF_NODE_HEADER_SIZE: %d\n", table.LeafNodeHeaderSize)
	fmt.Fprintf(out, "LEAF_NODE_CELL_SIZE: %d\n", table.LeafNodeCellSize)
	fmt.Fprintf(out, "LEAF_NODE_SPACE_FOR_CELLS: %d\n", table.LeafNodeSpaceForCells)
	fmt.Fprintf(out, "LEAF_NODE_MAX_CELLS: %d\n", table.LeafNodeMaxCells)
}
