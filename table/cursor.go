package table

// Cursor is a transient (page, cell) position into the tree, used for
// both ordered scans and as an insertion target. A cursor returned by
// Find or Start must not be used after an Insert that might have split
// the leaf it points into.
type Cursor struct {
	Table      *Table
	PageNum    uint32
	CellNum    uint32
	EndOfTable bool
}

// Value returns the mutable 291-byte row region the cursor currently
// points at. Must not be called when the cursor is past the end of a
// leaf (CellNum == NumCells) without first inserting there.
func (c *Cursor) Value() ([]byte, error) {
	page, err := c.Table.Pager.GetPage(c.PageNum)
	if err != nil {
		return nil, err
	}
	return LeafNodeValue(page, c.CellNum), nil
}

// Key returns the key at the cursor's current cell.
func (c *Cursor) Key() (uint32, error) {
	page, err := c.Table.Pager.GetPage(c.PageNum)
	if err != nil {
		return 0, err
	}
	return LeafNodeKey(page, c.CellNum), nil
}

// Advance moves the cursor to the next cell in ascending key order,
// following the leaf sibling chain when the current leaf is exhausted.
func (c *Cursor) Advance() error {
	page, err := c.Table.Pager.GetPage(c.PageNum)
	if err != nil {
		return err
	}
	c.CellNum++
	if c.CellNum < LeafNodeNumCells(page) {
		return nil
	}

	next := LeafNodeNextLeaf(page)
	if next == 0 {
		c.EndOfTable = true
		return nil
	}
	c.PageNum = next
	c.CellNum = 0
	return nil
}
