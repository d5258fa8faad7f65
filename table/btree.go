package table

import (
	"fmt"
	"sort"

	"simpledb/pager"
)

// Table owns a pager and the tree's root page number. The root is
// always page 0 in this design: the tree never relocates its root
// page, only its contents (leaf -> internal, on the first split).
type Table struct {
	Pager       *pager.Pager
	RootPageNum uint32
}

// Open opens the database file at path, initializing a fresh empty leaf
// root if the file has no pages yet.
func Open(path string) (*Table, error) {
	pg, err := pager.Open(path)
	if err != nil {
		return nil, err
	}
	t := &Table{Pager: pg, RootPageNum: 0}
	if pg.NumPages == 0 {
		root, err := pg.GetPage(0)
		if err != nil {
			return nil, err
		}
		InitializeLeafNode(root)
		SetNodeRoot(root, true)
	}
	return t, nil
}

// Close flushes every resident page and closes the backing file.
func (t *Table) Close() error {
	return t.Pager.Close()
}

// Find descends from the root to the leaf that contains key, or the
// leaf where key would be inserted. It does not set Cursor.EndOfTable;
// only Start does that.
func (t *Table) Find(key uint32) (*Cursor, error) {
	return t.findFrom(t.RootPageNum, key)
}

func (t *Table) findFrom(pageNum uint32, key uint32) (*Cursor, error) {
	page, err := t.Pager.GetPage(pageNum)
	if err != nil {
		return nil, err
	}
	if NodeType(page) == NodeLeaf {
		numCells := LeafNodeNumCells(page)
		idx := sort.Search(int(numCells), func(i int) bool {
			return LeafNodeKey(page, uint32(i)) >= key
		})
		return &Cursor{Table: t, PageNum: pageNum, CellNum: uint32(idx)}, nil
	}

	childIndex := internalNodeFindChildIndex(page, key)
	childPageNum, err := InternalNodeChild(page, childIndex)
	if err != nil {
		return nil, err
	}
	return t.findFrom(childPageNum, key)
}

// internalNodeFindChildIndex returns the smallest cell index whose key
// is >= key (or numKeys if none), the same search used to pick a child
// during descent and to relocate a separator during an update.
func internalNodeFindChildIndex(page *pager.Page, key uint32) uint32 {
	numKeys := InternalNodeNumKeys(page)
	idx := sort.Search(int(numKeys), func(i int) bool {
		return InternalNodeKey(page, uint32(i)) >= key
	})
	return uint32(idx)
}

// Start returns a cursor positioned at the leftmost leaf's first cell.
func (t *Table) Start() (*Cursor, error) {
	cursor, err := t.Find(0)
	if err != nil {
		return nil, err
	}
	page, err := t.Pager.GetPage(cursor.PageNum)
	if err != nil {
		return nil, err
	}
	cursor.EndOfTable = LeafNodeNumCells(page) == 0
	return cursor, nil
}

// LeafNodeInsert inserts (key, row) at cursor's position. cursor must
// come from Find(key); the caller is responsible for duplicate
// detection before calling this (see repl.executeInsert).
func (t *Table) LeafNodeInsert(cursor *Cursor, key uint32, row Row) error {
	page, err := t.Pager.GetPage(cursor.PageNum)
	if err != nil {
		return err
	}
	numCells := LeafNodeNumCells(page)
	if numCells >= LeafNodeMaxCells {
		return t.leafNodeSplitAndInsert(cursor, key, row)
	}

	for i := numCells; i > cursor.CellNum; i-- {
		copy(LeafNodeCell(page, i), LeafNodeCell(page, i-1))
	}
	SetLeafNodeNumCells(page, numCells+1)
	SetLeafNodeKey(page, cursor.CellNum, key)
	return SerializeRow(row, LeafNodeValue(page, cursor.CellNum))
}

// leafNodeSplitAndInsert splits a full leaf, distributing its
// LeafNodeMaxCells existing cells plus the new one across the old leaf
// and a freshly allocated sibling, then repairs the parent (or grows a
// new root if the leaf had none).
func (t *Table) leafNodeSplitAndInsert(cursor *Cursor, key uint32, row Row) error {
	oldPageNum := cursor.PageNum
	oldPage, err := t.Pager.GetPage(oldPageNum)
	if err != nil {
		return err
	}
	oldMax := GetNodeMaxKey(oldPage)

	newPageNum := t.Pager.UnusedPageNum()
	newPage, err := t.Pager.GetPage(newPageNum)
	if err != nil {
		return err
	}
	InitializeLeafNode(newPage)
	SetNodeParent(newPage, NodeParent(oldPage))
	SetLeafNodeNextLeaf(newPage, LeafNodeNextLeaf(oldPage))
	SetLeafNodeNextLeaf(oldPage, newPageNum)

	var rowBuf [RowSize]byte
	if err := SerializeRow(row, rowBuf[:]); err != nil {
		return err
	}

	// Snapshot the old leaf's cells before redistributing: the loop
	// below writes into oldPage at the same indices it reads from.
	var oldCells [LeafNodeMaxCells][]byte
	for i := uint32(0); i < LeafNodeMaxCells; i++ {
		buf := make([]byte, LeafNodeCellSize)
		copy(buf, LeafNodeCell(oldPage, i))
		oldCells[i] = buf
	}

	for i := int(LeafNodeMaxCells); i >= 0; i-- {
		dest := oldPage
		if uint32(i) >= LeafNodeLeftSplitCount {
			dest = newPage
		}
		destIdx := uint32(i) % LeafNodeLeftSplitCount

		switch {
		case uint32(i) == cursor.CellNum:
			SetLeafNodeKey(dest, destIdx, key)
			copy(LeafNodeValue(dest, destIdx), rowBuf[:])
		case uint32(i) > cursor.CellNum:
			copy(LeafNodeCell(dest, destIdx), oldCells[i-1])
		default:
			copy(LeafNodeCell(dest, destIdx), oldCells[i])
		}
	}

	SetLeafNodeNumCells(oldPage, LeafNodeLeftSplitCount)
	SetLeafNodeNumCells(newPage, LeafNodeMaxCells+1-LeafNodeLeftSplitCount)

	if IsNodeRoot(oldPage) {
		return t.createNewRoot(newPageNum)
	}

	parentPageNum := NodeParent(oldPage)
	parentPage, err := t.Pager.GetPage(parentPageNum)
	if err != nil {
		return err
	}
	newMax := GetNodeMaxKey(oldPage)
	updateInternalNodeKey(parentPage, oldMax, newMax)
	return t.internalNodeInsert(parentPageNum, newPageNum)
}

// createNewRoot relocates the current root's contents to a freshly
// allocated left child, then re-initializes the root page as an
// internal node with one key and the given right child. This is the
// only place the tree grows in height.
func (t *Table) createNewRoot(rightChildPageNum uint32) error {
	root, err := t.Pager.GetPage(t.RootPageNum)
	if err != nil {
		return err
	}
	rightChild, err := t.Pager.GetPage(rightChildPageNum)
	if err != nil {
		return err
	}

	leftChildPageNum := t.Pager.UnusedPageNum()
	leftChild, err := t.Pager.GetPage(leftChildPageNum)
	if err != nil {
		return err
	}

	*leftChild = *root
	SetNodeRoot(leftChild, false)

	InitializeInternalNode(root)
	SetNodeRoot(root, true)
	SetInternalNodeNumKeys(root, 1)
	SetInternalNodeChild(root, 0, leftChildPageNum)
	SetInternalNodeKey(root, 0, GetNodeMaxKey(leftChild))
	SetInternalNodeRightChild(root, rightChildPageNum)

	SetNodeParent(leftChild, t.RootPageNum)
	SetNodeParent(rightChild, t.RootPageNum)
	return nil
}

// internalNodeInsert inserts a separator for childPageNum into the
// parent at parentPageNum. It does not implement splitting an overflowing
// internal node isn't implemented; that path fails fatally.
func (t *Table) internalNodeInsert(parentPageNum, childPageNum uint32) error {
	parent, err := t.Pager.GetPage(parentPageNum)
	if err != nil {
		return err
	}
	child, err := t.Pager.GetPage(childPageNum)
	if err != nil {
		return err
	}
	childMax := GetNodeMaxKey(child)
	index := internalNodeFindChildIndex(parent, childMax)

	origNumKeys := InternalNodeNumKeys(parent)
	if origNumKeys >= InternalNodeMaxCells {
		return fmt.Errorf("%w: page %d has %d keys", ErrInternalNodeFull, parentPageNum, origNumKeys)
	}
	SetInternalNodeNumKeys(parent, origNumKeys+1)

	rightChildPageNum := InternalNodeRightChild(parent)
	rightChild, err := t.Pager.GetPage(rightChildPageNum)
	if err != nil {
		return err
	}

	if childMax > GetNodeMaxKey(rightChild) {
		// The new child becomes the right child; the old right child is
		// demoted into the newly opened cell.
		SetInternalNodeChild(parent, origNumKeys, rightChildPageNum)
		SetInternalNodeKey(parent, origNumKeys, GetNodeMaxKey(rightChild))
		SetInternalNodeRightChild(parent, childPageNum)
		return nil
	}

	for i := origNumKeys; i > index; i-- {
		copy(internalNodeCellBytes(parent, i), internalNodeCellBytes(parent, i-1))
	}
	SetInternalNodeChild(parent, index, childPageNum)
	SetInternalNodeKey(parent, index, childMax)
	return nil
}

// updateInternalNodeKey repairs the separator that pointed at oldKey
// (a leaf's pre-split max) to point at newKey (its post-split max),
// using the same search that locates a child by key.
func updateInternalNodeKey(page *pager.Page, oldKey, newKey uint32) {
	idx := internalNodeFindChildIndex(page, oldKey)
	SetInternalNodeKey(page, idx, newKey)
}
