package table

import (
	"encoding/binary"
	"fmt"

	"simpledb/pager"
)

// Node type tags stored in the first byte of every page.
const (
	NodeInternal uint8 = 0
	NodeLeaf     uint8 = 1
)

// Typed reads/writes into a raw page buffer, per the layout in
// constants.go. These accessors perform no bounds checking beyond the
// declared offsets — callers are responsible for tree-level invariants.

func NodeType(page *pager.Page) uint8 {
	return page[NodeTypeOffset]
}

func SetNodeType(page *pager.Page, t uint8) {
	page[NodeTypeOffset] = t
}

func IsNodeRoot(page *pager.Page) bool {
	return page[IsRootOffset] != 0
}

func SetNodeRoot(page *pager.Page, isRoot bool) {
	if isRoot {
		page[IsRootOffset] = 1
	} else {
		page[IsRootOffset] = 0
	}
}

func NodeParent(page *pager.Page) uint32 {
	return binary.LittleEndian.Uint32(page[ParentPointerOffset : ParentPointerOffset+ParentPointerSize])
}

func SetNodeParent(page *pager.Page, parent uint32) {
	binary.LittleEndian.PutUint32(page[ParentPointerOffset:ParentPointerOffset+ParentPointerSize], parent)
}

// --- leaf node ---

func LeafNodeNumCells(page *pager.Page) uint32 {
	return binary.LittleEndian.Uint32(page[LeafNodeNumCellsOffset : LeafNodeNumCellsOffset+LeafNodeNumCellsSize])
}

func SetLeafNodeNumCells(page *pager.Page, n uint32) {
	binary.LittleEndian.PutUint32(page[LeafNodeNumCellsOffset:LeafNodeNumCellsOffset+LeafNodeNumCellsSize], n)
}

func LeafNodeNextLeaf(page *pager.Page) uint32 {
	return binary.LittleEndian.Uint32(page[LeafNodeNextLeafOffset : LeafNodeNextLeafOffset+LeafNodeNextLeafSize])
}

func SetLeafNodeNextLeaf(page *pager.Page, next uint32) {
	binary.LittleEndian.PutUint32(page[LeafNodeNextLeafOffset:LeafNodeNextLeafOffset+LeafNodeNextLeafSize], next)
}

func leafNodeCellOffset(cellNum uint32) uint32 {
	return LeafNodeHeaderSize + cellNum*LeafNodeCellSize
}

// LeafNodeCell returns the full (key, value) cell slice for cellNum.
func LeafNodeCell(page *pager.Page, cellNum uint32) []byte {
	off := leafNodeCellOffset(cellNum)
	return page[off : off+LeafNodeCellSize]
}

func LeafNodeKey(page *pager.Page, cellNum uint32) uint32 {
	off := leafNodeCellOffset(cellNum) + LeafNodeKeyOffset
	return binary.LittleEndian.Uint32(page[off : off+LeafNodeKeySize])
}

func SetLeafNodeKey(page *pager.Page, cellNum uint32, key uint32) {
	off := leafNodeCellOffset(cellNum) + LeafNodeKeyOffset
	binary.LittleEndian.PutUint32(page[off:off+LeafNodeKeySize], key)
}

// LeafNodeValue returns the mutable 291-byte value region of cellNum.
func LeafNodeValue(page *pager.Page, cellNum uint32) []byte {
	off := leafNodeCellOffset(cellNum) + LeafNodeValueOffset
	return page[off : off+LeafNodeValueSize]
}

// InitializeLeafNode marks a page as a non-root leaf with no cells and no
// next leaf. The parent pointer is left as it was.
func InitializeLeafNode(page *pager.Page) {
	SetNodeType(page, NodeLeaf)
	SetNodeRoot(page, false)
	SetLeafNodeNumCells(page, 0)
	SetLeafNodeNextLeaf(page, 0)
}

// --- internal node ---

func InternalNodeNumKeys(page *pager.Page) uint32 {
	return binary.LittleEndian.Uint32(page[InternalNodeNumKeysOffset : InternalNodeNumKeysOffset+InternalNodeNumKeysSize])
}

func SetInternalNodeNumKeys(page *pager.Page, n uint32) {
	binary.LittleEndian.PutUint32(page[InternalNodeNumKeysOffset:InternalNodeNumKeysOffset+InternalNodeNumKeysSize], n)
}

func InternalNodeRightChild(page *pager.Page) uint32 {
	return binary.LittleEndian.Uint32(page[InternalNodeRightChildOffset : InternalNodeRightChildOffset+InternalNodeRightChildSize])
}

func SetInternalNodeRightChild(page *pager.Page, child uint32) {
	binary.LittleEndian.PutUint32(page[InternalNodeRightChildOffset:InternalNodeRightChildOffset+InternalNodeRightChildSize], child)
}

func internalNodeCellOffset(cellNum uint32) uint32 {
	return InternalNodeHeaderSize + cellNum*InternalNodeCellSize
}

// internalNodeCellBytes returns the raw (child, key) cell slice at
// cellNum, for shifting cells during insertion. Unlike InternalNodeChild
// it never redirects to the right-child slot — callers must only use it
// for cellNum < numKeys.
func internalNodeCellBytes(page *pager.Page, cellNum uint32) []byte {
	off := internalNodeCellOffset(cellNum)
	return page[off : off+InternalNodeCellSize]
}

func InternalNodeChild(page *pager.Page, cellNum uint32) (uint32, error) {
	// The rightmost child lives outside the cell array.
	numKeys := InternalNodeNumKeys(page)
	if cellNum > numKeys {
		return 0, fmt.Errorf("%w: index %d (numKeys=%d)", ErrChildIndexOutOfBounds, cellNum, numKeys)
	}
	if cellNum == numKeys {
		return InternalNodeRightChild(page), nil
	}
	off := internalNodeCellOffset(cellNum)
	return binary.LittleEndian.Uint32(page[off : off+InternalNodeChildSize]), nil
}

func SetInternalNodeChild(page *pager.Page, cellNum uint32, child uint32) {
	numKeys := InternalNodeNumKeys(page)
	if cellNum == numKeys {
		SetInternalNodeRightChild(page, child)
		return
	}
	off := internalNodeCellOffset(cellNum)
	binary.LittleEndian.PutUint32(page[off:off+InternalNodeChildSize], child)
}

func InternalNodeKey(page *pager.Page, cellNum uint32) uint32 {
	off := internalNodeCellOffset(cellNum) + InternalNodeChildSize
	return binary.LittleEndian.Uint32(page[off : off+InternalNodeKeySize])
}

func SetInternalNodeKey(page *pager.Page, cellNum uint32, key uint32) {
	off := internalNodeCellOffset(cellNum) + InternalNodeChildSize
	binary.LittleEndian.PutUint32(page[off:off+InternalNodeKeySize], key)
}

// InitializeInternalNode marks a page as a non-root internal node with no
// keys. The parent pointer and right child are left as they were.
func InitializeInternalNode(page *pager.Page) {
	SetNodeType(page, NodeInternal)
	SetNodeRoot(page, false)
	SetInternalNodeNumKeys(page, 0)
}

// GetNodeMaxKey returns the key of the last cell: for a leaf, its largest
// key; for an internal node, its last separator key (keys under the
// right child are not consulted). Behavior is undefined on an empty node.
func GetNodeMaxKey(page *pager.Page) uint32 {
	if NodeType(page) == NodeLeaf {
		return LeafNodeKey(page, LeafNodeNumCells(page)-1)
	}
	return InternalNodeKey(page, InternalNodeNumKeys(page)-1)
}
