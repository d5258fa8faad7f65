package table

import (
	"unsafe"

	"simpledb/pager"
)

// Row layout. id/username/email are fixed offsets within the 291-byte
// value region; a layout change here breaks every file written with
// the old offsets.
const (
	ColumnUsernameSize = 32
	// ColumnEmailSize is 253, not the 255 named in the validation gate
	// bug fix: the on-disk row is fixed at 291 bytes (id@0, username@4,
	// email@37 per the layout this format is pinned to), which leaves a
	// 254-byte email zone including its NUL terminator. See DESIGN.md
	// for why the storage layout wins over the descriptive "255" figure.
	ColumnEmailSize = 253

	IDSize       = uint32(unsafe.Sizeof(uint32(0)))
	UsernameSize = uint32(ColumnUsernameSize + 1) // +1 NUL terminator
	EmailSize    = uint32(ColumnEmailSize + 1)

	IDOffset       = uint32(0)
	UsernameOffset = IDOffset + IDSize
	EmailOffset    = UsernameOffset + UsernameSize

	RowSize = EmailOffset + EmailSize
)

// Common node header: every page starts with these fields regardless of
// node type.
const (
	NodeTypeSize        = uint32(unsafe.Sizeof(uint8(0)))
	NodeTypeOffset      = uint32(0)
	IsRootSize          = uint32(unsafe.Sizeof(uint8(0)))
	IsRootOffset        = NodeTypeOffset + NodeTypeSize
	ParentPointerSize   = uint32(unsafe.Sizeof(uint32(0)))
	ParentPointerOffset = IsRootOffset + IsRootSize

	CommonNodeHeaderSize = NodeTypeOffset + NodeTypeSize + IsRootSize + ParentPointerSize
)

// Leaf node header and body layout.
const (
	LeafNodeNumCellsSize   = uint32(unsafe.Sizeof(uint32(0)))
	LeafNodeNumCellsOffset = CommonNodeHeaderSize
	LeafNodeNextLeafSize   = uint32(unsafe.Sizeof(uint32(0)))
	LeafNodeNextLeafOffset = LeafNodeNumCellsOffset + LeafNodeNumCellsSize

	LeafNodeHeaderSize = LeafNodeNextLeafOffset + LeafNodeNextLeafSize

	LeafNodeKeySize    = uint32(unsafe.Sizeof(uint32(0)))
	LeafNodeKeyOffset  = uint32(0)
	LeafNodeValueSize  = RowSize
	LeafNodeValueOffset = LeafNodeKeyOffset + LeafNodeKeySize
	LeafNodeCellSize   = LeafNodeKeySize + LeafNodeValueSize

	LeafNodeSpaceForCells = uint32(pager.PageSize) - LeafNodeHeaderSize
	LeafNodeMaxCells      = LeafNodeSpaceForCells / LeafNodeCellSize

	// LeafNodeRightSplitCount and LeafNodeLeftSplitCount distribute
	// MAX_CELLS+1 cells across the two leaves produced by a split.
	LeafNodeRightSplitCount = (LeafNodeMaxCells + 1) / 2
	LeafNodeLeftSplitCount  = (LeafNodeMaxCells + 1) - LeafNodeRightSplitCount
)

// Internal node header and body layout. Kept deliberately small
// (INTERNAL_NODE_MAX_CELLS = 3) to exercise splits in testing, matching
// the source this design is based on.
const (
	InternalNodeNumKeysSize     = uint32(unsafe.Sizeof(uint32(0)))
	InternalNodeNumKeysOffset   = CommonNodeHeaderSize
	InternalNodeRightChildSize  = uint32(unsafe.Sizeof(uint32(0)))
	InternalNodeRightChildOffset = InternalNodeNumKeysOffset + InternalNodeNumKeysSize

	InternalNodeHeaderSize = InternalNodeRightChildOffset + InternalNodeRightChildSize

	InternalNodeKeySize    = uint32(unsafe.Sizeof(uint32(0)))
	InternalNodeChildSize  = uint32(unsafe.Sizeof(uint32(0)))
	InternalNodeCellSize   = InternalNodeChildSize + InternalNodeKeySize

	InternalNodeMaxCells = 3
)
