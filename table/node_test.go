package table

import (
	"errors"
	"testing"

	"simpledb/pager"
)

func TestLeafNodeAccessorsRoundTrip(t *testing.T) {
	page := &pager.Page{}
	InitializeLeafNode(page)

	if NodeType(page) != NodeLeaf {
		t.Fatalf("NodeType = %d, want NodeLeaf", NodeType(page))
	}
	if IsNodeRoot(page) {
		t.Fatalf("fresh leaf should not be root")
	}

	SetLeafNodeNumCells(page, 2)
	SetLeafNodeKey(page, 0, 10)
	SetLeafNodeKey(page, 1, 20)
	row := Row{ID: 20, Username: "bob", Email: "bob@example.com"}
	if err := SerializeRow(row, LeafNodeValue(page, 1)); err != nil {
		t.Fatalf("SerializeRow: %v", err)
	}

	if got := LeafNodeNumCells(page); got != 2 {
		t.Errorf("LeafNodeNumCells = %d, want 2", got)
	}
	if got := LeafNodeKey(page, 0); got != 10 {
		t.Errorf("LeafNodeKey(0) = %d, want 10", got)
	}
	if got := GetNodeMaxKey(page); got != 20 {
		t.Errorf("GetNodeMaxKey = %d, want 20", got)
	}

	got, err := DeserializeRow(LeafNodeValue(page, 1))
	if err != nil {
		t.Fatalf("DeserializeRow: %v", err)
	}
	if got != row {
		t.Errorf("round trip row = %+v, want %+v", got, row)
	}
}

func TestLeafNodeNextLeafSentinel(t *testing.T) {
	page := &pager.Page{}
	InitializeLeafNode(page)
	if got := LeafNodeNextLeaf(page); got != 0 {
		t.Errorf("fresh leaf NextLeaf = %d, want 0 (sentinel)", got)
	}
	SetLeafNodeNextLeaf(page, 5)
	if got := LeafNodeNextLeaf(page); got != 5 {
		t.Errorf("NextLeaf = %d, want 5", got)
	}
}

func TestInternalNodeAccessorsRoundTrip(t *testing.T) {
	page := &pager.Page{}
	InitializeInternalNode(page)

	SetInternalNodeNumKeys(page, 2)
	SetInternalNodeChild(page, 0, 1)
	SetInternalNodeKey(page, 0, 100)
	SetInternalNodeChild(page, 1, 2)
	SetInternalNodeKey(page, 1, 200)
	SetInternalNodeRightChild(page, 3)

	if got := InternalNodeNumKeys(page); got != 2 {
		t.Errorf("InternalNodeNumKeys = %d, want 2", got)
	}
	if got, err := InternalNodeChild(page, 0); err != nil || got != 1 {
		t.Errorf("InternalNodeChild(0) = %d, %v, want 1, nil", got, err)
	}
	if got, err := InternalNodeChild(page, 2); err != nil || got != 3 {
		t.Errorf("InternalNodeChild(2) [right child] = %d, %v, want 3, nil", got, err)
	}
	if got := GetNodeMaxKey(page); got != 200 {
		t.Errorf("GetNodeMaxKey = %d, want 200", got)
	}
}

func TestInternalNodeChildOutOfBounds(t *testing.T) {
	page := &pager.Page{}
	InitializeInternalNode(page)
	SetInternalNodeNumKeys(page, 2)

	if _, err := InternalNodeChild(page, 3); !errors.Is(err, ErrChildIndexOutOfBounds) {
		t.Fatalf("InternalNodeChild(3): got %v, want ErrChildIndexOutOfBounds", err)
	}
}

func TestNodeParentAndRootFlag(t *testing.T) {
	page := &pager.Page{}
	InitializeLeafNode(page)
	SetNodeRoot(page, true)
	SetNodeParent(page, 42)

	if !IsNodeRoot(page) {
		t.Error("IsNodeRoot = false, want true")
	}
	if got := NodeParent(page); got != 42 {
		t.Errorf("NodeParent = %d, want 42", got)
	}
}
