package pager

import (
	"errors"
	"os"
	"testing"
)

func tempDBPath(t *testing.T) string {
	t.Helper()
	f, err := os.CreateTemp("", "pager_test_*.db")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	path := f.Name()
	f.Close()
	t.Cleanup(func() { os.Remove(path) })
	return path
}

func TestOpenEmptyFile(t *testing.T) {
	path := tempDBPath(t)
	p, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer p.Close()

	if p.NumPages != 0 {
		t.Errorf("NumPages = %d, want 0", p.NumPages)
	}
}

func TestOpenRejectsCorruptLength(t *testing.T) {
	path := tempDBPath(t)
	if err := os.WriteFile(path, make([]byte, PageSize+17), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := Open(path)
	if !errors.Is(err, ErrCorruptFile) {
		t.Fatalf("Open: got %v, want ErrCorruptFile", err)
	}
}

func TestGetPageGrowsNumPages(t *testing.T) {
	path := tempDBPath(t)
	p, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer p.Close()

	if _, err := p.GetPage(0); err != nil {
		t.Fatalf("GetPage(0): %v", err)
	}
	if p.NumPages != 1 {
		t.Errorf("NumPages = %d, want 1", p.NumPages)
	}

	if _, err := p.GetPage(3); err != nil {
		t.Fatalf("GetPage(3): %v", err)
	}
	if p.NumPages != 4 {
		t.Errorf("NumPages = %d, want 4", p.NumPages)
	}
}

func TestGetPageOutOfBounds(t *testing.T) {
	path := tempDBPath(t)
	p, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer p.Close()

	if _, err := p.GetPage(TableMaxPages); !errors.Is(err, ErrPageOutOfBounds) {
		t.Fatalf("GetPage(%d): got %v, want ErrPageOutOfBounds", TableMaxPages, err)
	}
}

func TestFlushNotResident(t *testing.T) {
	path := tempDBPath(t)
	p, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer p.Close()

	if err := p.Flush(5); !errors.Is(err, ErrPageNotResident) {
		t.Fatalf("Flush(5): got %v, want ErrPageNotResident", err)
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := tempDBPath(t)
	p, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	page, err := p.GetPage(0)
	if err != nil {
		t.Fatalf("GetPage(0): %v", err)
	}
	page[0] = 0xAB
	page[PageSize-1] = 0xCD
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	p2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer p2.Close()

	if p2.NumPages != 1 {
		t.Fatalf("NumPages after reopen = %d, want 1", p2.NumPages)
	}
	page2, err := p2.GetPage(0)
	if err != nil {
		t.Fatalf("GetPage(0) after reopen: %v", err)
	}
	if page2[0] != 0xAB || page2[PageSize-1] != 0xCD {
		t.Errorf("page contents not persisted: got %x/%x", page2[0], page2[PageSize-1])
	}
}
