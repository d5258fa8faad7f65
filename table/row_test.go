package table

import "testing"

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	row := Row{ID: 7, Username: "alice", Email: "alice@example.com"}
	var buf [RowSize]byte
	if err := SerializeRow(row, buf[:]); err != nil {
		t.Fatalf("SerializeRow: %v", err)
	}
	got, err := DeserializeRow(buf[:])
	if err != nil {
		t.Fatalf("DeserializeRow: %v", err)
	}
	if got != row {
		t.Errorf("round trip = %+v, want %+v", got, row)
	}
}

func TestSerializeRowZeroPadsShortStrings(t *testing.T) {
	var buf1, buf2 [RowSize]byte
	if err := SerializeRow(Row{ID: 1, Username: "a", Email: "b"}, buf1[:]); err != nil {
		t.Fatalf("SerializeRow: %v", err)
	}
	if err := SerializeRow(Row{ID: 1, Username: "a", Email: "b"}, buf2[:]); err != nil {
		t.Fatalf("SerializeRow: %v", err)
	}
	if buf1 != buf2 {
		t.Errorf("serializing the same row twice produced different bytes")
	}
	for i := UsernameOffset + 1; i < UsernameOffset+UsernameSize; i++ {
		if buf1[i] != 0 {
			t.Errorf("byte %d = %d, want 0 (zero padding)", i, buf1[i])
		}
	}
}

func TestSerializeRowWrongLength(t *testing.T) {
	buf := make([]byte, RowSize-1)
	if err := SerializeRow(Row{}, buf); err == nil {
		t.Error("expected error for undersized buffer")
	}
}
