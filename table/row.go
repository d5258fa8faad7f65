package table

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Row is one table record: a uint32 primary key plus two fixed-width
// text fields.
type Row struct {
	ID       uint32
	Username string
	Email    string
}

// SerializeRow copies row into dst at the fixed offsets (id@0,
// username@IDSize, email@IDSize+UsernameSize). dst must be exactly
// RowSize bytes. Strings shorter than their field are zero-padded so
// re-reading the same bytes reproduces the same row.
func SerializeRow(row Row, dst []byte) error {
	if uint32(len(dst)) != RowSize {
		return fmt.Errorf("table: SerializeRow: dst is %d bytes, want %d", len(dst), RowSize)
	}
	for i := range dst {
		dst[i] = 0
	}
	binary.LittleEndian.PutUint32(dst[IDOffset:IDOffset+IDSize], row.ID)
	copy(dst[UsernameOffset:UsernameOffset+UsernameSize], row.Username)
	copy(dst[EmailOffset:EmailOffset+EmailSize], row.Email)
	return nil
}

// DeserializeRow is the inverse of SerializeRow.
func DeserializeRow(src []byte) (Row, error) {
	if uint32(len(src)) != RowSize {
		return Row{}, fmt.Errorf("table: DeserializeRow: src is %d bytes, want %d", len(src), RowSize)
	}
	id := binary.LittleEndian.Uint32(src[IDOffset : IDOffset+IDSize])
	username := strings.TrimRight(string(src[UsernameOffset:UsernameOffset+UsernameSize]), "\x00")
	email := strings.TrimRight(string(src[EmailOffset:EmailOffset+EmailSize]), "\x00")
	return Row{ID: id, Username: username, Email: email}, nil
}
