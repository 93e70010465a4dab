// Package pagination encodes keyset cursors for listings ordered newest
// first. Rows are ordered by (record date, created_at, id); the id breaks
// ties between rows written by the same request.
package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// Cursor is the sort key of the last row on a page. RecordDate is zero for
// listings ordered by creation time alone.
type Cursor struct {
	RecordDate time.Time
	CreatedAt  time.Time
	ID         string
}

// Encode returns the opaque nextToken for c.
func (c Cursor) Encode() string {
	raw := strings.Join([]string{c.RecordDate.Format(timeFormat), c.CreatedAt.Format(timeFormat), c.ID}, "|")
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

// Decode parses a token produced by Cursor.Encode.
func Decode(token string) (Cursor, error) {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.Split(string(raw), "|")
	if len(parts) != 3 {
		return Cursor{}, errors.New("invalid pagination token format (expected 3 fields)")
	}

	var c Cursor
	if c.RecordDate, err = time.Parse(timeFormat, parts[0]); err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (record date): %w", err)
	}
	if c.CreatedAt, err = time.Parse(timeFormat, parts[1]); err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (created_at): %w", err)
	}
	if c.ID = parts[2]; c.ID == "" {
		return Cursor{}, errors.New("invalid pagination token format (missing id)")
	}
	return c, nil
}
