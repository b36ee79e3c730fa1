// Package pagination implements keyset cursors for day-ordered listings.
package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	dayLayout = "2006-01-02"
)

var ErrMalformedCursor = errors.New("malformed cursor")

// Cursor is the (day, id) key of the last row of a page. Rows are ordered by
// day then id, both descending.
type Cursor struct {
	ID  uint
	Day time.Time
}

// Encode returns an opaque URL-safe token such as base64("2024-01-15:42").
func (c *Cursor) Encode() string {
	raw := c.Day.UTC().Format(dayLayout) + ":" + strconv.FormatUint(uint64(c.ID), 10)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a token produced by Encode. An empty token means the
// first page and yields a nil cursor.
func DecodeCursor(encoded string) (*Cursor, error) {
	if encoded == "" {
		return nil, nil
	}

	data, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(encoded, "="))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCursor, err)
	}

	day, id, ok := strings.Cut(string(data), ":")
	if !ok {
		return nil, fmt.Errorf("%w: missing separator", ErrMalformedCursor)
	}
	parsedDay, err := time.Parse(dayLayout, day)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCursor, err)
	}
	parsedID, err := strconv.ParseUint(id, 10, 64)
	if err != nil || parsedID == 0 {
		return nil, fmt.Errorf("%w: bad id %q", ErrMalformedCursor, id)
	}

	return &Cursor{ID: uint(parsedID), Day: parsedDay}, nil
}

// NormalizeLimit clamps a requested page size to [1, MaxLimit], using
// DefaultLimit for unset values.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
