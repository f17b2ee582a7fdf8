package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"log/slog"
)

// StringList is an ordered list of strings persisted as a JSON array in a TEXT column.
// Decoding never fails: NULL, empty and malformed values all become an empty list.
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("failed to encode string list: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		slog.Warn("unexpected string list column type, treating as empty", "type", fmt.Sprintf("%T", src))
		*l = StringList{}
		return nil
	}

	*l = DecodeStringList(raw)
	return nil
}

// DecodeStringList parses a JSON array of strings, returning an empty list
// for blank or malformed input
func DecodeStringList(raw []byte) StringList {
	if len(raw) == 0 {
		return StringList{}
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("malformed string list, treating as empty", "error", err)
		return StringList{}
	}
	if items == nil {
		return StringList{}
	}
	return StringList(items)
}
