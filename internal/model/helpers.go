package model

import (
	"database/sql"
	"encoding/json"
)

// EncodeList stores a string slice as a JSON array.
func EncodeList(items []string) string {
	if items == nil {
		items = []string{}
	}
	raw, _ := json.Marshal(items)
	return string(raw)
}

// DecodeList parses a JSON array column. Malformed values yield an empty list.
func DecodeList(raw string) []string {
	items := []string{}
	_ = json.Unmarshal([]byte(raw), &items)
	return items
}

// BoolInt maps a bool onto an INTEGER column.
func BoolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// NullString wraps s, treating the empty string as NULL.
func NullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// NullStringValue returns the string value or empty string.
func NullStringValue(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
