// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// Lists, scores and answers are kept as JSON text so that the same
// statements run on every supported dialect.

// jsonValue encodes v as a JSON text column value.
func jsonValue(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(b), nil
}

// listValue encodes a string list, storing a nil list as "[]".
func listValue(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	return jsonValue(list)
}

// nullableJSONValue encodes v or returns nil when isNil is set.
func nullableJSONValue(v any, isNil bool) (any, error) {
	if isNil {
		return nil, nil
	}
	return jsonValue(v)
}

// jsonColumn is a [sql.Scanner] decoding a JSON text column into dest.
// NULL and empty values leave dest untouched.
type jsonColumn struct {
	dest any
}

func asJSON(dest any) *jsonColumn {
	return &jsonColumn{dest: dest}
}

// Scan implements [sql.Scanner].
func (c *jsonColumn) Scan(src any) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		b = []byte(v)
	case []byte:
		b = v
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrEncodingColumn, src)
	}

	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, c.dest); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return nil
}

// nullString maps an empty string to SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
