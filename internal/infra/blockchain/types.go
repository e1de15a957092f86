// Package blockchain holds JSON helpers shared by gateway adapters.
package blockchain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Uint is an unsigned integer that decodes from a JSON number or a quoted
// decimal string. Gateway versions disagree on how large amounts are encoded.
type Uint uint64

// UnmarshalJSON accepts 42, "42" and null (zero).
func (u *Uint) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*u = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid unsigned integer: %w", err)
		}

		data = []byte(s)
	}

	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid unsigned integer: %w", err)
	}

	*u = Uint(v)
	return nil
}

// Uint64 returns the decoded value.
func (u Uint) Uint64() uint64 {
	return uint64(u)
}

// Int is a signed integer that decodes from a JSON number or a quoted decimal string.
type Int int64

// UnmarshalJSON accepts -42, "-42" and null (zero).
func (i *Int) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*i = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid integer: %w", err)
		}

		data = []byte(s)
	}

	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer: %w", err)
	}

	*i = Int(v)
	return nil
}

// Int64 returns the decoded value.
func (i Int) Int64() int64 {
	return int64(i)
}
