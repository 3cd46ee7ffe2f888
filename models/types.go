// File: /models/types.go
package models

import (
	"encoding/json"
)

// StringSlice is an ordered list of strings that always encodes as a JSON array
type StringSlice []string

// MarshalJSON implements json.Marshaler interface
func (ss StringSlice) MarshalJSON() ([]byte, error) {
	if ss == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(ss))
}

// UnmarshalJSON implements json.Unmarshaler interface
func (ss *StringSlice) UnmarshalJSON(data []byte) error {
	var slice []string
	if err := json.Unmarshal(data, &slice); err != nil {
		return err
	}
	*ss = StringSlice(slice)
	return nil
}

// Clone returns a copy that shares no backing array with ss
func (ss StringSlice) Clone() StringSlice {
	if ss == nil {
		return StringSlice{}
	}
	out := make(StringSlice, len(ss))
	copy(out, ss)
	return out
}
