package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Int64List decodes a JSON array whose elements may arrive as numbers or
// numeric strings, depending on the backend serializer. Everything is
// coerced to int64 once, here, so the rest of the code compares plain ints.
type Int64List []int64

func (l *Int64List) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode id list: %w", err)
	}

	out := make(Int64List, 0, len(raw))
	for _, r := range raw {
		var n int64
		if err := json.Unmarshal(r, &n); err == nil {
			out = append(out, n)
			continue
		}
		var s string
		if err := json.Unmarshal(r, &s); err != nil {
			return fmt.Errorf("id list element %s: not a number or string", r)
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("id list element %q: %w", s, err)
		}
		out = append(out, n)
	}
	*l = out
	return nil
}

func (l Int64List) Contains(id int64) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}
