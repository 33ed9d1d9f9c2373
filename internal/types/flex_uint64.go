package types

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexUint64 is an id that decodes from a JSON number or a numeric string.
// Form posts and hand-written fixtures send both.
type FlexUint64 uint64

func (f *FlexUint64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}

	var n uint64
	if err := json.Unmarshal(data, &n); err == nil {
		if n > math.MaxInt64 {
			return Validation("id %d out of range", n)
		}
		*f = FlexUint64(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		val, err := ParseID(s)
		if err != nil {
			return err
		}
		*f = FlexUint64(val)
		return nil
	}

	return Validation("expected an id as a number or numeric string, got %s", string(data))
}

func (f FlexUint64) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint64(f))
}

func (f FlexUint64) Uint64() uint64 {
	return uint64(f)
}

// ParseID parses a positive decimal id such as a path parameter.
// Ids are bounded by the signed 64-bit range the SQL drivers accept.
func ParseID(s string) (uint64, error) {
	val, err := strconv.ParseUint(strings.TrimSpace(s), 10, 63)
	if err != nil || val == 0 {
		return 0, Validation("invalid id %q", s)
	}
	return val, nil
}
