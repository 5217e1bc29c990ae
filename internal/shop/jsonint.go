package shop

import (
	"math"
	"strconv"
	"strings"
)

// JSONInt is a tolerant integer for cart payloads. Front-end form state
// sends quantities sometimes as numbers and sometimes as numeric strings;
// both decode. A fractional JSON number truncates toward zero, mirroring
// how the site has always priced such carts; a string must hold a plain
// integer. Anything else (garbage, null, out-of-range floats) decodes to
// zero so the pricer drops the line instead of the whole cart failing to
// decode.
type JSONInt int64

// UnmarshalJSON never returns an error: a malformed value is policy, not a
// failure, and resolves to zero.
func (n *JSONInt) UnmarshalJSON(data []byte) error {
	*n = 0
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return nil
	}
	quoted := strings.HasPrefix(s, `"`)
	s = strings.TrimSpace(strings.Trim(s, `"`))
	if s == "" {
		return nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		*n = JSONInt(v)
		return nil
	}
	if quoted {
		// Strings get no float leniency: "3.7" is not an integer.
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil &&
		f > math.MinInt64 && f < math.MaxInt64 {
		*n = JSONInt(f)
	}
	return nil
}
