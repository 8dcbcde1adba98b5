package economy

import (
	"encoding/json"
	"math"
)

// Series is a float64 sample sequence handed to renderers. NaN marks a gap
// (e.g. an unattainable indifference level); since JSON has no NaN, gaps and
// infinities are encoded as null and decoded back to NaN.
type Series []float64

// MarshalJSON implements json.Marshaler.
func (s Series) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	out := make([]*float64, len(s))
	for i := range s {
		if math.IsNaN(s[i]) || math.IsInf(s[i], 0) {
			continue
		}
		out[i] = &s[i]
	}

	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Series) UnmarshalJSON(data []byte) error {
	var in []*float64
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in == nil {
		*s = nil
		return nil
	}
	out := make(Series, len(in))
	for i, v := range in {
		if v == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *v
	}
	*s = out

	return nil
}

// Finite returns the number of samples that are neither NaN nor ±Inf.
func (s Series) Finite() int {
	n := 0
	for _, v := range s {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			n++
		}
	}

	return n
}
