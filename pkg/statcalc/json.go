package statcalc

import (
	"encoding/json"
	"math"
)

// Float marshals like float64 but renders non-finite values as the
// tagged strings "NaN", "+Inf" and "-Inf". JSON has no literals for
// them and an empty calculator's mean is NaN by contract.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}

	return json.Marshal(v)
}

func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Sum    Float `json:"sum"`
		Mean   Float `json:"mean"`
		StdDev Float `json:"std_dev"`
	}{
		Sum:    Float(s.Sum),
		Mean:   Float(s.Mean),
		StdDev: Float(s.StdDev),
	})
}
