package waveprofile

import "encoding/json"

// Profile is the persisted state of a wave spectrum editor session.
// Nil fields and an empty octave list are taken from the parent profile.
type Profile struct {
	Parent           string   `json:"parent,omitempty"`
	Preset           string   `json:"preset,omitempty"`
	WindSpeed        *float64 `json:"windSpeed,omitempty"` // m/s
	WindDirectionDeg *float64 `json:"windDirection,omitempty"`
	Fetch            *float64 `json:"fetch,omitempty"` // m
	Choppiness       *float64 `json:"choppiness,omitempty"`
	Seed             *int64   `json:"seed,omitempty"`
	Octaves          []Octave `json:"octaves,omitempty"`
}

// Octave is one saved spectrum bucket.
type Octave struct {
	PowerLog float64 `json:"powerLog"`
	Enabled  bool    `json:"enabled"`
}

// UnmarshalJSON accepts either {"powerLog": p, "enabled": b} or a bare
// number, which is read as an enabled octave with that log power.
func (o *Octave) UnmarshalJSON(data []byte) error {
	var p float64
	if err := json.Unmarshal(data, &p); err == nil {
		*o = Octave{PowerLog: p, Enabled: true}
		return nil
	}

	type plain Octave
	v := plain{Enabled: true}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Octave(v)
	return nil
}

// Float returns a pointer to v, for filling optional profile fields.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int64) *int64 { return &v }
