package config

import (
	"flag"
	"fmt"

	"wavespec/internal/spectrum"
	"wavespec/pkg/waveprofile"
)

// Flags are the command line settings shared by every binary.
type Flags struct {
	fs *flag.FlagSet

	Preset     string
	WindKmh    float64
	Direction  float64
	Fetch      float64
	Choppiness float64
	Seed       int64
	LodCount   int
	Octaves    int
	Base       float64
	Spread     float64
	ProfileDir string
	Profile    string
}

// BindFlags registers the shared flags on fs.
func BindFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.Preset, "preset", GetPreset().String(), "spectrum fit: phillips, pierson-moskowitz (pm) or jonswap")
	fs.Float64Var(&f.WindKmh, "wind", GetWindSpeedKmh(), "wind speed in km/h")
	fs.Float64Var(&f.Direction, "dir", GetWindDirection(), "wind direction in degrees")
	fs.Float64Var(&f.Fetch, "fetch", GetFetch(), "fetch in meters (jonswap)")
	fs.Float64Var(&f.Choppiness, "chop", GetChoppiness(), "horizontal displacement factor")
	fs.Int64Var(&f.Seed, "seed", GetSeed(), "random seed of the generation pass")
	fs.IntVar(&f.LodCount, "lods", GetLodCount(), "number of LODs in the ocean chain")
	fs.IntVar(&f.Octaves, "octaves", spectrum.DefaultNumOctaves, "number of octave buckets")
	fs.Float64Var(&f.Base, "base", spectrum.DefaultBaseWavelength, "wavelength of the first octave in meters")
	fs.Float64Var(&f.Spread, "spread", spectrum.DefaultDirectionSpreadDeg, "max direction offset from the wind in degrees")
	fs.StringVar(&f.ProfileDir, "profiles", "assets", "directory holding profiles/<name>.json")
	fs.StringVar(&f.Profile, "profile", "", "profile to load before applying flags")
	return f
}

// Setup builds the spectrum and loads the settings in order: profile, then
// flags given explicitly on the command line. The preset fit runs unless the
// profile supplied the bucket state and no fit flag was given.
func (f *Flags) Setup() (*spectrum.Spectrum, *waveprofile.Loader, error) {
	cfg := spectrum.NewConfig()
	cfg.NumOctaves = f.Octaves
	cfg.BaseWavelength = f.Base
	cfg.DirectionSpreadDeg = f.Spread
	s, err := spectrum.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	loader := waveprofile.NewLoader(f.ProfileDir)
	fromProfile := false
	if f.Profile != "" {
		p, err := loader.Load(f.Profile)
		if err != nil {
			return nil, nil, err
		}
		if err := ApplyProfile(p, s); err != nil {
			return nil, nil, fmt.Errorf("profile %q: %w", f.Profile, err)
		}
		fromProfile = len(p.Octaves) > 0
	}

	set := make(map[string]bool)
	f.fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if set["preset"] {
		p, err := spectrum.ParsePreset(f.Preset)
		if err != nil {
			return nil, nil, err
		}
		SetPreset(p)
	}
	if set["wind"] {
		SetWindSpeedKmh(f.WindKmh)
	}
	if set["dir"] {
		SetWindDirection(f.Direction)
	}
	if set["fetch"] {
		SetFetch(f.Fetch)
	}
	if set["chop"] {
		SetChoppiness(f.Choppiness)
	}
	if set["seed"] {
		SetSeed(f.Seed)
	}
	if set["lods"] {
		SetLodCount(f.LodCount)
	}

	if !fromProfile || set["preset"] || set["wind"] || set["fetch"] {
		if err := ApplyPreset(s); err != nil {
			return nil, nil, err
		}
	}
	return s, loader, nil
}
