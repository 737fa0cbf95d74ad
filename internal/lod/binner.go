package lod

import (
	"fmt"
	"math"
)

// Epsilon is the amplitude below which a wave is too small to be worth drawing.
const Epsilon = 0.001

// Tag is the level of detail a wave component is drawn at.
// Values 0..Count-1 are concrete levels, Count is the overflow band and
// Inactive marks a component that should not be drawn at all.
type Tag int

// Inactive marks a component below resolution or with negligible amplitude.
const Inactive Tag = -1

func (t Tag) String() string {
	if t == Inactive {
		return "inactive"
	}
	if t < Inactive {
		return fmt.Sprintf("Tag(%d)", int(t))
	}
	return fmt.Sprintf("lod %d", int(t))
}

// Provider describes the LOD chain a binner sorts waves into.
type Provider interface {
	LodCount() int
	MaxWavelength(lodIdx int) float64
}

// Binner sorts wave components into LOD bands.
type Binner struct {
	MinWavelength float64 // Smallest wavelength LOD 0 still resolves well
	Count         int     // Number of concrete LODs
}

// NewBinner derives the binning thresholds from p. LOD 0 is trusted down to
// half of its maximum wavelength.
func NewBinner(p Provider) Binner {
	n := p.LodCount()
	if n < 0 {
		n = 0
	}
	return Binner{
		MinWavelength: p.MaxWavelength(0) / 2,
		Count:         n,
	}
}

// Overflow is the tag for waves longer than the coarsest LOD handles.
func (b Binner) Overflow() Tag { return Tag(b.Count) }

// IsOverflow reports whether t is the overflow band of b.
func (b Binner) IsOverflow(t Tag) bool { return int(t) == b.Count }

// Label renders t the way editors show it, naming the overflow band.
func (b Binner) Label(t Tag) string {
	if b.IsOverflow(t) {
		return "overflow"
	}
	return t.String()
}

// Assign returns the LOD band of a wave.
//
// The walk starts at LOD 0 with MinWavelength as threshold and moves one
// level up, doubling the threshold, while the wavelength is at least twice
// the threshold. It stops at Count, the overflow band. The result only
// depends on the arguments and b, so components can be binned in any order.
func (b Binner) Assign(wavelength, amplitude float64) Tag {
	if math.IsNaN(wavelength) || math.IsInf(wavelength, 0) || wavelength <= 0 {
		return Inactive
	}
	if wavelength < b.MinWavelength || !(amplitude >= Epsilon) {
		return Inactive
	}

	threshold := b.MinWavelength
	idx := 0
	for idx < b.Count && wavelength >= 2*threshold {
		threshold *= 2
		idx++
	}
	return Tag(idx)
}
