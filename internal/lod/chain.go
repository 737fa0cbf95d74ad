package lod

import "math"

// Chain is a ring of nested square LODs, each twice the size of the one
// inside it, all meshed at the same vertex density.
type Chain struct {
	Count            int     // Number of LODs
	BaseScale        float64 // Half-size of LOD 0 in meters
	BaseVertDensity  float64 // Quads per side at LOD 0, divided by 4
	MinTexelsPerWave float64 // Texels a wave needs to be resolved without aliasing
}

// NewChain returns a chain with the defaults used by the editors.
func NewChain(count int) *Chain {
	return &Chain{
		Count:            count,
		BaseScale:        8,
		BaseVertDensity:  64,
		MinTexelsPerWave: 3,
	}
}

func (c *Chain) LodCount() int { return c.Count }

// MaxTexelSize is the edge length of one texel at lodIdx.
func (c *Chain) MaxTexelSize(lodIdx int) float64 {
	return 4 * c.BaseScale * math.Ldexp(1, lodIdx) / (4 * c.BaseVertDensity)
}

// MaxWavelength is the longest wave lodIdx renders before handing it to the next LOD.
func (c *Chain) MaxWavelength(lodIdx int) float64 {
	return 2 * c.MaxTexelSize(lodIdx) * c.MinTexelsPerWave
}
