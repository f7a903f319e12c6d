package product

import (
	"math"

	"github.com/shopspring/decimal"
)

// Slat dimensions are exchanged as exact decimals so no binary-float
// rounding error enters downstream engineering calculations.
const geometryPrecision = 34

// BlindGeometry holds the slat parameters of a venetian blind or vertical
// louver. Rise is the perpendicular deflection of a curved slat from a flat
// chord; curvature is the radius-like bend parameter. Only one of the two
// is typically supplied, the other derived.
type BlindGeometry struct {
	SlatWidth     *decimal.Decimal `json:"slat_width"`
	SlatSpacing   *decimal.Decimal `json:"slat_spacing"`
	SlatTilt      *decimal.Decimal `json:"slat_tilt"`
	SlatCurvature *decimal.Decimal `json:"slat_curvature"`
	Rise          *decimal.Decimal `json:"rise"`
	NSegments     *int             `json:"n_segments"`
}

// VenetianBlindGeometry and VerticalLouverGeometry share the blind slat
// parameter set.
type (
	VenetianBlindGeometry  = BlindGeometry
	VerticalLouverGeometry = BlindGeometry
)

// PerforatedScreenGeometry holds the hole pattern of a perforated screen.
type PerforatedScreenGeometry struct {
	DimX     *decimal.Decimal `json:"dim_x"`
	DimY     *decimal.Decimal `json:"dim_y"`
	SpacingX *decimal.Decimal `json:"spacing_x"`
	SpacingY *decimal.Decimal `json:"spacing_y"`
	Type     *int             `json:"type"`
}

// WovenShadeGeometry holds the thread layout of a woven shade.
type WovenShadeGeometry struct {
	ThreadDiameter *decimal.Decimal `json:"thread_diameter"`
	ThreadSpacing  *decimal.Decimal `json:"thread_spacing"`
	ShadeThickness *decimal.Decimal `json:"shade_thickness"`
}

// GeometricProperties carries the shape-specific parameters of a shading
// product. Exactly one variant is set for a given product subtype.
type GeometricProperties struct {
	Blind            *BlindGeometry            `json:"blind,omitempty"`
	PerforatedScreen *PerforatedScreenGeometry `json:"perforated_screen,omitempty"`
	WovenShade       *WovenShadeGeometry       `json:"woven_shade,omitempty"`
}

// SetRiseFromCurvature derives the slat rise from the slat curvature.
//
// A curvature of zero or less describes a flat slat (rise 0). Otherwise the
// slat width must be set; when the curvature is too small to span the slat
// the rise clamps to half the width (a full semicircle).
func (g *BlindGeometry) SetRiseFromCurvature() error {
	if g.SlatCurvature == nil {
		return MissingValueError{Field: "slat_curvature"}
	}
	curvature := *g.SlatCurvature
	if curvature.Sign() <= 0 {
		zero := decimal.Zero
		g.Rise = &zero
		return nil
	}
	if g.SlatWidth == nil {
		return MissingValueError{Field: "slat_width"}
	}
	width := *g.SlatWidth
	four := decimal.NewFromInt(4)
	val := curvature.Mul(curvature).Sub(width.Mul(width).DivRound(four, geometryPrecision))
	var rise decimal.Decimal
	if val.Sign() < 0 {
		rise = width.DivRound(decimal.NewFromInt(2), geometryPrecision)
	} else {
		rise = curvature.Sub(decimalSqrt(val))
	}
	g.Rise = &rise
	return nil
}

// SetCurvatureFromRise derives the slat curvature from the slat rise.
//
// A rise of zero or less describes a flat slat (curvature 0). Otherwise the
// slat width must be set and the rise must not exceed half the width:
// beyond a semicircle the curvature is undefined.
func (g *BlindGeometry) SetCurvatureFromRise() error {
	if g.Rise == nil {
		return MissingValueError{Field: "rise"}
	}
	rise := *g.Rise
	if rise.Sign() <= 0 {
		zero := decimal.Zero
		g.SlatCurvature = &zero
		return nil
	}
	if g.SlatWidth == nil {
		return MissingValueError{Field: "slat_width"}
	}
	width := *g.SlatWidth
	two := decimal.NewFromInt(2)
	halfWidth := width.DivRound(two, geometryPrecision)
	if rise.Cmp(halfWidth) > 0 {
		return InvalidGeometryError{Reason: "rise exceeds half the slat width"}
	}
	four := decimal.NewFromInt(4)
	curvature := rise.Mul(rise).
		Add(width.Mul(width).DivRound(four, geometryPrecision)).
		DivRound(two.Mul(rise), geometryPrecision)
	if curvature.Sign() < 0 {
		curvature = halfWidth
	}
	g.SlatCurvature = &curvature
	return nil
}

// decimalSqrt computes the square root of a non-negative decimal by Newton
// iteration, seeded from the float64 root and refined at geometryPrecision.
func decimalSqrt(d decimal.Decimal) decimal.Decimal {
	if d.Sign() <= 0 {
		return decimal.Zero
	}
	guess := sqrtSeed(d)
	two := decimal.NewFromInt(2)
	for i := 0; i < 16; i++ {
		next := guess.Add(d.DivRound(guess, geometryPrecision)).DivRound(two, geometryPrecision)
		if next.Equal(guess) {
			break
		}
		guess = next
	}
	return guess
}

// sqrtSeed picks the Newton starting point. Operands within float64 range
// seed from math.Sqrt; values that overflow or underflow float64 seed from
// the decimal's own magnitude, halving its base-10 exponent.
func sqrtSeed(d decimal.Decimal) decimal.Decimal {
	f, _ := d.Float64()
	if f > 0 && !math.IsInf(f, 0) {
		return decimal.NewFromFloat(math.Sqrt(f))
	}
	digits := int32(len(d.Coefficient().String()))
	return decimal.New(1, (d.Exponent()+digits)/2)
}
