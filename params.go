package squircle

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is wrapped by the errors returned from [Params.Validate].
var ErrInvalidParams = errors.New("invalid squircle parameters")

// Params describes a squircle.
//
// The zero value describes an empty squircle without smoothing. [NewParams]
// returns the default parameters, which use a smoothing of 1. The With…
// methods return modified copies, so Params values can be shared freely.
type Params struct {
	Width  float64
	Height float64

	// CornerRadius is the radius of every corner that doesn't have its own
	// radius.
	CornerRadius float64
	// Per-corner radii. A nil radius falls back to CornerRadius.
	TopLeftCornerRadius     *float64
	TopRightCornerRadius    *float64
	BottomRightCornerRadius *float64
	BottomLeftCornerRadius  *float64

	// CornerSmoothing is conventionally in [0, 1]. 0 produces ordinary
	// rounded corners, 1 produces the smoothest possible corners.
	CornerSmoothing float64
	// PreserveSmoothing selects how corners that don't have enough space are
	// handled. See [SolveCorner].
	PreserveSmoothing bool
}

// NewParams returns parameters for an empty squircle with a corner smoothing
// of 1.
func NewParams() Params {
	return Params{CornerSmoothing: 1}
}

func (p Params) WithWidth(width float64) Params {
	p.Width = width
	return p
}

func (p Params) WithHeight(height float64) Params {
	p.Height = height
	return p
}

// WithSize sets both width and height to size.
func (p Params) WithSize(size float64) Params {
	p.Width = size
	p.Height = size
	return p
}

func (p Params) WithCornerRadius(r float64) Params {
	p.CornerRadius = r
	return p
}

func (p Params) WithTopLeftCornerRadius(r float64) Params {
	p.TopLeftCornerRadius = &r
	return p
}

func (p Params) WithTopRightCornerRadius(r float64) Params {
	p.TopRightCornerRadius = &r
	return p
}

func (p Params) WithBottomRightCornerRadius(r float64) Params {
	p.BottomRightCornerRadius = &r
	return p
}

func (p Params) WithBottomLeftCornerRadius(r float64) Params {
	p.BottomLeftCornerRadius = &r
	return p
}

// WithCornerRadii sets all four per-corner radii.
func (p Params) WithCornerRadii(radii Radii) Params {
	return p.
		WithTopLeftCornerRadius(radii.TopLeft).
		WithTopRightCornerRadius(radii.TopRight).
		WithBottomRightCornerRadius(radii.BottomRight).
		WithBottomLeftCornerRadius(radii.BottomLeft)
}

func (p Params) WithCornerSmoothing(s float64) Params {
	p.CornerSmoothing = s
	return p
}

func (p Params) WithPreserveSmoothing(preserve bool) Params {
	p.PreserveSmoothing = preserve
	return p
}

// Radii returns the radius of every corner, substituting CornerRadius for
// corners without a radius of their own.
func (p Params) Radii() Radii {
	or := func(r *float64) float64 {
		if r == nil {
			return p.CornerRadius
		}
		return *r
	}
	return Radii{
		TopLeft:     or(p.TopLeftCornerRadius),
		TopRight:    or(p.TopRightCornerRadius),
		BottomRight: or(p.BottomRightCornerRadius),
		BottomLeft:  or(p.BottomLeftCornerRadius),
	}
}

// Validate reports parameters that the computations accept but that don't
// describe a meaningful squircle: negative or non-finite sizes and radii, and
// smoothing outside [0, 1]. Radii larger than the rectangle are valid, as
// they get clamped.
//
// [New] and [SVGPath] don't call Validate. All returned errors wrap
// [ErrInvalidParams].
func (p Params) Validate() error {
	var errs []error
	check := func(name string, v float64) {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			errs = append(errs, fmt.Errorf("%w: %s is %v", ErrInvalidParams, name, v))
		case v < 0:
			errs = append(errs, fmt.Errorf("%w: %s is negative (%v)", ErrInvalidParams, name, v))
		}
	}

	check("width", p.Width)
	check("height", p.Height)
	radii := p.Radii()
	for _, c := range Corners {
		check(c.String()+" radius", radii.Get(c))
	}
	if s := p.CornerSmoothing; !(s >= 0 && s <= 1) {
		errs = append(errs, fmt.Errorf("%w: corner smoothing %v is outside [0, 1]", ErrInvalidParams, s))
	}
	return errors.Join(errs...)
}
