package report

import "github.com/katalvlaran/laniakea/geometry"

// SizeMismatch records that an objective center's target size did not
// match the actual size of the region surrounding it.
type SizeMismatch struct {
	Center   geometry.Position
	Expected int
	Actual   int
}

// ErrorReport classifies every way a candidate board can fail to satisfy
// an objective. A zero-value ErrorReport (every field empty) means the
// board is error-free — see IsEmpty.
type ErrorReport struct {
	// DanglingBorders are active walls that don't connect, at both of
	// their endpoints, to another active wall or the frame.
	DanglingBorders []geometry.Border
	// CutCenters are objective centers whose footprint is bisected by an
	// active wall.
	CutCenters []geometry.Position
	// IncorrectSizes are objective centers with a target size whose
	// surrounding region doesn't match it.
	IncorrectSizes []SizeMismatch
	// AsymmetricCenters are objective centers whose surrounding region is
	// not a valid galaxy centered exactly there.
	AsymmetricCenters []geometry.Position
	// CenterlessCells are cells that belong to no region associated with
	// any objective center.
	CenterlessCells []geometry.Position
}

// IsEmpty reports whether the board satisfied the objective in every
// respect this report checks.
func (r ErrorReport) IsEmpty() bool {
	return len(r.DanglingBorders) == 0 &&
		len(r.CutCenters) == 0 &&
		len(r.IncorrectSizes) == 0 &&
		len(r.AsymmetricCenters) == 0 &&
		len(r.CenterlessCells) == 0
}
