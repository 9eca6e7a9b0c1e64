package engine

// Tunables mirrors config.EngineConfig without importing it, keeping the
// engine package free of a dependency on the ambient config layer.
type Tunables struct {
	AmbiguityDampingFactor float64
	ParentRateFactor       float64
	ChildRateFactor        float64
	ParentLabelRateFactor  float64
	BrotherRateFactor      float64
	CoordBrotherRateFactor float64
}

// Configure overrides the pipeline's rate factors, e.g. from a loaded
// config.Config. Zero-value fields are left at their current setting, so
// a partially-populated Tunables only touches the factors it names.
func Configure(t Tunables) {
	if t.AmbiguityDampingFactor != 0 {
		ambiguityDampingFactor = t.AmbiguityDampingFactor
	}
	if t.ParentRateFactor != 0 {
		parentRateFactor = t.ParentRateFactor
	}
	if t.ChildRateFactor != 0 {
		childRateFactor = t.ChildRateFactor
	}
	if t.ParentLabelRateFactor != 0 {
		parentLabelRateFactor = t.ParentLabelRateFactor
	}
	if t.BrotherRateFactor != 0 {
		brotherRateFactor = t.BrotherRateFactor
	}
	if t.CoordBrotherRateFactor != 0 {
		coordBrotherRateFactor = t.CoordBrotherRateFactor
	}
}
