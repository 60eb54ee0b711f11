package revision

// Feature names a capability whose group codes are only legal within a
// span of revisions. The gates are consulted by the decoder to downgrade
// diagnostics on old files and by the encoder to decide emission.
type Feature int

const (
	// FeatureHandle is the unique identifier group (5).
	FeatureHandle Feature = iota
	// FeatureReactors is the {ACAD_REACTORS application group (102/330).
	FeatureReactors
	// FeatureXDictionary is the {ACAD_XDICTIONARY application group (102/360).
	FeatureXDictionary
	// FeatureObjectOwner is the owner handle group (330) outside of an
	// application group.
	FeatureObjectOwner
	// FeatureSubclassMarker is the per-class marker group (100).
	FeatureSubclassMarker
	// FeatureElevation is the standalone elevation group (38); later
	// revisions fold the elevation into the first point.
	FeatureElevation
	// FeatureProxyGraphics is the embedded graphics block (92/160 + 310).
	FeatureProxyGraphics
	// FeaturePlotStyle is the plot style handle group (390).
	FeaturePlotStyle
	// FeatureLineweight is the line weight group (370).
	FeatureLineweight
	// FeatureTrueColor is the 24-bit color group (420).
	FeatureTrueColor
	// FeatureColorName is the color book name group (430).
	FeatureColorName
	// FeatureTransparency is the transparency group (440).
	FeatureTransparency
	// FeatureMaterial is the material handle group (347).
	FeatureMaterial
	// FeatureShadowMode is the shadow mode group (284).
	FeatureShadowMode
	// FeatureSolidHistory is the solid history handle group (350).
	FeatureSolidHistory
)

type span struct {
	min, max Revision
}

// gates is built once and never mutated; concurrent reads are safe.
var gates = map[Feature]span{
	FeatureHandle:         {R13, R2018},
	FeatureReactors:       {R14, R2018},
	FeatureXDictionary:    {R14, R2018},
	FeatureObjectOwner:    {R2000, R2018},
	FeatureSubclassMarker: {R13, R2018},
	FeatureElevation:      {R10, R11},
	FeatureProxyGraphics:  {R2000, R2018},
	FeaturePlotStyle:      {R2000, R2018},
	FeatureLineweight:     {R2002, R2018},
	FeatureTrueColor:      {R2004, R2018},
	FeatureColorName:      {R2004, R2018},
	FeatureTransparency:   {R2004, R2018},
	FeatureMaterial:       {R2007, R2018},
	FeatureShadowMode:     {R2007, R2018},
	FeatureSolidHistory:   {R2007, R2018},
}

func (f Feature) String() string {
	switch f {
	case FeatureHandle:
		return "handle"
	case FeatureReactors:
		return "reactors"
	case FeatureXDictionary:
		return "extension dictionary"
	case FeatureObjectOwner:
		return "object owner"
	case FeatureSubclassMarker:
		return "subclass marker"
	case FeatureElevation:
		return "elevation"
	case FeatureProxyGraphics:
		return "proxy graphics"
	case FeaturePlotStyle:
		return "plot style"
	case FeatureLineweight:
		return "lineweight"
	case FeatureTrueColor:
		return "true color"
	case FeatureColorName:
		return "color name"
	case FeatureTransparency:
		return "transparency"
	case FeatureMaterial:
		return "material"
	case FeatureShadowMode:
		return "shadow mode"
	case FeatureSolidHistory:
		return "solid history"
	}
	return "unknown"
}

// Gate reports whether the feature's groups are legal in rev.
func Gate(f Feature, rev Revision) bool {
	s, ok := gates[f]
	if !ok {
		return false
	}
	return rev >= s.min && rev <= s.max
}

// Introduced returns the first revision in which the feature is legal.
func Introduced(f Feature) Revision {
	return gates[f].min
}
