// Package entity holds the decoded record types and their field tables.
// Every type here is a thin client of the codec engine: a struct, a
// declarative table built once at init, and an Encode method that walks
// the canonical group order for that type.
package entity

import (
	"github.com/dxflib/dxf/codec"
	"github.com/dxflib/dxf/revision"
)

// Documented defaults substituted for empty values. A record must never
// serialize with an empty layer or linetype name.
const (
	DefaultLayer    = "0"
	DefaultLinetype = "BYLAYER"

	// ColorByLayer is the color index meaning "inherit from layer".
	ColorByLayer = 256
)

// Header carries the display attributes and owner handles common to every
// graphical entity. Owner handles are opaque strings, never dereferenced.
type Header struct {
	// ID is the unique identifier (group 5), -1 while unassigned.
	ID int64

	LinetypeName  string  // group 6
	LayerName     string  // group 8
	Elevation     float64 // group 38, standalone only in old revisions
	Thickness     float64 // group 39
	LinetypeScale float64 // group 48
	Visibility    int     // group 60
	Color         int     // group 62
	PaperSpace    int     // group 67
	Lineweight    int     // group 370
	ShadowMode    int     // group 284

	// GraphicsSize is the byte count of the embedded graphics block,
	// read from group 92 or 160.
	GraphicsSize int
	// Graphics holds the group 310 data lines.
	Graphics codec.ChunkList

	// DictionarySoft is the soft owner handle, the first group 330
	// inside the ACAD_REACTORS application group.
	DictionarySoft string
	// ObjectOwner is the bare group 330 outside any application group.
	ObjectOwner string
	// Reactors collects the remaining group 330 occurrences, in order.
	Reactors codec.ChunkList

	DictionaryHard string // group 360
	Material       string // group 347
	PlotStyle      string // group 390
	ColorValue     int    // group 420
	ColorName      string // group 430
	Transparency   int    // group 440
}

// NewHeader returns a header with every field at its documented default.
func NewHeader() Header {
	return Header{
		ID:            -1,
		LinetypeName:  DefaultLinetype,
		LayerName:     DefaultLayer,
		LinetypeScale: 1,
		Color:         ColorByLayer,
	}
}

// normalize applies the default substitution rule after a decode.
func (h *Header) normalize() error {
	if h.LayerName == "" {
		h.LayerName = DefaultLayer
	}
	if h.LinetypeName == "" {
		h.LinetypeName = DefaultLinetype
	}
	return nil
}

// bindHeaderCore installs the common groups shared by every entity type,
// except the embedded graphics block whose group 310 is reused by some
// payloads.
func bindHeaderCore[E any](t *codec.Table[E], hdr func(*E) *Header) {
	t.Handle(5, codec.Hex(func(e *E) *int64 { return &hdr(e).ID })).
		Handle(6, codec.Str(func(e *E) *string { return &hdr(e).LinetypeName })).
		Handle(8, codec.Str(func(e *E) *string { return &hdr(e).LayerName })).
		Handle(38, codec.Float(func(e *E) *float64 { return &hdr(e).Elevation })).
		Handle(39, codec.Float(func(e *E) *float64 { return &hdr(e).Thickness })).
		Handle(48, codec.Float(func(e *E) *float64 { return &hdr(e).LinetypeScale })).
		Handle(60, codec.Int(func(e *E) *int { return &hdr(e).Visibility })).
		Handle(62, codec.Int(func(e *E) *int { return &hdr(e).Color })).
		Handle(67, codec.Int(func(e *E) *int { return &hdr(e).PaperSpace })).
		InGroup("ACAD_REACTORS", 330, codec.Str(func(e *E) *string { return &hdr(e).DictionarySoft })).
		InGroupRepeat("ACAD_REACTORS", 330, codec.Chunks(func(e *E) *codec.ChunkList { return &hdr(e).Reactors })).
		InGroup("ACAD_XDICTIONARY", 360, codec.Str(func(e *E) *string { return &hdr(e).DictionaryHard })).
		Handle(330, codec.Str(func(e *E) *string { return &hdr(e).ObjectOwner })).
		Repeat(330, codec.Chunks(func(e *E) *codec.ChunkList { return &hdr(e).Reactors })).
		Handle(360, codec.Str(func(e *E) *string { return &hdr(e).DictionaryHard })).
		HandleGated(347, revision.FeatureMaterial, codec.Str(func(e *E) *string { return &hdr(e).Material })).
		HandleGated(370, revision.FeatureLineweight, codec.Int(func(e *E) *int { return &hdr(e).Lineweight })).
		HandleGated(390, revision.FeaturePlotStyle, codec.Str(func(e *E) *string { return &hdr(e).PlotStyle })).
		HandleGated(420, revision.FeatureTrueColor, codec.Int(func(e *E) *int { return &hdr(e).ColorValue })).
		HandleGated(430, revision.FeatureColorName, codec.Str(func(e *E) *string { return &hdr(e).ColorName })).
		HandleGated(440, revision.FeatureTransparency, codec.Int(func(e *E) *int { return &hdr(e).Transparency })).
		HandleGated(284, revision.FeatureShadowMode, codec.Int(func(e *E) *int { return &hdr(e).ShadowMode })).
		Subclass("AcDbEntity").
		Finalize(func(e *E) error { return hdr(e).normalize() })
}

// bindHeader additionally routes the embedded graphics block (92/160 and
// 310) into the header. Both byte count groups are accepted on read.
func bindHeader[E any](t *codec.Table[E], hdr func(*E) *Header) {
	bindHeaderCore(t, hdr)
	t.Handle(92, codec.Int(func(e *E) *int { return &hdr(e).GraphicsSize })).
		Handle(160, codec.Int(func(e *E) *int { return &hdr(e).GraphicsSize })).
		Repeat(310, codec.Chunks(func(e *E) *codec.ChunkList { return &hdr(e).Graphics }))
}

// encodeCommon emits the record name and the common groups in canonical
// order. Empty layer or linetype names are substituted on the way out
// without touching the record itself.
func (h *Header) encodeCommon(enc *codec.Encoder, name string) {
	enc.Record(name)
	enc.GatedHex(revision.FeatureHandle, 5, h.ID)
	if h.DictionarySoft != "" || h.Reactors.Len() > 0 {
		enc.AppGroup(revision.FeatureReactors, "ACAD_REACTORS", func() {
			// the soft owner slot is written even when empty so the
			// reactor handles keep their later occurrence positions
			enc.Str(330, h.DictionarySoft)
			enc.Chunks(330, &h.Reactors)
		})
	}
	if h.DictionaryHard != "" {
		enc.AppGroup(revision.FeatureXDictionary, "ACAD_XDICTIONARY", func() {
			enc.Str(360, h.DictionaryHard)
		})
	}
	enc.GatedStr(revision.FeatureObjectOwner, 330, h.ObjectOwner)
	enc.Subclass("AcDbEntity")
	if h.PaperSpace != 0 {
		enc.Int(67, h.PaperSpace)
	}
	layer := h.LayerName
	if layer == "" {
		layer = DefaultLayer
	}
	enc.Str(8, layer)
	linetype := h.LinetypeName
	if linetype == "" {
		linetype = DefaultLinetype
	}
	if linetype != DefaultLinetype {
		enc.Str(6, linetype)
	}
	enc.GatedStr(revision.FeatureMaterial, 347, h.Material)
	if h.Color != ColorByLayer {
		enc.Int(62, h.Color)
	}
	enc.GatedInt(revision.FeatureLineweight, 370, h.Lineweight, 0)
	if h.LinetypeScale != 1 && h.LinetypeScale != 0 {
		enc.Float(48, h.LinetypeScale)
	}
	if h.Visibility != 0 {
		enc.Int(60, h.Visibility)
	}
	enc.GatedInt(revision.FeatureTrueColor, 420, h.ColorValue, 0)
	enc.GatedStr(revision.FeatureColorName, 430, h.ColorName)
	enc.GatedInt(revision.FeatureTransparency, 440, h.Transparency, 0)
	enc.GatedStr(revision.FeaturePlotStyle, 390, h.PlotStyle)
	enc.GatedInt(revision.FeatureShadowMode, 284, h.ShadowMode, 0)
	enc.GatedFloat(revision.FeatureElevation, 38, h.Elevation, 0)
	if h.Thickness != 0 {
		enc.Float(39, h.Thickness)
	}
	enc.Graphics(h.GraphicsSize, &h.Graphics)
}
