package entity

import (
	"github.com/cockroachdb/errors"

	"github.com/dxflib/dxf/codec"
	"github.com/dxflib/dxf/revision"
)

// RText is a remote text entity (record name RTEXT): the contents group
// holds either an expression or the path of an external text file,
// depending on the type flags.
type RText struct {
	Header

	// Insertion is the insertion point (groups 10/20/30).
	Insertion Point
	// Extrusion is the extrusion direction (groups 210/220/230).
	Extrusion Point
	// Height is the text height (group 40).
	Height float64
	// Rotation is the rotation angle (group 50).
	Rotation float64
	// TypeFlags select how Contents is interpreted (group 70).
	TypeFlags int
	// Style is the text style name (group 7).
	Style string
	// Contents is the expression or file reference (group 1). A record
	// without contents is invalid: there is no safe default.
	Contents string
}

func NewRText() *RText {
	return &RText{
		Header:    NewHeader(),
		Extrusion: defaultExtrusion,
		Style:     "STANDARD",
		Height:    1,
	}
}

var rtextTable = func() *codec.Table[RText] {
	t := codec.NewTable[RText]("RTEXT")
	bindHeader(t, func(e *RText) *Header { return &e.Header })
	t.Subclass("RText").
		Handle(40, codec.Float(func(e *RText) *float64 { return &e.Height })).
		Handle(50, codec.Float(func(e *RText) *float64 { return &e.Rotation })).
		Handle(70, codec.Int(func(e *RText) *int { return &e.TypeFlags })).
		Handle(7, codec.Str(func(e *RText) *string { return &e.Style })).
		Handle(1, codec.Str(func(e *RText) *string { return &e.Contents })).
		Finalize(func(e *RText) error {
			if e.Contents == "" {
				return errors.Mark(errors.New("RTEXT: contents group (1) is empty"), codec.ErrMissingRequired)
			}
			return nil
		})
	bindPoint(t, 10, func(e *RText) *Point { return &e.Insertion })
	bindPoint(t, 210, func(e *RText) *Point { return &e.Extrusion })
	return t
}()

func (e *RText) RecordName() string {
	return "RTEXT"
}

func (e *RText) MinRevision() revision.Revision {
	return revision.R14
}

func (e *RText) Encode(enc *codec.Encoder) {
	e.encodeCommon(enc, e.RecordName())
	enc.Subclass("RText")
	encodePoint(enc, 10, e.Insertion)
	encodeExtrusion(enc, e.Extrusion)
	enc.Float(40, e.Height)
	if e.Rotation != 0 {
		enc.Float(50, e.Rotation)
	}
	if e.Style != "" && e.Style != "STANDARD" {
		enc.Str(7, e.Style)
	}
	enc.Int(70, e.TypeFlags)
	enc.Str(1, e.Contents)
}
