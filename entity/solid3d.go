package entity

import (
	"github.com/dxflib/dxf/codec"
	"github.com/dxflib/dxf/revision"
)

// Solid3D is a boundary representation solid (record name 3DSOLID). Its
// modeler data arrives as interleaved proprietary (group 1) and
// additional proprietary (group 3) text lines; both lists grow from one
// running order counter so the original interleaving survives a
// round trip.
type Solid3D struct {
	Header

	// ModelerFormat is the modeler format version (group 70).
	ModelerFormat int
	// Proprietary holds the group 1 lines.
	Proprietary codec.ChunkList
	// AdditionalProprietary holds the group 3 lines.
	AdditionalProprietary codec.ChunkList
	// History is the solid history object handle (group 350), -1 while
	// unassigned.
	History int64
}

func NewSolid3D() *Solid3D {
	return &Solid3D{
		Header:        NewHeader(),
		ModelerFormat: 1,
		History:       -1,
	}
}

var solid3DTable = func() *codec.Table[Solid3D] {
	t := codec.NewTable[Solid3D]("3DSOLID")
	bindHeader(t, func(e *Solid3D) *Header { return &e.Header })
	t.Subclass("AcDbModelerGeometry", "AcDb3dSolid").
		Handle(70, codec.Int(func(e *Solid3D) *int { return &e.ModelerFormat })).
		Repeat(1, codec.Chunks(
			func(e *Solid3D) *codec.ChunkList { return &e.Proprietary },
			func(e *Solid3D) *codec.ChunkList { return &e.AdditionalProprietary },
		)).
		Repeat(3, codec.Chunks(
			func(e *Solid3D) *codec.ChunkList { return &e.AdditionalProprietary },
			func(e *Solid3D) *codec.ChunkList { return &e.Proprietary },
		)).
		HandleGated(350, revision.FeatureSolidHistory, codec.Hex(func(e *Solid3D) *int64 { return &e.History }))
	return t
}()

func (e *Solid3D) RecordName() string {
	return "3DSOLID"
}

func (e *Solid3D) MinRevision() revision.Revision {
	return revision.R13
}

func (e *Solid3D) Encode(enc *codec.Encoder) {
	e.encodeCommon(enc, e.RecordName())
	enc.Subclass("AcDbModelerGeometry")
	enc.Int(70, e.ModelerFormat)
	enc.Interleaved(1, &e.Proprietary, 3, &e.AdditionalProprietary)
	enc.Subclass("AcDb3dSolid")
	enc.GatedHex(revision.FeatureSolidHistory, 350, e.History)
}
