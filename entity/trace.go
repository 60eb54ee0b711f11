package entity

import (
	"github.com/dxflib/dxf/codec"
	"github.com/dxflib/dxf/revision"
)

// Trace is a filled four-corner face (record name TRACE).
type Trace struct {
	Header

	// Corners in group order 10, 11, 12, 13.
	P0, P1, P2, P3 Point
	// Extrusion is the extrusion direction (groups 210/220/230).
	Extrusion Point
}

func NewTrace() *Trace {
	return &Trace{
		Header:    NewHeader(),
		Extrusion: defaultExtrusion,
	}
}

var traceTable = func() *codec.Table[Trace] {
	t := codec.NewTable[Trace]("TRACE")
	bindHeader(t, func(e *Trace) *Header { return &e.Header })
	t.Subclass("AcDbTrace")
	bindPoint(t, 10, func(e *Trace) *Point { return &e.P0 })
	bindPoint(t, 11, func(e *Trace) *Point { return &e.P1 })
	bindPoint(t, 12, func(e *Trace) *Point { return &e.P2 })
	bindPoint(t, 13, func(e *Trace) *Point { return &e.P3 })
	bindPoint(t, 210, func(e *Trace) *Point { return &e.Extrusion })
	return t
}()

func (e *Trace) RecordName() string {
	return "TRACE"
}

func (e *Trace) MinRevision() revision.Revision {
	return revision.R10
}

func (e *Trace) Encode(enc *codec.Encoder) {
	e.encodeCommon(enc, e.RecordName())
	enc.Subclass("AcDbTrace")
	encodePoint(enc, 10, e.P0)
	encodePoint(enc, 11, e.P1)
	encodePoint(enc, 12, e.P2)
	encodePoint(enc, 13, e.P3)
	encodeExtrusion(enc, e.Extrusion)
}
