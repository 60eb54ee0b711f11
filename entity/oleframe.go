package entity

import (
	"github.com/dxflib/dxf/codec"
	"github.com/dxflib/dxf/revision"
)

// OleFrame is an embedded OLE object frame (record name OLE2FRAME). Its
// binary payload reuses group 310, so the common graphics block is not
// bound for this type; the 90 group carries the payload byte count and a
// literal "OLE" under group 1 closes the data.
type OleFrame struct {
	Header

	// OleVersion is the OLE version number (group 70).
	OleVersion int
	// UpperLeft and LowerRight bound the frame (groups 10 and 11).
	UpperLeft, LowerRight Point
	// OleType is the object type: link, embedded or static (group 71).
	OleType int
	// TileMode is the tile mode descriptor (group 72).
	TileMode int
	// DataSize is the payload byte count (group 90).
	DataSize int
	// Data holds the group 310 payload lines.
	Data codec.ChunkList
}

func NewOleFrame() *OleFrame {
	return &OleFrame{
		Header:     NewHeader(),
		OleVersion: 2,
	}
}

var oleFrameTable = func() *codec.Table[OleFrame] {
	t := codec.NewTable[OleFrame]("OLE2FRAME")
	bindHeaderCore(t, func(e *OleFrame) *Header { return &e.Header })
	t.Subclass("AcDbOle2Frame").
		Handle(70, codec.Int(func(e *OleFrame) *int { return &e.OleVersion })).
		Handle(71, codec.Int(func(e *OleFrame) *int { return &e.OleType })).
		Handle(72, codec.Int(func(e *OleFrame) *int { return &e.TileMode })).
		Handle(90, codec.Int(func(e *OleFrame) *int { return &e.DataSize })).
		Repeat(310, codec.Chunks(func(e *OleFrame) *codec.ChunkList { return &e.Data })).
		Ignore(1)
	bindPoint(t, 10, func(e *OleFrame) *Point { return &e.UpperLeft })
	bindPoint(t, 11, func(e *OleFrame) *Point { return &e.LowerRight })
	return t
}()

func (e *OleFrame) RecordName() string {
	return "OLE2FRAME"
}

func (e *OleFrame) MinRevision() revision.Revision {
	return revision.R14
}

func (e *OleFrame) Encode(enc *codec.Encoder) {
	e.encodeCommon(enc, e.RecordName())
	enc.Subclass("AcDbOle2Frame")
	enc.Int(70, e.OleVersion)
	encodePoint(enc, 10, e.UpperLeft)
	encodePoint(enc, 11, e.LowerRight)
	enc.Int(71, e.OleType)
	enc.Int(72, e.TileMode)
	enc.Int(90, e.DataSize)
	enc.Chunks(310, &e.Data)
	enc.Str(1, "OLE")
}
