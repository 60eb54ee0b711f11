package entity

import (
	"github.com/dxflib/dxf/codec"
)

// Point is a coordinate triple. The X, Y and Z groups of one point share
// a base code: X at base, Y at base+10, Z at base+20.
type Point struct {
	X, Y, Z float64
}

// defaultExtrusion is the implied extrusion direction when none is read.
var defaultExtrusion = Point{0, 0, 1}

func bindPoint[E any](t *codec.Table[E], base int, slot func(*E) *Point) {
	t.Handle(base, codec.Float(func(e *E) *float64 { return &slot(e).X })).
		Handle(base+10, codec.Float(func(e *E) *float64 { return &slot(e).Y })).
		Handle(base+20, codec.Float(func(e *E) *float64 { return &slot(e).Z }))
}

func encodePoint(enc *codec.Encoder, base int, p Point) {
	enc.Float(base, p.X)
	enc.Float(base+10, p.Y)
	enc.Float(base+20, p.Z)
}

func encodeExtrusion(enc *codec.Encoder, p Point) {
	if p == defaultExtrusion || p == (Point{}) {
		return
	}
	encodePoint(enc, 210, p)
}
