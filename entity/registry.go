package entity

import (
	"github.com/cockroachdb/errors"

	"github.com/dxflib/dxf/codec"
	"github.com/dxflib/dxf/revision"
	"github.com/dxflib/dxf/scanner"
)

// Record is one decoded entity or object.
type Record interface {
	// RecordName is the name following the introducing 0 group.
	RecordName() string
	// MinRevision is the first revision that can represent the type.
	MinRevision() revision.Revision
	// Encode emits the record in its canonical group order.
	Encode(enc *codec.Encoder)
}

type decodeFunc func(sc *scanner.Scanner, opts codec.Options) (Record, *codec.Result, error)

func decodeAs[E any](tbl *codec.Table[E], fresh func() *E, lift func(*E) Record) decodeFunc {
	return func(sc *scanner.Scanner, opts codec.Options) (Record, *codec.Result, error) {
		e := fresh()
		res, err := codec.Decode(sc, tbl, e, opts)
		if err != nil {
			return nil, nil, err
		}
		return lift(e), res, nil
	}
}

// records is the fixed dispatch table from record name to decoder. It is
// assembled at build time; there is no runtime registration.
var records = map[string]decodeFunc{
	"3DSOLID":   decodeAs(solid3DTable, NewSolid3D, func(e *Solid3D) Record { return e }),
	"TRACE":     decodeAs(traceTable, NewTrace, func(e *Trace) Record { return e }),
	"RTEXT":     decodeAs(rtextTable, NewRText, func(e *RText) Record { return e }),
	"OLE2FRAME": decodeAs(oleFrameTable, NewOleFrame, func(e *OleFrame) Record { return e }),
	"SUN":       decodeAs(sunTable, NewSun, func(e *Sun) Record { return e }),
	"IMAGEDEF":  decodeAs(imageDefTable, NewImageDef, func(e *ImageDef) Record { return e }),
}

// Known reports whether name has a registered record type.
func Known(name string) bool {
	_, ok := records[name]
	return ok
}

// Decode decodes one record of the named type. The caller must already
// have consumed the introducing 0/name pair.
func Decode(name string, sc *scanner.Scanner, opts codec.Options) (Record, *codec.Result, error) {
	fn, ok := records[name]
	if !ok {
		return nil, nil, errors.Errorf("no record type registered for %q", name)
	}
	return fn(sc, opts)
}
