package codec

import (
	"fmt"
	"io"

	"github.com/dxflib/dxf/revision"
	"github.com/dxflib/dxf/scanner"
)

// Encoder emits tag/value pairs for one record in canonical order. Typed
// emit helpers are individually gated by the version policy: a populated
// field whose feature is not legal in the target revision is omitted and
// reported as a warning, never a hard failure.
//
// Write errors are sticky; once one occurs every later call is a no-op
// and Flush returns the first error.
type Encoder struct {
	w     *scanner.Writer
	rev   revision.Revision
	word  WordSize
	diags []Diagnostic
	err   error
}

func NewEncoder(w io.Writer, opts Options) *Encoder {
	return &Encoder{
		w:    scanner.NewWriter(w),
		rev:  opts.Revision,
		word: opts.WordSize,
	}
}

// Revision returns the revision the encoder targets.
func (e *Encoder) Revision() revision.Revision {
	return e.rev
}

// Diagnostics returns the warnings produced so far.
func (e *Encoder) Diagnostics() []Diagnostic {
	return e.diags
}

// Flush writes out buffered output and returns the first write error.
func (e *Encoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	return e.w.Flush()
}

func (e *Encoder) emit(fn func() error) {
	if e.err != nil {
		return
	}
	e.err = fn()
}

// Record starts a new record: the 0/name pair.
func (e *Encoder) Record(name string) {
	e.emit(func() error { return e.w.Str(0, name) })
}

func (e *Encoder) Str(code int, v string) {
	e.emit(func() error { return e.w.Str(code, v) })
}

// OptStr emits the group only when the value is non-empty.
func (e *Encoder) OptStr(code int, v string) {
	if v != "" {
		e.Str(code, v)
	}
}

func (e *Encoder) Int(code, v int) {
	e.emit(func() error { return e.w.Int(code, v) })
}

// Bool emits a flag group as 0 or 1.
func (e *Encoder) Bool(code int, v bool) {
	n := 0
	if v {
		n = 1
	}
	e.Int(code, n)
}

func (e *Encoder) Float(code int, v float64) {
	e.emit(func() error { return e.w.Float(code, v) })
}

func (e *Encoder) Hex(code int, v int64) {
	e.emit(func() error { return e.w.Hex(code, v) })
}

// Gate reports whether the feature is legal in the target revision,
// without producing a diagnostic.
func (e *Encoder) Gate(f revision.Feature) bool {
	return revision.Gate(f, e.rev)
}

// dropped records the omission of a populated field that has no legal
// representation in the target revision.
func (e *Encoder) dropped(f revision.Feature, code int) {
	e.diags = append(e.diags, Diagnostic{
		Code:     code,
		Severity: SeverityWarning,
		Msg:      fmt.Sprintf("%s is not representable in %s, group omitted", f, e.rev),
	})
}

// GatedStr emits the group when the feature is legal and the value is
// non-empty. A populated value outside the feature's span is dropped with
// a warning.
func (e *Encoder) GatedStr(f revision.Feature, code int, v string) {
	if v == "" {
		return
	}
	if !e.Gate(f) {
		e.dropped(f, code)
		return
	}
	e.Str(code, v)
}

// GatedInt emits the group when the feature is legal and the value
// differs from its documented default.
func (e *Encoder) GatedInt(f revision.Feature, code, v, def int) {
	if v == def {
		return
	}
	if !e.Gate(f) {
		e.dropped(f, code)
		return
	}
	e.Int(code, v)
}

// GatedFloat is GatedInt for double groups.
func (e *Encoder) GatedFloat(f revision.Feature, code int, v, def float64) {
	if v == def {
		return
	}
	if !e.Gate(f) {
		e.dropped(f, code)
		return
	}
	e.Float(code, v)
}

// GatedHex emits a handle group when the feature is legal and the handle
// is assigned.
func (e *Encoder) GatedHex(f revision.Feature, code int, v int64) {
	if v < 0 {
		return
	}
	if !e.Gate(f) {
		e.dropped(f, code)
		return
	}
	e.Hex(code, v)
}

// Subclass emits a subclass marker literal when markers are legal in the
// target revision.
func (e *Encoder) Subclass(name string) {
	if e.Gate(revision.FeatureSubclassMarker) {
		e.Str(100, name)
	}
}

// AppGroup emits one 102-delimited application group around the groups
// written by body. Nothing is emitted when the feature is gated out.
func (e *Encoder) AppGroup(f revision.Feature, name string, body func()) {
	if !e.Gate(f) {
		return
	}
	e.Str(102, "{"+name)
	body()
	e.Str(102, "}")
}

// Chunks emits every chunk of the list under one group code, in
// insertion order.
func (e *Encoder) Chunks(code int, l *ChunkList) {
	for _, c := range l.All() {
		e.Str(code, c.Data)
	}
}

// Interleaved re-merges two independently grown chunk lists by their
// stored order index and emits each chunk under its own list's group
// code. Either list may run out before the other.
func (e *Encoder) Interleaved(codeA int, a *ChunkList, codeB int, b *ChunkList) {
	for _, c := range InterleaveCoded(CodedList{codeA, a}, CodedList{codeB, b}) {
		e.Str(c.Code, c.Chunk.Data)
	}
}

// Graphics emits the embedded graphics block: the byte count under group
// 92 or 160 depending on the target word size, then the 310 data chunks.
// A record carrying a byte count with no retained data lines still emits
// the count group so the value survives a rewrite.
func (e *Encoder) Graphics(size int, l *ChunkList) {
	if size == 0 && l.Len() == 0 {
		return
	}
	if !e.Gate(revision.FeatureProxyGraphics) {
		e.dropped(revision.FeatureProxyGraphics, 310)
		return
	}
	code := 92
	if e.word == Word64 {
		code = 160
	}
	e.Int(code, size)
	e.Chunks(310, l)
}
