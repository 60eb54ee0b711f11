// Package codec implements the shared tag/value decoding and encoding
// engine that every entity and object module delegates to: declarative
// field tables with occurrence rules, ordered sub-record chunk lists, and
// revision-gated emission.
package codec

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Errors surfaced by the engine. Stream failures and missing required
// fields abort a decode; the rest are recoverable and reported through
// diagnostics unless strict mode is on.
var (
	// ErrStream reports a failure of the underlying token stream.
	ErrStream = errors.New("stream error")
	// ErrMalformedValue reports a value that failed its type-specific parse.
	ErrMalformedValue = errors.New("malformed value")
	// ErrMissingRequired reports a required field left empty after decode.
	ErrMissingRequired = errors.New("missing required field")
)

type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is one recoverable finding made while decoding or encoding.
// Line is zero for encode-time diagnostics, which have no source position.
type Diagnostic struct {
	Line     int
	Code     int
	Severity Severity
	Msg      string
}

func (d Diagnostic) String() string {
	if d.Line == 0 {
		return fmt.Sprintf("%s: group %d: %s", d.Severity, d.Code, d.Msg)
	}
	return fmt.Sprintf("line %d: %s: group %d: %s", d.Line, d.Severity, d.Code, d.Msg)
}

// Result carries the diagnostics accumulated by one decode pass.
type Result struct {
	Diagnostics []Diagnostic
}

func (r *Result) warnf(line, code int, format string, args ...any) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		Line:     line,
		Code:     code,
		Severity: SeverityWarning,
		Msg:      fmt.Sprintf(format, args...),
	})
}
