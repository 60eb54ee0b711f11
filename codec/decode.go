package codec

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/dxflib/dxf/revision"
	"github.com/dxflib/dxf/scanner"
)

// WordSize selects which group carries the graphics data byte count at
// encode time. Both forms are always accepted on decode.
type WordSize int

const (
	Word32 WordSize = iota // group 92
	Word64                 // group 160
)

// Options configure one decode or encode pass.
type Options struct {
	// Revision is the format revision being read or targeted.
	Revision revision.Revision
	// Strict escalates malformed values from recorded warnings to hard
	// decode errors. The default mirrors the historical behavior of
	// skipping the field and carrying on.
	Strict bool
	// WordSize selects the graphics byte count group on encode.
	WordSize WordSize
}

// Decode drives the scanner through the field table until the record
// terminator (group 0), populating e. The terminator is pushed back so
// the caller's record loop sees it again.
//
// The 102 application group delimiters are consumed by the driver: they
// open and close a named scope, and codes registered with InGroup for
// that scope are routed through their own occurrence chain while it is
// open.
//
// Unknown group codes never abort the decode; they are recorded and
// skipped so files written by newer revisions still read. Stream failures
// abort immediately and e must be discarded.
func Decode[E any](sc *scanner.Scanner, tbl *Table[E], e *E, opts Options) (*Result, error) {
	type scope struct {
		group string
		code  int
	}
	res := &Result{}
	occ := make(map[scope]int)
	group := ""

	for {
		tag, err := sc.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.Mark(errors.Errorf("%s: stream ended before record terminator", tbl.name), ErrStream)
			}
			return nil, errors.Mark(err, ErrStream)
		}

		if tag.Code == 0 {
			sc.Unread(tag)
			break
		}

		if tag.Code == 100 {
			// subclass markers are diagnostic only, never stored
			if tbl.subclass != nil && !tbl.subclass[tag.Str()] {
				res.warnf(tag.Line, tag.Code, "unexpected subclass marker %q in %s", tag.Str(), tbl.name)
			}
			continue
		}

		if tag.Code == 102 {
			if v := tag.Str(); strings.HasPrefix(v, "{") {
				group = strings.TrimPrefix(v, "{")
			} else {
				group = ""
			}
			continue
		}

		key := scope{code: tag.Code}
		var chain []entry[E]
		if group != "" {
			if c := tbl.groups[group][tag.Code]; c != nil {
				chain = c
				key.group = group
			}
		}
		if chain == nil {
			var ok bool
			chain, ok = tbl.entries[tag.Code]
			if !ok {
				res.warnf(tag.Line, tag.Code, "unknown group code in %s", tbl.name)
				continue
			}
		}

		i := occ[key]
		occ[key]++
		if i >= len(chain) {
			last := chain[len(chain)-1]
			if !last.repeat {
				res.warnf(tag.Line, tag.Code, "group repeated %d times in %s", i+1, tbl.name)
				continue
			}
			i = len(chain) - 1
		}
		ent := chain[i]

		if ent.gated && !revision.Gate(ent.feature, opts.Revision) {
			res.warnf(tag.Line, tag.Code, "%s group is not valid in %s", ent.feature, opts.Revision)
		}

		if err := ent.store(e, tag); err != nil {
			if !errors.Is(err, ErrMalformedValue) {
				return nil, err
			}
			if opts.Strict {
				return nil, errors.Wrapf(err, "line %d", tag.Line)
			}
			res.warnf(tag.Line, tag.Code, "%v", err)
		}
	}

	for _, fn := range tbl.finalize {
		if err := fn(e); err != nil {
			return nil, err
		}
	}
	return res, nil
}
