// Package dxf reads and writes records of the DXF drawing interchange
// text format. The root package is a thin facade over the record loop:
// scanning happens in package scanner, field dispatch and revision gating
// in package codec, and the record types live in package entity.
package dxf

import (
	"bytes"
	"fmt"
	"io"
	"runtime"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/dxflib/dxf/codec"
	"github.com/dxflib/dxf/entity"
	"github.com/dxflib/dxf/scanner"
)

// ReadEntities decodes consecutive records from r until the stream ends
// or an EOF/ENDSEC record is reached. Records of unknown type are skipped
// with a diagnostic, so files written by newer revisions still read.
// A stream failure aborts and discards the record being decoded; records
// decoded before the failure are returned alongside the error.
func ReadEntities(r io.Reader, opts codec.Options) ([]entity.Record, []codec.Diagnostic, error) {
	sc := scanner.NewScanner(r)

	var recs []entity.Record
	var diags []codec.Diagnostic

	for {
		tag, err := sc.Next()
		if errors.Is(err, io.EOF) {
			return recs, diags, nil
		}
		if err != nil {
			return recs, diags, err
		}

		if tag.Code != 0 {
			diags = append(diags, codec.Diagnostic{
				Line:     tag.Line,
				Code:     tag.Code,
				Severity: codec.SeverityWarning,
				Msg:      "group outside of any record",
			})
			continue
		}

		name := tag.Str()
		if name == "EOF" || name == "ENDSEC" {
			return recs, diags, nil
		}

		if !entity.Known(name) {
			diags = append(diags, codec.Diagnostic{
				Line:     tag.Line,
				Code:     tag.Code,
				Severity: codec.SeverityWarning,
				Msg:      fmt.Sprintf("skipping record of unknown type %q", name),
			})
			if err := skipRecord(sc); err != nil {
				return recs, diags, err
			}
			continue
		}

		rec, res, err := entity.Decode(name, sc, opts)
		if err != nil {
			return recs, diags, err
		}
		diags = append(diags, res.Diagnostics...)
		recs = append(recs, rec)
	}
}

// skipRecord consumes tags up to the next record boundary.
func skipRecord(sc *scanner.Scanner) error {
	for {
		tag, err := sc.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if tag.Code == 0 {
			sc.Unread(tag)
			return nil
		}
	}
}

// WriteEntities encodes the records to w in order, ending with an EOF
// record. Records are independent of one another, so they are encoded
// concurrently into per-record buffers and written out sequentially.
// A record whose type postdates the target revision is omitted with a
// warning rather than corrupting the output.
func WriteEntities(w io.Writer, recs []entity.Record, opts codec.Options) ([]codec.Diagnostic, error) {
	bufs := make([]bytes.Buffer, len(recs))
	perRec := make([][]codec.Diagnostic, len(recs))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, rec := range recs {
		i, rec := i, rec
		if rec.MinRevision() > opts.Revision {
			perRec[i] = []codec.Diagnostic{{
				Severity: codec.SeverityWarning,
				Msg:      fmt.Sprintf("%s is not representable in %s, record omitted", rec.RecordName(), opts.Revision),
			}}
			continue
		}
		g.Go(func() error {
			enc := codec.NewEncoder(&bufs[i], opts)
			rec.Encode(enc)
			if err := enc.Flush(); err != nil {
				return err
			}
			perRec[i] = enc.Diagnostics()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var diags []codec.Diagnostic
	for i := range recs {
		diags = append(diags, perRec[i]...)
		if _, err := w.Write(bufs[i].Bytes()); err != nil {
			return diags, errors.Wrap(err, "dxf: write")
		}
	}

	enc := codec.NewEncoder(w, opts)
	enc.Record("EOF")
	if err := enc.Flush(); err != nil {
		return diags, err
	}
	return diags, nil
}
