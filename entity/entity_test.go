package entity_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/dxflib/dxf/codec"
	"github.com/dxflib/dxf/entity"
	"github.com/dxflib/dxf/internal/testutil/assert"
	"github.com/dxflib/dxf/revision"
	"github.com/dxflib/dxf/scanner"
)

// roundTrip encodes rec at the given revision and decodes the result
// again, reporting encode diagnostics to the caller.
func roundTrip(t *testing.T, rec entity.Record, opts codec.Options) (entity.Record, []codec.Diagnostic) {
	t.Helper()

	var buf bytes.Buffer
	enc := codec.NewEncoder(&buf, opts)
	rec.Encode(enc)
	enc.Record("EOF")
	require.NoError(t, enc.Flush())

	sc := scanner.NewScanner(&buf)
	tag, err := sc.Next()
	require.NoError(t, err)
	require.Equal(t, 0, tag.Code)
	require.Equal(t, rec.RecordName(), tag.Str())

	got, res, err := entity.Decode(tag.Str(), sc, opts)
	assert.NoError(t, err)
	require.Empty(t, res.Diagnostics)
	return got, enc.Diagnostics()
}

func TestRoundTrip(t *testing.T) {
	solid := entity.NewSolid3D()
	solid.ID = 0x2F
	solid.LayerName = "SOLIDS"
	solid.LinetypeName = "DASHED"
	solid.Color = 3
	solid.Lineweight = 25
	solid.ColorValue = 0xFF00FF
	solid.ColorName = "magenta"
	solid.Transparency = 5
	solid.Material = "9C"
	solid.PlotStyle = "9D"
	solid.ShadowMode = 1
	solid.DictionarySoft = "AA"
	solid.DictionaryHard = "AB"
	solid.ObjectOwner = "AC"
	solid.Reactors.AppendData("D1")
	solid.Reactors.AppendData("D2")
	solid.GraphicsSize = 2
	solid.Graphics.AppendData("CAFE")
	solid.ModelerFormat = 1
	solid.Proprietary.Append(codec.Chunk{Order: 1, Data: "p1"})
	solid.AdditionalProprietary.Append(codec.Chunk{Order: 2, Data: "a1"})
	solid.Proprietary.Append(codec.Chunk{Order: 3, Data: "p2"})
	solid.History = 0x77

	trace := entity.NewTrace()
	trace.ID = 0x30
	trace.LayerName = "WALLS"
	trace.P0 = entity.Point{X: 0, Y: 0}
	trace.P1 = entity.Point{X: 1, Y: 0.5}
	trace.P2 = entity.Point{X: 0, Y: 2}
	trace.P3 = entity.Point{X: 1, Y: 2.5}
	trace.Thickness = 0.5
	trace.Extrusion = entity.Point{X: 0, Y: 0, Z: -1}

	rtext := entity.NewRText()
	rtext.ID = 0x31
	rtext.Insertion = entity.Point{X: 4, Y: 5, Z: 6}
	rtext.Height = 2.5
	rtext.Rotation = 45
	rtext.TypeFlags = 1
	rtext.Style = "NOTES"
	rtext.Contents = "$(getvar, dwgname)"

	ole := entity.NewOleFrame()
	ole.ID = 0x32
	ole.UpperLeft = entity.Point{X: 0, Y: 10}
	ole.LowerRight = entity.Point{X: 10, Y: 0}
	ole.OleType = 3
	ole.TileMode = 1
	ole.DataSize = 4
	ole.Data.AppendData("DEADBEEF")

	sun := entity.NewSun()
	sun.ID = 0x33
	sun.On = true
	sun.Color = 40
	sun.Intensity = 0.75
	sun.Shadows = true
	sun.JulianDay = 2451545
	sun.Seconds = 43200
	sun.ShadowType = 1
	sun.ShadowMapSize = 256
	sun.ShadowSoftness = 2

	img := entity.NewImageDef()
	img.ID = 0x34
	img.FileName = "textures/brick.png"
	img.SizeU = 640
	img.SizeV = 480
	img.PixelU = 0.01
	img.PixelV = 0.01
	img.Units = 5

	recs := []entity.Record{solid, trace, rtext, ole, sun, img}

	for _, rec := range recs {
		rec := rec
		t.Run(rec.RecordName(), func(t *testing.T) {
			got, diags := roundTrip(t, rec, codec.Options{Revision: revision.R2018})
			require.Empty(t, diags)
			if diff := cmp.Diff(rec, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoundTripOldRevisionDropsNewFields(t *testing.T) {
	solid := entity.NewSolid3D()
	solid.ID = 0x2F
	solid.LayerName = "SOLIDS"
	solid.ColorValue = 0xFF00FF // needs R2004
	solid.Lineweight = 25       // needs R2002

	got, diags := roundTrip(t, solid, codec.Options{Revision: revision.R2000})
	require.Len(t, diags, 2)

	s := got.(*entity.Solid3D)
	require.EqualValues(t, 0x2F, s.ID)
	require.Equal(t, "SOLIDS", s.LayerName)
	// gated-out fields come back as their defaults, not the originals
	require.Equal(t, 0, s.ColorValue)
	require.Equal(t, 0, s.Lineweight)
}

func TestRoundTripBeforeHandles(t *testing.T) {
	trace := entity.NewTrace()
	trace.ID = 0x30
	trace.P1 = entity.Point{X: 1}

	got, diags := roundTrip(t, trace, codec.Options{Revision: revision.R12})
	require.Len(t, diags, 1) // the assigned handle has no R12 form

	tr := got.(*entity.Trace)
	require.EqualValues(t, -1, tr.ID)
	require.Equal(t, 1.0, tr.P1.X)
}

func TestCommonGroupRoundTrip(t *testing.T) {
	opts := codec.Options{Revision: revision.R2018}

	t.Run("color by block", func(t *testing.T) {
		solid := entity.NewSolid3D()
		solid.Color = 0
		got, diags := roundTrip(t, solid, opts)
		require.Empty(t, diags)
		require.Equal(t, 0, got.(*entity.Solid3D).Color)
	})

	t.Run("thickness", func(t *testing.T) {
		solid := entity.NewSolid3D()
		solid.Thickness = 2.5
		got, diags := roundTrip(t, solid, opts)
		require.Empty(t, diags)
		require.Equal(t, 2.5, got.(*entity.Solid3D).Thickness)
	})

	t.Run("graphics byte count with no data lines", func(t *testing.T) {
		solid := entity.NewSolid3D()
		solid.GraphicsSize = 16
		got, diags := roundTrip(t, solid, opts)
		require.Empty(t, diags)
		require.Equal(t, 16, got.(*entity.Solid3D).GraphicsSize)
	})
}

func TestOwnerRoundTripPartial(t *testing.T) {
	opts := codec.Options{Revision: revision.R2018}

	t.Run("object owner only", func(t *testing.T) {
		solid := entity.NewSolid3D()
		solid.ObjectOwner = "ABCD"
		got, _ := roundTrip(t, solid, opts)

		s := got.(*entity.Solid3D)
		require.Equal(t, "ABCD", s.ObjectOwner)
		require.Empty(t, s.DictionarySoft)
		require.Zero(t, s.Reactors.Len())
	})

	t.Run("soft owner and reactors only", func(t *testing.T) {
		solid := entity.NewSolid3D()
		solid.DictionarySoft = "AA"
		solid.Reactors.AppendData("R1")
		solid.Reactors.AppendData("R2")
		got, _ := roundTrip(t, solid, opts)

		s := got.(*entity.Solid3D)
		require.Equal(t, "AA", s.DictionarySoft)
		require.Empty(t, s.ObjectOwner)
		require.Equal(t, []string{"R1", "R2"}, s.Reactors.Strings())
	})

	t.Run("reactors only", func(t *testing.T) {
		solid := entity.NewSolid3D()
		solid.Reactors.AppendData("R1")
		got, _ := roundTrip(t, solid, opts)

		s := got.(*entity.Solid3D)
		require.Empty(t, s.DictionarySoft)
		require.Empty(t, s.ObjectOwner)
		require.Equal(t, []string{"R1"}, s.Reactors.Strings())
	})
}

func TestOwnerGroupRouting(t *testing.T) {
	input := "  0\nTRACE\n" +
		"102\n{ACAD_REACTORS\n" +
		"330\nAA\n" +
		"330\nR1\n" +
		"330\nR2\n" +
		"102\n}\n" +
		"330\nAC\n" +
		"  0\n"
	rec, res, err := decodeRecord(t, input, codec.Options{Revision: revision.R2018})
	assert.NoError(t, err)
	require.Empty(t, res.Diagnostics)

	tr := rec.(*entity.Trace)
	require.Equal(t, "AA", tr.DictionarySoft)
	require.Equal(t, "AC", tr.ObjectOwner)
	require.Equal(t, []string{"R1", "R2"}, tr.Reactors.Strings())
}

func TestDefaultSubstitution(t *testing.T) {
	// records whose layer and linetype values are empty strings
	inputs := map[string]string{
		"3DSOLID":   "  0\n3DSOLID\n  8\n\n  6\n\n  0\n",
		"TRACE":     "  0\nTRACE\n  8\n\n  6\n\n  0\n",
		"RTEXT":     "  0\nRTEXT\n  8\n\n  6\n\n  1\ntext\n  0\n",
		"OLE2FRAME": "  0\nOLE2FRAME\n  8\n\n  6\n\n  0\n",
	}

	layerOf := func(rec entity.Record) (string, string) {
		switch e := rec.(type) {
		case *entity.Solid3D:
			return e.LayerName, e.LinetypeName
		case *entity.Trace:
			return e.LayerName, e.LinetypeName
		case *entity.RText:
			return e.LayerName, e.LinetypeName
		case *entity.OleFrame:
			return e.LayerName, e.LinetypeName
		}
		panic(fmt.Sprintf("unhandled type %T", rec))
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			rec, _, err := decodeRecord(t, input, codec.Options{Revision: revision.R2000})
			assert.NoError(t, err)

			layer, linetype := layerOf(rec)
			require.Equal(t, entity.DefaultLayer, layer)
			require.Equal(t, entity.DefaultLinetype, linetype)
		})
	}
}

func TestRTextRequiresContents(t *testing.T) {
	t.Run("absent contents", func(t *testing.T) {
		_, _, err := decodeRecord(t, "  0\nRTEXT\n  8\nL1\n  0\n",
			codec.Options{Revision: revision.R2000})
		assert.ErrorIs(t, err, codec.ErrMissingRequired)
	})

	t.Run("empty contents", func(t *testing.T) {
		_, _, err := decodeRecord(t, "  0\nRTEXT\n  1\n\n  0\n",
			codec.Options{Revision: revision.R2000})
		assert.ErrorIs(t, err, codec.ErrMissingRequired)
	})
}

func TestImageDefRequiresFileName(t *testing.T) {
	_, _, err := decodeRecord(t, "  0\nIMAGEDEF\n 90\n0\n  0\n",
		codec.Options{Revision: revision.R2000})
	assert.ErrorIs(t, err, codec.ErrMissingRequired)
}

func TestOleFrameEndMarker(t *testing.T) {
	ole := entity.NewOleFrame()
	ole.DataSize = 4
	ole.Data.AppendData("DEADBEEF")

	var buf bytes.Buffer
	enc := codec.NewEncoder(&buf, codec.Options{Revision: revision.R2000})
	ole.Encode(enc)
	require.NoError(t, enc.Flush())

	require.Contains(t, buf.String(), "310\nDEADBEEF\n  1\nOLE\n")
}

func TestGraphicsWordSize(t *testing.T) {
	solid := entity.NewSolid3D()
	solid.GraphicsSize = 2
	solid.Graphics.AppendData("CAFE")

	var buf bytes.Buffer
	enc := codec.NewEncoder(&buf, codec.Options{Revision: revision.R2004, WordSize: codec.Word64})
	solid.Encode(enc)
	require.NoError(t, enc.Flush())
	require.Contains(t, buf.String(), "160\n2\n310\nCAFE\n")

	// both count groups are accepted on decode
	rec, _, err := decodeRecord(t, "  0\n3DSOLID\n160\n2\n310\nCAFE\n  0\n",
		codec.Options{Revision: revision.R2004})
	assert.NoError(t, err)
	require.Equal(t, 2, rec.(*entity.Solid3D).GraphicsSize)
	require.Equal(t, []string{"CAFE"}, rec.(*entity.Solid3D).Graphics.Strings())
}
