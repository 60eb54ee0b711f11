package scanner_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dxflib/dxf/scanner"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := scanner.NewWriter(&buf)

	require.NoError(t, w.Str(0, "3DSOLID"))
	require.NoError(t, w.Hex(5, 0x1A))
	require.NoError(t, w.Int(70, 1))
	require.NoError(t, w.Float(40, 2.5))
	require.NoError(t, w.Flush())

	require.Equal(t, "  0\n3DSOLID\n  5\n1A\n 70\n1\n 40\n2.5\n", buf.String())
}

func TestWriterFloatLossless(t *testing.T) {
	var buf bytes.Buffer
	w := scanner.NewWriter(&buf)

	require.NoError(t, w.Float(10, 0.1))
	require.NoError(t, w.Float(20, 1.0/3.0))
	require.NoError(t, w.Flush())

	sc := scanner.NewScanner(&buf)
	tag, err := sc.Next()
	require.NoError(t, err)
	f, err := tag.Float()
	require.NoError(t, err)
	require.Equal(t, 0.1, f)

	tag, err = sc.Next()
	require.NoError(t, err)
	f, err = tag.Float()
	require.NoError(t, err)
	require.Equal(t, 1.0/3.0, f)
}

func TestWriterWideGroupCode(t *testing.T) {
	var buf bytes.Buffer
	w := scanner.NewWriter(&buf)

	require.NoError(t, w.Str(330, "DEAD"))
	require.NoError(t, w.Flush())

	require.Equal(t, "330\nDEAD\n", buf.String())
}
