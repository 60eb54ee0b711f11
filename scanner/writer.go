package scanner

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Writer emits tag/value pairs. Group codes are right aligned to width 3,
// the historical layout most readers expect. Values are written verbatim.
type Writer struct {
	bw *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		bw: bufio.NewWriter(w),
	}
}

// Tag writes one pair.
func (w *Writer) Tag(code int, value string) error {
	_, err := fmt.Fprintf(w.bw, "%3d\n%s\n", code, value)
	return err
}

func (w *Writer) Str(code int, value string) error {
	return w.Tag(code, value)
}

func (w *Writer) Int(code, value int) error {
	return w.Tag(code, strconv.Itoa(value))
}

// Hex writes a handle value in uppercase hexadecimal, the form group 5
// and the owner handle groups use.
func (w *Writer) Hex(code int, value int64) error {
	return w.Tag(code, fmt.Sprintf("%X", value))
}

// Float writes the shortest decimal form that parses back to the same
// float64, so that re-encoding a decoded record is lossless.
func (w *Writer) Float(code int, value float64) error {
	return w.Tag(code, strconv.FormatFloat(value, 'f', -1, 64))
}

func (w *Writer) Flush() error {
	return w.bw.Flush()
}
