// Package scanner reads and writes the tag/value pair stream that makes up
// a DXF drawing. Every record in the file is a flat sequence of pairs, one
// group code line followed by one value line.
package scanner

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Tag is one group code / value pair. Line is the line number of the group
// code line, used for diagnostics only.
type Tag struct {
	Code  int
	Value string
	Line  int
}

// Int parses the value as a decimal integer.
func (t Tag) Int() (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(t.Value))
	if err != nil {
		return 0, errors.Wrapf(err, "group %d", t.Code)
	}
	return n, nil
}

// Float parses the value as a decimal floating point number.
func (t Tag) Float() (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "group %d", t.Code)
	}
	return f, nil
}

// Hex parses the value as a hexadecimal handle.
func (t Tag) Hex() (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(t.Value), 16, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "group %d", t.Code)
	}
	return n, nil
}

// Str returns the value with surrounding blanks removed.
func (t Tag) Str() string {
	return strings.TrimSpace(t.Value)
}

// Scanner pulls tags off an underlying reader. It keeps a line counter for
// diagnostics and a one-tag pushback slot so a caller that reads up to a
// record boundary can hand the boundary tag back.
type Scanner struct {
	br     *bufio.Reader
	line   int
	unread *Tag
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		br: bufio.NewReader(r),
	}
}

// Next returns the next tag. It returns io.EOF once the stream is
// exhausted at a pair boundary. A stream that ends between a group code
// line and its value line is reported as an error, not as EOF.
func (s *Scanner) Next() (Tag, error) {
	if s.unread != nil {
		t := *s.unread
		s.unread = nil
		return t, nil
	}

	var codeStr string
	var codeLine int
	for {
		line, err := s.readLine()
		if err != nil {
			return Tag{}, err
		}
		codeStr = strings.TrimSpace(line)
		codeLine = s.line
		if codeStr != "" {
			break
		}
		// blank lines between pairs are tolerated
	}

	code, err := strconv.Atoi(codeStr)
	if err != nil {
		return Tag{}, errors.Errorf("line %d: invalid group code %q", codeLine, codeStr)
	}

	value, err := s.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Tag{}, errors.Errorf("line %d: group %d has no value line", codeLine, code)
		}
		return Tag{}, err
	}

	return Tag{
		Code:  code,
		Value: strings.TrimRight(value, "\r\n"),
		Line:  codeLine,
	}, nil
}

// Unread pushes t back so the next call to Next returns it again. Only one
// tag can be pending at a time.
func (s *Scanner) Unread(t Tag) {
	s.unread = &t
}

// Line reports the line number of the most recently read line.
func (s *Scanner) Line() int {
	return s.line
}

func (s *Scanner) readLine() (string, error) {
	line, err := s.br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			// final line without a trailing newline
			s.line++
			return line, nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", errors.Wrap(err, "dxf: read")
	}
	s.line++
	return line, nil
}
