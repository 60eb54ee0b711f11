// Package revision models the named releases of the drawing interchange
// format and the per-feature rules that decide which group codes are legal
// to read or write for a given release.
package revision

import (
	"github.com/cockroachdb/errors"
)

// Revision identifies one release of the format. The ordinals are ordered,
// so revisions compare with the usual operators.
type Revision int

const (
	Unknown Revision = iota
	R10
	R11
	R12
	R13
	R14
	R2000
	R2002
	R2004
	R2006
	R2007
	R2010
	R2013
	R2018
)

var names = map[Revision]string{
	R10:   "R10",
	R11:   "R11",
	R12:   "R12",
	R13:   "R13",
	R14:   "R14",
	R2000: "R2000",
	R2002: "R2002",
	R2004: "R2004",
	R2006: "R2006",
	R2007: "R2007",
	R2010: "R2010",
	R2013: "R2013",
	R2018: "R2018",
}

// acadCodes maps each revision to the version string written in the
// drawing header. Several releases share one on-disk code.
var acadCodes = map[Revision]string{
	R10:   "AC1006",
	R11:   "AC1009",
	R12:   "AC1009",
	R13:   "AC1012",
	R14:   "AC1014",
	R2000: "AC1015",
	R2002: "AC1015",
	R2004: "AC1018",
	R2006: "AC1018",
	R2007: "AC1021",
	R2010: "AC1024",
	R2013: "AC1027",
	R2018: "AC1032",
}

// parseCodes maps an on-disk version code back to the canonical (first)
// revision that used it.
var parseCodes = map[string]Revision{
	"AC1006": R10,
	"AC1009": R12,
	"AC1012": R13,
	"AC1014": R14,
	"AC1015": R2000,
	"AC1018": R2004,
	"AC1021": R2007,
	"AC1024": R2010,
	"AC1027": R2013,
	"AC1032": R2018,
}

func (r Revision) String() string {
	if s, ok := names[r]; ok {
		return s
	}
	return "unknown"
}

// AcadCode returns the header version string for the revision.
func (r Revision) AcadCode() string {
	return acadCodes[r]
}

// Supported reports whether r is one of the revisions this library can
// target.
func Supported(r Revision) bool {
	_, ok := names[r]
	return ok
}

// Parse resolves either a release name ("R2000") or an on-disk version
// code ("AC1015") to a revision.
func Parse(s string) (Revision, error) {
	for r, n := range names {
		if n == s {
			return r, nil
		}
	}
	if r, ok := parseCodes[s]; ok {
		return r, nil
	}
	return Unknown, errors.Errorf("unknown format revision %q", s)
}
