package entity

import (
	"github.com/golang-module/carbon/v2"

	"github.com/dxflib/dxf/codec"
	"github.com/dxflib/dxf/revision"
)

// Sun is the sun study object (record name SUN). The moment of the study
// is stored on the wire as a Julian day number (group 91) and seconds
// past midnight (group 92); DateTime and SetDateTime expose it as a
// calendar value.
type Sun struct {
	ObjectHeader

	// Version is the class version (group 90).
	Version int
	// On reports whether the sun is enabled (group 290).
	On bool
	// Color is the sun color index (group 63).
	Color int
	// Intensity is the light intensity (group 40).
	Intensity float64
	// Shadows reports whether the sun casts shadows (group 291).
	Shadows bool
	// JulianDay is the date of the study (group 91).
	JulianDay int
	// Seconds is the time of the study, in seconds past midnight
	// (group 92).
	Seconds int
	// DaylightSavings reports the daylight savings status (group 292).
	DaylightSavings bool
	// ShadowType selects ray traced or mapped shadows (group 70).
	ShadowType int
	// ShadowMapSize is the shadow map resolution (group 71).
	ShadowMapSize int
	// ShadowSoftness is the shadow softness factor (group 280).
	ShadowSoftness int
}

func NewSun() *Sun {
	return &Sun{
		ObjectHeader: NewObjectHeader(),
		Version:      1,
		Intensity:    1,
	}
}

// DateTime returns the moment of the study as a calendar value in UTC.
func (e *Sun) DateTime() carbon.Carbon {
	y, m, d := civilFromJulianDay(e.JulianDay)
	sec := e.Seconds
	return carbon.CreateFromDateTime(y, m, d, sec/3600, sec/60%60, sec%60, carbon.UTC)
}

// SetDateTime stores the calendar value as a Julian day number and
// seconds past midnight.
func (e *Sun) SetDateTime(c carbon.Carbon) {
	e.JulianDay = julianDayFromCivil(c.Year(), c.Month(), c.Day())
	e.Seconds = c.Hour()*3600 + c.Minute()*60 + c.Second()
}

// julianDayFromCivil converts a proleptic Gregorian date to a Julian day
// number (Fliegel & Van Flandern).
func julianDayFromCivil(y, m, d int) int {
	a := (m - 14) / 12
	return (1461*(y+4800+a))/4 +
		(367*(m-2-12*a))/12 -
		(3*((y+4900+a)/100))/4 +
		d - 32075
}

// civilFromJulianDay is the inverse of julianDayFromCivil.
func civilFromJulianDay(jdn int) (y, m, d int) {
	l := jdn + 68569
	n := (4 * l) / 146097
	l -= (146097*n + 3) / 4
	i := (4000 * (l + 1)) / 1461001
	l -= (1461*i)/4 - 31
	j := (80 * l) / 2447
	d = l - (2447*j)/80
	l = j / 11
	m = j + 2 - 12*l
	y = 100*(n-49) + i + l
	return y, m, d
}

var sunTable = func() *codec.Table[Sun] {
	t := codec.NewTable[Sun]("SUN")
	bindObjectHeader(t, func(e *Sun) *ObjectHeader { return &e.ObjectHeader })
	t.Subclass("AcDbSun").
		Handle(90, codec.Int(func(e *Sun) *int { return &e.Version })).
		Handle(290, codec.Bool(func(e *Sun) *bool { return &e.On })).
		Handle(63, codec.Int(func(e *Sun) *int { return &e.Color })).
		Handle(40, codec.Float(func(e *Sun) *float64 { return &e.Intensity })).
		Handle(291, codec.Bool(func(e *Sun) *bool { return &e.Shadows })).
		Handle(91, codec.Int(func(e *Sun) *int { return &e.JulianDay })).
		Handle(92, codec.Int(func(e *Sun) *int { return &e.Seconds })).
		Handle(292, codec.Bool(func(e *Sun) *bool { return &e.DaylightSavings })).
		Handle(70, codec.Int(func(e *Sun) *int { return &e.ShadowType })).
		Handle(71, codec.Int(func(e *Sun) *int { return &e.ShadowMapSize })).
		Handle(280, codec.Int(func(e *Sun) *int { return &e.ShadowSoftness }))
	return t
}()

func (e *Sun) RecordName() string {
	return "SUN"
}

func (e *Sun) MinRevision() revision.Revision {
	return revision.R2007
}

func (e *Sun) Encode(enc *codec.Encoder) {
	e.encodeCommon(enc, e.RecordName())
	enc.Subclass("AcDbSun")
	enc.Int(90, e.Version)
	enc.Bool(290, e.On)
	enc.Int(63, e.Color)
	enc.Float(40, e.Intensity)
	enc.Bool(291, e.Shadows)
	enc.Int(91, e.JulianDay)
	enc.Int(92, e.Seconds)
	enc.Bool(292, e.DaylightSavings)
	enc.Int(70, e.ShadowType)
	enc.Int(71, e.ShadowMapSize)
	enc.Int(280, e.ShadowSoftness)
}
