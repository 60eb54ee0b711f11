package entity

import (
	"github.com/cockroachdb/errors"

	"github.com/dxflib/dxf/codec"
	"github.com/dxflib/dxf/revision"
)

// ImageDef is the raster image definition object (record name IMAGEDEF).
type ImageDef struct {
	ObjectHeader

	// ClassVersion is the class version (group 90).
	ClassVersion int
	// FileName references the image file (group 1). A definition
	// without a file name is invalid: there is no safe default.
	FileName string
	// SizeU and SizeV are the image size in pixels (groups 10/20).
	SizeU, SizeV float64
	// PixelU and PixelV are the default size of one pixel in drawing
	// units (groups 11/21).
	PixelU, PixelV float64
	// Loaded reports whether the image is loaded (group 280).
	Loaded bool
	// Units is the resolution unit of the image (group 281).
	Units int
}

func NewImageDef() *ImageDef {
	return &ImageDef{
		ObjectHeader: NewObjectHeader(),
		Loaded:       true,
	}
}

var imageDefTable = func() *codec.Table[ImageDef] {
	t := codec.NewTable[ImageDef]("IMAGEDEF")
	bindObjectHeader(t, func(e *ImageDef) *ObjectHeader { return &e.ObjectHeader })
	t.Subclass("AcDbRasterImageDef").
		Handle(90, codec.Int(func(e *ImageDef) *int { return &e.ClassVersion })).
		Handle(1, codec.Str(func(e *ImageDef) *string { return &e.FileName })).
		Handle(10, codec.Float(func(e *ImageDef) *float64 { return &e.SizeU })).
		Handle(20, codec.Float(func(e *ImageDef) *float64 { return &e.SizeV })).
		Handle(11, codec.Float(func(e *ImageDef) *float64 { return &e.PixelU })).
		Handle(21, codec.Float(func(e *ImageDef) *float64 { return &e.PixelV })).
		Handle(280, codec.Bool(func(e *ImageDef) *bool { return &e.Loaded })).
		Handle(281, codec.Int(func(e *ImageDef) *int { return &e.Units })).
		Finalize(func(e *ImageDef) error {
			if e.FileName == "" {
				return errors.Mark(errors.New("IMAGEDEF: file name group (1) is empty"), codec.ErrMissingRequired)
			}
			return nil
		})
	return t
}()

func (e *ImageDef) RecordName() string {
	return "IMAGEDEF"
}

func (e *ImageDef) MinRevision() revision.Revision {
	return revision.R14
}

func (e *ImageDef) Encode(enc *codec.Encoder) {
	e.encodeCommon(enc, e.RecordName())
	enc.Subclass("AcDbRasterImageDef")
	enc.Int(90, e.ClassVersion)
	enc.Str(1, e.FileName)
	enc.Float(10, e.SizeU)
	enc.Float(20, e.SizeV)
	enc.Float(11, e.PixelU)
	enc.Float(21, e.PixelV)
	enc.Bool(280, e.Loaded)
	enc.Int(281, e.Units)
}
