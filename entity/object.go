package entity

import (
	"github.com/dxflib/dxf/codec"
	"github.com/dxflib/dxf/revision"
)

// ObjectHeader is the slimmer common block of non-graphical objects:
// identifier and owner handles only, no display attributes.
type ObjectHeader struct {
	// ID is the unique identifier (group 5), -1 while unassigned.
	ID int64

	// DictionarySoft is the soft owner handle, the first group 330
	// inside the ACAD_REACTORS application group.
	DictionarySoft string
	// ObjectOwner is the bare group 330 outside any application group.
	ObjectOwner string
	// Reactors collects the remaining group 330 occurrences, in order.
	Reactors codec.ChunkList

	DictionaryHard string // group 360
}

func NewObjectHeader() ObjectHeader {
	return ObjectHeader{
		ID: -1,
	}
}

func bindObjectHeader[E any](t *codec.Table[E], hdr func(*E) *ObjectHeader) {
	t.Handle(5, codec.Hex(func(e *E) *int64 { return &hdr(e).ID })).
		InGroup("ACAD_REACTORS", 330, codec.Str(func(e *E) *string { return &hdr(e).DictionarySoft })).
		InGroupRepeat("ACAD_REACTORS", 330, codec.Chunks(func(e *E) *codec.ChunkList { return &hdr(e).Reactors })).
		InGroup("ACAD_XDICTIONARY", 360, codec.Str(func(e *E) *string { return &hdr(e).DictionaryHard })).
		Handle(330, codec.Str(func(e *E) *string { return &hdr(e).ObjectOwner })).
		Repeat(330, codec.Chunks(func(e *E) *codec.ChunkList { return &hdr(e).Reactors })).
		Handle(360, codec.Str(func(e *E) *string { return &hdr(e).DictionaryHard }))
}

func (h *ObjectHeader) encodeCommon(enc *codec.Encoder, name string) {
	enc.Record(name)
	enc.GatedHex(revision.FeatureHandle, 5, h.ID)
	if h.DictionarySoft != "" || h.Reactors.Len() > 0 {
		enc.AppGroup(revision.FeatureReactors, "ACAD_REACTORS", func() {
			// the soft owner slot is written even when empty so the
			// reactor handles keep their later occurrence positions
			enc.Str(330, h.DictionarySoft)
			enc.Chunks(330, &h.Reactors)
		})
	}
	if h.DictionaryHard != "" {
		enc.AppGroup(revision.FeatureXDictionary, "ACAD_XDICTIONARY", func() {
			enc.Str(360, h.DictionaryHard)
		})
	}
	enc.GatedStr(revision.FeatureObjectOwner, 330, h.ObjectOwner)
}
