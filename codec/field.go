package codec

import (
	"github.com/cockroachdb/errors"

	"github.com/dxflib/dxf/revision"
	"github.com/dxflib/dxf/scanner"
)

// StoreFunc parses one tag's raw value and stores it into a slot of the
// entity. Parse failures are reported by returning an error that wraps
// ErrMalformedValue.
type StoreFunc[E any] func(e *E, tag scanner.Tag) error

type entry[E any] struct {
	store   StoreFunc[E]
	repeat  bool
	feature revision.Feature
	gated   bool
}

// Table is the declarative field table of one entity type: a mapping from
// group code to an occurrence chain of store functions. A code that is
// reused with positional meaning gets one chain link per occurrence; a
// chain whose last link was registered with Repeat absorbs every further
// occurrence. Codes registered with InGroup form separate chains that
// apply only while the named 102 application group is open. Tables are
// built once at package init and never mutated afterwards, so concurrent
// decodes may share them freely.
type Table[E any] struct {
	name     string
	entries  map[int][]entry[E]
	groups   map[string]map[int][]entry[E]
	subclass map[string]bool
	finalize []func(e *E) error
}

// NewTable returns an empty table for the record type called name.
func NewTable[E any](name string) *Table[E] {
	return &Table[E]{
		name:    name,
		entries: make(map[int][]entry[E]),
	}
}

func (t *Table[E]) Name() string {
	return t.name
}

// Handle registers the store function for the next occurrence of code.
func (t *Table[E]) Handle(code int, fn StoreFunc[E]) *Table[E] {
	t.entries[code] = append(t.entries[code], entry[E]{store: fn})
	return t
}

// HandleGated registers a store function whose group is only legal within
// the feature's revision span. The value is stored regardless; the gate
// only drives a decode-time warning on files that predate the feature.
func (t *Table[E]) HandleGated(code int, f revision.Feature, fn StoreFunc[E]) *Table[E] {
	t.entries[code] = append(t.entries[code], entry[E]{store: fn, feature: f, gated: true})
	return t
}

// Repeat registers a store function for every occurrence of code from the
// next one on. It must be the last registration for that code.
func (t *Table[E]) Repeat(code int, fn StoreFunc[E]) *Table[E] {
	t.entries[code] = append(t.entries[code], entry[E]{store: fn, repeat: true})
	return t
}

// Ignore registers a code that is consumed without being stored, such as
// a group whose later occurrences belong to a hand-written encoder.
func (t *Table[E]) Ignore(code int) *Table[E] {
	return t.Repeat(code, func(*E, scanner.Tag) error { return nil })
}

// InGroup registers the store function for the next occurrence of code
// inside the named 102 application group. While that group is open the
// scoped chain takes precedence over the bare chain and keeps its own
// occurrence counter.
func (t *Table[E]) InGroup(name string, code int, fn StoreFunc[E]) *Table[E] {
	g := t.group(name)
	g[code] = append(g[code], entry[E]{store: fn})
	return t
}

// InGroupRepeat is Repeat scoped to the named application group.
func (t *Table[E]) InGroupRepeat(name string, code int, fn StoreFunc[E]) *Table[E] {
	g := t.group(name)
	g[code] = append(g[code], entry[E]{store: fn, repeat: true})
	return t
}

func (t *Table[E]) group(name string) map[int][]entry[E] {
	if t.groups == nil {
		t.groups = make(map[string]map[int][]entry[E])
	}
	if t.groups[name] == nil {
		t.groups[name] = make(map[int][]entry[E])
	}
	return t.groups[name]
}

// Subclass declares the subclass marker literals that may appear in this
// record type. Markers are checked for diagnostics and never stored.
func (t *Table[E]) Subclass(names ...string) *Table[E] {
	if t.subclass == nil {
		t.subclass = make(map[string]bool)
	}
	for _, n := range names {
		t.subclass[n] = true
	}
	return t
}

// Finalize registers a function run after the terminator is reached, for
// default substitution and required-field checks.
func (t *Table[E]) Finalize(fn func(e *E) error) *Table[E] {
	t.finalize = append(t.finalize, fn)
	return t
}

// Str stores the trimmed value into the string slot selected by slot.
func Str[E any](slot func(*E) *string) StoreFunc[E] {
	return func(e *E, tag scanner.Tag) error {
		*slot(e) = tag.Str()
		return nil
	}
}

// Int stores the value as an int.
func Int[E any](slot func(*E) *int) StoreFunc[E] {
	return func(e *E, tag scanner.Tag) error {
		n, err := tag.Int()
		if err != nil {
			return errors.Mark(err, ErrMalformedValue)
		}
		*slot(e) = n
		return nil
	}
}

// Float stores the value as a float64.
func Float[E any](slot func(*E) *float64) StoreFunc[E] {
	return func(e *E, tag scanner.Tag) error {
		f, err := tag.Float()
		if err != nil {
			return errors.Mark(err, ErrMalformedValue)
		}
		*slot(e) = f
		return nil
	}
}

// Bool stores the value as a flag: any non-zero integer is true.
func Bool[E any](slot func(*E) *bool) StoreFunc[E] {
	return func(e *E, tag scanner.Tag) error {
		n, err := tag.Int()
		if err != nil {
			return errors.Mark(err, ErrMalformedValue)
		}
		*slot(e) = n != 0
		return nil
	}
}

// Hex stores the value as a hexadecimal handle.
func Hex[E any](slot func(*E) *int64) StoreFunc[E] {
	return func(e *E, tag scanner.Tag) error {
		n, err := tag.Hex()
		if err != nil {
			return errors.Mark(err, ErrMalformedValue)
		}
		*slot(e) = n
		return nil
	}
}

// Chunks appends the raw value to the chunk list selected by list. When
// sibling lists are given, the new chunk is numbered after every chunk of
// the whole group, so independently grown lists share one running order
// counter and re-interleave deterministically at encode time.
func Chunks[E any](list func(*E) *ChunkList, siblings ...func(*E) *ChunkList) StoreFunc[E] {
	return func(e *E, tag scanner.Tag) error {
		order := list(e).Len() + 1
		for _, sib := range siblings {
			order += sib(e).Len()
		}
		list(e).Append(Chunk{Order: order, Data: tag.Value})
		return nil
	}
}
