package codec

import (
	"golang.org/x/exp/slices"
)

// Chunk is one line of auxiliary sub-record data: a binary graphics line,
// a proprietary data line, or an owner handle line. Order is the position
// of the chunk within its record, assigned while scanning; two lists that
// grow from a shared counter interleave deterministically by comparing it.
type Chunk struct {
	Order int
	Data  string
}

// ChunkList is an owned, append-only sequence of chunks. Iteration order
// is insertion order. The zero value is an empty list.
type ChunkList struct {
	chunks []Chunk
}

// Append adds a chunk to the end of the list.
func (l *ChunkList) Append(c Chunk) {
	l.chunks = append(l.chunks, c)
}

// AppendData adds a chunk holding data, numbering it after every chunk
// already present in the list.
func (l *ChunkList) AppendData(data string) {
	l.Append(Chunk{Order: len(l.chunks) + 1, Data: data})
}

func (l *ChunkList) Len() int {
	return len(l.chunks)
}

// All returns the chunks in insertion order. The returned slice aliases
// the list and must not be mutated.
func (l *ChunkList) All() []Chunk {
	return l.chunks
}

// Strings returns the chunk data lines in insertion order.
func (l *ChunkList) Strings() []string {
	out := make([]string, len(l.chunks))
	for i, c := range l.chunks {
		out[i] = c.Data
	}
	return out
}

// Equal reports whether both lists hold the same chunks in the same order.
func (l ChunkList) Equal(other ChunkList) bool {
	return slices.Equal(l.chunks, other.chunks)
}

// Coded is a chunk paired with the group code it travels under.
type Coded struct {
	Code  int
	Chunk Chunk
}

// CodedList binds a chunk list to the group code its chunks are emitted
// under.
type CodedList struct {
	Code int
	List *ChunkList
}

// InterleaveCoded merges the given lists into one sequence ordered by
// each chunk's stored order index, keeping every chunk's group code.
// Either list may run out before the other, so the merge compares
// indices instead of alternating.
func InterleaveCoded(lists ...CodedList) []Coded {
	var n int
	for _, l := range lists {
		n += l.List.Len()
	}
	out := make([]Coded, 0, n)
	for _, l := range lists {
		for _, c := range l.List.chunks {
			out = append(out, Coded{Code: l.Code, Chunk: c})
		}
	}
	slices.SortStableFunc(out, func(a, b Coded) int {
		return a.Chunk.Order - b.Chunk.Order
	})
	return out
}

// Interleave is InterleaveCoded for lists that share one group code.
func Interleave(lists ...*ChunkList) []Chunk {
	coded := make([]CodedList, len(lists))
	for i, l := range lists {
		coded[i] = CodedList{List: l}
	}
	merged := InterleaveCoded(coded...)
	out := make([]Chunk, len(merged))
	for i, c := range merged {
		out[i] = c.Chunk
	}
	return out
}
