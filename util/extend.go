package util

import (
	"reflect"
	"unsafe"
)

// Record is a mergeable mapping. Values decoded from JSON or YAML objects
// already have this type.
type Record = map[string]any

// Sequence is a mergeable ordered list, as decoded from JSON or YAML arrays.
type Sequence = []any

// Kind classifies a value for merging.
type Kind int

const (
	KindOpaque Kind = iota
	KindRecord
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindRecord:
		return "record"
	case KindSequence:
		return "sequence"
	default:
		return "opaque"
	}
}

type undefined struct{}

// Undefined marks a value that is absent. Extend never copies it out of a
// source, so it can be used to leave a target key untouched. A nil value is
// a real value and is copied.
var Undefined any = undefined{}

// KindOf reports how Extend treats v. Only Record and Sequence are merged;
// maps and slices of other types, structs and pointers are opaque.
func KindOf(v any) Kind {
	switch v.(type) {
	case Record:
		return KindRecord
	case Sequence:
		return KindSequence
	default:
		return KindOpaque
	}
}

// Extend copies the keys of each source into target, left to right, so later
// sources win. A nil target is replaced by an empty Record and nil sources are
// skipped. The mutated target is returned.
//
// In shallow mode every value is assigned as is. In deep mode Record and
// Sequence values are merged recursively into a copy of the existing target
// value when it has the same kind, or into a fresh empty one otherwise.
// Nested Records and Sequences of the result are never shared with any input.
// Cycles in the target or the sources are reproduced in the result instead of
// being followed forever.
//
//	dst := util.Record{"a": util.Record{"x": 1}}
//	util.Extend(true, dst, util.Record{"a": util.Record{"y": 2}})
//	// dst is now {"a": {"x": 1, "y": 2}}
func Extend(deep bool, target Record, sources ...Record) Record {
	if target == nil {
		target = Record{}
	}
	m := newMerger(deep)
	for _, src := range sources {
		if src == nil {
			continue
		}
		m.extendRecord(target, src, nil)
	}
	return target
}

// Merge deep-merges sources into a new Record.
func Merge(sources ...Record) Record {
	return Extend(true, nil, sources...)
}

// Clone returns a deep copy of v when it is a Record or a Sequence, and v
// itself otherwise. A value reachable twice from v is copied once, so cycles
// survive the copy.
func Clone(v any) any {
	return newMerger(true).clone(v)
}

// identity names a Record or Sequence by its backing storage. Records use a
// length of -1.
type identity struct {
	ptr unsafe.Pointer
	n   int
}

func recordID(r Record) identity {
	return identity{ptr: reflect.ValueOf(r).UnsafePointer(), n: -1}
}

func sequenceID(s Sequence) identity {
	return identity{ptr: reflect.ValueOf(s).UnsafePointer(), n: len(s)}
}

// merger holds the state of one Extend call.
type merger struct {
	deep bool

	// clones maps an input container to its copy.
	clones map[identity]any
	// active maps a source container being merged to its destination.
	active map[identity]any
}

func newMerger(deep bool) *merger {
	return &merger{
		deep:   deep,
		clones: make(map[identity]any),
		active: make(map[identity]any),
	}
}

func (m *merger) clone(v any) any {
	switch typed := v.(type) {
	case Record:
		if typed == nil {
			return typed
		}
		return m.cloneRecord(typed)
	case Sequence:
		if len(typed) == 0 {
			if typed == nil {
				return typed
			}
			return Sequence{}
		}
		return m.cloneSequence(typed)
	default:
		return v
	}
}

func (m *merger) cloneRecord(in Record) Record {
	id := recordID(in)
	if out, ok := m.clones[id]; ok {
		return out.(Record)
	}
	out := make(Record, len(in))
	m.clones[id] = out
	for k, v := range in {
		out[k] = m.clone(v)
	}
	return out
}

func (m *merger) cloneSequence(in Sequence) Sequence {
	id := sequenceID(in)
	if out, ok := m.clones[id]; ok {
		return out.(Sequence)
	}
	out := make(Sequence, len(in))
	m.clones[id] = out
	for i, v := range in {
		out[i] = m.clone(v)
	}
	return out
}

// extendRecord merges src into dst. origin is the input dst was copied from,
// or nil.
func (m *merger) extendRecord(dst, src, origin Record) Record {
	id := recordID(src)
	m.active[id] = dst
	defer delete(m.active, id)

	for key, value := range src {
		if sameRecord(dst, value) || sameRecord(origin, value) {
			continue
		}
		if merged, ok := m.mergeValue(dst[key], value); ok {
			dst[key] = merged
		}
	}
	return dst
}

// extendSequence merges src into dst, growing it first so the slice handed to
// nested merges stays valid.
func (m *merger) extendSequence(dst, src, origin Sequence) Sequence {
	size := len(dst)
	for i, value := range src {
		if _, skip := value.(undefined); !skip && i >= size {
			size = i + 1
		}
	}
	for len(dst) < size {
		dst = append(dst, nil)
	}

	if len(src) > 0 {
		id := sequenceID(src)
		m.active[id] = dst
		defer delete(m.active, id)
	}

	for i, value := range src {
		if sameSequence(dst, value) || sameSequence(origin, value) {
			continue
		}
		var existing any
		if i < len(dst) {
			existing = dst[i]
		}
		if merged, ok := m.mergeValue(existing, value); ok {
			dst[i] = merged
		}
	}
	return dst
}

// mergeValue returns the value to store for a key and false when nothing
// should be stored.
func (m *merger) mergeValue(existing, value any) (any, bool) {
	if _, ok := value.(undefined); ok {
		return nil, false
	}
	if !m.deep {
		return value, true
	}
	switch v := value.(type) {
	case Record:
		if v == nil {
			return value, true
		}
		if dst, ok := m.active[recordID(v)]; ok {
			return dst, true
		}
		base, _ := existing.(Record)
		start := Record{}
		if base != nil {
			start = m.cloneRecord(base)
		}
		return m.extendRecord(start, v, base), true
	case Sequence:
		if v == nil {
			return value, true
		}
		if len(v) > 0 {
			if dst, ok := m.active[sequenceID(v)]; ok {
				return dst, true
			}
		}
		base, _ := existing.(Sequence)
		start := Sequence{}
		if len(base) > 0 {
			start = m.cloneSequence(base)
		}
		return m.extendSequence(start, v, base), true
	default:
		return value, true
	}
}

// sameRecord reports whether v is the very map held by r.
func sameRecord(r Record, v any) bool {
	other, ok := v.(Record)
	if !ok || r == nil || other == nil {
		return false
	}
	return recordID(r) == recordID(other)
}

// sameSequence reports whether v shares s's backing array and length.
func sameSequence(s Sequence, v any) bool {
	other, ok := v.(Sequence)
	if !ok || len(s) == 0 || len(other) != len(s) {
		return false
	}
	return &s[0] == &other[0]
}
