package util

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sameMap(a, b Record) bool {
	return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
}

func TestExtend_DeepMergesNestedRecords(t *testing.T) {
	targetNested := Record{"x": 1}
	sourceNested := Record{"y": 2}
	target := Record{"a": targetNested}

	got := Extend(true, target, Record{"a": sourceNested})

	assert.Equal(t, Record{"a": Record{"x": 1, "y": 2}}, got)
	require.True(t, sameMap(got, target), "Extend must return the target")

	nested, ok := got["a"].(Record)
	require.True(t, ok)
	assert.False(t, sameMap(nested, targetNested), "nested record aliases the target's original")
	assert.False(t, sameMap(nested, sourceNested), "nested record aliases the source")
	assert.Equal(t, Record{"x": 1}, targetNested, "original nested target must not change")
}

func TestExtend_ShallowOverrides(t *testing.T) {
	got := Extend(false, Record{"a": 1}, Record{"a": 2, "b": 3})
	assert.Equal(t, Record{"a": 2, "b": 3}, got)

	nested := Record{"y": 2}
	got = Extend(false, Record{"a": Record{"x": 1}}, Record{"a": nested})
	assert.Equal(t, Record{"a": Record{"y": 2}}, got, "shallow mode replaces nested records")
	assert.True(t, sameMap(got["a"].(Record), nested), "shallow mode assigns values as they are")
}

func TestExtend_LaterSourcesWin(t *testing.T) {
	got := Extend(true, nil,
		Record{"a": 1, "n": Record{"k": "first", "keep": true}},
		nil,
		Record{"a": 2, "n": Record{"k": "second"}},
		Record{"a": 3},
	)
	assert.Equal(t, Record{"a": 3, "n": Record{"k": "second", "keep": true}}, got)
}

func TestExtend_NilTarget(t *testing.T) {
	got := Extend(false, nil, Record{"a": 1})
	assert.Equal(t, Record{"a": 1}, got)

	got = Extend(true, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtend_UndefinedAndNil(t *testing.T) {
	for _, deep := range []bool{false, true} {
		got := Extend(deep, Record{"a": 1, "b": 2}, Record{"a": Undefined, "b": nil, "c": Undefined})
		assert.Equal(t, Record{"a": 1, "b": nil}, got, "deep=%v", deep)
	}
}

func TestExtend_SelfReferenceSkipped(t *testing.T) {
	for _, deep := range []bool{false, true} {
		target := Record{"a": 1}
		got := Extend(deep, target, Record{"self": target, "b": 2})
		assert.Equal(t, Record{"a": 1, "b": 2}, got, "deep=%v", deep)
	}

	seq := Sequence{1, 2}
	assert.Equal(t, Sequence{1, 3}, newMerger(true).extendSequence(seq, Sequence{seq, 3}, nil))

	got := Extend(true, Record{"list": seq}, Record{"list": Sequence{seq, 3}})
	assert.Equal(t, Record{"list": Sequence{1, 3}}, got)
	assert.Equal(t, Sequence{1, 2}, seq)
}

func TestExtend_CyclicTargetValue(t *testing.T) {
	inner := Record{"x": 1}
	inner["self"] = inner

	got := Extend(true, Record{"a": inner}, Record{"a": Record{"y": 2}})

	merged := got["a"].(Record)
	assert.False(t, sameMap(merged, inner), "nested target record was aliased")
	assert.Equal(t, 1, merged["x"])
	assert.Equal(t, 2, merged["y"])
	assert.True(t, sameMap(merged, merged["self"].(Record)), "cycle was not kept in the copy")
	assert.NotContains(t, inner, "y")
}

func TestExtend_SharedCyclicValue(t *testing.T) {
	inner := Record{"x": 1}
	inner["self"] = inner

	got := Extend(true, Record{"a": inner}, Record{"a": inner})

	merged := got["a"].(Record)
	assert.False(t, sameMap(merged, inner))
	assert.Len(t, merged, 2)
	assert.Equal(t, 1, merged["x"])
	assert.True(t, sameMap(merged, merged["self"].(Record)))
}

func TestExtend_CyclicSource(t *testing.T) {
	inner := Record{"x": 1}
	inner["self"] = inner
	list := Sequence{"head", nil}
	list[1] = list

	got := Extend(true, Record{}, Record{"a": inner, "list": list})

	merged := got["a"].(Record)
	assert.False(t, sameMap(merged, inner))
	assert.Equal(t, 1, merged["x"])
	assert.True(t, sameMap(merged, merged["self"].(Record)))

	mergedList := got["list"].(Sequence)
	require.Len(t, mergedList, 2)
	assert.Equal(t, "head", mergedList[0])
	nested := mergedList[1].(Sequence)
	assert.Same(t, &mergedList[0], &nested[0])
	assert.NotSame(t, &list[0], &mergedList[0])
}

func TestExtend_NilContainersCopiedAsNil(t *testing.T) {
	got := Extend(true,
		Record{"r": Record{"x": 1}, "s": Sequence{1}},
		Record{"r": Record(nil), "s": Sequence(nil), "fresh": Record(nil)},
	)

	require.Contains(t, got, "fresh")
	assert.Nil(t, got["r"].(Record))
	assert.Nil(t, got["s"].(Sequence))
	assert.Nil(t, got["fresh"].(Record))
}

func TestExtend_DeepSequences(t *testing.T) {
	sourceList := Sequence{"x", Record{"k": "v"}}
	target := Record{"list": Sequence{"a", Record{"old": true}, "c"}}

	got := Extend(true, target, Record{"list": sourceList})

	assert.Equal(t, Record{"list": Sequence{"x", Record{"old": true, "k": "v"}, "c"}}, got)

	merged := got["list"].(Sequence)
	merged[1].(Record)["k"] = "changed"
	assert.Equal(t, "v", sourceList[1].(Record)["k"], "nested source record was aliased")
}

func TestExtend_DeepSequenceGrows(t *testing.T) {
	got := Extend(true, Record{"list": Sequence{1}}, Record{"list": Sequence{Undefined, 2, 3}})
	assert.Equal(t, Record{"list": Sequence{1, 2, 3}}, got)

	got = Extend(true, Record{}, Record{"list": Sequence{Undefined, "b"}})
	assert.Equal(t, Record{"list": Sequence{nil, "b"}}, got)
}

func TestExtend_KindMismatchStartsFresh(t *testing.T) {
	got := Extend(true,
		Record{"a": Sequence{1, 2}, "b": "scalar", "c": Record{"x": 1}},
		Record{"a": Record{"k": 1}, "b": Record{"k": 2}, "c": Sequence{"y"}},
	)
	assert.Equal(t, Record{
		"a": Record{"k": 1},
		"b": Record{"k": 2},
		"c": Sequence{"y"},
	}, got)
}

func TestExtend_OpaqueValuesNotMerged(t *testing.T) {
	type point struct{ X, Y int }
	strs := []string{"a", "b"}
	typed := map[string]int{"n": 1}

	got := Extend(true,
		Record{"p": point{1, 2}, "s": []string{"z"}, "m": map[string]int{"old": 0}},
		Record{"p": point{3, 4}, "s": strs, "m": typed},
	)

	assert.Equal(t, point{3, 4}, got["p"])
	assert.Equal(t, strs, got["s"])
	assert.Equal(t, typed, got["m"])
}

func TestMerge(t *testing.T) {
	a := Record{"db": Record{"host": "localhost", "port": 5432}}
	b := Record{"db": Record{"port": 6432}, "debug": true}

	got := Merge(a, b)

	assert.Equal(t, Record{"db": Record{"host": "localhost", "port": 6432}, "debug": true}, got)
	assert.Equal(t, Record{"db": Record{"host": "localhost", "port": 5432}}, a, "Merge must not modify its inputs")
}

func TestClone(t *testing.T) {
	in := Record{"list": Sequence{Record{"k": 1}}, "n": 2}
	out := Clone(in).(Record)

	require.Equal(t, in, out)
	out["list"].(Sequence)[0].(Record)["k"] = 99
	assert.Equal(t, 1, in["list"].(Sequence)[0].(Record)["k"])

	assert.Equal(t, "opaque", Clone("opaque"))

	cyclic := Record{"x": 1}
	cyclic["self"] = cyclic
	copied := Clone(cyclic).(Record)
	assert.False(t, sameMap(copied, cyclic))
	assert.True(t, sameMap(copied, copied["self"].(Record)))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		value any
		want  Kind
	}{
		{Record{}, KindRecord},
		{Sequence{}, KindSequence},
		{map[string]int{}, KindOpaque},
		{[]string{}, KindOpaque},
		{"s", KindOpaque},
		{nil, KindOpaque},
		{Undefined, KindOpaque},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.value), "KindOf(%#v)", tt.value)
	}
	assert.Equal(t, "record", KindRecord.String())
	assert.Equal(t, "sequence", KindSequence.String())
	assert.Equal(t, "opaque", KindOpaque.String())
}
