package util

// RemoveDuplicates returns a new slice holding the first occurrence of each
// value in seq, in their original order. seq is left untouched.
//
// Values are compared with ==. For interface element types every dynamic
// value must be comparable, otherwise the lookup panics.
func RemoveDuplicates[S ~[]E, E comparable](seq S) S {
	seen := make(map[E]struct{}, len(seq))
	out := make(S, 0, len(seq))
	for _, v := range seq {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
