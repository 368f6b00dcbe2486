package datapath

// Merge writes value at path inside root and returns the combined document.
//
// It behaves like deep-merging Nest(path, value) into root, with one
// refinement: a segment that is an in-range index of an existing sequence
// descends into that element instead of replacing the sequence. A nil root
// is treated as an empty mapping. Neither root nor value is modified; the
// result is a fresh copy.
func Merge(root any, path string, value any) any {
	if root == nil {
		root = map[string]any{}
	}

	return mergeAt(Normalize(root), Split(path), Normalize(value))
}

// DeepMerge combines src into dst and returns the result without modifying
// either argument. Mappings merge key by key, sequences are concatenated
// (dst elements first), and any other pair resolves to src.
func DeepMerge(dst, src any) any {
	return deepMerge(Normalize(dst), Normalize(src))
}

// Nest builds the single-entry structure {s1: {s2: ... value}} for path.
// The empty path returns value.
func Nest(path string, value any) any {
	return nest(Split(path), Normalize(value))
}

// mergeAt owns node and value and may modify them.
func mergeAt(node any, segments []string, value any) any {
	if len(segments) == 0 {
		return deepMerge(node, value)
	}

	segment, rest := segments[0], segments[1:]

	switch typed := node.(type) {
	case map[string]any:
		existing, ok := typed[segment]
		if !ok {
			typed[segment] = nest(rest, value)

			return typed
		}

		typed[segment] = mergeAt(existing, rest, value)

		return typed
	case []any:
		if idx, ok := parseIndex(segment, len(typed)); ok {
			typed[idx] = mergeAt(typed[idx], rest, value)

			return typed
		}
	}

	return nest(segments, value)
}

// deepMerge owns dst and src and may modify them.
func deepMerge(dst, src any) any {
	switch typedDst := dst.(type) {
	case map[string]any:
		typedSrc, ok := src.(map[string]any)
		if !ok {
			return src
		}

		for key, value := range typedSrc {
			existing, exists := typedDst[key]
			if !exists {
				typedDst[key] = value

				continue
			}

			typedDst[key] = deepMerge(existing, value)
		}

		return typedDst
	case []any:
		typedSrc, ok := src.([]any)
		if !ok {
			return src
		}

		return append(typedDst, typedSrc...)
	default:
		return src
	}
}

func nest(segments []string, value any) any {
	for i := len(segments) - 1; i >= 0; i-- {
		value = map[string]any{segments[i]: value}
	}

	return value
}
