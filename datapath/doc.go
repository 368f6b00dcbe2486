// Package datapath reads and merges values inside decoded JSON documents
// using dotted paths.
//
// A document is the generic shape produced by a JSON decoder: nil, scalars,
// []any sequences and map[string]any mappings. A path such as
// "rooms.0.price" is split on "." into segments; a segment addresses a
// mapping key, or a position when the current node is a sequence.
//
//	root := map[string]any{"rooms": []any{
//	    map[string]any{"price": 100},
//	    map[string]any{"price": 150},
//	}}
//
//	price, ok := datapath.Get(root, "rooms.0.price") // 100, true
//	_, ok = datapath.Get(root, "rooms.5.price")      // nil, false
//
// # Merging
//
// Merge writes a value at a path by deep-merging the single-entry structure
// {s1: {s2: ... value}} into the root. Mappings merge key by key, sequences
// are appended to, and every other combination is replaced by the incoming
// value. Merge never modifies its arguments; callers assign the returned
// root back:
//
//	data = datapath.Merge(data, "ratings.3star.count", 20)
//
// Because sequences append, merging the same sequence twice at one path
// repeats its elements.
package datapath
