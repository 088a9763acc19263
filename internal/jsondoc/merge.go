package jsondoc

// Merge combines overlay into base and returns a new document; neither input
// is mutated. Keys whose values are objects on both sides merge recursively.
// Every other overlay value, lists included, replaces the base value
// wholesale. Keys present on only one side are kept verbatim.
//
// Merge(base, New()) preserves base and Merge(New(), overlay) yields overlay.
// Nested values may alias the inputs; callers treat the result as the sole
// live copy.
func Merge(base, overlay Doc) Doc {
	merged := New()
	for pair := base.Oldest(); pair != nil; pair = pair.Next() {
		merged.Set(pair.Key, pair.Value)
	}

	for pair := overlay.Oldest(); pair != nil; pair = pair.Next() {
		if existing, ok := merged.Get(pair.Key); ok {
			baseChild, baseIsObj := existing.(Doc)
			overlayChild, overlayIsObj := pair.Value.(Doc)
			if baseIsObj && overlayIsObj {
				merged.Set(pair.Key, Merge(baseChild, overlayChild))
				continue
			}
		}
		merged.Set(pair.Key, pair.Value)
	}

	return merged
}
