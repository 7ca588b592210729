package envjson

// mergeObjects combines parsed values with a base document. Keys present in
// only one side are kept as-is; keys present in both merge recursively.
// Neither argument is mutated.
func mergeObjects(overlay, base map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		if prev, ok := out[k]; ok {
			out[k] = mergeValues(v, prev)
		} else {
			out[k] = v
		}
	}
	return out
}

// mergeValues resolves two values occupying the same position. Only a pair
// of objects merges; every other combination resolves to the overlay, so
// arrays replace arrays wholesale and scalars (null included) replace
// whatever the base held.
func mergeValues(overlay, base any) any {
	over, ok := overlay.(map[string]any)
	if !ok {
		return overlay
	}
	under, ok := base.(map[string]any)
	if !ok {
		return overlay
	}
	return mergeObjects(over, under)
}

// cloneDocument deep-copies a base document so merged results never alias
// parser state across Parse calls.
func cloneDocument(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return cloneDocument(tv)
	case []any:
		out := make([]any, len(tv))
		for i, e := range tv {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
