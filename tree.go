package envjson

import "github.com/Azhovan/envjson/internal/keypath"

// tree assembles nested values from split key paths.
// The root is always an object: the first segment of every path keys into it
// verbatim, so a numeric first segment becomes an object field ("0"), never a
// root-level array. Arrays only appear below the root.
type tree struct {
	root map[string]any
}

func newTree() *tree {
	return &tree{root: make(map[string]any)}
}

// insert places value at the node addressed by path, creating intermediate
// objects and arrays along the way. A level that finds a node of the wrong
// kind replaces it, so when entries conflict the one inserted last wins.
func (t *tree) insert(path []keypath.Segment, value any) {
	if len(path) == 0 {
		return
	}
	t.root[path[0].Name] = graft(t.root[path[0].Name], path[1:], value)
}

// graft descends into node along rest and returns the updated node.
// Field segments want an object at the current level, index segments want an
// array; missing or mismatched nodes are replaced by a fresh container.
// Arrays are padded with nulls up to the addressed index and never shrink.
func graft(node any, rest []keypath.Segment, value any) any {
	if len(rest) == 0 {
		return value
	}

	seg := rest[0]
	if seg.IsIndex {
		arr, ok := node.([]any)
		if !ok {
			arr = nil
		}
		for len(arr) <= seg.Index {
			arr = append(arr, nil)
		}
		arr[seg.Index] = graft(arr[seg.Index], rest[1:], value)
		return arr
	}

	obj, ok := node.(map[string]any)
	if !ok {
		obj = make(map[string]any)
	}
	obj[seg.Name] = graft(obj[seg.Name], rest[1:], value)
	return obj
}
