package scenegraph

import "sort"

// DrawList returns the mesh objects cam should draw this frame, ordered by
// RenderOrder. Ties keep traversal order. An invisible object hides its subtree.
func DrawList(s *Scene, cam *Camera) []*Object {
	var out []*Object
	var walk func(o *Object)
	walk = func(o *Object) {
		if !o.Visible {
			return
		}
		if o.Mesh != nil && cam.Sees(o) {
			out = append(out, o)
		}
		for _, c := range o.children {
			walk(c)
		}
	}
	for _, c := range s.Root.children {
		walk(c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RenderOrder < out[j].RenderOrder
	})
	return out
}
