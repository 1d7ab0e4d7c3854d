package scenegraph

// Layers is a 32-bit membership mask. An object is drawn by a camera when the two masks overlap.
type Layers uint32

// LayerMask returns a mask holding only layer n.
func LayerMask(n int) Layers {
	return Layers(1) << uint(n)
}

// Set replaces the mask with layer n only.
func (l *Layers) Set(n int) { *l = LayerMask(n) }

// Enable adds layer n.
func (l *Layers) Enable(n int) { *l |= LayerMask(n) }

// Disable removes layer n.
func (l *Layers) Disable(n int) { *l &^= LayerMask(n) }

// Has reports whether layer n is set.
func (l Layers) Has(n int) bool { return l&LayerMask(n) != 0 }

// Test reports whether l and other share any layer.
func (l Layers) Test(other Layers) bool { return l&other != 0 }
