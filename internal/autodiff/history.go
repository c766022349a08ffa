package autodiff

// History records how a non-constant Variable was produced.
//
// F is the type of the function that produced the node and V the type of
// its inputs. A History without a function describes a leaf created for
// differentiation. History is immutable once created.
type History[F any, V any] struct {
	lastFn F
	hasFn  bool
	ctx    *Context
	inputs []V
}

// NewHistory creates the history of a node produced by lastFn from inputs.
func NewHistory[F any, V any](lastFn F, ctx *Context, inputs []V) *History[F, V] {
	return &History[F, V]{
		lastFn: lastFn,
		hasFn:  true,
		ctx:    ctx,
		inputs: inputs,
	}
}

// NewLeafHistory creates the history of a leaf: no function, no inputs.
func NewLeafHistory[F any, V any]() *History[F, V] {
	return &History[F, V]{}
}

// LastFn returns the producing function and whether there is one.
func (h *History[F, V]) LastFn() (F, bool) {
	if h == nil {
		var zero F
		return zero, false
	}
	return h.lastFn, h.hasFn
}

// Context returns the context captured during the forward evaluation.
func (h *History[F, V]) Context() *Context {
	if h == nil {
		return nil
	}
	return h.ctx
}

// Inputs returns the ordered inputs consumed by the producing function.
func (h *History[F, V]) Inputs() []V {
	if h == nil {
		return nil
	}
	return h.inputs
}
