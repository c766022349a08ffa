package autodiff

import (
	"github.com/gomlx/exceptions"
)

// Context is the scratch space shared between the forward and backward
// computation of a single operation application.
//
// When the context is created with noGrad set, SaveForBackward discards its
// arguments: operations evaluated without gradients retain nothing, and a
// backward computation that reads saved values from such a context fails.
type Context struct {
	noGrad bool
	saved  []any
}

// NewContext creates a context for one operation application.
func NewContext(noGrad bool) *Context {
	return &Context{noGrad: noGrad}
}

// NoGrad reports whether gradients are disabled for this context.
func (c *Context) NoGrad() bool {
	return c.noGrad
}

// SaveForBackward stores values for use by the backward pass.
// A later call replaces the values of an earlier one.
func (c *Context) SaveForBackward(values ...any) {
	if c.noGrad {
		return
	}
	c.saved = values
}

// SavedValues returns the values stored by SaveForBackward.
// It is empty when nothing was saved or gradients are disabled.
func (c *Context) SavedValues() []any {
	return c.saved
}

// SavedFloat returns saved value i as a float64.
// It panics if the value is missing or has a different type.
func (c *Context) SavedFloat(i int) float64 {
	if i < 0 || i >= len(c.saved) {
		exceptions.Panicf("Context.SavedFloat(%d): only %d values saved (noGrad=%v)", i, len(c.saved), c.noGrad)
	}
	v, ok := c.saved[i].(float64)
	if !ok {
		exceptions.Panicf("Context.SavedFloat(%d): saved value has type %T, not float64", i, c.saved[i])
	}
	return v
}
