package scalar

import (
	"github.com/born-ml/gradcore/internal/autodiff"
)

// Tape creates Scalars and decides whether applied functions record a
// History.
//
// The tape owns the ID allocator of its graph: every Scalar of a graph must
// come from the same tape. While the tape is not recording, functions run
// with a no-grad Context and produce constants.
//
// Usage:
//
//	tape := NewTape()
//	x := tape.New(3.0)
//	y := x.Mul(x).Add(tape.Constant(1))
//	y.Backward()
//	fmt.Println(x.Derivative()) // 6
//
// Not safe for concurrent use.
type Tape struct {
	ids       autodiff.IDAllocator
	recording bool // Whether applied functions record their History
	numOps    int  // Functions applied since creation or the last Clear
}

// NewTape creates a tape that is recording.
func NewTape() *Tape {
	return &Tape{recording: true}
}

// StartRecording enables History recording.
func (t *Tape) StartRecording() {
	t.recording = true
}

// StopRecording disables History recording.
func (t *Tape) StopRecording() {
	t.recording = false
}

// IsRecording returns true if the tape is currently recording.
func (t *Tape) IsRecording() bool {
	return t.recording
}

// NoGrad runs fn with recording disabled and restores the previous state,
// also when fn panics.
func (t *Tape) NoGrad(fn func()) {
	wasRecording := t.recording
	t.recording = false
	defer func() {
		t.recording = wasRecording
	}()
	fn()
}

// NumOps returns the number of functions applied since the tape was created
// or last cleared.
func (t *Tape) NumOps() int {
	return t.numOps
}

// Clear resets the function counter. IDs keep increasing and the recording
// state is preserved.
func (t *Tape) Clear() {
	t.numOps = 0
}

// New creates a differentiable leaf holding value.
func (t *Tape) New(value float64) *Scalar {
	s := t.newScalar(value)
	s.history = autodiff.NewLeafHistory[Function, *Scalar]()
	return s
}

// Constant creates a Scalar excluded from gradient flow.
func (t *Tape) Constant(value float64) *Scalar {
	return t.newScalar(value)
}

func (t *Tape) newScalar(value float64) *Scalar {
	return &Scalar{
		data: value,
		id:   t.ids.Next(),
		tape: t,
	}
}
