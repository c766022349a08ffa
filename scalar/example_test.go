// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package scalar_test

import (
	"fmt"

	"github.com/born-ml/gradcore/scalar"
)

func ExampleTape() {
	tape := scalar.NewTape()
	x := tape.New(3)
	y := x.Mul(x).Add(x) // y = x² + x

	y.Backward()
	fmt.Println(y.Data(), x.Derivative())
	// Output: 12 7
}

func ExampleCheckGradients() {
	f := func(xs ...*scalar.Scalar) *scalar.Scalar {
		return xs[0].Mul(xs[1]).Sigmoid()
	}
	err := scalar.CheckGradients(f, []float64{0.5, -1.5}, scalar.DefaultGradCheckConfig())
	fmt.Println(err)
	// Output: <nil>
}
