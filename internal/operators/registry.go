package operators

import (
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
)

// ErrUnknownOperator is returned by Lookup for names not in the registry.
var ErrUnknownOperator = errors.New("unknown operator")

// Operator pairs a forward function with its backward companion.
//
// Backward receives the upstream derivative d and the forward arguments and
// returns one contribution per argument: d * ∂Forward/∂args[i].
type Operator struct {
	Name     string
	Arity    int
	Forward  func(args ...float64) float64
	Backward func(d float64, args ...float64) []float64
}

func unary(name string, fwd func(float64) float64, back func(x, d float64) float64) Operator {
	return Operator{
		Name:    name,
		Arity:   1,
		Forward: func(args ...float64) float64 { return fwd(args[0]) },
		Backward: func(d float64, args ...float64) []float64 {
			return []float64{back(args[0], d)}
		},
	}
}

func binary(name string, fwd func(x, y float64) float64, back func(x, y, d float64) (float64, float64)) Operator {
	return Operator{
		Name:    name,
		Arity:   2,
		Forward: func(args ...float64) float64 { return fwd(args[0], args[1]) },
		Backward: func(d float64, args ...float64) []float64 {
			dx, dy := back(args[0], args[1], d)
			return []float64{dx, dy}
		},
	}
}

// Comparisons are piecewise constant.
func zeroBack(_, _, _ float64) (float64, float64) {
	return 0, 0
}

var registry = map[string]Operator{
	"mul": binary("mul", Mul, func(x, y, d float64) (float64, float64) { return d * y, d * x }),
	"add": binary("add", Add, func(_, _, d float64) (float64, float64) { return d, d }),
	"lt":  binary("lt", LT, zeroBack),
	"eq":  binary("eq", EQ, zeroBack),
	"max": binary("max", Max, func(x, y, d float64) (float64, float64) {
		if x >= y {
			return d, 0
		}
		return 0, d
	}),
	"id":      unary("id", ID, func(_, d float64) float64 { return d }),
	"neg":     unary("neg", Neg, func(_, d float64) float64 { return -d }),
	"sigmoid": unary("sigmoid", Sigmoid, SigmoidBack),
	"relu":    unary("relu", ReLU, ReLUBack),
	"log":     unary("log", Log, LogBack),
	"exp":     unary("exp", Exp, ExpBack),
	"inv":     unary("inv", Inv, InvBack),
}

// Lookup returns the operator registered under name.
func Lookup(name string) (Operator, error) {
	op, ok := registry[name]
	if !ok {
		return Operator{}, errors.Wrapf(ErrUnknownOperator, "operator %q (known: %v)", name, Names())
	}
	return op, nil
}

// Names returns the registered operator names, sorted.
func Names() []string {
	names := maps.Keys(registry)
	slices.Sort(names)
	return names
}
