package cmdutil

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/leefowlercu/ci-demo/internal/demo"
)

// Operand is a number parsed from command-line text.
// Integers of any size are kept exact; anything else is held as a float64.
type Operand struct {
	Int     *big.Int
	Float   float64
	IsFloat bool
}

// Operation pairs a core arithmetic operation with its arbitrary-precision
// integer form, used when an integer result does not fit in an int64.
type Operation struct {
	Int   func(int64, int64) int64
	Big   func(z, x, y *big.Int) *big.Int
	Float func(float64, float64) float64
}

// Operations exposed by the CLI.
var (
	Addition = Operation{
		Int:   demo.Add[int64],
		Big:   (*big.Int).Add,
		Float: demo.Add[float64],
	}
	Multiplication = Operation{
		Int:   demo.Multiply[int64],
		Big:   (*big.Int).Mul,
		Float: demo.Multiply[float64],
	}
)

// ParseOperand parses s as a base-10 integer, falling back to a finite float.
// Anything else, NaN and Inf included, yields an error wrapping
// demo.ErrTypeMismatch.
func ParseOperand(s string) (Operand, error) {
	if i, ok := new(big.Int).SetString(s, 10); ok {
		f, _ := new(big.Float).SetInt(i).Float64()
		return Operand{Int: i, Float: f}, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Operand{}, fmt.Errorf("operand %q is not a number; %w", s, demo.ErrTypeMismatch)
	}
	return Operand{Float: f, IsFloat: true}, nil
}

// ParseOperands parses a pair of operands.
func ParseOperands(a, b string) (Operand, Operand, error) {
	x, err := ParseOperand(a)
	if err != nil {
		return Operand{}, Operand{}, err
	}
	y, err := ParseOperand(b)
	if err != nil {
		return Operand{}, Operand{}, err
	}
	return x, y, nil
}

// Apply combines two operands with op and returns the formatted result.
// Integer operands give an exact integer result; if either operand is a
// float both are combined as float64.
func Apply(a, b Operand, op Operation) string {
	if a.IsFloat || b.IsFloat {
		return strconv.FormatFloat(op.Float(a.Float, b.Float), 'g', -1, 64)
	}

	exact := op.Big(new(big.Int), a.Int, b.Int)
	if a.Int.IsInt64() && b.Int.IsInt64() && exact.IsInt64() {
		return strconv.FormatInt(op.Int(a.Int.Int64(), b.Int.Int64()), 10)
	}
	return exact.String()
}
