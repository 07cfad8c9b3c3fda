// Released under an MIT license. See LICENSE.

package bind

import (
	"math/big"

	"github.com/cask-lang/cask/internal/common"
	"github.com/cask-lang/cask/internal/common/fault"
	"github.com/cask-lang/cask/internal/common/interface/datum"
	"github.com/cask-lang/cask/internal/common/interface/rational"
	"github.com/cask-lang/cask/internal/common/type/num"
	"github.com/cask-lang/cask/internal/common/type/str"
)

// Operator is a binary operation with an identity, the baseline a
// compound update starts from when the current value is undefined.
type Operator struct {
	name     string
	identity datum.I
	apply    func(a, b datum.I) (datum.I, error)
}

// The compound-update operators.
//
//nolint:gochecknoglobals
var (
	Add = Operator{"add", num.Int(0), arith((*big.Rat).Add)}
	Sub = Operator{"subtract", num.Int(0), arith((*big.Rat).Sub)}
	Mul = Operator{"multiply", num.Int(1), arith((*big.Rat).Mul)}
	Cat = Operator{"concatenate", str.New(""), concat}
)

// Identity returns the operator's identity value.
func (o Operator) Identity() datum.I {
	return o.identity
}

// Name returns the operator's name.
func (o Operator) Name() string {
	return o.name
}

// arith adapts a big.Rat operation. Operands must be usable in a numeric
// context: numbers, or strings that spell one. This is the only place
// cask coerces a numeric string, and the result is a number, never a
// write of the coerced operand anywhere else.
func arith(f func(z, x, y *big.Rat) *big.Rat) func(a, b datum.I) (datum.I, error) {
	return func(a, b datum.I) (datum.I, error) {
		x := rational.Number(a)
		if x == nil {
			return nil, &fault.Mismatch{Value: a, Constraint: "number"}
		}

		y := rational.Number(b)
		if y == nil {
			return nil, &fault.Mismatch{Value: b, Constraint: "number"}
		}

		return num.Rat(f(&big.Rat{}, x, y)), nil
	}
}

func concat(a, b datum.I) (datum.I, error) {
	x, ok := a.(common.Stringer)
	if !ok {
		return nil, &fault.Mismatch{Value: a, Constraint: "string"}
	}

	y, ok := b.(common.Stringer)
	if !ok {
		return nil, &fault.Mismatch{Value: b, Constraint: "string"}
	}

	return str.New(x.String() + y.String()), nil
}
