// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package testvec

import (
	"fmt"
	"strings"

	"github.com/consensys/go-gfptv/field/gf25519"
)

// EvalFn computes the (reduced) result of a record from its operands.  The index
// is the position of the record within its artifact.
type EvalFn = func(index uint, args []gf25519.Element) gf25519.Element

// AdvanceFn determines the next state of a unary pseudo-random chain, given the
// state and result of the record at the given index.
type AdvanceFn = func(index uint, state, result gf25519.Element) gf25519.Element

// Operation describes one field operation for which vectors are generated.  The
// generators are driven entirely by this descriptor.
type Operation struct {
	// Name used in artifact names (e.g. "add").
	Name string
	// Title used in artifact headers (e.g. "Modular Addition").
	Title string
	// Number of operands per record (1 or 2).
	Arity uint
	// Number of records emitted per catalogue entry in corner-case mode.
	Multiplicity uint
	// Computes results.
	eval EvalFn
	// Advances unary chains.  When nil, a chain continues from the result.
	advance AdvanceFn
}

// Eval computes the result for a record at the given index.
func (p *Operation) Eval(index uint, args ...gf25519.Element) gf25519.Element {
	if uint(len(args)) != p.Arity {
		panic(fmt.Sprintf("%s expects %d operand(s), got %d", p.Name, p.Arity, len(args)))
	}
	//
	return p.eval(index, args)
}

// IsBinary determines whether this operation takes two operands.
func (p *Operation) IsBinary() bool {
	return p.Arity == 2
}

func (p *Operation) String() string {
	return p.Name
}

// record constructs the record at a given index for the given operands.
func (p *Operation) record(index uint, args ...gf25519.Element) Record {
	return Record{args, p.Eval(index, args...)}
}

// next determines the state following the record at the given index of a unary
// chain.
func (p *Operation) next(index uint, state, result gf25519.Element) gf25519.Element {
	if p.advance == nil {
		return result
	}
	//
	return p.advance(index, state, result)
}

// Add describes modular addition.
var Add = binary("add", "Modular Addition", gf25519.Element.Add)

// Sub describes modular subtraction.
var Sub = binary("sub", "Modular Subtraction", gf25519.Element.Sub)

// Mul describes modular multiplication.
var Mul = binary("mul", "Modular Multiplication", gf25519.Element.Mul)

// Mul32 describes modular multiplication by the constant a24 = 121666.
var Mul32 = unary("mul32", "Modular Multiplication (32 bit)", func(x gf25519.Element) gf25519.Element {
	return x.MulUint32(gf25519.A24)
})

// Sqr describes modular squaring.
var Sqr = unary("sqr", "Modular Squaring", gf25519.Element.Square)

// Hlv describes modular halving.
var Hlv = unary("hlv", "Modular Halving", gf25519.Element.Half)

// Cneg describes conditional modular negation.  The condition is the parity of
// the record index: even records leave the operand unchanged (but reduced), odd
// records negate it.  Hence, in corner-case mode every catalogue entry yields an
// identity record followed by a negation record.  In pseudo-random mode, the
// chain is only advanced (by squaring the negated value) after odd records.
var Cneg = &Operation{
	Name:         "cneg",
	Title:        "Conditional Modular Negation",
	Arity:        1,
	Multiplicity: 2,
	eval: func(index uint, args []gf25519.Element) gf25519.Element {
		return args[0].CondNeg(index%2 == 1)
	},
	advance: func(index uint, state, result gf25519.Element) gf25519.Element {
		if index%2 == 1 {
			return result.Square()
		}
		//
		return state
	},
}

// Operations lists all supported operations, in the order in which their
// artifacts are generated.
var Operations = []*Operation{Add, Sub, Mul, Mul32, Sqr, Hlv, Cneg}

// LookupOperation finds the operation with the given name.
func LookupOperation(name string) (*Operation, error) {
	for _, op := range Operations {
		if op.Name == name {
			return op, nil
		}
	}
	//
	return nil, fmt.Errorf("unknown operation \"%s\" (expected one of %s)", name, strings.Join(OperationNames(), ", "))
}

// OperationNames returns the names of all supported operations.
func OperationNames() []string {
	names := make([]string, len(Operations))
	//
	for i, op := range Operations {
		names[i] = op.Name
	}
	//
	return names
}

func binary(name, title string, fn func(x, y gf25519.Element) gf25519.Element) *Operation {
	return &Operation{name, title, 2, 1, func(_ uint, args []gf25519.Element) gf25519.Element {
		return fn(args[0], args[1])
	}, nil}
}

func unary(name, title string, fn func(x gf25519.Element) gf25519.Element) *Operation {
	return &Operation{name, title, 1, 1, func(_ uint, args []gf25519.Element) gf25519.Element {
		return fn(args[0])
	}, nil}
}
