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
	"github.com/consensys/go-gfptv/field/gf25519"
	"github.com/holiman/uint256"
)

// DefaultCount is the default number of pseudo-random vectors per operation.
const DefaultCount = 1000

// Seeds are the two starting values of a pseudo-random chain.  Unary chains only
// use the first.
type Seeds struct {
	First  gf25519.Element
	Second gf25519.Element
}

// DefaultSeeds returns the fixed seeds 0x0123456789ABCDEF… and
// 0x76543210FEDCBA98….
func DefaultSeeds() Seeds {
	return Seeds{
		gf25519.FromInt(&uint256.Int{0x0123456789ABCDEF, 0x0123456789ABCDEF, 0x0123456789ABCDEF, 0x0123456789ABCDEF}),
		gf25519.FromInt(&uint256.Int{0x76543210FEDCBA98, 0x76543210FEDCBA98, 0x76543210FEDCBA98, 0x76543210FEDCBA98}),
	}
}

// Generator encapsulates the parameters shared by all artifacts.  A generator
// holds no mutable state, hence every call produces its vectors independently.
type Generator struct {
	// Operands used in corner-case mode.
	Catalogue Catalogue
	// Starting values used in pseudo-random mode.
	Seeds Seeds
	// Number of vectors requested in pseudo-random mode.
	Count uint
}

// NewGenerator constructs a generator with the built-in catalogue, the fixed
// seeds and the default count.
func NewGenerator() Generator {
	return Generator{DefaultCatalogue(), DefaultSeeds(), DefaultCount}
}

// Generate the vectors for a given operation in a given mode.
func (g Generator) Generate(mode Mode, op *Operation) Vectors {
	var records []Record
	//
	switch mode {
	case CornerCaseMode:
		records = GenerateCornerCases(op, g.Catalogue)
	default:
		records = GeneratePseudoRandom(op, g.Seeds, g.Count)
	}
	//
	return Vectors{mode.Header(op), records}
}

// GenerateCornerCases generates the corner-case vectors of an operation.  Binary
// operations are applied to every ordered pair of catalogue entries (first
// operand in the outer loop), whilst unary operations are applied to every entry
// in turn, Multiplicity times.  Operands are emitted exactly as given.
func GenerateCornerCases(op *Operation, catalogue Catalogue) []Record {
	var (
		operands = catalogue.Operands()
		n        = uint(len(operands))
		records  []Record
	)
	//
	if op.IsBinary() {
		records = make([]Record, 0, n*n)
		//
		for _, x := range operands {
			for _, y := range operands {
				records = append(records, op.record(uint(len(records)), x, y))
			}
		}
	} else {
		records = make([]Record, 0, n*op.Multiplicity)
		//
		for _, x := range operands {
			for i := uint(0); i < op.Multiplicity; i++ {
				records = append(records, op.record(uint(len(records)), x))
			}
		}
	}
	//
	return records
}

// GeneratePseudoRandom generates a chain of pseudo-random vectors, where each
// result is fed back as an operand of the following record.
//
// For binary operations, the chain is the sequence s₀, s₁, s₂, ... with s₀ and
// s₁ the two seeds and sₖ₊₂ = op(sₖ, sₖ₊₁).  Record k has operands (sₖ, sₖ₊₁)
// and result sₖ₊₂, hence the second operand of each record is the result of its
// predecessor.  Records are produced in pairs, so an odd count is rounded down.
//
// For unary operations, the chain starts at the first seed and the operation
// determines how the state advances from one record to the next.
func GeneratePseudoRandom(op *Operation, seeds Seeds, count uint) []Record {
	var records []Record
	//
	if op.IsBinary() {
		n := (count / 2) * 2
		records = make([]Record, 0, n)
		// Sliding window over the chain
		x, y := seeds.First, seeds.Second
		//
		for i := uint(0); i < n; i++ {
			r := op.record(i, x, y)
			records = append(records, r)
			x, y = y, r.Result
		}
	} else {
		records = make([]Record, 0, count)
		state := seeds.First
		//
		for i := uint(0); i < count; i++ {
			r := op.record(i, state)
			records = append(records, r)
			state = op.next(i, state, r.Result)
		}
	}
	//
	return records
}
