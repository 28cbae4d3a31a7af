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
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-gfptv/field/gf25519"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Entry is a single operand of a catalogue.
type Entry struct {
	Value gf25519.Element
	// Describes why the operand is interesting (may be empty).
	Label string
}

// Catalogue is an ordered list of operands.  The order is fixed and reused
// identically for every operation.
type Catalogue []Entry

// Operands returns the values of this catalogue, in order.
func (c Catalogue) Operands() []gf25519.Element {
	values := make([]gf25519.Element, len(c))
	//
	for i, e := range c {
		values[i] = e.Value
	}
	//
	return values
}

// DefaultCatalogue returns the built-in catalogue of 35 corner-case operands.
// Negative values are taken modulo 2²⁵⁶, and a[i] denotes the i-th 32-bit limb
// (least significant first).
func DefaultCatalogue() Catalogue {
	const c = 19
	//
	var (
		p      = gf25519.Modulus().Int()
		twoP   = add(&p, &p)
		ones32 = sub(pow2(32), uint256.NewInt(1))
		low224 = sub(pow2(224), uint256.NewInt(1))
		mid    = sub(pow2(224), pow2(32))
	)
	//
	return Catalogue{
		entry(uint256.NewInt(0), "0"),
		entry(uint256.NewInt(1), "1"),
		entry(neg(uint256.NewInt(1)), "-1"),
		entry(uint256.NewInt(c), "c"),
		entry(neg(uint256.NewInt(c)), "-c"),
		entry(uint256.NewInt(c-1), "c-1"),
		entry(neg(uint256.NewInt(c-1)), "-(c-1)"),
		entry(uint256.NewInt(c+1), "c+1"),
		entry(neg(uint256.NewInt(c+1)), "-(c+1)"),
		entry(uint256.NewInt(2*c), "2c"),
		entry(neg(uint256.NewInt(2*c)), "-2c"),
		entry(uint256.NewInt(2*c-1), "2c-1"),
		entry(neg(uint256.NewInt(2*c-1)), "-(2c-1)"),
		entry(uint256.NewInt(2*c+1), "2c+1"),
		entry(neg(uint256.NewInt(2*c+1)), "-(2c+1)"),
		entry(&p, "p"),
		entry(neg(&p), "-p"),
		entry(sub(&p, uint256.NewInt(1)), "p-1"),
		entry(neg(sub(&p, uint256.NewInt(1))), "-(p-1)"),
		entry(add(&p, uint256.NewInt(1)), "p+1"),
		entry(neg(add(&p, uint256.NewInt(1))), "-(p+1)"),
		entry(twoP, "2p"),
		entry(neg(twoP), "-2p"),
		entry(sub(twoP, uint256.NewInt(1)), "2p-1"),
		entry(neg(sub(twoP, uint256.NewInt(1))), "-(2p-1)"),
		entry(add(twoP, uint256.NewInt(1)), "2p+1"),
		entry(neg(add(twoP, uint256.NewInt(1))), "-(2p+1)"),
		entry(ones32, "a[0] = 0xFFFFFFFF, rest 0"),
		entry(neg(pow2(32)), "a[0] = 0, rest 0xFFFFFFFF"),
		entry(low224, "a[7] = 0, rest 0xFFFFFFFF"),
		entry(neg(pow2(224)), "a[7] = 0xFFFFFFFF, rest 0"),
		entry(mid, "a[0] = a[7] = 0, rest 0xFFFFFFFF"),
		entry(new(uint256.Int).Not(mid), "a[0] = a[7] = 0xFFFFFFFF, rest 0"),
		entry(&uint256.Int{0x0123456789ABCDEF, 0x0123456789ABCDEF, 0x0123456789ABCDEF, 0x0123456789ABCDEF}, "pattern 0123..."),
		entry(&uint256.Int{0x89ABCDEF01234567, 0x89ABCDEF01234567, 0x89ABCDEF01234567, 0x89ABCDEF01234567}, "pattern 89AB..."),
	}
}

// ReadCatalogue parses a catalogue, one operand per line.  Each line holds a hex
// value (see ParseOperand), optionally followed by a "#" and a label.  Blank
// lines, and lines starting with "#", are ignored.
func ReadCatalogue(reader io.Reader) (Catalogue, error) {
	var (
		catalogue Catalogue
		scanner   = bufio.NewScanner(reader)
		line      = 0
	)
	//
	for scanner.Scan() {
		line++
		//
		text, label, _ := strings.Cut(scanner.Text(), "#")
		text = strings.TrimSpace(text)
		//
		if text == "" {
			continue
		}
		//
		value, err := ParseOperand(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		//
		catalogue = append(catalogue, Entry{value, strings.TrimSpace(label)})
	}
	//
	if err := scanner.Err(); err != nil {
		return nil, err
	} else if len(catalogue) == 0 {
		return nil, errors.New("catalogue is empty")
	}
	//
	return catalogue, nil
}

// ReadCatalogueFile parses a catalogue from the given file.
func ReadCatalogueFile(filename string) (Catalogue, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "reading catalogue")
	}
	//
	defer file.Close()
	//
	catalogue, err := ReadCatalogue(file)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing catalogue %s", filename)
	}
	//
	return catalogue, nil
}

func entry(v *uint256.Int, label string) Entry {
	return Entry{gf25519.FromInt(v), label}
}

func pow2(n uint) *uint256.Int {
	return new(uint256.Int).Lsh(uint256.NewInt(1), n)
}

// neg computes -x mod 2²⁵⁶.
func neg(x *uint256.Int) *uint256.Int {
	return new(uint256.Int).Sub(new(uint256.Int), x)
}

func add(x, y *uint256.Int) *uint256.Int {
	return new(uint256.Int).Add(x, y)
}

func sub(x, y *uint256.Int) *uint256.Int {
	return new(uint256.Int).Sub(x, y)
}
