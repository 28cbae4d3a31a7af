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
	"github.com/tmthrgd/go-hex"
)

// OperandDigits is the number of hex digits in a rendered operand.
const OperandDigits = 64

// ParseOperand parses a 256-bit operand written in hex, with or without a "0x"
// prefix and with at most 64 digits.  The value is taken as given (i.e. it is
// not reduced).
func ParseOperand(text string) (gf25519.Element, error) {
	var bytes [32]byte
	//
	digits := strings.TrimSpace(text)
	//
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}
	//
	if len(digits) == 0 {
		return gf25519.Element{}, fmt.Errorf("empty operand \"%s\"", text)
	} else if len(digits) > OperandDigits {
		return gf25519.Element{}, fmt.Errorf("operand \"%s\" exceeds 256 bits", text)
	}
	// Left-pad so that decoding always yields exactly 32 bytes.
	digits = strings.Repeat("0", OperandDigits-len(digits)) + digits
	//
	decoded, err := hex.DecodeString(digits)
	if err != nil {
		return gf25519.Element{}, fmt.Errorf("invalid operand \"%s\": %w", text, err)
	}
	//
	copy(bytes[:], decoded)
	//
	return gf25519.FromBytes(bytes), nil
}

// FormatOperand renders a value as "0x" followed by exactly 64 uppercase hex
// digits.
func FormatOperand(x gf25519.Element) string {
	bytes := x.Bytes()
	//
	return "0x" + strings.ToUpper(hex.EncodeToString(bytes[:]))
}
