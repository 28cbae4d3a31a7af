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

import "fmt"

// Mode identifies a generation strategy.
type Mode uint8

const (
	// CornerCaseMode sweeps the operand catalogue.
	CornerCaseMode Mode = iota
	// PseudoRandomMode follows a chain seeded from two fixed values.
	PseudoRandomMode
)

// Modes lists all modes, in generation order.
var Modes = []Mode{CornerCaseMode, PseudoRandomMode}

// ParseMode parses the short name of a mode ("cc" or "pr").
func ParseMode(name string) (Mode, error) {
	for _, m := range Modes {
		if m.String() == name {
			return m, nil
		}
	}
	//
	return 0, fmt.Errorf("unknown mode \"%s\" (expected cc or pr)", name)
}

// Header returns the artifact header (without the leading "#") for an operation
// generated in this mode.
func (m Mode) Header(op *Operation) string {
	switch m {
	case CornerCaseMode:
		return fmt.Sprintf("Corner-Case Test-Vectors (CCTV) for %s", op.Title)
	default:
		return fmt.Sprintf("Pseudo-Random Test-Vectors (PRTV) for %s", op.Title)
	}
}

// FileName returns the artifact name for an operation generated in this mode,
// e.g. "gfp_add_cc.tv".
func (m Mode) FileName(op *Operation) string {
	return fmt.Sprintf("gfp_%s_%s.tv", op.Name, m)
}

// Description returns a human-readable name, used in summaries.
func (m Mode) Description() string {
	switch m {
	case CornerCaseMode:
		return "corner-case"
	default:
		return "pseudo-random"
	}
}

func (m Mode) String() string {
	switch m {
	case CornerCaseMode:
		return "cc"
	case PseudoRandomMode:
		return "pr"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}
