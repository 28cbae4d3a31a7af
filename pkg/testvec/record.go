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

// Record is a single test vector: one or two operands (exactly as given to the
// operation, i.e. possibly unreduced) together with the reduced result.
type Record struct {
	Operands []gf25519.Element
	Result   gf25519.Element
}

func (r Record) String() string {
	var builder strings.Builder
	//
	for i, op := range r.Operands {
		builder.WriteString(fmt.Sprintf("op%d=%s ", i+1, op))
	}
	//
	builder.WriteString(fmt.Sprintf("res=%s", r.Result))
	//
	return builder.String()
}

// Vectors is the complete content of one artifact.
type Vectors struct {
	// Header comment (without the leading "#").
	Header string
	// Records in emission order.
	Records []Record
}
