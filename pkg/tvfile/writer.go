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
package tvfile

import (
	"bufio"
	"io"
	"os"

	"github.com/consensys/go-gfptv/pkg/testvec"
	"github.com/pkg/errors"
)

// Writer renders test vectors in the line-oriented text format:
//
//	# <header>
//	op1: 0x<64 uppercase hex digits>
//	op2: 0x<64 uppercase hex digits>
//	res: 0x<64 uppercase hex digits>
//
// where the "op2" line is present only for binary operations.
type Writer struct {
	out *bufio.Writer
	// Number of records written so far.
	count uint
}

// NewWriter constructs a writer on top of the given output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bufio.NewWriter(w), 0}
}

// WriteHeader writes the header comment.  This should be called exactly once,
// before any record.
func (w *Writer) WriteHeader(header string) error {
	_, err := w.out.WriteString("# " + header + "\n")
	//
	return err
}

// WriteRecord writes a single record.
func (w *Writer) WriteRecord(record testvec.Record) error {
	for i, op := range record.Operands {
		if err := w.writeField(operandNames[i], testvec.FormatOperand(op)); err != nil {
			return err
		}
	}
	//
	if err := w.writeField("res", testvec.FormatOperand(record.Result)); err != nil {
		return err
	}
	//
	w.count++
	//
	return nil
}

// Count returns the number of records written so far.
func (w *Writer) Count() uint {
	return w.count
}

// Flush any buffered output.
func (w *Writer) Flush() error {
	return w.out.Flush()
}

// Write an entire artifact (header and records) and flush it.
func Write(w io.Writer, vectors testvec.Vectors) error {
	writer := NewWriter(w)
	//
	if err := writer.WriteHeader(vectors.Header); err != nil {
		return err
	}
	//
	for _, r := range vectors.Records {
		if err := writer.WriteRecord(r); err != nil {
			return err
		}
	}
	//
	return writer.Flush()
}

// WriteFile creates (or truncates) the given file, writes an entire artifact to
// it and closes it.  Any failure, including on close, is returned.
func WriteFile(filename string, vectors testvec.Vectors) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "creating test-vector file")
	}
	//
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "closing %s", filename)
		}
	}()
	//
	if err = Write(file, vectors); err != nil {
		return errors.Wrapf(err, "writing %s", filename)
	}
	//
	return nil
}

var operandNames = []string{"op1", "op2"}

func (w *Writer) writeField(name string, value string) error {
	_, err := w.out.WriteString(name + ": " + value + "\n")
	//
	return err
}
