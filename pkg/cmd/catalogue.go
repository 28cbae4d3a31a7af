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
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-gfptv/pkg/testvec"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var catalogueCmd = &cobra.Command{
	Use:   "catalogue [flags]",
	Short: "print the corner-case operand catalogue.",
	Long:  `Print the operands used for corner-case test vectors, in the order they are swept.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		p, err := newPlan(settings)
		if err != nil {
			log.Error(err)
			os.Exit(2)
		}
		//
		printCatalogue(os.Stdout, p.generator.Catalogue, GetFlag(cmd, "reduced"))
	},
}

// Print one line per catalogue entry: index, value (optionally followed by its
// canonical representative) and label.
func printCatalogue(out io.Writer, catalogue testvec.Catalogue, reduced bool) {
	for i, e := range catalogue {
		fmt.Fprintf(out, "%2d %s", i, testvec.FormatOperand(e.Value))
		//
		if reduced {
			fmt.Fprintf(out, " %s", testvec.FormatOperand(e.Value.Reduce()))
		}
		//
		if e.Label != "" {
			fmt.Fprintf(out, " # %s", e.Label)
		}
		//
		fmt.Fprintln(out)
	}
}

func init() {
	rootCmd.AddCommand(catalogueCmd)
	catalogueCmd.Flags().Bool("reduced", false, "also print the canonical representative of each operand")
}
