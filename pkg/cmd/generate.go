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
	"os"
	"path/filepath"
	"strings"

	"github.com/consensys/go-gfptv/field/gf25519"
	"github.com/consensys/go-gfptv/pkg/testvec"
	"github.com/consensys/go-gfptv/pkg/tvfile"
	"github.com/consensys/go-gfptv/pkg/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags]",
	Short: "generate test-vector files.",
	Long: `Generate one test-vector file per operation and mode.  Corner-case files
(gfp_<op>_cc.tv) sweep a fixed catalogue of operands, whilst pseudo-random files
(gfp_<op>_pr.tv) follow a chain seeded from two fixed values.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Sanity check field parameters
		if err := gf25519.CheckParameters(); err != nil {
			log.Errorf("invalid field parameters: %v", err)
			os.Exit(2)
		}
		// Resolve configuration
		p, err := newPlan(settings)
		if err != nil {
			log.Error(err)
			os.Exit(2)
		}
		//
		if errs := p.run(); len(errs) > 0 {
			// Report errors
			for _, e := range errs {
				log.Error(e)
			}
			// Error signal
			os.Exit(1)
		}
	},
}

// run generates every artifact of the plan, in order.  A failure aborts only the
// artifact concerned; all failures are returned.
func (p *plan) run() []error {
	var errs []error
	//
	if err := os.MkdirAll(p.output, 0755); err != nil {
		return []error{errors.Wrap(err, "creating output directory")}
	}
	//
	log.Debugf("generating %s test vectors for %d operation(s) into %s", modeNames(p.modes),
		len(p.operations), p.output)
	//
	for _, mode := range p.modes {
		for _, op := range p.operations {
			if err := p.write(mode, op); err != nil {
				errs = append(errs, err)
			}
		}
	}
	//
	return errs
}

// write generates and writes a single artifact.
func (p *plan) write(mode testvec.Mode, op *testvec.Operation) error {
	var (
		filename = filepath.Join(p.output, mode.FileName(op))
		stats    = util.NewPerfStats()
		vectors  = p.generator.Generate(mode, op)
	)
	//
	if err := tvfile.WriteFile(filename, vectors); err != nil {
		return err
	}
	//
	stats.Log(fmt.Sprintf("Generating %s", filename), uint(len(vectors.Records)))
	log.Infof("%d %s test-vectors written to %s", len(vectors.Records), mode.Description(), filename)
	//
	return nil
}

func modeNames(modes []testvec.Mode) string {
	names := make([]string, len(modes))
	//
	for i, m := range modes {
		names[i] = m.String()
	}
	//
	return strings.Join(names, ",")
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("output", "o", ".", "directory into which test-vector files are written")
	generateCmd.Flags().UintP("count", "n", testvec.DefaultCount, "number of pseudo-random vectors per operation")
	generateCmd.Flags().StringSlice("op", nil, "operation(s) to generate (add, sub, mul, mul32, sqr, hlv, cneg)")
	generateCmd.Flags().StringSlice("mode", nil, "mode(s) to generate (cc, pr)")
	generateCmd.Flags().String("seed1", "", "first pseudo-random seed (hex)")
	generateCmd.Flags().String("seed2", "", "second pseudo-random seed (hex)")
	//
	bindFlag(outputKey, generateCmd.Flags().Lookup("output"))
	bindFlag(countKey, generateCmd.Flags().Lookup("count"))
	bindFlag(operationsKey, generateCmd.Flags().Lookup("op"))
	bindFlag(modesKey, generateCmd.Flags().Lookup("mode"))
	bindFlag(seed1Key, generateCmd.Flags().Lookup("seed1"))
	bindFlag(seed2Key, generateCmd.Flags().Lookup("seed2"))
}
