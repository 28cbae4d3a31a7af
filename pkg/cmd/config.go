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
	"strings"

	"github.com/consensys/go-gfptv/field/gf25519"
	"github.com/consensys/go-gfptv/pkg/testvec"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys.  Each can be given on the command line, in a config file
// or through an environment variable (e.g. GFPTV_SEEDS_OP1).
const (
	outputKey     = "output"
	countKey      = "count"
	catalogueKey  = "catalogue"
	operationsKey = "operations"
	modesKey      = "modes"
	seed1Key      = "seeds.op1"
	seed2Key      = "seeds.op2"
)

// Path of an explicitly requested config file (if any).
var configFile string

// settings holds the merged configuration of flags, config file and
// environment.
var settings = viper.New()

// Bind a flag to a configuration key.
func bindFlag(key string, flag *pflag.Flag) {
	if err := settings.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// Read the config file (if one was given) and enable environment overrides.
func initConfig() {
	settings.SetEnvPrefix("GFPTV")
	settings.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	settings.AutomaticEnv()
	//
	if configFile != "" {
		settings.SetConfigFile(configFile)
		//
		if err := settings.ReadInConfig(); err != nil {
			log.Errorf("reading config file %s: %v", configFile, err)
			os.Exit(2)
		}
	}
}

// plan describes the set of artifacts to be generated.
type plan struct {
	// Shared generation parameters
	generator testvec.Generator
	// Operations to generate, in order.
	operations []*testvec.Operation
	// Modes to generate, in order.
	modes []testvec.Mode
	// Destination directory.
	output string
}

// newPlan resolves a configuration into a plan, reporting any configuration
// error (unknown operation or mode, malformed operand, unreadable catalogue).
// Unset keys fall back to the built-in defaults.
func newPlan(config *viper.Viper) (*plan, error) {
	var (
		p   = plan{generator: testvec.NewGenerator(), output: "."}
		err error
	)
	//
	if dir := config.GetString(outputKey); dir != "" {
		p.output = dir
	}
	//
	if config.IsSet(countKey) {
		count := config.GetInt(countKey)
		if count < 0 {
			return nil, fmt.Errorf("invalid vector count %d", count)
		}
		//
		p.generator.Count = uint(count)
	}
	//
	if filename := config.GetString(catalogueKey); filename != "" {
		if p.generator.Catalogue, err = testvec.ReadCatalogueFile(filename); err != nil {
			return nil, err
		}
	}
	//
	if p.generator.Seeds.First, err = seed(config, seed1Key, p.generator.Seeds.First); err != nil {
		return nil, err
	} else if p.generator.Seeds.Second, err = seed(config, seed2Key, p.generator.Seeds.Second); err != nil {
		return nil, err
	}
	//
	if p.operations, err = operations(config.GetStringSlice(operationsKey)); err != nil {
		return nil, err
	} else if p.modes, err = modes(config.GetStringSlice(modesKey)); err != nil {
		return nil, err
	}
	//
	return &p, nil
}

// Parse a seed, if one is configured.
func seed(config *viper.Viper, key string, fallback gf25519.Element) (gf25519.Element, error) {
	text := config.GetString(key)
	//
	if text == "" {
		return fallback, nil
	}
	//
	value, err := testvec.ParseOperand(text)
	//
	return value, errors.Wrapf(err, "invalid seed %s", key)
}

// Resolve operation names, where none means all of them.  Names may also be
// comma-separated.
func operations(names []string) ([]*testvec.Operation, error) {
	var ops []*testvec.Operation
	//
	for _, name := range splitNames(names) {
		op, err := testvec.LookupOperation(name)
		if err != nil {
			return nil, err
		}
		//
		ops = append(ops, op)
	}
	//
	if len(ops) == 0 {
		return testvec.Operations, nil
	}
	//
	return ops, nil
}

// Resolve mode names, where none means all of them.
func modes(names []string) ([]testvec.Mode, error) {
	var ms []testvec.Mode
	//
	for _, name := range splitNames(names) {
		m, err := testvec.ParseMode(name)
		if err != nil {
			return nil, err
		}
		//
		ms = append(ms, m)
	}
	//
	if len(ms) == 0 {
		return testvec.Modes, nil
	}
	//
	return ms, nil
}

func splitNames(names []string) []string {
	var split []string
	//
	for _, name := range names {
		for _, n := range strings.Split(name, ",") {
			if n = strings.TrimSpace(n); n != "" {
				split = append(split, n)
			}
		}
	}
	//
	return split
}
