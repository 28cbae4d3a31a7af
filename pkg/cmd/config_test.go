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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/consensys/go-gfptv/field/gf25519"
	"github.com/consensys/go-gfptv/pkg/testvec"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func Test_Plan_01(t *testing.T) {
	p, err := newPlan(viper.New())
	require.NoError(t, err)
	//
	require.Equal(t, ".", p.output)
	require.Equal(t, testvec.NewGenerator(), p.generator)
	require.Equal(t, testvec.Operations, p.operations)
	require.Equal(t, testvec.Modes, p.modes)
}

func Test_Plan_02(t *testing.T) {
	config := viper.New()
	config.Set(outputKey, "vectors")
	config.Set(countKey, 10)
	config.Set(operationsKey, []string{"mul,sqr", "cneg"})
	config.Set(modesKey, []string{"pr"})
	config.Set(seed1Key, "0x13")
	config.Set(seed2Key, "FF")
	//
	p, err := newPlan(config)
	require.NoError(t, err)
	//
	require.Equal(t, "vectors", p.output)
	require.Equal(t, uint(10), p.generator.Count)
	require.Equal(t, []*testvec.Operation{testvec.Mul, testvec.Sqr, testvec.Cneg}, p.operations)
	require.Equal(t, []testvec.Mode{testvec.PseudoRandomMode}, p.modes)
	require.Equal(t, gf25519.NewElement(19), p.generator.Seeds.First)
	require.Equal(t, gf25519.NewElement(255), p.generator.Seeds.Second)
}

func Test_Plan_03(t *testing.T) {
	invalid := map[string]any{
		countKey:      -1,
		operationsKey: []string{"div"},
		modesKey:      []string{"xx"},
		seed1Key:      "0xZZ",
		seed2Key:      "0x" + strings.Repeat("1", 65),
		catalogueKey:  filepath.Join(t.TempDir(), "missing.txt"),
	}
	//
	for key, value := range invalid {
		config := viper.New()
		config.Set(key, value)
		//
		_, err := newPlan(config)
		require.Error(t, err, "%s = %v", key, value)
	}
}

func Test_Plan_04(t *testing.T) {
	var (
		dir       = t.TempDir()
		catalogue = filepath.Join(dir, "catalogue.txt")
		yamlFile  = filepath.Join(dir, "gfptv.yaml")
	)
	//
	require.NoError(t, os.WriteFile(catalogue, []byte("0x00 # zero\n0x13 # c\n"), 0644))
	require.NoError(t, os.WriteFile(yamlFile, []byte(`
output: out
count: 4
catalogue: `+catalogue+`
operations: [add, hlv]
seeds:
  op1: "0x01"
  op2: "0x02"
`), 0644))
	//
	config := viper.New()
	config.SetConfigFile(yamlFile)
	require.NoError(t, config.ReadInConfig())
	//
	p, err := newPlan(config)
	require.NoError(t, err)
	//
	require.Equal(t, "out", p.output)
	require.Equal(t, uint(4), p.generator.Count)
	require.Len(t, p.generator.Catalogue, 2)
	require.Equal(t, "c", p.generator.Catalogue[1].Label)
	require.Equal(t, []*testvec.Operation{testvec.Add, testvec.Hlv}, p.operations)
	require.Equal(t, testvec.Modes, p.modes)
	require.Equal(t, gf25519.One(), p.generator.Seeds.First)
	require.Equal(t, gf25519.NewElement(2), p.generator.Seeds.Second)
}

func Test_SplitNames_01(t *testing.T) {
	require.Nil(t, splitNames(nil))
	require.Nil(t, splitNames([]string{"", " , "}))
	require.Equal(t, []string{"add", "sub", "mul"}, splitNames([]string{"add, sub", "mul"}))
}
