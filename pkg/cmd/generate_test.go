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
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/consensys/go-gfptv/pkg/testvec"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// Expected number of lines (excluding the header) of each artifact, for the
// built-in catalogue and default count.
var expectedLines = map[string]int{
	"gfp_add_cc.tv":   3 * 1225,
	"gfp_sub_cc.tv":   3 * 1225,
	"gfp_mul_cc.tv":   3 * 1225,
	"gfp_mul32_cc.tv": 2 * 35,
	"gfp_sqr_cc.tv":   2 * 35,
	"gfp_hlv_cc.tv":   2 * 35,
	"gfp_cneg_cc.tv":  2 * 70,
	"gfp_add_pr.tv":   3 * 1000,
	"gfp_sub_pr.tv":   3 * 1000,
	"gfp_mul_pr.tv":   3 * 1000,
	"gfp_mul32_pr.tv": 2 * 1000,
	"gfp_sqr_pr.tv":   2 * 1000,
	"gfp_hlv_pr.tv":   2 * 1000,
	"gfp_cneg_pr.tv":  2 * 1000,
}

func Test_Generate_01(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vectors")
	//
	config := viper.New()
	config.Set(outputKey, dir)
	//
	p, err := newPlan(config)
	require.NoError(t, err)
	require.Empty(t, p.run())
	//
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, len(expectedLines))
	//
	for _, mode := range testvec.Modes {
		for _, op := range testvec.Operations {
			name := mode.FileName(op)
			header, lines := readArtifact(t, filepath.Join(dir, name))
			//
			require.Equal(t, "# "+mode.Header(op), header, name)
			require.Equal(t, expectedLines[name], lines, name)
		}
	}
}

func Test_Generate_02(t *testing.T) {
	var (
		first  = t.TempDir()
		second = t.TempDir()
	)
	// Two runs produce identical artifacts
	for _, dir := range []string{first, second} {
		config := viper.New()
		config.Set(outputKey, dir)
		config.Set(operationsKey, []string{"sub", "cneg"})
		//
		p, err := newPlan(config)
		require.NoError(t, err)
		require.Empty(t, p.run())
	}
	//
	for _, name := range []string{"gfp_sub_cc.tv", "gfp_sub_pr.tv", "gfp_cneg_cc.tv", "gfp_cneg_pr.tv"} {
		a, err := os.ReadFile(filepath.Join(first, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(second, name))
		require.NoError(t, err)
		require.True(t, bytes.Equal(a, b), name)
	}
	//
	_, err := os.Stat(filepath.Join(first, "gfp_add_cc.tv"))
	require.True(t, os.IsNotExist(err))
}

func Test_Generate_03(t *testing.T) {
	dir := t.TempDir()
	// An artifact which cannot be written does not prevent the others
	require.NoError(t, os.Mkdir(filepath.Join(dir, "gfp_add_pr.tv"), 0755))
	//
	config := viper.New()
	config.Set(outputKey, dir)
	config.Set(operationsKey, []string{"add", "sqr"})
	config.Set(countKey, 8)
	//
	p, err := newPlan(config)
	require.NoError(t, err)
	//
	errs := p.run()
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Error(), "gfp_add_pr.tv")
	//
	_, lines := readArtifact(t, filepath.Join(dir, "gfp_sqr_pr.tv"))
	require.Equal(t, 2*8, lines)
}

func Test_Generate_04(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	// Output directory cannot be created
	p, err := newPlan(viper.New())
	require.NoError(t, err)
	//
	p.output = filepath.Join(file, "vectors")
	require.Len(t, p.run(), 1)
}

func Test_PrintCatalogue_01(t *testing.T) {
	var buf bytes.Buffer
	//
	printCatalogue(&buf, testvec.DefaultCatalogue(), false)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 35)
	require.Equal(t, " 0 0x0000000000000000000000000000000000000000000000000000000000000000 # 0", lines[0])
	// Strip the index, then read the listing back in.
	var listing strings.Builder
	for _, line := range lines {
		listing.WriteString(line[3:] + "\n")
	}
	//
	catalogue, err := testvec.ReadCatalogue(strings.NewReader(listing.String()))
	require.NoError(t, err)
	require.Equal(t, testvec.DefaultCatalogue(), catalogue)
}

func Test_PrintCatalogue_02(t *testing.T) {
	var buf bytes.Buffer
	//
	printCatalogue(&buf, testvec.DefaultCatalogue()[15:17], true)
	require.Equal(t,
		" 0 0x7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFED "+
			"0x0000000000000000000000000000000000000000000000000000000000000000 # p\n"+
			" 1 0x8000000000000000000000000000000000000000000000000000000000000013 "+
			"0x0000000000000000000000000000000000000000000000000000000000000026 # -p\n",
		buf.String())
}

// Read an artifact, returning its header and the number of remaining lines.
func readArtifact(t *testing.T, filename string) (string, int) {
	file, err := os.Open(filename)
	require.NoError(t, err)
	//
	defer file.Close()
	//
	var (
		scanner = bufio.NewScanner(file)
		header  string
		lines   int
	)
	//
	for scanner.Scan() {
		if header == "" {
			header = scanner.Text()
		} else {
			lines++
		}
	}
	//
	require.NoError(t, scanner.Err())
	//
	return header, lines
}
