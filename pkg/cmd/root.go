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
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gfptv",
	Short: "A test-vector generator for arithmetic in GF(2^255 - 19).",
	Long: `Generates corner-case and pseudo-random test vectors for addition, subtraction,
multiplication, multiplication by 121666, squaring, halving and conditional
negation modulo p = 2^255 - 19.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(GetFlag(cmd, "verbose"))
	},
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("gfptv ")
			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		} else {
			fmt.Println(cmd.UsageString())
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// Configure the global logger.  Colours are only used when logging to a
// terminal.
func configureLogging(verbose bool) {
	log.SetFormatter(&log.TextFormatter{
		DisableColors:    !term.IsTerminal(int(os.Stderr.Fd())),
		DisableTimestamp: true,
	})
	//
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "read settings from a config file (yaml, toml or json)")
	rootCmd.PersistentFlags().String("catalogue", "", "read corner-case operands from a file (default: built-in catalogue)")
	bindFlag("catalogue", rootCmd.PersistentFlags().Lookup("catalogue"))
}
