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
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/consensys/go-ratfunc/pkg/batch"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] batch_file.yaml",
	Short: "Evaluate a batch of formulas.",
	Long: `Evaluate every formula in a YAML batch file at each of its points, along
	with any requested derivatives and propagated errors.  Points are evaluated
	concurrently, and results are written in order as YAML (or JSON).`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		file, err := batch.Load(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		results, err := batch.Run(ctx, file, GetInt(cmd, "jobs"))
		//
		stop()
		//
		if err != nil {
			log.Error(err)
			os.Exit(4)
		}
		//
		if GetFlag(cmd, "json") {
			err = json.NewEncoder(os.Stdout).Encode(results)
		} else {
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			err = enc.Encode(results)
			//
			if err == nil {
				err = enc.Close()
			}
		}
		//
		exitOnError(err)
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().IntP("jobs", "j", 0, "maximum number of concurrent evaluations (0 means unlimited)")
	batchCmd.Flags().Bool("json", false, "write results as JSON")
}
