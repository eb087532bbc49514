// Copyright 2018 The CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command json5lint is a small demonstration CLI over the parser package:
// it parses one or more JSON5 files, reports every recovered error found in
// each, and optionally prints the materialized value as plain JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/spf13/cobra"

	"github.com/mkantor/node-json5-parser/parser"
)

var logger = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

const rootDoc = `json5lint parses JSON5 documents and reports syntax errors.

Unlike a strict JSON5 reader, it never aborts on the first error: every
file is parsed to completion and every recovered error is reported.

Examples:

  json5lint config.json5
  json5lint --print-value config.json5
  json5lint --strict config.json5 settings.json5
`

func newRootCmd() *cobra.Command {
	var strict bool
	var printValue bool
	var allowEmpty bool

	cmd := &cobra.Command{
		Use:   "json5lint [files...]",
		Short: "lint JSON5 files",
		Long:  rootDoc,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &parser.Options{
				DisallowComments:  strict,
				AllowEmptyContent: allowEmpty,
			}
			return runLint(cmd, args, opts, printValue)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&strict, "strict", false, "reject comments as errors instead of accepting them as an extension")
	flags.BoolVar(&printValue, "print-value", false, "also print the materialized value as JSON")
	flags.BoolVar(&allowEmpty, "allow-empty", false, "treat a blank document as valid instead of reporting a missing value")

	return cmd
}

func runLint(cmd *cobra.Command, files []string, opts *parser.Options, printValue bool) error {
	var failed bool

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Log("file", path, "err", err)
			failed = true
			continue
		}

		errs := &parser.ErrorList{}
		value := parser.Parse(string(data), errs, opts)

		if len(errs.Errors()) > 0 {
			failed = true
			errs.Sort()
			fmt.Fprintf(cmd.OutOrStdout(), "%s:\n%s", path, errs.Error())
		} else {
			logger.Log("file", path, "msg", "ok")
		}

		if printValue {
			encoded, err := json.MarshalIndent(value, "", "  ")
			if err != nil {
				logger.Log("file", path, "err", err)
				failed = true
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		}
	}

	if failed {
		return fmt.Errorf("one or more files failed to lint cleanly")
	}
	return nil
}
