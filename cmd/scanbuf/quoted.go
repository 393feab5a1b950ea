/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"

	"github.com/jplu/scanbuf/cmd/scanbuf/setup"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func CmdQuoted() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quoted <quote> [file]",
		Short: "Print every quoted run, quotes included, with the line:column it starts at.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := cmd.Flags().GetBool("raw")
			if err != nil {
				return err
			}
			quote, err := setup.ParseRune(args[0])
			if err != nil {
				return err
			}
			buf, err := setup.LoadBuffer(cmd, args[1:])
			if err != nil {
				return err
			}

			for buf.SkipUntil(quote) {
				start := buf.Cursor()
				run := buf.ReadUntil(quote, !raw)
				if !buf.IsOnContent() {
					logrus.WithField("cursor", start.String()).Warn("unterminated quoted run")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%s\n", start.Line, start.Column, run)
				buf.Next()
			}
			return nil
		},
	}
	cmd.Flags().Bool("raw", false, "Do not treat backslash-escaped quotes as content.")
	return cmd
}
