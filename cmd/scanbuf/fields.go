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

func CmdFields() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields [file]",
		Short: "Print every blank-separated field with the line:column it starts at.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			separators, err := cmd.Flags().GetString("separators")
			if err != nil {
				return err
			}
			seps := []rune(separators)

			buf, err := setup.LoadBuffer(cmd, args)
			if err != nil {
				return err
			}

			count := 0
			for buf.SkipBlanks() {
				if buf.On(seps...) {
					buf.Next()
					continue
				}
				start := buf.Cursor()
				field := buf.ReadUntilBeforeBlankOr(seps...)
				fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%s\n", start.Line, start.Column, field)
				count++
			}

			logrus.WithField("count", count).Info("fields done")
			return nil
		},
	}
	cmd.Flags().String("separators", "", "Extra characters that end a field, on top of blanks.")
	return cmd
}
