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

func CmdFind() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <char> [file]",
		Short: "Print the line:column of every occurrence of a character.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			occurrence, err := setup.ParseRune(args[0])
			if err != nil {
				return err
			}
			buf, err := setup.LoadBuffer(cmd, args[1:])
			if err != nil {
				return err
			}

			count := 0
			for buf.SkipUntil(occurrence) {
				fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\n", buf.Line(), buf.Column())
				count++
				buf.Next()
			}

			logrus.WithFields(logrus.Fields{
				"char":  string(occurrence),
				"count": count,
			}).Info("find done")
			return nil
		},
	}
	return cmd
}
