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
	"os"

	"github.com/jplu/scanbuf/cmd/scanbuf/setup"
	"github.com/spf13/cobra"
)

func CmdScanbuf() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "scanbuf",
		Short:        "Walk text content rune by rune and report what the cursor finds",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			args, err := setup.ScanArgsFromCmd(cmd)
			if err != nil {
				return err
			}
			setup.ConfigureLogger(cmd, args)
			return nil
		},
	}
	setup.AddScanArgs(cmd)

	cmd.AddCommand(CmdFind())
	cmd.AddCommand(CmdFields())
	cmd.AddCommand(CmdQuoted())

	return cmd
}

func main() {
	if err := CmdScanbuf().Execute(); err != nil {
		os.Exit(1)
	}
}
