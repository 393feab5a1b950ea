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

package setup

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/jplu/scanbuf/scanbuf"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type ScanArgs struct {
	ContentType    string
	Normalize      bool
	VerbosityCount int
}

func AddScanArgs(cmd *cobra.Command) {
	cmd.PersistentFlags().String("content-type", "", "MIME type or charset label of the input, e.g. \"latin1\". Sniffed when empty.")
	cmd.PersistentFlags().Bool("normalize", false, "Apply Unicode NFC normalization before scanning.")
	cmd.PersistentFlags().CountP("verbose", "v", "Set verbosity.")
}

func ScanArgsFromCmd(cmd *cobra.Command) (*ScanArgs, error) {
	contentType, err := cmd.Flags().GetString("content-type")
	if err != nil {
		return nil, err
	}
	normalize, err := cmd.Flags().GetBool("normalize")
	if err != nil {
		return nil, err
	}
	verbosity, err := cmd.Flags().GetCount("verbose")
	if err != nil {
		return nil, err
	}
	return &ScanArgs{
		ContentType:    contentType,
		Normalize:      normalize,
		VerbosityCount: verbosity,
	}, nil
}

func ConfigureLogger(cmd *cobra.Command, args *ScanArgs) {
	logrus.SetOutput(cmd.ErrOrStderr())
	switch {
	case args.VerbosityCount == 0:
		logrus.SetLevel(logrus.WarnLevel)
	case args.VerbosityCount == 1:
		logrus.SetLevel(logrus.InfoLevel)
	default:
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// LoadBuffer loads the file named by the first element of paths, or stdin
// when paths is empty.
func LoadBuffer(cmd *cobra.Command, paths []string) (*scanbuf.Buffer, error) {
	args, err := ScanArgsFromCmd(cmd)
	if err != nil {
		return nil, err
	}

	var r io.Reader = cmd.InOrStdin()
	source := "stdin"
	if len(paths) > 0 {
		f, err := os.Open(paths[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
		source = paths[0]
	}

	buf, err := scanbuf.Load(r, args.ContentType)
	if err != nil {
		return nil, fmt.Errorf("could not load %s: %w", source, err)
	}
	if args.Normalize {
		buf = scanbuf.NewNormalized(buf.String())
	}

	logrus.WithFields(logrus.Fields{
		"source":    source,
		"runes":     buf.Len(),
		"normalize": args.Normalize,
	}).Debug("loaded")
	return buf, nil
}

// ParseRune reads a single character argument. Go escapes such as \t or \n
// are accepted.
func ParseRune(arg string) (rune, error) {
	if utf8.RuneCountInString(arg) == 1 {
		r, size := utf8.DecodeRuneInString(arg)
		if r == utf8.RuneError && size == 1 {
			return 0, fmt.Errorf("expected a single character, got %q", arg)
		}
		return r, nil
	}
	r, _, tail, err := strconv.UnquoteChar(arg, '\'')
	if err != nil || tail != "" {
		return 0, fmt.Errorf("expected a single character, got %q", arg)
	}
	return r, nil
}
