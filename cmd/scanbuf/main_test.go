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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ScanbufTestSuite struct {
	suite.Suite
	Dir string
}

func (s *ScanbufTestSuite) SetupTest() {
	s.Dir = s.T().TempDir()
}

func TestScanbuf(t *testing.T) {
	suite.Run(t, new(ScanbufTestSuite))
}

func (s *ScanbufTestSuite) run(stdin string, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := CmdScanbuf()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func (s *ScanbufTestSuite) writeFile(name string, content []byte) string {
	path := filepath.Join(s.Dir, name)
	s.Require().NoError(os.WriteFile(path, content, 0o600))
	return path
}

func (s *ScanbufTestSuite) TestFindFromStdin() {
	require := s.Require()
	out, _, err := s.run("a,b\nc,d", "find", ",")
	require.NoError(err)
	require.Equal("1:1\n2:2\n", out)
}

func (s *ScanbufTestSuite) TestFindEscapedChar() {
	require := s.Require()
	out, _, err := s.run("a\tb\tc", "find", `\t`)
	require.NoError(err)
	require.Equal("1:1\n1:3\n", out)
}

func (s *ScanbufTestSuite) TestFindNothing() {
	require := s.Require()
	out, _, err := s.run("abc", "find", "x")
	require.NoError(err)
	require.Empty(out)
}

func (s *ScanbufTestSuite) TestFindInvalidChar() {
	require := s.Require()
	_, _, err := s.run("abc", "find", "ab")
	require.ErrorContains(err, "expected a single character")
}

func (s *ScanbufTestSuite) TestFindMissingFile() {
	require := s.Require()
	_, _, err := s.run("", "find", ",", filepath.Join(s.Dir, "missing.txt"))
	require.Error(err)
}

func (s *ScanbufTestSuite) TestFindNormalize() {
	require := s.Require()
	path := s.writeFile("accent.txt", []byte("e\u0301,"))

	out, _, err := s.run("", "find", ",", path)
	require.NoError(err)
	require.Equal("1:2\n", out)

	out, _, err = s.run("", "--normalize", "find", ",", path)
	require.NoError(err)
	require.Equal("1:1\n", out)
}

func (s *ScanbufTestSuite) TestFindAfterLongASCIIPrefix() {
	require := s.Require()
	path := s.writeFile("long.txt", []byte(strings.Repeat("a", 1100)+"é,"))

	out, _, err := s.run("", "find", ",", path)
	require.NoError(err)
	require.Equal("1:1101\n", out)
}

func (s *ScanbufTestSuite) TestFindInvalidUTF8Char() {
	require := s.Require()
	_, _, err := s.run("abc", "find", "\xff")
	require.ErrorContains(err, "expected a single character")
}

func (s *ScanbufTestSuite) TestFindLatin1() {
	require := s.Require()
	path := s.writeFile("latin1.txt", []byte("caf\xe9,x"))

	out, _, err := s.run("", "--content-type", "latin1", "find", ",", path)
	require.NoError(err)
	require.Equal("1:4\n", out)
}

func (s *ScanbufTestSuite) TestFields() {
	require := s.Require()
	path := s.writeFile("fields.txt", []byte("  alpha beta\n\tgamma"))

	out, _, err := s.run("", "fields", path)
	require.NoError(err)
	require.Equal("1:2\talpha\n1:8\tbeta\n2:2\tgamma\n", out)
}

func (s *ScanbufTestSuite) TestFieldsWithSeparators() {
	require := s.Require()
	out, _, err := s.run("a,b c,,", "fields", "--separators", ",")
	require.NoError(err)
	require.Equal("1:0\ta\n1:2\tb\n1:4\tc\n", out)
}

func (s *ScanbufTestSuite) TestQuoted() {
	require := s.Require()
	out, _, err := s.run(`say "hi \"you\"" and "bye"`, "quoted", `"`)
	require.NoError(err)
	require.Equal("1:4\t\"hi \\\"you\\\"\"\n1:21\t\"bye\"\n", out)
}

func (s *ScanbufTestSuite) TestQuotedRaw() {
	require := s.Require()
	out, stderr, err := s.run(`"a\"b"`, "quoted", "--raw", `"`)
	require.NoError(err)
	require.Equal("1:0\t\"a\\\"\n1:5\t\"\n", out)
	require.Contains(stderr, "unterminated quoted run")
}

func (s *ScanbufTestSuite) TestVerboseLogging() {
	require := s.Require()
	_, stderr, err := s.run("a b", "-vv", "fields")
	require.NoError(err)
	require.Contains(stderr, "loaded")
	require.Contains(stderr, "fields done")
}
