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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRune(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    rune
		wantErr bool
	}{
		{name: "ascii", arg: ",", want: ','},
		{name: "double quote", arg: `"`, want: '"'},
		{name: "single quote", arg: "'", want: '\''},
		{name: "multi-byte", arg: "é", want: 'é'},
		{name: "escaped tab", arg: `\t`, want: '\t'},
		{name: "escaped backslash", arg: `\\`, want: '\\'},
		{name: "two characters", arg: "ab", wantErr: true},
		{name: "empty", arg: "", wantErr: true},
		{name: "invalid utf-8 byte", arg: "\xff", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRune(tt.arg)
			if tt.wantErr {
				require.ErrorContains(t, err, "expected a single character")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, r)
		})
	}
}
