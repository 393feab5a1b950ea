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

package scanbuf

import "slices"

const (
	lineFeed   = '\n'
	escapeChar = '\\'
)

// isBlank checks if a rune is one of the separators skipped between tokens:
// space, line feed, carriage return or tab.
func isBlank(r rune) bool {
	return r == ' ' || r == lineFeed || r == '\r' || r == '\t'
}

// isOneOf checks if a rune is a member of set. An empty set matches nothing.
func isOneOf(r rune, set []rune) bool {
	return slices.Contains(set, r)
}
