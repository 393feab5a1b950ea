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

// SkipBlanksUntilFind moves past blanks until the cursor reaches occurrence or
// a rune that is neither blank nor occurrence. It reports whether the cursor
// ended on occurrence. Occurrence may itself be a blank.
func (b *Buffer) SkipBlanksUntilFind(occurrence rune) bool {
	for b.IsOnBlank() && b.current() != occurrence && b.Next() {
	}
	return b.IsOn(occurrence)
}

// SkipUntil moves forward until the cursor is on occurrence. It reports false
// if the content was exhausted without finding it.
func (b *Buffer) SkipUntil(occurrence rune) bool {
	for b.IsOnContent() && b.current() != occurrence && b.Next() {
	}
	return b.IsOnContent()
}

// SkipBlanks moves past spaces, line feeds, carriage returns and tabs. It
// reports whether content remains to be read.
func (b *Buffer) SkipBlanks() bool {
	for b.IsOnBlank() && b.Next() {
	}
	return b.IsOnContent()
}
