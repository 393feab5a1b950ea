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

import "strings"

// ReadUntilBefore reads from the current rune up to, and excluding, the next
// occurrence of occurrence, and leaves the cursor on it. The current rune is
// always consumed first, even if it is itself an occurrence. If the content
// ends first, the rest of the content is returned and the cursor is left past
// the end.
//
// When escaped is true, an occurrence directly preceded by a backslash is
// read as ordinary content and the scan goes on.
//
// An empty string is returned, and the cursor is not moved, when the cursor is
// off content.
func (b *Buffer) ReadUntilBefore(occurrence rune, escaped bool) string {
	var sb strings.Builder
	b.readDelimited(&sb, occurrence, escaped)
	return sb.String()
}

// ReadUntil behaves like ReadUntilBefore but also includes the terminating
// occurrence in the result. Nothing extra is added if the content ends first.
func (b *Buffer) ReadUntil(occurrence rune, escaped bool) string {
	var sb strings.Builder
	if b.readDelimited(&sb, occurrence, escaped) && b.IsOnContent() {
		sb.WriteRune(b.current())
	}
	return sb.String()
}

// ReadUntilBeforeBlankOr reads from the current rune until the cursor reaches
// a blank, a rune of set, or the end of the content. The stopping rune is not
// included and the cursor is left on it.
func (b *Buffer) ReadUntilBeforeBlankOr(set ...rune) string {
	if !b.IsOnContent() {
		return ""
	}
	var sb strings.Builder
	sb.WriteRune(b.current())
	for b.Next() && !b.IsOnBlank() && !b.On(set...) {
		sb.WriteRune(b.current())
	}
	return sb.String()
}

// ReadUntilBlankOr reads from the current rune until it has read a blank or a
// rune of set, or the content ends. Unlike ReadUntilBeforeBlankOr the stopping
// rune is included, unless it is the starting rune, which is then returned
// alone.
func (b *Buffer) ReadUntilBlankOr(set ...rune) string {
	if !b.IsOnContent() {
		return ""
	}
	var sb strings.Builder
	sb.WriteRune(b.current())
	for !b.IsOnBlank() && !b.On(set...) && b.Next() {
		sb.WriteRune(b.current())
	}
	return sb.String()
}

// ReadUntilBlankOrEnd reads from the current rune until it has read a blank
// or the content ends. The blank, when found, is included.
func (b *Buffer) ReadUntilBlankOrEnd() string {
	if !b.IsOnContent() {
		return ""
	}
	var sb strings.Builder
	sb.WriteRune(b.current())
	for !b.IsOnBlank() && b.Next() {
		sb.WriteRune(b.current())
	}
	return sb.String()
}

// readDelimited writes the runes from the cursor up to the next terminating
// occurrence into sb. It reports false, writing nothing, when the cursor is
// off content.
func (b *Buffer) readDelimited(sb *strings.Builder, occurrence rune, escaped bool) bool {
	if !b.IsOnContent() {
		return false
	}
	sb.WriteRune(b.current())
	for b.Next() {
		if b.current() == occurrence && (!escaped || !b.isEscaped()) {
			break
		}
		sb.WriteRune(b.current())
	}
	return true
}

// isEscaped reports whether the rune under the cursor directly follows a
// backslash. It looks behind by stepping back one rune and then returns to
// where it was.
func (b *Buffer) isEscaped() bool {
	escaped := b.Previous() && b.current() == escapeChar
	b.Next()
	return escaped
}
