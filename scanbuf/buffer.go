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

// Package scanbuf provides Buffer, a rune-level scanning primitive used to
// hand-build lexers for structured text formats.
//
// A Buffer holds the whole content to scan and a cursor made of an offset, a
// 1-based line and a 0-based column. The cursor only moves one rune at a time,
// through Next and Previous, and every higher-level operation is built on top
// of those two moves:
//   - Position queries: IsOnContent, Current, CurrentOrEndOfBuffer, IsOn, On, IsOnBlank.
//   - Delimited reads: ReadUntilBefore, ReadUntil, ReadUntilBeforeBlankOr,
//     ReadUntilBlankOr, ReadUntilBlankOrEnd.
//   - Skips: SkipBlanksUntilFind, SkipUntil, SkipBlanks.
//
// Only Current can fail, with ErrInvalidCursorPosition, when the cursor is off
// the content. Every other operation reports boundaries through its result, so
// callers check IsOnContent or the result of a move before reading the current
// rune.
//
// A Buffer is owned by a single scan and is not safe for concurrent use.
package scanbuf

// EndOfBuffer is the text returned by CurrentOrEndOfBuffer when the cursor is
// off the content.
const EndOfBuffer = "END OF BUFFER"

// Buffer is a read-only sequence of runes with a movable cursor.
// The zero value is an empty buffer whose cursor is off content; use New or
// FromRunes to get a cursor positioned at line 1.
type Buffer struct {
	content []rune

	offset int
	line   int
	column int
	// lineEnds holds, for every line feed crossed forward, the column the
	// cursor had just before crossing it. Previous pops it back.
	lineEnds []int
}

// New creates a Buffer over the runes of s.
func New(s string) *Buffer {
	return FromRunes([]rune(s))
}

// FromRunes creates a Buffer over content. The slice is borrowed and must not
// be modified while the Buffer is in use.
func FromRunes(content []rune) *Buffer {
	return &Buffer{content: content, line: 1}
}

// Len returns the number of runes in the content.
func (b *Buffer) Len() int { return len(b.content) }

// String returns the whole content, regardless of the cursor.
func (b *Buffer) String() string { return string(b.content) }

// IsOnContent reports whether the cursor points at a rune of the content.
func (b *Buffer) IsOnContent() bool {
	return b.offset >= 0 && b.offset < len(b.content)
}

// Current returns the rune under the cursor. It returns a *CursorError
// wrapping ErrInvalidCursorPosition when the cursor is off the content.
func (b *Buffer) Current() (rune, error) {
	if !b.IsOnContent() {
		return 0, newCursorError(b.offset)
	}
	return b.content[b.offset], nil
}

// CurrentOrEndOfBuffer returns the rune under the cursor as a string, or
// EndOfBuffer when the cursor is off the content.
func (b *Buffer) CurrentOrEndOfBuffer() string {
	if !b.IsOnContent() {
		return EndOfBuffer
	}
	return string(b.current())
}

// IsOn reports whether the cursor is on content and the current rune is r.
func (b *Buffer) IsOn(r rune) bool {
	return b.IsOnContent() && b.current() == r
}

// On reports whether the cursor is on content and the current rune is one of set.
func (b *Buffer) On(set ...rune) bool {
	return b.IsOnContent() && isOneOf(b.current(), set)
}

// IsOnBlank reports whether the cursor is on content and the current rune is a
// space, line feed, carriage return or tab.
func (b *Buffer) IsOnBlank() bool {
	return b.IsOnContent() && isBlank(b.current())
}

// current returns the rune under the cursor without bounds checking.
func (b *Buffer) current() rune {
	return b.content[b.offset]
}
