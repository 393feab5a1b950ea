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

import "fmt"

// Cursor is a snapshot of a Buffer's scanning position.
type Cursor struct {
	// Offset is the rune index into the content. It may lie outside the
	// content when the cursor has been moved past either end.
	Offset int
	// Line is the 1-based line number.
	Line int
	// Column is the 0-based column within the line. A line feed is counted
	// as column 0 of the line it opens.
	Column int
}

// String returns the cursor as "[offset=N;line=L;column=C]".
func (c Cursor) String() string {
	return fmt.Sprintf("[offset=%d;line=%d;column=%d]", c.Offset, c.Line, c.Column)
}

// Offset returns the rune index of the cursor.
func (b *Buffer) Offset() int { return b.offset }

// Line returns the 1-based line of the cursor.
func (b *Buffer) Line() int { return b.line }

// Column returns the 0-based column of the cursor.
func (b *Buffer) Column() int { return b.column }

// Cursor returns a snapshot of the cursor.
func (b *Buffer) Cursor() Cursor {
	return Cursor{Offset: b.offset, Line: b.line, Column: b.column}
}

// Next moves the cursor one rune forward. It returns true if the cursor is
// still on content. When it is not, the cursor is left one step further
// anyway, and line and column keep the values of the last rune visited.
func (b *Buffer) Next() bool {
	from := b.offset
	b.offset++
	if !b.IsOnContent() {
		return false
	}
	// Moves that start off content leave line and column untouched.
	if from >= 0 {
		b.advance(b.content[b.offset])
	}
	return true
}

// Previous moves the cursor one rune backward. It returns true if the cursor
// is still on content, and otherwise leaves it one step further anyway.
// Line and column are rolled back to the values they had when the cursor was
// last at the new offset.
func (b *Buffer) Previous() bool {
	from := b.offset
	b.offset--
	if !b.IsOnContent() {
		return false
	}
	if from < len(b.content) {
		b.retreat(b.content[from])
	}
	return true
}

// advance accounts for the cursor arriving on r.
func (b *Buffer) advance(r rune) {
	if r == lineFeed {
		b.lineEnds = append(b.lineEnds, b.column)
		b.line++
		b.column = 0
		return
	}
	b.column++
}

// retreat accounts for the cursor leaving r backward. It is the inverse of
// advance.
func (b *Buffer) retreat(r rune) {
	if r != lineFeed {
		b.column--
		return
	}
	b.line--
	if n := len(b.lineEnds); n > 0 {
		b.column = b.lineEnds[n-1]
		b.lineEnds = b.lineEnds[:n-1]
	}
}
