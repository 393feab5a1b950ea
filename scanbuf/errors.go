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

import (
	"errors"
	"fmt"
)

// ErrInvalidCursorPosition is returned when the rune under the cursor is
// requested while the cursor is off the content.
var ErrInvalidCursorPosition = errors.New("the cursor is in an invalid position")

// CursorError is the error type returned by Current. It records the offending
// offset and wraps ErrInvalidCursorPosition.
type CursorError struct {
	Offset int
	Err    error
}

// Error returns the string representation of the cursor error.
func (e *CursorError) Error() string {
	return fmt.Sprintf("scanbuf: %s (offset %d)", e.Err, e.Offset)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *CursorError) Unwrap() error {
	return e.Err
}

func newCursorError(offset int) *CursorError {
	return &CursorError{Offset: offset, Err: ErrInvalidCursorPosition}
}
