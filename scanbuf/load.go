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
	"bytes"
	"fmt"
	"io"
	"mime"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// byteOrderMark is the UTF-8 encoding of U+FEFF.
var byteOrderMark = []byte("\uFEFF")

// NewNormalized creates a Buffer over the Unicode Normalization Form C (NFC)
// of s, so that canonically equivalent inputs are scanned rune for rune the
// same way.
func NewNormalized(s string) *Buffer {
	return New(norm.NFC.String(s))
}

// Load reads r to the end and creates a Buffer over its content decoded to
// Unicode.
//
// contentType is either a MIME type with a charset parameter, such as
// "text/plain; charset=iso-8859-1", or a bare charset label such as "latin1".
// When it is empty or names no known charset, the encoding is sniffed from the
// content: a byte order mark wins, valid UTF-8 is kept as is, a <meta> charset
// declaration is honored for "text/html" only, and anything else is read as
// windows-1252. A leading byte order mark is not part of the resulting content.
func Load(r io.Reader, contentType string) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("scanbuf: reading content: %w", err)
	}

	decoded, _, err := transform.Bytes(lookupEncoding(data, contentType).NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("scanbuf: decoding content: %w", err)
	}

	return New(string(bytes.TrimPrefix(decoded, byteOrderMark))), nil
}

// lookupEncoding resolves the encoding of data. A byte order mark, a bare
// charset label or the charset parameter of contentType is authoritative.
// Otherwise data that is valid UTF-8 as a whole is kept as is. Only then is
// the encoding guessed: from a <meta> declaration for text/html, and as
// windows-1252 for anything else.
func lookupEncoding(data []byte, contentType string) encoding.Encoding {
	if contentType != "" && !strings.Contains(contentType, "/") {
		if enc, _ := charset.Lookup(contentType); enc != nil {
			return enc
		}
		contentType = ""
	}

	enc, _, certain := charset.DetermineEncoding(data, contentType)
	if certain {
		return enc
	}
	if utf8.Valid(data) {
		return encoding.Nop
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil && mediaType == "text/html" {
		return enc
	}
	return charmap.Windows1252
}
