// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package loader decodes LC-3 ".obj" memory images: a big-endian origin
// word followed by a big-endian stream of program words. The core itself
// only ever accepts already-decoded words (spec.md §6); this is the
// external object-file parser the core leaves to its host, built the way
// the teacher's cartridge/ines pair decodes an iNES ROM image.
package loader

import (
	"encoding/binary"
	"io"

	"github.com/btcsuite/goleveldb/leveldb/errors"
)

var (
	// ErrTruncated reports an image that ends mid-word.
	ErrTruncated = errors.New("loader: truncated object file")
	// ErrEmpty reports an image with an origin but no program words.
	ErrEmpty = errors.New("loader: object file has no program words")
)

// Image is a decoded memory image: the address program words should be
// loaded at, and the words themselves.
type Image struct {
	Origin uint16
	Words  []uint16
}

// Load reads a big-endian LC-3 object file from r: a two-byte origin
// followed by two-byte words until EOF.
func Load(r io.Reader) (*Image, error) {
	var origin uint16
	if err := binary.Read(r, binary.BigEndian, &origin); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrTruncated
		}
		return nil, err
	}

	var words []uint16
	for {
		var w uint16
		if err := binary.Read(r, binary.BigEndian, &w); err != nil {
			if err == io.EOF {
				break
			}
			if err == io.ErrUnexpectedEOF {
				return nil, ErrTruncated
			}
			return nil, err
		}
		words = append(words, w)
	}

	if len(words) == 0 {
		return nil, ErrEmpty
	}

	return &Image{Origin: origin, Words: words}, nil
}
