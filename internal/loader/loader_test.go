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

package loader

import (
	"bytes"
	"errors"
	"testing"
)

func TestLoadSimpleImage(t *testing.T) {
	buf := bytes.NewReader([]byte{0x30, 0x00, 0x12, 0x34, 0x56, 0x78})
	img, err := Load(buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Origin != 0x3000 {
		t.Fatalf("Origin = %04X, want 3000", img.Origin)
	}
	want := []uint16{0x1234, 0x5678}
	if len(img.Words) != len(want) {
		t.Fatalf("len(Words) = %d, want %d", len(img.Words), len(want))
	}
	for i, w := range want {
		if img.Words[i] != w {
			t.Fatalf("Words[%d] = %04X, want %04X", i, img.Words[i], w)
		}
	}
}

func TestLoadEmptyImageIsRejected(t *testing.T) {
	buf := bytes.NewReader([]byte{0x30, 0x00})
	_, err := Load(buf)
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
}

func TestLoadTruncatedOriginIsRejected(t *testing.T) {
	buf := bytes.NewReader([]byte{0x30})
	_, err := Load(buf)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
}

func TestLoadTruncatedWordIsRejected(t *testing.T) {
	buf := bytes.NewReader([]byte{0x30, 0x00, 0x12, 0x34, 0x56})
	_, err := Load(buf)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
}
