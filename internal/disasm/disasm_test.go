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

package disasm

import "testing"

type fakeSource map[uint16]uint16

func (f fakeSource) ReadMemory(addr uint16) uint16 { return f[addr] }

func TestLineAddImmediate(t *testing.T) {
	src := fakeSource{0x3000: 0x1063}
	got := Line(src, 0x3000)
	want := "$3000: ADD R0, R1, #3"
	if got != want {
		t.Fatalf("Line = %q, want %q", got, want)
	}
}

func TestLineBrWithCondition(t *testing.T) {
	src := fakeSource{0x3000: 0x0402}
	got := Line(src, 0x3000)
	want := "$3000: BRz #2"
	if got != want {
		t.Fatalf("Line = %q, want %q", got, want)
	}
}

func TestLineTrap(t *testing.T) {
	src := fakeSource{0x3000: 0xF025}
	got := Line(src, 0x3000)
	want := "$3000: TRAP x25"
	if got != want {
		t.Fatalf("Line = %q, want %q", got, want)
	}
}

func TestRangeCoversEveryWord(t *testing.T) {
	src := fakeSource{0x3000: 0x1063, 0x3001: 0xF025}
	lines := Range(src, 0x3000, 0x3002)
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
}
