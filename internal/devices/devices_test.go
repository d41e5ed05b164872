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

package devices

import "testing"

func TestHandlesOnlyItsFourRegisters(t *testing.T) {
	c := NewConsole()
	for _, addr := range []uint16{KBSR, KBDR, DSR, DDR} {
		if !c.Handles(addr) {
			t.Fatalf("Handles(%04X) = false, want true", addr)
		}
	}
	if c.Handles(0x3000) {
		t.Fatalf("Handles(3000) = true, want false")
	}
}

func TestDisplayAlwaysReadyInitially(t *testing.T) {
	c := NewConsole()
	if c.Read(DSR)&readyBit == 0 {
		t.Fatalf("DSR should start with the ready bit set")
	}
}

func TestWritingDDRAccumulatesOutput(t *testing.T) {
	c := NewConsole()
	c.Write(DDR, 'h')
	c.Write(DDR, 'i')
	if string(c.Output) != "hi" {
		t.Fatalf("Output = %q, want %q", c.Output, "hi")
	}
}

func TestPushKeyRaisesReadyAndClearsOnRead(t *testing.T) {
	c := NewConsole()
	if c.Read(KBSR)&readyBit != 0 {
		t.Fatalf("KBSR should start idle")
	}
	c.PushKey('A')
	if c.Read(KBSR)&readyBit == 0 {
		t.Fatalf("KBSR should be ready after PushKey")
	}
	if got := c.Read(KBDR); got != 'A' {
		t.Fatalf("KBDR = %q, want 'A'", got)
	}
	if c.Read(KBSR)&readyBit != 0 {
		t.Fatalf("reading KBDR should clear the ready bit")
	}
}
