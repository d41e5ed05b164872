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

package lc3

import "testing"

func TestMemory_LatencyIsThreeCycles(t *testing.T) {
	m := NewMemory(DefaultMemoryWords, 3)
	m.Write(0x3000, 0xbeef)

	m.Step(0x3000, 0, false, MemRead) // MIO_EN not yet asserted
	if m.R {
		t.Fatalf("R must stay clear while MIO_EN is false")
	}

	for i := 0; i < 2; i++ {
		m.Step(0x3000, 0, true, MemRead)
		if m.R {
			t.Fatalf("R asserted after only %d wait cycles, want 3", i+1)
		}
	}
	m.Step(0x3000, 0, true, MemRead)
	if !m.R {
		t.Fatalf("R not asserted after 3 wait cycles")
	}
	if m.MemoryOut != 0xbeef {
		t.Fatalf("MemoryOut = %04X, want BEEF", m.MemoryOut)
	}
}

func TestMemory_ClockCountResetsWhenRAsserted(t *testing.T) {
	m := NewMemory(DefaultMemoryWords, 3)
	for i := 0; i < 3; i++ {
		m.Step(0x3000, 0, true, MemRead)
	}
	if m.clockCount != 0 {
		t.Fatalf("clockCount = %d, want 0 once R has fired", m.clockCount)
	}
}

// TestLatchHold exercises spec.md's "no load-enable asserted => latch
// unchanged" invariant directly against MAR and MDR, not just the booleans.
func TestLatchHold(t *testing.T) {
	cu := NewControlUnit()
	cu.MAR = 0x1234
	cu.MDR = 0x5678

	sig := Signals{} // no load enables at all
	c := cu.evaluate(sig)
	_ = c

	if cu.MAR != 0x1234 {
		t.Fatalf("MAR changed with LD_MAR clear: got %04X", cu.MAR)
	}
	if cu.MDR != 0x5678 {
		t.Fatalf("MDR changed with LD_MDR clear: got %04X", cu.MDR)
	}
}
