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

// DefaultMemoryWords is the size of the flat word memory this
// implementation addresses: 16384 words, 0x0000..0x3FFF.
const DefaultMemoryWords = 0x4000

// DefaultClockLatency is the number of cycles a memory access takes before
// R is asserted.
const DefaultClockLatency = 3

// Memory is the synchronous-ready memory subsystem. It owns the word
// array, a wait-state counter, and the read/write discipline the control
// unit drives through MAR/MDR and MIO_EN/RW. It never inspects anything
// but the MAR/MDR/MIO_EN/RW lines handed to it each cycle.
type Memory struct {
	words        []uint16
	clockLatency int
	clockCount   int

	// R is the memory-ready signal, re-derived every cycle.
	R bool
	// MemoryOut is the value published by a completed read, captured by
	// the control unit into MDR via LD_MDR.
	MemoryOut uint16
}

// NewMemory creates and resets a Memory of the given size and latency. A
// size or latency of zero falls back to the package defaults, mirroring
// the teacher's construct-then-reset constructor pattern.
func NewMemory(words, clockLatency int) *Memory {
	if words <= 0 {
		words = DefaultMemoryWords
	}
	if clockLatency <= 0 {
		clockLatency = DefaultClockLatency
	}
	m := &Memory{
		words:        make([]uint16, words),
		clockLatency: clockLatency,
	}
	m.Reset()
	return m
}

// Reset clears the word array and wait-state counter.
func (m *Memory) Reset() {
	for i := range m.words {
		m.words[i] = 0
	}
	m.clockCount = 0
	m.R = false
	m.MemoryOut = 0
}

// Len reports the number of addressable words.
func (m *Memory) Len() int {
	return len(m.words)
}

// Read bypasses the memory-access protocol for host setup: loaders,
// inspectors, and tests read and write memory directly without paying for
// the multi-cycle latency.
func (m *Memory) Read(addr uint16) uint16 {
	return m.words[int(addr)%len(m.words)]
}

// Write bypasses the memory-access protocol; see Read.
func (m *Memory) Write(addr uint16, value uint16) {
	m.words[int(addr)%len(m.words)] = value & 0xffff
}

// Step advances the memory subsystem by one cycle, given this cycle's MAR,
// MDR and the MIO_EN/RW lines. It is the only entry point the control unit
// uses during normal execution; Read/Write above are for the host.
func (m *Memory) Step(mar, mdr uint16, mioEn bool, rw MemRW) {
	m.R = false
	if !mioEn {
		return
	}

	m.clockCount++
	if m.clockCount < m.clockLatency {
		return
	}
	m.clockCount = 0
	m.R = true

	addr := int(mar) % len(m.words)
	switch rw {
	case MemWrite:
		m.words[addr] = mdr
	case MemRead:
		m.MemoryOut = m.words[addr]
	}
}
