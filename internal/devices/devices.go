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

// Package devices implements the memory-mapped keyboard and display
// registers spec.md §1 places outside the emulator core: the core only
// exposes the lc3.MMIO hook, this package is the terminal I/O that plugs
// into it.
package devices

const (
	// KBSR is the keyboard status register; bit 15 set means a key is
	// ready in KBDR.
	KBSR uint16 = 0xFE00
	// KBDR is the keyboard data register.
	KBDR uint16 = 0xFE02
	// DSR is the display status register; bit 15 set means DDR is ready
	// to accept another character.
	DSR uint16 = 0xFE04
	// DDR is the display data register.
	DDR uint16 = 0xFE06
)

// readyBit marks a status register ready for the next transaction.
const readyBit uint16 = 0x8000

// Console is a minimal KBSR/KBDR/DSR/DDR device block. Writing to DDR
// appends the low byte to Output; a host calls PushKey to simulate a
// keypress.
type Console struct {
	kbsr, kbdr uint16
	dsr, ddr   uint16

	// Output accumulates everything written to DDR, in program order.
	Output []byte
}

// NewConsole returns a Console with the display always ready and the
// keyboard idle.
func NewConsole() *Console {
	return &Console{dsr: readyBit}
}

// Handles reports whether addr falls in the console's four registers.
func (c *Console) Handles(addr uint16) bool {
	switch addr {
	case KBSR, KBDR, DSR, DDR:
		return true
	default:
		return false
	}
}

// Read implements lc3.MMIO.
func (c *Console) Read(addr uint16) uint16 {
	switch addr {
	case KBSR:
		return c.kbsr
	case KBDR:
		c.kbsr &^= readyBit
		return c.kbdr
	case DSR:
		return c.dsr
	case DDR:
		return c.ddr
	default:
		return 0
	}
}

// Write implements lc3.MMIO.
func (c *Console) Write(addr uint16, value uint16) {
	switch addr {
	case KBSR:
		c.kbsr = value & readyBit
	case KBDR:
		c.kbdr = value & 0x00ff
	case DSR:
		c.dsr = value & readyBit
	case DDR:
		c.ddr = value & 0x00ff
		c.Output = append(c.Output, byte(value))
	}
}

// PushKey makes a byte available for the running program to read from
// KBDR and raises the keyboard-ready bit.
func (c *Console) PushKey(b byte) {
	c.kbdr = uint16(b)
	c.kbsr |= readyBit
}
