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

// ResetPC is the program counter's value out of reset.
const ResetPC uint16 = 0x3000

// ResetPSR is the processor status register's value out of reset: user
// mode, all condition codes clear.
const ResetPSR uint16 = 0x8000

// ResetState is the microstate the machine starts in: instruction fetch.
const ResetState uint8 = 18

// ControlUnit holds every architectural register and microarchitectural
// latch of the datapath, plus the microsequencer's control store; the
// combinational-logic outputs are recomputed each cycle by evaluate. It emulates the ~85% of the core that
// is not the memory subsystem.
type ControlUnit struct {
	// Architectural state.
	Regs [8]uint16
	PC   uint16
	IR   uint16
	PSR  uint16

	// Condition codes, latched by LD_CC and mirrored in PSR[2:0].
	N, Z, P bool

	// Microarchitectural latches.
	MAR   uint16
	MDR   uint16
	BEN   bool
	ACV   bool
	state uint8

	// INT is the host-driven interrupt line, sampled by the
	// INTERRUPT_TEST condition during fetch (state 18). The host must
	// drop it once state 18 has consumed it (branch to 49) to avoid
	// re-triggering; states >= 49 are reserved and unimplemented here.
	INT bool

	microcode [numStates]Signals

	// CycleCount is a free-running diagnostic counter with no
	// architectural effect, mirroring the Python original's total_clock.
	CycleCount uint64
}

// NewControlUnit creates a control unit with the microcode table installed
// and every register at its reset value.
func NewControlUnit() *ControlUnit {
	cu := &ControlUnit{microcode: newMicrocode()}
	cu.Reset()
	return cu
}

// Reset restores the control unit's reset state: PC=0x3000, state=18,
// PSR=0x8000 (user mode), all registers, flags and latches zero.
func (cu *ControlUnit) Reset() {
	cu.Regs = [8]uint16{}
	cu.PC = ResetPC
	cu.IR = 0
	cu.PSR = ResetPSR
	cu.N, cu.Z, cu.P = false, false, false
	cu.MAR = 0
	cu.MDR = 0
	cu.BEN = false
	cu.ACV = false
	cu.state = ResetState
	cu.INT = false
	cu.CycleCount = 0
}

// State returns the current microstate index.
func (cu *ControlUnit) State() uint8 {
	return cu.state
}

// setCC derives N/Z/P from a bus value, mutually exclusive by construction:
// zero takes precedence, then the sign bit.
func (cu *ControlUnit) setCC(bus uint16) {
	switch {
	case bus == 0:
		cu.Z, cu.N, cu.P = true, false, false
	case bus >= 0x8000:
		cu.N, cu.Z, cu.P = true, false, false
	default:
		cu.P, cu.N, cu.Z = true, false, false
	}
	cu.PSR = (cu.PSR &^ 0x0007)
	if cu.N {
		cu.PSR |= 0x0004
	}
	if cu.Z {
		cu.PSR |= 0x0002
	}
	if cu.P {
		cu.PSR |= 0x0001
	}
}
