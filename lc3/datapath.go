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

// signExtend treats bit n-1 of value as the sign bit and replicates it into
// bits [15:n]; all other bits above n-1 are cleared first.
func signExtend(value uint16, n uint) uint16 {
	topMask := (uint16(0xffff) << n)
	bottomMask := ^topMask
	out := value & bottomMask
	if value&(1<<(n-1)) != 0 {
		out |= topMask
	}
	return out
}

// zeroExtend keeps bits [n-1:0] of value and clears everything above.
func zeroExtend(value uint16, n uint) uint16 {
	bottomMask := ^(uint16(0xffff) << n)
	return value & bottomMask
}

// checkBit reports whether bit i of value is set.
func checkBit(value uint16, i uint) bool {
	return value&(1<<i) != 0
}

// combinational is the per-cycle scratch space for every mux output, adder
// result, and ALU result. None of it depends on the bus; it is re-derived
// every cycle from latched state (regs, PC, IR) and this cycle's control
// signals, so gating can simply select one of these fields onto the bus.
type combinational struct {
	dr, sr1, sr2 uint16
	sr1Out       uint16
	sr2Out       uint16
	sr2MuxOut    uint16

	addr1MuxOut uint16
	addr2MuxOut uint16
	addrAddOut  uint16
	marMuxOut   uint16
	pcMuxOut    uint16
	aluOut      uint16
}

// evaluate computes every combinational output for the current cycle from
// the latched registers, IR, and the signals decoded this cycle.
func (cu *ControlUnit) evaluate(sig Signals) combinational {
	var c combinational

	switch sig.DRMux {
	case DRIR119:
		c.dr = (cu.IR & 0x0e00) >> 9
	case DRR7:
		c.dr = 7
	case DRSP:
		c.dr = 6
	}

	switch sig.SR1Mux {
	case SR1IR119:
		c.sr1 = (cu.IR & 0x0e00) >> 9
	case SR1IR86:
		c.sr1 = (cu.IR & 0x01c0) >> 6
	case SR1SP:
		c.sr1 = 6
	}

	c.sr2 = cu.IR & 0x0007
	c.sr1Out = cu.Regs[c.sr1]
	c.sr2Out = cu.Regs[c.sr2]

	switch sig.Addr2Mux {
	case Addr2Zero:
		c.addr2MuxOut = 0
	case Addr2Offset6:
		c.addr2MuxOut = signExtend(cu.IR, 6)
	case Addr2PCOffset9:
		c.addr2MuxOut = signExtend(cu.IR, 9)
	case Addr2PCOffset11:
		c.addr2MuxOut = signExtend(cu.IR, 11)
	}

	switch sig.Addr1Mux {
	case Addr1PC:
		c.addr1MuxOut = cu.PC
	case Addr1BaseR:
		c.addr1MuxOut = c.sr1Out
	}

	c.addrAddOut = c.addr1MuxOut + c.addr2MuxOut

	switch sig.MARMux {
	case MARIR70:
		c.marMuxOut = zeroExtend(cu.IR, 8)
	case MARAdder:
		c.marMuxOut = c.addrAddOut
	}

	switch sig.PCMux {
	case PCPlus1:
		c.pcMuxOut = cu.PC + 1
	case PCAdder:
		c.pcMuxOut = c.addrAddOut
		// PCBus is resolved after gating, once bus is known; see Step.
	}

	if checkBit(cu.IR, 5) {
		c.sr2MuxOut = signExtend(cu.IR, 5)
	} else {
		c.sr2MuxOut = c.sr2Out
	}

	switch sig.ALUK {
	case ALUAdd:
		c.aluOut = (c.sr1Out + c.sr2MuxOut) & 0xffff
	case ALUAnd:
		c.aluOut = c.sr1Out & c.sr2MuxOut
	case ALUNot:
		c.aluOut = (^c.sr1Out) & 0xffff
	case ALUPassA:
		c.aluOut = c.sr1Out
	}

	return c
}

// benOut computes the branch-enable combinational output from the latched
// condition codes and IR[11:9].
func (cu *ControlUnit) benOut() bool {
	return (cu.N && checkBit(cu.IR, 11)) ||
		(cu.Z && checkBit(cu.IR, 10)) ||
		(cu.P && checkBit(cu.IR, 9))
}

// acvOut computes the access-control-violation combinational output from
// the latched privilege bit and the bus value gated this cycle.
func acvOut(psr, bus uint16) bool {
	return checkBit(psr, 15) && (bus >= 0xfe00 || bus < 0x3000)
}
