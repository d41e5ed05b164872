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

// PCMux selects the source driven into the PC register.
type PCMux uint8

const (
	PCPlus1 PCMux = iota
	PCBus
	PCAdder
)

// DRMux selects the destination-register index.
type DRMux uint8

const (
	DRIR119 DRMux = iota
	DRSP          // R6
	DRR7
)

// SR1Mux selects the first-source-register index.
type SR1Mux uint8

const (
	SR1IR119 SR1Mux = iota
	SR1IR86
	SR1SP // R6
)

// Addr1Mux selects the first operand of the address adder.
type Addr1Mux uint8

const (
	Addr1PC Addr1Mux = iota
	Addr1BaseR
)

// Addr2Mux selects the second operand of the address adder.
type Addr2Mux uint8

const (
	Addr2Zero Addr2Mux = iota
	Addr2Offset6
	Addr2PCOffset9
	Addr2PCOffset11
)

// MARMux selects the source driven into MAR through the address path.
type MARMux uint8

const (
	MARIR70 MARMux = iota
	MARAdder
)

// ALUK selects the ALU operation.
type ALUK uint8

const (
	ALUAdd ALUK = iota
	ALUAnd
	ALUNot
	ALUPassA
)

// MemRW selects the direction of a memory access.
type MemRW uint8

const (
	MemRead MemRW = iota
	MemWrite
)

// Cond selects which condition, if any, the microsequencer ORs into J.
type Cond uint8

const (
	CondUnconditional Cond = iota
	CondMemoryReady
	CondBranch
	CondAddressingMode
	CondPrivilegeMode
	CondInterruptTest
	CondACVTest
)

// Signals holds every control line the control store can assert for a
// microstate. A Signals value is looked up once per cycle from the
// microcode table and never mutated in place; Step derives a fresh bus
// value and next state from it every cycle.
type Signals struct {
	// Load enables.
	LDMAR       bool
	LDMDR       bool
	LDIR        bool
	LDBEN       bool
	LDREG       bool
	LDCC        bool
	LDPC        bool
	LDACV       bool
	LDPriv      bool
	LDPriority  bool
	LDSavedSSP  bool
	LDSavedUSP  bool
	LDVector    bool

	// Gate enables. Only GatePC, GateMDR, GateALU and GateMARMUX are
	// driven by any documented microstate; the rest are reserved for the
	// interrupt/exception extension the teacher's table scaffolds but
	// this core does not implement.
	GatePC       bool
	GateMDR      bool
	GateALU      bool
	GateMARMUX   bool
	GateVector   bool
	GatePCMinus1 bool
	GatePSR      bool
	GateSP       bool

	PCMux    PCMux
	DRMux    DRMux
	SR1Mux   SR1Mux
	Addr1Mux Addr1Mux
	Addr2Mux Addr2Mux
	MARMux   MARMux
	ALUK     ALUK

	MIOEn bool
	RW    MemRW

	// Next-state fields.
	J    uint8
	Cond Cond
	IRD  bool
}
