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

// numStates is the address space of the control store. Not every state in
// [0, numStates) is populated; unpopulated entries fall through to fetch.
const numStates = 64

// newMicrocode builds the control store: one Signals value per microstate,
// indexed by state number. This is the "control store as data" the
// microsequencer dispatches into — adding a state is a table edit, not a
// code change.
func newMicrocode() [numStates]Signals {
	var t [numStates]Signals
	for i := range t {
		// Undefined states are not reachable by the documented
		// opcode/J chains below; default them to a plain fetch so a
		// wayward next-state value still makes forward progress
		// instead of replaying state 0's BR signals.
		t[i] = Signals{J: 18}
	}

	// 0: BR — branch-enable gates PC <- PC + off9 via state 22.
	t[0] = Signals{Cond: CondBranch, J: 18}

	// 1: ADD DR, SR1, (SR2 / SEXT[imm5])
	t[1] = Signals{
		SR1Mux: SR1IR86, ALUK: ALUAdd, GateALU: true,
		LDREG: true, LDCC: true, J: 18,
	}

	// 2: LD DR, PC + off9 -- MAR <- PC + off9, set ACV
	t[2] = Signals{
		LDMAR: true, LDACV: true,
		Addr1Mux: Addr1PC, Addr2Mux: Addr2PCOffset9, MARMux: MARAdder,
		SR1Mux: SR1IR119, GateMARMUX: true, J: 35,
	}

	// 3: ST SR, PC + off9 -- MAR <- PC + off9, set ACV
	t[3] = Signals{
		LDMAR: true, LDACV: true,
		Addr1Mux: Addr1PC, Addr2Mux: Addr2PCOffset9, MARMux: MARAdder,
		SR1Mux: SR1IR119, GateMARMUX: true, J: 23,
	}

	// 4: JSR/JSRR dispatch on IR[11].
	t[4] = Signals{Cond: CondAddressingMode, J: 20}

	// 5: AND DR, SR1, (SR2 / SEXT[imm5])
	t[5] = Signals{
		SR1Mux: SR1IR86, ALUK: ALUAnd, GateALU: true,
		LDREG: true, LDCC: true, J: 18,
	}

	// 6: LDR DR, BaseR + off6 -- MAR <- BaseR + off6, set ACV
	t[6] = Signals{
		LDMAR: true, LDACV: true,
		Addr1Mux: Addr1BaseR, Addr2Mux: Addr2Offset6, MARMux: MARAdder,
		SR1Mux: SR1IR86, GateMARMUX: true, J: 35,
	}

	// 7: STR SR, BaseR + off6 -- MAR <- BaseR + off6, set ACV
	t[7] = Signals{
		LDMAR: true, LDACV: true,
		Addr1Mux: Addr1BaseR, Addr2Mux: Addr2Offset6, MARMux: MARAdder,
		SR1Mux: SR1IR86, GateMARMUX: true, J: 23,
	}

	// 8: RTI -- not implemented, falls through to fetch.
	t[8] = Signals{J: 18}

	// 9: NOT DR, SR
	t[9] = Signals{
		SR1Mux: SR1IR86, ALUK: ALUNot, GateALU: true,
		LDREG: true, LDCC: true, J: 18,
	}

	// 10: LDI DR, PC + off9 -- MAR <- PC + off9, set ACV
	t[10] = Signals{
		LDMAR: true, LDACV: true,
		Addr1Mux: Addr1PC, Addr2Mux: Addr2PCOffset9, MARMux: MARAdder,
		SR1Mux: SR1IR119, GateMARMUX: true, J: 17,
	}

	// 11: STI SR, PC + off9 -- MAR <- PC + off9, set ACV
	t[11] = Signals{
		LDMAR: true, LDACV: true,
		Addr1Mux: Addr1PC, Addr2Mux: Addr2PCOffset9, MARMux: MARAdder,
		SR1Mux: SR1IR119, GateMARMUX: true, J: 19,
	}

	// 12: JMP BaseR -- PC <- BaseR
	t[12] = Signals{
		Addr1Mux: Addr1BaseR, Addr2Mux: Addr2Zero, SR1Mux: SR1IR86,
		PCMux: PCAdder, LDPC: true, J: 18,
	}

	// 14: LEA DR, PC + off9 -- DR <- PC + off9, no CC update.
	t[14] = Signals{
		Addr1Mux: Addr1PC, Addr2Mux: Addr2PCOffset9, MARMux: MARAdder,
		DRMux: DRIR119, GateMARMUX: true, LDREG: true, J: 18,
	}

	// 15: TRAP -- not implemented, falls through to fetch.
	t[15] = Signals{J: 18}

	// 16: M <- MDR, wait R.
	t[16] = Signals{MIOEn: true, RW: MemWrite, Cond: CondMemoryReady, J: 16}

	// 17: ACV check for LDI's indirect read.
	t[17] = Signals{Cond: CondACVTest, J: 24}

	// 18: fetch -- MAR <- PC, PC <- PC+1, set ACV, test INT.
	t[18] = Signals{
		LDMAR: true, LDPC: true, LDACV: true,
		PCMux: PCPlus1, GatePC: true, Cond: CondInterruptTest, J: 33,
	}

	// 19: ACV check for STI's indirect write.
	t[19] = Signals{Cond: CondACVTest, J: 29}

	// 20: JSRR -- R7 <- PC, PC <- BaseR.
	t[20] = Signals{
		Addr1Mux: Addr1BaseR, Addr2Mux: Addr2Zero, SR1Mux: SR1IR86,
		PCMux: PCAdder, LDPC: true, GatePC: true,
		LDREG: true, DRMux: DRR7, J: 18,
	}

	// 21: JSR -- R7 <- PC, PC <- PC + off11.
	t[21] = Signals{
		Addr1Mux: Addr1PC, Addr2Mux: Addr2PCOffset11,
		PCMux: PCAdder, LDPC: true, GatePC: true,
		LDREG: true, DRMux: DRR7, J: 18,
	}

	// 22: BR taken -- PC <- PC + off9.
	t[22] = Signals{
		Addr1Mux: Addr1PC, Addr2Mux: Addr2PCOffset9, PCMux: PCAdder,
		LDPC: true, J: 18,
	}

	// 23: MDR <- SR (via ALU PASSA), ACV check for the pending write.
	t[23] = Signals{ALUK: ALUPassA, GateALU: true, LDMDR: true, Cond: CondACVTest, J: 16}

	// 24/25: MDR <- M, wait R (indirect/read second step).
	t[24] = Signals{MIOEn: true, RW: MemRead, LDMDR: true, Cond: CondMemoryReady, J: 24}
	t[25] = Signals{MIOEn: true, RW: MemRead, LDMDR: true, Cond: CondMemoryReady, J: 25}

	// 26: MAR <- MDR, set ACV (LDI's second indirection).
	t[26] = Signals{LDMAR: true, GateMDR: true, LDACV: true, J: 35}

	// 27: DR <- MDR, set CC.
	t[27] = Signals{LDREG: true, DRMux: DRIR119, GateMDR: true, LDCC: true, J: 18}

	// 31: MAR <- MDR, set ACV (STI's indirection: the pointer just read
	// from memory becomes the address the store actually targets).
	t[31] = Signals{LDMAR: true, GateMDR: true, LDACV: true, J: 23}

	// 28/29: MDR <- M, wait R (fetch / first read step).
	t[28] = Signals{MIOEn: true, RW: MemRead, LDMDR: true, Cond: CondMemoryReady, J: 28}
	t[29] = Signals{MIOEn: true, RW: MemRead, LDMDR: true, Cond: CondMemoryReady, J: 29}

	// 30: IR <- MDR.
	t[30] = Signals{LDIR: true, GateMDR: true, J: 32}

	// 32: decode -- LD_BEN, IRD dispatch on opcode.
	t[32] = Signals{LDBEN: true, IRD: true, J: 0}

	// 33: ACV check after fetch's INTERRUPT_TEST branch.
	t[33] = Signals{Cond: CondACVTest, J: 28}

	// 35: ACV check before the read that follows an effective-address calc.
	t[35] = Signals{Cond: CondACVTest, J: 25}

	return t
}

// definedStates lists the microstates newMicrocode populates with real
// control signals, for the host-contract diagnostic in Step: landing on any
// other state is recoverable (it falls through to fetch) but worth a log
// line, since it means a microcode edit left a J chain dangling.
var definedStates = map[uint8]bool{
	0: true, 1: true, 2: true, 3: true, 4: true, 5: true, 6: true, 7: true,
	8: true, 9: true, 10: true, 11: true, 12: true, 14: true, 15: true,
	16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	23: true, 24: true, 25: true, 26: true, 27: true, 28: true, 29: true,
	30: true, 31: true, 32: true, 33: true, 35: true,
}
