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

// sequencerInputs bundles every condition input the microsequencer reads
// besides the decoded signals themselves: R, BEN, PSR[15], INT, ACV and
// IR[11]. They are latched or combinational outputs already available by
// the time the sequencer runs.
type sequencerInputs struct {
	r   bool
	ben bool
	psr uint16
	int bool
	acv bool
	ir  uint16
}

// nextState is the microsequencer: a combinational function of the current
// micro-instruction, IRD, and the condition inputs. In IRD mode it
// dispatches on the opcode field; otherwise it ORs at most one COND's bit
// into J.
func nextState(sig Signals, in sequencerInputs) uint8 {
	if sig.IRD {
		return uint8((in.ir & 0xf000) >> 12)
	}

	j := sig.J
	switch sig.Cond {
	case CondAddressingMode:
		if checkBit(in.ir, 11) {
			j += 1
		}
	case CondMemoryReady:
		if in.r {
			j += 2
		}
	case CondBranch:
		if in.ben {
			j += 4
		}
	case CondPrivilegeMode:
		if checkBit(in.psr, 15) {
			j += 8
		}
	case CondInterruptTest:
		if in.int {
			j += 16
		}
	case CondACVTest:
		if in.acv {
			j += 32
		}
	}
	return j
}
