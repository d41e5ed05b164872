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

// Package disasm renders LC-3 instruction words as text. It is an
// external collaborator, not part of the core: it reads memory through
// the host-facing accessors and never touches control-unit state.
package disasm

import (
	"fmt"
	"strings"
)

// Source is anything a disassembler can read words out of: lc3.Machine
// satisfies this with its ReadMemory method.
type Source interface {
	ReadMemory(addr uint16) uint16
}

var brCond = [8]string{"", "p", "z", "zp", "n", "np", "nz", "nzp"}

func signExtend(value uint16, n uint) int32 {
	top := uint16(0xffff) << n
	out := value &^ top
	if value&(1<<(n-1)) != 0 {
		out |= top
	}
	return int32(int16(out))
}

// Line disassembles the single instruction word at addr.
func Line(src Source, addr uint16) string {
	word := src.ReadMemory(addr)
	op := (word & 0xf000) >> 12
	dr := (word & 0x0e00) >> 9
	sr1 := (word & 0x01c0) >> 6
	sr2 := word & 0x0007

	sb := &strings.Builder{}
	fmt.Fprintf(sb, "$%04X: ", addr)

	switch op {
	case 0:
		fmt.Fprintf(sb, "BR%s #%d", brCond[dr], signExtend(word, 9))
	case 1:
		if word&0x0020 != 0 {
			fmt.Fprintf(sb, "ADD R%d, R%d, #%d", dr, sr1, signExtend(word, 5))
		} else {
			fmt.Fprintf(sb, "ADD R%d, R%d, R%d", dr, sr1, sr2)
		}
	case 2:
		fmt.Fprintf(sb, "LD R%d, #%d", dr, signExtend(word, 9))
	case 3:
		fmt.Fprintf(sb, "ST R%d, #%d", dr, signExtend(word, 9))
	case 4:
		if word&0x0800 != 0 {
			fmt.Fprintf(sb, "JSR #%d", signExtend(word, 11))
		} else {
			fmt.Fprintf(sb, "JSRR R%d", sr1)
		}
	case 5:
		if word&0x0020 != 0 {
			fmt.Fprintf(sb, "AND R%d, R%d, #%d", dr, sr1, signExtend(word, 5))
		} else {
			fmt.Fprintf(sb, "AND R%d, R%d, R%d", dr, sr1, sr2)
		}
	case 6:
		fmt.Fprintf(sb, "LDR R%d, R%d, #%d", dr, sr1, signExtend(word, 6))
	case 7:
		fmt.Fprintf(sb, "STR R%d, R%d, #%d", dr, sr1, signExtend(word, 6))
	case 8:
		sb.WriteString("RTI")
	case 9:
		fmt.Fprintf(sb, "NOT R%d, R%d", dr, sr1)
	case 10:
		fmt.Fprintf(sb, "LDI R%d, #%d", dr, signExtend(word, 9))
	case 11:
		fmt.Fprintf(sb, "STI R%d, #%d", dr, signExtend(word, 9))
	case 12:
		fmt.Fprintf(sb, "JMP R%d", sr1)
	case 13:
		sb.WriteString("???")
	case 14:
		fmt.Fprintf(sb, "LEA R%d, #%d", dr, signExtend(word, 9))
	case 15:
		fmt.Fprintf(sb, "TRAP x%02X", word&0x00ff)
	}

	return sb.String()
}

// Range disassembles every word in [start, end), one line per word — this
// core has no multi-word instructions, unlike the teacher's variable-length
// 6502 decode.
func Range(src Source, start, end uint16) []string {
	lines := make([]string, 0, int(end-start))
	for addr := start; addr != end; addr++ {
		lines = append(lines, Line(src, addr))
	}
	return lines
}
