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

package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"github.com/lc3arch/lc3uarch/internal/devices"
	"github.com/lc3arch/lc3uarch/internal/disasm"
	"github.com/lc3arch/lc3uarch/internal/loader"
	"github.com/lc3arch/lc3uarch/lc3"
)

var (
	machine *lc3.Machine
	console *devices.Console

	paragraphRegs *widgets.Paragraph
	paragraphRam0 *widgets.Paragraph
	paragraphRam1 *widgets.Paragraph
	paragraphCode *widgets.Paragraph
)

func renderRegs(p *widgets.Paragraph) {
	cu := machine.CU
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "[STATE:](fg:white) %d   [CYCLE:](fg:white) %d\n", cu.State(), cu.CycleCount)
	fmt.Fprintf(sb, "PC: $%04X  IR: $%04X  PSR: $%04X\n", cu.PC, cu.IR, cu.PSR)
	fmt.Fprintf(sb, "MAR: $%04X MDR: $%04X\n", cu.MAR, cu.MDR)
	cc := "-"
	switch {
	case cu.N:
		cc = "N"
	case cu.Z:
		cc = "Z"
	case cu.P:
		cc = "P"
	}
	fmt.Fprintf(sb, "CC: [%s](fg:green) BEN: %v ACV: %v\n", cc, cu.BEN, cu.ACV)
	for i := 0; i < 8; i += 2 {
		fmt.Fprintf(sb, "R%d: $%04X   R%d: $%04X\n", i, cu.Regs[i], i+1, cu.Regs[i+1])
	}
	p.Text = sb.String()
}

func renderRam(p *widgets.Paragraph, addr uint16, numRow, numCol int) {
	curAddr := addr
	sb := &strings.Builder{}
	for row := 0; row < numRow; row++ {
		fmt.Fprintf(sb, "$%04X:", curAddr)
		for col := 0; col < numCol; col++ {
			fmt.Fprintf(sb, " %04X", machine.ReadMemory(curAddr))
			curAddr++
		}
		sb.WriteRune('\n')
	}
	p.Text = sb.String()
}

func renderCode(p *widgets.Paragraph) {
	cu := machine.CU
	lines := disasm.Range(machine, cu.PC, cu.PC+8)
	p.Text = strings.Join(lines, "\n")
}

func draw() {
	renderRam(paragraphRam0, 0x3000, 16, 8)
	renderRam(paragraphRam1, 0xFE00, 4, 8)
	renderRegs(paragraphRegs)
	renderCode(paragraphCode)

	ui.Render(paragraphRam0, paragraphRam1, paragraphRegs, paragraphCode)
}

func loadMachine(path string) {
	machine = lc3.NewMachine(lc3.DefaultConfig())
	console = devices.NewConsole()
	machine.AttachDevices(console)

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("could not open image: %v", err)
	}
	defer f.Close()

	img, err := loader.Load(f)
	if err != nil {
		log.Fatalf("could not load image: %v", err)
	}

	if err := machine.LoadImage(img.Origin, img.Words); err != nil {
		log.Fatalf("could not install image: %v", err)
	}
	machine.Reset()
	machine.CU.PC = img.Origin
}

func initLayout() {
	paragraphRam0 = widgets.NewParagraph()
	paragraphRam0.Title = "Memory 0x3000"
	paragraphRam0.SetRect(0, 0, 56, 18)

	paragraphRam1 = widgets.NewParagraph()
	paragraphRam1.Title = "Device Registers 0xFE00"
	paragraphRam1.SetRect(0, 18, 56, 24)

	paragraphRegs = widgets.NewParagraph()
	paragraphRegs.Title = "Control Unit"
	paragraphRegs.SetRect(56, 0, 56+30, 9)

	paragraphCode = widgets.NewParagraph()
	paragraphCode.Title = "Disassembly"
	paragraphCode.SetRect(0, 24, 56, 24+10)
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: lc3tui <image.obj>")
	}

	if err := ui.Init(); err != nil {
		log.Fatalf("failed to initialize termui: %v", err)
	}
	defer ui.Close()

	initLayout()
	loadMachine(os.Args[1])

	draw()

	for e := range ui.PollEvents() {
		if e.Type == ui.KeyboardEvent {
			switch e.ID {
			case "q", "<C-c>":
				return
			case "<Space>":
				if err := machine.Step(); err != nil {
					log.Print(err)
				}
				draw()
			case "r":
				machine.Reset()
				draw()
			}
		}
	}
}
