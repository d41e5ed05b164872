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
	"os"
	"sort"

	"gopkg.in/urfave/cli.v2"

	"github.com/lc3arch/lc3uarch/internal/devices"
	"github.com/lc3arch/lc3uarch/internal/disasm"
	"github.com/lc3arch/lc3uarch/internal/loader"
	"github.com/lc3arch/lc3uarch/lc3"
)

func main() {
	app := &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "image",
				Aliases: []string{"i"},
				Usage:   "LC-3 object file to load",
			},
			&cli.IntFlag{
				Name:    "cycles",
				Aliases: []string{"n"},
				Usage:   "number of micro-cycles to run",
				Value:   1000,
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "log every microstate transition",
			},
			&cli.BoolFlag{
				Name:  "disasm",
				Usage: "print the instruction at PC before each fetch",
			},
		},
		Name:    "lc3run",
		Usage:   "Run an LC-3 object file on the microarchitectural core",
		Version: "v0.0.1",
		Action:  run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

type stdoutLogger struct{}

func (stdoutLogger) Log(msg string) { fmt.Println(msg) }

func run(c *cli.Context) error {
	imagePath := c.String("image")
	if imagePath == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("", 86)
	}

	if c.Bool("trace") {
		lc3.SetLogger(stdoutLogger{})
		lc3.SetTraceEnable(true)
	}

	f, err := os.Open(imagePath)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer f.Close()

	img, err := loader.Load(f)
	if err != nil {
		return cli.Exit(err, 1)
	}

	machine := lc3.NewMachine(lc3.DefaultConfig())
	console := devices.NewConsole()
	machine.AttachDevices(console)

	if err := machine.LoadImage(img.Origin, img.Words); err != nil {
		return cli.Exit(err, 1)
	}
	machine.Reset()
	machine.CU.PC = img.Origin

	cycles := c.Int("cycles")
	disassemble := c.Bool("disasm")
	for i := 0; i < cycles; i++ {
		if disassemble && machine.CU.State() == lc3.ResetState {
			fmt.Println(disasm.Line(machine, machine.CU.PC))
		}
		if err := machine.Step(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	printState(machine)
	if len(console.Output) > 0 {
		fmt.Printf("console output: %q\n", string(console.Output))
	}
	return nil
}

func printState(m *lc3.Machine) {
	cu := m.CU
	fmt.Printf("PC=%04X IR=%04X PSR=%04X state=%d\n", cu.PC, cu.IR, cu.PSR, cu.State())
	for i, r := range cu.Regs {
		fmt.Printf("R%d=%04X ", i, r)
	}
	fmt.Println()
}
