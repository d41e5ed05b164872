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

import "fmt"

// Config parameterizes a Machine's memory subsystem. NewMachine replaces any
// zero field with the package default; DefaultConfig spells those defaults
// out, the way the teacher's bus/cartridge pairing is always built from a
// named constructor rather than a bare struct literal.
type Config struct {
	MemoryWords  int
	ClockLatency int

	// ResetPC and ResetPSR override the architectural reset values a host
	// wants Reset to restore — a test harness booting straight into
	// supervisor mode, for instance. Zero means "use the package default".
	ResetPC  uint16
	ResetPSR uint16
}

// DefaultConfig returns the configuration this package's tests and
// examples assume: 16384 words, 3-cycle memory latency, reset into
// 0x3000/user mode.
func DefaultConfig() Config {
	return Config{
		MemoryWords:  DefaultMemoryWords,
		ClockLatency: DefaultClockLatency,
		ResetPC:      ResetPC,
		ResetPSR:     ResetPSR,
	}
}

// Machine composes the control unit and memory subsystem into the single
// per-cycle Step function described by the architecture: decode, memory
// step, evaluate, gate, sequence, load — in that order, every cycle.
// Evaluation reads no bus value, so running it before gating changes no
// result.
type Machine struct {
	CU  *ControlUnit
	Mem *Memory

	resetPC  uint16
	resetPSR uint16
	devices  MMIO
}

// MMIO lets a host install memory-mapped device registers (keyboard,
// display) into the address range ACV already reserves for supervisor and
// device use (>= 0xFE00). The memory subsystem itself knows nothing about
// devices; Machine consults MMIO for every address its Handles method
// claims, ahead of Mem's backing array, matching the "terminal I/O ... is the host's responsibility"
// boundary the core draws around itself.
type MMIO interface {
	// Handles reports whether this device owns addr.
	Handles(addr uint16) bool
	Read(addr uint16) uint16
	Write(addr uint16, value uint16)
}

// NewMachine builds a Machine from cfg, with the control unit and memory
// subsystem both already reset.
func NewMachine(cfg Config) *Machine {
	if cfg.MemoryWords <= 0 {
		cfg.MemoryWords = DefaultMemoryWords
	}
	if cfg.ClockLatency <= 0 {
		cfg.ClockLatency = DefaultClockLatency
	}
	if cfg.ResetPC == 0 {
		cfg.ResetPC = ResetPC
	}
	if cfg.ResetPSR == 0 {
		cfg.ResetPSR = ResetPSR
	}
	m := &Machine{
		CU:       NewControlUnit(),
		Mem:      NewMemory(cfg.MemoryWords, cfg.ClockLatency),
		resetPC:  cfg.ResetPC,
		resetPSR: cfg.ResetPSR,
	}
	m.Reset()
	return m
}

// AttachDevices installs the memory-mapped device registers a host wants
// addresses >= 0xFE00 routed to. Passing nil removes any installed device.
func (m *Machine) AttachDevices(devices MMIO) {
	m.devices = devices
}

// Reset restores the reset state described in spec.md §6: PC=0x3000,
// state=18, PSR=0x8000, all registers and the memory-subsystem latches
// zero. Memory contents themselves are left alone (loading an image and
// then resetting the datapath is a common host sequence).
func (m *Machine) Reset() {
	m.CU.Reset()
	if m.resetPC != 0 {
		m.CU.PC = m.resetPC
	}
	if m.resetPSR != 0 {
		m.CU.PSR = m.resetPSR
	}
	m.Mem.R = false
	m.Mem.MemoryOut = 0
	m.Mem.clockCount = 0
}

// SetInterrupt drives the INT line the INTERRUPT_TEST condition samples
// during fetch.
func (m *Machine) SetInterrupt(asserted bool) {
	m.CU.INT = asserted
}

// LoadImage writes words into memory starting at base, the host-side
// analogue of attaching a cartridge image to a bus.
func (m *Machine) LoadImage(base uint16, words []uint16) error {
	if int(base)+len(words) > m.Mem.Len() {
		return fmt.Errorf("%w: image of %d words at 0x%04X overruns %d-word memory", ErrInvalidImage, len(words), base, m.Mem.Len())
	}
	for i, w := range words {
		m.Mem.Write(base+uint16(i), w)
	}
	return nil
}

// ReadMemory bypasses the access pipeline for host inspection.
func (m *Machine) ReadMemory(addr uint16) uint16 {
	if dev := m.devices; dev != nil && dev.Handles(addr) {
		return dev.Read(addr)
	}
	return m.Mem.Read(addr)
}

// WriteMemory bypasses the access pipeline for host setup.
func (m *Machine) WriteMemory(addr uint16, value uint16) {
	if dev := m.devices; dev != nil && dev.Handles(addr) {
		dev.Write(addr, value)
		return
	}
	m.Mem.Write(addr, value)
}

// Step advances the machine by exactly one micro-cycle. It is the sole
// timing primitive: an architectural instruction spans many calls to
// Step, typically 6 to 18 or more.
func (m *Machine) Step() error {
	cu := m.CU

	// 1. Decode microstate -> control signals.
	state := cu.state
	if state >= numStates {
		state = state % numStates
	}
	sig := cu.microcode[state]
	logTrace(fmt.Sprintf("state=%-2d PC=%04X IR=%04X MAR=%04X MDR=%04X", state, cu.PC, cu.IR, cu.MAR, cu.MDR))
	var stepErr error
	if !definedStates[state] {
		stepErr = fmt.Errorf("%w: state %d, resuming at fetch", ErrMicrostateUndefined, state)
		logFault(stepErr.Error())
	}

	// 2. Memory step: served from the device-backed MAR/MDR the host
	// installed, or the flat word array, depending on the address.
	if sig.MIOEn && m.devices != nil && m.devices.Handles(cu.MAR) {
		m.Mem.R = false
		m.Mem.clockCount++
		if m.Mem.clockCount >= m.Mem.clockLatency {
			m.Mem.clockCount = 0
			m.Mem.R = true
			switch sig.RW {
			case MemWrite:
				m.devices.Write(cu.MAR, cu.MDR)
			case MemRead:
				m.Mem.MemoryOut = m.devices.Read(cu.MAR)
			}
		}
	} else {
		if sig.MIOEn && int(cu.MAR) >= m.Mem.Len() {
			logFault(fmt.Sprintf("%v: MAR=0x%04X wraps into %d-word memory", ErrAddressRange, cu.MAR, m.Mem.Len()))
		}
		m.Mem.Step(cu.MAR, cu.MDR, sig.MIOEn, sig.RW)
	}

	// 3/4. Combinational logic: every mux, adder and ALU output that does
	// not depend on the bus.
	c := cu.evaluate(sig)

	// Gating: drive exactly one source onto the bus, in the fixed order
	// PC, MDR, ALU, MARMUX (spec.md §3's invariant: the last-processed
	// source wins if more than one is asserted, though correct microcode
	// never does that).
	var bus uint16
	if sig.GatePC {
		bus = cu.PC
	}
	if sig.GateMDR {
		bus = cu.MDR
	}
	if sig.GateALU {
		bus = c.aluOut
	}
	if sig.GateMARMUX {
		bus = c.marMuxOut
	}
	if sig.PCMux == PCBus {
		c.pcMuxOut = bus
	}

	// Branch-enable and access-control-violation combinational outputs.
	// ACV reads bus, which is only meaningful after gating.
	ben := cu.benOut()
	acv := acvOut(cu.PSR, bus)

	// 5. Microsequencer.
	next := nextState(sig, sequencerInputs{
		r: m.Mem.R, ben: cu.BEN, psr: cu.PSR, int: cu.INT, acv: cu.ACV, ir: cu.IR,
	})

	// 6. Register loads, all sampled from values computed above —
	// falling-edge semantics: nothing here reads another load's result.
	if sig.LDMAR {
		cu.MAR = bus
	}
	if sig.LDMDR {
		if sig.MIOEn {
			cu.MDR = m.Mem.MemoryOut
		} else {
			cu.MDR = bus
		}
	}
	if sig.LDPC {
		cu.PC = c.pcMuxOut
	}
	if sig.LDIR {
		cu.IR = bus
	}
	if sig.LDCC {
		cu.setCC(bus)
	}
	if sig.LDREG {
		cu.Regs[c.dr] = bus
	}
	if sig.LDACV {
		cu.ACV = acv
	}
	if sig.LDBEN {
		cu.BEN = ben
	}

	cu.state = next
	cu.CycleCount++

	return stepErr
}
