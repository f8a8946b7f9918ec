// Package cpu implements a cycle-accurate MOS Technology 6502, driven one
// bus cycle at a time through Pins. Nothing in this package knows about
// files, screens, or clocks; a host assembles a memory map and calls Tick in
// a loop (see the mem package and cmd/sixtyfive02).
package cpu

import (
	"fmt"
)

// Status flag bit positions within SR, matching the conventional 6502
// ordering N V - B D I Z C (bit 7 down to bit 0).
const (
	flagC byte = 1 << 0
	flagZ byte = 1 << 1
	flagI byte = 1 << 2
	flagD byte = 1 << 3
	flagB byte = 1 << 4
	flagX byte = 1 << 5 // unused, always reads 1
	flagV byte = 1 << 6
	flagN byte = 1 << 7
)

// BRK_FLAGS records which of {IRQ, NMI, RESET} a BRK-shaped sequence is
// currently servicing. Software BRK sets none of them.
const (
	brkIRQ   byte = 1 << 0
	brkNMI   byte = 1 << 1
	brkRESET byte = 1 << 2
)

// CPU is the persistent register file. Everything else (the in-flight
// micro-step plan, scratch latches) is transient and rebuilt every sync
// cycle.
type CPU struct {
	PC uint16
	AC byte
	X  byte
	Y  byte
	SP byte
	SR byte

	IR uint16 // opcode (bits 3-10) << substep (bits 0-2)

	ADL byte // scratch latch for effective-address formation
	ADH byte
	M   byte // data latch: value read at the effective address, pending ALU/RMW use

	NMIPip byte
	IRQPip byte

	BRKFlags byte

	BCDEnabled bool

	// lastNMI is not part of the register file described by the data
	// model; it is the edge-detector's memory of the nmi line's previous
	// sample, needed because NMI recognition is edge- not level-triggered.
	lastNMI bool

	// branchInhibit is set mid-tick by a branch-taken-without-page-cross
	// step to request the one-off right-shift of both interrupt
	// pipelines, instead of the usual left-shift, at end of this tick.
	branchInhibit bool

	// branchCrossed/branchFixup carry the taken-branch page-cross decision
	// from the cycle that computes it to the cycle that (maybe) acts on
	// it. The indexed Write/RMW plans (AbsoluteX/Y, IndirectY) also reuse
	// branchFixup as their page-cross carry; outside those sequences
	// neither field means anything.
	branchCrossed bool
	branchFixup   bool

	plan []step
}

// New constructs a CPU whose very first Tick enters the reset sequence, as
// required by the external-interfaces contract: the CPU starts with sync
// asserted and reset asserted.
func New(bcdEnabled bool) *CPU {
	return &CPU{
		SR:         flagI | flagX,
		SP:         0,
		BCDEnabled: bcdEnabled,
	}
}

func (c *CPU) opcode() byte  { return byte(c.IR >> 3) }
func (c *CPU) substep() byte { return byte(c.IR & 0x7) }

// Tick advances the CPU by exactly one bus cycle: it samples the incoming
// pins, interprets the current micro-step of whichever instruction is in
// flight, and returns the pins the host should now act on.
func (c *CPU) Tick(in Pins) Pins {
	if in.RDY && in.RW == Read {
		return in
	}

	if in.NMI && !c.lastNMI {
		c.NMIPip |= 1
	}
	c.lastNMI = in.NMI
	if in.IRQ && c.SR&flagI == 0 {
		c.IRQPip |= 1
	}

	out := in

	if in.Sync {
		opcode := in.Data
		interrupting := false
		c.BRKFlags = 0

		if c.IRQPip&0x04 != 0 {
			c.BRKFlags |= brkIRQ
			interrupting = true
		}
		if c.NMIPip&0xFC != 0 {
			c.BRKFlags |= brkNMI
			interrupting = true
		}
		if in.Res {
			c.BRKFlags |= brkRESET
			interrupting = true
		}

		if interrupting {
			opcode = 0x00
		} else {
			c.PC++
		}

		c.IR = uint16(opcode) << 3
		c.plan = c.buildPlan(opcode, interrupting)
	}

	sub := c.substep()
	if int(sub) >= len(c.plan) {
		panic(fmt.Sprintf("cpu: substep %d out of range for opcode %#02x (defect in micro-step table)", sub, c.opcode()))
	}
	out = c.plan[sub](c, in, out)
	c.IR++

	if c.branchInhibit {
		c.NMIPip >>= 1
		c.IRQPip >>= 1
		c.branchInhibit = false
	} else {
		c.NMIPip <<= 1
		c.IRQPip <<= 1
	}

	return out
}
