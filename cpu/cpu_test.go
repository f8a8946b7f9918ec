package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sixtyfive02/mem"
)

// newTestBus assembles RAM over everything except the interrupt vectors,
// with NMI/RESET/IRQ pointed wherever the caller wants for that test.
func newTestBus(nmi, reset, irq uint16) *mem.Bus {
	ram := mem.NewRAM(0, 0xFFFA)
	vec := mem.NewVectorROM(nmi, reset, irq)
	return mem.NewBus(ram, vec)
}

func load(b *mem.Bus, addr uint16, bytes ...byte) {
	for i, by := range bytes {
		b.Write(addr+uint16(i), by)
	}
}

// step performs one tick and the bus transaction it requests, exactly as a
// host loop must.
func step(c *CPU, b *mem.Bus, in Pins) Pins {
	out := c.Tick(in)
	if out.RW == Read {
		out.Data = b.Read(out.Address)
	} else {
		b.Write(out.Address, out.Data)
	}
	return out
}

// enter simulates a host landing on a sync cycle at addr: the opcode byte
// has already been fetched, matching the state the CPU itself would be in
// at the start of any instruction.
func enter(c *CPU, b *mem.Bus, addr uint16) Pins {
	c.PC = addr
	return step(c, b, Pins{Address: addr, Data: b.Read(addr), RW: Read, Sync: true})
}

// runReset drives the mandatory first tick (sync+res asserted) through the
// full 7-cycle reset sequence and returns the pins for the cycle after.
func runReset(c *CPU, b *mem.Bus) Pins {
	in := NewPins()
	for i := 0; i < 7; i++ {
		in = step(c, b, in)
		in.Res = false // host releases the reset line after the first sample
	}
	return in
}

// cyclesFor drives one instruction starting at addr to completion and
// reports how many ticks it took -- the thing spec.md's cycle-count table
// and this package's Entry.Cycles both describe.
func cyclesFor(c *CPU, b *mem.Bus, addr uint16) int {
	c.PC = addr
	in := Pins{Address: addr, Data: b.Read(addr), RW: Read, Sync: true}
	n := 0
	for {
		out := c.Tick(in)
		n++
		if out.RW == Read {
			out.Data = b.Read(out.Address)
		} else {
			b.Write(out.Address, out.Data)
		}
		if out.Sync {
			return n
		}
		in = out
	}
}

func TestResetEntersAtVector(t *testing.T) {
	b := newTestBus(0x9000, 0x8000, 0x9100)
	c := New(false)

	out := runReset(c, b)
	assert.Equal(t, uint16(0x8000), c.PC)
	assert.True(t, out.Sync)
	assert.Equal(t, byte(0xFD), c.SP, "SP decrements three times even though writes are suppressed")
	assert.Equal(t, byte(0), b.Read(0x01FF), "reset must not actually write the stack")
}

func TestLDAImmediateThenSTAAbsolute(t *testing.T) {
	b := newTestBus(0x9000, 0x8000, 0x9100)
	c := New(false)
	load(b, 0x8000,
		0xA9, 0x42, // LDA #$42
		0x8D, 0x00, 0x20, // STA $2000
		0xEA, // NOP
	)

	in := enter(c, b, 0x8000)
	require.True(t, !in.Sync)
	for !in.Sync {
		in = step(c, b, in)
	}
	assert.Equal(t, byte(0x42), c.AC)
	assert.Equal(t, uint16(0x8002), c.PC)

	in = enter(c, b, 0x8002)
	for !in.Sync {
		in = step(c, b, in)
	}
	assert.Equal(t, byte(0x42), b.Read(0x2000))
	assert.Equal(t, uint16(0x8005), c.PC)
}

func TestBranchNotTaken(t *testing.T) {
	b := newTestBus(0x9000, 0x8000, 0x9100)
	c := New(false)
	load(b, 0x8000, 0xD0, 0x05) // BNE +5

	c.SR |= flagZ // force the branch not taken
	n := cyclesFor(c, b, 0x8000)
	assert.Equal(t, 2, n)
	assert.Equal(t, uint16(0x8002), c.PC)
}

func TestBranchTakenWithPageCross(t *testing.T) {
	b := newTestBus(0x9000, 0x8000, 0x9100)
	c := New(false)
	// BNE +$7F from $80F0: the operand sits at $80F1, so PC is already
	// $80F2 by the time the offset is added. $F2+$7F overflows the low
	// byte, carrying the branch from page $80 into page $81.
	load(b, 0x80F0, 0xD0, 0x7F)

	c.SR &^= flagZ // force the branch taken
	n := cyclesFor(c, b, 0x80F0)
	assert.Equal(t, 4, n)
	assert.Equal(t, uint16(0x8171), c.PC)
}

func TestAbsoluteXPageCrossShortcut(t *testing.T) {
	b := newTestBus(0x9000, 0x8000, 0x9100)
	c := New(false)
	load(b, 0x8000, 0xBD, 0x00, 0x20) // LDA $2000,X
	load(b, 0x8010, 0xBD, 0xFF, 0x20) // LDA $20FF,X
	b.Write(0x2001, 0x11)
	b.Write(0x2100, 0x22)

	c.X = 1
	assert.Equal(t, 4, cyclesFor(c, b, 0x8000), "no page cross: canonical 4 cycles")
	assert.Equal(t, byte(0x11), c.AC)

	c.X = 1
	assert.Equal(t, 5, cyclesFor(c, b, 0x8010), "page cross: one extra cycle")
	assert.Equal(t, byte(0x22), c.AC)
}

func TestSoftwareBRKSetsBFlag(t *testing.T) {
	b := newTestBus(0x9000, 0x8000, 0x9100)
	c := New(false)
	c.SP = 0xFF
	load(b, 0x8000, 0x00, 0x00) // BRK + padding byte

	in := Pins{Address: 0x8000, Data: 0x00, RW: Read, Sync: true}
	for i := 0; i < 7; i++ {
		in = step(c, b, in)
	}
	pushed := b.Read(0x0100 | uint16(0xFD))
	assert.NotZero(t, pushed&flagB, "software BRK must push B=1")
	assert.Equal(t, uint16(0x9100), c.PC, "software BRK shares the IRQ vector")
}

func TestHardwareIRQClearsBFlag(t *testing.T) {
	b := newTestBus(0x9000, 0x8000, 0x9100)
	c := New(false)
	c.SP = 0xFF
	c.PC = 0x8000
	c.SR &^= flagI // interrupts enabled
	c.IRQPip = 0x04 // pretend the pipeline has already committed this cycle

	in := Pins{Sync: true, RW: Read}
	for i := 0; i < 7; i++ {
		in = step(c, b, in)
	}
	assert.Equal(t, uint16(0x9100), c.PC, "IRQ vector, distinct from NMI/RESET")
	pushed := b.Read(0x0100 | uint16(0xFD))
	assert.Zero(t, pushed&flagB, "hardware IRQ must push B=0")
}
