package mem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRAMReadWrite(t *testing.T) {
	r := NewRAM(0x0200, 4)

	assert.NoError(t, r.Write(0x0201, 0x42))
	v, ok := r.Read(0x0201)
	assert.True(t, ok)
	assert.Equal(t, byte(0x42), v)

	_, ok = r.Read(0x0300)
	assert.False(t, ok, "out-of-range read should not claim the address")

	err := r.Write(0x0300, 0x99)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestROMReadWrite(t *testing.T) {
	rom := NewROM(0x8000, []byte{0xA9, 0x42, 0x00})

	v, ok := rom.Read(0x8001)
	assert.True(t, ok)
	assert.Equal(t, byte(0x42), v)

	_, ok = rom.Read(0x9000)
	assert.False(t, ok)

	cases := []struct {
		name string
		addr uint16
		want error
	}{
		{"in range is refused, not silently accepted", 0x8001, ErrNotWritable},
		{"out of range is invalid, not not-writable", 0x9000, ErrInvalidAddress},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := rom.Write(tc.addr, 0xFF)
			assert.True(t, errors.Is(err, tc.want))
		})
	}
}

func TestVectorROM(t *testing.T) {
	vec := NewVectorROM(0x9000, 0x8000, 0x9100)

	read16 := func(addr uint16) uint16 {
		lo, ok := vec.Read(addr)
		assert.True(t, ok)
		hi, ok := vec.Read(addr + 1)
		assert.True(t, ok)
		return uint16(hi)<<8 | uint16(lo)
	}

	assert.Equal(t, uint16(0x9000), read16(0xFFFA))
	assert.Equal(t, uint16(0x8000), read16(0xFFFC))
	assert.Equal(t, uint16(0x9100), read16(0xFFFE))
}

// TestBusReadPriority exercises overlapping devices: the first one attached
// that claims an address wins, regardless of what a later device would say.
func TestBusReadPriority(t *testing.T) {
	low := NewROM(0x0000, []byte{0x11})
	high := NewRAM(0x0000, 1)
	high.Write(0x0000, 0x22)

	bus := NewBus(low, high)
	assert.Equal(t, byte(0x11), bus.Read(0x0000), "first-registered device shadows the rest")

	bus2 := NewBus(high, low)
	assert.Equal(t, byte(0x22), bus2.Read(0x0000), "registration order, not content, decides priority")
}

func TestBusReadUnmapped(t *testing.T) {
	bus := NewBus(NewRAM(0x1000, 1))
	assert.Equal(t, byte(0), bus.Read(0x0000))
}

func TestBusWriteAbsorbsErrors(t *testing.T) {
	rom := NewROM(0x8000, []byte{0x00})
	bus := NewBus(rom)
	assert.NotPanics(t, func() { bus.Write(0x8000, 0xFF) })
	v, _ := rom.Read(0x8000)
	assert.Equal(t, byte(0x00), v, "the write must not have gone through")
}

func TestKeyQueuePopOnRead(t *testing.T) {
	q := NewKeyQueue(0xD000)

	b, ok := q.Read(0xD000)
	assert.True(t, ok, "the address is claimed even with nothing pending")
	assert.Equal(t, byte(0), b)

	q.Push('a')
	q.Push('b')

	b, ok = q.Read(0xD000)
	assert.True(t, ok)
	assert.Equal(t, byte('a'), b)

	b, ok = q.Read(0xD000)
	assert.True(t, ok)
	assert.Equal(t, byte('b'), b, "second read pops the next byte, FIFO order")

	_, ok = q.Read(0xD001)
	assert.False(t, ok, "only its own address is claimed")

	assert.ErrorIs(t, q.Write(0xD000, 0x41), ErrNotWritable)
	assert.ErrorIs(t, q.Write(0xD001, 0x41), ErrInvalidAddress)
}

func TestFramebufferSnapshotIsIndependentCopy(t *testing.T) {
	fb := NewFramebuffer(0x2000, 2, 2)
	assert.NoError(t, fb.Write(0x2000, 0xAA))

	snap := fb.Snapshot()
	assert.Equal(t, byte(0xAA), snap[0])

	assert.NoError(t, fb.Write(0x2000, 0xBB))
	assert.Equal(t, byte(0xAA), snap[0], "snapshot must not alias live pixel storage")

	_, ok := fb.Read(0x2004)
	assert.False(t, ok, "out-of-range access is unclaimed, not a panic")
}
