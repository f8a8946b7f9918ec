// Package mem assembles a 16-bit 6502 address space out of independent
// devices -- RAM, ROM, and memory-mapped peripherals. It does not drive a
// cpu.CPU itself: a host loop performs the single memory transaction each
// Tick call asks for against a Bus.
package mem

import "errors"

// ErrNotWritable is returned by a device's Write when the address falls in
// its claimed range but the range is read-only (a ROM region).
var ErrNotWritable = errors.New("mem: address is not writable")

// ErrInvalidAddress is returned by a device's Write when the address does
// not fall in its claimed range at all.
var ErrInvalidAddress = errors.New("mem: address out of range for device")

// Device is anything that can occupy part of the address space. Read
// reports absence with a false second value rather than an error: a miss is
// an ordinary, expected outcome when a Bus tries several devices in turn.
// Write always reports why it refused, even though a Bus ultimately absorbs
// that error -- a device used standalone (in a test, say) still gets an
// honest answer.
//
// Devices may carry state that mutates on read (a keyboard queue popping
// its head); Read takes a pointer receiver precisely so that is possible.
type Device interface {
	Read(addr uint16) (data byte, ok bool)
	Write(addr uint16, data byte) error
}
