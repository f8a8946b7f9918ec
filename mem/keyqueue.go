package mem

import "sync"

// KeyQueue is a single-address FIFO of pending key bytes: a host-side
// producer calls Push as input arrives, and the running program drains it by
// reading the mapped address, one byte per read. This is the canonical
// example of a device with read-as-side-effect state (spec.md §9's "device
// ownership" concern) -- its Read is never safe behind a plain read-only
// interface.
type KeyQueue struct {
	Addr uint16

	mu      sync.Mutex
	pending []byte
}

// NewKeyQueue maps an empty queue at addr.
func NewKeyQueue(addr uint16) *KeyQueue {
	return &KeyQueue{Addr: addr}
}

// Push enqueues a key byte for the program to read later. Called from the
// host's input-handling goroutine, never from a Tick loop.
func (k *KeyQueue) Push(b byte) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pending = append(k.pending, b)
}

// Read pops and returns the head of the queue, or 0 if nothing is pending.
// Either way ok is true: this device claims its one address unconditionally.
func (k *KeyQueue) Read(addr uint16) (byte, bool) {
	if addr != k.Addr {
		return 0, false
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if len(k.pending) == 0 {
		return 0, true
	}
	b := k.pending[0]
	k.pending = k.pending[1:]
	return b, true
}

func (k *KeyQueue) Write(addr uint16, _ byte) error {
	if addr != k.Addr {
		return ErrInvalidAddress
	}
	return ErrNotWritable
}
