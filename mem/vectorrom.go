package mem

// NewVectorROM builds the six-byte interrupt-vector ROM at 0xFFFA: NMI,
// RESET, then IRQ/BRK, each little-endian, exactly where the CPU's BRK
// micro-sequence looks for them regardless of which of the three it is
// servicing.
func NewVectorROM(nmi, reset, irq uint16) *ROM {
	data := []byte{
		byte(nmi), byte(nmi >> 8),
		byte(reset), byte(reset >> 8),
		byte(irq), byte(irq >> 8),
	}
	return NewROM(0xFFFA, data)
}
