package cpu

// Opcodes is populated here rather than as a 256-line literal: each
// documented instruction spans a handful of addressing-mode variants that
// differ only in Mode/Cycles, so grouping by mnemonic keeps the table
// reviewable. See decode.go for the Entry/Mode/Kind shapes and steps.go for
// how Mode+Kind are turned into an actual bus sequence.
func init() {
	set := func(op byte, mnemonic string, mode AddrMode, kind Kind, cycles int, fn OpFunc) {
		Opcodes[op] = Entry{Mnemonic: mnemonic, Mode: mode, Kind: kind, Cycles: cycles, Fn: fn}
	}
	read := func(op byte, mnemonic string, mode AddrMode, cycles int, fn OpFunc) {
		set(op, mnemonic, mode, KindRead, cycles, fn)
	}
	write := func(op byte, mnemonic string, mode AddrMode, cycles int, fn OpFunc) {
		set(op, mnemonic, mode, KindWrite, cycles, fn)
	}
	rmw := func(op byte, mnemonic string, mode AddrMode, cycles int, fn OpFunc) {
		set(op, mnemonic, mode, KindRMW, cycles, fn)
	}
	implied := func(op byte, mnemonic string, fn OpFunc) {
		set(op, mnemonic, ModeImplied, KindImplied, 2, fn)
	}
	branch := func(op byte, mnemonic string, cond CondFunc) {
		Opcodes[op] = Entry{Mnemonic: mnemonic, Mode: ModeRelative, Kind: KindBranch, Cycles: 2, Cond: cond}
	}

	// --- read-group instructions: imm/zp/zpx/abs/absx/absy/indx/indy ---
	readGroup := func(immOp, zp, zpx, abs, absx, absy, indx, indy byte, mnemonic string, fn OpFunc) {
		read(immOp, mnemonic, ModeImmediate, 2, fn)
		read(zp, mnemonic, ModeZeroPage, 3, fn)
		read(zpx, mnemonic, ModeZeroPageX, 4, fn)
		read(abs, mnemonic, ModeAbsolute, 4, fn)
		read(absx, mnemonic, ModeAbsoluteX, 4, fn)
		read(absy, mnemonic, ModeAbsoluteY, 4, fn)
		read(indx, mnemonic, ModeIndirectX, 6, fn)
		read(indy, mnemonic, ModeIndirectY, 5, fn)
	}
	readGroup(0x69, 0x65, 0x75, 0x6D, 0x7D, 0x79, 0x61, 0x71, "ADC", opADC)
	readGroup(0x29, 0x25, 0x35, 0x2D, 0x3D, 0x39, 0x21, 0x31, "AND", opAND)
	readGroup(0x49, 0x45, 0x55, 0x4D, 0x5D, 0x59, 0x41, 0x51, "EOR", opEOR)
	readGroup(0x09, 0x05, 0x15, 0x0D, 0x1D, 0x19, 0x01, 0x11, "ORA", opORA)
	readGroup(0xC9, 0xC5, 0xD5, 0xCD, 0xDD, 0xD9, 0xC1, 0xD1, "CMP", opCMP)
	readGroup(0xE9, 0xE5, 0xF5, 0xED, 0xFD, 0xF9, 0xE1, 0xF1, "SBC", opSBC)

	read(0xA9, "LDA", ModeImmediate, 2, opLDA)
	read(0xA5, "LDA", ModeZeroPage, 3, opLDA)
	read(0xB5, "LDA", ModeZeroPageX, 4, opLDA)
	read(0xAD, "LDA", ModeAbsolute, 4, opLDA)
	read(0xBD, "LDA", ModeAbsoluteX, 4, opLDA)
	read(0xB9, "LDA", ModeAbsoluteY, 4, opLDA)
	read(0xA1, "LDA", ModeIndirectX, 6, opLDA)
	read(0xB1, "LDA", ModeIndirectY, 5, opLDA)

	read(0xA2, "LDX", ModeImmediate, 2, opLDX)
	read(0xA6, "LDX", ModeZeroPage, 3, opLDX)
	read(0xB6, "LDX", ModeZeroPageY, 4, opLDX)
	read(0xAE, "LDX", ModeAbsolute, 4, opLDX)
	read(0xBE, "LDX", ModeAbsoluteY, 4, opLDX)

	read(0xA0, "LDY", ModeImmediate, 2, opLDY)
	read(0xA4, "LDY", ModeZeroPage, 3, opLDY)
	read(0xB4, "LDY", ModeZeroPageX, 4, opLDY)
	read(0xAC, "LDY", ModeAbsolute, 4, opLDY)
	read(0xBC, "LDY", ModeAbsoluteX, 4, opLDY)

	read(0xE0, "CPX", ModeImmediate, 2, opCPX)
	read(0xE4, "CPX", ModeZeroPage, 3, opCPX)
	read(0xEC, "CPX", ModeAbsolute, 4, opCPX)

	read(0xC0, "CPY", ModeImmediate, 2, opCPY)
	read(0xC4, "CPY", ModeZeroPage, 3, opCPY)
	read(0xCC, "CPY", ModeAbsolute, 4, opCPY)

	read(0x24, "BIT", ModeZeroPage, 3, opBIT)
	read(0x2C, "BIT", ModeAbsolute, 4, opBIT)

	// --- write-group: STA/STX/STY ---
	write(0x85, "STA", ModeZeroPage, 3, opSTA)
	write(0x95, "STA", ModeZeroPageX, 4, opSTA)
	write(0x8D, "STA", ModeAbsolute, 4, opSTA)
	write(0x9D, "STA", ModeAbsoluteX, 5, opSTA)
	write(0x99, "STA", ModeAbsoluteY, 5, opSTA)
	write(0x81, "STA", ModeIndirectX, 6, opSTA)
	write(0x91, "STA", ModeIndirectY, 6, opSTA)

	write(0x86, "STX", ModeZeroPage, 3, opSTX)
	write(0x96, "STX", ModeZeroPageY, 4, opSTX)
	write(0x8E, "STX", ModeAbsolute, 4, opSTX)

	write(0x84, "STY", ModeZeroPage, 3, opSTY)
	write(0x94, "STY", ModeZeroPageX, 4, opSTY)
	write(0x8C, "STY", ModeAbsolute, 4, opSTY)

	// --- RMW group: ASL/LSR/ROL/ROR/INC/DEC ---
	rmwGroup := func(zp, zpx, abs, absx byte, mnemonic string, fn OpFunc) {
		rmw(zp, mnemonic, ModeZeroPage, 5, fn)
		rmw(zpx, mnemonic, ModeZeroPageX, 6, fn)
		rmw(abs, mnemonic, ModeAbsolute, 6, fn)
		rmw(absx, mnemonic, ModeAbsoluteX, 7, fn)
	}
	rmwGroup(0x06, 0x16, 0x0E, 0x1E, "ASL", opASL)
	rmwGroup(0x46, 0x56, 0x4E, 0x5E, "LSR", opLSR)
	rmwGroup(0x26, 0x36, 0x2E, 0x3E, "ROL", opROL)
	rmwGroup(0x66, 0x76, 0x6E, 0x7E, "ROR", opROR)
	rmwGroup(0xC6, 0xD6, 0xCE, 0xDE, "DEC", opDEC)
	rmwGroup(0xE6, 0xF6, 0xEE, 0xFE, "INC", opINC)

	set(0x0A, "ASL", ModeAccumulator, KindAccumulator, 2, opASL)
	set(0x4A, "LSR", ModeAccumulator, KindAccumulator, 2, opLSR)
	set(0x2A, "ROL", ModeAccumulator, KindAccumulator, 2, opROL)
	set(0x6A, "ROR", ModeAccumulator, KindAccumulator, 2, opROR)

	// --- implied / register instructions ---
	implied(0x18, "CLC", opCLC)
	implied(0x38, "SEC", opSEC)
	implied(0x58, "CLI", opCLI)
	implied(0x78, "SEI", opSEI)
	implied(0xD8, "CLD", opCLD)
	implied(0xF8, "SED", opSED)
	implied(0xB8, "CLV", opCLV)
	implied(0xAA, "TAX", opTAX)
	implied(0xA8, "TAY", opTAY)
	implied(0x8A, "TXA", opTXA)
	implied(0x98, "TYA", opTYA)
	implied(0xBA, "TSX", opTSX)
	implied(0x9A, "TXS", opTXS)
	implied(0xE8, "INX", opINX)
	implied(0xC8, "INY", opINY)
	implied(0xCA, "DEX", opDEX)
	implied(0x88, "DEY", opDEY)
	implied(0xEA, "NOP", opNOP)

	// --- stack ---
	set(0x48, "PHA", ModeImplied, KindPushA, 3, nil)
	set(0x08, "PHP", ModeImplied, KindPushP, 3, nil)
	set(0x68, "PLA", ModeImplied, KindPullA, 4, nil)
	set(0x28, "PLP", ModeImplied, KindPullP, 4, nil)

	// --- control flow ---
	set(0x4C, "JMP", ModeAbsolute, KindJumpAbs, 3, nil)
	set(0x6C, "JMP", ModeIndirect, KindJumpInd, 5, nil)
	set(0x20, "JSR", ModeAbsolute, KindJSR, 6, nil)
	set(0x60, "RTS", ModeImplied, KindRTS, 6, nil)
	set(0x40, "RTI", ModeImplied, KindRTI, 6, nil)
	set(0x00, "BRK", ModeImplied, KindBRK, 7, nil)

	branch(0x10, "BPL", func(c *CPU) bool { return c.SR&flagN == 0 })
	branch(0x30, "BMI", func(c *CPU) bool { return c.SR&flagN != 0 })
	branch(0x50, "BVC", func(c *CPU) bool { return c.SR&flagV == 0 })
	branch(0x70, "BVS", func(c *CPU) bool { return c.SR&flagV != 0 })
	branch(0x90, "BCC", func(c *CPU) bool { return c.SR&flagC == 0 })
	branch(0xB0, "BCS", func(c *CPU) bool { return c.SR&flagC != 0 })
	branch(0xD0, "BNE", func(c *CPU) bool { return c.SR&flagZ == 0 })
	branch(0xF0, "BEQ", func(c *CPU) bool { return c.SR&flagZ != 0 })

	// --- undocumented: RMW combo ops (SLO/RLA/SRE/RRA/DCP/ISC) ---
	illegalRMW := func(zp, zpx, indx, indy, abs, absx, absy byte, mnemonic string, fn OpFunc) {
		rmw(zp, mnemonic, ModeZeroPage, 5, fn)
		rmw(zpx, mnemonic, ModeZeroPageX, 6, fn)
		rmw(indx, mnemonic, ModeIndirectX, 8, fn)
		rmw(indy, mnemonic, ModeIndirectY, 8, fn)
		rmw(abs, mnemonic, ModeAbsolute, 6, fn)
		rmw(absx, mnemonic, ModeAbsoluteX, 7, fn)
		rmw(absy, mnemonic, ModeAbsoluteY, 7, fn)
	}
	illegalRMW(0x07, 0x17, 0x03, 0x13, 0x0F, 0x1F, 0x1B, "SLO", opSLO)
	illegalRMW(0x27, 0x37, 0x23, 0x33, 0x2F, 0x3F, 0x3B, "RLA", opRLA)
	illegalRMW(0x47, 0x57, 0x43, 0x53, 0x4F, 0x5F, 0x5B, "SRE", opSRE)
	illegalRMW(0x67, 0x77, 0x63, 0x73, 0x6F, 0x7F, 0x7B, "RRA", opRRA)
	illegalRMW(0xC7, 0xD7, 0xC3, 0xD3, 0xCF, 0xDF, 0xDB, "DCP", opDCP)
	illegalRMW(0xE7, 0xF7, 0xE3, 0xF3, 0xEF, 0xFF, 0xFB, "ISC", opISC)

	// --- undocumented: SAX / LAX ---
	write(0x87, "SAX", ModeZeroPage, 3, opSAX)
	write(0x97, "SAX", ModeZeroPageY, 4, opSAX)
	write(0x83, "SAX", ModeIndirectX, 6, opSAX)
	write(0x8F, "SAX", ModeAbsolute, 4, opSAX)

	read(0xA7, "LAX", ModeZeroPage, 3, opLAX)
	read(0xB7, "LAX", ModeZeroPageY, 4, opLAX)
	read(0xA3, "LAX", ModeIndirectX, 6, opLAX)
	read(0xB3, "LAX", ModeIndirectY, 5, opLAX)
	read(0xAF, "LAX", ModeAbsolute, 4, opLAX)
	read(0xBF, "LAX", ModeAbsoluteY, 4, opLAX)

	// --- undocumented: immediate-only quirks ---
	read(0x0B, "ANC", ModeImmediate, 2, opANC)
	read(0x2B, "ANC", ModeImmediate, 2, opANC)
	read(0x4B, "ALR", ModeImmediate, 2, opALR)
	read(0x6B, "ARR", ModeImmediate, 2, opARR)
	read(0x8B, "ANE", ModeImmediate, 2, opANE)
	read(0xAB, "LXA", ModeImmediate, 2, opLXA)
	read(0xCB, "SBX", ModeImmediate, 2, opSBX)
	read(0xEB, "SBC", ModeImmediate, 2, opSBC)

	// --- undocumented: unstable "high byte AND" stores, and LAS ---
	write(0x93, "SHA", ModeIndirectY, 6, opSHA)
	write(0x9F, "SHA", ModeAbsoluteY, 5, opSHA)
	write(0x9E, "SHX", ModeAbsoluteY, 5, opSHX)
	write(0x9C, "SHY", ModeAbsoluteX, 5, opSHY)
	write(0x9B, "SHS", ModeAbsoluteY, 5, opSHS)
	read(0xBB, "LAS", ModeAbsoluteY, 4, opLAS)

	// --- undocumented NOPs, still cycle-accurate bus activity ---
	for _, op := range []byte{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		implied(op, "NOP", opNOP)
	}
	for _, op := range []byte{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		read(op, "NOP", ModeImmediate, 2, opNOPRead)
	}
	for _, op := range []byte{0x04, 0x44, 0x64} {
		read(op, "NOP", ModeZeroPage, 3, opNOPRead)
	}
	for _, op := range []byte{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		read(op, "NOP", ModeZeroPageX, 4, opNOPRead)
	}
	read(0x0C, "NOP", ModeAbsolute, 4, opNOPRead)
	for _, op := range []byte{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		read(op, "NOP", ModeAbsoluteX, 4, opNOPRead)
	}

	// --- JAM: freezes the CPU; a legitimate terminal program state ---
	for _, op := range []byte{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2} {
		set(op, "JAM", ModeImplied, KindJAM, 1, nil)
	}
}
