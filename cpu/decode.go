package cpu

// AddrMode names the 6502 addressing modes. It only matters for Read,
// Write, and RMW kinds; the remaining kinds (implied, accumulator,
// branches, jumps, stack ops, BRK, JAM) have their own fixed bus sequences
// and ignore it.
type AddrMode int

const (
	ModeImplied AddrMode = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirectX
	ModeIndirectY
	ModeRelative
	ModeIndirect
)

// Kind groups opcodes by the shape of their bus sequence, orthogonally to
// AddrMode. Addressing supplies the effective address; Kind supplies what
// happens once that address (or no address, for Implied) is in hand.
type Kind int

const (
	KindImplied     Kind = iota // register-only op, no memory access
	KindAccumulator             // operates on AC in place (ASL A, ROR A, ...)
	KindRead                    // load a byte, feed it to an ALU op
	KindWrite                   // produce a byte, store it
	KindRMW                     // read-modify-write: read, dummy write, write
	KindBranch
	KindJumpAbs
	KindJumpInd
	KindJSR
	KindRTS
	KindRTI
	KindPushA
	KindPushP
	KindPullA
	KindPullP
	KindBRK
	KindJAM
)

// OpFunc is the operand-level behavior of an instruction. Its use depends
// on Kind:
//   - KindRead: called with the byte fetched from the effective address;
//     return value is ignored.
//   - KindWrite: called with 0; the return value is the byte to store.
//   - KindRMW, KindAccumulator: called with the byte read (or AC); the
//     return value is the byte written back (or the new AC).
//   - KindImplied: called with 0; return value ignored.
type OpFunc func(c *CPU, v byte) byte

// CondFunc reports whether a branch's condition currently holds.
type CondFunc func(c *CPU) bool

// Entry is everything the micro-step builder needs to know about one opcode
// byte: how it forms an effective address (Mode), what shape of bus
// sequence it runs (Kind), its canonical cycle count with no page-cross or
// branch-taken adjustment, and the operand-level behavior (Fn, or Cond for
// branches).
type Entry struct {
	Mnemonic string
	Mode     AddrMode
	Kind     Kind
	Cycles   int
	Fn       OpFunc
	Cond     CondFunc
}

// Opcodes is the full 256-entry dispatch table, indexed by opcode byte.
// Unlike a generated per-(opcode,substep) switch, the bus sequence for any
// given entry is derived once, at sync time, by combining its Mode and Kind
// (see buildPlan in steps.go) -- this table only records the two
// orthogonal choices (addressing, operation), per opcode.
var Opcodes [256]Entry
