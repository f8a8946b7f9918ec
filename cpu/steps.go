package cpu

import "fmt"

// step is one bus cycle's worth of behavior: consume in.Data as the response
// to whatever the previous step requested, mutate CPU state accordingly, and
// drive out to describe the access for the cycle after this one. The final
// step of every plan except JAM's (see planJAM) sets out.Sync so the
// following Tick recognizes an opcode fetch and rebuilds the plan.
type step func(c *CPU, in Pins, out Pins) Pins

// buildPlan turns one decoded opcode into its bus sequence. It runs once per
// instruction, at the sync cycle, before any of the instruction's own
// operand bytes have been read -- which is why addressing modes whose cycle
// count depends on a runtime page-cross (AbsoluteX/Y, IndirectY reads) build
// the worst-case-length plan and skip a step at runtime instead of varying
// len(plan) here.
func (c *CPU) buildPlan(opcode byte, interrupting bool) []step {
	e := Opcodes[opcode]
	switch e.Kind {
	case KindImplied:
		return planImplied(e.Fn)
	case KindAccumulator:
		return planAccumulator(e.Fn)
	case KindRead:
		return planForMode(e.Mode, KindRead, e.Fn)
	case KindWrite:
		return planForMode(e.Mode, KindWrite, e.Fn)
	case KindRMW:
		return planForMode(e.Mode, KindRMW, e.Fn)
	case KindBranch:
		return c.planBranch(e.Cond)
	case KindJumpAbs:
		return planJumpAbs()
	case KindJumpInd:
		return planJumpInd()
	case KindJSR:
		return planJSR()
	case KindRTS:
		return planRTS()
	case KindRTI:
		return planRTI()
	case KindPushA:
		return planPushA()
	case KindPushP:
		return planPushP()
	case KindPullA:
		return planPullA()
	case KindPullP:
		return planPullP()
	case KindBRK:
		return planBRK()
	case KindJAM:
		return planJAM()
	default:
		panic(fmt.Sprintf("cpu: opcode %#02x has no Kind (table gap)", opcode))
	}
}

// planForMode dispatches the Read/Write/RMW kinds across addressing modes.
// Implied/Accumulator and the control-flow kinds have their own builders and
// never reach here.
func planForMode(mode AddrMode, kind Kind, fn OpFunc) []step {
	switch mode {
	case ModeImmediate:
		return planImmediate(fn)
	case ModeZeroPage:
		return planZeroPage(kind, fn)
	case ModeZeroPageX:
		return planZeroPageIndexed(regX, kind, fn)
	case ModeZeroPageY:
		return planZeroPageIndexed(regY, kind, fn)
	case ModeAbsolute:
		return planAbsolute(kind, fn)
	case ModeAbsoluteX:
		return planAbsoluteIndexed(regX, kind, fn)
	case ModeAbsoluteY:
		return planAbsoluteIndexed(regY, kind, fn)
	case ModeIndirectX:
		return planIndirectX(kind, fn)
	case ModeIndirectY:
		return planIndirectY(kind, fn)
	default:
		panic(fmt.Sprintf("cpu: addressing mode %d has no micro-step builder", mode))
	}
}

// register selector for the indexed zero-page/absolute builders, so one
// implementation serves both the X- and Y-indexed variants.
type regSel func(c *CPU) byte

func regX(c *CPU) byte { return c.X }
func regY(c *CPU) byte { return c.Y }

// --- Implied / Accumulator ---------------------------------------------

func planImplied(fn OpFunc) []step {
	return []step{
		func(c *CPU, in, out Pins) Pins {
			return in.fetch(c.PC)
		},
		func(c *CPU, in, out Pins) Pins {
			fn(c, 0)
			return in.fetchOpcode(c.PC)
		},
	}
}

func planAccumulator(fn OpFunc) []step {
	return []step{
		func(c *CPU, in, out Pins) Pins {
			return in.fetch(c.PC)
		},
		func(c *CPU, in, out Pins) Pins {
			c.AC = fn(c, c.AC)
			return in.fetchOpcode(c.PC)
		},
	}
}

// --- Immediate ------------------------------------------------------------

func planImmediate(fn OpFunc) []step {
	return []step{
		func(c *CPU, in, out Pins) Pins {
			return in.fetch(c.PC)
		},
		func(c *CPU, in, out Pins) Pins {
			c.M = in.Data
			c.PC++
			fn(c, c.M)
			return in.fetchOpcode(c.PC)
		},
	}
}

// --- Zero page --------------------------------------------------------

func planZeroPage(kind Kind, fn OpFunc) []step {
	switch kind {
	case KindRead:
		return []step{
			func(c *CPU, in, out Pins) Pins { return in.fetch(c.PC) },
			func(c *CPU, in, out Pins) Pins {
				c.ADL = in.Data
				c.PC++
				return in.fetch(uint16(c.ADL))
			},
			func(c *CPU, in, out Pins) Pins {
				c.M = in.Data
				fn(c, c.M)
				return in.fetchOpcode(c.PC)
			},
		}
	case KindWrite:
		return []step{
			func(c *CPU, in, out Pins) Pins { return in.fetch(c.PC) },
			func(c *CPU, in, out Pins) Pins {
				c.ADL = in.Data
				c.PC++
				v := fn(c, 0)
				return in.store(uint16(c.ADL), v)
			},
			func(c *CPU, in, out Pins) Pins { return in.fetchOpcode(c.PC) },
		}
	case KindRMW:
		return []step{
			func(c *CPU, in, out Pins) Pins { return in.fetch(c.PC) },
			func(c *CPU, in, out Pins) Pins {
				c.ADL = in.Data
				c.PC++
				return in.fetch(uint16(c.ADL))
			},
			func(c *CPU, in, out Pins) Pins {
				c.M = in.Data
				return in.store(uint16(c.ADL), c.M)
			},
			func(c *CPU, in, out Pins) Pins {
				c.M = fn(c, c.M)
				return in.store(uint16(c.ADL), c.M)
			},
			func(c *CPU, in, out Pins) Pins { return in.fetchOpcode(c.PC) },
		}
	default:
		panic("cpu: zero page addressing used with a non-memory kind")
	}
}

func planZeroPageIndexed(reg regSel, kind Kind, fn OpFunc) []step {
	switch kind {
	case KindRead:
		return []step{
			func(c *CPU, in, out Pins) Pins { return in.fetch(c.PC) },
			func(c *CPU, in, out Pins) Pins {
				c.ADL = in.Data
				c.PC++
				return in.fetch(uint16(c.ADL)) // dummy read at unindexed base
			},
			func(c *CPU, in, out Pins) Pins {
				c.ADL = c.ADL + reg(c)
				return in.fetch(uint16(c.ADL))
			},
			func(c *CPU, in, out Pins) Pins {
				c.M = in.Data
				fn(c, c.M)
				return in.fetchOpcode(c.PC)
			},
		}
	case KindWrite:
		return []step{
			func(c *CPU, in, out Pins) Pins { return in.fetch(c.PC) },
			func(c *CPU, in, out Pins) Pins {
				c.ADL = in.Data
				c.PC++
				return in.fetch(uint16(c.ADL))
			},
			func(c *CPU, in, out Pins) Pins {
				c.ADL = c.ADL + reg(c)
				v := fn(c, 0)
				return in.store(uint16(c.ADL), v)
			},
			func(c *CPU, in, out Pins) Pins { return in.fetchOpcode(c.PC) },
		}
	case KindRMW:
		return []step{
			func(c *CPU, in, out Pins) Pins { return in.fetch(c.PC) },
			func(c *CPU, in, out Pins) Pins {
				c.ADL = in.Data
				c.PC++
				return in.fetch(uint16(c.ADL))
			},
			func(c *CPU, in, out Pins) Pins {
				c.ADL = c.ADL + reg(c)
				return in.fetch(uint16(c.ADL))
			},
			func(c *CPU, in, out Pins) Pins {
				c.M = in.Data
				return in.store(uint16(c.ADL), c.M)
			},
			func(c *CPU, in, out Pins) Pins {
				c.M = fn(c, c.M)
				return in.store(uint16(c.ADL), c.M)
			},
			func(c *CPU, in, out Pins) Pins { return in.fetchOpcode(c.PC) },
		}
	default:
		panic("cpu: indexed zero page addressing used with a non-memory kind")
	}
}

// --- Absolute -----------------------------------------------------------

func planAbsolute(kind Kind, fn OpFunc) []step {
	fetchLoHi := []step{
		func(c *CPU, in, out Pins) Pins { return in.fetch(c.PC) },
		func(c *CPU, in, out Pins) Pins {
			c.ADL = in.Data
			c.PC++
			return in.fetch(c.PC)
		},
	}
	switch kind {
	case KindRead:
		return append(fetchLoHi,
			func(c *CPU, in, out Pins) Pins {
				c.ADH = in.Data
				c.PC++
				return in.fetch(uint16(c.ADH)<<8 | uint16(c.ADL))
			},
			func(c *CPU, in, out Pins) Pins {
				c.M = in.Data
				fn(c, c.M)
				return in.fetchOpcode(c.PC)
			},
		)
	case KindWrite:
		return append(fetchLoHi,
			func(c *CPU, in, out Pins) Pins {
				c.ADH = in.Data
				c.PC++
				v := fn(c, 0)
				return in.store(uint16(c.ADH)<<8|uint16(c.ADL), v)
			},
			func(c *CPU, in, out Pins) Pins { return in.fetchOpcode(c.PC) },
		)
	case KindRMW:
		return append(fetchLoHi,
			func(c *CPU, in, out Pins) Pins {
				c.ADH = in.Data
				c.PC++
				return in.fetch(uint16(c.ADH)<<8 | uint16(c.ADL))
			},
			func(c *CPU, in, out Pins) Pins {
				c.M = in.Data
				return in.store(uint16(c.ADH)<<8|uint16(c.ADL), c.M)
			},
			func(c *CPU, in, out Pins) Pins {
				c.M = fn(c, c.M)
				return in.store(uint16(c.ADH)<<8|uint16(c.ADL), c.M)
			},
			func(c *CPU, in, out Pins) Pins { return in.fetchOpcode(c.PC) },
		)
	default:
		panic("cpu: absolute addressing used with a non-memory kind")
	}
}

// planAbsoluteIndexed builds the base+hi fetch followed by an indexed
// access. Reads get the page-cross shortcut (see the first step after the
// prelude);
// writes and RMW always pay the corrected-address cycle, since they must
// never touch the wrong address even speculatively... except that, on real
// silicon, they do: the dummy access at the uncorrected address still
// happens, it is just never the one that carries the real read/write.
func planAbsoluteIndexed(reg regSel, kind Kind, fn OpFunc) []step {
	prelude := []step{
		func(c *CPU, in, out Pins) Pins { return in.fetch(c.PC) },
		func(c *CPU, in, out Pins) Pins {
			c.ADL = in.Data
			c.PC++
			return in.fetch(c.PC)
		},
	}
	switch kind {
	case KindRead:
		return append(prelude,
			func(c *CPU, in, out Pins) Pins {
				c.ADH = in.Data
				c.PC++
				low := int(c.ADL) + int(reg(c))
				c.ADL = byte(low)
				addr := uint16(c.ADH)<<8 | uint16(c.ADL)
				out = in.fetch(addr)
				if low <= 0xFF {
					c.IR++ // no page cross: this read is already the real one
				}
				return out
			},
			func(c *CPU, in, out Pins) Pins { // fixup, only reached on page cross
				c.ADH++
				return in.fetch(uint16(c.ADH)<<8 | uint16(c.ADL))
			},
			func(c *CPU, in, out Pins) Pins {
				c.M = in.Data
				fn(c, c.M)
				return in.fetchOpcode(c.PC)
			},
		)
	case KindWrite:
		return append(prelude,
			func(c *CPU, in, out Pins) Pins {
				c.ADH = in.Data
				c.PC++
				low := int(c.ADL) + int(reg(c))
				c.branchFixup = low > 0xFF // reused here as a plain carry flag
				c.ADL = byte(low)
				return in.fetch(uint16(c.ADH)<<8 | uint16(c.ADL))
			},
			func(c *CPU, in, out Pins) Pins {
				// fn runs against the uncorrected high byte: SHA/SHX/SHY/SHS
				// (cpu/alu.go) fold their own +1 into the unstable "AND with
				// high-byte+1" formula, and that formula is defined in terms
				// of the high byte before any page-cross carry is resolved.
				v := fn(c, 0)
				addrHi := c.ADH
				if c.branchFixup {
					addrHi++
				}
				return in.store(uint16(addrHi)<<8|uint16(c.ADL), v)
			},
			func(c *CPU, in, out Pins) Pins { return in.fetchOpcode(c.PC) },
		)
	case KindRMW:
		return append(prelude,
			func(c *CPU, in, out Pins) Pins {
				c.ADH = in.Data
				c.PC++
				low := int(c.ADL) + int(reg(c))
				c.branchFixup = low > 0xFF
				c.ADL = byte(low)
				return in.fetch(uint16(c.ADH)<<8 | uint16(c.ADL))
			},
			func(c *CPU, in, out Pins) Pins {
				if c.branchFixup {
					c.ADH++
				}
				return in.fetch(uint16(c.ADH)<<8 | uint16(c.ADL))
			},
			func(c *CPU, in, out Pins) Pins {
				c.M = in.Data
				return in.store(uint16(c.ADH)<<8|uint16(c.ADL), c.M)
			},
			func(c *CPU, in, out Pins) Pins {
				c.M = fn(c, c.M)
				return in.store(uint16(c.ADH)<<8|uint16(c.ADL), c.M)
			},
			func(c *CPU, in, out Pins) Pins { return in.fetchOpcode(c.PC) },
		)
	default:
		panic("cpu: absolute-indexed addressing used with a non-memory kind")
	}
}

// --- (zp,X) / (zp),Y ------------------------------------------------------

func planIndirectX(kind Kind, fn OpFunc) []step {
	prelude := []step{
		func(c *CPU, in, out Pins) Pins { return in.fetch(c.PC) },
		func(c *CPU, in, out Pins) Pins {
			c.ADL = in.Data
			c.PC++
			return in.fetch(uint16(c.ADL)) // dummy read at unindexed pointer
		},
		func(c *CPU, in, out Pins) Pins {
			c.ADL = c.ADL + c.X
			return in.fetch(uint16(c.ADL))
		},
		func(c *CPU, in, out Pins) Pins {
			c.M = in.Data // pointer low byte, stashed
			return in.fetch(uint16(c.ADL + 1))
		},
	}
	switch kind {
	case KindRead:
		return append(prelude,
			func(c *CPU, in, out Pins) Pins {
				c.ADH = in.Data
				return in.fetch(uint16(c.ADH)<<8 | uint16(c.M))
			},
			func(c *CPU, in, out Pins) Pins {
				c.M = in.Data
				fn(c, c.M)
				return in.fetchOpcode(c.PC)
			},
		)
	case KindWrite:
		return append(prelude,
			func(c *CPU, in, out Pins) Pins {
				c.ADH = in.Data
				v := fn(c, 0)
				return in.store(uint16(c.ADH)<<8|uint16(c.M), v)
			},
			func(c *CPU, in, out Pins) Pins { return in.fetchOpcode(c.PC) },
		)
	case KindRMW:
		return append(prelude,
			func(c *CPU, in, out Pins) Pins {
				c.ADH = in.Data
				c.ADL = c.M // low byte of the effective address, for reuse below
				return in.fetch(uint16(c.ADH)<<8 | uint16(c.ADL))
			},
			func(c *CPU, in, out Pins) Pins {
				c.M = in.Data
				return in.store(uint16(c.ADH)<<8|uint16(c.ADL), c.M)
			},
			func(c *CPU, in, out Pins) Pins {
				c.M = fn(c, c.M)
				return in.store(uint16(c.ADH)<<8|uint16(c.ADL), c.M)
			},
			func(c *CPU, in, out Pins) Pins { return in.fetchOpcode(c.PC) },
		)
	default:
		panic("cpu: (zp,X) addressing used with a non-memory kind")
	}
}

func planIndirectY(kind Kind, fn OpFunc) []step {
	prelude := []step{
		func(c *CPU, in, out Pins) Pins { return in.fetch(c.PC) },
		func(c *CPU, in, out Pins) Pins {
			c.ADL = in.Data
			c.PC++
			return in.fetch(uint16(c.ADL))
		},
		func(c *CPU, in, out Pins) Pins {
			c.M = in.Data // pointer low byte
			return in.fetch(uint16(c.ADL + 1))
		},
	}
	switch kind {
	case KindRead:
		return append(prelude,
			func(c *CPU, in, out Pins) Pins {
				c.ADH = in.Data // pointer's stored high byte, base page
				low := int(c.M) + int(c.Y)
				c.ADL = byte(low)
				addr := uint16(c.ADH)<<8 | uint16(c.ADL)
				out = in.fetch(addr)
				if low <= 0xFF {
					c.IR++
				}
				return out
			},
			func(c *CPU, in, out Pins) Pins { // fixup, only on page cross
				c.ADH++
				return in.fetch(uint16(c.ADH)<<8 | uint16(c.ADL))
			},
			func(c *CPU, in, out Pins) Pins {
				c.M = in.Data
				fn(c, c.M)
				return in.fetchOpcode(c.PC)
			},
		)
	case KindWrite:
		return append(prelude,
			func(c *CPU, in, out Pins) Pins {
				c.ADH = in.Data
				low := int(c.M) + int(c.Y)
				c.branchFixup = low > 0xFF
				c.ADL = byte(low)
				return in.fetch(uint16(c.ADH)<<8 | uint16(c.ADL))
			},
			func(c *CPU, in, out Pins) Pins {
				// fn runs against the uncorrected high byte: SHA/SHX/SHY/SHS
				// (cpu/alu.go) fold their own +1 into the unstable "AND with
				// high-byte+1" formula, and that formula is defined in terms
				// of the high byte before any page-cross carry is resolved.
				v := fn(c, 0)
				addrHi := c.ADH
				if c.branchFixup {
					addrHi++
				}
				return in.store(uint16(addrHi)<<8|uint16(c.ADL), v)
			},
			func(c *CPU, in, out Pins) Pins { return in.fetchOpcode(c.PC) },
		)
	case KindRMW:
		return append(prelude,
			func(c *CPU, in, out Pins) Pins {
				c.ADH = in.Data
				low := int(c.M) + int(c.Y)
				c.branchFixup = low > 0xFF
				c.ADL = byte(low)
				return in.fetch(uint16(c.ADH)<<8 | uint16(c.ADL))
			},
			func(c *CPU, in, out Pins) Pins {
				if c.branchFixup {
					c.ADH++
				}
				return in.fetch(uint16(c.ADH)<<8 | uint16(c.ADL))
			},
			func(c *CPU, in, out Pins) Pins {
				c.M = in.Data
				return in.store(uint16(c.ADH)<<8|uint16(c.ADL), c.M)
			},
			func(c *CPU, in, out Pins) Pins {
				c.M = fn(c, c.M)
				return in.store(uint16(c.ADH)<<8|uint16(c.ADL), c.M)
			},
			func(c *CPU, in, out Pins) Pins { return in.fetchOpcode(c.PC) },
		)
	default:
		panic("cpu: (zp),Y addressing used with a non-memory kind")
	}
}

// --- Branch ---------------------------------------------------------------

// planBranch builds the 2-, 3-, or 4-cycle relative sequence. Cond is
// evaluated once, at decode time, since nothing during a branch's own bus
// cycles changes the flags it tests. Whether a page is crossed cannot be
// known until the offset byte and the (already-incremented) PC are both in
// hand, so that decision happens one cycle later, inside the sequence.
func (c *CPU) planBranch(cond CondFunc) []step {
	if !cond(c) {
		return []step{
			func(c *CPU, in, out Pins) Pins { return in.fetch(c.PC) },
			func(c *CPU, in, out Pins) Pins {
				c.PC++
				return in.fetchOpcode(c.PC)
			},
		}
	}
	return []step{
		func(c *CPU, in, out Pins) Pins { return in.fetch(c.PC) },
		func(c *CPU, in, out Pins) Pins {
			offset := int8(in.Data)
			c.PC++
			low := int(byte(c.PC)) + int(offset)
			c.ADL = byte(low)
			c.ADH = byte(c.PC >> 8)
			c.branchCrossed = low < 0 || low > 0xFF
			c.branchFixup = low > 0xFF
			return in.fetch(uint16(c.ADH)<<8 | uint16(c.ADL))
		},
		func(c *CPU, in, out Pins) Pins {
			if !c.branchCrossed {
				c.PC = uint16(c.ADH)<<8 | uint16(c.ADL)
				c.branchInhibit = true
				return in.fetchOpcode(c.PC)
			}
			if c.branchFixup {
				c.ADH++
			} else {
				c.ADH--
			}
			return in.fetch(uint16(c.ADH)<<8 | uint16(c.ADL))
		},
		func(c *CPU, in, out Pins) Pins { // reached only when crossed
			c.PC = uint16(c.ADH)<<8 | uint16(c.ADL)
			return in.fetchOpcode(c.PC)
		},
	}
}

// --- Jumps ------------------------------------------------------------

func planJumpAbs() []step {
	return []step{
		func(c *CPU, in, out Pins) Pins { return in.fetch(c.PC) },
		func(c *CPU, in, out Pins) Pins {
			c.ADL = in.Data
			c.PC++
			return in.fetch(c.PC)
		},
		func(c *CPU, in, out Pins) Pins {
			c.ADH = in.Data
			c.PC = uint16(c.ADH)<<8 | uint16(c.ADL)
			return in.fetchOpcode(c.PC)
		},
	}
}

// planJumpInd reproduces the NMOS indirect-pointer page-wrap defect: when
// the pointer's low byte is 0xFF, the high byte is fetched from the start of
// the same page, not the next one.
func planJumpInd() []step {
	return []step{
		func(c *CPU, in, out Pins) Pins { return in.fetch(c.PC) },
		func(c *CPU, in, out Pins) Pins {
			c.ADL = in.Data
			c.PC++
			return in.fetch(c.PC)
		},
		func(c *CPU, in, out Pins) Pins {
			c.ADH = in.Data
			c.PC++
			return in.fetch(uint16(c.ADH)<<8 | uint16(c.ADL))
		},
		func(c *CPU, in, out Pins) Pins {
			c.M = in.Data
			return in.fetch(uint16(c.ADH)<<8 | uint16(c.ADL+1))
		},
		func(c *CPU, in, out Pins) Pins {
			c.PC = uint16(in.Data)<<8 | uint16(c.M)
			return in.fetchOpcode(c.PC)
		},
	}
}

func planJSR() []step {
	return []step{
		func(c *CPU, in, out Pins) Pins { return in.fetch(c.PC) },
		func(c *CPU, in, out Pins) Pins {
			c.ADL = in.Data
			c.PC++
			return in.fetch(0x0100 | uint16(c.SP)) // internal stack peek
		},
		func(c *CPU, in, out Pins) Pins {
			out = in.store(0x0100|uint16(c.SP), byte(c.PC>>8))
			c.SP--
			return out
		},
		func(c *CPU, in, out Pins) Pins {
			out = in.store(0x0100|uint16(c.SP), byte(c.PC))
			c.SP--
			return out
		},
		func(c *CPU, in, out Pins) Pins { return in.fetch(c.PC) },
		func(c *CPU, in, out Pins) Pins {
			c.PC = uint16(in.Data)<<8 | uint16(c.ADL)
			return in.fetchOpcode(c.PC)
		},
	}
}

func planRTS() []step {
	return []step{
		func(c *CPU, in, out Pins) Pins { return in.fetch(c.PC) },
		func(c *CPU, in, out Pins) Pins { return in.fetch(0x0100 | uint16(c.SP)) },
		func(c *CPU, in, out Pins) Pins {
			c.SP++
			return in.fetch(0x0100 | uint16(c.SP))
		},
		func(c *CPU, in, out Pins) Pins {
			c.M = in.Data
			c.SP++
			return in.fetch(0x0100 | uint16(c.SP))
		},
		func(c *CPU, in, out Pins) Pins {
			c.PC = uint16(in.Data)<<8 | uint16(c.M)
			return in.fetch(c.PC)
		},
		func(c *CPU, in, out Pins) Pins {
			c.PC++
			return in.fetchOpcode(c.PC)
		},
	}
}

func planRTI() []step {
	return []step{
		func(c *CPU, in, out Pins) Pins { return in.fetch(c.PC) },
		func(c *CPU, in, out Pins) Pins { return in.fetch(0x0100 | uint16(c.SP)) },
		func(c *CPU, in, out Pins) Pins {
			c.SP++
			return in.fetch(0x0100 | uint16(c.SP))
		},
		func(c *CPU, in, out Pins) Pins {
			c.SR = in.Data &^ (flagB | flagX)
			c.SP++
			return in.fetch(0x0100 | uint16(c.SP))
		},
		func(c *CPU, in, out Pins) Pins {
			c.M = in.Data
			c.SP++
			return in.fetch(0x0100 | uint16(c.SP))
		},
		func(c *CPU, in, out Pins) Pins {
			c.PC = uint16(in.Data)<<8 | uint16(c.M)
			return in.fetchOpcode(c.PC)
		},
	}
}

// --- Stack ops --------------------------------------------------------

func planPushA() []step {
	return []step{
		func(c *CPU, in, out Pins) Pins { return in.fetch(c.PC) },
		func(c *CPU, in, out Pins) Pins {
			out = in.store(0x0100|uint16(c.SP), c.AC)
			c.SP--
			return out
		},
		func(c *CPU, in, out Pins) Pins { return in.fetchOpcode(c.PC) },
	}
}

func planPushP() []step {
	return []step{
		func(c *CPU, in, out Pins) Pins { return in.fetch(c.PC) },
		func(c *CPU, in, out Pins) Pins {
			out = in.store(0x0100|uint16(c.SP), c.SR|flagB|flagX)
			c.SP--
			return out
		},
		func(c *CPU, in, out Pins) Pins { return in.fetchOpcode(c.PC) },
	}
}

func planPullA() []step {
	return []step{
		func(c *CPU, in, out Pins) Pins { return in.fetch(c.PC) },
		func(c *CPU, in, out Pins) Pins { return in.fetch(0x0100 | uint16(c.SP)) },
		func(c *CPU, in, out Pins) Pins {
			c.SP++
			return in.fetch(0x0100 | uint16(c.SP))
		},
		func(c *CPU, in, out Pins) Pins {
			c.AC = in.Data
			setZN(c, c.AC)
			return in.fetchOpcode(c.PC)
		},
	}
}

func planPullP() []step {
	return []step{
		func(c *CPU, in, out Pins) Pins { return in.fetch(c.PC) },
		func(c *CPU, in, out Pins) Pins { return in.fetch(0x0100 | uint16(c.SP)) },
		func(c *CPU, in, out Pins) Pins {
			c.SP++
			return in.fetch(0x0100 | uint16(c.SP))
		},
		func(c *CPU, in, out Pins) Pins {
			c.SR = in.Data &^ (flagB | flagX)
			return in.fetchOpcode(c.PC)
		},
	}
}

// --- BRK / hardware interrupts ------------------------------------------

func vectorFor(flags byte) uint16 {
	switch {
	case flags&brkRESET != 0:
		return 0xFFFC
	case flags&brkNMI != 0:
		return 0xFFFA
	default:
		return 0xFFFE
	}
}

// planBRK serves both software BRK (opcode 0x00, BRKFlags == 0) and the
// RESET/NMI/IRQ sequences Tick forces onto opcode 0x00 at sync time: all
// four are the same seven-cycle "push state, fetch vector" shape, differing
// only in whether software BRK skips its padding byte, whether the pushes
// actually write (suppressed on RESET), what the pushed status's B bit reads
// as, and which vector vectorFor selects.
func planBRK() []step {
	return []step{
		func(c *CPU, in, out Pins) Pins {
			out = in.fetch(c.PC)
			if c.BRKFlags == 0 {
				c.PC++ // software BRK consumes its padding byte
			}
			return out
		},
		func(c *CPU, in, out Pins) Pins {
			addr := 0x0100 | uint16(c.SP)
			if c.BRKFlags&brkRESET != 0 {
				out = in.fetch(addr)
			} else {
				out = in.store(addr, byte(c.PC>>8))
			}
			c.SP--
			return out
		},
		func(c *CPU, in, out Pins) Pins {
			addr := 0x0100 | uint16(c.SP)
			if c.BRKFlags&brkRESET != 0 {
				out = in.fetch(addr)
			} else {
				out = in.store(addr, byte(c.PC))
			}
			c.SP--
			return out
		},
		func(c *CPU, in, out Pins) Pins {
			addr := 0x0100 | uint16(c.SP)
			pushed := c.SR | flagX
			if c.BRKFlags&(brkIRQ|brkNMI) != 0 {
				pushed &^= flagB
			} else {
				pushed |= flagB
			}
			if c.BRKFlags&brkRESET != 0 {
				out = in.fetch(addr)
			} else {
				out = in.store(addr, pushed)
			}
			c.SP--
			setFlag(c, flagI, true)
			return out
		},
		func(c *CPU, in, out Pins) Pins {
			vec := vectorFor(c.BRKFlags)
			c.ADL = byte(vec)
			c.ADH = byte(vec >> 8)
			return in.fetch(vec)
		},
		func(c *CPU, in, out Pins) Pins {
			c.M = in.Data
			return in.fetch(uint16(c.ADH)<<8 | uint16(c.ADL+1))
		},
		func(c *CPU, in, out Pins) Pins {
			c.PC = uint16(in.Data)<<8 | uint16(c.M)
			return in.fetchOpcode(c.PC)
		},
	}
}

// planJAM freezes the CPU: the single step re-asserts itself forever by
// cancelling Tick's own substep increment. The step never asserts Sync, and
// Tick samples Res only on a sync cycle, so not even RESET recovers a jammed
// CPU here.
func planJAM() []step {
	return []step{
		func(c *CPU, in, out Pins) Pins {
			c.IR--
			out.RW = Read
			out.Sync = false
			return out
		},
	}
}
