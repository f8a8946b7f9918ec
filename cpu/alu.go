package cpu

import "sixtyfive02/mask"

// magicConst is the "unstable" constant several illegal opcodes OR into the
// accumulator before masking (ANE/XAA, LXA). Real silicon's value depends on
// analog bus capacitance and varies by chip revision and temperature; 0xEE
// is the constant most commonly used by emulators that document the
// approximation rather than claim hardware fidelity for these opcodes.
const magicConst byte = 0xEE

func setFlag(c *CPU, flag byte, set bool) {
	if set {
		c.SR |= flag
	} else {
		c.SR &^= flag
	}
}

func setZN(c *CPU, v byte) {
	setFlag(c, flagZ, v == 0)
	setFlag(c, flagN, v&0x80 != 0)
}

// Status returns SR the way an external reader (the debugger, or the CLI
// host's final register dump) sees it: the unused bit always reads as 1
// regardless of what is actually stored there. The PHP and BRK pushes set
// that bit themselves rather than calling Status.
func (c *CPU) Status() byte {
	return mask.Set(c.SR, mask.I3, 1)
}

func adcBinary(c *CPU, v byte) {
	carry := c.SR & flagC
	sum := int(c.AC) + int(v) + int(carry)
	result := byte(sum)
	overflow := (^(c.AC ^ v) & (c.AC ^ result) & 0x80) != 0
	c.AC = result
	setFlag(c, flagC, sum > 0xFF)
	setFlag(c, flagV, overflow)
	setZN(c, result)
}

// adcDecimal implements ADC in BCD mode. Z and N are derived from the
// binary intermediate sum, matching the common documented approximation of
// NMOS BCD behavior (the real chip's N/Z/V after an out-of-range decimal
// digit are a hardware quirk with no single "correct" value).
func adcDecimal(c *CPU, v byte) {
	carry := int(c.SR & flagC)
	binSum := int(c.AC) + int(v) + carry
	binResult := byte(binSum)
	overflow := (^(c.AC ^ v) & (c.AC ^ binResult) & 0x80) != 0

	al := int(c.AC&0x0F) + int(v&0x0F) + carry
	if al > 9 {
		al += 6
	}
	ah := int(c.AC>>4) + int(v>>4)
	if al > 0x0F {
		ah++
		al &= 0x0F
	}
	carryOut := ah > 9
	if carryOut {
		ah += 6
	}
	c.AC = byte((ah<<4)&0xF0 | (al & 0x0F))
	setFlag(c, flagC, carryOut)
	setFlag(c, flagV, overflow)
	setZN(c, binResult)
}

func sbcBinary(c *CPU, v byte) {
	carry := c.SR & flagC
	inv := ^v
	sum := int(c.AC) + int(inv) + int(carry)
	result := byte(sum)
	overflow := (^(c.AC ^ inv) & (c.AC ^ result) & 0x80) != 0
	c.AC = result
	setFlag(c, flagC, sum > 0xFF)
	setFlag(c, flagV, overflow)
	setZN(c, result)
}

// sbcDecimal fixes the source's carry tautology: C is set exactly when the
// unsigned 16-bit subtraction (AC - v - borrow) does not underflow.
func sbcDecimal(c *CPU, v byte) {
	borrowIn := 1 - int(c.SR&flagC)
	binDiff := int(c.AC) - int(v) - borrowIn
	binResult := byte(binDiff)
	overflow := ((c.AC ^ v) & (c.AC ^ binResult) & 0x80) != 0
	carryOut := binDiff >= 0

	al := int(c.AC&0x0F) - int(v&0x0F) - borrowIn
	ah := int(c.AC>>4) - int(v>>4)
	if al < 0 {
		al -= 6
		ah--
	}
	if ah < 0 {
		ah -= 6
	}
	c.AC = byte((ah<<4)&0xF0 | (al & 0x0F))
	setFlag(c, flagC, carryOut)
	setFlag(c, flagV, overflow)
	setZN(c, binResult)
}

func compare(c *CPU, reg, v byte) {
	diff := int(reg) - int(v)
	setFlag(c, flagC, diff >= 0)
	setZN(c, byte(diff))
}

func opADC(c *CPU, v byte) byte {
	if c.BCDEnabled && c.SR&flagD != 0 {
		adcDecimal(c, v)
	} else {
		adcBinary(c, v)
	}
	return 0
}

func opSBC(c *CPU, v byte) byte {
	if c.BCDEnabled && c.SR&flagD != 0 {
		sbcDecimal(c, v)
	} else {
		sbcBinary(c, v)
	}
	return 0
}

func opAND(c *CPU, v byte) byte { c.AC &= v; setZN(c, c.AC); return 0 }
func opORA(c *CPU, v byte) byte { c.AC |= v; setZN(c, c.AC); return 0 }
func opEOR(c *CPU, v byte) byte { c.AC ^= v; setZN(c, c.AC); return 0 }

func opBIT(c *CPU, v byte) byte {
	setFlag(c, flagZ, c.AC&v == 0)
	setFlag(c, flagN, v&0x80 != 0)
	setFlag(c, flagV, v&0x40 != 0)
	return 0
}

func opCMP(c *CPU, v byte) byte { compare(c, c.AC, v); return 0 }
func opCPX(c *CPU, v byte) byte { compare(c, c.X, v); return 0 }
func opCPY(c *CPU, v byte) byte { compare(c, c.Y, v); return 0 }

func opASL(c *CPU, v byte) byte {
	out := v & 0x80 != 0
	res := v << 1
	setFlag(c, flagC, out)
	setZN(c, res)
	return res
}

func opLSR(c *CPU, v byte) byte {
	out := v&1 != 0
	res := v >> 1
	setFlag(c, flagC, out)
	setZN(c, res)
	return res
}

func opROL(c *CPU, v byte) byte {
	in := c.SR & flagC
	out := v & 0x80 != 0
	res := v<<1 | in
	setFlag(c, flagC, out)
	setZN(c, res)
	return res
}

func opROR(c *CPU, v byte) byte {
	in := (c.SR & flagC) << 7
	out := v&1 != 0
	res := v>>1 | in
	setFlag(c, flagC, out)
	setZN(c, res)
	return res
}

func opINC(c *CPU, v byte) byte { res := v + 1; setZN(c, res); return res }
func opDEC(c *CPU, v byte) byte { res := v - 1; setZN(c, res); return res }

func opLDA(c *CPU, v byte) byte { c.AC = v; setZN(c, c.AC); return 0 }
func opLDX(c *CPU, v byte) byte { c.X = v; setZN(c, c.X); return 0 }
func opLDY(c *CPU, v byte) byte { c.Y = v; setZN(c, c.Y); return 0 }

func opSTA(c *CPU, _ byte) byte { return c.AC }
func opSTX(c *CPU, _ byte) byte { return c.X }
func opSTY(c *CPU, _ byte) byte { return c.Y }

func opCLC(c *CPU, _ byte) byte { setFlag(c, flagC, false); return 0 }
func opSEC(c *CPU, _ byte) byte { setFlag(c, flagC, true); return 0 }
func opCLI(c *CPU, _ byte) byte { setFlag(c, flagI, false); return 0 }
func opSEI(c *CPU, _ byte) byte { setFlag(c, flagI, true); return 0 }
func opCLD(c *CPU, _ byte) byte { setFlag(c, flagD, false); return 0 }
func opSED(c *CPU, _ byte) byte { setFlag(c, flagD, true); return 0 }
func opCLV(c *CPU, _ byte) byte { setFlag(c, flagV, false); return 0 }

func opTAX(c *CPU, _ byte) byte { c.X = c.AC; setZN(c, c.X); return 0 }
func opTAY(c *CPU, _ byte) byte { c.Y = c.AC; setZN(c, c.Y); return 0 }
func opTXA(c *CPU, _ byte) byte { c.AC = c.X; setZN(c, c.AC); return 0 }

// opTYA is deliberately AC <- Y: the source this was derived from assigns
// from X instead of Y here, which is wrong (TYA must not touch X).
func opTYA(c *CPU, _ byte) byte { c.AC = c.Y; setZN(c, c.AC); return 0 }

func opTSX(c *CPU, _ byte) byte { c.X = c.SP; setZN(c, c.X); return 0 }
func opTXS(c *CPU, _ byte) byte { c.SP = c.X; return 0 }

func opINX(c *CPU, _ byte) byte { c.X++; setZN(c, c.X); return 0 }
func opINY(c *CPU, _ byte) byte { c.Y++; setZN(c, c.Y); return 0 }
func opDEX(c *CPU, _ byte) byte { c.X--; setZN(c, c.X); return 0 }
func opDEY(c *CPU, _ byte) byte { c.Y--; setZN(c, c.Y); return 0 }

func opNOP(c *CPU, _ byte) byte     { return 0 }
func opNOPRead(c *CPU, _ byte) byte { return 0 }

// Undocumented opcodes below. Each is grounded in the commonly documented
// NMOS behavior (as tabulated by the 6502 illegal-opcode references every
// emulator in this space converges on), not in an original-source port.

func opSLO(c *CPU, v byte) byte { res := opASL(c, v); c.AC |= res; setZN(c, c.AC); return res }
func opRLA(c *CPU, v byte) byte { res := opROL(c, v); c.AC &= res; setZN(c, c.AC); return res }
func opSRE(c *CPU, v byte) byte { res := opLSR(c, v); c.AC ^= res; setZN(c, c.AC); return res }
func opRRA(c *CPU, v byte) byte { res := opROR(c, v); opADC(c, res); return res }

func opSAX(c *CPU, _ byte) byte { return c.AC & c.X }
func opLAX(c *CPU, v byte) byte { c.AC = v; c.X = v; setZN(c, v); return 0 }

func opDCP(c *CPU, v byte) byte { res := v - 1; compare(c, c.AC, res); return res }
func opISC(c *CPU, v byte) byte { res := v + 1; opSBC(c, res); return res }

func opANC(c *CPU, v byte) byte {
	c.AC &= v
	setZN(c, c.AC)
	setFlag(c, flagC, c.AC&0x80 != 0)
	return 0
}

func opALR(c *CPU, v byte) byte {
	c.AC &= v
	c.AC = opLSR(c, c.AC)
	return 0
}

func opARR(c *CPU, v byte) byte {
	c.AC &= v
	in := (c.SR & flagC) << 7
	res := c.AC>>1 | in
	c.AC = res
	setZN(c, res)
	setFlag(c, flagC, res&0x40 != 0)
	setFlag(c, flagV, (res&0x40 != 0) != (res&0x20 != 0))
	return 0
}

func opANE(c *CPU, v byte) byte {
	c.AC = (c.AC | magicConst) & c.X & v
	setZN(c, c.AC)
	return 0
}

func opLXA(c *CPU, v byte) byte {
	c.AC = (c.AC | magicConst) & v
	c.X = c.AC
	setZN(c, c.AC)
	return 0
}

func opSBX(c *CPU, v byte) byte {
	t := c.AC & c.X
	diff := int(t) - int(v)
	c.X = byte(diff)
	setFlag(c, flagC, diff >= 0)
	setZN(c, c.X)
	return 0
}

// opSHA/opSHX/opSHY/opSHS are the famously unstable "high-byte AND" store
// family. The documented approximation ANDs the stored value with
// (high-address-byte + 1); ADH is the scratch high-byte latch the
// addressing prelude left behind for this cycle's effective address.
func opSHA(c *CPU, _ byte) byte { return c.AC & c.X & (c.ADH + 1) }
func opSHX(c *CPU, _ byte) byte { return c.X & (c.ADH + 1) }
func opSHY(c *CPU, _ byte) byte { return c.Y & (c.ADH + 1) }
func opSHS(c *CPU, _ byte) byte {
	c.SP = c.AC & c.X
	return c.SP & (c.ADH + 1)
}

func opLAS(c *CPU, v byte) byte {
	v &= c.SP
	c.AC, c.X, c.SP = v, v, v
	setZN(c, v)
	return 0
}
