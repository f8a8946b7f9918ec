package mem

// Bus is an ordered collection of Devices forming one 16-bit address space.
// Reads try each device in registration order and return the first one that
// claims the address; writes are broadcast to every device, and every
// error a device reports -- not-writable, invalid-address -- is absorbed
// here, matching real hardware's total absence of a bus-error concept.
// Devices may overlap ranges; read priority then follows registration
// order, and a write reaches all of them regardless.
type Bus struct {
	devices []Device
}

// NewBus assembles a Bus from devices in the given priority order.
func NewBus(devices ...Device) *Bus {
	return &Bus{devices: devices}
}

// Attach appends a device, given lowest read priority among those already
// present.
func (b *Bus) Attach(d Device) {
	b.devices = append(b.devices, d)
}

// Read returns the first device's answer for addr, or 0 if none claims it --
// an implementation-defined but stable value, per spec.md §4.1's failure
// semantics for an unmapped access.
func (b *Bus) Read(addr uint16) byte {
	for _, d := range b.devices {
		if v, ok := d.Read(addr); ok {
			return v
		}
	}
	return 0
}

// Write broadcasts data to every device; each device's error, if any, is
// discarded, since the CPU core has no way to observe a bus error and a
// host has no meaningful recovery to attempt on its behalf.
func (b *Bus) Write(addr uint16, data byte) {
	for _, d := range b.devices {
		_ = d.Write(addr, data)
	}
}
