package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"sixtyfive02/cpu"
	"sixtyfive02/mem"
)

func main() {
	app := &cli.App{
		Name:  "sixtyfive02",
		Usage: "run or step a MOS 6502 program against a memory-mapped bus",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "rom",
				Aliases:  []string{"r"},
				Usage:    "binary file loaded at --load-addr",
				Required: true,
			},
			&cli.UintFlag{
				Name:  "load-addr",
				Usage: "address the ROM image is mapped at",
				Value: 0x8000,
			},
			&cli.UintFlag{
				Name:  "reset-vector",
				Usage: "override the RESET vector (defaults to --load-addr)",
			},
			&cli.UintFlag{
				Name:  "nmi-vector",
				Usage: "NMI vector",
				Value: 0xFFFA,
			},
			&cli.UintFlag{
				Name:  "irq-vector",
				Usage: "IRQ/BRK vector",
				Value: 0xFFFE,
			},
			&cli.BoolFlag{
				Name:  "bcd",
				Usage: "enable decimal mode for ADC/SBC",
			},
			&cli.IntFlag{
				Name:  "cycles",
				Usage: "number of ticks to run before stopping; 0 runs the interactive debugger instead",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	data, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("reading rom: %w", err)
	}

	loadAddr := uint16(c.Uint("load-addr"))
	resetVector := uint16(c.Uint("reset-vector"))
	if !c.IsSet("reset-vector") {
		resetVector = loadAddr
	}
	nmiVector := uint16(c.Uint("nmi-vector"))
	irqVector := uint16(c.Uint("irq-vector"))

	ram := mem.NewRAM(0, 0xFFFA)
	rom := mem.NewROM(loadAddr, data)
	vectors := mem.NewVectorROM(nmiVector, resetVector, irqVector)
	// rom must be registered ahead of ram: Bus.Read returns the first
	// device that claims an address, and ram claims everything in
	// [0, 0xFFFA) regardless of whether it was ever written, which would
	// otherwise shadow the loaded image.
	bus := mem.NewBus(rom, ram, vectors)

	core := cpu.New(c.Bool("bcd"))

	if c.Int("cycles") == 0 {
		return cpu.Debug(core, bus)
	}

	pins := cpu.NewPins()
	for i := 0; i < c.Int("cycles"); i++ {
		out := core.Tick(pins)
		if out.RW == cpu.Read {
			out.Data = bus.Read(out.Address)
		} else {
			bus.Write(out.Address, out.Data)
		}
		pins = out
		pins.Res = false
	}

	fmt.Printf("PC=%04x AC=%02x X=%02x Y=%02x SP=%02x SR=%02x\n",
		core.PC, core.AC, core.X, core.Y, core.SP, core.Status())
	return nil
}
