// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io"

	"github.com/ezrec/rim/cpu"
)

// Emulator state. Machine + program image.
type Emulator struct {
	Verbose      bool         // If set, enables verbose logging.
	*cpu.Machine              // Reference to the machine simulation.
	Program      *cpu.Program // Reference to the currently loaded program.
}

// NewEmulator creates a new emulator around a program. A nil program
// is an empty one.
func NewEmulator(prog *cpu.Program) (emu *Emulator) {
	if prog == nil {
		prog = &cpu.Program{}
	}

	emu = &Emulator{
		Machine: cpu.NewMachine(prog),
		Program: prog,
	}

	return
}

// Load reads a program image and rebuilds the machine around it.
func (emu *Emulator) Load(reader io.Reader) (err error) {
	prog, err := cpu.ReadProgram(reader)
	if err != nil {
		return
	}

	emu.Program = prog
	emu.Machine = cpu.NewMachine(prog)

	return
}

// Run executes the program to completion, device halt, or failure
// under the machine's dispatch discipline.
func (emu *Emulator) Run() (err error) {
	if emu.Machine.Dispatch == cpu.DISPATCH_COUNTER {
		var done bool
		for !done {
			done, err = emu.Tick()
			if err != nil {
				return
			}
		}
		return
	}

	emu.Machine.Verbose = emu.Verbose

	err = emu.Machine.Run()
	if err != nil {
		err = &ErrRuntime{Pc: emu.Machine.Pc, Err: err}
	}

	return
}

// Tick performs a single step of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set machine verbosity
	emu.Machine.Verbose = emu.Verbose

	pc := emu.Machine.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Err: err}
		}
	}()

	if emu.Machine.Done() {
		done = true
		return
	}

	var halt bool
	halt, err = emu.Machine.Step()
	if err != nil {
		return
	}

	done = halt || emu.Machine.Done()

	return
}
