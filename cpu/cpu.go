package cpu

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
)

// DATA_SIZE is the size of the data segment, in bytes.
const DATA_SIZE = 4096

// Dispatch selects how Run walks the program.
type Dispatch int

//go:generate go tool stringer -linecomment -type=Dispatch
const (
	// Position counter indexes the program; taken jumps redirect the
	// next fetch, and execution ends when the counter runs off the end.
	DISPATCH_COUNTER = Dispatch(0) // counter
	// Every instruction executes once in program order; taken jumps
	// still write the position counter, but the walk never consults it.
	DISPATCH_LINEAR = Dispatch(1) // linear
)

// Machine is the simulation context for the rim register machine.
type Machine struct {
	Verbose  bool      // Set to enable verbose logging.
	Dispatch Dispatch  // Program walk discipline used by Run.
	Output   io.Writer // Screen device output.

	Register [4]uint8         // Register bank (ra, rb, rc, rd).
	Sign     bool             // Sign flag, set by subtraction borrow.
	Zero     bool             // Zero flag, set by arithmetic results.
	Data     [DATA_SIZE]uint8 // Data segment.
	Pc       int              // Position counter.

	Ticks int // Executed instruction counter.

	program []Instruction
}

// NewMachine creates a machine holding a private snapshot of the
// program. A nil program is an empty one.
func NewMachine(prog *Program) (m *Machine) {
	m = &Machine{
		Output: os.Stdout,
	}

	if prog != nil {
		m.program = slices.Clone(prog.Code)
	}

	return
}

// Reset returns the machine to its power-on state.
// The program snapshot and configuration are retained.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("machine: reset")
	}

	clear(m.Register[:])
	clear(m.Data[:])
	m.Sign = false
	m.Zero = false
	m.Pc = 0
	m.Ticks = 0
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	for reg := REG_RA; reg <= REG_RD; reg++ {
		text += fmt.Sprintf("% 5s: %02x\n", reg, m.Register[reg])
	}
	text += fmt.Sprintf("% 5s: %v\n", "sign", m.Sign)
	text += fmt.Sprintf("% 5s: %v\n", "zero", m.Zero)
	text += fmt.Sprintf("% 5s: %03x\n", "pc", m.Pc)

	return
}

// Done reports whether the position counter has run off the end of the
// program.
func (m *Machine) Done() bool {
	return m.Pc >= len(m.program)
}

// Run executes the program to completion under the configured dispatch
// discipline. A device halt ends the run successfully.
func (m *Machine) Run() (err error) {
	switch m.Dispatch {
	case DISPATCH_COUNTER:
		for !m.Done() {
			var halt bool
			halt, err = m.Step()
			if halt || err != nil {
				return
			}
		}
	case DISPATCH_LINEAR:
		for pos, in := range m.program {
			var halt bool
			halt, err = m.execute(pos, in)
			if halt || err != nil {
				return
			}
		}
	default:
		err = ErrDispatchInvalid
	}

	return
}

// Step executes the instruction at the position counter and advances
// it. A taken jump overwrites the advanced counter.
func (m *Machine) Step() (halt bool, err error) {
	if m.Pc < 0 || m.Pc >= len(m.program) {
		err = ErrPcRange
		return
	}

	pos := m.Pc
	m.Pc = pos + 1

	halt, err = m.execute(pos, m.program[pos])
	return
}

// execute performs a single decoded instruction.
func (m *Machine) execute(pos int, in Instruction) (halt bool, err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction(in), err)
		}
	}()
	if m.Verbose {
		log.Printf("%03x: %v", pos, in)
	}

	m.Ticks += 1

	switch data := in.Data.(type) {
	case DataImm:
		if in.Op != OP_ADI {
			err = ErrInstructionInvalid
			return
		}
		m.Register[REG_RA] += data.Value
		m.Sign = false
		m.Zero = m.Register[REG_RA] == 0
	case DataReg:
		src := m.resolve(data.Src, data.Indirect)
		dest := m.resolve(data.Dest, data.Indirect)
		switch in.Op {
		case OP_ADD:
			m.Register[dest] += m.Register[src]
			m.Sign = false
		case OP_SUB:
			m.Sign = m.Register[src] > m.Register[dest]
			m.Register[dest] -= m.Register[src]
		default:
			err = ErrInstructionInvalid
			return
		}
		m.Zero = m.Register[dest] == 0
	case DataMem:
		addr := m.address(uint8(data.Addr))
		if data.Pointer {
			addr = m.address(m.Data[addr])
		}
		var taken bool
		switch in.Op {
		case OP_JNE:
			taken = !m.Zero
		case OP_JG:
			taken = m.Sign
		case OP_JL:
			taken = !m.Sign && !m.Zero
		default:
			err = ErrInstructionInvalid
			return
		}
		if taken {
			m.Pc = addr
		}
	case DataIo:
		if in.Op != OP_IOI && in.Op != OP_IOR {
			err = ErrInstructionInvalid
			return
		}
		value := m.Register[REG_RA]
		if in.Op == OP_IOR {
			value = m.Register[MakeRegister(value)]
		}
		halt, err = m.io(data.Device, data.Function, value)
	default:
		err = ErrInstructionInvalid
	}

	return
}

// resolve maps a register id to the operand register. With the
// indirect flag, the id names the register whose stored value selects
// the operand instead.
func (m *Machine) resolve(reg Register, indirect bool) (out Register) {
	out = reg
	if indirect {
		out = MakeRegister(m.Register[reg])
	}

	return
}

// address composes a 12-bit data segment address from the high half in
// rd and the given low component.
func (m *Machine) address(low uint8) (addr int) {
	return (int(m.Register[REG_RD]) << 4) | int(low)
}
