package cpu

import (
	"fmt"
)

// io dispatches a device function call made by OP_IOI or OP_IOR.
// The devices mutate machine state directly; the cpu device can halt.
func (m *Machine) io(device Device, function Uint3, value uint8) (halt bool, err error) {
	switch device {
	case DEVICE_CPU:
		halt = m.ioCpu(function, value)
	case DEVICE_KBD:
		err = m.ioKbd(function, value)
	case DEVICE_SCR:
		err = m.ioScr(function, value)
	case DEVICE_MTH:
		err = m.ioMth(function, value)
	default:
		err = ErrDeviceInvalid
	}

	return
}

// ioCpu implements the cpu device: halt, accumulator clear, and data
// segment transfer. Functions 5 and 6 resolve the composed address,
// then re-compose with the byte stored there, the same indirection the
// pointer jumps use.
func (m *Machine) ioCpu(function Uint3, value uint8) (halt bool) {
	switch uint8(function) {
	case 0:
		halt = true
	case 2:
		m.Register[REG_RA] = 0
	case 3:
		m.Register[REG_RA] = m.Data[m.address(value)]
	case 4:
		m.Data[m.address(value)] = m.Register[REG_RA]
	case 5:
		m.Register[REG_RA] = m.Data[m.address(m.Data[m.address(value)])]
	case 6:
		m.Data[m.address(m.Data[m.address(value)])] = m.Register[REG_RA]
	default:
		// 1 and 7 are reserved no-ops.
	}

	return
}

// ioKbd implements the kbd device. The input functions are reserved
// and fail rather than read garbage.
// TODO: wire functions 0 and 1 to an input reader.
func (m *Machine) ioKbd(function Uint3, value uint8) (err error) {
	switch uint8(function) {
	case 0, 1:
		err = ErrKbdUnimplemented
	default:
	}

	return
}

// ioScr implements the scr device with ANSI control sequences written
// to Output.
func (m *Machine) ioScr(function Uint3, value uint8) (err error) {
	switch uint8(function) {
	case 0:
		_, err = fmt.Fprintf(m.Output, "\x1b[%d;H", value)
	case 1:
		_, err = fmt.Fprintf(m.Output, "\x1b[;%dH", value)
	case 2:
		_, err = fmt.Fprintf(m.Output, "%c", value)
	case 3, 4:
		m.Register[REG_RA] = 0
	case 5:
		_, err = fmt.Fprint(m.Output, "\x1b[2J\n")
	default:
	}

	return
}

// ioMth implements the mth device: multiply, divide, bitwise ops on
// the accumulator, and flag transfer.
func (m *Machine) ioMth(function Uint3, value uint8) (err error) {
	acc := m.Register[REG_RA]

	switch uint8(function) {
	case 0:
		var sel Register
		sel, err = registerSelector(value)
		if err != nil {
			return
		}
		product := uint16(acc) * uint16(m.Register[sel])
		m.Register[REG_RA] = uint8(product)
		m.Register[REG_RB] = uint8(product >> 8)
		m.Zero = product == 0
	case 1:
		var sel Register
		sel, err = registerSelector(value)
		if err != nil {
			return
		}
		divisor := m.Register[sel]
		if divisor == 0 {
			err = ErrDivideByZero
			return
		}
		m.Register[REG_RA] = acc / divisor
		m.Zero = m.Register[REG_RA] == 0
	case 2, 3:
		// and/or of the accumulator with itself leaves it unchanged.
		m.Zero = acc == 0
	case 4:
		// xor of the accumulator with itself always clears it.
		m.Register[REG_RA] = 0
		m.Zero = true
	case 5:
		m.Register[REG_RA] = ^acc
		m.Zero = m.Register[REG_RA] == 0
	case 6:
		var sel Register
		if m.Sign {
			sel |= 0b01
		}
		if m.Zero {
			sel |= 0b10
		}
		// The flag-selected register is read and discarded.
		_ = m.Register[sel]
	case 7:
		m.Sign = value&0b01 != 0
		m.Zero = value&0b10 != 0
	}

	return
}

// registerSelector validates a register index carried in a value byte.
// Unlike the 2-bit instruction fields, the full byte is checked, not
// truncated.
func registerSelector(value uint8) (reg Register, err error) {
	if value > uint8(REG_RD) {
		err = ErrRegisterInvalid
		return
	}

	reg = Register(value)
	return
}
