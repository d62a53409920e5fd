package cpu

import (
	"fmt"
)

// Opcode is the 3-bit operation selector in the low bits of an instruction byte.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADI = Opcode(0) // adi
	OP_ADD = Opcode(1) // add
	OP_SUB = Opcode(2) // sub
	OP_JNE = Opcode(3) // jne
	OP_JG  = Opcode(4) // jg
	OP_JL  = Opcode(5) // jl
	OP_IOI = Opcode(6) // ioi
	OP_IOR = Opcode(7) // ior
)

// MakeOpcode truncates a byte to its low three bits and returns the opcode.
func MakeOpcode(value uint8) Opcode {
	return Opcode(value & 0b111)
}

// Register is a 2-bit register id.
// REG_RA is the accumulator and I/O value source, REG_RB is general purpose,
// REG_RC is the stack pointer, and REG_RD holds the high half of every
// composed data segment address.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_RA = Register(0) // ra
	REG_RB = Register(1) // rb
	REG_RC = Register(2) // rc
	REG_RD = Register(3) // rd
)

// MakeRegister truncates a byte to its low two bits and returns the register id.
func MakeRegister(value uint8) Register {
	return Register(value & 0b11)
}

// Device is a 2-bit peripheral unit id.
type Device int

//go:generate go tool stringer -linecomment -type=Device
const (
	DEVICE_CPU = Device(0) // cpu
	DEVICE_KBD = Device(1) // kbd
	DEVICE_SCR = Device(2) // scr
	DEVICE_MTH = Device(3) // mth
)

// MakeDevice truncates a byte to its low two bits and returns the device id.
func MakeDevice(value uint8) Device {
	return Device(value & 0b11)
}

// Data is the opcode-dependent operand payload of an instruction, occupying
// the five bits above the opcode. Exactly one payload shape exists per
// opcode class, so a decoded instruction never carries a mismatched one.
type Data interface {
	// encode packs the payload into bits 3-7 of an instruction byte.
	encode() uint8
}

// DataImm is the payload of OP_ADI: a 5-bit unsigned immediate (0-31).
type DataImm struct {
	Value uint8
}

func (data DataImm) encode() uint8 {
	return (data.Value & 0b11111) << 3
}

// DataReg is the payload of OP_ADD and OP_SUB. With Indirect set, Src and
// Dest are not operated on themselves: the value each holds is reinterpreted
// as the id of the register to use.
type DataReg struct {
	Indirect  bool
	Src, Dest Register
}

func (data DataReg) encode() (b uint8) {
	if data.Indirect {
		b |= 1 << 3
	}
	b |= (uint8(data.Src) & 0b11) << 4
	b |= (uint8(data.Dest) & 0b11) << 6
	return
}

// DataMem is the payload of OP_JNE, OP_JG and OP_JL: the low nibble of a
// composed data segment address. With Pointer set, the byte stored at the
// composed address supplies the low component of a second composition.
type DataMem struct {
	Pointer bool
	Addr    Uint4
}

func (data DataMem) encode() (b uint8) {
	if data.Pointer {
		b |= 1 << 3
	}
	b |= (uint8(data.Addr) & 0b1111) << 4
	return
}

// DataIo is the payload of OP_IOI and OP_IOR: a device id and one of its
// eight numbered functions.
type DataIo struct {
	Device   Device
	Function Uint3
}

func (data DataIo) encode() uint8 {
	return (uint8(data.Device)&0b11)<<3 | (uint8(data.Function)&0b111)<<5
}

// Instruction is a decoded instruction byte: an opcode plus the payload
// shaped for it.
type Instruction struct {
	Op   Opcode
	Data Data
}

// Decode maps an instruction byte to its instruction. Every byte value
// decodes to exactly one valid instruction; Decode cannot fail.
func Decode(b uint8) (in Instruction) {
	op := MakeOpcode(b)

	switch op {
	case OP_ADI:
		in = Instruction{op, DataImm{Value: b >> 3}}
	case OP_ADD, OP_SUB:
		in = Instruction{op, DataReg{
			Indirect: (b & (1 << 3)) != 0,
			Src:      MakeRegister(b >> 4),
			Dest:     MakeRegister(b >> 6),
		}}
	case OP_JNE, OP_JG, OP_JL:
		in = Instruction{op, DataMem{
			Pointer: (b & (1 << 3)) != 0,
			Addr:    MakeUint4(b >> 4),
		}}
	case OP_IOI, OP_IOR:
		in = Instruction{op, DataIo{
			Device:   MakeDevice(b >> 3),
			Function: MakeUint3(b >> 5),
		}}
	}

	return
}

// Encode packs the instruction back into its byte. Encode is the exact
// inverse of Decode: Decode(b).Encode() == b for every byte value.
func (in Instruction) Encode() (b uint8) {
	b = uint8(in.Op) & 0b111
	if in.Data != nil {
		b |= in.Data.encode()
	}
	return
}

// MakeAdi creates an add-immediate instruction. The immediate is truncated
// to its low five bits.
func MakeAdi(value uint8) Instruction {
	return Instruction{OP_ADI, DataImm{Value: value & 0b11111}}
}

// MakeArith creates a register arithmetic instruction. op must be OP_ADD or
// OP_SUB.
func MakeArith(op Opcode, indirect bool, src, dest Register) Instruction {
	return Instruction{op, DataReg{Indirect: indirect, Src: src & 0b11, Dest: dest & 0b11}}
}

// MakeJump creates a conditional control transfer instruction. op must be
// OP_JNE, OP_JG or OP_JL.
func MakeJump(op Opcode, pointer bool, addr Uint4) Instruction {
	return Instruction{op, DataMem{Pointer: pointer, Addr: addr & 0b1111}}
}

// MakeIo creates a device I/O instruction. op must be OP_IOI or OP_IOR.
func MakeIo(op Opcode, device Device, function Uint3) Instruction {
	return Instruction{op, DataIo{Device: device & 0b11, Function: function & 0b111}}
}

// String returns the dotted mnemonic form of the instruction. Indirect
// register operands carry an '@' marker, pointer address operands a '*'.
func (in Instruction) String() (out string) {
	switch data := in.Data.(type) {
	case DataImm:
		out = fmt.Sprintf("%v.%d", in.Op, data.Value)
	case DataReg:
		if data.Indirect {
			out = fmt.Sprintf("%v.@%v.@%v", in.Op, data.Src, data.Dest)
		} else {
			out = fmt.Sprintf("%v.%v.%v", in.Op, data.Src, data.Dest)
		}
	case DataMem:
		if data.Pointer {
			out = fmt.Sprintf("%v.*%v", in.Op, data.Addr)
		} else {
			out = fmt.Sprintf("%v.%v", in.Op, data.Addr)
		}
	case DataIo:
		out = fmt.Sprintf("%v.%v.%v", in.Op, data.Device, data.Function)
	default:
		out = in.Op.String()
	}

	return
}
