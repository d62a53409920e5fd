package cpu

import (
	"errors"

	"github.com/ezrec/rim/translate"
)

var f = translate.From

var (
	// Program image errors
	ErrMagicInvalid = errors.New(f("invalid header"))
	ErrProgramRead  = errors.New(f("program read"))

	// Machine errors
	ErrPcRange            = errors.New(f("pc out of range"))
	ErrDispatchInvalid    = errors.New(f("dispatch invalid"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrDeviceInvalid      = errors.New(f("device invalid"))

	// Device errors
	ErrDivideByZero     = errors.New(f("divide by zero"))
	ErrRegisterInvalid  = errors.New(f("register invalid"))
	ErrKbdUnimplemented = errors.New(f("kbd function not implemented"))
)

type ErrInstruction Instruction

func (ei ErrInstruction) Error() string {
	return f("bad instruction 0x%02x %v", Instruction(ei).Encode(), Instruction(ei).String())
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}
