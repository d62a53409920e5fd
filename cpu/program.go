package cpu

import (
	"encoding/binary"
	"errors"
	"io"
)

// MAGIC marks the first two bytes of a program image, big-endian.
const MAGIC = uint16(0x8bca)

func CheckMagic(header [2]byte) (ok bool) {
	return binary.BigEndian.Uint16(header[:]) == MAGIC
}

type Program struct {
	Code []Instruction
}

// ReadProgram loads a program image. The image is the two MAGIC bytes
// followed by zero or more instruction bytes.
func ReadProgram(reader io.Reader) (prog *Program, err error) {
	var header [2]byte
	_, err = io.ReadFull(reader, header[:])
	if err != nil {
		err = errors.Join(ErrProgramRead, err)
		return
	}

	if !CheckMagic(header) {
		err = ErrMagicInvalid
		return
	}

	image, err := io.ReadAll(reader)
	if err != nil {
		err = errors.Join(ErrProgramRead, err)
		return
	}

	prog = &Program{}
	for _, b := range image {
		prog.Code = append(prog.Code, Decode(b))
	}

	return
}

// Bytes renders the program back into image form.
func (prog *Program) Bytes() (image []byte) {
	image = binary.BigEndian.AppendUint16(image, MAGIC)
	for _, in := range prog.Code {
		image = append(image, in.Encode())
	}

	return
}
