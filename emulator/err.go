package emulator

import (
	"github.com/ezrec/rim/translate"
)

var f = translate.From

// ErrRuntime indicates the position counter at a runtime error.
type ErrRuntime struct {
	Pc  int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc %03x %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
