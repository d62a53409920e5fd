package emulator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rim/cpu"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil)

	assert.False(emu.Verbose)
	assert.NotNil(emu.Machine)
	assert.NotNil(emu.Program)
	assert.True(emu.Machine.Done())
	assert.NoError(emu.Run())
}

func TestEmulatorLoad(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil)

	err := emu.Load(bytes.NewReader([]byte{0x8b, 0xca, 0x28, 0x06}))
	assert.NoError(err)
	assert.Len(emu.Program.Code, 2)

	assert.NoError(emu.Run())
	assert.Equal(uint8(5), emu.Machine.Register[cpu.REG_RA])
}

func TestEmulatorLoadFailure(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil)

	err := emu.Load(bytes.NewReader([]byte{0xde, 0xad}))
	assert.ErrorIs(err, cpu.ErrMagicInvalid)

	// The previous (empty) program stays in place.
	assert.Empty(emu.Program.Code)
	assert.True(emu.Machine.Done())
}

func TestEmulatorTick(t *testing.T) {
	assert := assert.New(t)

	prog := &cpu.Program{Code: []cpu.Instruction{
		cpu.MakeAdi(2),
		cpu.MakeAdi(3),
	}}
	emu := NewEmulator(prog)

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)

	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(uint8(5), emu.Machine.Register[cpu.REG_RA])

	// Ticking a finished machine stays done.
	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func TestEmulatorHalt(t *testing.T) {
	assert := assert.New(t)

	prog := &cpu.Program{Code: []cpu.Instruction{
		cpu.MakeIo(cpu.OP_IOI, cpu.DEVICE_CPU, 0),
		cpu.MakeAdi(9),
	}}
	emu := NewEmulator(prog)

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(uint8(0), emu.Machine.Register[cpu.REG_RA])
}

func TestEmulatorRuntimeError(t *testing.T) {
	assert := assert.New(t)

	prog := &cpu.Program{Code: []cpu.Instruction{
		cpu.MakeAdi(1),
		cpu.MakeIo(cpu.OP_IOI, cpu.DEVICE_KBD, 0),
	}}
	emu := NewEmulator(prog)

	err := emu.Run()
	assert.ErrorIs(err, cpu.ErrKbdUnimplemented)

	var runtime *ErrRuntime
	if assert.ErrorAs(err, &runtime) {
		assert.Equal(1, runtime.Pc)
		assert.Contains(runtime.Error(), "pc 001")
	}
}

func TestEmulatorLinear(t *testing.T) {
	assert := assert.New(t)

	prog := &cpu.Program{Code: []cpu.Instruction{
		cpu.MakeAdi(1),
		cpu.MakeJump(cpu.OP_JNE, false, 3),
		cpu.MakeAdi(2),
	}}
	emu := NewEmulator(prog)
	emu.Machine.Dispatch = cpu.DISPATCH_LINEAR

	assert.NoError(emu.Run())
	assert.Equal(uint8(3), emu.Machine.Register[cpu.REG_RA])
}
