// Package cpu implements the rim 8-bit register machine.
//
// A program image is the 16-bit magic header followed by one instruction per
// byte. Each byte packs a 3-bit opcode with five opcode-shaped operand bits:
// an immediate for adi, register pairs with optional register indirection for
// add/sub, composed data segment addresses with optional pointer indirection
// for the conditional jumps, and a device/function pair for the I/O opcodes.
//
// The machine consists of four 8-bit registers (ra the accumulator, rb
// general purpose, rc the stack pointer, rd the high half of composed
// addresses), sign and zero flags, a 4 KiB data segment, and a position
// counter. Four fixed peripheral devices (cpu, kbd, scr, mth) answer the I/O
// opcodes with eight numbered functions each.
package cpu
