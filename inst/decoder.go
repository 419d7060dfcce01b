package inst

import (
	"fmt"
	"strconv"
)

// Instruction is a decoded instruction with its operands in display order.
type Instruction struct {
	Name   string
	Form   Form
	Dst    Operand
	Src    Operand
	Offset int
	Len    int
}

func (i Instruction) String() string {
	return fmt.Sprintf("%s %s, %s", i.Name, i.Dst, i.Src)
}

// UnknownOpcodeError is returned when a byte matches none of the mov
// opcode patterns.
type UnknownOpcodeError struct {
	Opcode byte
	Offset int
}

func (e *UnknownOpcodeError) Error() string {
	return "opcode not found: " + strconv.FormatUint(uint64(e.Opcode), 2)
}

type decodeFunc func(*Reader, byte1) (Instruction, error)

// Patterns are mutually exclusive; they are still tried in this order.
var opcodes = [...]struct {
	shift   uint8
	pattern byte
	form    Form
	decode  decodeFunc
}{
	{2, 0b100010, RegMemToFromReg, movRegMemToFromReg},
	{4, 0b1011, ImmToReg, movImmediateToReg},
	{1, 0b1100011, ImmToRegMem, movImmediateToRegMem},
	{1, 0b1010000, MemToAcc, movMemToAcc},
	{1, 0b1010001, AccToMem, movAccToMem},
}

// Decode decodes the instruction at the reader's offset and advances past
// it. On error the offset is left where it was.
func Decode(r *Reader) (Instruction, error) {
	start := r.off
	b, err := r.peek()
	if err != nil {
		return Instruction{}, err
	}

	for _, op := range opcodes {
		if b>>op.shift != op.pattern {
			continue
		}
		r.off++
		i, err := op.decode(r, byte1(b))
		if err != nil {
			r.off = start
			return Instruction{}, fmt.Errorf("decode %s at offset %d: %w", op.form, start, err)
		}
		i.Name = "mov"
		i.Form = op.form
		i.Offset = start
		i.Len = r.off - start
		return i, nil
	}

	return Instruction{}, &UnknownOpcodeError{Opcode: b, Offset: start}
}
