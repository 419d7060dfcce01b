package inst

import (
	"errors"
	"fmt"
)

type opDirection byte

// OpSize is the operand width selected by the w bit.
type OpSize byte
type modeOffset byte
type register byte

const (
	opSrc opDirection = 0x0
	opDst opDirection = 0x1

	OpByte OpSize = 0x0
	OpWord OpSize = 0x1

	memOffset0  modeOffset = 0x0
	memOffset8  modeOffset = 0x1
	memOffset16 modeOffset = 0x2
	regOffset0  modeOffset = 0x3

	alax register = 0x0
	clcx register = 0x1
	dldx register = 0x2
	blbx register = 0x3
	ahsp register = 0x4
	chbp register = 0x5
	dhsi register = 0x6
	bhdi register = 0x7
)

func (o OpSize) String() string {
	if o == OpWord {
		return "word"
	}
	return "byte"
}

func (o opDirection) validate() error {
	switch o {
	case opDst, opSrc:
		return nil
	default:
		return fmt.Errorf("can't parse op direction %x", byte(o))
	}
}

func (o OpSize) validate() error {
	switch o {
	case OpByte, OpWord:
		return nil
	default:
		return fmt.Errorf("can't parse op size %x", byte(o))
	}
}

func (m modeOffset) validate() error {
	switch m {
	case regOffset0, memOffset0, memOffset8, memOffset16:
		return nil
	default:
		return fmt.Errorf("can't parse mode offset %x", byte(m))
	}
}

func (r register) validate() error {
	switch r {
	case alax, clcx, dldx, blbx, ahsp, chbp, dhsi, bhdi:
		return nil
	default:
		return fmt.Errorf("can't parse register %x", byte(r))
	}
}

// byte1 is the opcode byte.
type byte1 byte

func (o byte1) D() opDirection {
	return opDirection(o >> 1 & 1)
}

func (o byte1) W() OpSize {
	return OpSize(o & 1)
}

// Immediate-to-register keeps w and reg in the opcode byte itself.
func (o byte1) immW() OpSize {
	return OpSize(o >> 3 & 1)
}

func (o byte1) immReg() register {
	return register(o & 0x7)
}

// byte2 is the ModRegRm byte: mmgggrrr.
type byte2 byte

func (o byte2) Mod() modeOffset {
	return modeOffset(o >> 6)
}

func (o byte2) Reg() register {
	return register(o >> 3 & 0x7)
}

func (o byte2) RM() register {
	return register(o & 0x7)
}

// Fields holds the raw bit fields of one mov encoding. Disp is the
// displacement selected by Mode, or the address under direct addressing.
// Data is the immediate value, or the address for the accumulator forms.
type Fields struct {
	Direction byte
	Size      byte
	Mode      byte
	Reg       byte
	RM        byte
	Disp      int16
	Data      int16
}

type fields struct {
	direction opDirection
	size      OpSize
	mode      modeOffset
	reg       register
	rm        register
	disp      int16
	data      int16
}

func newFields(f Fields) fields {
	return fields{
		direction: opDirection(f.Direction),
		size:      OpSize(f.Size),
		mode:      modeOffset(f.Mode),
		reg:       register(f.Reg),
		rm:        register(f.RM),
		disp:      f.Disp,
		data:      f.Data,
	}
}

func (f fields) validate() error {
	return errors.Join(
		f.direction.validate(),
		f.size.validate(),
		f.mode.validate(),
		f.reg.validate(),
		f.rm.validate(),
	)
}
