package inst

import (
	"fmt"
	"strconv"
)

// Operand is one of Register, Memory or Immediate.
type Operand interface {
	fmt.Stringer
	isOperand()
}

type Register struct {
	Name string
}

// Memory is a bracketed memory reference. Direct references carry a literal
// Address instead of a Base expression. HasDisp records that the encoding
// had a displacement field, even when its value is zero.
type Memory struct {
	Base    string
	Direct  bool
	Address int16
	Disp    int16
	HasDisp bool
}

// Immediate is a constant operand. Sized immediates are prefixed with their
// width so the assembler can tell the size of a memory destination.
type Immediate struct {
	Value int16
	Size  OpSize
	Sized bool
}

func (Register) isOperand()  {}
func (Memory) isOperand()    {}
func (Immediate) isOperand() {}

func (r Register) String() string {
	return r.Name
}

// A zero displacement renders like no displacement at all.
func (m Memory) String() string {
	if m.Direct {
		return "[" + strconv.Itoa(int(m.Address)) + "]"
	}
	switch d := int(m.Disp); {
	case d > 0:
		return fmt.Sprintf("[%s + %d]", m.Base, d)
	case d < 0:
		return fmt.Sprintf("[%s - %d]", m.Base, -d)
	}
	return "[" + m.Base + "]"
}

func (i Immediate) String() string {
	if i.Sized {
		return fmt.Sprintf("%s %d", i.Size, i.Value)
	}
	return strconv.Itoa(int(i.Value))
}

// modRM reads the ModRegRm byte and whatever displacement or direct address
// follows it, and resolves the rm field into an operand of the given width.
func (r *Reader) modRM(size OpSize) (byte2, Operand, error) {
	b, err := r.nextByte()
	if err != nil {
		return 0, nil, err
	}
	b2 := byte2(b)
	mod, rm := b2.Mod(), b2.RM()

	if mod == regOffset0 {
		return b2, Register{regEncoding{rm, size}.String()}, nil
	}

	if isDirectAddress(mod, rm) {
		addr, err := r.nextInt16()
		if err != nil {
			return 0, nil, err
		}
		return b2, Memory{Direct: true, Address: addr}, nil
	}

	m := Memory{Base: effAddrEncoding[rm]}
	switch mod {
	case memOffset8:
		m.Disp, err = r.nextInt8()
		m.HasDisp = true
	case memOffset16:
		m.Disp, err = r.nextInt16()
		m.HasDisp = true
	}
	if err != nil {
		return 0, nil, err
	}
	return b2, m, nil
}
