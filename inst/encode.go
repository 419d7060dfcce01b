package inst

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var errUnknownForm = errors.New("unknown mov form")

// Encode assembles one mov instruction of the given form from its fields.
// Fields that the form does not use are ignored.
func Encode(form Form, f Fields) ([]byte, error) {
	in := newFields(f)
	if err := in.validate(); err != nil {
		return nil, fmt.Errorf("encode %s: %w", form, err)
	}

	var out []byte
	switch form {
	case RegMemToFromReg:
		out = append(out, 0b100010<<2|byte(in.direction)<<1|byte(in.size))
		return in.appendModRM(out, byte(in.reg))
	case ImmToReg:
		out = append(out, 0b1011<<4|byte(in.size)<<3|byte(in.reg))
		return in.appendData(out, in.size)
	case ImmToRegMem:
		out, err := in.appendModRM([]byte{0b1100011<<1 | byte(in.size)}, 0)
		if err != nil {
			return nil, err
		}
		return in.appendData(out, in.size)
	case MemToAcc:
		out = append(out, 0b1010000<<1|byte(in.size))
		return in.appendData(out, OpWord)
	case AccToMem:
		out = append(out, 0b1010001<<1|byte(in.size))
		return in.appendData(out, OpWord)
	}
	return nil, fmt.Errorf("%w: %d", errUnknownForm, form)
}

func (f fields) appendModRM(out []byte, reg byte) ([]byte, error) {
	out = append(out, byte(f.mode)<<6|reg<<3|byte(f.rm))
	if isDirectAddress(f.mode, f.rm) {
		return binary.LittleEndian.AppendUint16(out, uint16(f.disp)), nil
	}
	switch f.mode {
	case memOffset8:
		if f.disp < math.MinInt8 || f.disp > math.MaxInt8 {
			return nil, fmt.Errorf("displacement %d does not fit a byte", f.disp)
		}
		out = append(out, byte(int8(f.disp)))
	case memOffset16:
		out = binary.LittleEndian.AppendUint16(out, uint16(f.disp))
	}
	return out, nil
}

func (f fields) appendData(out []byte, size OpSize) ([]byte, error) {
	if size == OpWord {
		return binary.LittleEndian.AppendUint16(out, uint16(f.data)), nil
	}
	if f.data < math.MinInt8 || f.data > math.MaxInt8 {
		return nil, fmt.Errorf("immediate %d does not fit a byte", f.data)
	}
	return append(out, byte(int8(f.data))), nil
}
