package inst

// Form identifies which of the mov encodings an instruction used.
type Form byte

const (
	RegMemToFromReg Form = iota + 1
	ImmToReg
	ImmToRegMem
	MemToAcc
	AccToMem
)

var formString = [...]string{
	RegMemToFromReg: "register/memory to/from register",
	ImmToReg:        "immediate to register",
	ImmToRegMem:     "immediate to register/memory",
	MemToAcc:        "memory to accumulator",
	AccToMem:        "accumulator to memory",
}

func (f Form) String() string {
	if int(f) < len(formString) && formString[f] != "" {
		return formString[f]
	}
	return "unknown"
}

// 100010dw mod reg rm [disp-lo] [disp-hi]
func movRegMemToFromReg(r *Reader, op byte1) (Instruction, error) {
	b2, rm, err := r.modRM(op.W())
	if err != nil {
		return Instruction{}, err
	}
	reg := Register{regEncoding{b2.Reg(), op.W()}.String()}

	if op.D() == opDst {
		return Instruction{Dst: reg, Src: rm}, nil
	}
	return Instruction{Dst: rm, Src: reg}, nil
}

// 1011wreg data [data]
func movImmediateToReg(r *Reader, op byte1) (Instruction, error) {
	size := op.immW()
	value, err := r.nextSized(size)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		Dst: Register{regEncoding{op.immReg(), size}.String()},
		Src: Immediate{Value: value, Size: size},
	}, nil
}

// 1100011w mod 000 rm [disp-lo] [disp-hi] data [data]
func movImmediateToRegMem(r *Reader, op byte1) (Instruction, error) {
	_, dst, err := r.modRM(op.W())
	if err != nil {
		return Instruction{}, err
	}
	value, err := r.nextSized(op.W())
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		Dst: dst,
		Src: Immediate{Value: value, Size: op.W(), Sized: true},
	}, nil
}

// 1010000w addr-lo addr-hi
func movMemToAcc(r *Reader, _ byte1) (Instruction, error) {
	addr, err := r.nextInt16()
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		Dst: accumulator,
		Src: Memory{Direct: true, Address: addr},
	}, nil
}

// 1010001w addr-lo addr-hi
func movAccToMem(r *Reader, _ byte1) (Instruction, error) {
	addr, err := r.nextInt16()
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		Dst: Memory{Direct: true, Address: addr},
		Src: accumulator,
	}, nil
}

// The accumulator forms always list ax, whatever w says.
var accumulator = Register{regEncoding{alax, OpWord}.String()}
