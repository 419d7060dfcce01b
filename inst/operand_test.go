package inst

import "testing"

func TestOperandString(t *testing.T) {
	tests := []struct {
		operand Operand
		result  string
	}{
		{Register{"cx"}, "cx"},
		{Memory{Base: "bx + si"}, "[bx + si]"},
		{Memory{Base: "bx", Disp: 5, HasDisp: true}, "[bx + 5]"},
		{Memory{Base: "bx", Disp: -5, HasDisp: true}, "[bx - 5]"},
		{Memory{Base: "bp", Disp: -32768, HasDisp: true}, "[bp - 32768]"},
		// an explicit zero displacement is not rendered
		{Memory{Base: "bp", Disp: 0, HasDisp: true}, "[bp]"},
		{Memory{Direct: true, Address: 2555}, "[2555]"},
		{Memory{Direct: true, Address: -1}, "[-1]"},
		{Immediate{Value: -12, Size: OpByte}, "-12"},
		{Immediate{Value: 7, Size: OpByte, Sized: true}, "byte 7"},
		{Immediate{Value: 347, Size: OpWord, Sized: true}, "word 347"},
	}

	for _, test := range tests {
		t.Run(test.result, func(t *testing.T) {
			if result := test.operand.String(); result != test.result {
				t.Errorf("'%s' != '%s' for %#v", result, test.result, test.operand)
			}
		})
	}
}
