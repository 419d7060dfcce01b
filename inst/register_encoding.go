package inst

// regString is indexed by w<<3 | reg.
var regString = [...]string{
	alax: "al",
	clcx: "cl",
	dldx: "dl",
	blbx: "bl",
	ahsp: "ah",
	chbp: "ch",
	dhsi: "dh",
	bhdi: "bh",
	8 | alax: "ax",
	8 | clcx: "cx",
	8 | dldx: "dx",
	8 | blbx: "bx",
	8 | ahsp: "sp",
	8 | chbp: "bp",
	8 | dhsi: "si",
	8 | bhdi: "di",
}

var regIndex = func() map[string]byte {
	m := make(map[string]byte, len(regString))
	for i, name := range regString {
		m[name] = byte(i)
	}
	return m
}()

type regEncoding struct {
	register
	OpSize
}

func (r regEncoding) index() int {
	return int(r.OpSize&1)<<3 | int(r.register&0x7)
}

func (r regEncoding) String() string {
	return regString[r.index()]
}

// RegisterName returns the register named by a 4-bit w<<3|reg index.
func RegisterName(index byte) (string, bool) {
	if int(index) >= len(regString) {
		return "", false
	}
	return regString[index], true
}

// RegisterIndex is the inverse of RegisterName.
func RegisterIndex(name string) (byte, bool) {
	i, ok := regIndex[name]
	return i, ok
}
