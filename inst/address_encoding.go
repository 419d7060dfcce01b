package inst

// effAddrEncoding maps rm to its base/index expression for the memory modes.
var effAddrEncoding = [...]string{
	alax: "bx + si",
	clcx: "bx + di",
	dldx: "bp + si",
	blbx: "bp + di",
	ahsp: "si",
	chbp: "di",
	dhsi: "bp",
	bhdi: "bx",
}

// mod 00 with rm 110 replaces [bp] with a 16-bit address.
func isDirectAddress(m modeOffset, r register) bool {
	return m == memOffset0 && r == dhsi
}
