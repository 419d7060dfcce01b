// Package disasm drives the mov decoder over a whole instruction stream and
// renders the listing.
package disasm

import (
	"bufio"
	"io"

	"github.com/artemijrodionov/sim8086/inst"
)

// Header starts every listing.
const Header = "bits 16"

type State int

const (
	Scanning State = iota
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Scanning:
		return "scanning"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Disassembler steps through a byte stream one instruction at a time, in the
// manner of bufio.Scanner. It is not safe for concurrent use.
type Disassembler struct {
	r     *inst.Reader
	state State
	inst  inst.Instruction
	err   error
}

func New(data []byte) *Disassembler {
	d := &Disassembler{r: inst.NewReader(data)}
	if d.r.Done() {
		d.state = Done
	}
	return d
}

// Scan decodes the next instruction. It returns false once the stream is
// exhausted or decoding failed; Err tells the two apart.
func (d *Disassembler) Scan() bool {
	if d.state != Scanning {
		return false
	}
	i, err := inst.Decode(d.r)
	if err != nil {
		d.state = Failed
		d.err = err
		return false
	}
	d.inst = i
	if d.r.Done() {
		d.state = Done
	}
	return true
}

// Instruction returns the instruction decoded by the last successful Scan.
func (d *Disassembler) Instruction() inst.Instruction {
	return d.inst
}

func (d *Disassembler) State() State {
	return d.state
}

// Offset is the number of bytes consumed so far.
func (d *Disassembler) Offset() int {
	return d.r.Offset()
}

func (d *Disassembler) Err() error {
	return d.err
}

// Run decodes data in full. On failure it returns the instructions decoded
// before the offending byte together with the error.
func Run(data []byte) ([]inst.Instruction, error) {
	var insts []inst.Instruction
	d := New(data)
	for d.Scan() {
		insts = append(insts, d.Instruction())
	}
	return insts, d.Err()
}

func Lines(insts []inst.Instruction) []string {
	lines := make([]string, len(insts))
	for i, in := range insts {
		lines[i] = in.String()
	}
	return lines
}

// WriteListing writes the header, a blank line and one line per instruction.
func WriteListing(w io.Writer, insts []inst.Instruction) error {
	// bufio.Writer keeps the first write error and Flush returns it.
	bw := bufio.NewWriter(w)
	bw.WriteString(Header + "\n\n")
	for _, in := range insts {
		bw.WriteString(in.String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
