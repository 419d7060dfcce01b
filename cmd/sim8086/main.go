package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"

	"github.com/artemijrodionov/sim8086/disasm"
	"github.com/artemijrodionov/sim8086/inst"
)

var (
	objPath = flag.String("objPath", "", "Unix path to a binary file compiled with nasm")
	debug   = flag.Bool("debug", false, "dump every decoded instruction to stderr")
)

func isObjFile(filename string) bool {
	return filename != "" && !strings.HasSuffix(filename, ".asm")
}

type Cli struct {
	ObjPath string
	Debug   bool

	out    io.Writer
	errOut io.Writer
}

func NewCli(objPath string, debug bool) (*Cli, error) {
	if !isObjFile(objPath) {
		return nil, errors.New("executable file name is not valid")
	}
	return &Cli{ObjPath: objPath, Debug: debug, out: os.Stdout, errOut: os.Stderr}, nil
}

// Run writes the listing of everything decoded before returning the decode
// error, if any.
func (c *Cli) Run() error {
	data, err := os.ReadFile(c.ObjPath)
	if err != nil {
		return err
	}

	var printer *pp.PrettyPrinter
	if c.Debug {
		printer = pp.New()
		printer.SetOutput(c.errOut)
		printer.SetColoringEnabled(isTerminal(c.errOut))
	}

	var insts []inst.Instruction
	d := disasm.New(data)
	for d.Scan() {
		if printer != nil {
			printer.Println(d.Instruction())
		}
		insts = append(insts, d.Instruction())
	}

	if err := disasm.WriteListing(c.out, insts); err != nil {
		return err
	}
	return d.Err()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	log.SetFlags(0)
	flag.Parse()

	path := *objPath
	if path == "" {
		path = flag.Arg(0)
	}

	cli, err := NewCli(path, *debug)
	if err != nil {
		flag.Usage()
		log.Fatal(err)
	}

	if err := cli.Run(); err != nil {
		log.Fatal(err)
	}
}
