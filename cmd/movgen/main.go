package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/artemijrodionov/sim8086/disasm"
	"github.com/artemijrodionov/sim8086/inst"
)

var forms = [...]inst.Form{
	inst.RegMemToFromReg,
	inst.ImmToReg,
	inst.ImmToRegMem,
	inst.MemToAcc,
	inst.AccToMem,
}

func randWord(rnd *rand.Rand) int16 {
	return int16(uint16(rnd.Intn(1 << 16)))
}

func randByte(rnd *rand.Rand) int16 {
	return int16(int8(uint8(rnd.Intn(1 << 8))))
}

func randFields(rnd *rand.Rand, form inst.Form) inst.Fields {
	f := inst.Fields{
		Direction: byte(rnd.Intn(2)),
		Size:      byte(rnd.Intn(2)),
		Mode:      byte(rnd.Intn(4)),
		Reg:       byte(rnd.Intn(8)),
		RM:        byte(rnd.Intn(8)),
		Disp:      randWord(rnd),
		Data:      randWord(rnd),
	}
	if f.Mode == 1 {
		f.Disp = randByte(rnd)
	}
	if f.Size == 0 && (form == inst.ImmToReg || form == inst.ImmToRegMem) {
		f.Data = randByte(rnd)
	}
	return f
}

// randInst returns one random mov encoding and the line it disassembles to.
func randInst(rnd *rand.Rand) ([]byte, string) {
	form := forms[rnd.Intn(len(forms))]
	code, err := inst.Encode(form, randFields(rnd, form))
	if err != nil {
		panic(err)
	}
	decoded, err := inst.Decode(inst.NewReader(code))
	if err != nil {
		panic(err)
	}
	return code, decoded.String()
}

func writeRandInst(rnd *rand.Rand, code, listing io.Writer) error {
	c, line := randInst(rnd)
	if _, err := code.Write(c); err != nil {
		return err
	}
	_, err := fmt.Fprintln(listing, line)
	return err
}

// perChunk splits count over chunks, giving the remainder to the first ones.
func perChunk(count, chunks, i int) int {
	n := count / chunks
	if i < count%chunks {
		n++
	}
	return n
}

type genType string
type genTypes []genType

var sequential genType = "sequential"
var parallelInMemory genType = "parallel_mem"
var parallelInFile genType = "parallel_file"
var concurrent genType = "concurrent"
var generators genTypes = genTypes{
	sequential, parallelInMemory, parallelInFile, concurrent,
}

func (gs genTypes) String() string {
	generators := []genType(gs)
	result := make([]string, len(generators))
	for i, g := range generators {
		result[i] = string(g)
	}
	return strings.Join(result, ", ")
}

func (g genType) String() string {
	return string(g)
}

func (g *genType) Set(s string) error {
	for _, t := range generators {
		if t.String() == s {
			*g = genType(s)
			return nil
		}
	}
	return errors.New("can't find generator")
}

type config struct {
	count   int
	threads int
	seed    int64
}

// generate writes cfg.count random instructions to code and their listing,
// header included, to listing.
func generate(g genType, cfg config, code, listing io.Writer) error {
	if cfg.threads < 1 {
		cfg.threads = 1
	}
	codeW := bufio.NewWriter(code)
	listingW := bufio.NewWriter(listing)
	listingW.WriteString(disasm.Header + "\n\n")

	var err error
	switch g {
	case sequential:
		err = sequentialGen(cfg, codeW, listingW)
	case parallelInMemory:
		err = parallelInMemoryGen(cfg, codeW, listingW)
	case parallelInFile:
		err = parallelInFileGen(cfg, codeW, listingW)
	case concurrent:
		err = concurrentGen(cfg, codeW, listingW)
	default:
		return fmt.Errorf("unknown generator %q", g)
	}
	return errors.Join(err, codeW.Flush(), listingW.Flush())
}

var (
	count     int
	threads   int
	seed      int64
	out       string
	listing   string
	generator = sequential
)

func init() {
	flag.IntVar(&count, "count", 1000, "how many instructions to generate")
	flag.IntVar(&threads, "threads", 3, "how many threads to use?")
	flag.Int64Var(&seed, "seed", 1, "random seed")
	flag.StringVar(&out, "out", "movgen.bin", "binary output path")
	flag.StringVar(&listing, "listing", "movgen.asm", "expected listing output path")
	flag.Var(&generator, "generator", "how to generate data? "+generators.String())
}

func run() error {
	codeFile, err := os.Create(out)
	if err != nil {
		return err
	}
	defer codeFile.Close()

	listingFile, err := os.Create(listing)
	if err != nil {
		return err
	}
	defer listingFile.Close()

	cfg := config{count: count, threads: threads, seed: seed}
	if err := generate(generator, cfg, codeFile, listingFile); err != nil {
		return err
	}
	return errors.Join(codeFile.Close(), listingFile.Close())
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("movgen: ")
	flag.Parse()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}
