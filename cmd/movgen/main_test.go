package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/artemijrodionov/sim8086/disasm"
)

// The listing is rendered by inst.Decode while generating, so this checks
// that every mode keeps code and listing chunks paired and in order. Decoding
// itself is covered by the inst tests.
func TestGenerate(t *testing.T) {
	cfg := config{count: 500, threads: 3, seed: 42}

	for _, g := range generators {
		t.Run(g.String(), func(t *testing.T) {
			var code, listing bytes.Buffer
			if err := generate(g, cfg, &code, &listing); err != nil {
				t.Fatalf("Got error %s", err)
			}

			text, ok := strings.CutPrefix(listing.String(), disasm.Header+"\n\n")
			if !ok {
				t.Fatalf("listing misses header: %q", listing.String())
			}
			want := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
			if len(want) != cfg.count {
				t.Errorf("listed %d instructions, want %d", len(want), cfg.count)
			}

			insts, err := disasm.Run(code.Bytes())
			if err != nil {
				t.Fatalf("Got error %s", err)
			}
			if diff := cmp.Diff(want, disasm.Lines(insts)); diff != "" {
				t.Errorf("listing mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerateSequentialIsDeterministic(t *testing.T) {
	cfg := config{count: 100, seed: 7}
	var first, second bytes.Buffer
	if err := generate(sequential, cfg, &first, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if err := generate(sequential, cfg, &second, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("same seed produced different streams")
	}
}

func TestGenerateUnknown(t *testing.T) {
	if err := generate(genType("nope"), config{count: 1}, &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
		t.Error("unknown generator should fail")
	}
}

func TestGenTypeSet(t *testing.T) {
	var g genType
	if err := g.Set("concurrent"); err != nil || g != concurrent {
		t.Errorf("Got %s, %v", g, err)
	}
	if err := g.Set("random"); err == nil {
		t.Error("Set should reject unknown generators")
	}
}

func TestPerChunk(t *testing.T) {
	total := 0
	for i := 0; i < 3; i++ {
		total += perChunk(10, 3, i)
	}
	if total != 10 || perChunk(10, 3, 0) != 4 || perChunk(10, 3, 2) != 3 {
		t.Errorf("perChunk split 10 over 3 as total %d", total)
	}
}
