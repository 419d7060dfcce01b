package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/artemijrodionov/sim8086/inst"
)

func writeObj(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listing")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestCli(t *testing.T, data []byte, debug bool) (*Cli, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cli, err := NewCli(writeObj(t, data), debug)
	if err != nil {
		t.Fatal(err)
	}
	var out, errOut bytes.Buffer
	cli.out = &out
	cli.errOut = &errOut
	return cli, &out, &errOut
}

func TestIsObjFile(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"", false},
		{"listing_0037.asm", false},
		{"listing_0037", true},
		{"/tmp/out.bin", true},
	}
	for _, test := range tests {
		if ok := isObjFile(test.name); ok != test.ok {
			t.Errorf("isObjFile(%q) = %t", test.name, ok)
		}
	}

	if _, err := NewCli("listing.asm", false); err == nil {
		t.Error("NewCli should reject asm sources")
	}
}

func TestRun(t *testing.T) {
	cli, out, errOut := newTestCli(t, []byte{0x89, 0xd9, 0xc6, 0x06, 0x00, 0x00, 0x07}, false)
	if err := cli.Run(); err != nil {
		t.Fatalf("Got error %s", err)
	}
	want := "bits 16\n\nmov cx, bx\nmov [0], byte 7\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected stderr %q", errOut)
	}
}

func TestRunUnknownOpcode(t *testing.T) {
	cli, out, _ := newTestCli(t, []byte{0xb1, 0x0c, 0xf4, 0xb1, 0x0c}, false)
	err := cli.Run()

	var unknown *inst.UnknownOpcodeError
	if !errors.As(err, &unknown) {
		t.Fatalf("Got %v, want UnknownOpcodeError", err)
	}
	if err.Error() != "opcode not found: 11110100" {
		t.Errorf("Got %q", err)
	}
	if diff := cmp.Diff("bits 16\n\nmov cl, 12\n", out.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRunDebug(t *testing.T) {
	cli, out, errOut := newTestCli(t, []byte{0xa1, 0xfb, 0x09}, true)
	if err := cli.Run(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(out.String(), "mov ax, [2555]\n") {
		t.Errorf("Got %q", out)
	}
	if !strings.Contains(errOut.String(), "Address") {
		t.Errorf("debug dump missing operands: %q", errOut)
	}
}

func TestRunMissingFile(t *testing.T) {
	cli, err := NewCli(filepath.Join(t.TempDir(), "missing"), false)
	if err != nil {
		t.Fatal(err)
	}
	if err := cli.Run(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Got %v", err)
	}
}
