package parser_test

import (
	"strings"
	"testing"

	"github.com/vivasaayi/custom32emu/parser"
)

func TestParse_SimpleProgram(t *testing.T) {
	prog, err := parser.Parse(`
		LOADI R1, #10
		LOADI R2, #0
	LOOP:
		ADD R2, R2, R1
		SUBI R1, R1, #1
		JNZ LOOP
		STORE R2, #0x2000
		HALT
	`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if len(prog.Instructions) != 7 {
		t.Fatalf("expected 7 instructions, got %d", len(prog.Instructions))
	}
	idx, ok := prog.Labels["LOOP"]
	if !ok || idx != 2 {
		t.Fatalf("expected label LOOP bound to instruction 2, got %d (ok=%v)", idx, ok)
	}
}

func TestParse_CommentsAndBlankLinesIgnored(t *testing.T) {
	withNoise, err := parser.Parse(`
		; a comment
		LOADI R1, #1  ; trailing comment

		HALT
	`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	clean, err := parser.Parse("LOADI R1, #1\nHALT\n")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if len(withNoise.Instructions) != len(clean.Instructions) {
		t.Fatalf("comment/blank-line noise changed instruction count: %d vs %d",
			len(withNoise.Instructions), len(clean.Instructions))
	}
	for i := range clean.Instructions {
		if withNoise.Instructions[i].Op != clean.Instructions[i].Op {
			t.Fatalf("instruction %d opcode mismatch: %q vs %q", i,
				withNoise.Instructions[i].Op, clean.Instructions[i].Op)
		}
	}
}

func TestParse_DirectivesAreIgnored(t *testing.T) {
	prog, err := parser.Parse(`
		.org 0x8000
		.text
		LOADI R1, #77
		HALT
	`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(prog.Instructions) != 2 {
		t.Fatalf("expected directives to be skipped, got %d instructions", len(prog.Instructions))
	}
}

func TestParse_DuplicateLabelRejected(t *testing.T) {
	_, err := parser.Parse(`
		A: LOADI R1, #1
		A: HALT
	`)
	if err == nil {
		t.Fatal("expected duplicate label error")
	}
	if got := strings.ToLower(err.Error()); !strings.Contains(got, "duplicate label") {
		t.Fatalf("expected error to mention duplicate label, got %q", got)
	}
}

func TestParse_ChainedLabelsOnOneLine(t *testing.T) {
	prog, err := parser.Parse("A: B: LOADI R1, #1\nHALT\n")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if prog.Labels["A"] != 0 || prog.Labels["B"] != 0 {
		t.Fatalf("expected both chained labels bound to instruction 0, got A=%d B=%d",
			prog.Labels["A"], prog.Labels["B"])
	}
}

func TestParse_IdempotentLoad(t *testing.T) {
	src := "LOADI R1, #1\nLOOP: SUBI R1, R1, #1\nJNZ LOOP\nHALT\n"
	first, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	second, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if len(first.Instructions) != len(second.Instructions) {
		t.Fatal("re-parsing the same source produced a different instruction count")
	}
	for name, idx := range first.Labels {
		if second.Labels[name] != idx {
			t.Fatalf("label %q resolved differently across loads: %d vs %d", name, idx, second.Labels[name])
		}
	}
}

func TestParse_OperandsTrimmedAndEmptyDropped(t *testing.T) {
	prog, err := parser.Parse("ADD R1,  R2 , , R3\nHALT\n")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	args := prog.Instructions[0].Args
	if len(args) != 3 || args[0] != "R1" || args[1] != "R2" || args[2] != "R3" {
		t.Fatalf("expected trimmed 3-operand list, got %#v", args)
	}
}
