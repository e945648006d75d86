package vm

import (
	"fmt"
	"io"

	"github.com/vivasaayi/custom32emu/parser"
)

// handler executes one opcode against the emulator and the already
// arity-checked instruction. It returns the PC the interpreter should
// resume at; handlers that don't branch (and untaken conditional jumps)
// return e.PC+1 themselves.
type handler func(e *Emulator, inst parser.Instruction) (nextPC int, err error)

// arities records the exact operand count each opcode requires. Step
// checks this before dispatch so every handler can assume its operand
// count is already correct.
var arities = map[string]int{
	"LOADI": 2, "LOAD": 2, "STORE": 2,
	"ADD": 3, "ADDI": 3, "SUB": 3, "SUBI": 3,
	"AND": 3, "OR": 3, "XOR": 3, "SHL": 3, "SHR": 3,
	"CMP": 2,
	"JMP": 1, "JZ": 1, "JNZ": 1, "JC": 1, "JNC": 1, "JLT": 1, "JGE": 1, "JLE": 1,
	"HALT": 0,
}

// opcodes is the dispatch table. It is checked against arities by the
// test suite so every registered opcode has a declared arity and vice
// versa.
var opcodes = map[string]handler{
	"LOADI": execLoadI,
	"LOAD":  execLoad,
	"STORE": execStore,
	"ADD":   execAdd,
	"ADDI":  execAddI,
	"SUB":   execSub,
	"SUBI":  execSubI,
	"AND":   execAnd,
	"OR":    execOr,
	"XOR":   execXor,
	"SHL":   execShl,
	"SHR":   execShr,
	"CMP":   execCmp,
	"JMP":   execJmp,
	"JZ":    execJz,
	"JNZ":   execJnz,
	"JC":    execJc,
	"JNC":   execJnc,
	"JLT":   execJlt,
	"JGE":   execJge,
	"JLE":   execJle,
	"HALT":  execHalt,
}

func ensureArgs(inst parser.Instruction) error {
	want, known := arities[inst.Op]
	if !known {
		return nil // unknown opcodes are reported by the dispatch miss itself
	}
	if len(inst.Args) != want {
		return execErrorf(inst.Op, inst.LineNo,
			"wrong arg count: expected %d, got %d", want, len(inst.Args))
	}
	return nil
}

// Step executes a single fetch-decode-execute cycle. If the emulator is
// already halted it is a no-op and does not count as a step. If trace
// is non-nil, one line is written before dispatch:
// "pc=<4-digit> | <raw>".
func (e *Emulator) Step(trace io.Writer) error {
	if e.Halted {
		return nil
	}
	if e.PC >= len(e.Instructions) {
		return execErrorf("", 0, "PC out of range: %d", e.PC)
	}

	inst := e.Instructions[e.PC]
	if trace != nil {
		fmt.Fprintf(trace, "pc=%04d | %s\n", e.PC, inst.Raw)
	}
	if e.Trace != nil {
		e.Trace.record(e.PC, inst.Raw)
	}

	if err := ensureArgs(inst); err != nil {
		return err
	}

	fn, ok := opcodes[inst.Op]
	if !ok {
		return execErrorf(inst.Op, inst.LineNo, "Unsupported opcode: %s", inst.Raw) //nolint:staticcheck // message text is load-bearing for callers matching on it
	}

	nextPC, err := fn(e, inst)
	if err != nil {
		if ee, ok := err.(*ExecError); ok && ee.Op == "" {
			ee.Op, ee.LineNo = inst.Op, inst.LineNo
		}
		return err
	}

	e.PC = nextPC
	e.Registers[0] = 0
	e.InstructionCount++
	if e.Statistics != nil {
		e.Statistics.record(inst.Op)
	}
	return nil
}

// Run steps until halted or max_steps is exhausted. A successful
// return implies Halted == true.
func (e *Emulator) Run(maxSteps int, trace io.Writer) error {
	for !e.Halted && e.InstructionCount < maxSteps {
		if err := e.Step(trace); err != nil {
			return err
		}
	}
	if !e.Halted {
		return execErrorf("", 0, "did not halt after %d steps", maxSteps)
	}
	return nil
}
