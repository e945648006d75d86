package vm

import "github.com/vivasaayi/custom32emu/parser"

// jumpTarget resolves a jump operand: a label lookup takes priority,
// otherwise the token is parsed as an immediate instruction index.
// A negative immediate is an error.
func (e *Emulator) jumpTarget(token string) (int, error) {
	if idx, ok := e.Labels[token]; ok {
		return idx, nil
	}
	v, err := parseImmediate(token)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, execErrorf("", 0, "negative jump target: %d", v)
	}
	return int(v), nil
}

func execJmp(e *Emulator, inst parser.Instruction) (int, error) {
	return e.jumpTarget(inst.Args[0])
}

func execConditionalJump(e *Emulator, inst parser.Instruction, taken bool) (int, error) {
	if !taken {
		return e.PC + 1, nil
	}
	return e.jumpTarget(inst.Args[0])
}

func execJz(e *Emulator, inst parser.Instruction) (int, error) {
	return execConditionalJump(e, inst, e.Flags.Z)
}

func execJnz(e *Emulator, inst parser.Instruction) (int, error) {
	return execConditionalJump(e, inst, !e.Flags.Z)
}

func execJc(e *Emulator, inst parser.Instruction) (int, error) {
	return execConditionalJump(e, inst, e.Flags.C)
}

func execJnc(e *Emulator, inst parser.Instruction) (int, error) {
	return execConditionalJump(e, inst, !e.Flags.C)
}

// execJlt treats N alone as "less than" — it does not consider V, so
// this is not a true signed comparison. This matches the reference
// behaviour exactly and must not be "fixed".
func execJlt(e *Emulator, inst parser.Instruction) (int, error) {
	return execConditionalJump(e, inst, e.Flags.N)
}

func execJge(e *Emulator, inst parser.Instruction) (int, error) {
	return execConditionalJump(e, inst, !e.Flags.N)
}

func execJle(e *Emulator, inst parser.Instruction) (int, error) {
	return execConditionalJump(e, inst, e.Flags.Z || e.Flags.N)
}

func execHalt(e *Emulator, _ parser.Instruction) (int, error) {
	e.Halted = true
	return e.PC + 1, nil
}
