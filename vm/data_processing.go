package vm

import "github.com/vivasaayi/custom32emu/parser"

// execLoadI implements LOADI rd, imm: rd <- imm, logic flags.
func execLoadI(e *Emulator, inst parser.Instruction) (int, error) {
	rd, err := parseRegister(inst.Args[0])
	if err != nil {
		return 0, err
	}
	imm, err := e.resolveOperandAddress(inst.Args[1])
	if err != nil {
		return 0, err
	}
	e.Registers.Write(rd, imm)
	e.Flags.setLogic(imm)
	return e.PC + 1, nil
}

// execAdd implements ADD rd, rs1, rs2: rd <- rs1 + rs2 (wrap), arith flags.
func execAdd(e *Emulator, inst parser.Instruction) (int, error) {
	rd, err := parseRegister(inst.Args[0])
	if err != nil {
		return 0, err
	}
	rs1, err := parseRegister(inst.Args[1])
	if err != nil {
		return 0, err
	}
	rs2, err := parseRegister(inst.Args[2])
	if err != nil {
		return 0, err
	}

	a, b := e.Registers.Read(rs1), e.Registers.Read(rs2)
	result := a + b
	e.Registers.Write(rd, result)
	e.Flags.setArith(result, addCarry(a, b), addOverflow(a, b, result))
	return e.PC + 1, nil
}

// execAddI implements ADDI rd, rs1, imm: rd <- rs1 + imm (wrap), arith flags.
func execAddI(e *Emulator, inst parser.Instruction) (int, error) {
	rd, err := parseRegister(inst.Args[0])
	if err != nil {
		return 0, err
	}
	rs1, err := parseRegister(inst.Args[1])
	if err != nil {
		return 0, err
	}
	imm, err := e.resolveOperandAddress(inst.Args[2])
	if err != nil {
		return 0, err
	}

	a := e.Registers.Read(rs1)
	result := a + imm
	e.Registers.Write(rd, result)
	e.Flags.setArith(result, addCarry(a, imm), addOverflow(a, imm, result))
	return e.PC + 1, nil
}

// execSub implements SUB rd, rs1, rs2: rd <- rs1 - rs2 (wrap), arith flags.
func execSub(e *Emulator, inst parser.Instruction) (int, error) {
	rd, err := parseRegister(inst.Args[0])
	if err != nil {
		return 0, err
	}
	rs1, err := parseRegister(inst.Args[1])
	if err != nil {
		return 0, err
	}
	rs2, err := parseRegister(inst.Args[2])
	if err != nil {
		return 0, err
	}

	a, b := e.Registers.Read(rs1), e.Registers.Read(rs2)
	result := a - b
	e.Registers.Write(rd, result)
	e.Flags.setArith(result, subCarry(a, b), subOverflow(a, b, result))
	return e.PC + 1, nil
}

// execSubI implements SUBI rd, rs1, imm: rd <- rs1 - imm (wrap), arith flags.
func execSubI(e *Emulator, inst parser.Instruction) (int, error) {
	rd, err := parseRegister(inst.Args[0])
	if err != nil {
		return 0, err
	}
	rs1, err := parseRegister(inst.Args[1])
	if err != nil {
		return 0, err
	}
	imm, err := e.resolveOperandAddress(inst.Args[2])
	if err != nil {
		return 0, err
	}

	a := e.Registers.Read(rs1)
	result := a - imm
	e.Registers.Write(rd, result)
	e.Flags.setArith(result, subCarry(a, imm), subOverflow(a, imm, result))
	return e.PC + 1, nil
}

// execCmp implements CMP rs1, rs2: compute rs1 - rs2, discard result, arith flags.
func execCmp(e *Emulator, inst parser.Instruction) (int, error) {
	rs1, err := parseRegister(inst.Args[0])
	if err != nil {
		return 0, err
	}
	rs2, err := parseRegister(inst.Args[1])
	if err != nil {
		return 0, err
	}

	a, b := e.Registers.Read(rs1), e.Registers.Read(rs2)
	result := a - b
	e.Flags.setArith(result, subCarry(a, b), subOverflow(a, b, result))
	return e.PC + 1, nil
}

func execBitwise(e *Emulator, inst parser.Instruction, op func(a, b uint32) uint32) (int, error) {
	rd, err := parseRegister(inst.Args[0])
	if err != nil {
		return 0, err
	}
	rs1, err := parseRegister(inst.Args[1])
	if err != nil {
		return 0, err
	}
	rs2, err := parseRegister(inst.Args[2])
	if err != nil {
		return 0, err
	}

	result := op(e.Registers.Read(rs1), e.Registers.Read(rs2))
	e.Registers.Write(rd, result)
	e.Flags.setLogic(result)
	return e.PC + 1, nil
}

func execAnd(e *Emulator, inst parser.Instruction) (int, error) {
	return execBitwise(e, inst, func(a, b uint32) uint32 { return a & b })
}

func execOr(e *Emulator, inst parser.Instruction) (int, error) {
	return execBitwise(e, inst, func(a, b uint32) uint32 { return a | b })
}

func execXor(e *Emulator, inst parser.Instruction) (int, error) {
	return execBitwise(e, inst, func(a, b uint32) uint32 { return a ^ b })
}

// execShl implements SHL rd, rs1, imm: rd <- rs1 << (imm & 31), logical, logic flags.
func execShl(e *Emulator, inst parser.Instruction) (int, error) {
	rd, err := parseRegister(inst.Args[0])
	if err != nil {
		return 0, err
	}
	rs1, err := parseRegister(inst.Args[1])
	if err != nil {
		return 0, err
	}
	amount, err := e.resolveOperandAddress(inst.Args[2])
	if err != nil {
		return 0, err
	}

	result := e.Registers.Read(rs1) << (amount & 31)
	e.Registers.Write(rd, result)
	e.Flags.setLogic(result)
	return e.PC + 1, nil
}

// execShr implements SHR rd, rs1, imm: rd <- rs1 >> (imm & 31), logical, logic flags.
func execShr(e *Emulator, inst parser.Instruction) (int, error) {
	rd, err := parseRegister(inst.Args[0])
	if err != nil {
		return 0, err
	}
	rs1, err := parseRegister(inst.Args[1])
	if err != nil {
		return 0, err
	}
	amount, err := e.resolveOperandAddress(inst.Args[2])
	if err != nil {
		return 0, err
	}

	result := e.Registers.Read(rs1) >> (amount & 31)
	e.Registers.Write(rd, result)
	e.Flags.setLogic(result)
	return e.PC + 1, nil
}
