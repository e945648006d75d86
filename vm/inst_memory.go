package vm

import "github.com/vivasaayi/custom32emu/parser"

// execLoad implements LOAD rd, addr: rd <- mem32[addr], logic flags.
func execLoad(e *Emulator, inst parser.Instruction) (int, error) {
	rd, err := parseRegister(inst.Args[0])
	if err != nil {
		return 0, err
	}
	addr, err := e.resolveOperandAddress(inst.Args[1])
	if err != nil {
		return 0, err
	}

	val, err := e.Memory.ReadWord(addr)
	if err != nil {
		return 0, execErrorf(inst.Op, inst.LineNo, "%s", err.Error())
	}
	e.Registers.Write(rd, val)
	e.Flags.setLogic(val)
	return e.PC + 1, nil
}

// execStore implements STORE rs, addr: mem32[addr] <- rs. Flags are
// untouched.
func execStore(e *Emulator, inst parser.Instruction) (int, error) {
	rs, err := parseRegister(inst.Args[0])
	if err != nil {
		return 0, err
	}
	addr, err := e.resolveOperandAddress(inst.Args[1])
	if err != nil {
		return 0, err
	}

	if err := e.Memory.WriteWord(addr, e.Registers.Read(rs)); err != nil {
		return 0, execErrorf(inst.Op, inst.LineNo, "%s", err.Error())
	}
	return e.PC + 1, nil
}
