package vm

import (
	"fmt"
	"strings"

	"github.com/vivasaayi/custom32emu/parser"
)

// Emulator is the aggregate Custom32 machine state: memory, registers,
// flags, program counter, the loaded instruction stream and label
// table, and the bookkeeping fields (halted, instruction count) the
// interpreter loop maintains.
type Emulator struct {
	Memory    *Memory
	Registers RegisterFile
	Flags     Flags

	PC               int
	Halted           bool
	InstructionCount int

	Instructions []parser.Instruction
	Labels       map[string]int

	// Trace and Statistics are optional diagnostic sinks; both are nil
	// until the caller attaches them, and step/run never allocate them
	// on their own.
	Trace      *ExecutionTrace
	Statistics *PerformanceStatistics
}

// New creates an Emulator with a memory buffer of the given size.
func New(memorySize int) *Emulator {
	return &Emulator{
		Memory: NewMemory(memorySize),
		Labels: make(map[string]int),
	}
}

// NewDefault creates an Emulator with the default 1 MiB memory size.
func NewDefault() *Emulator {
	return New(DefaultMemorySize)
}

// LoadAssemblyText parses source and installs its instructions and
// label table. It resets Instructions, Labels, PC, Halted, and
// InstructionCount, but preserves Registers, Flags, and Memory — a
// reload into a used emulator keeps prior memory contents and register
// values intact.
func (e *Emulator) LoadAssemblyText(source string) error {
	prog, err := parser.Parse(source)
	if err != nil {
		return err
	}

	e.Instructions = prog.Instructions
	e.Labels = prog.Labels
	e.PC = 0
	e.Halted = false
	e.InstructionCount = 0
	return nil
}

// LoadAssemblyFile reads and loads an assembly source file.
func (e *Emulator) LoadAssemblyFile(path string) error {
	prog, err := parser.ParseFile(path)
	if err != nil {
		return err
	}

	e.Instructions = prog.Instructions
	e.Labels = prog.Labels
	e.PC = 0
	e.Halted = false
	e.InstructionCount = 0
	return nil
}

// ReadWord reads a word from emulator memory.
func (e *Emulator) ReadWord(addr uint32) (uint32, error) {
	return e.Memory.ReadWord(addr)
}

// WriteWord writes a word to emulator memory.
func (e *Emulator) WriteWord(addr uint32, value uint32) error {
	return e.Memory.WriteWord(addr, value)
}

// Summary renders a one-line human-readable state digest:
//
//	halted=<bool> steps=<n> pc=<n> flags(C=<0|1> Z=<0|1> N=<0|1> V=<0|1>) <reg-list>
//
// <reg-list> lists up to the first 12 nonzero registers as
// R<i>=0x<8-hex>, space-separated; if more exist, " ..." is appended.
func (e *Emulator) Summary() string {
	type pair struct {
		idx int
		val uint32
	}
	var nonzero []pair
	for i, v := range e.Registers {
		if v != 0 {
			nonzero = append(nonzero, pair{i, v})
		}
	}

	var regs []string
	limit := len(nonzero)
	if limit > 12 {
		limit = 12
	}
	for _, p := range nonzero[:limit] {
		regs = append(regs, fmt.Sprintf("R%d=0x%08X", p.idx, p.val))
	}
	regList := strings.Join(regs, " ")
	if len(nonzero) > 12 {
		regList += " ..."
	}

	return fmt.Sprintf(
		"halted=%t steps=%d pc=%d flags(C=%d Z=%d N=%d V=%d) %s",
		e.Halted, e.InstructionCount, e.PC,
		boolToBit(e.Flags.C), boolToBit(e.Flags.Z), boolToBit(e.Flags.N), boolToBit(e.Flags.V),
		regList,
	)
}

func boolToBit(b bool) int {
	if b {
		return 1
	}
	return 0
}
