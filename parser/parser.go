// Package parser implements the Custom32 assembly frontend: comment
// stripping, label binding, directive tolerance, and opcode/operand
// tokenisation. It never interprets operand semantics (registers,
// immediates, addresses) — that resolution happens in package vm at
// execution time. The Program this package produces is consumed by
// package vm and by the label linter in package tools.
package parser

import (
	"os"
	"strings"
)

// Parse converts assembly source text into a Program: an ordered
// instruction list and the label table resolved against it. Parse
// never mutates the Program it returns on failure — the table and
// instruction list are built in-place and discarded together with the
// error.
func Parse(source string) (*Program, error) {
	prog := &Program{
		Labels: make(map[string]int),
	}

	lines := strings.Split(source, "\n")
	for i, raw := range lines {
		lineNo := i + 1

		cleaned := cleanLine(raw)
		if cleaned == "" {
			continue
		}

		remainder, err := stripLabels(cleaned, lineNo, len(prog.Instructions), prog.Labels)
		if err != nil {
			return nil, err
		}
		if remainder == "" || strings.HasPrefix(remainder, ".") {
			continue
		}

		op, args := splitMnemonic(remainder)
		prog.Instructions = append(prog.Instructions, Instruction{
			Op:     op,
			Args:   args,
			LineNo: lineNo,
			Raw:    cleaned,
		})
	}

	return prog, nil
}

// ParseFile reads an assembly source file and parses it.
func ParseFile(path string) (*Program, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- caller-specified assembly source path
	if err != nil {
		return nil, newError(0, path, "failed to read assembly file: "+err.Error())
	}
	return Parse(string(data))
}
