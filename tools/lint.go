// Package tools provides static analysis over parsed Custom32 programs,
// independent of execution.
package tools

import (
	"fmt"
	"sort"

	"github.com/vivasaayi/custom32emu/parser"
)

// LintLevel is the severity of a lint issue.
type LintLevel int

const (
	LintError LintLevel = iota
	LintWarning
)

func (l LintLevel) String() string {
	if l == LintError {
		return "error"
	}
	return "warning"
}

// LintIssue is a single finding tied to a source line.
type LintIssue struct {
	Level   LintLevel
	Line    int
	Message string
	Code    string
}

func (i *LintIssue) String() string {
	return fmt.Sprintf("line %d: %s: %s [%s]", i.Line, i.Level, i.Message, i.Code)
}

// jumpOpcodes is the set of opcodes whose first operand is a jump
// target rather than a register, immediate, or memory address.
var jumpOpcodes = map[string]bool{
	"JMP": true, "JZ": true, "JNZ": true, "JC": true, "JNC": true,
	"JLT": true, "JGE": true, "JLE": true,
}

// Lint walks a parsed program and reports undefined and unused labels.
// It never re-parses source text: callers already hold a *parser.Program
// from a successful Parse or ParseFile call. An unused label is reported
// at the source line of the instruction it is bound to, or at line 0
// when it follows the last instruction.
func Lint(prog *parser.Program) []*LintIssue {
	var issues []*LintIssue

	used := make(map[string]bool)
	for _, inst := range prog.Instructions {
		if !jumpOpcodes[inst.Op] || len(inst.Args) == 0 {
			continue
		}
		target := inst.Args[0]
		used[target] = true
		if _, ok := prog.Labels[target]; !ok {
			if _, isImmediate := parseAsImmediate(target); isImmediate {
				continue
			}
			issues = append(issues, &LintIssue{
				Level:   LintError,
				Line:    inst.LineNo,
				Message: fmt.Sprintf("jump target %q is not a defined label", target),
				Code:    "UNDEF_LABEL",
			})
		}
	}

	names := make([]string, 0, len(prog.Labels))
	for name := range prog.Labels {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !used[name] {
			line := 0
			if idx := prog.Labels[name]; idx < len(prog.Instructions) {
				line = prog.Instructions[idx].LineNo
			}
			issues = append(issues, &LintIssue{
				Level:   LintWarning,
				Line:    line,
				Message: fmt.Sprintf("label %q is never referenced by a jump", name),
				Code:    "UNUSED_LABEL",
			})
		}
	}

	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Line < issues[j].Line })
	return issues
}

// parseAsImmediate reports whether token looks like a raw instruction
// index rather than a label reference, so the linter does not flag
// JMP #2 as an undefined label.
func parseAsImmediate(token string) (int64, bool) {
	v, err := parseImmediateForLint(token)
	if err != nil {
		return 0, false
	}
	return v, true
}
