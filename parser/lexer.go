package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// cleanLine strips a trailing comment (everything from the first ';'
// onward) and trims surrounding whitespace.
func cleanLine(line string) string {
	if idx := strings.IndexByte(line, ';'); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}

// stripLabels repeatedly peels "label:" prefixes off the front of a
// cleaned line, binding each to instrIndex (the index the next
// instruction will occupy). It returns the remaining text after all
// labels have been consumed, and stops at the first segment that is
// not itself a label definition.
func stripLabels(line string, lineNo, instrIndex int, labels map[string]int) (string, error) {
	current := line
	for {
		name, rest, found := strings.Cut(current, ":")
		if !found {
			break
		}
		name = strings.TrimSpace(name)
		if name == "" {
			break
		}
		if _, dup := labels[name]; dup {
			return "", newError(lineNo, name, "Duplicate label")
		}
		labels[name] = instrIndex
		current = strings.TrimSpace(rest)
		if current == "" {
			break
		}
	}
	return current, nil
}

// splitMnemonic separates an opcode/operand line into its uppercased
// mnemonic and its comma-separated, trimmed, non-empty operand tokens.
func splitMnemonic(text string) (string, []string) {
	op, rest, found := cutWhitespace(text)
	if !found {
		return strings.ToUpper(strings.TrimSpace(text)), nil
	}

	op = strings.ToUpper(strings.TrimSpace(op))
	var args []string
	for _, tok := range strings.Split(rest, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			args = append(args, tok)
		}
	}
	return op, args
}

// cutWhitespace splits at the first whitespace rune, Go's strings.Cut
// only understands literal separators.
func cutWhitespace(s string) (before, after string, found bool) {
	for i, r := range s {
		if unicode.IsSpace(r) {
			return s[:i], s[i+utf8.RuneLen(r):], true
		}
	}
	return s, "", false
}
