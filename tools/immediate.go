package tools

import (
	"strconv"
	"strings"
)

// parseImmediateForLint mirrors the immediate syntax the interpreter
// accepts (optional '#', decimal, 0x/-0x hex) so the linter can tell a
// raw jump-target index from an undefined label without importing the
// vm package's unexported resolver.
func parseImmediateForLint(token string) (int64, error) {
	tok := strings.TrimPrefix(strings.TrimSpace(token), "#")

	switch {
	case strings.HasPrefix(tok, "0x"), strings.HasPrefix(tok, "0X"):
		return strconv.ParseInt(tok[2:], 16, 64)
	case strings.HasPrefix(tok, "-0x"), strings.HasPrefix(tok, "-0X"):
		v, err := strconv.ParseInt(tok[3:], 16, 64)
		return -v, err
	default:
		return strconv.ParseInt(tok, 10, 64)
	}
}
