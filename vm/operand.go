package vm

import (
	"strconv"
	"strings"
)

// parseRegister parses a "R<n>" token (case-insensitive), 0 <= n < 32.
func parseRegister(token string) (int, error) {
	tok := strings.ToUpper(strings.TrimSpace(token))
	if !strings.HasPrefix(tok, "R") {
		return 0, execErrorf("", 0, "expected register token, got %q", tok)
	}
	n, err := strconv.Atoi(tok[1:])
	if err != nil {
		return 0, execErrorf("", 0, "invalid register %q", tok)
	}
	if n < 0 || n >= RegisterCount {
		return 0, execErrorf("", 0, "register out of range: %q", tok)
	}
	return n, nil
}

// parseImmediate parses an optional leading '#' then a decimal or 0x/-0x
// hex literal into a signed 64-bit intermediate value.
func parseImmediate(token string) (int64, error) {
	tok := strings.TrimPrefix(strings.TrimSpace(token), "#")

	switch {
	case strings.HasPrefix(tok, "0x"), strings.HasPrefix(tok, "0X"):
		v, err := strconv.ParseInt(tok[2:], 16, 64)
		if err != nil {
			return 0, execErrorf("", 0, "malformed immediate %q", token)
		}
		return v, nil
	case strings.HasPrefix(tok, "-0x"), strings.HasPrefix(tok, "-0X"):
		v, err := strconv.ParseInt(tok[3:], 16, 64)
		if err != nil {
			return 0, execErrorf("", 0, "malformed immediate %q", token)
		}
		return -v, nil
	default:
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return 0, execErrorf("", 0, "malformed immediate %q", token)
		}
		return v, nil
	}
}

// resolveOperandAddress implements the uniform "operand-as-address"
// rule: a register token yields its current value, a label yields its
// instruction index, and anything else is parsed as an immediate and
// truncated to 32 bits. This is the single resolver used by every
// memory-access and immediate-carrying opcode — callers never
// re-implement the three-way dispatch themselves.
func (e *Emulator) resolveOperandAddress(token string) (uint32, error) {
	trimmed := strings.TrimSpace(token)

	if strings.HasPrefix(strings.ToUpper(trimmed), "R") {
		idx, err := parseRegister(trimmed)
		if err != nil {
			return 0, err
		}
		return e.Registers.Read(idx), nil
	}
	if idx, ok := e.Labels[trimmed]; ok {
		return uint32(idx), nil
	}
	v, err := parseImmediate(trimmed)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
