package vm

import "testing"

func TestAddFlags_CarryAndOverflow(t *testing.T) {
	cases := []struct {
		name             string
		a, b             uint32
		wantCarry        bool
		wantOverflow     bool
		wantZero         bool
		wantNeg          bool
	}{
		{"no carry, no overflow", 1, 1, false, false, false, false},
		{"unsigned carry out", 0xFFFFFFFF, 1, true, false, true, false},
		{"signed overflow, positive+positive", 0x7FFFFFFF, 1, false, true, false, true},
		{"negative+negative, carry and signed overflow", 0x80000000, 0x80000000, true, true, true, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result := c.a + c.b
			if got := addCarry(c.a, c.b); got != c.wantCarry {
				t.Errorf("addCarry(%#x,%#x) = %v, want %v", c.a, c.b, got, c.wantCarry)
			}
			if got := addOverflow(c.a, c.b, result); got != c.wantOverflow {
				t.Errorf("addOverflow(%#x,%#x,%#x) = %v, want %v", c.a, c.b, result, got, c.wantOverflow)
			}

			var f Flags
			f.setArith(result, addCarry(c.a, c.b), addOverflow(c.a, c.b, result))
			if f.Z != c.wantZero {
				t.Errorf("Z = %v, want %v", f.Z, c.wantZero)
			}
			if f.N != c.wantNeg {
				t.Errorf("N = %v, want %v", f.N, c.wantNeg)
			}
		})
	}
}

func TestSubFlags_NoBorrowCarryConvention(t *testing.T) {
	cases := []struct {
		name         string
		a, b         uint32
		wantCarry    bool // true = no borrow, i.e. a >= b
		wantOverflow bool
		wantNeg      bool
	}{
		{"a >= b, no borrow", 10, 3, true, false, false},
		{"a < b, borrow, underflow wraps negative", 0, 1, false, false, true},
		{"min signed minus 1 overflows", 0x80000000, 1, true, true, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result := c.a - c.b
			if got := subCarry(c.a, c.b); got != c.wantCarry {
				t.Errorf("subCarry(%#x,%#x) = %v, want %v", c.a, c.b, got, c.wantCarry)
			}
			if got := subOverflow(c.a, c.b, result); got != c.wantOverflow {
				t.Errorf("subOverflow(%#x,%#x,%#x) = %v, want %v", c.a, c.b, result, got, c.wantOverflow)
			}

			var f Flags
			f.setArith(result, subCarry(c.a, c.b), subOverflow(c.a, c.b, result))
			if f.N != c.wantNeg {
				t.Errorf("N = %v, want %v", f.N, c.wantNeg)
			}
		})
	}
}

func TestLogicFlags_ClearCarryAndOverflow(t *testing.T) {
	var f Flags
	f.C = true
	f.V = true
	f.setLogic(0)
	if f.C || f.V {
		t.Fatal("logic flag discipline must clear C and V")
	}
	if !f.Z {
		t.Fatal("expected Z set for zero result")
	}

	f.setLogic(0x80000000)
	if !f.N {
		t.Fatal("expected N set for negative result")
	}
}
