package vm

import "testing"

func TestMemory_LittleEndianRoundTrip(t *testing.T) {
	m := NewMemory(0x3000)
	if err := m.WriteWord(0x2100, 0x12345678); err != nil {
		t.Fatalf("WriteWord: %v", err)
	}
	got, err := m.ReadWord(0x2100)
	if err != nil {
		t.Fatalf("ReadWord: %v", err)
	}
	if got != 0x12345678 {
		t.Fatalf("got %#x, want %#x", got, 0x12345678)
	}

	raw := m.data[0x2100:0x2104]
	if raw[0] != 0x78 || raw[3] != 0x12 {
		t.Fatalf("expected little-endian byte layout, got %v", raw)
	}
}

func TestMemory_UnalignedAccessRejected(t *testing.T) {
	m := NewMemory(0x3000)
	if err := m.WriteWord(0x101, 1); err == nil {
		t.Fatal("expected error for unaligned write")
	} else if got := err.Error(); got != "Unaligned STORE at 0x101" {
		t.Fatalf("unexpected error text: %q", got)
	}

	if _, err := m.ReadWord(0x101); err == nil {
		t.Fatal("expected error for unaligned read")
	}
}

func TestMemory_OutOfRangeAccessRejected(t *testing.T) {
	m := NewMemory(16)
	if err := m.WriteWord(16, 1); err == nil {
		t.Fatal("expected out-of-range error")
	}
	if _, err := m.ReadWord(16); err == nil {
		t.Fatal("expected out-of-range error")
	}
}

func TestMemory_FailedWriteLeavesMemoryUnmodified(t *testing.T) {
	m := NewMemory(16)
	_ = m.WriteWord(0, 0xAABBCCDD)
	if err := m.WriteWord(16, 1); err == nil {
		t.Fatal("expected error")
	}
	got, err := m.ReadWord(0)
	if err != nil {
		t.Fatalf("ReadWord: %v", err)
	}
	if got != 0xAABBCCDD {
		t.Fatalf("prior contents were disturbed by failed write: got %#x", got)
	}
}
