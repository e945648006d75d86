package vm

// Architectural constants for the Custom32 register file and memory.
const (
	RegisterCount     = 32
	DefaultMemorySize = 1 << 20 // 1 MiB
	WordSize          = 4

	SignBitMask uint32 = 0x8000_0000
)
