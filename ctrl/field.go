package ctrl

import (
	"fmt"
	"strings"
)

// Word is one 64-bit control word: the complete set of control-line levels
// the ROM asserts for one clock step, packed as a bit vector.
type Word uint64

// Field describes one contiguous signal field within the control word.
type Field struct {
	Name   string
	Shift  uint
	Width  uint
	Values map[uint64]string // names of the legal in-field values
}

// Mask returns the field's bit positions within the control word.
func (f Field) Mask() Word {
	return Word((uint64(1)<<f.Width)-1) << f.Shift
}

// Value positions an in-field value into the control word.
func (f Field) Value(v uint64) Word {
	return Word(v<<f.Shift) & f.Mask()
}

// Of extracts the field's value from a control word.
func (f Field) Of(w Word) uint64 {
	return uint64(w&f.Mask()) >> f.Shift
}

// Control word field values. Bits 63:16 are reserved and always zero.
const (
	// bits 1:0 -- PC load/inc/dec
	PC_DO_NOTHING = Word(0b00 << 0)
	PC_LOAD       = Word(0b01 << 0)
	PC_INC        = Word(0b10 << 0)
	PC_DEC        = Word(0b11 << 0)

	// bits 4:2 -- assert to Address Bus 1
	ADDR_BUS_1_ASSERT_PC    = Word(0b000 << 2)
	ADDR_BUS_1_ASSERT_RA    = Word(0b001 << 2)
	ADDR_BUS_1_ASSERT_INTPC = Word(0b010 << 2)
	ADDR_BUS_1_ASSERT_INTRA = Word(0b011 << 2)

	// bit 5 -- hold the fetched word out of the instruction register
	// for one cycle
	INSTR_SUPPRESS = Word(1 << 5)

	// bits 9:6 -- assert to the main bus
	MAIN_BUS_ASSERT_NONE  = Word(0b0000 << 6)
	MAIN_BUS_ASSERT_R1    = Word(0b0001 << 6)
	MAIN_BUS_ASSERT_R2    = Word(0b0010 << 6)
	MAIN_BUS_ASSERT_FETCH = Word(0b0011 << 6)

	// bits 11:10 -- R1 load/inc/dec
	R1_DO_NOTHING = Word(0b00 << 10)
	R1_LOAD       = Word(0b01 << 10)
	R1_INC        = Word(0b10 << 10)
	R1_DEC        = Word(0b11 << 10)

	// bits 13:12 -- R2 load/inc/dec
	R2_DO_NOTHING = Word(0b00 << 12)
	R2_LOAD       = Word(0b01 << 12)
	R2_INC        = Word(0b10 << 12)
	R2_DEC        = Word(0b11 << 12)

	// bits 15:14 -- carry flag latch
	CARRY_HOLD  = Word(0b00 << 14)
	CARRY_CLEAR = Word(0b01 << 14)
	CARRY_SET   = Word(0b10 << 14)
)

// Pre-combined aliases; pure unions of their constituents.
const (
	// IDLE keeps the fetch/advance cycle alive: the PC drives Address
	// Bus 1 and increments, and the next instruction latches normally.
	IDLE = ADDR_BUS_1_ASSERT_PC | PC_INC

	// FETCH_AND_SUPPRESS places the fetched word on the main bus while
	// keeping it out of the instruction register.
	FETCH_AND_SUPPRESS = MAIN_BUS_ASSERT_FETCH | INSTR_SUPPRESS
)

// actionValues names the common load/inc/dec field encoding.
var actionValues = map[uint64]string{
	0b00: "hold",
	0b01: "load",
	0b10: "inc",
	0b11: "dec",
}

// ControlFields catalogs every field of the control word. No two fields
// share a bit position; CheckFields enforces this.
var ControlFields = []Field{
	{Name: "pc", Shift: 0, Width: 2, Values: actionValues},
	{Name: "addr1", Shift: 2, Width: 3, Values: map[uint64]string{
		0b000: "pc",
		0b001: "ra",
		0b010: "intpc",
		0b011: "intra",
	}},
	{Name: "instr", Shift: 5, Width: 1, Values: map[uint64]string{
		0: "latch",
		1: "suppress",
	}},
	{Name: "main", Shift: 6, Width: 4, Values: map[uint64]string{
		0b0000: "none",
		0b0001: "r1",
		0b0010: "r2",
		0b0011: "fetch",
	}},
	{Name: "r1", Shift: 10, Width: 2, Values: actionValues},
	{Name: "r2", Shift: 12, Width: 2, Values: actionValues},
	{Name: "carry", Shift: 14, Width: 2, Values: map[uint64]string{
		0b00: "hold",
		0b01: "clear",
		0b10: "set",
	}},
}

// Combine assembles positioned field values into one control word.
func Combine(values ...Word) (word Word) {
	for _, value := range values {
		word |= value
	}
	return
}

// CheckFields verifies that no two fields of a catalog claim the same bit.
func CheckFields(fields []Field) error {
	var seen Word
	for _, field := range fields {
		if seen&field.Mask() != 0 {
			return ErrFieldOverlap(field.Name)
		}
		seen |= field.Mask()
	}
	return nil
}

// String decodes the word field by field using the control field catalog.
func (w Word) String() string {
	parts := make([]string, 0, len(ControlFields))
	for _, field := range ControlFields {
		value := field.Of(w)
		name, ok := field.Values[value]
		if !ok {
			name = fmt.Sprintf("%#x", value)
		}
		parts = append(parts, fmt.Sprintf("%v=%v", field.Name, name))
	}
	return fmt.Sprintf("%#016x %v", uint64(w), strings.Join(parts, " "))
}
