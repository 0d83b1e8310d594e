package ctrl

// Flags is the condition-evaluator state folded into the ROM address.
type Flags uint8

const (
	// FLAG_CONDITION_FAIL is set when the hardware condition evaluator
	// rejected the governing condition of a conditional instruction.
	FLAG_CONDITION_FAIL = Flags(1 << 0)
)

// Layout is one control-logic revision's slicing of a ROM address into its
// opcode, condition-flag, and don't-care portions. Every consumer of an
// address applies the same layout; images built under different layouts are
// not interchangeable.
type Layout struct {
	AddressBits uint // total ROM address width
	OpcodeShift uint
	OpcodeWidth uint
	FlagShift   uint
	FlagWidth   uint
}

// LayoutV5 is the current revision: a 32Kx8 EEPROM bank holding a 64-bit
// control word, addressed by a 12-bit opcode in the low bits with the three
// condition flags above it.
var LayoutV5 = Layout{
	AddressBits: 15,
	OpcodeShift: 0,
	OpcodeWidth: 12,
	FlagShift:   12,
	FlagWidth:   3,
}

// Size is the number of addressable words in the ROM.
func (l Layout) Size() int {
	return 1 << l.AddressBits
}

// OpcodeMask covers the address bits holding the opcode.
func (l Layout) OpcodeMask() int {
	return ((1 << l.OpcodeWidth) - 1) << l.OpcodeShift
}

// FlagMask covers the address bits holding the condition flags.
func (l Layout) FlagMask() int {
	return ((1 << l.FlagWidth) - 1) << l.FlagShift
}

// DontCareMask covers the address bits that never influence the generated
// word. Earlier revisions padded the low address bits; LayoutV5 has none.
func (l Layout) DontCareMask() int {
	return (l.Size() - 1) &^ (l.OpcodeMask() | l.FlagMask())
}

// Opcode extracts the instruction selector from a ROM address.
func (l Layout) Opcode(addr int) Opcode {
	return Opcode((addr & l.OpcodeMask()) >> l.OpcodeShift)
}

// Flags extracts the condition flags from a ROM address.
func (l Layout) Flags(addr int) Flags {
	return Flags((addr & l.FlagMask()) >> l.FlagShift)
}

// Address composes a ROM address from an opcode and condition flags.
func (l Layout) Address(op Opcode, flags Flags) int {
	return (int(op)<<l.OpcodeShift)&l.OpcodeMask() |
		(int(flags)<<l.FlagShift)&l.FlagMask()
}
