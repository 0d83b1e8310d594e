// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package ctrl

// Generator maps every ROM address to its control word. It is pure and
// deterministic: the layout and table are fixed before generation begins
// and never mutated.
type Generator struct {
	Layout Layout
	Table  map[Opcode]Instruction
}

// New returns the generator for the current control-logic revision.
func New() *Generator {
	return &Generator{
		Layout: LayoutV5,
		Table:  Instructions,
	}
}

// ControlWord returns the word to program at one ROM address.
//
// Unknown opcodes resolve to the idle word rather than an error; the control
// bus must be defined for every encodable opcode. A conditional instruction
// whose condition failed is replaced by the idle word, still suppressing the
// instruction latch when a trailing immediate must be fetched and discarded.
func (gen *Generator) ControlWord(addr int) Word {
	op := gen.Layout.Opcode(addr)
	flags := gen.Layout.Flags(addr)

	in, ok := gen.Table[op]
	if !ok {
		return IDLE
	}

	if in.Conditional && flags&FLAG_CONDITION_FAIL != 0 {
		if in.Immediate {
			return IDLE | INSTR_SUPPRESS
		}
		return IDLE
	}

	return in.Word
}
