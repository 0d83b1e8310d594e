package ctrl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckFields(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(CheckFields(ControlFields))
}

func TestCheckFieldsOverlap(t *testing.T) {
	assert := assert.New(t)

	catalog := []Field{
		{Name: "a", Shift: 0, Width: 4},
		{Name: "b", Shift: 3, Width: 2},
	}

	err := CheckFields(catalog)
	assert.Equal(ErrFieldOverlap("b"), err)
}

func TestFieldConstants(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		field Field
		words []Word
	}){
		{"pc", ControlFields[0], []Word{PC_DO_NOTHING, PC_LOAD, PC_INC, PC_DEC}},
		{"addr1", ControlFields[1], []Word{ADDR_BUS_1_ASSERT_PC, ADDR_BUS_1_ASSERT_RA, ADDR_BUS_1_ASSERT_INTPC, ADDR_BUS_1_ASSERT_INTRA}},
		{"instr", ControlFields[2], []Word{INSTR_SUPPRESS}},
		{"main", ControlFields[3], []Word{MAIN_BUS_ASSERT_NONE, MAIN_BUS_ASSERT_R1, MAIN_BUS_ASSERT_R2, MAIN_BUS_ASSERT_FETCH}},
		{"r1", ControlFields[4], []Word{R1_DO_NOTHING, R1_LOAD, R1_INC, R1_DEC}},
		{"r2", ControlFields[5], []Word{R2_DO_NOTHING, R2_LOAD, R2_INC, R2_DEC}},
		{"carry", ControlFields[6], []Word{CARRY_HOLD, CARRY_CLEAR, CARRY_SET}},
	}

	for _, entry := range table {
		assert.Equal(entry.name, entry.field.Name)
		for _, word := range entry.words {
			// Every constant sits inside its own field's mask.
			assert.Zero(word&^entry.field.Mask(), entry.name)
		}
	}
}

func TestFieldHelpers(t *testing.T) {
	assert := assert.New(t)

	main := ControlFields[3]
	assert.Equal(Word(0b1111<<6), main.Mask())
	assert.Equal(MAIN_BUS_ASSERT_FETCH, main.Value(0b0011))
	assert.Equal(uint64(0b0011), main.Of(MAIN_BUS_ASSERT_FETCH|PC_INC))
}

func TestCombine(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Word(0), Combine())
	assert.Equal(PC_INC, Combine(PC_INC))
	assert.Equal(Combine(PC_INC, R1_LOAD), Combine(R1_LOAD, PC_INC))

	// Aliases are pure unions of their constituents.
	assert.Equal(Combine(ADDR_BUS_1_ASSERT_PC, PC_INC), IDLE)
	assert.Equal(Combine(MAIN_BUS_ASSERT_FETCH, INSTR_SUPPRESS), FETCH_AND_SUPPRESS)
}

func TestWordString(t *testing.T) {
	assert := assert.New(t)

	idle := IDLE.String()
	assert.Contains(idle, "pc=inc")
	assert.Contains(idle, "addr1=pc")
	assert.Contains(idle, "instr=latch")

	jmp := Instructions[OP_JMP_IMM16].Word.String()
	assert.Contains(jmp, "pc=load")
	assert.Contains(jmp, "main=fetch")
	assert.Contains(jmp, "instr=suppress")
}
