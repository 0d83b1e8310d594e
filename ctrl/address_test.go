package ctrl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutV5(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(32768, LayoutV5.Size())
	assert.Equal(0x0fff, LayoutV5.OpcodeMask())
	assert.Equal(0x7000, LayoutV5.FlagMask())
	assert.Equal(0, LayoutV5.DontCareMask())
}

func TestLayoutSlicing(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		addr   int
		opcode Opcode
		flags  Flags
	}){
		{"zero", 0x0000, 0x000, 0},
		{"opcode_only", 0x0009, 0x009, 0},
		{"flag_only", 0x1000, 0x000, 1},
		{"both", 0x1001, 0x001, 1},
		{"all_flags", 0x7fff, 0xfff, 7},
	}

	for _, entry := range table {
		assert.Equal(entry.opcode, LayoutV5.Opcode(entry.addr), entry.name)
		assert.Equal(entry.flags, LayoutV5.Flags(entry.addr), entry.name)
		assert.Equal(entry.addr, LayoutV5.Address(entry.opcode, entry.flags), entry.name)
	}
}

func TestLayoutDontCare(t *testing.T) {
	assert := assert.New(t)

	// An earlier-revision style layout with padded low address bits.
	padded := Layout{
		AddressBits: 15,
		OpcodeShift: 4,
		OpcodeWidth: 8,
		FlagShift:   12,
		FlagWidth:   3,
	}

	assert.Equal(0x000f, padded.DontCareMask())

	// The don't-care bits never influence the decoded opcode or flags.
	for low := range 16 {
		addr := padded.Address(0x42, 1) | low
		assert.Equal(Opcode(0x42), padded.Opcode(addr))
		assert.Equal(Flags(1), padded.Flags(addr))
	}
}
