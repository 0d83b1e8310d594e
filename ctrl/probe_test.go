package ctrl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbols(t *testing.T) {
	assert := assert.New(t)

	gen := New()
	symbols := gen.Symbols()

	assert.Len(symbols, len(gen.Table)+1)
	assert.Equal(0x0000, symbols["NOP"])
	assert.Equal(0x0001, symbols["MOV_R1_IMM16"])
	assert.Equal(0x0009, symbols["JMP_IMM16"])
	assert.Equal(0x1000, symbols["CONDITION_FAIL"])
}

func TestProbe(t *testing.T) {
	assert := assert.New(t)

	gen := New()

	table := [](struct {
		expr string
		addr int
	}){
		{"NOP", 0x0000},
		{"JMP_IMM16", 0x0009},
		{"MOV_R1_IMM16 | CONDITION_FAIL", 0x1001},
		{"CLC + CONDITION_FAIL", 0x1007},
		{"0x7fff", 0x7fff},
	}

	for _, entry := range table {
		addr, err := gen.Probe(entry.expr)
		assert.NoError(err, entry.expr)
		assert.Equal(entry.addr, addr, entry.expr)
	}
}

func TestProbeErrors(t *testing.T) {
	assert := assert.New(t)

	gen := New()

	_, err := gen.Probe("no_such_symbol")
	assert.Error(err)

	_, err = gen.Probe("'nop'")
	assert.Equal(ErrParseExpression("'nop'"), err)

	_, err = gen.Probe("1 << 20)")
	assert.Error(err)

	_, err = gen.Probe("1 << 20")
	assert.Equal(ErrAddressRange(1<<20), err)

	_, err = gen.Probe("-1")
	assert.Equal(ErrAddressRange(-1), err)
}
