package ctrl

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Symbols returns the predefined identifiers available to Probe expressions:
// every opcode mnemonic (uppercased, dots as underscores) and CONDITION_FAIL,
// each already positioned within the ROM address.
func (gen *Generator) Symbols() map[string]int {
	symbols := make(map[string]int, len(gen.Table)+1)
	for op := range gen.Table {
		name := strings.ToUpper(strings.ReplaceAll(op.String(), ".", "_"))
		symbols[name] = gen.Layout.Address(op, 0)
	}
	symbols["CONDITION_FAIL"] = gen.Layout.Address(0, FLAG_CONDITION_FAIL)
	return symbols
}

// Probe evaluates a symbolic ROM address expression, e.g.
// "JMP_IMM16 | CONDITION_FAIL".
func (gen *Generator) Probe(expr string) (addr int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}

	pred := starlark.StringDict{}
	for name, value := range gen.Symbols() {
		pred[name] = starlark.MakeInt(value)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	if st_int64 < 0 || st_int64 >= int64(gen.Layout.Size()) {
		err = ErrAddressRange(st_int64)
		return
	}
	addr = int(st_int64)
	return
}
