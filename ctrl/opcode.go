package ctrl

// Opcode is the instruction selector portion of a ROM address.
type Opcode uint16

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP          = Opcode(0x000) // nop
	OP_MOV_R1_IMM16 = Opcode(0x001) // mov.r1.imm16
	OP_MOV_R2_IMM16 = Opcode(0x002) // mov.r2.imm16
	OP_MOV_R1_R2    = Opcode(0x003) // mov.r1.r2
	OP_MOV_R2_R1    = Opcode(0x004) // mov.r2.r1
	OP_INC_R1       = Opcode(0x005) // inc.r1
	OP_DEC_R1       = Opcode(0x006) // dec.r1
	OP_CLC          = Opcode(0x007) // clc
	OP_STC          = Opcode(0x008) // stc
	OP_JMP_IMM16    = Opcode(0x009) // jmp.imm16
	OP_JMP_R1       = Opcode(0x00a) // jmp.r1
	OP_HLT          = Opcode(0x00b) // hlt
)

// Instruction describes how one opcode drives the control bus.
type Instruction struct {
	Op          Opcode
	Conditional bool // effect is gated on the condition evaluator
	Immediate   bool // a trailing immediate word follows the instruction
	Word        Word // control word asserted when the instruction executes
}

// Instructions is the current revision's instruction table. Opcodes absent
// from the table decode to the idle word.
var Instructions = map[Opcode]Instruction{
	OP_NOP: {Op: OP_NOP, Word: IDLE},

	OP_MOV_R1_IMM16: {Op: OP_MOV_R1_IMM16, Conditional: true, Immediate: true,
		Word: Combine(IDLE, FETCH_AND_SUPPRESS, R1_LOAD)},
	OP_MOV_R2_IMM16: {Op: OP_MOV_R2_IMM16, Conditional: true, Immediate: true,
		Word: Combine(IDLE, FETCH_AND_SUPPRESS, R2_LOAD)},

	OP_MOV_R1_R2: {Op: OP_MOV_R1_R2, Conditional: true,
		Word: Combine(IDLE, MAIN_BUS_ASSERT_R2, R1_LOAD)},
	OP_MOV_R2_R1: {Op: OP_MOV_R2_R1, Conditional: true,
		Word: Combine(IDLE, MAIN_BUS_ASSERT_R1, R2_LOAD)},

	OP_INC_R1: {Op: OP_INC_R1, Conditional: true,
		Word: Combine(IDLE, R1_INC)},
	OP_DEC_R1: {Op: OP_DEC_R1, Conditional: true,
		Word: Combine(IDLE, R1_DEC)},

	OP_CLC: {Op: OP_CLC, Conditional: true,
		Word: Combine(IDLE, CARRY_CLEAR)},
	OP_STC: {Op: OP_STC, Conditional: true,
		Word: Combine(IDLE, CARRY_SET)},

	// Jumps load the PC in place of incrementing it. The immediate form
	// also fetches its target this cycle, so the fetched word must stay
	// out of the instruction register.
	OP_JMP_IMM16: {Op: OP_JMP_IMM16, Conditional: true, Immediate: true,
		Word: Combine(ADDR_BUS_1_ASSERT_PC, MAIN_BUS_ASSERT_FETCH, PC_LOAD, INSTR_SUPPRESS)},
	OP_JMP_R1: {Op: OP_JMP_R1, Conditional: true,
		Word: Combine(ADDR_BUS_1_ASSERT_PC, MAIN_BUS_ASSERT_R1, PC_LOAD)},

	// HLT holds the PC so the machine re-fetches the halt forever.
	OP_HLT: {Op: OP_HLT, Word: Combine(ADDR_BUS_1_ASSERT_PC, PC_DO_NOTHING)},
}
