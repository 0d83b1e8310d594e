// Package ctrl derives the control-ROM contents for the 16-bit breadboard
// computer's control logic.
//
// One ROM address carries the latched instruction opcode and the condition
// evaluator's verdict; the word stored there drives every control line of the
// machine for one clock step. The package defines the bit layout of the
// 64-bit control word, the address slicing scheme, and the instruction table,
// and exposes a pure Generator mapping each address to its control word.
//
// The generator is total: any opcode without an explicit rule resolves to the
// idle word, keeping the fetch/advance cycle alive rather than leaving the
// control bus unspecified.
package ctrl
