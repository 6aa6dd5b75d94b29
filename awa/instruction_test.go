package awa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpcodeOperandBits(t *testing.T) {
	cases := map[Opcode]int{
		OpNop: 0,
		OpPrn: 0,
		OpBlo: 8,
		OpSbm: 5,
		OpSrn: 5,
		OpLbl: 5,
		OpJmp: 5,
		OpAdd: 0,
		OpTrm: 0,
	}
	for op, want := range cases {
		require.Equal(t, want, op.OperandBits(), "opcode %v", op)
	}
}

func TestOpcodeStringRoundTripsThroughMnemonicMap(t *testing.T) {
	for op, mnemonic := range mnemonicOf {
		require.Equal(t, mnemonic, op.String())
		require.Equal(t, op, opcodeOf[mnemonic])
	}
}

func TestInstructionStringBareMnemonic(t *testing.T) {
	require.Equal(t, "trm", Instruction{Op: OpTrm}.String())
}

func TestInstructionStringNumericOperand(t *testing.T) {
	require.Equal(t, "sbm 2", Instruction{Op: OpSbm, Operand: 2}.String())
}

func TestInstructionStringBloPrintsQuotedCharacterWhenMappable(t *testing.T) {
	idx, ok := IndexOf('A')
	require.True(t, ok)
	require.Equal(t, "blo 'A'", Instruction{Op: OpBlo, Operand: int32(idx)}.String())
}

func TestInstructionStringBloPrintsNewlineEscaped(t *testing.T) {
	idx, ok := IndexOf('\n')
	require.True(t, ok)
	require.Equal(t, "blo '\\n'", Instruction{Op: OpBlo, Operand: int32(idx)}.String())
}

func TestInstructionStringBloFallsBackToNumber(t *testing.T) {
	// -50 has no AwaSCII mapping (table only covers 0..63).
	require.Equal(t, "blo -50", Instruction{Op: OpBlo, Operand: -50}.String())
}

func TestUnknownOpcodeStringFallback(t *testing.T) {
	require.Equal(t, "?unknown?", Opcode(0x15).String())
}
