package awa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssembleBasicListing(t *testing.T) {
	src := "blo 5\nadd\ntrm\n"
	prog, err := Assemble(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, Program{
		{Op: OpBlo, Operand: 5},
		{Op: OpAdd},
		{Op: OpTrm},
	}, prog)
}

func TestAssembleIsCaseInsensitive(t *testing.T) {
	prog, err := Assemble(strings.NewReader("TRM\n"))
	require.NoError(t, err)
	require.Equal(t, Program{{Op: OpTrm}}, prog)
}

func TestAssembleSkipsBlankAndCommentLines(t *testing.T) {
	src := "\n  # a whole comment line\ntrm # trailing comment\n"
	prog, err := Assemble(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, Program{{Op: OpTrm}}, prog)
}

func TestAssembleHashInsideQuotesIsNotAComment(t *testing.T) {
	// If the trailing '#' were (wrongly) treated as a comment start here,
	// the line would truncate to "blo '" and fail with an InvalidArgumentError
	// instead of an unmappable-character error.
	_, ok := IndexOf('#')
	require.False(t, ok, "test assumes '#' has no AwaSCII mapping")

	_, err := Assemble(strings.NewReader(`blo '#'` + "\n"))
	require.Error(t, err)
	var charErr *InvalidAwasciiCharError
	require.ErrorAs(t, err, &charErr)
}

func TestAssembleBloSingleQuoteChar(t *testing.T) {
	prog, err := Assemble(strings.NewReader("blo 'A'\n"))
	require.NoError(t, err)
	idx, ok := IndexOf('A')
	require.True(t, ok)
	require.Equal(t, Program{{Op: OpBlo, Operand: int32(idx)}}, prog)
}

func TestAssembleBloSingleQuoteUnmappableCharIsError(t *testing.T) {
	// spec.md §9's resolved open question: this must be a hard error, not a
	// silent fallthrough to numeric parsing.
	_, err := Assemble(strings.NewReader("blo '@'\n"))
	require.Error(t, err)
	var charErr *InvalidAwasciiCharError
	require.ErrorAs(t, err, &charErr)
}

func TestAssembleBloDoubleQuoteStringExpandsInReverse(t *testing.T) {
	prog, err := Assemble(strings.NewReader(`blo "AB"` + "\n"))
	require.NoError(t, err)

	idxA, _ := IndexOf('A')
	idxB, _ := IndexOf('B')
	require.Equal(t, Program{
		{Op: OpBlo, Operand: int32(idxB)},
		{Op: OpBlo, Operand: int32(idxA)},
	}, prog)
}

func TestAssembleBloStringEscapesNewline(t *testing.T) {
	prog, err := Assemble(strings.NewReader(`blo "A\n"` + "\n"))
	require.NoError(t, err)

	idxNL, _ := IndexOf('\n')
	idxA, _ := IndexOf('A')
	require.Equal(t, Program{
		{Op: OpBlo, Operand: int32(idxNL)},
		{Op: OpBlo, Operand: int32(idxA)},
	}, prog)
}

func TestAssembleBloDecimalLiteral(t *testing.T) {
	prog, err := Assemble(strings.NewReader("blo -12\n"))
	require.NoError(t, err)
	require.Equal(t, Program{{Op: OpBlo, Operand: -12}}, prog)
}

func TestAssembleBloOutOfRangeLiteralIsError(t *testing.T) {
	_, err := Assemble(strings.NewReader("blo 200\n"))
	require.Error(t, err)
}

func TestAssembleNumericOperandsAreStrictlyDecimal(t *testing.T) {
	// A leading zero must not be read as octal: 011 is decimal 11, not 9.
	prog, err := Assemble(strings.NewReader("srn 011\n"))
	require.NoError(t, err)
	require.Equal(t, Program{{Op: OpSrn, Operand: 11}}, prog)

	// 019 is a valid decimal 19; it would be rejected as invalid octal.
	prog, err = Assemble(strings.NewReader("srn 019\n"))
	require.NoError(t, err)
	require.Equal(t, Program{{Op: OpSrn, Operand: 19}}, prog)
}

func TestAssembleBloRejectsHexLiteral(t *testing.T) {
	_, err := Assemble(strings.NewReader("blo 0x1F\n"))
	require.Error(t, err)
	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
}

func TestAssembleUnknownMnemonicIsError(t *testing.T) {
	_, err := Assemble(strings.NewReader("frobnicate\n"))
	require.Error(t, err)
	var mErr *UnknownMnemonicError
	require.ErrorAs(t, err, &mErr)
}

func TestAssembleMissingArgumentIsError(t *testing.T) {
	_, err := Assemble(strings.NewReader("sbm\n"))
	require.ErrorIs(t, err, ErrMissingArgument)
}

func TestAssembleThenEncodeThenLoadRoundTrips(t *testing.T) {
	prog, err := Assemble(strings.NewReader("blo 5\nblo -3\nadd\ntrm\n"))
	require.NoError(t, err)

	tokens := EncodeProgram(prog)
	decoded, _, err := Load(NewBitReaderFromString(tokens))
	require.NoError(t, err)
	require.Equal(t, prog, decoded)
}
