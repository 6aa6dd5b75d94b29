package awa

import (
	"errors"
	"fmt"
)

// Load errors are raised while decoding a token stream into a Program.
// They are always fatal: loading never returns a partial program.
var (
	ErrMissingPreamble = errors.New("missing initial awa")
	ErrMalformedToken  = errors.New("only 'awa' and 'wa' are allowed")
	ErrMalformedOperand = errors.New("awatism malformed: operand missing")
)

// UnknownOpcodeError is returned when the loader decodes a 5-bit opcode word
// that does not match any entry in the instruction table.
type UnknownOpcodeError struct {
	Opcode byte
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("awatism 0x%02X not implemented", e.Opcode)
}

// Runtime errors are raised by the executor. ErrEndOfProgram is a sentinel
// rather than a true failure: both trm and running off the end of the
// program surface it, and both are clean (exit code 0) to a host.
var (
	ErrEndOfProgram      = errors.New("program ended")
	ErrAbyssEmpty        = errors.New("bubble abyss accessed but it is empty")
	ErrAbyssOutOfBounds  = errors.New("bubble abyss accessed out of bounds")
	ErrReadLine          = errors.New("failed to read input")
	ErrDivisionByZero    = errors.New("division by zero")
)

// InvalidAwasciiCodeError is returned by CharOf when asked to print a scalar
// that has no AwaSCII representation.
type InvalidAwasciiCodeError struct {
	Code int
}

func (e *InvalidAwasciiCodeError) Error() string {
	return fmt.Sprintf("invalid AwaSCII code %d", e.Code)
}

// InvalidAwasciiCharError is returned by the assembler when a character or
// string literal contains a rune with no AwaSCII index.
type InvalidAwasciiCharError struct {
	Char rune
}

func (e *InvalidAwasciiCharError) Error() string {
	return fmt.Sprintf("character %q cannot be represented in AwaSCII", e.Char)
}

// NotANumberError is returned by r3d when stdin holds no leading digits.
type NotANumberError struct {
	Text string
}

func (e *NotANumberError) Error() string {
	return fmt.Sprintf("text %q cannot be converted to a number", e.Text)
}

// InvalidLabelError is returned by jmp when the operand names a label id
// that was never bound during loading.
type InvalidLabelError struct {
	Label byte
}

func (e *InvalidLabelError) Error() string {
	return fmt.Sprintf("label %d is invalid", e.Label)
}

// Assembler errors are raised while parsing a text listing into a Program.
var (
	ErrMissingArgument = errors.New("awatism requires an argument but none was given")
)

// InvalidArgumentError is returned when an awatism's argument text cannot
// be parsed as the operand type it requires.
type InvalidArgumentError struct {
	Mnemonic string
	Text     string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%q is not a valid argument to %s", e.Text, e.Mnemonic)
}

// UnknownMnemonicError is returned when a listing line's first word does
// not name any known awatism.
type UnknownMnemonicError struct {
	Mnemonic string
}

func (e *UnknownMnemonicError) Error() string {
	return fmt.Sprintf("unknown awatism %q", e.Mnemonic)
}
