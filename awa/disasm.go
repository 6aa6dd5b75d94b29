package awa

import (
	"fmt"
	"io"
)

// Disassemble decodes a full token stream and writes one mnemonic line per
// instruction to w, in the same textual form Assemble accepts back in.
func Disassemble(r *BitReader, w io.Writer) error {
	program, _, err := Load(r)
	if err != nil {
		return err
	}
	for _, instr := range program {
		if _, err := fmt.Fprintln(w, instr.String()); err != nil {
			return err
		}
	}
	return nil
}
