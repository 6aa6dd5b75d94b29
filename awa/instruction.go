package awa

import "fmt"

// Opcode identifies one of the 22 awatisms (5-bit opcode word).
type Opcode byte

const (
	OpNop Opcode = 0x00
	OpPrn Opcode = 0x01
	OpPr1 Opcode = 0x02
	OpRed Opcode = 0x03
	OpR3d Opcode = 0x04
	OpBlo Opcode = 0x05
	OpSbm Opcode = 0x06
	OpPop Opcode = 0x07
	OpDpl Opcode = 0x08
	OpSrn Opcode = 0x09
	OpMrg Opcode = 0x0A
	OpAdd Opcode = 0x0B
	OpSub Opcode = 0x0C
	OpMul Opcode = 0x0D
	OpDiv Opcode = 0x0E
	OpCnt Opcode = 0x0F
	OpLbl Opcode = 0x10
	OpJmp Opcode = 0x11
	OpEql Opcode = 0x12
	OpLss Opcode = 0x13
	OpGr8 Opcode = 0x14
	OpTrm Opcode = 0x1F
)

var mnemonicOf = map[Opcode]string{
	OpNop: "nop",
	OpPrn: "prn",
	OpPr1: "pr1",
	OpRed: "red",
	OpR3d: "r3d",
	OpBlo: "blo",
	OpSbm: "sbm",
	OpPop: "pop",
	OpDpl: "dpl",
	OpSrn: "srn",
	OpMrg: "mrg",
	OpAdd: "add",
	OpSub: "sub",
	OpMul: "mul",
	OpDiv: "div",
	OpCnt: "cnt",
	OpLbl: "lbl",
	OpJmp: "jmp",
	OpEql: "eql",
	OpLss: "lss",
	OpGr8: "gr8",
	OpTrm: "trm",
}

var opcodeOf map[string]Opcode

func init() {
	opcodeOf = make(map[string]Opcode, len(mnemonicOf))
	for op, s := range mnemonicOf {
		opcodeOf[s] = op
	}
}

// String returns the printable mnemonic, or "?unknown?" for an
// unrecognized opcode byte.
func (o Opcode) String() string {
	if s, ok := mnemonicOf[o]; ok {
		return s
	}
	return "?unknown?"
}

// OperandBits returns the width of this opcode's operand field: 0, 5, or 8.
func (o Opcode) OperandBits() int {
	switch o {
	case OpBlo:
		return 8
	case OpSbm, OpSrn, OpLbl, OpJmp:
		return 5
	default:
		return 0
	}
}

// Instruction is one decoded awatism: an opcode plus its operand (if any).
// The operand is stored widened to int32 regardless of its source width;
// Blo's operand is sign-extended from its 8-bit source, the others are
// plain unsigned 5-bit label/count/shift values.
type Instruction struct {
	Op      Opcode
	Operand int32
}

// String renders the instruction the way the disassembler does: a bare
// mnemonic, or mnemonic plus operand with Blo's operand pretty-printed as
// a quoted AwaSCII character when one exists.
func (i Instruction) String() string {
	switch i.Op {
	case OpBlo:
		if c, err := CharOf(int(i.Operand)); err == nil {
			return fmt.Sprintf("blo %s", quoteChar(c))
		}
		return fmt.Sprintf("blo %d", i.Operand)
	case OpSbm, OpSrn, OpLbl, OpJmp:
		return fmt.Sprintf("%s %d", i.Op, i.Operand)
	default:
		return i.Op.String()
	}
}

func quoteChar(c rune) string {
	if c == '\n' {
		return "'\\n'"
	}
	return fmt.Sprintf("'%c'", c)
}

// Program is the linear, immutable sequence of decoded instructions
// produced by the loader, addressable by a 0-based instruction pointer.
type Program []Instruction

// LabelTable is a partial mapping from 5-bit label identifier to program
// index. It is write-once per identifier during a well-behaved load;
// re-binding keeps the last write, matching the loader's source-order
// population.
type LabelTable map[byte]int
