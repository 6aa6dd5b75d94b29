package awa

// Load decodes a full token stream into a Program and its LabelTable. It
// performs the preamble check, then repeatedly decodes a 5-bit opcode and
// its operand (if any) until the stream ends cleanly at an opcode
// boundary. Labels are recorded in source order as they are seen, so
// forward jumps resolve; a re-bound label id keeps its latest binding.
func Load(r *BitReader) (Program, LabelTable, error) {
	if err := r.ReadPreamble(); err != nil {
		return nil, nil, err
	}

	var program Program
	labels := make(LabelTable)

	for {
		code, ok, err := r.ReadBits(5)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return program, labels, nil
		}

		instr, err := decodeInstruction(r, Opcode(code))
		if err != nil {
			return nil, nil, err
		}

		if instr.Op == OpLbl {
			labels[byte(instr.Operand)] = len(program)
		}

		program = append(program, instr)
	}
}

func decodeInstruction(r *BitReader, op Opcode) (Instruction, error) {
	if _, known := mnemonicOf[op]; !known {
		return Instruction{}, &UnknownOpcodeError{Opcode: byte(op)}
	}

	bits := op.OperandBits()
	if bits == 0 {
		return Instruction{Op: op}, nil
	}

	raw, err := r.ReadField(bits)
	if err != nil {
		return Instruction{}, err
	}

	operand := int32(raw)
	if op == OpBlo {
		// sign-extend the 8-bit operand
		operand = int32(int8(raw))
	}
	return Instruction{Op: op, Operand: operand}, nil
}
