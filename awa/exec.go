package awa

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// TraceFunc is called after every successfully executed instruction when a
// VM has one installed. ip is the index of the instruction that ran (for a
// jmp, its own index, not the target). skipped reports whether a comparison's predicate
// was false (the +1 extra IP advance was applied). Trace formatting and
// verbosity thresholds are a host-surface concern, not this package's.
type TraceFunc func(ip int, instr Instruction, skipped bool, abyss *BubbleAbyss)

// VM executes a loaded Program against a BubbleAbyss, one awatism at a
// time, following an instruction pointer the way the teacher's execution
// loop threads pc through its instruction slice.
type VM struct {
	Program Program
	Labels  LabelTable
	IP      int
	Abyss   BubbleAbyss

	Stdin  *bufio.Reader
	Stdout io.Writer

	OnTrace TraceFunc
}

// NewVM builds a VM ready to run program from its first instruction.
func NewVM(program Program, labels LabelTable, stdin io.Reader, stdout io.Writer) *VM {
	return &VM{
		Program: program,
		Labels:  labels,
		Stdin:   bufio.NewReader(stdin),
		Stdout:  stdout,
	}
}

// Run steps the VM until it returns an error. ErrEndOfProgram (from trm or
// falling off the end of the program) is the only expected outcome; any
// other error is a runtime failure and is returned to the caller as-is.
func (vm *VM) Run() error {
	for {
		if err := vm.Step(); err != nil {
			return err
		}
	}
}

// Step executes exactly one awatism and advances the instruction pointer
// per its semantics: +1 normally, +0 after a taken jmp (the jump already
// set IP), and +2 after a comparison whose predicate was false.
func (vm *VM) Step() error {
	if vm.IP < 0 || vm.IP >= len(vm.Program) {
		return ErrEndOfProgram
	}
	instr := vm.Program[vm.IP]
	ip := vm.IP

	advance := 1
	skipped := false
	var err error

	switch instr.Op {
	case OpNop, OpLbl:
		// no-ops at runtime; labels are resolved by the loader
	case OpPrn:
		err = vm.prn()
	case OpPr1:
		err = vm.pr1()
	case OpRed:
		err = vm.red()
	case OpR3d:
		err = vm.r3d()
	case OpBlo:
		vm.Abyss.Push(int8(instr.Operand))
	case OpSbm:
		err = vm.Abyss.Submerge(int(instr.Operand))
	case OpPop:
		err = vm.Abyss.PopBubble()
	case OpDpl:
		err = vm.Abyss.Duplicate()
	case OpSrn:
		err = vm.Abyss.Surround(int(instr.Operand))
	case OpMrg:
		err = vm.Abyss.Merge()
	case OpAdd:
		err = vm.Abyss.Broadcast(opAdd)
	case OpSub:
		err = vm.Abyss.Broadcast(opSub)
	case OpMul:
		err = vm.Abyss.Broadcast(opMul)
	case OpDiv:
		err = vm.Abyss.Divide()
	case OpCnt:
		err = vm.Abyss.Count()
	case OpJmp:
		target, ok := vm.Labels[byte(instr.Operand)]
		if !ok {
			err = &InvalidLabelError{Label: byte(instr.Operand)}
			break
		}
		vm.IP = target
		advance = 0
	case OpEql:
		skipped, err = vm.compareAndSkip(func(x, y int32) bool { return x == y })
	case OpLss:
		skipped, err = vm.compareAndSkip(func(x, y int32) bool { return x < y })
	case OpGr8:
		skipped, err = vm.compareAndSkip(func(x, y int32) bool { return x > y })
	case OpTrm:
		err = ErrEndOfProgram
	default:
		err = &UnknownOpcodeError{Opcode: byte(instr.Op)}
	}

	if err != nil {
		return err
	}

	if skipped {
		advance = 2
	}
	if vm.OnTrace != nil {
		vm.OnTrace(ip, instr, skipped, &vm.Abyss)
	}
	vm.IP += advance
	return nil
}

func (vm *VM) compareAndSkip(pred func(x, y int32) bool) (skipped bool, err error) {
	ok, err := vm.Abyss.Compare(pred)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// prn pops the front item and prints it as AwaSCII text.
func (vm *VM) prn() error {
	item, err := vm.Abyss.Pop()
	if err != nil {
		return err
	}
	return vm.printAwascii(item)
}

func (vm *VM) printAwascii(item BubbleItem) error {
	switch v := item.(type) {
	case Bubble:
		c, err := CharOf(int(v))
		if err != nil {
			return err
		}
		fmt.Fprint(vm.Stdout, string(c))
	case DoubleBubble:
		for _, elem := range v {
			if err := vm.printAwascii(elem); err != nil {
				return err
			}
		}
	}
	return nil
}

// pr1 pops the front item and prints it as decimal integers.
func (vm *VM) pr1() error {
	item, err := vm.Abyss.Pop()
	if err != nil {
		return err
	}
	vm.printDecimal(item)
	return nil
}

func (vm *VM) printDecimal(item BubbleItem) {
	switch v := item.(type) {
	case Bubble:
		fmt.Fprintf(vm.Stdout, "%d ", int32(v))
	case DoubleBubble:
		for _, elem := range v {
			vm.printDecimal(elem)
		}
	}
}

// red reads one line from stdin and pushes a DoubleBubble of the AwaSCII
// Bubbles for every mappable character in it, in input order; characters
// with no AwaSCII mapping are dropped.
func (vm *VM) red() error {
	line, err := vm.readLine()
	if err != nil {
		return err
	}
	out := make(DoubleBubble, 0, len(line))
	for _, c := range line {
		if idx, ok := IndexOf(c); ok {
			out = append(out, Bubble(idx))
		}
	}
	vm.Abyss.PushItem(out)
	return nil
}

// r3d reads one line from stdin, takes its longest leading run of ASCII
// decimal digits, and pushes the parsed value as a Bubble. A line with no
// leading digit is a NotANumberError.
func (vm *VM) r3d() error {
	line, err := vm.readLine()
	if err != nil {
		return err
	}
	end := 0
	for end < len(line) && line[end] >= '0' && line[end] <= '9' {
		end++
	}
	digits := line[:end]
	if digits == "" {
		return &NotANumberError{Text: line}
	}
	val, err := strconv.ParseInt(digits, 10, 32)
	if err != nil {
		return &NotANumberError{Text: line}
	}
	vm.Abyss.PushItem(Bubble(val))
	return nil
}

func (vm *VM) readLine() (string, error) {
	line, err := vm.Stdin.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", ErrReadLine
	}
	return line, nil
}
