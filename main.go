// Command awawa is the host surface for the Awatalk/AWA5.0 toolchain: run,
// disassemble, and assemble token-stream programs.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"awawa/awa"
)

const (
	exitClean           = 0
	exitInputReadFailed = 1
	exitAssembleFailed  = 2
	exitLoadFailed      = 3
	exitRuntimeFailed   = 4
)

func main() {
	app := &cli.App{
		Name:  "awawa",
		Usage: "run, disassemble, and assemble Awatalk/AWA5.0 programs",
		Commands: []*cli.Command{
			runCommand(),
			disasmCommand(),
			asmCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitInputReadFailed)
	}
}

var fileFlag = &cli.StringFlag{
	Name:    "file",
	Aliases: []string{"f"},
	Usage:   "input file, or '-' for stdin (default: stdin)",
}

func runCommand() *cli.Command {
	var verboseCount int
	return &cli.Command{
		Name:  "run",
		Usage: "execute a program",
		Flags: []cli.Flag{
			fileFlag,
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Count: &verboseCount, Usage: "repeat for more trace detail (0-3)"},
		},
		Action: func(c *cli.Context) error {
			os.Exit(runRun(c, verboseCount))
			return nil
		},
	}
}

func disasmCommand() *cli.Command {
	return &cli.Command{
		Name:  "disasm",
		Usage: "disassemble a program to a mnemonic listing",
		Flags: []cli.Flag{fileFlag},
		Action: func(c *cli.Context) error {
			os.Exit(runDisasm(c))
			return nil
		},
	}
}

func asmCommand() *cli.Command {
	return &cli.Command{
		Name:  "asm",
		Usage: "assemble a mnemonic listing to a token stream",
		Flags: []cli.Flag{fileFlag},
		Action: func(c *cli.Context) error {
			os.Exit(runAsm(c))
			return nil
		},
	}
}

func openInput(c *cli.Context) (io.ReadCloser, error) {
	path := c.String("file")
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func runRun(c *cli.Context, verbose int) int {
	in, err := openInput(c)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitInputReadFailed
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitInputReadFailed
	}

	reader := awa.NewBitReaderFromString(string(data))

	if verbose >= 3 {
		traceLoad(awa.NewBitReaderFromString(string(data)))
	}

	program, labels, err := awa.Load(reader)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load error:", err)
		return exitLoadFailed
	}

	vm := awa.NewVM(program, labels, os.Stdin, bufio.NewWriter(os.Stdout))
	vmOut := vm.Stdout.(*bufio.Writer)
	defer vmOut.Flush()

	if verbose >= 1 {
		vm.OnTrace = traceStep(verbose)
	}

	err = vm.Run()
	vmOut.Flush()
	if err == awa.ErrEndOfProgram {
		if verbose >= 1 {
			fmt.Fprintln(os.Stderr, "Program ended.")
		}
		return exitClean
	}
	if err != nil {
		dumpFailure(vm, program, err)
		return exitRuntimeFailed
	}
	return exitClean
}

func traceLoad(reader *awa.BitReader) {
	program, _, err := awa.Load(reader)
	if err != nil {
		return
	}
	for i, instr := range program {
		fmt.Fprintf(os.Stderr, "Load: [%d] %s\n", i, instr.String())
	}
}

func traceStep(verbose int) awa.TraceFunc {
	trace := color.New(color.FgCyan)
	return func(ip int, instr awa.Instruction, skipped bool, abyss *awa.BubbleAbyss) {
		line := fmt.Sprintf("[%d] %s", ip, instr.String())
		if skipped {
			line += " (skipped)"
		}
		trace.Fprintln(os.Stderr, line)
		if verbose >= 2 {
			fmt.Fprintln(os.Stderr, abyss.String())
		}
	}
}

func dumpFailure(vm *awa.VM, program awa.Program, err error) {
	fmt.Fprintln(os.Stderr, "runtime error:", err)
	fmt.Fprintf(os.Stderr, "ip=%d abyss=%s\n", vm.IP, vm.Abyss.String())
	for i, instr := range program {
		marker := "  "
		if i == vm.IP {
			marker = "->"
		}
		fmt.Fprintf(os.Stderr, "%s [%d] %s\n", marker, i, instr.String())
	}
}

func runDisasm(c *cli.Context) int {
	in, err := openInput(c)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitInputReadFailed
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitInputReadFailed
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	reader := awa.NewBitReaderFromString(string(data))
	if err := awa.Disassemble(reader, out); err != nil {
		fmt.Fprintln(os.Stderr, "load error:", err)
		return exitLoadFailed
	}
	return exitClean
}

func runAsm(c *cli.Context) int {
	in, err := openInput(c)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitInputReadFailed
	}
	defer in.Close()

	program, err := awa.Assemble(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "assembler error:", err)
		return exitAssembleFailed
	}

	fmt.Println(awa.EncodeProgram(program))
	return exitClean
}
