package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	simd "github.com/wippyai/simd128"
	"github.com/wippyai/simd128/dispatch"
	"github.com/wippyai/simd128/errors"
)

func main() {
	var (
		opName      = flag.String("op", "", "Operation to call, e.g. float32x4.add")
		argsStr     = flag.String("args", "", "Space-separated arguments; vector lanes comma-separated")
		list        = flag.Bool("list", false, "List operations and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Log dispatch activity to stderr")
	)
	flag.Parse()

	if *verbose {
		if lg, err := zap.NewDevelopment(); err == nil {
			dispatch.SetLogger(lg)
			defer lg.Sync()
		}
	}

	if *list {
		listOps()
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *opName == "" {
		fmt.Fprintln(os.Stderr, "Usage: simdcalc -op <name> [-args \"...\"]")
		fmt.Fprintln(os.Stderr, "       simdcalc -list")
		fmt.Fprintln(os.Stderr, "       simdcalc -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Examples:")
		fmt.Fprintln(os.Stderr, "  simdcalc -op float32x4.add -args \"1,2,3,4 5,6,7,8\"")
		fmt.Fprintln(os.Stderr, "  simdcalc -op int32x4.shiftLeft -args \"1,2,4,8 1\"")
		fmt.Fprintln(os.Stderr, "  simdcalc -op simd.sameValue -args \"float32x4:1,2,3,4 float32x4:1,2,3,4\"")
		os.Exit(1)
	}

	if err := run(*opName, *argsStr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opName, argsStr string) error {
	op := dispatch.Default().Lookup(opName)
	if op == nil {
		return errors.NotFound(opName)
	}

	fields := strings.Fields(argsStr)
	if len(fields) != len(op.Params) {
		return errors.BadArity(opName, len(op.Params), len(fields))
	}

	args := make([]any, len(fields))
	for i, f := range fields {
		v, err := parseArg(op.Params[i], f)
		if err != nil {
			return err
		}
		args[i] = v
	}

	out, err := dispatch.Call(opName, args...)
	if err != nil {
		return err
	}
	fmt.Println(formatResult(out))
	return nil
}

func listOps() {
	reg := dispatch.Default()
	for _, name := range reg.Ops() {
		op := reg.Lookup(name)
		params := make([]string, len(op.Params))
		for i, p := range op.Params {
			params[i] = string(p)
		}
		fmt.Printf("%s(%s)\n", name, strings.Join(params, ", "))
	}
}

// parseArg turns one CLI token into a dispatch argument. Vector lanes
// are comma-separated; a "kind:" prefix selects the kind where the
// parameter accepts any vector.
func parseArg(p dispatch.Param, s string) (any, error) {
	switch p {
	case dispatch.ParamNumber, dispatch.ParamLane, dispatch.ParamIndex, dispatch.ParamShift:
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.InvalidInput(errors.PhaseDispatch, fmt.Sprintf("bad number %q", s))
		}
		return n, nil

	case dispatch.ParamBool:
		switch s {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
		return nil, errors.InvalidInput(errors.PhaseDispatch, fmt.Sprintf("bad bool %q", s))

	case dispatch.ParamVector:
		kind, lanesStr, ok := strings.Cut(s, ":")
		if !ok {
			return nil, errors.InvalidInput(errors.PhaseDispatch,
				fmt.Sprintf("vector argument needs a kind prefix, e.g. float32x4:%s", s))
		}
		return parseVector(dispatch.Param(kind), lanesStr)
	}

	// a concrete vector kind; an explicit matching prefix is allowed
	if kind, rest, ok := strings.Cut(s, ":"); ok {
		if kind != string(p) {
			return nil, errors.TypeMismatch(errors.PhaseDispatch, string(p), kind)
		}
		s = rest
	}
	return parseVector(p, s)
}

// parseVector builds a vector by dispatching to the kind's constructor.
func parseVector(p dispatch.Param, lanesStr string) (any, error) {
	ctor := dispatch.Default().Lookup(string(p))
	if ctor == nil {
		return nil, errors.InvalidInput(errors.PhaseDispatch, fmt.Sprintf("unknown vector kind %q", p))
	}

	parts := strings.Split(lanesStr, ",")
	if len(parts) != len(ctor.Params) {
		return nil, errors.BadArity(string(p), len(ctor.Params), len(parts))
	}

	args := make([]any, len(parts))
	for i, part := range parts {
		v, err := parseArg(ctor.Params[i], strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return dispatch.Call(string(p), args...)
}

func formatResult(out any) string {
	switch v := out.(type) {
	case simd.Value:
		return fmt.Sprintf("%s %v", v.Kind(), out)
	default:
		return fmt.Sprintf("%v", v)
	}
}
