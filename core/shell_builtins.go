package core

import (
	"fmt"

	"github.com/pborman/getopt/v2"
)

// Builtin is a command implemented by the shell itself.
type Builtin interface {
	Main(s *Shell, args []string) Status
}

type BuiltinFunc func(s *Shell, args []string) Status

func (f BuiltinFunc) Main(s *Shell, args []string) Status {
	return f(s, args)
}

var _ Builtin = (BuiltinFunc)(nil)

type builtinEntry struct {
	name    string
	builtin Builtin
}

// allBuiltins holds the registered builtins in registration order.
var allBuiltins []builtinEntry

func addBuiltin(name string, builtin Builtin) {
	if _, ok := LookupBuiltin(name); ok {
		panic(fmt.Sprintf("duplicate builtin %q", name))
	}
	allBuiltins = append(allBuiltins, builtinEntry{name: name, builtin: builtin})
}

// LookupBuiltin finds a registered builtin by name.
func LookupBuiltin(name string) (Builtin, bool) {
	for _, entry := range allBuiltins {
		if entry.name == name {
			return entry.builtin, true
		}
	}
	return nil, false
}

// BuiltinNames lists the registered builtins in registration order. cd isn't
// included because it's handled by the dispatcher.
func BuiltinNames() []string {
	var out []string
	for _, entry := range allBuiltins {
		out = append(out, entry.name)
	}
	return out
}

// Help lists the builtins.
func Help(s *Shell, args []string) Status {
	w := s.VIO.Stdout()
	fmt.Fprintln(w, "Internally defined commands.")
	for i, name := range BuiltinNames() {
		fmt.Fprintf(w, "%d : %s\n", i+1, name)
	}
	fmt.Fprintln(w, "Type help to see Inbuilt command list.")
	return StatusContinue
}

// History prints the recorded command names, oldest first.
func History(s *Shell, args []string) Status {
	opts := getopt.New()
	numbered := opts.Bool('n', "prefix each entry with its position")
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	if err := opts.Getopt(args, nil); err != nil || *helpOpt {
		w := s.VIO.Stderr()
		if err != nil {
			fmt.Fprintln(w, err)
			s.logInvalidInvocation(args, err)
		}
		fmt.Fprintln(w, "usage: history [-n]")
		fmt.Fprintln(w, "Display the names of previously entered commands.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		opts.PrintOptions(w)
		return StatusContinue
	}

	w := s.VIO.Stdout()
	i := 0
	for name := range s.History.List() {
		i++
		if *numbered {
			fmt.Fprintf(w, "% 5d  %s\n", i, name)
		} else {
			fmt.Fprintln(w, name)
		}
	}
	return StatusContinue
}

// Exit quits the shell, arguments are ignored.
func Exit(s *Shell, args []string) Status {
	return StatusExit
}

func init() {
	addBuiltin("help", BuiltinFunc(Help))
	addBuiltin("history", BuiltinFunc(History))
	addBuiltin("exit", BuiltinFunc(Exit))
}
