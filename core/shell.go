package core

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/josephlewis42/minish/core/config"
	"github.com/josephlewis42/minish/core/history"
	"github.com/josephlewis42/minish/core/logger"
	"github.com/josephlewis42/minish/core/vos"
)

// Status tells the shell loop whether to keep going after a command.
type Status int

const (
	StatusContinue Status = iota
	StatusExit
)

func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusExit:
		return "exit"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

const cdUsage = "specify a directory to move to"

type Shell struct {
	VIO     vos.VIO
	Reader  LineReader
	History *history.Stack

	// Prompt is displayed before each line is read.
	Prompt string
	// ExitOnEOF quits the shell when input ends. Otherwise the end of input
	// is treated as an empty line.
	ExitOnEOF bool
	// Events receives an entry for every dispatched command, may be nil.
	Events *logger.SessionLogger

	tokenizer Tokenizer
	color     *ColorPrinter
}

// NewShell creates a shell that reads lines from reader and writes to the
// streams in vio.
func NewShell(vio vos.VIO, reader LineReader, cfg *config.Configuration) *Shell {
	return &Shell{
		VIO:       vio,
		Reader:    reader,
		History:   history.New(cfg.HistoryLimit),
		Prompt:    cfg.Prompt,
		ExitOnEOF: cfg.ExitOnEOF,
		tokenizer: Tokenizer{
			Unit:    cfg.TokenBuffer,
			Quoting: cfg.Quoting,
		},
		color: NewColorPrinter(cfg.Color, vio.Stdout()),
	}
}

func (s *Shell) prompt() string {
	if s.Prompt == "" {
		return ""
	}
	return s.color.Prompt.Sprint(s.Prompt)
}

// Run prompts for and executes commands until exit is dispatched. The
// returned error is only set if input couldn't be read or the shell hit a
// condition it can't recover from.
func (s *Shell) Run() error {
	s.logEvent(&logger.LogEntry{Type: logger.EventSessionStart})
	defer s.logEvent(&logger.LogEntry{Type: logger.EventSessionEnd})

	for {
		line, err := s.Reader.ReadLine(s.prompt())
		if err != nil {
			if err != io.EOF {
				return fmt.Errorf("reading input: %w", err)
			}
			if s.ExitOnEOF {
				fmt.Fprintln(s.VIO.Stdout())
				return nil
			}
			line = ""
		}

		args, err := s.tokenizer.Tokenize(line)
		if err != nil {
			fmt.Fprintf(s.VIO.Stderr(), "minish: syntax error: %v\n", err)
			continue
		}

		status, err := s.Dispatch(args)
		if err != nil {
			return err
		}

		if len(args) > 0 {
			s.History.Record(args[0])
		}

		if status == StatusExit {
			return nil
		}
	}
}

// Dispatch runs a builtin or an external program for the tokenized line.
// The returned error is only set on a fatal condition.
func (s *Shell) Dispatch(args []string) (Status, error) {
	if len(args) == 0 {
		return StatusContinue, nil
	}

	if builtin, ok := LookupBuiltin(args[0]); ok {
		status := builtin.Main(s, args)
		s.logEvent(&logger.LogEntry{Type: logger.EventRunBuiltin, Command: args})
		return status, nil
	}

	if args[0] == "cd" {
		return s.cd(args), nil
	}

	return s.execute(args)
}

func (s *Shell) cd(args []string) Status {
	if len(args) < 2 {
		fmt.Fprintln(s.VIO.Stderr(), cdUsage)
		s.logInvalidInvocation(args, errors.New(cdUsage))
		return StatusContinue
	}

	if err := os.Chdir(args[1]); err != nil {
		s.printError(err)
		s.logInvalidInvocation(args, err)
		return StatusContinue
	}

	s.logEvent(&logger.LogEntry{Type: logger.EventRunBuiltin, Command: args})
	return StatusContinue
}

func (s *Shell) execute(args []string) (Status, error) {
	cmd := vos.Command(args[0], args[1:]...)
	cmd.Stdin = s.VIO.Stdin()
	cmd.Stdout = s.VIO.Stdout()
	cmd.Stderr = s.VIO.Stderr()

	err := cmd.Run()
	var startErr *vos.StartError
	switch {
	case errors.Is(err, vos.ErrWait):
		return StatusExit, err

	case errors.As(err, &startErr):
		fmt.Fprintf(s.VIO.Stderr(), "Couldn't create a child process: %v\n", startErr.Err)
		s.logEvent(&logger.LogEntry{Type: logger.EventSpawnFailure, Command: args, Error: err.Error()})

	case errors.As(err, new(*vos.LookupError)):
		s.printError(err)
		s.logEvent(&logger.LogEntry{Type: logger.EventUnknownCommand, Command: args, Error: err.Error()})

	default:
		if err != nil {
			log.Printf("Error copying output of %q: %v", args[0], err)
		}
		s.logEvent(&logger.LogEntry{Type: logger.EventRunCommand, Command: args, ExitStatus: cmd.ExitStatus})
	}

	return StatusContinue, nil
}

func (s *Shell) printError(err error) {
	fmt.Fprintf(s.VIO.Stderr(), "%s: %v\n", s.color.Error.Sprint("ERROR"), err)
}

func (s *Shell) logInvalidInvocation(args []string, err error) {
	s.logEvent(&logger.LogEntry{Type: logger.EventInvalidInvocation, Command: args, Error: err.Error()})
}

func (s *Shell) logEvent(le *logger.LogEntry) {
	if err := s.Events.Record(le); err != nil {
		log.Printf("Error recording event: %v", err)
	}
}
