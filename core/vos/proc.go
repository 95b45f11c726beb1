package vos

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"sync"
)

var (
	// ErrNotFound is the error resulting if a path search failed to find an executable file.
	ErrNotFound = exec.ErrNotFound

	// ErrStart is returned when the child process couldn't be created.
	ErrStart = errors.New("couldn't create a child process")

	// ErrWait is returned when the wait for the child failed. The shell can't
	// tell what state the child is in when this happens.
	ErrWait = errors.New("waiting for child process failed")
)

// StartError is returned by Run when the child process couldn't be created.
// It matches ErrStart with errors.Is.
type StartError struct {
	Err error
}

func (e *StartError) Error() string {
	return ErrStart.Error() + ": " + e.Err.Error()
}

func (e *StartError) Unwrap() []error {
	return []error{ErrStart, e.Err}
}

// LookupError is returned by Run and LookPath when the program couldn't be
// resolved. No child is created in that case.
type LookupError = exec.Error

// LookPath searches for an executable named file in the directories named by
// the PATH environment variable. If file contains a slash, it is tried directly
// and the PATH is not consulted. Relative PATH entries such as "." are honored.
func LookPath(file string) (string, error) {
	path, err := exec.LookPath(file)
	if errors.Is(err, exec.ErrDot) {
		return path, nil
	}
	return path, err
}

// Cmd is similar to go's os/exec.Cmd but blocks until the child exits or is
// killed, ignoring stop and continue notifications.
type Cmd struct {
	// Path is the name of the command to run. It's resolved against PATH if it
	// doesn't contain a slash.
	Path string

	// Args holds command line arguments, including the command as Args[0].
	// If the Args field is empty or nil, Run uses {Path}.
	Args []string

	// Env specifies the environment of the process.
	// If Env is nil, the new process uses the current process's
	// environment.
	Env []string

	// Dir specifies the working directory of the command.
	// If Dir is the empty string, Run runs the command in the
	// calling process's current directory.
	Dir string

	// Standard streams of the child. Nil streams are inherited from the
	// current process. Writers that aren't an *os.File are copied through a
	// pipe. A Stdin that isn't an *os.File is never read, the child gets the
	// null device instead so no input meant for the caller is consumed.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// ExitStatus holds the exit code of the child after Run, or 128 plus the
	// signal number if it was killed by a signal.
	ExitStatus int

	closeAfterStart []io.Closer
	closeAfterWait  []io.Closer
	copiers         sync.WaitGroup
	copyErr         error
	copyErrOnce     sync.Once
}

// Command returns the Cmd struct to execute the named program with the given
// arguments.
func Command(name string, arg ...string) *Cmd {
	return &Cmd{
		Path: name,
		Args: append([]string{name}, arg...),
	}
}

func (c *Cmd) argv() []string {
	if len(c.Args) > 0 {
		return c.Args
	}
	return []string{c.Path}
}

// Run starts the command and waits for it to terminate.
//
// The returned error wraps ErrNotFound (or a permission error) if the
// program couldn't be resolved, is a *StartError if the process couldn't be
// created and wraps ErrWait if waiting failed. A non-zero exit status is not an error.
func (c *Cmd) Run() error {
	path, err := LookPath(c.Path)
	if err != nil {
		return err
	}

	files, err := c.childFiles()
	if err != nil {
		c.closeAll(c.closeAfterStart)
		c.closeAll(c.closeAfterWait)
		return &StartError{Err: err}
	}

	// Interrupts typed while the child runs belong to the child.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	proc, err := os.StartProcess(path, c.argv(), &os.ProcAttr{
		Dir:   c.Dir,
		Env:   c.Env,
		Files: files,
	})
	c.closeAll(c.closeAfterStart)
	if err != nil {
		c.closeAll(c.closeAfterWait)
		return &StartError{Err: err}
	}

	status, err := waitForExit(proc)
	c.copiers.Wait()
	c.closeAll(c.closeAfterWait)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWait, err)
	}

	c.ExitStatus = status
	return c.copyErr
}

func (c *Cmd) childFiles() ([]*os.File, error) {
	stdin, err := c.readerFile(c.Stdin, os.Stdin)
	if err != nil {
		return nil, err
	}
	stdout, err := c.writerFile(c.Stdout, os.Stdout)
	if err != nil {
		return nil, err
	}
	stderr, err := c.writerFile(c.Stderr, os.Stderr)
	if err != nil {
		return nil, err
	}
	return []*os.File{stdin, stdout, stderr}, nil
}

func (c *Cmd) readerFile(r io.Reader, inherit *os.File) (*os.File, error) {
	switch r := r.(type) {
	case nil:
		return inherit, nil
	case *os.File:
		return r, nil
	}

	null, err := os.Open(os.DevNull)
	if err != nil {
		return nil, err
	}
	c.closeAfterStart = append(c.closeAfterStart, null)
	return null, nil
}

func (c *Cmd) writerFile(w io.Writer, inherit *os.File) (*os.File, error) {
	switch w := w.(type) {
	case nil:
		return inherit, nil
	case *os.File:
		return w, nil
	}

	pr, pw, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	c.closeAfterStart = append(c.closeAfterStart, pw)
	c.closeAfterWait = append(c.closeAfterWait, pr)
	c.copiers.Add(1)
	go func() {
		defer c.copiers.Done()
		if _, err := io.Copy(w, pr); err != nil {
			c.copyErrOnce.Do(func() { c.copyErr = err })
		}
	}()
	return pw, nil
}

func (c *Cmd) closeAll(closers []io.Closer) {
	for _, cl := range closers {
		cl.Close()
	}
}
