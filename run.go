package icicle

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// RunOptions specifies where [Run] writes its output. Help text goes to
// Stdout. The library itself writes nothing else; actions produce their own
// output and the surrounding program owns stderr and the exit code.
type RunOptions struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run dispatches the command resolved by a prior [Parse] call. If help was
// requested, or the resolved command has no action, the command's help is
// rendered to Stdout and Run returns nil; falling back to help is deliberate,
// not an error. Otherwise the action is invoked with the bound [Arguments]
// and its error, if any, is returned unchanged.
//
// The options parameter may be nil, in which case [os.Stdout] and [os.Stderr]
// are used.
func Run(root *Command, options *RunOptions) error {
	if root == nil {
		return errors.New("root command is nil")
	}
	if root.state == nil {
		return errors.New("command has not been parsed")
	}
	options = checkAndSetRunOptions(options)

	st := root.state
	resolved := st.resolved()
	if st.help || resolved.action == nil {
		fmt.Fprintln(options.Stdout, renderHelp(st.path))
		return nil
	}
	return resolved.action(st.args)
}

// ParseAndRun parses args against the command tree and dispatches the
// resolved command. A convenience that combines [Parse] and [Run] into a
// single call; see both for details.
func ParseAndRun(root *Command, args []string, options *RunOptions) error {
	if err := Parse(root, args); err != nil {
		return err
	}
	return Run(root, options)
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	return opt
}
