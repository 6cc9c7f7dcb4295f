package icicle

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newHumanProgram builds the example program tree with actions writing to the
// given buffer.
func newHumanProgram(out *bytes.Buffer) *Command {
	program := New("human").Desc("Greets people and adds numbers")

	program.Command("greet").
		Desc("Greets the given names").
		ArrayArgument("Names").
		Action(func(args *Arguments) error {
			for _, name := range args.Positionals() {
				fmt.Fprintf(out, "Hello, %s!\n", name)
			}
			return nil
		})

	add := program.Command("add").
		Desc("Adds two numbers").
		Option("-x, --x", "First number").
		Option("-y, --y", "Second number").
		Action(func(args *Arguments) error {
			x := GetOrDefault(args, "x", "x", 1)
			y := GetOrDefault(args, "y", "y", 2)
			fmt.Fprintf(out, "%d + %d = %d\n", x, y, x+y)
			return nil
		})

	add.Command("infinite").
		Desc("Adds every number given").
		ArrayArgument("Numbers to sum").
		Action(func(args *Arguments) error {
			var sum int
			for _, raw := range args.Positionals() {
				n, err := strconv.Atoi(raw)
				if err != nil {
					return fmt.Errorf("not a number: %q", raw)
				}
				sum += n
			}
			fmt.Fprintf(out, "%s = %d\n", args.Join(" + "), sum)
			return nil
		})

	return program
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("run before parse", func(t *testing.T) {
		t.Parallel()

		err := Run(New("lonely"), nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "command has not been parsed")

		err = Run(nil, nil)
		require.Error(t, err)
	})
	t.Run("run after failed parse", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		// A successful parse first, so a stale state would be runnable.
		require.NoError(t, Parse(s.root, []string{"greet", "John"}))

		err := Parse(s.root, []string{"add", "-z=1"})
		require.Error(t, err)

		err = Run(s.root, nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "command has not been parsed")
	})
	t.Run("greet", func(t *testing.T) {
		t.Parallel()
		out := bytes.NewBuffer(nil)
		program := newHumanProgram(out)

		err := ParseAndRun(program, []string{"greet", "John", "Amy"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "Hello, John!\nHello, Amy!\n", out.String())
	})
	t.Run("add with options", func(t *testing.T) {
		t.Parallel()
		out := bytes.NewBuffer(nil)
		program := newHumanProgram(out)

		err := ParseAndRun(program, []string{"add", "-x=5", "-y=5"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "5 + 5 = 10\n", out.String())
	})
	t.Run("add with defaults", func(t *testing.T) {
		t.Parallel()
		out := bytes.NewBuffer(nil)
		program := newHumanProgram(out)

		err := ParseAndRun(program, []string{"add"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "1 + 2 = 3\n", out.String())
	})
	t.Run("nested array command", func(t *testing.T) {
		t.Parallel()
		out := bytes.NewBuffer(nil)
		program := newHumanProgram(out)

		err := ParseAndRun(program, []string{"add", "infinite", "50", "50", "25", "25"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "50 + 50 + 25 + 25 = 150\n", out.String())
	})
	t.Run("help never invokes the action", func(t *testing.T) {
		t.Parallel()
		out := bytes.NewBuffer(nil)
		program := newHumanProgram(out)

		help := bytes.NewBuffer(nil)
		err := ParseAndRun(program, []string{"greet", "John", "--help"}, &RunOptions{Stdout: help})
		require.NoError(t, err)
		assert.Empty(t, out.String())
		assert.Contains(t, help.String(), "usage: human greet [<arguments>]")
		assert.Contains(t, help.String(), "all arguments: Names")
		assert.Contains(t, help.String(), "options:\ncommands:")
	})
	t.Run("action error is forwarded unchanged", func(t *testing.T) {
		t.Parallel()
		sentinel := errors.New("boom")
		root := New("boomer").Action(func(*Arguments) error { return sentinel })

		err := ParseAndRun(root, nil, nil)
		require.ErrorIs(t, err, sentinel)
	})
	t.Run("action failure from bad positional", func(t *testing.T) {
		t.Parallel()
		out := bytes.NewBuffer(nil)
		program := newHumanProgram(out)

		err := ParseAndRun(program, []string{"add", "infinite", "50", "banana"}, nil)
		require.Error(t, err)
		require.ErrorContains(t, err, `not a number: "banana"`)
		assert.Empty(t, out.String())
	})
	t.Run("repeat invocations", func(t *testing.T) {
		t.Parallel()
		var count int
		root := New("counter").Action(func(*Arguments) error {
			count++
			return nil
		})

		for i := 0; i < 3; i++ {
			require.NoError(t, ParseAndRun(root, nil, nil))
		}
		require.Equal(t, 3, count)
	})
}
