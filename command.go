package icicle

import (
	"errors"
	"fmt"
	"strings"
)

// Command represents one node in the command tree. The zero value is not
// usable; build trees with [New] and the fluent methods, which always return
// the node they mutated so calls can be chained.
//
// A tree is built once at program startup and must not be modified after the
// first call to [Parse] or [Run]. Parsing never mutates the tree beyond the
// transient per-invocation state stored on the root.
type Command struct {
	name     string
	desc     string
	options  []Option
	args     []Argument
	action   func(*Arguments) error
	children []*Command

	// Set on the root by Parse, consumed by Run.
	state *state
}

// Option declares a single flag on a command: a short name, a long name, and
// a description. Names are stored without their leading dashes.
type Option struct {
	Short string
	Long  string
	Desc  string
}

// Names renders the option's declared names for display, e.g. "-x, --x".
func (o Option) Names() string {
	switch {
	case o.Short != "" && o.Long != "":
		return "-" + o.Short + ", --" + o.Long
	case o.Short != "":
		return "-" + o.Short
	default:
		return "--" + o.Long
	}
}

func (o Option) matches(name string) bool {
	return (o.Short != "" && o.Short == name) || (o.Long != "" && o.Long == name)
}

// Argument declares a positional slot on a command. A node holds either any
// number of single slots, or ends with one array slot that captures every
// remaining positional token.
type Argument struct {
	Desc  string
	Array bool
}

// New creates the root of a command tree.
func New(name string) *Command {
	return &Command{name: name}
}

// Name reports the command's name.
func (c *Command) Name() string { return c.name }

// Command appends a new subcommand and returns it, making the child the
// active node for subsequent chained calls:
//
//	root.Command("add").
//	    Desc("Adds two numbers").
//	    Option("-x, --x", "First number")
func (c *Command) Command(name string) *Command {
	for _, child := range c.children {
		if child.name == name {
			panic(fmt.Sprintf("icicle: duplicate subcommand %q under %q", name, c.name))
		}
	}
	child := &Command{name: name}
	c.children = append(c.children, child)
	return child
}

// Desc sets the command's description, shown in help output.
func (c *Command) Desc(text string) *Command {
	c.desc = text
	return c
}

// Option declares a flag on the command. The names string is a comma-separated
// list of a short and/or long form, dashes included, e.g. "-x, --x". Declaring
// a name already taken on this command is a programming error and panics.
func (c *Command) Option(names, desc string) *Command {
	opt := Option{Desc: desc}
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		switch {
		case strings.HasPrefix(name, "--"):
			if opt.Long != "" {
				panic(fmt.Sprintf("icicle: option %q on command %q declares two long names", names, c.name))
			}
			opt.Long = strings.TrimPrefix(name, "--")
		case strings.HasPrefix(name, "-"):
			if opt.Short != "" {
				panic(fmt.Sprintf("icicle: option %q on command %q declares two short names", names, c.name))
			}
			opt.Short = strings.TrimPrefix(name, "-")
		case name != "":
			// Bare names count as short, so Option("x", ...) works too.
			if opt.Short != "" {
				panic(fmt.Sprintf("icicle: option %q on command %q declares two short names", names, c.name))
			}
			opt.Short = name
		}
	}
	if opt.Short == "" && opt.Long == "" {
		panic(fmt.Sprintf("icicle: option on command %q declares no names", c.name))
	}
	for _, existing := range c.options {
		if (opt.Short != "" && existing.matches(opt.Short)) ||
			(opt.Long != "" && existing.matches(opt.Long)) {
			panic(fmt.Sprintf("icicle: duplicate option %q on command %q", names, c.name))
		}
	}
	c.options = append(c.options, opt)
	return c
}

// Argument declares a single named positional slot. Parsing requires exactly
// one token per declared slot. Declaring a slot after an array argument is a
// programming error and panics.
func (c *Command) Argument(desc string) *Command {
	if n := len(c.args); n > 0 && c.args[n-1].Array {
		panic(fmt.Sprintf("icicle: command %q declares an argument after an array argument", c.name))
	}
	c.args = append(c.args, Argument{Desc: desc})
	return c
}

// ArrayArgument declares a trailing variable-length slot capturing all
// remaining positional tokens, zero or more. At most one array argument may
// be declared per command, and nothing may follow it.
func (c *Command) ArrayArgument(desc string) *Command {
	for _, arg := range c.args {
		if arg.Array {
			panic(fmt.Sprintf("icicle: command %q declares more than one array argument", c.name))
		}
	}
	c.args = append(c.args, Argument{Desc: desc, Array: true})
	return c
}

// Action attaches the function invoked when this command is dispatched. The
// returned error is forwarded unchanged to the caller of [Run].
func (c *Command) Action(fn func(*Arguments) error) *Command {
	c.action = fn
	return c
}

func (c *Command) arrayArgument() (Argument, bool) {
	if n := len(c.args); n > 0 && c.args[n-1].Array {
		return c.args[n-1], true
	}
	return Argument{}, false
}

// findChild returns the subcommand with the given name, or nil. Matching is
// exact and case-sensitive.
func (c *Command) findChild(name string) *Command {
	for _, child := range c.children {
		if child.name == name {
			return child
		}
	}
	return nil
}

// validate walks the tree checking for misuse the builder cannot catch, such
// as trees stitched together from nodes built elsewhere.
func validate(c *Command, path []string) error {
	if c.name == "" {
		if len(path) == 0 {
			return errors.New("root command has no name")
		}
		return fmt.Errorf("subcommand in path %q has no name", strings.Join(path, " "))
	}
	if strings.ContainsAny(c.name, " \t") {
		return fmt.Errorf("command name %q contains spaces, must be a single word", c.name)
	}
	currentPath := append(path, c.name)
	seen := make(map[string]bool, len(c.children))
	for _, child := range c.children {
		if seen[child.name] {
			return fmt.Errorf("duplicate subcommand %q in path %q", child.name, strings.Join(currentPath, " "))
		}
		seen[child.name] = true
		if err := validate(child, currentPath); err != nil {
			return err
		}
	}
	return nil
}

func commandPath(commands []*Command) string {
	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, c.name)
	}
	return strings.Join(names, " ")
}
