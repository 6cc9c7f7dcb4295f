package icicle

import (
	"fmt"
	"strings"

	"github.com/icicle-cli/icicle/pkg/suggest"
)

// Parse resolves args against the command tree and binds options and
// positional arguments for the resolved command. It returns an error if the
// input cannot be bound; parsing has no other effect than recording the
// outcome on the root, ready for [Run].
//
// This is the main entry point for parsing and should be called with the
// root command and the raw arguments, typically os.Args[1:].
//
// Resolution is a greedy descent: tokens are consumed left to right for as
// long as each one names a subcommand of the current node, and the resolved
// command is the deepest node reached. The remaining tokens are partitioned
// into option tokens (leading "-", of the form name=value) and positional
// tokens. A literal "--help" anywhere in the remaining tokens short-circuits
// binding entirely and requests help for the resolved node, as does reaching
// a node that has no action.
func Parse(root *Command, args []string) error {
	if root == nil {
		return fmt.Errorf("failed to parse: root command is nil")
	}
	if err := validate(root, nil); err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}
	// A failed parse must not leave a runnable state behind, neither a stale
	// one from an earlier invocation nor a half-bound one from this one.
	root.state = nil

	current := root
	path := []*Command{root}
	pos := 0
	for pos < len(args) {
		child := current.findChild(args[pos])
		if child == nil {
			break
		}
		current = child
		path = append(path, child)
		pos++
	}
	rest := args[pos:]

	st := &state{path: path}

	// Help wins over everything that follows, including tokens that would
	// otherwise be parse errors.
	for _, arg := range rest {
		if arg == "--help" {
			st.help = true
			root.state = st
			return nil
		}
	}

	// A node without an action cannot be dispatched; leftover tokens are not
	// an error there, the node just shows its help.
	if current.action == nil {
		st.help = true
		root.state = st
		return nil
	}

	bound := newArguments()
	for _, arg := range rest {
		if strings.HasPrefix(arg, "-") {
			if err := bindOption(current, path, bound, arg); err != nil {
				return err
			}
			continue
		}
		bound.pos = append(bound.pos, arg)
	}
	if err := checkPositionals(current, path, bound); err != nil {
		return err
	}
	st.args = bound
	root.state = st
	return nil
}

// bindOption matches one option token against the resolved command's
// declared options and records its raw value.
func bindOption(c *Command, path []*Command, bound *Arguments, token string) error {
	name, value, hasValue := strings.Cut(token, "=")
	if name == "--help" {
		return &ParseError{
			Code:    ErrMalformedOption,
			Command: commandPath(path),
			Token:   token,
			detail:  `option "--help" does not take a value`,
		}
	}
	canonical := trimDashes(name)
	var matched *Option
	for i := range c.options {
		if c.options[i].matches(canonical) {
			matched = &c.options[i]
			break
		}
	}
	if matched == nil {
		return &ParseError{
			Code:    ErrUnknownOption,
			Command: commandPath(path),
			Token:   token,
			detail:  formatUnknownOption(c, name),
		}
	}
	if !hasValue {
		return &ParseError{
			Code:    ErrMalformedOption,
			Command: commandPath(path),
			Token:   token,
			detail:  fmt.Sprintf("option %q is missing a value, expected %s=<value>", name, name),
		}
	}
	bound.set(*matched, value)
	return nil
}

// checkPositionals enforces the resolved command's argument slots: an array
// slot takes any remaining tokens, named slots take exactly one each.
func checkPositionals(c *Command, path []*Command, bound *Arguments) error {
	named := len(c.args)
	_, hasArray := c.arrayArgument()
	if hasArray {
		named--
	}
	got := len(bound.pos)
	switch {
	case hasArray && got < named:
		return &ParseError{
			Code:    ErrArgumentCount,
			Command: commandPath(path),
			detail:  fmt.Sprintf("expected at least %d argument(s), got %d", named, got),
		}
	case !hasArray && got != named:
		return &ParseError{
			Code:    ErrArgumentCount,
			Command: commandPath(path),
			detail:  fmt.Sprintf("expected %d argument(s), got %d", named, got),
		}
	}
	return nil
}

func formatUnknownOption(c *Command, name string) string {
	var known []string
	for _, opt := range c.options {
		if opt.Short != "" {
			known = append(known, "-"+opt.Short)
		}
		if opt.Long != "" {
			known = append(known, "--"+opt.Long)
		}
	}
	suggestions := suggest.FindSimilar(name, known, 3)
	if len(suggestions) > 0 {
		return fmt.Sprintf("unknown option %q. Did you mean one of these?\n\t%s",
			name,
			strings.Join(suggestions, "\n\t"))
	}
	return fmt.Sprintf("unknown option %q", name)
}
