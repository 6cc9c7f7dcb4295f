package icicle

import (
	"strings"

	"github.com/icicle-cli/icicle/pkg/textutil"
)

const helpWidth = 80

// DefaultUsage renders the help text for a single command: a usage line
// followed by the arguments, options and commands sections. Section headers
// are always printed, even when a section has no entries. Rendering is pure;
// a node always renders, whatever its descriptor sets look like.
func DefaultUsage(c *Command) string {
	if c == nil {
		return ""
	}
	return renderHelp([]*Command{c})
}

// renderHelp renders help for the last command in path, using the full path
// in the usage line.
func renderHelp(path []*Command) string {
	c := path[len(path)-1]
	var b strings.Builder

	if c.desc != "" {
		for _, line := range textutil.Wrap(c.desc, helpWidth) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("usage: ")
	b.WriteString(commandPath(path))
	if len(c.options) > 0 {
		b.WriteString(" [--options]")
	}
	if len(c.args) > 0 {
		b.WriteString(" [<arguments>]")
	}
	b.WriteString("\n")

	b.WriteString("arguments:\n")
	for _, arg := range c.args {
		if arg.Array {
			writeEntry(&b, "all arguments", arg.Desc)
			continue
		}
		writeEntry(&b, "", arg.Desc)
	}

	b.WriteString("options:\n")
	for _, opt := range c.options {
		writeEntry(&b, opt.Names(), opt.Desc)
	}

	b.WriteString("commands:\n")
	for _, child := range c.children {
		writeEntry(&b, child.name, child.desc)
	}

	return strings.TrimRight(b.String(), "\n")
}

// writeEntry writes one "  label: description" line, wrapping long
// descriptions onto continuation lines aligned under the description.
func writeEntry(b *strings.Builder, label, desc string) {
	prefix := "  "
	if label != "" {
		prefix += label + ": "
	}
	lines := textutil.Wrap(desc, helpWidth-len(prefix))
	if len(lines) == 0 {
		// Empty and whitespace-only descriptions render as a bare label.
		b.WriteString(strings.TrimSuffix(prefix, ": "))
		b.WriteString("\n")
		return
	}
	b.WriteString(prefix)
	b.WriteString(lines[0])
	b.WriteString("\n")
	indent := strings.Repeat(" ", len(prefix))
	for _, line := range lines[1:] {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteString("\n")
	}
}
