// Package icicle builds nested command-line interfaces: a tree of named
// commands, each with its own options, positional arguments, description and
// action. Trees are declared once with a fluent builder, then raw arguments
// are matched against the tree, bound to the declared descriptors and routed
// to the resolved command's action. The same tree drives auto-generated help.
//
// The package prioritizes a small, predictable surface: options are always of
// the name=value form, values stay raw strings until a typed getter asks for
// them, and a command without an action falls back to its help text instead
// of failing.
package icicle
