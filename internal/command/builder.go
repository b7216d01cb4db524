// Package command turns a validated intent and the global options into the
// argument vector of pacman or pactree.
package command

import (
	"fmt"
	"strings"
)

// Command is the result of generation. Args[0] is the program to run.
type Command struct {
	Args     []string
	Root     bool // needs elevated privileges
	Delegate bool // may be handed to the AUR helper
}

// Program returns the program name, or "" for an empty command.
func (c Command) Program() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

// String renders the command as a single space-joined line.
func (c Command) String() string {
	return strings.Join(c.Args, " ")
}

// Builder accumulates command tokens in insertion order.
// A Builder belongs to a single generation and is not safe for concurrent use.
type Builder struct {
	args     []string
	root     bool
	delegate bool
}

// NewBuilder starts a command for program.
func NewBuilder(program string) *Builder {
	return &Builder{args: []string{program}}
}

// Arg appends a token.
func (b *Builder) Arg(token string) {
	b.args = append(b.args, token)
}

// ArgIf appends token only when cond holds.
func (b *Builder) ArgIf(token string, cond bool) {
	if cond {
		b.args = append(b.args, token)
	}
}

// Flag appends c to the last token, which must be a combined flag such as "-S".
func (b *Builder) Flag(c byte, cond bool) {
	if !cond {
		return
	}
	if len(b.args) == 0 {
		panic("command: Flag called on an empty builder")
	}
	b.args[len(b.args)-1] += string(c)
}

// Option appends name and value as two tokens when value is not empty.
func (b *Builder) Option(name, value string) {
	if value == "" {
		return
	}
	b.args = append(b.args, name, value)
}

// Args appends tokens in the order given.
func (b *Builder) Args(tokens ...string) {
	b.args = append(b.args, tokens...)
}

// Last returns the most recently appended token.
func (b *Builder) Last() string {
	if len(b.args) == 0 {
		return ""
	}
	return b.args[len(b.args)-1]
}

// DropLast removes the most recently appended token. The program name is never removed.
func (b *Builder) DropLast() {
	if len(b.args) > 1 {
		b.args = b.args[:len(b.args)-1]
	}
}

// SetRoot marks the command as needing superuser privileges.
func (b *Builder) SetRoot(root bool) { b.root = root }

// SetDelegate marks the command as eligible for an AUR helper.
func (b *Builder) SetDelegate(delegate bool) { b.delegate = delegate }

// Command returns the accumulated command. The builder must not be used afterwards.
func (b *Builder) Command() Command {
	return Command{Args: b.args, Root: b.root, Delegate: b.delegate}
}

// Value appends name and the formatted value when value is non-nil.
func Value[T any](b *Builder, name string, value *T) {
	if value == nil {
		return
	}
	b.args = append(b.args, name, fmt.Sprint(*value))
}
