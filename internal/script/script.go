// Package script reads the line-oriented command language that drives a network.
//
//	# comment
//	add Alice
//	add "Mary Ann"
//	friend Alice "Mary Ann"
//	edges
//	echo Current Social Network:
//	list
package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
)

// Verb identifies a command.
type Verb string

const (
	VerbAdd    Verb = "add"
	VerbFriend Verb = "friend"
	VerbList   Verb = "list"
	VerbEcho   Verb = "echo"
	VerbEdges  Verb = "edges"
)

// Command is a single parsed line.
type Command struct {
	Verb Verb
	Args []string
	Line int
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return string(c.Verb)
	}
	return string(c.Verb) + " " + strings.Join(c.Args, " ")
}

// SyntaxError reports a line that could not be parsed.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Parse reads commands from r until EOF.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		cmd, err := parseLine(text, line)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return cmds, nil
}

// ParseString is Parse over a string.
func ParseString(s string) ([]Command, error) {
	return Parse(strings.NewReader(s))
}

// Arity returns how many arguments verb takes. Echo takes the rest of its
// line as a single argument.
func Arity(verb Verb) (int, bool) {
	switch verb {
	case VerbAdd, VerbEcho:
		return 1, true
	case VerbFriend:
		return 2, true
	case VerbList, VerbEdges:
		return 0, true
	}
	return 0, false
}

func parseLine(text string, line int) (Command, error) {
	verb, rest := text, ""
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		verb, rest = text[:i], strings.TrimSpace(text[i+1:])
	}
	verb = strings.ToLower(verb)
	if verb == "print" {
		verb = string(VerbList)
	}

	// echo keeps the rest of the line verbatim
	if Verb(verb) == VerbEcho {
		return Command{Verb: VerbEcho, Args: []string{rest}, Line: line}, nil
	}

	want, ok := Arity(Verb(verb))
	if !ok {
		return Command{}, &SyntaxError{Line: line, Msg: fmt.Sprintf("unknown command %q", verb)}
	}

	args, err := shlex.Split(rest)
	if err != nil {
		return Command{}, &SyntaxError{Line: line, Msg: err.Error()}
	}
	if len(args) != want {
		return Command{}, &SyntaxError{
			Line: line,
			Msg:  fmt.Sprintf("%s takes %d argument(s), got %d", verb, want, len(args)),
		}
	}
	return Command{Verb: Verb(verb), Args: args, Line: line}, nil
}
