// internal/handlers/console.go
package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/jason-s-yu/friendgraph/internal/network"
	"github.com/jason-s-yu/friendgraph/internal/script"
)

// Response describes what a handled command did. Result is nil for commands
// that only read the network or print text.
type Response struct {
	Result *network.Result
	Lines  []string
}

// Handler runs one command.
type Handler interface {
	Handle(ctx context.Context, cmd script.Command) (Response, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, cmd script.Command) (Response, error)

func (f HandlerFunc) Handle(ctx context.Context, cmd script.Command) (Response, error) {
	return f(ctx, cmd)
}

// Console applies commands to a network and writes the resulting text to Out.
type Console struct {
	Network *network.Network
	Out     io.Writer
}

func NewConsole(n *network.Network, out io.Writer) *Console {
	return &Console{Network: n, Out: out}
}

// Handle performs cmd and writes its output lines.
func (c *Console) Handle(ctx context.Context, cmd script.Command) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}

	want, ok := script.Arity(cmd.Verb)
	if !ok {
		return Response{}, fmt.Errorf("unsupported command %q on line %d", cmd.Verb, cmd.Line)
	}
	if len(cmd.Args) != want {
		return Response{}, fmt.Errorf("%s on line %d takes %d argument(s), got %d", cmd.Verb, cmd.Line, want, len(cmd.Args))
	}

	var resp Response
	switch cmd.Verb {
	case script.VerbAdd:
		res := c.Network.AddPerson(cmd.Args[0])
		resp = Response{Result: &res, Lines: FormatResult(res)}
	case script.VerbFriend:
		res := c.Network.AddFriendship(cmd.Args[0], cmd.Args[1])
		resp = Response{Result: &res, Lines: FormatResult(res)}
	case script.VerbList:
		resp = Response{Lines: FormatListing(c.Network.Listing())}
	case script.VerbEdges:
		resp = Response{Lines: FormatEdges(c.Network, c.Network.Friendships())}
	case script.VerbEcho:
		resp = Response{Lines: []string{cmd.Args[0]}}
	default:
		return Response{}, fmt.Errorf("unsupported command %q on line %d", cmd.Verb, cmd.Line)
	}

	for _, l := range resp.Lines {
		if _, err := fmt.Fprintln(c.Out, l); err != nil {
			return resp, fmt.Errorf("failed to write output: %w", err)
		}
	}
	return resp, nil
}

// Run hands each command to h in order and stops at the first error.
func Run(ctx context.Context, h Handler, cmds []script.Command) error {
	for _, cmd := range cmds {
		if _, err := h.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("command %q: %w", cmd.String(), err)
		}
	}
	return nil
}
