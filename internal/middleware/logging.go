// internal/middleware/logging.go

package middleware

import (
	"context"
	"time"

	"github.com/jason-s-yu/friendgraph/internal/handlers"
	"github.com/jason-s-yu/friendgraph/internal/script"
	"github.com/sirupsen/logrus"
)

// LogCommands is a handler middleware that logs every command using Logrus.
// Logs the verb, arguments, outcome, and duration of each command.
func LogCommands(logger logrus.FieldLogger) func(next handlers.Handler) handlers.Handler {
	return func(next handlers.Handler) handlers.Handler {
		return handlers.HandlerFunc(func(ctx context.Context, cmd script.Command) (handlers.Response, error) {
			start := time.Now()

			resp, err := next.Handle(ctx, cmd)

			fields := logrus.Fields{
				"verb":     cmd.Verb,
				"args":     cmd.Args,
				"line":     cmd.Line,
				"duration": time.Since(start),
			}
			if resp.Result != nil {
				fields["outcome"] = resp.Result.Outcome.String()
			}
			// failures are returned to the caller, which reports them
			if err != nil {
				fields["error"] = err
			}
			logger.WithFields(fields).Info("Command")
			return resp, err
		})
	}
}
