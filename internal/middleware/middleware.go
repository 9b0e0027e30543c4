package middleware

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	CtxKeyManifest     contextKey = "manifest"
	CtxKeyManifestPath contextKey = "manifest_path"
)

// Handler is the signature shared by cobra's PreRunE and a middleware's next.
type Handler func(cmd *cobra.Command, args []string) error

// MiddlewareFunc runs before a command and calls next to continue. It may hand
// a different command or argument list to next.
type MiddlewareFunc func(cmd *cobra.Command, args []string, next func(cmd *cobra.Command, args []string) error) error

// CommandFactory builds a fresh command, as the New*Cmd constructors do.
type CommandFactory func() *cobra.Command

type contextKey string

// UseMiddlewareChain returns a decorator for command factories. The decorated
// command runs middlewares in the given order, then its own PreRunE.
func UseMiddlewareChain(middlewares ...MiddlewareFunc) func(CommandFactory) CommandFactory {
	mws := append([]MiddlewareFunc(nil), middlewares...)

	return func(factory CommandFactory) CommandFactory {
		return func() *cobra.Command {
			cmd := factory()
			cmd.PreRunE = chain(mws, cmd.PreRunE)
			return cmd
		}
	}
}

// chain folds mws around final, innermost last.
func chain(mws []MiddlewareFunc, final Handler) Handler {
	h := final
	if h == nil {
		h = func(*cobra.Command, []string) error { return nil }
	}
	for i := len(mws) - 1; i >= 0; i-- {
		mw, next := mws[i], h
		h = func(cmd *cobra.Command, args []string) error {
			return mw(cmd, args, next)
		}
	}
	return h
}

func Get[T any](cmd *cobra.Command, key contextKey) (T, error) {
	var zero T

	ctx := cmd.Context()
	if ctx == nil {
		return zero, fmt.Errorf("command context is nil")
	}

	val := ctx.Value(key)
	if val == nil {
		return zero, fmt.Errorf("context value %q is nil", key)
	}

	casted, ok := val.(T)
	if !ok {
		return zero, fmt.Errorf("context value %q has wrong type: %T", key, val)
	}

	return casted, nil
}
