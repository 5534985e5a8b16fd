package console

import (
	"context"
	"errors"
)

type contextKey int

var consoleKey = contextKey(0)

var ErrNoConsoleInContext = errors.New("no console in context")

func ContextWithConsole(ctx context.Context, console *Console) context.Context {
	return context.WithValue(ctx, consoleKey, console)
}

func ConsoleFromContext(ctx context.Context) (*Console, error) {
	if console, ok := ctx.Value(consoleKey).(*Console); ok {
		return console, nil
	}

	return nil, ErrNoConsoleInContext
}
