package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/askcdp/cdpdoc/gin"
	cdpdocslog "github.com/askcdp/cdpdoc/slog"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// termination signal.
const shutdownTimeout = 10 * time.Second

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	engine, err := buildEngine(deps, c.Strategy, c.TopK, c.MinScore)
	if err != nil {
		return err
	}

	answerer := cdpdocslog.NewLoggingAnswerer(engine, deps.Logger)

	srv := gin.NewServer(answerer)
	srv.Addr = c.Addr

	ctx, stop := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Open()
	}()

	fmt.Fprintf(deps.Stdout, "listening on %s (strategy=%s)\n", c.Addr, c.Strategy)

	select {
	case err := <-errc:
		if err != nil {
			fmt.Fprintf(deps.Stderr, "server error: %v\n", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Close(shutdownCtx); err != nil {
		fmt.Fprintf(deps.Stderr, "shutdown error: %v\n", err)
		return err
	}

	fmt.Fprintln(deps.Stdout, "server stopped")
	return nil
}
