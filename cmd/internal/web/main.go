package web

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/tictactician/tictactician/cmd/internal/opt"
	"github.com/tictactician/tictactician/web"
)

type Command struct {
	addr string
	opt  opt.Minimax
}

func (*Command) Name() string     { return "web" }
func (*Command) Synopsis() string { return "Serve the engine over HTTP and websockets" }
func (*Command) Usage() string {
	return `web [flags]

Serve GET /api/analyze?board=BOARD and a websocket game at /ws, where
the engine plays X against the connected client.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.addr, "addr", ":8080", "listen address")
	c.opt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.opt.Build()
	if err != nil {
		log.Error().Err(err).Msg("engine config")
		return subcommands.ExitUsageError
	}
	srv := &http.Server{
		Addr:              c.addr,
		Handler:           web.NewServer(cfg).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdown)
	}()

	log.Info().Str("addr", c.addr).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("web")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
