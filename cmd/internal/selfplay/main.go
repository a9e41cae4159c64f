package selfplay

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tictactician/tictactician/ai"
	"github.com/tictactician/tictactician/cmd/internal/opt"
	"github.com/tictactician/tictactician/engine"
	"github.com/tictactician/tictactician/logs"
	"github.com/tictactician/tictactician/ttt"
)

type Command struct {
	p1   string
	p2   string
	seed int64

	games int
	swap  bool

	threads int

	strict  bool
	log     string
	summary string
	verbose bool

	opt opt.Minimax
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two AIs against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]

Each player is "minimax", "rand", or "engine:CMDLINE" to drive an
engine subprocess over TTI ("engine:tictactician engine").
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.p1, "p1", "minimax", "player 1")
	flags.StringVar(&c.p2, "p2", "minimax", "player 2")

	flags.Int64Var(&c.seed, "seed", 0, "starting random seed")
	flags.IntVar(&c.games, "games", 10, "number of games to play per color")
	flags.BoolVar(&c.swap, "swap", true, "swap colors each game")
	flags.IntVar(&c.threads, "threads", 4, "number of parallel games")
	flags.BoolVar(&c.strict, "strict", true, "fail if a perfect player loses a game")
	flags.StringVar(&c.log, "log", "", "sqlite database to record games in")
	flags.StringVar(&c.summary, "summary", "", "write summary JSON file")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")
	c.opt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}
	mmcfg, err := c.opt.Build()
	if err != nil {
		log.Error().Err(err).Msg("engine config")
		return subcommands.ExitUsageError
	}
	if !mmcfg.NoTable {
		mmcfg.Table = ai.NewTable()
	}

	cfg := &Config{
		Games:   c.games,
		Threads: c.threads,
		Seed:    c.seed,
		Swap:    c.swap,
		Verbose: c.verbose,
	}
	if cfg.P1, err = ParseEntrant(c.p1, mmcfg); err != nil {
		log.Error().Err(err).Msg("-p1")
		return subcommands.ExitUsageError
	}
	if cfg.P2, err = ParseEntrant(c.p2, mmcfg); err != nil {
		log.Error().Err(err).Msg("-p2")
		return subcommands.ExitUsageError
	}

	start := time.Now()
	st, err := Simulate(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("selfplay")
		return subcommands.ExitFailure
	}

	if c.log != "" {
		if err := c.record(cfg, st); err != nil {
			log.Error().Err(err).Str("db", c.log).Msg("record games")
			return subcommands.ExitFailure
		}
	}
	if c.summary != "" {
		if err := c.writeSummary(c.summary, st); err != nil {
			log.Error().Err(err).Msg("writing summary")
		}
	}

	log.Info().
		Int("games", st.Count()).
		Int64("seed", c.seed).
		Dur("time", time.Since(start)).
		Msg("done")
	printStats(os.Stdout, cfg, st)

	if c.strict {
		if err := Check(cfg, st); err != nil {
			log.Error().Err(err).Msg("selfplay")
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

// ParseEntrant turns a -p1/-p2 flag value into an Entrant.
func ParseEntrant(s string, mmcfg ai.MinimaxConfig) (Entrant, error) {
	switch {
	case s == "minimax":
		return Entrant{
			Name:    s,
			Perfect: true,
			New: func(int64) (ai.Player, func(), error) {
				return ai.NewMinimax(mmcfg), func() {}, nil
			},
		}, nil
	case s == "rand":
		return Entrant{
			Name: s,
			New: func(seed int64) (ai.Player, func(), error) {
				return ai.NewRandom(seed), func() {}, nil
			},
		}, nil
	case strings.HasPrefix(s, "engine:"):
		cmdline := strings.Fields(s[len("engine:"):])
		if len(cmdline) == 0 {
			return Entrant{}, errors.New("engine: empty command line")
		}
		return Entrant{
			Name:    s,
			Perfect: true,
			New: func(int64) (ai.Player, func(), error) {
				cl, err := engine.NewClient(cmdline)
				if err != nil {
					return nil, nil, err
				}
				return cl, cl.Close, nil
			},
		}, nil
	}
	return Entrant{}, fmt.Errorf("unknown player: %q", s)
}

func (c *Command) record(cfg *Config, st *Stats) error {
	repo, err := logs.Open(c.log)
	if err != nil {
		return err
	}
	defer repo.Close()
	return repo.InsertGames(gameLogs(cfg, st))
}

func gameLogs(cfg *Config, st *Stats) []*logs.Game {
	var out []*logs.Game
	for _, r := range st.Games {
		x, o := cfg.P1.Name, cfg.P2.Name
		if r.P1Player != ttt.PlayerX {
			x, o = o, x
		}
		out = append(out, logs.NewGame(x, o, ttt.PlayerX, r.Moves, r.Final))
	}
	return out
}

func printStats(w io.Writer, cfg *Config, st *Stats) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "%d games: X won %d, O won %d, %d drawn\n", st.Count(), st.X, st.O, st.Ties)

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\tX\tO\tsum\n")
	for i, name := range []string{cfg.P1.Name, cfg.P2.Name} {
		ps := st.Players[i]
		p.Fprintf(tw, "p%d (%s)\t%d\t%d\t%d\n", i+1, name, ps.XWins, ps.OWins, ps.Wins)
	}
	tw.Flush()
}

type Summary struct {
	Cmdline []string
	Player1 string
	Player2 string
	Stats   *Stats
}

func (c *Command) writeSummary(path string, stats *Stats) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	summary := Summary{
		Cmdline: os.Args,
		Player1: c.p1,
		Player2: c.p2,
		Stats:   stats,
	}

	bs, err := json.MarshalIndent(&summary, "", "  ")
	if err != nil {
		return err
	}
	_, err = f.Write(bs)
	return err
}
