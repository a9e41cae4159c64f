package history

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tictactician/tictactician/logs"
	"github.com/tictactician/tictactician/notation"
)

type Command struct {
	limit int
	games bool
	final string
}

func (*Command) Name() string     { return "history" }
func (*Command) Synopsis() string { return "Summarize games recorded in a log database" }
func (*Command) Usage() string {
	return `history [flags] DB

Print per-player results from a game log written by play -log or
selfplay -log, followed by the most recent games.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.limit, "n", 10, "number of recent games to list")
	flags.BoolVar(&c.games, "games", true, "list recent games")
	flags.StringVar(&c.final, "final", "", "only list games that ended on this board")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if flag.NArg() != 1 {
		flag.Usage()
		return subcommands.ExitUsageError
	}
	repo, err := logs.Open(flag.Arg(0))
	if err != nil {
		log.Error().Err(err).Str("db", flag.Arg(0)).Msg("open")
		return subcommands.ExitFailure
	}
	defer repo.Close()

	if err := c.report(os.Stdout, repo); err != nil {
		log.Error().Err(err).Msg("history")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *Command) report(w io.Writer, repo *logs.Repository) error {
	recs, err := repo.Summary()
	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "player\tgames\twins\tlosses\tdraws\n")
	for _, r := range recs {
		p.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", r.Player, r.Games, r.Wins, r.Losses, r.Draws)
	}
	tw.Flush()

	if !c.games || c.limit <= 0 {
		return nil
	}
	var games []logs.Game
	if c.final != "" {
		b, _, perr := notation.ParseBoard(c.final)
		if perr != nil {
			return fmt.Errorf("-final: %w", perr)
		}
		games, err = repo.GamesAt(b, c.limit)
	} else {
		games, err = repo.Games(c.limit)
	}
	if err != nil {
		return fmt.Errorf("games: %w", err)
	}
	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "id\ttime\tx\to\twinner\tmoves\n")
	for _, g := range games {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			g.ID, g.Timestamp.Format("2006-01-02 15:04"), g.PlayerX, g.PlayerO, g.Winner, g.Moves)
	}
	return tw.Flush()
}
