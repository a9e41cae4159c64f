package canonicalize

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/tictactician/tictactician/notation"
	"github.com/tictactician/tictactician/symmetry"
)

type Command struct {
	variants bool
}

func (*Command) Name() string     { return "canonicalize" }
func (*Command) Synopsis() string { return "Print the canonical orientation of a board" }
func (*Command) Usage() string {
	return `canonicalize [-variants] BOARD

Rewrite a board into the orientation the engine's memo table stores it
under. With -variants, also list every distinct symmetric image.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.BoolVar(&c.variants, "variants", false, "list every distinct symmetric image")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(flag.Args()) == 0 {
		flag.Usage()
		return subcommands.ExitUsageError
	}

	b, toMove, err := notation.ParseBoard(strings.Join(flag.Args(), " "))
	if err != nil {
		log.Error().Err(err).Msg("parse board")
		return subcommands.ExitUsageError
	}
	k := symmetry.Canonical(b, toMove)
	fmt.Println(notation.FormatBoard(k.B, k.ToMove))
	if c.variants {
		for _, v := range symmetry.Symmetries(b) {
			fmt.Println(notation.FormatBoard(v.B, toMove))
		}
	}
	return subcommands.ExitSuccess
}
