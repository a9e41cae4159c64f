package opt

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/tictactician/tictactician/ai"
)

// Minimax holds the engine flags shared by every subcommand that
// runs a search.
type Minimax struct {
	Debug  int
	Table  bool
	Prune  bool
	Config string
}

func (o *Minimax) AddFlags(flags *flag.FlagSet) {
	flags.IntVar(&o.Debug, "debug", 0, "debug level")
	flags.BoolVar(&o.Table, "table", true, "use the memo table")
	flags.BoolVar(&o.Prune, "prune", true, "use alpha-beta pruning")
	flags.StringVar(&o.Config, "config", "", "JSON file of engine settings, applied over the flags")
}

func (o *Minimax) Build() (ai.MinimaxConfig, error) {
	cfg := ai.MinimaxConfig{
		Debug:   o.Debug,
		NoTable: !o.Table,
		NoPrune: !o.Prune,
	}
	if o.Config == "" {
		return cfg, nil
	}
	bs, err := os.ReadFile(o.Config)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(bs, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", o.Config, err)
	}
	return cfg, nil
}

// BuildConfig is Build for callers with no way to report an error.
func (o *Minimax) BuildConfig() ai.MinimaxConfig {
	cfg, err := o.Build()
	if err != nil {
		log.Fatal().Err(err).Msg("engine config")
	}
	return cfg
}
