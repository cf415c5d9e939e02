package main

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanqian/soulmatch/internal/domain/astrology"
	"github.com/yanqian/soulmatch/internal/infra/chartstore"
	"github.com/yanqian/soulmatch/internal/infra/config"
	"github.com/yanqian/soulmatch/pkg/logger"
)

// cliOptions are the persistent flags shared by every subcommand.
type cliOptions struct {
	ayanamsa string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}
	root := &cobra.Command{
		Use:   "horoscope",
		Short: "Compute horoscopes and guna matches offline",
		Long: `horoscope runs the soulmatch astrology engine without the HTTP server.

Available subcommands:
  chart   - Build a birth chart
  match   - Score two birth charts with Ashtakoota guna matching
  predict - Show the daily reading of a nakshatra
  token   - Mint a bearer token for the chart endpoints`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.ayanamsa, "ayanamsa", "", "Zodiac: none (tropical) or lahiri (default from config)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log engine warnings to stderr")

	root.AddCommand(newChartCmd(opts))
	root.AddCommand(newMatchCmd(opts))
	root.AddCommand(newPredictCmd(opts))
	root.AddCommand(newTokenCmd())
	return root
}

// newService builds an engine backed by an in-process cache.
func newService(cmd *cobra.Command, opts *cliOptions) (astrology.Service, error) {
	cfg, err := config.LoadAstrology()
	if err != nil {
		return nil, err
	}
	ayanamsa := cfg.Astrology.Ayanamsa
	if opts.ayanamsa != "" {
		ayanamsa = strings.ToLower(strings.TrimSpace(opts.ayanamsa))
	}
	level := "error"
	if opts.verbose {
		level = "debug"
	}
	log := logger.NewWithOptions(logger.Options{
		Writer:  cmd.ErrOrStderr(),
		Level:   level,
		Format:  "text",
		Service: "horoscope",
	})
	return astrology.NewService(astrology.Config{
		Ayanamsa:          astrology.Ayanamsa(ayanamsa),
		CacheTTL:          cfg.Astrology.CacheTTL,
		MaxRankCandidates: cfg.Astrology.MaxRankCandidates,
		RankConcurrency:   cfg.Astrology.RankConcurrency,
	}, chartstore.NewMemoryStore(), nil, nil, log), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
