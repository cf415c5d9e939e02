package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanqian/soulmatch/internal/domain/astrology"
	"github.com/yanqian/soulmatch/internal/domain/auth"
	"github.com/yanqian/soulmatch/internal/infra/config"
	"github.com/yanqian/soulmatch/pkg/logger"
)

// birthFlags binds one set of birth detail flags under an optional prefix.
type birthFlags struct {
	prefix                   string
	date, clock, place       string
	latitude, longitude, utc float64
}

func (b *birthFlags) name(flag string) string {
	if b.prefix == "" {
		return flag
	}
	return b.prefix + "-" + flag
}

func (b *birthFlags) register(cmd *cobra.Command, prefix string) {
	b.prefix = prefix
	name := b.name
	cmd.Flags().StringVar(&b.date, name("date"), "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&b.clock, name("time"), "", "Birth time (HH:MM, 24h)")
	cmd.Flags().StringVar(&b.place, name("place"), "", "Birth place")
	cmd.Flags().Float64Var(&b.latitude, name("lat"), 0, "Latitude in degrees")
	cmd.Flags().Float64Var(&b.longitude, name("lon"), 0, "Longitude in degrees")
	cmd.Flags().Float64Var(&b.utc, name("utc-offset"), 0, "UTC offset in hours")
	_ = cmd.MarkFlagRequired(name("date"))
	_ = cmd.MarkFlagRequired(name("time"))
}

func (b *birthFlags) details(cmd *cobra.Command) astrology.BirthDetails {
	out := astrology.BirthDetails{Date: b.date, Time: b.clock, Place: b.place}
	if cmd.Flags().Changed(b.name("lat")) {
		lat := b.latitude
		out.Latitude = &lat
	}
	if cmd.Flags().Changed(b.name("lon")) {
		lon := b.longitude
		out.Longitude = &lon
	}
	if cmd.Flags().Changed(b.name("utc-offset")) {
		offset := b.utc
		out.UTCOffset = &offset
	}
	return out
}

func newChartCmd(opts *cliOptions) *cobra.Command {
	birth := &birthFlags{}
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Build a birth chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService(cmd, opts)
			if err != nil {
				return err
			}
			chart, err := svc.GenerateBasicHoroscope(cmd.Context(), birth.details(cmd))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), chart)
		},
	}
	birth.register(cmd, "")
	return cmd
}

func newMatchCmd(opts *cliOptions) *cobra.Command {
	groom := &birthFlags{}
	bride := &birthFlags{}
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Score two birth charts with Ashtakoota guna matching",
		Long: `Score two birth charts. The groom side is passed with --groom-* flags and
the bride side with --bride-* flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService(cmd, opts)
			if err != nil {
				return err
			}
			result, err := svc.AnalyzeCompatibility(cmd.Context(), astrology.CompatibilityRequest{
				First:  groom.details(cmd),
				Second: bride.details(cmd),
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}
	groom.register(cmd, "groom")
	bride.register(cmd, "bride")
	return cmd
}

func newPredictCmd(opts *cliOptions) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "predict <nakshatra>",
		Short: "Show the daily reading of a nakshatra",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd, opts)
			if err != nil {
				return err
			}
			prediction, err := svc.DailyPrediction(cmd.Context(), astrology.PredictionRequest{Nakshatra: args[0], Date: date})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), prediction)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Reading date (YYYY-MM-DD, default today)")
	return cmd
}

func newTokenCmd() *cobra.Command {
	var (
		userID int64
		email  string
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the chart endpoints",
		Long: `Mint an access token signed with AUTH_SECRET. Intended for operators and
local testing; end users receive tokens from the platform login flow.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			svc := auth.NewService(auth.Config{
				Secret:   cfg.Auth.Secret,
				TokenTTL: cfg.Auth.TokenTTL,
				Issuer:   cfg.Auth.Issuer,
			}, logger.Discard())
			token, err := svc.IssueToken(cmd.Context(), userID, email)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().Int64Var(&userID, "user-id", 0, "Profile id the token is issued for")
	cmd.Flags().StringVar(&email, "email", "", "Profile email")
	_ = cmd.MarkFlagRequired("user-id")
	return cmd
}
