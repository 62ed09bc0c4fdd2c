package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charlieparkes/shapes/demo"
	"github.com/charlieparkes/shapes/rng"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const randCount = 10

func main() {
	setupLogging(os.Getenv("SHAPES_LOG_LEVEL"))
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// setupLogging points the global zerolog logger at stderr. Unknown or empty
// levels fall back to warn.
func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shapes",
		Short:         "Shape measurement and random number demos",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(
		demoCmd(demo.ShapeDemo()),
		demoCmd(demo.RectangleDemo()),
		randCmd(),
	)
	return root
}

func demoCmd(d demo.Demo) *cobra.Command {
	return &cobra.Command{
		Use:   d.Name,
		Short: fmt.Sprintf("Print area and aspect for the %s demo", d.Name),
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			log.Debug().Str("demo", d.Name).Int("shapes", len(d.Shapes)).Msg("running demo")
			return d.Run(c.OutOrStdout())
		},
	}
}

func randCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rand [seed]",
		Short: fmt.Sprintf("Print %d values from a Mersenne Twister", randCount),
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRand,
	}
}

func runRand(c *cobra.Command, args []string) error {
	seed := rng.DefaultSeed
	if len(args) == 1 {
		v, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid seed %q: %w", args[0], err)
		}
		seed = uint32(v)
	}

	logger := zap.NewNop()
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer l.Sync()
		logger = l
	}

	tbl := rng.NewTable(rng.WithLogger(logger))
	h := tbl.Create(seed)
	defer func() {
		if err := tbl.Destroy(h); err != nil {
			log.Error().Err(err).Msg("destroying generator")
		}
	}()

	w := c.OutOrStdout()
	for i := 0; i < randCount; i++ {
		v, err := tbl.Next(h)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, v)
	}
	return nil
}
