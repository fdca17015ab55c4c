package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/iamasit07/4-in-a-row/simulator/internal/config"
	"github.com/iamasit07/4-in-a-row/simulator/internal/domain"
	"github.com/iamasit07/4-in-a-row/simulator/internal/repository/redis"
	"github.com/iamasit07/4-in-a-row/simulator/internal/service/bot"
	"github.com/iamasit07/4-in-a-row/simulator/internal/service/match"
)

type options struct {
	player1       string
	player2       string
	games         int
	depth         int
	seed          uint64
	rows          int
	columns       int
	connect       int
	fixedStart    bool
	output        string
	redisURL      string
	redisPassword string
	logLevel      string
}

func newOptions(cfg *config.Config) *options {
	return &options{
		player1:       cfg.Player1,
		player2:       cfg.Player2,
		games:         cfg.Games,
		depth:         cfg.Depth,
		seed:          cfg.Seed,
		rows:          cfg.Rules.Rows,
		columns:       cfg.Rules.Columns,
		connect:       cfg.Rules.ToWin,
		output:        outputText,
		redisURL:      cfg.RedisURL,
		redisPassword: cfg.RedisPassword,
		logLevel:      cfg.LogLevel,
	}
}

func (o *options) rules() domain.Rules {
	return domain.Rules{Rows: o.rows, Columns: o.columns, ToWin: o.connect}
}

// NewRootCmd creates the root command. Flag defaults come from cfg.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	opts := newOptions(cfg)

	rootCmd := &cobra.Command{
		Use:   "c4sim",
		Short: "Simulate Connect Four games between strategies",
		Long: `c4sim plays a series of Connect Four games between two strategies and
reports how often each side won.

The starting side alternates every game unless --fixed-start is given.
Available strategies: random, winnow_or_random, minimax, threat.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return SetupLogging(opts.logLevel, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, opts)
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.player1, "player1", opts.player1, "Strategy for Player 1 (env: C4_PLAYER1)")
	flags.StringVar(&opts.player2, "player2", opts.player2, "Strategy for Player 2 (env: C4_PLAYER2)")
	flags.StringVar(&opts.redisURL, "redis-url", opts.redisURL, "Redis address for cumulative tallies (env: REDIS_URL)")
	flags.StringVar(&opts.redisPassword, "redis-password", opts.redisPassword, "Redis password (env: REDIS_PASSWORD)")
	flags.StringVarP(&opts.output, "output", "o", opts.output, "Output format: text, json")
	flags.StringVar(&opts.logLevel, "log-level", opts.logLevel, "Log level: debug, info, warn, error (env: LOG_LEVEL)")

	rootCmd.Flags().IntVarP(&opts.games, "games", "n", opts.games, "Number of games to simulate (env: C4_GAMES)")
	rootCmd.Flags().IntVar(&opts.depth, "depth", opts.depth, "Minimax search depth (env: C4_DEPTH)")
	rootCmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "Random seed, 0 picks one from the clock (env: C4_SEED)")
	rootCmd.Flags().IntVar(&opts.rows, "rows", opts.rows, "Board rows (env: C4_ROWS)")
	rootCmd.Flags().IntVar(&opts.columns, "columns", opts.columns, "Board columns (env: C4_COLUMNS)")
	rootCmd.Flags().IntVar(&opts.connect, "connect", opts.connect, "Disks in a row needed to win (env: C4_CONNECT)")
	rootCmd.Flags().BoolVar(&opts.fixedStart, "fixed-start", false, "Let Player 1 start every game")

	rootCmd.AddCommand(newStrategiesCmd())
	rootCmd.AddCommand(newStatsCmd(opts))

	return rootCmd
}

// Execute runs the root command
func Execute(cfg *config.Config) {
	if err := NewRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func runSimulation(cmd *cobra.Command, opts *options) error {
	if opts.games <= 0 {
		return fmt.Errorf("--games must be positive, got %d", opts.games)
	}
	if err := checkOutput(opts.output); err != nil {
		return err
	}
	rules := opts.rules()
	if err := rules.Validate(); err != nil {
		return fmt.Errorf("%w: %d rows, %d columns, connect %d", err, rules.Rows, rules.Columns, rules.ToWin)
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	p1, err := bot.New(opts.player1, bot.Options{Depth: opts.depth, Rand: bot.NewRandom(seed)})
	if err != nil {
		return err
	}
	p2, err := bot.New(opts.player2, bot.Options{Depth: opts.depth, Rand: bot.NewRandom(seed + 1)})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svcOpts := []match.Option{match.WithAlternatingStart(!opts.fixedStart)}
	if store := openTallyStore(ctx, opts); store != nil {
		defer store.Close()
		svcOpts = append(svcOpts, match.WithRecorder(store))
	}

	tally, err := match.NewService(rules, svcOpts...).PlayGames(ctx, opts.games, p1, p2)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		log.Warn().Msgf("interrupted after %d of %d games", tally.Games, opts.games)
	}

	if renderErr := render(cmd.OutOrStdout(), opts.output, report{
		Player1: opts.player1,
		Player2: opts.player2,
		Rules:   rules,
		Seed:    seed,
		Tally:   tally,
	}); renderErr != nil {
		return renderErr
	}
	return err
}

// openTallyStore connects to redis when configured. A failed connection is
// logged and the run continues without cumulative tallies.
func openTallyStore(ctx context.Context, opts *options) *redis.TallyStore {
	if opts.redisURL == "" {
		return nil
	}
	client, err := redis.InitRedis(ctx, opts.redisURL, opts.redisPassword)
	if err != nil {
		log.Warn().Err(err).Msg("[REDIS] continuing without cumulative tallies")
		return nil
	}
	return redis.NewTallyStore(client)
}

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range bot.Names() {
				fmt.Fprintf(out, "%-18s %s\n", name, bot.DisplayName(name))
			}
			return nil
		},
	}
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the cumulative tally of a matchup stored in redis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.redisURL == "" {
				return fmt.Errorf("stats needs --redis-url or REDIS_URL")
			}
			if err := checkOutput(opts.output); err != nil {
				return err
			}

			client, err := redis.InitRedis(cmd.Context(), opts.redisURL, opts.redisPassword)
			if err != nil {
				return err
			}
			store := redis.NewTallyStore(client)
			defer store.Close()

			counts, err := store.Load(cmd.Context(), opts.player1, opts.player2)
			if err != nil {
				return err
			}
			return renderCounts(cmd.OutOrStdout(), opts.output, opts.player1, opts.player2, counts)
		},
	}
}
