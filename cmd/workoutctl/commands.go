package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/2beens/workoutdelivery/internal/civil"
	"github.com/2beens/workoutdelivery/internal/config"
	"github.com/2beens/workoutdelivery/internal/db"
	"github.com/2beens/workoutdelivery/internal/delivery"
	"github.com/2beens/workoutdelivery/internal/distribution"
	"github.com/2beens/workoutdelivery/internal/logging"
	"github.com/2beens/workoutdelivery/internal/replies"
	"github.com/2beens/workoutdelivery/internal/schedule"
	"github.com/2beens/workoutdelivery/internal/telemetry/metrics"
	"github.com/2beens/workoutdelivery/internal/users"
	"github.com/2beens/workoutdelivery/internal/workouts"
	"github.com/2beens/workoutdelivery/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	env        string
	configPath string
	logLevel   string
}

func rootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "workoutctl",
		Short:         "Operator tool for the weekly workouts distribution",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logging.LoggerSetupParams{
				LogToStdout: true,
				LogLevel:    flags.logLevel,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&flags.env, "env", "development", "environment [prod | production | dev | development]")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "./config.toml", "path for the TOML config file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")

	cmd.AddCommand(
		distributeCmd(flags),
		weekCmd(flags),
		slotsCmd(),
		classifyCmd(),
		hashTokenCmd(),
	)

	return cmd
}

func distributeCmd(flags *globalFlags) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "distribute",
		Short: "Run the workout distribution for today once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			deps, err := newDeps(ctx, flags)
			if err != nil {
				return err
			}
			defer deps.dbPool.Close()
			secrets := deps.secrets

			var sender messageSender = delivery.NewHTTPSender(delivery.HTTPSenderParams{
				BaseURL:     deps.cfg.DeliveryBaseURL,
				Token:       secrets.DeliveryToken,
				ClientToken: secrets.DeliveryClient,
				Timeout:     deps.cfg.DeliveryTimeout(),
			})
			if deps.cfg.DeliveryDryRun {
				sender = delivery.DryRunSender{}
			}

			metricsManager := metrics.NewManager("workouts", "ctl", prometheus.NewRegistry())
			runner := distribution.NewRunner(distribution.RunnerParams{
				Users:               users.NewDirectory(users.NewRepo(deps.dbPool), deps.cfg.PhoneCacheSizeMB),
				Store:               workouts.NewRepo(deps.dbPool),
				Gateway:             delivery.NewGateway(sender, delivery.NewAuditRepo(deps.dbPool), metricsManager),
				Clock:               deps.clock,
				Resolver:            civil.NewResolver(deps.clock),
				Metrics:             metricsManager,
				Workers:             deps.cfg.DistributionWorkers,
				ApprovalBacklogDays: deps.cfg.ApprovalBacklogDays,
			})

			result, err := runner.Run(ctx, distribution.RunParams{DryRun: dryRun})
			if err != nil {
				return err
			}
			if err := printJSON(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			if runErr := result.Err(); runErr != nil {
				log.Warnf("run %s finished with errors: %s", result.RunID, runErr)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "write today's instances but do not deliver them")
	return cmd
}

func weekCmd(flags *globalFlags) *cobra.Command {
	var offset int

	cmd := &cobra.Command{
		Use:   "week <ownerId>",
		Short: "Print the week schedule of a user's active plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			deps, err := newDeps(ctx, flags)
			if err != nil {
				return err
			}
			defer deps.dbPool.Close()

			plan, err := workouts.NewRepo(deps.dbPool).FindActivePlan(ctx, args[0])
			if err != nil {
				if errors.Is(err, workouts.ErrNotFound) {
					return fmt.Errorf("no active plan for %s", args[0])
				}
				return err
			}

			slots, err := schedule.NewPlanner(civil.NewResolver(deps.clock)).Week(plan, offset)
			if err != nil {
				return err
			}
			return printSlots(cmd.OutOrStdout(), slots)
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "week offset, 0 is the current week")
	return cmd
}

func slotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slots <sessionsPerWeek>",
		Short: "Print the training days and session indexes for a plan size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid sessions per week [%s]: %w", args[0], err)
			}
			out := cmd.OutOrStdout()
			for i, day := range schedule.Days(n) {
				if _, err := fmt.Fprintf(out, "%s\t%d\n", day, i); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>",
		Short: "Classify a reply text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), replies.Classify(strings.Join(args, " ")))
			return err
		},
	}
}

func hashTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-token <token>",
		Short: "Print the bcrypt hash of an admin token, for WORKOUTS_ADMIN_TOKEN_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := pkg.HashToken(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
}

type messageSender interface {
	CheckConfigured() error
	Send(ctx context.Context, phone, text string) (*delivery.SendResult, error)
}

type deps struct {
	cfg     *config.Config
	secrets *config.Secrets
	clock   *civil.Clock
	dbPool  *pgxpool.Pool
}

func newDeps(ctx context.Context, flags *globalFlags) (*deps, error) {
	cfg, err := config.Load(flags.env, flags.configPath)
	if err != nil {
		return nil, err
	}

	secrets, err := config.LoadSecrets(ctx)
	if err != nil {
		return nil, err
	}

	clock, err := civil.NewClock(cfg.Location())
	if err != nil {
		return nil, err
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     secrets.PostgresUser,
		DBPassword: secrets.PostgresPassword,
		TimeZone:   cfg.CivilTimezone,
		MaxConns:   int32(cfg.DistributionWorkers) + 2,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	return &deps{
		cfg:     cfg,
		secrets: secrets,
		clock:   clock,
		dbPool:  dbPool,
	}, nil
}

func printSlots(w io.Writer, slots []schedule.Slot) error {
	for _, s := range slots {
		title := s.Title
		if s.Rest {
			title = "rest"
		}
		if _, err := fmt.Fprintf(w, "%s\t%-9s\t%s\n", s.Date, s.Weekday, title); err != nil {
			return err
		}
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
