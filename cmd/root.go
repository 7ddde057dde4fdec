package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sherine-k/episim/pkg/chart"
	"github.com/sherine-k/episim/pkg/config"
	"github.com/sherine-k/episim/pkg/logger"
	"github.com/sherine-k/episim/pkg/simulation"
	"github.com/sherine-k/episim/pkg/stats"
	"github.com/spf13/cobra"
)

type options struct {
	configFile  string
	seed        int64
	maxDays     int
	csvPath     string
	pngPath     string
	showCurve   bool
	showTable   bool
	tableLimit  int
	showSummary bool
	logLevel    string
	logFormat   string
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "episim",
		Short: "Epidemic spread simulator",
		Long: `A CLI tool that simulates the day-by-day spread of an infectious disease.

This tool reads a scenario file describing the population, the disease and
optional mitigation policies (masks, social distancing, vaccination), runs the
simulation until no infections remain and reports the epidemic curve.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSimulation(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "config.yaml", "Path to scenario file")
	flags.Int64Var(&opts.seed, "seed", 0, "Random seed (overrides the scenario)")
	flags.IntVar(&opts.maxDays, "max-days", 0, "Stop after this many days (overrides the scenario)")
	flags.StringVar(&opts.csvPath, "csv", "", "Write daily statistics to this CSV file")
	flags.StringVar(&opts.pngPath, "png", "", "Write the epidemic curve to this PNG file")
	flags.BoolVar(&opts.showCurve, "curve", true, "Show the epidemic curve")
	flags.BoolVarP(&opts.showTable, "table", "t", false, "Show the daily census table")
	flags.IntVarP(&opts.tableLimit, "table-limit", "l", 50, "Limit number of days in the table")
	flags.BoolVarP(&opts.showSummary, "summary", "s", true, "Show run summary")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from EPISIM_LOG_LEVEL or info)")
	flags.StringVar(&opts.logFormat, "log-format", string(logger.FormatText), "Log format: text or json")

	return cmd
}

func runSimulation(cmd *cobra.Command, opts *options) error {
	out := cmd.OutOrStdout()

	overrides, err := config.ParseEnv()
	if err != nil {
		return err
	}
	level := opts.logLevel
	if level == "" {
		level = overrides.LogLevel
	}
	log, err := logger.New(cmd.ErrOrStderr(), level, logger.Format(opts.logFormat))
	if err != nil {
		return err
	}
	log = log.With("run_id", uuid.NewString())

	// Load configuration
	cfg, err := config.LoadConfig(opts.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = &opts.seed
	}
	if cmd.Flags().Changed("max-days") {
		cfg.MaxDays = opts.maxDays
	}

	fmt.Fprintf(out, "Loaded scenario from %s\n", opts.configFile)
	fmt.Fprintf(out, "  - Population: %d\n", cfg.PopulationSize)
	fmt.Fprintf(out, "  - Infection Rate: %.2f\n", cfg.InfectionRate)
	fmt.Fprintf(out, "  - Incubation/Infectious Period: %d/%d days\n", cfg.IncubationPeriod, cfg.InfectiousPeriod)
	fmt.Fprintf(out, "  - Base Contacts: %d\n\n", cfg.BaseContacts)

	// Create and run simulation
	collector := stats.NewCollector(log)
	simCfg, err := cfg.ToSimulation(collector, log)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	sim, err := simulation.New(simCfg)
	if err != nil {
		return err
	}
	if err := sim.Run(); err != nil {
		if !errors.Is(err, simulation.ErrDayLimitReached) {
			return fmt.Errorf("simulation failed: %w", err)
		}
		log.Warn("simulation stopped with active infections", "days", sim.DaysSimulated())
		fmt.Fprintf(out, "Stopped after %d days with infections still active\n", sim.DaysSimulated())
	}

	chartGen := chart.NewGenerator()
	days := collector.Days()

	if opts.showCurve {
		fmt.Fprintln(out, chartGen.GenerateEpidemicCurve(days))
	}

	if opts.showSummary {
		fmt.Fprintln(out, chartGen.GenerateSummary(collector.Summary()))
	}

	if opts.showTable {
		fmt.Fprintln(out, chartGen.GenerateDailyTable(days, opts.tableLimit))
	}

	if opts.csvPath != "" {
		if err := writeFile(opts.csvPath, collector.WriteCSV); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
		log.Info("statistics written", "path", opts.csvPath)
	}

	if opts.pngPath != "" && len(days) < chart.MinPNGDays {
		log.Warn("skipping chart, run too short", "days", len(days), "path", opts.pngPath)
	} else if opts.pngPath != "" {
		err := writeFile(opts.pngPath, func(w io.Writer) error {
			return chartGen.RenderPNG(w, days)
		})
		if err != nil {
			return fmt.Errorf("failed to write png: %w", err)
		}
		log.Info("chart written", "path", opts.pngPath)
	}

	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
