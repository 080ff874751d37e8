// Command conqueue-demo runs the producer/consumer worker pool over the
// two-lock queue and reports whether every produced value was consumed.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/xyhelper/conqueue/workerpool"
)

var (
	flagProducers int
	flagConsumers int
	flagItems     int
	flagConfig    string
)

var cmd = &cobra.Command{
	Use:   "conqueue-demo",
	Short: "Producer/consumer demo for the conqueue two-lock queue",
	RunE:  run,
}

func init() {
	def := workerpool.DefaultConfig()
	cmd.Flags().IntVar(&flagProducers, "producers", def.Producers, "number of producer goroutines")
	cmd.Flags().IntVar(&flagConsumers, "consumers", def.Consumers, "number of consumer goroutines")
	cmd.Flags().IntVar(&flagItems, "items", def.ItemsPerProducer, "items pushed by each producer")
	cmd.Flags().StringVar(&flagConfig, "config", "", "YAML configuration file (overridden by flags)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg := workerpool.DefaultConfig()
	if flagConfig != "" {
		if err := readYaml(&cfg, flagConfig); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("producers") {
		cfg.Producers = flagProducers
	}
	if cmd.Flags().Changed("consumers") {
		cfg.Consumers = flagConsumers
	}
	if cmd.Flags().Changed("items") {
		cfg.ItemsPerProducer = flagItems
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	pool, err := workerpool.New(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := pool.Run(ctx)
	if err != nil {
		return err
	}
	if !res.Balanced() {
		return fmt.Errorf("conservation failure: produced %d, consumed %d", res.Produced, res.Consumed)
	}
	logger.Info("demo complete", "produced", res.Produced, "consumed", res.Consumed)
	return nil
}

func readYaml(dest any, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("unable to open configuration file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f, yaml.Strict())
	if err := dec.Decode(dest); err != nil {
		return fmt.Errorf("unable to parse configuration file: %w", err)
	}
	return nil
}

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
