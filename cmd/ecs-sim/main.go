package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/plus3/sigecs/ecs"
	"github.com/plus3/sigecs/scenario"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Scenario file (.toml, .yaml). Defaults to the built-in two-entity scenario.")
	logLevel := flag.String("log-level", "", "Override the scenario log level (debug, info, warn, error).")
	logFormat := flag.String("log-format", "", "Override the scenario log format (console, json).")
	maxTicks := flag.Int("max-ticks", -1, "Override the scenario tick limit; 0 means unlimited.")
	dump := flag.Bool("dump", false, "Include the final entity table and system timings in the report.")
	flag.Parse()

	sc := scenario.Default()
	if *configPath != "" {
		loaded, err := scenario.Load(*configPath)
		if err != nil {
			return err
		}
		sc = loaded
	}
	if *logLevel != "" {
		sc.Logging.Level = *logLevel
	}
	if *logFormat != "" {
		sc.Logging.Format = *logFormat
	}
	if *maxTicks >= 0 {
		sc.MaxTicks = *maxTicks
	}

	log, err := newLogger(sc.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	table, err := sc.Build()
	if err != nil {
		return fmt.Errorf("build scenario: %w", err)
	}

	scheduler := ecs.NewScheduler(table, ecs.WithLogger(log.Named("scheduler")))
	movement := ecs.NewMovementSystem()
	collision := ecs.NewCollisionSystem(sc.CollisionOptions()...)
	scheduler.Register(movement)
	scheduler.Register(collision)

	log.Info("starting simulation",
		zap.Int("capacity", table.Cap()),
		zap.Int("entities", len(sc.Entities)),
		zap.Int("max_ticks", sc.MaxTicks),
		zap.Bool("spatial", sc.Spatial),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stopWhen := func() bool {
		log.Debug("tick",
			zap.Uint64("tick", scheduler.Ticks()),
			zap.Bool("collided", collision.Collided()),
		)
		return collision.Collided()
	}

	ticks, err := scheduler.RunUntil(ctx, stopWhen, sc.MaxTicks)
	switch {
	case errors.Is(err, ecs.ErrTickLimit):
		log.Warn("no collision within tick limit", zap.Int("ticks", ticks))
	case err != nil:
		return fmt.Errorf("run simulation: %w", err)
	default:
		a, b, _ := collision.Pair()
		log.Info("collision detected",
			zap.Int("ticks", ticks),
			zap.Uint32("first", uint32(a)),
			zap.Uint32("second", uint32(b)),
		)
	}

	report, err := newReport(ticks, collision, table, scheduler.GetStats(), *dump)
	if err != nil {
		return err
	}
	return report.Generate(os.Stdout)
}

func newLogger(cfg scenario.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
