package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"

	"github.com/xtding233/flamesim/internal/config"
	"github.com/xtding233/flamesim/internal/cost"
	"github.com/xtding233/flamesim/internal/flame"
	"github.com/xtding233/flamesim/internal/logger"
	"github.com/xtding233/flamesim/internal/report"
	"github.com/xtding233/flamesim/internal/sim"
)

// maxTop bounds the leaderboard size.
const maxTop = 1000

type options struct {
	trials    int64
	stat      string
	level     string
	keep      float64
	flameType string
	top       int
	chance    int64
	noBoss    bool
	seed      uint64
	workers   int
	config    string
	format    string
	logLevel  string
	logFile   string
	progress  time.Duration
}

func parseFlags() options {
	var o options
	flag.Int64Var(&o.trials, "trials", 100000, "Amount of times to run the simulator")
	flag.StringVar(&o.stat, "stat", "str", "Stat to roll for [options: str, dex, int, luk, kanna, da, xenon, alt_thief]")
	flag.StringVar(&o.level, "level", "140-149", "Equip level [options: 100-109, 110-119, 120-129, 130-139, 140-149, 150-159, 160-169, 170-179, 180-189, 190-199, 200-249, 250+]")
	flag.Float64Var(&o.keep, "keep", 100, "Minimum flamescore target")
	flag.StringVar(&o.flameType, "flametype", "pflame", "Type of flame used [options: abyss, totem, drop, pflame, eflame, regcraft, mastercraft, meistercraft, masterfuse, meisterfuse]")
	flag.IntVar(&o.top, "top", 1, "Displays the top scoring flames (max 1000)")
	flag.Int64Var(&o.chance, "chance", 0, "Calculates the odds of getting target flame within the specified amount of flames")
	flag.BoolVar(&o.noBoss, "noboss", false, "Simulate non-boss flames")
	flag.Uint64Var(&o.seed, "seed", 0, "Base RNG seed (0 = random)")
	flag.IntVar(&o.workers, "workers", 0, "Concurrent workers (0 = num CPU)")
	flag.StringVar(&o.config, "config", "", "Coefficient file (default: "+config.DefaultFileName+" next to the executable)")
	flag.StringVar(&o.format, "format", "text", "Report format [options: text, json]")
	flag.StringVar(&o.logLevel, "log-level", "", "Log level override (DEBUG, INFO, WARN, ERROR)")
	flag.StringVar(&o.logFile, "log-file", "", "Also write logs to this rotating file")
	flag.DurationVar(&o.progress, "progress", 2*time.Second, "Progress log interval (0 = off)")
	flag.Parse()
	return o
}

// run holds everything resolved from flags and config before any trial starts.
type run struct {
	settings report.Settings
	params   sim.Params
	gen      *flame.Generator
	scorer   *flame.Scorer
	prices   *cost.Table
}

func main() {
	o := parseFlags()

	// bootstrap logger until the config's logging section is known
	log, err := logger.New(logger.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}

	raw, err := loadConfig(o.config)
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}
	logCfg, err := loggerConfig(o, raw)
	if err != nil {
		log.Fatal("invalid logging settings", zap.Error(err))
	}
	if l, err := logger.New(logCfg); err != nil {
		log.Fatal("init logger", zap.Error(err))
	} else {
		log = l
	}
	defer log.Sync()

	r, err := setup(o, raw)
	if err != nil {
		log.Fatal("invalid settings", zap.Error(err))
	}

	runner, err := sim.NewRunner(r.params, r.gen, r.scorer)
	if err != nil {
		log.Fatal("invalid simulation params", zap.Error(err))
	}
	log.Info("starting simulation",
		zap.Int64("trials", r.params.Trials),
		zap.Stringer("flametype", r.settings.FlameType),
		zap.Stringer("stat", r.settings.Target),
		zap.Stringer("level", r.settings.Bracket),
		zap.Bool("boss", r.settings.Boss),
		zap.Uint64("seed", r.params.Seed),
	)

	stop := watchProgress(log, runner, o.progress)
	res := runner.Run()
	stop()

	log.Info("simulation finished",
		zap.Int64("qualifying", res.Qualifying),
		zap.Int("workers", res.Workers),
		zap.Duration("elapsed", res.Elapsed),
	)

	summary := report.Summary{Settings: r.settings, Result: res, Prices: r.prices}
	if o.format == "json" {
		err = report.JSON(os.Stdout, summary)
	} else {
		err = report.Text(os.Stdout, summary)
	}
	if err != nil {
		log.Fatal("write report", zap.Error(err))
	}
}

func loadConfig(path string) (config.RawConfig, error) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.RawConfig{}, err
		}
		path = p
	}
	raw, err := config.NewLoader().Load(path)
	if err != nil {
		return config.RawConfig{}, err
	}
	if err := config.ValidateRaw(raw); err != nil {
		return config.RawConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return raw, nil
}

// loggerConfig applies the -log-level and -log-file overrides to the config's
// logging section. Errors name the flag or config key holding the bad value.
func loggerConfig(o options, raw config.RawConfig) (logger.Config, error) {
	cfg := raw.LoggingOrDefault()
	if o.logLevel != "" {
		if err := (logger.Config{Level: o.logLevel}).Validate(); err != nil {
			return logger.Config{}, fmt.Errorf("-log-level: %w", err)
		}
		cfg.Level = o.logLevel
	}
	if o.logFile != "" {
		cfg.FileEnabled = true
		cfg.FilePath = o.logFile
	}
	if err := cfg.Validate(); err != nil {
		return logger.Config{}, fmt.Errorf("config logging: %w", err)
	}
	return cfg, nil
}

// setup validates every flag, naming the offending one, and builds the run.
func setup(o options, raw config.RawConfig) (*run, error) {
	if o.trials < 0 {
		return nil, fmt.Errorf("-trials must be >= 0 (got %d)", o.trials)
	}
	if o.top < 0 {
		return nil, fmt.Errorf("-top must be >= 0 (got %d)", o.top)
	}
	if o.chance < 0 {
		return nil, fmt.Errorf("-chance must be >= 0 (got %d)", o.chance)
	}
	if o.format != "text" && o.format != "json" {
		return nil, fmt.Errorf("-format must be text or json (got %q)", o.format)
	}
	target, err := flame.ParseTargetStat(o.stat)
	if err != nil {
		return nil, fmt.Errorf("-stat: %w", err)
	}
	bracket, err := flame.ParseBracket(o.level)
	if err != nil {
		return nil, fmt.Errorf("-level: %w", err)
	}
	flameType, err := flame.ParseFlameType(o.flameType)
	if err != nil {
		return nil, fmt.Errorf("-flametype: %w", err)
	}

	coeffs, err := config.Resolve(raw)
	if err != nil {
		return nil, err
	}
	prices, err := config.ResolvePrices(raw)
	if err != nil {
		return nil, err
	}

	cat, err := flame.CatalogFor(bracket)
	if err != nil {
		return nil, fmt.Errorf("-level: %w", err)
	}
	gen, err := flame.NewGenerator(cat, flameType, !o.noBoss)
	if err != nil {
		return nil, fmt.Errorf("-flametype: %w", err)
	}
	scorer, err := flame.NewScorer(target, coeffs)
	if err != nil {
		return nil, fmt.Errorf("-stat: %w", err)
	}

	top := o.top
	if top > maxTop {
		top = maxTop
	}
	if int64(top) > o.trials {
		top = int(o.trials)
	}
	seed := o.seed
	if seed == 0 {
		seed = flame.NewSeed(flame.DefaultRNG())
	}

	return &run{
		settings: report.Settings{
			Trials:    o.trials,
			FlameType: gen.FlameType(),
			Target:    scorer.Target(),
			Bracket:   gen.Catalog().Bracket,
			Keep:      o.keep,
			Boss:      gen.Boss(),
			Chance:    o.chance,
		},
		params: sim.Params{
			Trials:  o.trials,
			Keep:    o.keep,
			Top:     top,
			Seed:    seed,
			Workers: o.workers,
		},
		gen:    gen,
		scorer: scorer,
		prices: cost.NewTable(prices),
	}, nil
}

// watchProgress logs completed trials until the returned stop func is called.
// It only reads the runner's counter.
func watchProgress(log *zap.Logger, runner *sim.Runner, every time.Duration) (stop func()) {
	if every <= 0 || runner.Total() == 0 {
		return func() {}
	}
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				completed := runner.Completed()
				log.Info("progress",
					zap.Int64("completed", completed),
					zap.Int64("total", runner.Total()),
					zap.String("pct", fmt.Sprintf("%.1f%%", float64(completed)*100/float64(runner.Total()))),
				)
			case <-done:
				return
			}
		}
	}()
	return func() {
		close(done)
		<-finished
	}
}
