package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for a simulation run
type Config struct {
	Rows int  `json:"rows"`
	Cols int  `json:"cols"`
	Wrap bool `json:"wrap"`

	Pattern       string  `json:"pattern"`
	PatternFile   string  `json:"pattern_file"`
	PatternRow    int     `json:"pattern_row"`
	PatternCol    int     `json:"pattern_col"`
	RandomDensity float64 `json:"random_density"`
	Seed          int64   `json:"seed"`

	FrameRate      time.Duration `json:"frame_rate"`
	MaxGenerations int           `json:"max_generations"`

	LiveChar    string `json:"live_char"`
	DeadChar    string `json:"dead_char"`
	ClearScreen bool   `json:"clear_screen"`

	UseParallel   bool `json:"use_parallel"`
	UseMemoryPool bool `json:"use_memory_pool"`

	StopOnStagnation    bool `json:"stop_on_stagnation"`
	StagnationThreshold int  `json:"stagnation_threshold"`

	// Windowed viewer only.
	Scale int `json:"scale"`
	TPS   int `json:"tps"`
}

// DefaultConfig returns the glider gun on a 30x100 torus
func DefaultConfig() Config {
	return Config{
		Rows:                30,
		Cols:                100,
		Wrap:                true,
		Pattern:             "gosper-glider-gun",
		PatternRow:          9,
		PatternCol:          8,
		RandomDensity:       0.15,
		Seed:                42,
		FrameRate:           100 * time.Millisecond,
		MaxGenerations:      800,
		LiveChar:            "0",
		DeadChar:            " ",
		ClearScreen:         true,
		UseParallel:         false,
		UseMemoryPool:       true,
		StopOnStagnation:    false,
		StagnationThreshold: 5,
		Scale:               8,
		TPS:                 10,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, config.Validate()
}

// Bind attaches command-line overrides to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "number of board columns")
	fs.BoolVar(&c.Wrap, "wrap", c.Wrap, "toroidal board")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern, or \"random\"")
	fs.StringVar(&c.PatternFile, "pattern-file", c.PatternFile, "plaintext .cells pattern to load")
	fs.IntVar(&c.MaxGenerations, "generations", c.MaxGenerations, "stop after this many generations (0 runs forever)")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "delay between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.BoolVar(&c.UseParallel, "parallel", c.UseParallel, "compute generations on all CPUs")
}

// Validate checks the values a run cannot start without.
func (c Config) Validate() error {
	switch {
	case c.Rows < 0 || c.Cols < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative board size %dx%d", c.Rows, c.Cols)
	case len(c.LiveChar) != 1 || len(c.DeadChar) != 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] live_char %q and dead_char %q must be single bytes", c.LiveChar, c.DeadChar)
	case c.LiveChar == c.DeadChar:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] live_char and dead_char are both %q", c.LiveChar)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random_density %v outside [0,1]", c.RandomDensity)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative max_generations %d", c.MaxGenerations)
	}
	return nil
}

// FromArgs builds a Config from command-line arguments. Defaults come first,
// then the file named by -config if given, then any other flag set explicitly.
func FromArgs(name string, args []string) (Config, error) {
	var (
		config     = DefaultConfig()
		fs         = flag.NewFlagSet(name, flag.ContinueOnError)
		configPath = fs.String("config", "", "JSON config file")
	)
	config.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return config, err
	}
	if *configPath == "" {
		return config, config.Validate()
	}

	fileConfig, err := LoadConfig(*configPath)
	if err != nil {
		return fileConfig, err
	}

	overrides := flag.NewFlagSet(name, flag.ContinueOnError)
	fileConfig.Bind(overrides)
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" || err != nil {
			return
		}
		err = overrides.Set(f.Name, f.Value.String())
	})
	if err != nil {
		return fileConfig, errors.Wrap(err, "[FromArgs] failed to apply flag overrides")
	}
	return fileConfig, fileConfig.Validate()
}
