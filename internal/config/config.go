// Package config loads polyinspect settings.
//
// Settings are resolved in three layers: built-in defaults, an optional YAML file, then
// environment variables prefixed with POLYINSPECT (for example POLYINSPECT_BLOB_DIR or
// POLYINSPECT_GUESS_HEADER_CANDIDATES=0,16,32). Command-line flags override the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/polyblob/blob"
	"github.com/arloliu/polyblob/format"
	"github.com/arloliu/polyblob/inspect"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "POLYINSPECT"

// Config holds polyinspect settings.
type Config struct {
	BlobDir string        `yaml:"blob_dir" envconfig:"BLOB_DIR" validate:"required"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Guess   GuessConfig   `yaml:"guess" envconfig:"GUESS"`
	Dump    DumpConfig    `yaml:"dump" envconfig:"DUMP"`
}

// LoggingConfig selects the zap logger built by NewLogger.
type LoggingConfig struct {
	// Level is a zap level name: debug, info, warn or error.
	Level string `yaml:"level" envconfig:"LEVEL" validate:"required"`
	// Format is "json" or "console".
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json console"`
}

// GuessConfig holds the format guessing candidates and scoring parameters.
type GuessConfig struct {
	HeaderCandidates    []int         `yaml:"header_candidates" envconfig:"HEADER_CANDIDATES" validate:"min=1"`
	RecordLenCandidates []int         `yaml:"record_len_candidates" envconfig:"RECORD_LEN_CANDIDATES" validate:"min=1"`
	Weights             WeightsConfig `yaml:"weights" envconfig:"WEIGHTS"`
	SmallTagLimit       int           `yaml:"small_tag_limit" envconfig:"SMALL_TAG_LIMIT" validate:"gte=0,lte=65535"`
	HeadWindow          int           `yaml:"head_window" envconfig:"HEAD_WINDOW" validate:"gt=0"`
}

// WeightsConfig mirrors blob.ScoreWeights.
type WeightsConfig struct {
	Small  float64 `yaml:"small" envconfig:"SMALL"`
	Unique float64 `yaml:"unique" envconfig:"UNIQUE"`
	Head   float64 `yaml:"head" envconfig:"HEAD"`
}

// DumpConfig holds the limits of the dump command.
type DumpConfig struct {
	HexWidth     int `yaml:"hex_width" envconfig:"HEX_WIDTH"`
	HexMaxBytes  int `yaml:"hex_max_bytes" envconfig:"HEX_MAX_BYTES"`
	MaxRecords   int `yaml:"max_records" envconfig:"MAX_RECORDS" validate:"gte=0"`
	PreviewBytes int `yaml:"preview_bytes" envconfig:"PREVIEW_BYTES" validate:"gte=0"`
	// MaxPoints caps extracted points; 0 means no limit.
	MaxPoints int `yaml:"max_points" envconfig:"MAX_POINTS"`
}

// Default returns the built-in settings.
func Default() *Config {
	w := blob.DefaultScoreWeights()

	return &Config{
		BlobDir: ".",
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Guess: GuessConfig{
			HeaderCandidates:    append([]int(nil), format.DefaultHeaderCandidates...),
			RecordLenCandidates: append([]int(nil), format.DefaultRecordLenCandidates...),
			Weights:             WeightsConfig{Small: w.Small, Unique: w.Unique, Head: w.Head},
			SmallTagLimit:       blob.DefaultSmallTagLimit,
			HeadWindow:          blob.DefaultHeadWindow,
		},
		Dump: DumpConfig{
			HexWidth:     inspect.DefaultHexWidth,
			HexMaxBytes:  inspect.DefaultHexMaxBytes,
			MaxRecords:   40,
			PreviewBytes: 24,
		},
	}
}

// Load resolves the configuration from defaults, the YAML file at path (skipped when path
// is empty) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, c)
}

// Validate checks that the settings can drive a guesser and the dump command.
// Every failed field is reported, named by its YAML path.
func (c *Config) Validate() error {
	err := validate.Struct(c)

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errList := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		errList = append(errList, fmt.Errorf("%s: must satisfy %s, got %v",
			strings.TrimPrefix(fe.Namespace(), "Config."), rule, fe.Value()))
	}

	return errors.Join(errList...)
}

var validate = newValidator()

// newValidator names fields by their YAML keys so errors match the config file.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// GuessOptions converts the guess settings into blob guesser options.
func (c *Config) GuessOptions() []blob.GuessOption {
	return []blob.GuessOption{
		blob.WithHeaderCandidates(c.Guess.HeaderCandidates...),
		blob.WithRecordLenCandidates(c.Guess.RecordLenCandidates...),
		blob.WithScoreWeights(blob.ScoreWeights{
			Small:  c.Guess.Weights.Small,
			Unique: c.Guess.Weights.Unique,
			Head:   c.Guess.Weights.Head,
		}),
		blob.WithSmallTagLimit(uint16(c.Guess.SmallTagLimit)), //nolint:gosec // range checked by Validate
		blob.WithHeadWindow(c.Guess.HeadWindow),
	}
}
