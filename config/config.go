// Package config loads the table and rule settings used by the command line
// tools. Files may be YAML or TOML; anything left out keeps its default.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"mahjong-hand/hand"
	"mahjong-hand/notation"
	"mahjong-hand/scoring"
)

var ErrUnknownFormat = errors.New("unknown config format")

// Config is the full set of options.
type Config struct {
	Log   Log   `yaml:"log" toml:"log"`
	Table Table `yaml:"table" toml:"table"`
	Rules Rules `yaml:"rules" toml:"rules"`
	Batch Batch `yaml:"batch" toml:"batch"`
}

type Log struct {
	Level  string `yaml:"level" toml:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `yaml:"format" toml:"format" validate:"oneof=text json"`
	File   string `yaml:"file" toml:"file"` // rotated daily when set
}

// Table is the situation the hand was won in.
type Table struct {
	SeatWind  string `yaml:"seat_wind" toml:"seat_wind" validate:"wind"`
	RoundWind string `yaml:"round_wind" toml:"round_wind" validate:"wind"`
	Dealer    bool   `yaml:"dealer" toml:"dealer"`
	Riichi    bool   `yaml:"riichi" toml:"riichi"`
	Dora      string `yaml:"dora" toml:"dora"` // indicators in hand notation, e.g. "3m7z"
}

type Rules struct {
	Kuitan           bool `yaml:"kuitan" toml:"kuitan"`
	DoubleWindPairFu int  `yaml:"double_wind_pair_fu" toml:"double_wind_pair_fu" validate:"oneof=2 4"`
}

type Batch struct {
	Workers int `yaml:"workers" toml:"workers" validate:"gte=1,lte=256"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("wind", validateWind); err != nil {
		panic(errors.Wrap(err, "register wind validation"))
	}
}

func validateWind(fl validator.FieldLevel) bool {
	_, err := hand.ParseWind(fl.Field().String())
	return err == nil
}

// Default returns an East seat dealer in the East round under the common
// ruleset.
func Default() Config {
	rules := scoring.DefaultRules()
	return Config{
		Log:   Log{Level: "info", Format: "text"},
		Table: Table{SeatWind: "east", RoundWind: "east", Dealer: true},
		Rules: Rules{Kuitan: rules.Kuitan, DoubleWindPairFu: rules.DoubleWindPairFu},
		Batch: Batch{Workers: 4},
	}
}

// Load reads path over the defaults and validates the result. The format
// follows the extension: .yaml, .yml or .toml.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "decode %s", path)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, errors.Wrapf(err, "decode %s", path)
		}
	default:
		return cfg, errors.Wrapf(ErrUnknownFormat, "%q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate checks every field against its validate tag and parses the dora
// indicators.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if _, err := c.doraIndicators(); err != nil {
		return err
	}
	return nil
}

// YAML renders the config as a YAML document.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c Config) doraIndicators() ([]hand.Tile, error) {
	if strings.TrimSpace(c.Table.Dora) == "" {
		return nil, nil
	}
	tiles, err := notation.ParseTiles(c.Table.Dora)
	return tiles, errors.Wrap(err, "dora indicators")
}

// Context builds the scoring context of the table. The win method and the
// per-hand flags are left for the caller.
func (c Config) Context() (scoring.Context, error) {
	seat, err := hand.ParseWind(c.Table.SeatWind)
	if err != nil {
		return scoring.Context{}, errors.Wrap(err, "seat wind")
	}
	round, err := hand.ParseWind(c.Table.RoundWind)
	if err != nil {
		return scoring.Context{}, errors.Wrap(err, "round wind")
	}
	dora, err := c.doraIndicators()
	if err != nil {
		return scoring.Context{}, err
	}
	return scoring.Context{
		SeatWind:       seat,
		RoundWind:      round,
		Dealer:         c.Table.Dealer,
		Riichi:         c.Table.Riichi,
		DoraIndicators: dora,
	}, nil
}

// ScoringRules converts the rule options.
func (c Config) ScoringRules() scoring.Rules {
	return scoring.Rules{Kuitan: c.Rules.Kuitan, DoubleWindPairFu: c.Rules.DoubleWindPairFu}
}
