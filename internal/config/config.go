package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/GustavoCaso/carlot/internal/catalog"
	"github.com/GustavoCaso/carlot/internal/logger"
)

type Config struct {
	DB      DBConfig      `toml:"db"`
	Logger  logger.Config `toml:"logger"`
	Catalog CatalogConfig `toml:"catalog"`
}

type DBConfig struct {
	Source      string `toml:"source"`
	JournalMode string `toml:"journal_mode"`
	BusyTimeout int    `toml:"busy_timeout"`
}

// CatalogConfig points at the rendered catalog document and describes its
// markup.
type CatalogConfig struct {
	Document string `toml:"document"`
	Currency string `toml:"currency"`

	List  string `toml:"list"`
	Card  string `toml:"card"`
	Title string `toml:"title"`

	MakeAttr  string `toml:"make_attr"`
	ModelAttr string `toml:"model_attr"`
	PriceAttr string `toml:"price_attr"`

	QueryInput string `toml:"query_input"`
	MinInput   string `toml:"min_input"`
	MaxInput   string `toml:"max_input"`
}

const (
	defaultDBFile      = "carlot.db"
	defaultJournalMode = "WAL"
	defaultBusyTimeout = 5000
	defaultLogLevel    = logger.LevelInfo
	defaultLogFormat   = logger.FormatText
	defaultLogOutput   = "stderr"
	defaultCurrency    = "$"
)

func Default() *Config {
	sel := catalog.DefaultSelectors()

	return &Config{
		DB: DBConfig{
			Source:      defaultDBFile,
			JournalMode: defaultJournalMode,
			BusyTimeout: defaultBusyTimeout,
		},
		Logger: logger.Config{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			Output: defaultLogOutput,
		},
		Catalog: CatalogConfig{
			Currency:   defaultCurrency,
			List:       sel.List,
			Card:       sel.Card,
			Title:      sel.Title,
			MakeAttr:   sel.MakeAttr,
			ModelAttr:  sel.ModelAttr,
			PriceAttr:  sel.PriceAttr,
			QueryInput: sel.QueryInput,
			MinInput:   sel.MinInput,
			MaxInput:   sel.MaxInput,
		},
	}
}

// Parse reads the TOML file on top of the defaults and then applies the
// CARLOT_* environment variables. A missing file is not an error.
func Parse(file string) (*Config, error) {
	conf := Default()

	content, err := os.ReadFile(file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err = toml.Unmarshal(content, conf); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", file, err)
		}
	}

	conf.parseEnv()

	return conf, nil
}

func (c *Config) parseEnv() {
	if db := os.Getenv("CARLOT_DB"); db != "" {
		c.DB.Source = db
	}

	if level := os.Getenv("CARLOT_LOG_LEVEL"); level != "" {
		c.Logger.Level = logger.Level(level)
	}

	if format := os.Getenv("CARLOT_LOG_FORMAT"); format != "" {
		c.Logger.Format = logger.Format(format)
	}

	if output := os.Getenv("CARLOT_LOG_OUTPUT"); output != "" {
		c.Logger.Output = output
	}

	if document := os.Getenv("CARLOT_DOCUMENT"); document != "" {
		c.Catalog.Document = document
	}
}

// Selectors returns the markup description used to capture the catalog.
func (c CatalogConfig) Selectors() catalog.Selectors {
	return catalog.Selectors{
		List:       c.List,
		Card:       c.Card,
		Title:      c.Title,
		MakeAttr:   c.MakeAttr,
		ModelAttr:  c.ModelAttr,
		PriceAttr:  c.PriceAttr,
		QueryInput: c.QueryInput,
		MinInput:   c.MinInput,
		MaxInput:   c.MaxInput,
	}
}
