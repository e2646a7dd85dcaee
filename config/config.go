package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/RoanBrand/CelluloseDS/ds"
	"github.com/RoanBrand/CelluloseDS/elements"
)

type Config struct {
	HTTPServerPort string `json:"http_server_port"`
	DebugMode      bool   `json:"debug_mode"` // print logs out to console instead of file when true
	LogFile        string `json:"log_file"`

	Version            string             `json:"version"` // calculator revision: v1, v2, v3 or latest
	DefaultSubstituent string             `json:"default_substituent"`
	DefaultMethod      string             `json:"default_method"`
	ElementWeights     map[string]float64 `json:"element_weights"` // added to or replacing the standard table

	NumberOfResults int          `json:"number_of_results"` // number of latest samples returned to client
	DataSources     []DataSource `json:"data_sources"`
}

// DataSource is a place measured elemental analyses are read from.
type DataSource struct {
	Type       string `json:"type"`   // xml, mdb or mssql
	Source     string `json:"source"` // If xml: folder of xml files. If mdb: ADODB connection string.
	Instrument int    `json:"instrument"`

	// mssql only
	Address  string `json:"address"`
	User     string `json:"user"`
	Password string `json:"password"`
	Database string `json:"database"`
	Table    string `json:"table"`
}

func Default() *Config {
	return &Config{
		HTTPServerPort:     "80",
		LogFile:            "dscalc.log",
		Version:            "latest",
		DefaultSubstituent: "Cl",
		DefaultMethod:      string(ds.Carbon),
		NumberOfResults:    20,
	}
}

func LoadConfig(filePath string) (*Config, error) {
	conf := Default()

	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err = dec.Decode(conf); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", filePath, err)
	}

	if err = conf.validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *Config) validate() error {
	if _, err := c.Features(); err != nil {
		return err
	}
	if _, err := ds.ParseMethod(c.DefaultMethod); err != nil {
		return err
	}
	tbl, err := c.ElementTable()
	if err != nil {
		return err
	}
	if !tbl.Has(c.DefaultSubstituent) {
		return fmt.Errorf("default_substituent %q is not in the element table", c.DefaultSubstituent)
	}
	if c.NumberOfResults <= 0 {
		return errors.New("number_of_results must be positive")
	}

	for i := range c.DataSources {
		s := &c.DataSources[i]
		s.Type = strings.ToLower(s.Type)
		switch s.Type {
		case "xml", "mdb":
			if s.Source == "" {
				return fmt.Errorf("data source %d: no source provided", i)
			}
		case "mssql":
			if s.Address == "" || s.Table == "" {
				return fmt.Errorf("data source %d: mssql needs address and table", i)
			}
		default:
			return fmt.Errorf("data source %d: unknown type %q", i, s.Type)
		}
	}

	return nil
}

func (c *Config) Features() (ds.Features, error) {
	return ds.ParseVersion(c.Version)
}

// ElementTable returns the standard table with the configured weights applied.
func (c *Config) ElementTable() (*elements.Table, error) {
	return elements.Default().With(c.ElementWeights)
}

// Engine builds the DS engine described by the config.
func (c *Config) Engine() (*ds.Engine, error) {
	f, err := c.Features()
	if err != nil {
		return nil, err
	}
	tbl, err := c.ElementTable()
	if err != nil {
		return nil, err
	}
	return ds.New(tbl, f), nil
}

// ConnString is the SQL Server connection string of an mssql source.
func (s *DataSource) ConnString() string {
	return fmt.Sprintf("server=%s;user id=%s;password=%s;database=%s", s.Address, s.User, s.Password, s.Database)
}
