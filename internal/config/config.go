package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Settings is the global configuration structure.
type Settings struct {
	// DataDir is the directory holding the three source files.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	// Source file names, resolved relative to DataDir.
	GamesFile         string `mapstructure:"games_file" yaml:"games_file"`
	CharactersFile    string `mapstructure:"characters_file" yaml:"characters_file"`
	SexualizationFile string `mapstructure:"sexualization_file" yaml:"sexualization_file"`

	// Delimiter for the source files: "," or ";" or "tab".
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`

	// ExportDir receives delimited-text exports of filtered views.
	ExportDir string `mapstructure:"export_dir" yaml:"export_dir"`

	// SampleRows bounds example rows in reports.
	SampleRows int `mapstructure:"sample_rows" yaml:"sample_rows"`
}

// DelimiterRune maps the configured delimiter to its rune, defaulting to ','.
func (s *Settings) DelimiterRune() (rune, error) {
	switch s.Delimiter {
	case "", ",":
		return ',', nil
	case ";":
		return ';', nil
	case "tab", "\t":
		return '\t', nil
	}
	return 0, fmt.Errorf("unsupported delimiter: %q", s.Delimiter)
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.grivg/config.yaml, creating the directory if
// necessary.
func Save(s *Settings, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".grivg")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("GRIVG")
	v.AutomaticEnv()

	// Defaults match the published dataset file names.
	v.SetDefault("data_dir", ".")
	v.SetDefault("games_file", "games.grivg.csv")
	v.SetDefault("characters_file", "characters.grivg.csv")
	v.SetDefault("sexualization_file", "sexualization.grivg.csv")
	v.SetDefault("delimiter", ",")
	v.SetDefault("export_dir", ".")
	v.SetDefault("sample_rows", 5)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".grivg")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &s, nil
}
