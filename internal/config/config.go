package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the application configuration, loaded from config.toml
// next to the executable.
type AppConfig struct {
	Convert ConvertConfig `toml:"convert"`
	Data    DataConfig    `toml:"data"`
	Server  ServerConfig  `toml:"server"`
}

// ConvertConfig controls the conversion pipeline.
type ConvertConfig struct {
	// SheetName is the workbook sheet holding the classifier table.
	SheetName string `toml:"sheet_name"`
	// Generator is the name written into the output file banner.
	Generator string `toml:"generator"`
}

// DataConfig controls local data storage.
type DataConfig struct {
	DataDir string `toml:"data_dir"`
	// History enables the SQLite conversion-run log.
	History bool `toml:"history"`
}

// ServerConfig configures the converter service.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DefaultConfig returns the configuration used when config.toml is absent.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Convert: ConvertConfig{
			SheetName: "Classifiers",
			Generator: "classifier-convert",
		},
		Data: DataConfig{
			DataDir: "data",
			History: true,
		},
		Server: ServerConfig{
			Port:    20262,
			DevMode: false,
		},
	}
}

// GetExeDir returns the directory of the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig loads config.toml from the executable directory, falling
// back to defaults when the file does not exist.
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig writes the configuration to config.toml next to the
// executable.
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir creates the data directory and returns its path.
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// HistoryDBPath returns the path of the conversion-history database.
func HistoryDBPath(config *AppConfig) string {
	exeDir, _ := GetExeDir()
	if exeDir == "" {
		exeDir = "."
	}
	return filepath.Join(exeDir, config.Data.DataDir, "runs.db")
}
