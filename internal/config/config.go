package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/innova67/cartas-vencimiento/internal/model"
)

// AppConfig configuración de la aplicación
type AppConfig struct {
	Server  ServerConfig  `toml:"server"`
	Data    DataConfig    `toml:"data"`
	Letters LettersConfig `toml:"letters"`
}

// ServerConfig configuración del servidor local
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig configuración de datos
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// LettersConfig configuración del generador de cartas
type LettersConfig struct {
	// DefaultCurrency moneda inicial de deducibles/extraterritorialidad
	DefaultCurrency string `toml:"default_currency"`
	// CountryCode prefijo telefónico para la entrega por WhatsApp
	CountryCode string `toml:"country_code"`
}

// DefaultConfig configuración por defecto
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20315,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Letters: LettersConfig{
			DefaultCurrency: model.CurrencyBs,
			CountryCode:     "591",
		},
	}
}

// GetExeDir directorio del ejecutable
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig carga config.toml desde el directorio del ejecutable.
// Si el archivo no existe se usan los valores por defecto.
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

	// Overrides por variable de entorno (E2E / corridas locales)
	if v := os.Getenv("CARTAS_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}

	return config, nil
}

// SaveConfig guarda la configuración en config.toml
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

// EnsureDataDir garantiza el directorio de datos junto al ejecutable
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(exeDir, dataDir)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}
