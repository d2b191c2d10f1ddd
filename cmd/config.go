package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/organizer/internal/logger"
	"github.com/josephgoksu/organizer/types"
	"github.com/spf13/viper"
)

const (
	configName = ".organizer"
	envPrefix  = "ORGANIZER"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single instance of Translate, it caches struct info
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(config *types.AppConfig) error {
	return validate.Struct(config)
}

// setDefaults registers the built-in configuration values.
func setDefaults() {
	viper.SetDefault("data.dir", ".")
	viper.SetDefault("data.tasksFile", "tasks.json")
	viper.SetDefault("data.tasksCsv", "tasks.csv")
	viper.SetDefault("data.financeFile", "finance.json")
	viper.SetDefault("data.financeCsv", "finance.csv")
	viper.SetDefault("data.contactsFile", "contacts.json")
	viper.SetDefault("data.contactsCsv", "contacts.csv")
	viper.SetDefault("data.notesFile", "notes.json")
	viper.SetDefault("data.notesCsv", "notes.csv")
	viper.SetDefault("store.idStrategy", "length")
}

// bindFlags wires the persistent flags into viper. It runs on every
// initialization because viper.Reset drops earlier bindings.
func bindFlags() {
	flags := rootCmd.PersistentFlags()
	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("json", flags.Lookup("json"))
	if flags.Changed("data-dir") {
		_ = viper.BindPFlag("data.dir", flags.Lookup("data-dir"))
	}
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	if err := loadConfig(); err != nil {
		HandleFatalError("Error: Could not load configuration.", err)
	}
}

func loadConfig() error {
	// A missing .env file is fine.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)                          // e.g., ORGANIZER_DATA_DIR
	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // Replace dots with underscores in env var names

	bindFlags()
	setDefaults()

	cfgFileFlag := viper.GetString("config")
	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home) // $HOME/.organizer.yaml
		}
		viper.AddConfigPath(".") // ./.organizer.yaml
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config file %s: %w", viper.ConfigFileUsed(), err)
		}
		if cfgFileFlag != "" {
			return fmt.Errorf("config file not found: %s", cfgFileFlag)
		}
	}

	var cfg types.AppConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validateAppConfig(&cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	GlobalAppConfig = cfg

	logger.Init(rootCmd.ErrOrStderr(), cfg.Verbose)
	logger.SetFs(appFs)
	logger.SetBasePath(cfg.Data.Dir)
	logger.SetVersion(version)

	if used := viper.ConfigFileUsed(); used != "" {
		slog.Debug("using config file", "path", used)
	} else {
		slog.Debug("no config file found, using defaults and environment variables")
	}
	return nil
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
