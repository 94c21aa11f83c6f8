package bootstrap

import (
	"github.com/spf13/viper"
)

type Config struct {
	BoardSize   int     `mapstructure:"BOARD_SIZE"`
	WinLength   int     `mapstructure:"WIN_LENGTH"`
	Exploration float64 `mapstructure:"EXPLORATION"`
	Episodes    int     `mapstructure:"EPISODES"`
	MoveLimit   int     `mapstructure:"MOVE_LIMIT"`
	Seed        uint64  `mapstructure:"SEED"`
	Games       int     `mapstructure:"GAMES"`
	OutputDir   string  `mapstructure:"OUTPUT_DIR"`
}

// Setup loads configuration from cfgPath on top of the defaults. An empty
// cfgPath keeps the defaults only.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("BOARD_SIZE", 3)
	v.SetDefault("WIN_LENGTH", 3)
	v.SetDefault("EXPLORATION", 5.0)
	v.SetDefault("EPISODES", 1500)
	v.SetDefault("MOVE_LIMIT", 1000)
	v.SetDefault("SEED", 1)
	v.SetDefault("GAMES", 10)
	v.SetDefault("OUTPUT_DIR", "experiments/matches")

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
