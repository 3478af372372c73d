package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Game      GameConfig      `mapstructure:"game"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// GameConfig 计时器时长和仪表盘上的模拟数据
type GameConfig struct {
	DailyGoalMinutes     int    `mapstructure:"daily_goal_minutes"`
	TodayMinutes         int    `mapstructure:"today_minutes"` // 没有按天重置，仪表盘使用固定值
	PomodoroWorkMinutes  int    `mapstructure:"pomodoro_work_minutes"`
	PomodoroBreakMinutes int    `mapstructure:"pomodoro_break_minutes"`
	DDayName             string `mapstructure:"dday_name"`
	DDayDaysLeft         int    `mapstructure:"dday_days_left"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

type LogConfig struct {
	File string `mapstructure:"file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("game.daily_goal_minutes", 180)
	v.SetDefault("game.today_minutes", 45)
	v.SetDefault("game.pomodoro_work_minutes", 25)
	v.SetDefault("game.pomodoro_break_minutes", 5)
	v.SetDefault("game.dday_name", "중간고사")
	v.SetDefault("game.dday_days_left", 12)

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("rate_limit.max_requests", 600)
	v.SetDefault("rate_limit.window_minutes", 1)
	v.SetDefault("log.file", "logs/app.log")
}

// Default 不读取配置文件，仅使用默认值（测试和嵌入场景）
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// 默认值都是合法类型，这里不会失败
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("STUDYQUEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.mode", "SERVER_MODE")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown server mode %q", c.Server.Mode)
	}
	if c.Game.PomodoroWorkMinutes <= 0 || c.Game.PomodoroBreakMinutes <= 0 {
		return fmt.Errorf("pomodoro durations must be positive (work=%d, break=%d)",
			c.Game.PomodoroWorkMinutes, c.Game.PomodoroBreakMinutes)
	}
	if c.Game.DailyGoalMinutes <= 0 {
		return fmt.Errorf("daily goal must be positive, got %d", c.Game.DailyGoalMinutes)
	}
	if c.RateLimit.MaxRequests <= 0 || c.RateLimit.WindowMinutes <= 0 {
		return fmt.Errorf("rate limit must be positive (max=%d, window=%d)",
			c.RateLimit.MaxRequests, c.RateLimit.WindowMinutes)
	}
	return nil
}
