package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`

	SentryEnabled bool `toml:"sentry_enabled"`

	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// record store (notion) databases
	NotionBaseURL       string `toml:"notion_base_url"`
	BodyGroupsDB        string `toml:"notion_body_groups_db"`
	ExercisesDB         string `toml:"notion_exercises_db"`
	TemplatesDB         string `toml:"notion_templates_db"`
	TemplateExercisesDB string `toml:"notion_template_exercises_db"`
	WeeklyWorkoutDB     string `toml:"notion_weekly_workout_db"`
	DailyWorkoutDB      string `toml:"notion_daily_workout_db"`

	// "static" for the seeded in-memory template list, "store" for the
	// record-store-backed templates database
	TemplatesSource string `toml:"templates_source"`

	InstantiateRateLimitAllowedPerMin int `toml:"instantiate_rate_limit_allowed_per_min"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env %s is empty", env)
	}

	cfg.Environment = env

	return cfg, nil
}
