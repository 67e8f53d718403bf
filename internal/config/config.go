package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"

	"clarity-gate/internal/domain/visitor"
	"clarity-gate/internal/storage"
)

type HTTPConfig struct {
	Host         string
	Port         int
	MaxUploadMB  int
	AllowOrigins []string
}

type CleaningConfig struct {
	Variant    visitor.Variant
	StrictMode bool
	BlankLabel string
}

type ReportConfig struct {
	Timezone     string
	Location     *time.Location
	WorkingDays  int
	StoreReports bool
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	Cleaning    CleaningConfig
	Report      ReportConfig
	Storage     storage.R2Config
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")

	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("MAX_UPLOAD_MB", 10)
	v.SetDefault("VISITOR_VARIANT", string(visitor.VariantStandard))
	v.SetDefault("REPORT_TIMEZONE", "America/New_York")
	v.SetDefault("CLEARANCE_WORKING_DAYS", 2)

	_ = v.ReadInConfig()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	variant, err := visitor.ParseVariant(v.GetString("VISITOR_VARIANT"))
	if err != nil {
		return nil, fmt.Errorf("VISITOR_VARIANT: %w", err)
	}

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host:         v.GetString("HTTP_HOST"),
			Port:         v.GetInt("HTTP_PORT"),
			MaxUploadMB:  v.GetInt("MAX_UPLOAD_MB"),
			AllowOrigins: splitList(v.GetStringSlice("CORS_ALLOW_ORIGINS")),
		},
		Cleaning: CleaningConfig{
			Variant:    variant,
			StrictMode: v.GetBool("STRICT_MODE"),
			BlankLabel: v.GetString("BLANK_LABEL"),
		},
		Report: ReportConfig{
			Timezone:     v.GetString("REPORT_TIMEZONE"),
			WorkingDays:  v.GetInt("CLEARANCE_WORKING_DAYS"),
			StoreReports: v.GetBool("STORE_REPORTS"),
		},
		Storage: storage.R2Config{
			Endpoint:      v.GetString("R2_ENDPOINT"),
			AccessKey:     v.GetString("R2_ACCESS_KEY_ID"),
			SecretKey:     v.GetString("R2_SECRET_ACCESS_KEY"),
			Bucket:        v.GetString("R2_BUCKET"),
			Region:        v.GetString("R2_REGION"),
			PublicBaseURL: v.GetString("R2_PUBLIC_BASE_URL"),
			Prefix:        v.GetString("R2_PREFIX"),
		},
	}

	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		return nil, fmt.Errorf("REPORT_TIMEZONE %q: %w", cfg.Report.Timezone, err)
	}
	cfg.Report.Location = loc

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Report.WorkingDays < 1 {
		return fmt.Errorf("CLEARANCE_WORKING_DAYS must be positive, got %d", cfg.Report.WorkingDays)
	}
	if cfg.HTTP.MaxUploadMB < 1 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive, got %d", cfg.HTTP.MaxUploadMB)
	}
	if cfg.Report.Timezone == "" {
		return fmt.Errorf("REPORT_TIMEZONE is required")
	}
	return nil
}

// splitList accepts comma or whitespace separated values.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
