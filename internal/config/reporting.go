package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// ReportingConfig tunes dashboard and inventory reporting. It lives in a
// yml file rather than the environment so a running shop can adjust it
// without a restart.
type ReportingConfig struct {
	// LowStockThreshold marks products at or below this quantity in the
	// low-stock listing.
	LowStockThreshold int `mapstructure:"lowStockThreshold"`
	// TopProductsLimit caps the dashboard top-seller listing.
	TopProductsLimit int `mapstructure:"topProductsLimit"`
	// SummaryDays is the default dashboard window when no range is given.
	SummaryDays int `mapstructure:"summaryDays"`
}

func DefaultReportingConfig() ReportingConfig {
	return ReportingConfig{
		LowStockThreshold: 5,
		TopProductsLimit:  10,
		SummaryDays:       30,
	}
}

// ReportingConfigHolder holds the current reporting config and swaps it
// atomically on file change.
type ReportingConfigHolder struct {
	current atomic.Value // holds ReportingConfig
}

func NewReportingConfigHolder() (*ReportingConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("reporting")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/billme")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BILLME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultReportingConfig()
	v.SetDefault("reporting.lowStockThreshold", defaults.LowStockThreshold)
	v.SetDefault("reporting.topProductsLimit", defaults.TopProductsLimit)
	v.SetDefault("reporting.summaryDays", defaults.SummaryDays)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg ReportingConfig
	if err := v.UnmarshalKey("reporting", &cfg); err != nil {
		return nil, err
	}
	if err := validateReportingConfig(cfg); err != nil {
		return nil, err
	}

	holder := &ReportingConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated ReportingConfig
		if err := v.UnmarshalKey("reporting", &updated); err != nil {
			log.Printf("[reporting-config] reload failed: %v", err)
			return
		}
		if err := validateReportingConfig(updated); err != nil {
			log.Printf("[reporting-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[reporting-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *ReportingConfigHolder) Get() ReportingConfig {
	return h.current.Load().(ReportingConfig)
}

func validateReportingConfig(cfg ReportingConfig) error {
	if cfg.LowStockThreshold < 0 {
		return errors.New("reporting.lowStockThreshold cannot be negative")
	}
	if cfg.TopProductsLimit <= 0 {
		return errors.New("reporting.topProductsLimit must be positive")
	}
	if cfg.SummaryDays <= 0 {
		return errors.New("reporting.summaryDays must be positive")
	}
	return nil
}
