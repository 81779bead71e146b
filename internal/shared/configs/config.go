package configs

// Config holds all configuration for the application.
type Config struct {
	Log        LogConfig        `mapstructure:"log" validate:"required"`
	DocStore   DocStoreConfig   `mapstructure:"doc_store" validate:"required"`
	Processing ProcessingConfig `mapstructure:"processing" validate:"required"`
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Trending   TrendingConfig   `mapstructure:"trending" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// DocStoreConfig holds document store configuration.
type DocStoreConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// ProcessingConfig holds the analytics processing configuration.
type ProcessingConfig struct {
	Countries             []string `mapstructure:"countries" validate:"required,min=1,dive,len=2,lowercase"`
	WindowDays            int      `mapstructure:"window_days" validate:"required,min=1"`
	Workers               int      `mapstructure:"workers" validate:"required,min=1"`
	CountryTimeoutSeconds int      `mapstructure:"country_timeout_seconds" validate:"required,min=1"`
	// CalendarRolling switches rolling windows from positional (over populated
	// days only) to calendar-based (missing days counted as zero).
	CalendarRolling bool `mapstructure:"calendar_rolling"`
	// WriteAudit additionally writes each run's result under a timestamped
	// document next to "latest".
	WriteAudit bool `mapstructure:"write_audit"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// TrendingConfig holds the trending-content job configuration.
type TrendingConfig struct {
	TopK         int                              `mapstructure:"top_k" validate:"required,min=1"`
	LookbackDays int                              `mapstructure:"lookback_days" validate:"required,min=1"`
	Countries    map[string]TrendingCountryConfig `mapstructure:"countries" validate:"required,min=1,dive"`
}

// TrendingCountryConfig names the localized site sections the trending job
// matches on: ListPage is the calendar/listing page referrers must contain,
// ContentPath is the path segment content pages live under.
type TrendingCountryConfig struct {
	ListPage    string `mapstructure:"list_page" validate:"required"`
	ContentPath string `mapstructure:"content_path" validate:"required"`
}
