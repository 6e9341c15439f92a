package config

const (
	defaultStateDir         = "~/.local/share/sortd"
	defaultLogDir           = "~/.local/share/sortd/logs"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultFallbackCategory = "Miscellaneous"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Organize: Organize{
			FallbackCategory: defaultFallbackCategory,
			AuditLog:         true,
		},
	}
}
