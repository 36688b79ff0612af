package config

const (
	defaultDataDir       = "~/.local/share/timesheet"
	defaultLogDir        = "~/.local/share/timesheet/logs"
	defaultDailyCapHours = 8
	defaultLogFormat     = "text"
	defaultLogLevel      = "info"
	defaultRole          = "employee"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Identity: Identity{
			Role: defaultRole,
		},
		Workflow: Workflow{
			DailyCapHours: defaultDailyCapHours,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
