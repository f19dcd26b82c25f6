package config

const (
	defaultConfigPath          = "~/.config/larder/config.toml"
	defaultDataDir             = "~/.local/share/larder"
	defaultLogDir              = "~/.local/share/larder/logs"
	defaultUnitSystem          = "imperial"
	defaultColor               = true
	defaultFallbackRecipeLabel = "Other items"
	defaultKeyCacheSize        = 512
	defaultLogFormat           = "console"
	defaultLogLevel            = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Display: Display{
			UnitSystem: defaultUnitSystem,
			Color:      defaultColor,
		},
		Shopping: Shopping{
			FallbackRecipeLabel: defaultFallbackRecipeLabel,
			KeyCacheSize:        defaultKeyCacheSize,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
