package config

// Defaults used when the config file omits a field.
const (
	DefaultPasteName   = "from_copy_paste.png"
	DefaultJPEGQuality = 90
)

// DefaultConfig returns the configuration used when no file exists.
// PasteDir stays empty and resolves to the home directory at use time.
func DefaultConfig() *Config {
	confirm := true
	persist := true

	return &Config{
		PasteName:        DefaultPasteName,
		JPEGQuality:      DefaultJPEGQuality,
		ConfirmOverwrite: &confirm,
		Persist:          &persist,
	}
}

// Merge fills unset fields of partial from defaults and returns a new Config.
func Merge(partial, defaults *Config) *Config {
	result := &Config{
		PasteDir:         partial.PasteDir,
		PasteName:        partial.PasteName,
		JPEGQuality:      partial.JPEGQuality,
		ConfirmOverwrite: partial.ConfirmOverwrite,
		Persist:          partial.Persist,
		Notifications:    partial.Notifications,
		filePath:         partial.filePath,
	}

	if result.PasteDir == "" {
		result.PasteDir = defaults.PasteDir
	}
	if result.PasteName == "" {
		result.PasteName = defaults.PasteName
	}
	if result.JPEGQuality == 0 {
		result.JPEGQuality = defaults.JPEGQuality
	}
	if result.ConfirmOverwrite == nil {
		result.ConfirmOverwrite = defaults.ConfirmOverwrite
	}
	if result.Persist == nil {
		result.Persist = defaults.Persist
	}

	return result
}
