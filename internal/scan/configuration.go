package scan

import "strings"

const (
	defaultScanRootConstant            = "~"
	defaultDaysToShowConstant          = uint(7)
	configurationRootKeyConstant       = "root"
	configurationDaysToShowKeyConstant = "days_to_show"
	configurationKeySeparatorConstant  = "."
)

// CommandConfiguration captures persistent settings for the scan and show commands.
type CommandConfiguration struct {
	Root       string `mapstructure:"root"`
	DaysToShow uint   `mapstructure:"days_to_show"`
}

// DefaultCommandConfiguration returns baseline configuration values.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Root:       defaultScanRootConstant,
		DaysToShow: defaultDaysToShowConstant,
	}
}

// DefaultConfigurationValues produces Viper defaults for the scan commands.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + configurationKeySeparatorConstant + configurationRootKeyConstant:       defaults.Root,
		rootKey + configurationKeySeparatorConstant + configurationDaysToShowKeyConstant: defaults.DaysToShow,
	}
}

// sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.Root = strings.TrimSpace(configuration.Root)
	if len(sanitized.Root) == 0 {
		sanitized.Root = defaultScanRootConstant
	}

	return sanitized
}
