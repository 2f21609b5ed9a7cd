package utils

import "context"

type contextKey int

const configurationFilePathContextKey contextKey = iota

// ContextWithConfigurationFilePath records which configuration file the
// application loaded so subcommands can report it.
func ContextWithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, configurationFilePathContextKey, configurationFilePath)
}

// ConfigurationFilePathFromContext reads the configuration file path recorded
// by the application, reporting whether one was set.
func ConfigurationFilePathFromContext(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	configurationFilePath, available := executionContext.Value(configurationFilePathContextKey).(string)
	if !available || len(configurationFilePath) == 0 {
		return "", false
	}
	return configurationFilePath, true
}
