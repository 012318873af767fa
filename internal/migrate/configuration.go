package migrate

import "strings"

const (
	defaultTargetNamePrefixConstant   = "migration25"
	defaultRemoteNameConstant         = "origin"
	prefixConfigurationKeyConstant    = ".prefix"
	remoteConfigurationKeyConstant    = ".remote"
	descriptionConfigurationKey       = ".description"
	protocolConfigurationKeyConstant  = ".protocol"
	assumeYesConfigurationKeyConstant = ".assume_yes"
)

// CommandConfiguration captures persistent settings for the migrate command.
type CommandConfiguration struct {
	Prefix      string `mapstructure:"prefix"`
	RemoteName  string `mapstructure:"remote"`
	Description string `mapstructure:"description"`
	Protocol    string `mapstructure:"protocol"`
	AssumeYes   bool   `mapstructure:"assume_yes"`
}

// DefaultCommandConfiguration returns baseline configuration values for the migrate command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Prefix:     defaultTargetNamePrefixConstant,
		RemoteName: defaultRemoteNameConstant,
	}
}

// DefaultConfigurationValues exposes default values keyed for the configuration loader.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKeyPrefix + prefixConfigurationKeyConstant:    defaults.Prefix,
		configurationKeyPrefix + remoteConfigurationKeyConstant:    defaults.RemoteName,
		configurationKeyPrefix + descriptionConfigurationKey:       defaults.Description,
		configurationKeyPrefix + protocolConfigurationKeyConstant:  defaults.Protocol,
		configurationKeyPrefix + assumeYesConfigurationKeyConstant: defaults.AssumeYes,
	}
}

// Sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Prefix = strings.TrimSpace(configuration.Prefix)
	sanitized.RemoteName = strings.TrimSpace(configuration.RemoteName)
	sanitized.Description = strings.TrimSpace(configuration.Description)
	sanitized.Protocol = strings.ToLower(strings.TrimSpace(configuration.Protocol))

	if len(sanitized.Prefix) == 0 {
		sanitized.Prefix = defaultTargetNamePrefixConstant
	}
	if len(sanitized.RemoteName) == 0 {
		sanitized.RemoteName = defaultRemoteNameConstant
	}

	return sanitized
}
