package migrate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dwahdany/git-migration/internal/migrate"
)

func TestDefaultCommandConfiguration(testInstance *testing.T) {
	configuration := migrate.DefaultCommandConfiguration()
	require.Equal(testInstance, "migration25", configuration.Prefix)
	require.Equal(testInstance, "origin", configuration.RemoteName)
	require.Empty(testInstance, configuration.Description)
	require.Empty(testInstance, configuration.Protocol)
	require.False(testInstance, configuration.AssumeYes)
}

func TestDefaultConfigurationValuesUsePrefix(testInstance *testing.T) {
	values := migrate.DefaultConfigurationValues("tools.migrate")
	require.Equal(testInstance, "migration25", values["tools.migrate.prefix"])
	require.Equal(testInstance, "origin", values["tools.migrate.remote"])
	require.Equal(testInstance, false, values["tools.migrate.assume_yes"])
}

func TestCommandConfigurationSanitize(testInstance *testing.T) {
	testCases := []struct {
		name          string
		configuration migrate.CommandConfiguration
		expected      migrate.CommandConfiguration
	}{
		{
			name:          "applies_defaults_to_blank_values",
			configuration: migrate.CommandConfiguration{Prefix: "  ", RemoteName: ""},
			expected:      migrate.CommandConfiguration{Prefix: "migration25", RemoteName: "origin"},
		},
		{
			name:          "trims_and_lowercases_protocol",
			configuration: migrate.CommandConfiguration{Prefix: "batch", RemoteName: "upstream", Protocol: " SSH "},
			expected:      migrate.CommandConfiguration{Prefix: "batch", RemoteName: "upstream", Protocol: "ssh"},
		},
		{
			name:          "trims_description",
			configuration: migrate.CommandConfiguration{Prefix: "batch", RemoteName: "origin", Description: " migrated "},
			expected:      migrate.CommandConfiguration{Prefix: "batch", RemoteName: "origin", Description: "migrated"},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			require.Equal(subtest, testCase.expected, testCase.configuration.Sanitize())
		})
	}
}

func TestBuildTargetName(testInstance *testing.T) {
	require.Equal(testInstance, "migration25-alpha", migrate.BuildTargetName("migration25", "alpha"))
}
