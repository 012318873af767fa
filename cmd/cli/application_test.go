package cli_test

import (
	"bytes"
	"testing"

	"github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dwahdany/git-migration/cmd/cli"
	"github.com/dwahdany/git-migration/internal/migrate"
)

func decodeEmbeddedConfiguration(testInstance *testing.T) cli.ApplicationConfiguration {
	testInstance.Helper()

	embeddedConfiguration, configurationType := cli.EmbeddedDefaultConfiguration()
	require.Equal(testInstance, "yaml", configurationType)
	require.NotEmpty(testInstance, embeddedConfiguration)

	var rawConfiguration map[string]any
	require.NoError(testInstance, yaml.Unmarshal(embeddedConfiguration, &rawConfiguration))

	var decodedConfiguration cli.ApplicationConfiguration
	require.NoError(testInstance, mapstructure.Decode(rawConfiguration, &decodedConfiguration))
	return decodedConfiguration
}

func TestEmbeddedConfigurationMatchesMigrationDefaults(testInstance *testing.T) {
	decodedConfiguration := decodeEmbeddedConfiguration(testInstance)
	require.Equal(testInstance, migrate.DefaultCommandConfiguration(), decodedConfiguration.Tools.Migrate)
}

func TestEmbeddedConfigurationDeclaresLoggingDefaults(testInstance *testing.T) {
	decodedConfiguration := decodeEmbeddedConfiguration(testInstance)
	require.Equal(testInstance, "info", decodedConfiguration.Common.LogLevel)
	require.Equal(testInstance, "structured", decodedConfiguration.Common.LogFormat)
}

func TestEmbeddedConfigurationReturnsDefensiveCopy(testInstance *testing.T) {
	firstCopy, _ := cli.EmbeddedDefaultConfiguration()
	firstCopy[0] = '#'
	secondCopy, _ := cli.EmbeddedDefaultConfiguration()
	require.NotEqual(testInstance, firstCopy[0], secondCopy[0])
}

func TestNewApplicationRegistersMigrateCommand(testInstance *testing.T) {
	application := cli.NewApplication()
	rootCommand := application.RootCommand()
	require.NotNil(testInstance, rootCommand)

	migrateCommand, _, lookupError := rootCommand.Find([]string{"migrate"})
	require.NoError(testInstance, lookupError)
	require.Equal(testInstance, "migrate", migrateCommand.Name())
}

func TestNewApplicationDeclaresPersistentFlags(testInstance *testing.T) {
	rootCommand := cli.NewApplication().RootCommand()
	for _, flagName := range []string{"config", "log-level", "log-format"} {
		require.NotNil(testInstance, rootCommand.PersistentFlags().Lookup(flagName), flagName)
	}
}

func TestApplicationRootCommandPrintsHelpWithoutArguments(testInstance *testing.T) {
	application := cli.NewApplication()
	rootCommand := application.RootCommand()

	outputBuffer := &bytes.Buffer{}
	rootCommand.SetArgs([]string{})
	rootCommand.SetOut(outputBuffer)
	rootCommand.SetErr(&bytes.Buffer{})

	require.NoError(testInstance, rootCommand.Execute())
	require.Contains(testInstance, outputBuffer.String(), "migrate")
}
