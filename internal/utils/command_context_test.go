package utils_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dwahdany/git-migration/internal/utils"
)

func TestCommandContextAccessorRoundTrip(testInstance *testing.T) {
	accessor := utils.NewCommandContextAccessor()

	contextWithPath := accessor.WithConfigurationFilePath(context.Background(), "/etc/git-migration/config.yaml")
	configurationFilePath, available := accessor.ConfigurationFilePath(contextWithPath)
	require.True(testInstance, available)
	require.Equal(testInstance, "/etc/git-migration/config.yaml", configurationFilePath)
}

func TestCommandContextAccessorMissingValue(testInstance *testing.T) {
	accessor := utils.NewCommandContextAccessor()

	configurationFilePath, available := accessor.ConfigurationFilePath(context.Background())
	require.False(testInstance, available)
	require.Empty(testInstance, configurationFilePath)
}

func TestCommandContextAccessorToleratesNilContext(testInstance *testing.T) {
	accessor := utils.NewCommandContextAccessor()

	contextWithPath := accessor.WithConfigurationFilePath(nil, "config.yaml")
	require.NotNil(testInstance, contextWithPath)

	_, available := accessor.ConfigurationFilePath(nil)
	require.False(testInstance, available)
}
