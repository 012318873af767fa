package gitrepo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dwahdany/git-migration/internal/execshell"
	"github.com/dwahdany/git-migration/internal/gitrepo"
)

type recordingGitExecutor struct {
	recordedDetails []execshell.CommandDetails
	result          execshell.ExecutionResult
	executionError  error
}

func (executor *recordingGitExecutor) ExecuteGit(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recordedDetails = append(executor.recordedDetails, details)
	if executor.executionError != nil {
		return execshell.ExecutionResult{}, executor.executionError
	}
	return executor.result, nil
}

func TestNewRepositoryManagerRequiresExecutor(testInstance *testing.T) {
	manager, constructionError := gitrepo.NewRepositoryManager(nil)
	require.Nil(testInstance, manager)
	require.ErrorIs(testInstance, constructionError, gitrepo.ErrExecutorNotConfigured)
}

func TestGetRemoteURLTrimsCommandOutput(testInstance *testing.T) {
	executor := &recordingGitExecutor{result: execshell.ExecutionResult{StandardOutput: "git@github.com:legacy/alpha.git\n"}}
	manager, constructionError := gitrepo.NewRepositoryManager(executor)
	require.NoError(testInstance, constructionError)

	remoteURL, lookupError := manager.GetRemoteURL(context.Background(), "/tmp/projects/alpha", "origin")
	require.NoError(testInstance, lookupError)
	require.Equal(testInstance, "git@github.com:legacy/alpha.git", remoteURL)

	require.Len(testInstance, executor.recordedDetails, 1)
	require.Equal(testInstance, []string{"remote", "get-url", "origin"}, executor.recordedDetails[0].Arguments)
	require.Equal(testInstance, "/tmp/projects/alpha", executor.recordedDetails[0].WorkingDirectory)
}

func TestRepositoryManagerDisablesGitTerminalPrompts(testInstance *testing.T) {
	executor := &recordingGitExecutor{}
	manager, constructionError := gitrepo.NewRepositoryManager(executor)
	require.NoError(testInstance, constructionError)

	require.NoError(testInstance, manager.PushAllBranches(context.Background(), "/tmp/projects/alpha", "origin"))
	require.NoError(testInstance, manager.SetRemoteURL(context.Background(), "/tmp/projects/alpha", "origin", "https://github.com/operator/migration25-alpha.git"))
	_, lookupError := manager.GetRemoteURL(context.Background(), "/tmp/projects/alpha", "origin")
	require.NoError(testInstance, lookupError)

	require.Len(testInstance, executor.recordedDetails, 3)
	for _, recordedDetail := range executor.recordedDetails {
		require.Equal(testInstance, map[string]string{"GIT_TERMINAL_PROMPT": "0"}, recordedDetail.EnvironmentVariables)
	}
}

func TestSetRemoteURLIssuesSetURLCommand(testInstance *testing.T) {
	executor := &recordingGitExecutor{}
	manager, constructionError := gitrepo.NewRepositoryManager(executor)
	require.NoError(testInstance, constructionError)

	updateError := manager.SetRemoteURL(context.Background(), "/tmp/projects/alpha", "origin", "https://github.com/operator/migration25-alpha.git")
	require.NoError(testInstance, updateError)

	require.Len(testInstance, executor.recordedDetails, 1)
	require.Equal(testInstance, []string{"remote", "set-url", "origin", "https://github.com/operator/migration25-alpha.git"}, executor.recordedDetails[0].Arguments)
	require.Equal(testInstance, "/tmp/projects/alpha", executor.recordedDetails[0].WorkingDirectory)
}

func TestPushAllBranchesIssuesPushCommand(testInstance *testing.T) {
	executor := &recordingGitExecutor{}
	manager, constructionError := gitrepo.NewRepositoryManager(executor)
	require.NoError(testInstance, constructionError)

	pushError := manager.PushAllBranches(context.Background(), "/tmp/projects/alpha", "origin")
	require.NoError(testInstance, pushError)

	require.Len(testInstance, executor.recordedDetails, 1)
	require.Equal(testInstance, []string{"push", "--all", "origin"}, executor.recordedDetails[0].Arguments)
}

func TestRepositoryManagerValidatesArguments(testInstance *testing.T) {
	manager, constructionError := gitrepo.NewRepositoryManager(&recordingGitExecutor{})
	require.NoError(testInstance, constructionError)

	testCases := []struct {
		name          string
		operation     func() error
		expectedError error
	}{
		{
			name: "get_remote_url_requires_repository_path",
			operation: func() error {
				_, lookupError := manager.GetRemoteURL(context.Background(), " ", "origin")
				return lookupError
			},
			expectedError: gitrepo.ErrRepositoryPathRequired,
		},
		{
			name: "get_remote_url_requires_remote_name",
			operation: func() error {
				_, lookupError := manager.GetRemoteURL(context.Background(), "/tmp/projects/alpha", "")
				return lookupError
			},
			expectedError: gitrepo.ErrRemoteNameRequired,
		},
		{
			name: "set_remote_url_requires_remote_url",
			operation: func() error {
				return manager.SetRemoteURL(context.Background(), "/tmp/projects/alpha", "origin", "  ")
			},
			expectedError: gitrepo.ErrRemoteURLRequired,
		},
		{
			name: "push_all_branches_requires_repository_path",
			operation: func() error {
				return manager.PushAllBranches(context.Background(), "", "origin")
			},
			expectedError: gitrepo.ErrRepositoryPathRequired,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			require.ErrorIs(subtest, testCase.operation(), testCase.expectedError)
		})
	}
}
