package execshell_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dwahdany/git-migration/internal/execshell"
)

type stubCommandRunner struct {
	recordedCommands []execshell.ShellCommand
	result           execshell.ExecutionResult
	runError         error
}

func (runner *stubCommandRunner) Run(_ context.Context, command execshell.ShellCommand) (execshell.ExecutionResult, error) {
	runner.recordedCommands = append(runner.recordedCommands, command)
	if runner.runError != nil {
		return execshell.ExecutionResult{}, runner.runError
	}
	return runner.result, nil
}

type recordingCommandEventObserver struct {
	startedCommands   []execshell.ShellCommand
	completedCommands []execshell.ShellCommand
	completedResults  []execshell.ExecutionResult
	failedCommands    []execshell.ShellCommand
	failures          []error
}

func (observer *recordingCommandEventObserver) CommandStarted(command execshell.ShellCommand) {
	observer.startedCommands = append(observer.startedCommands, command)
}

func (observer *recordingCommandEventObserver) CommandCompleted(command execshell.ShellCommand, result execshell.ExecutionResult) {
	observer.completedCommands = append(observer.completedCommands, command)
	observer.completedResults = append(observer.completedResults, result)
}

func (observer *recordingCommandEventObserver) CommandExecutionFailed(command execshell.ShellCommand, failure error) {
	observer.failedCommands = append(observer.failedCommands, command)
	observer.failures = append(observer.failures, failure)
}

func TestNewShellExecutorValidatesDependencies(testInstance *testing.T) {
	testCases := []struct {
		name          string
		logger        *zap.Logger
		runner        execshell.CommandRunner
		expectedError error
	}{
		{name: "requires_logger", logger: nil, runner: &stubCommandRunner{}, expectedError: execshell.ErrLoggerNotConfigured},
		{name: "requires_runner", logger: zap.NewNop(), runner: nil, expectedError: execshell.ErrCommandRunnerNotConfigured},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			executor, constructionError := execshell.NewShellExecutor(testCase.logger, testCase.runner, nil)
			require.Nil(subtest, executor)
			require.ErrorIs(subtest, constructionError, testCase.expectedError)
		})
	}
}

func TestExecuteGitRunsGitCommandAndNotifiesObserver(testInstance *testing.T) {
	runner := &stubCommandRunner{result: execshell.ExecutionResult{StandardOutput: "ok"}}
	observer := &recordingCommandEventObserver{}

	executor, constructionError := execshell.NewShellExecutor(zap.NewNop(), runner, observer)
	require.NoError(testInstance, constructionError)

	details := execshell.CommandDetails{Arguments: []string{"remote", "get-url", "origin"}, WorkingDirectory: "/tmp/projects/alpha"}
	result, executionError := executor.ExecuteGit(context.Background(), details)
	require.NoError(testInstance, executionError)
	require.Equal(testInstance, "ok", result.StandardOutput)

	require.Len(testInstance, runner.recordedCommands, 1)
	require.Equal(testInstance, execshell.CommandGit, runner.recordedCommands[0].Name)
	require.Equal(testInstance, details, runner.recordedCommands[0].Details)

	require.Len(testInstance, observer.startedCommands, 1)
	require.Len(testInstance, observer.completedCommands, 1)
	require.Empty(testInstance, observer.failedCommands)
}

func TestExecuteGitHubCLIRunsGitHubCommand(testInstance *testing.T) {
	runner := &stubCommandRunner{}
	executor, constructionError := execshell.NewShellExecutor(zap.NewNop(), runner, nil)
	require.NoError(testInstance, constructionError)

	_, executionError := executor.ExecuteGitHubCLI(context.Background(), execshell.CommandDetails{Arguments: []string{"repo", "view"}})
	require.NoError(testInstance, executionError)

	require.Len(testInstance, runner.recordedCommands, 1)
	require.Equal(testInstance, execshell.CommandGitHubCLI, runner.recordedCommands[0].Name)
}

func TestExecuteReturnsCommandFailedErrorOnNonZeroExit(testInstance *testing.T) {
	runner := &stubCommandRunner{result: execshell.ExecutionResult{StandardError: "fatal: not a repository", ExitCode: 128}}
	observer := &recordingCommandEventObserver{}

	executor, constructionError := execshell.NewShellExecutor(zap.NewNop(), runner, observer)
	require.NoError(testInstance, constructionError)

	result, executionError := executor.ExecuteGit(context.Background(), execshell.CommandDetails{Arguments: []string{"push", "--all", "origin"}})
	require.Equal(testInstance, 128, result.ExitCode)

	var commandFailedError execshell.CommandFailedError
	require.ErrorAs(testInstance, executionError, &commandFailedError)
	require.Equal(testInstance, 128, commandFailedError.Result.ExitCode)
	require.Contains(testInstance, executionError.Error(), "git push --all origin exited with code 128")
	require.Contains(testInstance, executionError.Error(), "fatal: not a repository")

	require.Len(testInstance, observer.completedCommands, 1)
	require.Empty(testInstance, observer.failedCommands)
}

func TestExecuteReportsRunnerFailures(testInstance *testing.T) {
	runnerFailure := errors.New("executable not found")
	runner := &stubCommandRunner{runError: runnerFailure}
	observer := &recordingCommandEventObserver{}

	executor, constructionError := execshell.NewShellExecutor(zap.NewNop(), runner, observer)
	require.NoError(testInstance, constructionError)

	_, executionError := executor.ExecuteGit(context.Background(), execshell.CommandDetails{Arguments: []string{"remote", "get-url", "origin"}})
	require.ErrorIs(testInstance, executionError, runnerFailure)

	require.Len(testInstance, observer.failedCommands, 1)
	require.Empty(testInstance, observer.completedCommands)
	require.ErrorIs(testInstance, observer.failures[0], runnerFailure)
}
