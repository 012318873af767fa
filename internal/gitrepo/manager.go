package gitrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/dwahdany/git-migration/internal/execshell"
)

const (
	gitRemoteSubcommandConstant              = "remote"
	gitRemoteGetURLSubcommandConstant        = "get-url"
	gitRemoteSetURLSubcommandConstant        = "set-url"
	gitPushSubcommandConstant                = "push"
	gitPushAllFlagConstant                   = "--all"
	gitTerminalPromptEnvironmentNameConstant = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptDisabledValueConstant   = "0"
	executorNotConfiguredMessageConstant     = "git executor not configured"
	repositoryPathRequiredMessage            = "repository path required"
	remoteNameRequiredMessage                = "remote name required"
	remoteURLRequiredMessage                 = "remote url required"
)

// GitExecutor is the minimal interface required from execshell.ShellExecutor.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RepositoryManager performs git operations against local repositories.
type RepositoryManager struct {
	executor GitExecutor
}

var (
	// ErrExecutorNotConfigured indicates the manager was constructed without an executor.
	ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)
	// ErrRepositoryPathRequired indicates a repository path argument was empty.
	ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessage)
	// ErrRemoteNameRequired indicates a remote name argument was empty.
	ErrRemoteNameRequired = errors.New(remoteNameRequiredMessage)
	// ErrRemoteURLRequired indicates a remote URL argument was empty.
	ErrRemoteURLRequired = errors.New(remoteURLRequiredMessage)
)

// NewRepositoryManager constructs a RepositoryManager backed by the provided executor.
func NewRepositoryManager(executor GitExecutor) (*RepositoryManager, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &RepositoryManager{executor: executor}, nil
}

// GetRemoteURL returns the URL configured for the named remote of the repository at repositoryPath.
func (manager *RepositoryManager) GetRemoteURL(executionContext context.Context, repositoryPath string, remoteName string) (string, error) {
	if validationError := validateRepositoryArguments(repositoryPath, remoteName); validationError != nil {
		return "", validationError
	}

	commandDetails := buildGitCommandDetails(repositoryPath, gitRemoteSubcommandConstant, gitRemoteGetURLSubcommandConstant, remoteName)

	executionResult, executionError := manager.executor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		return "", executionError
	}

	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// SetRemoteURL repoints the named remote of the repository at repositoryPath to remoteURL.
func (manager *RepositoryManager) SetRemoteURL(executionContext context.Context, repositoryPath string, remoteName string, remoteURL string) error {
	if validationError := validateRepositoryArguments(repositoryPath, remoteName); validationError != nil {
		return validationError
	}
	if len(strings.TrimSpace(remoteURL)) == 0 {
		return ErrRemoteURLRequired
	}

	commandDetails := buildGitCommandDetails(repositoryPath, gitRemoteSubcommandConstant, gitRemoteSetURLSubcommandConstant, remoteName, remoteURL)

	_, executionError := manager.executor.ExecuteGit(executionContext, commandDetails)
	return executionError
}

// PushAllBranches pushes every local branch of the repository at repositoryPath to the named remote.
func (manager *RepositoryManager) PushAllBranches(executionContext context.Context, repositoryPath string, remoteName string) error {
	if validationError := validateRepositoryArguments(repositoryPath, remoteName); validationError != nil {
		return validationError
	}

	commandDetails := buildGitCommandDetails(repositoryPath, gitPushSubcommandConstant, gitPushAllFlagConstant, remoteName)

	_, executionError := manager.executor.ExecuteGit(executionContext, commandDetails)
	return executionError
}

// buildGitCommandDetails assembles invocation details with terminal prompts disabled
// so unauthenticated remotes fail fast instead of stalling a batch run.
func buildGitCommandDetails(repositoryPath string, arguments ...string) execshell.CommandDetails {
	return execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: repositoryPath,
		EnvironmentVariables: map[string]string{
			gitTerminalPromptEnvironmentNameConstant: gitTerminalPromptDisabledValueConstant,
		},
	}
}

func validateRepositoryArguments(repositoryPath string, remoteName string) error {
	if len(strings.TrimSpace(repositoryPath)) == 0 {
		return ErrRepositoryPathRequired
	}
	if len(strings.TrimSpace(remoteName)) == 0 {
		return ErrRemoteNameRequired
	}
	return nil
}
