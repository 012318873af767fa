package migrate

import (
	"context"

	"github.com/dwahdany/git-migration/internal/githubcli"
)

// RepositoryResolver turns an operator-provided target into repository paths.
type RepositoryResolver interface {
	ResolveRepositories(target string) ([]string, error)
}

// GitRepositoryManager exposes the repository-level git operations used by the migration service.
type GitRepositoryManager interface {
	GetRemoteURL(executionContext context.Context, repositoryPath string, remoteName string) (string, error)
	SetRemoteURL(executionContext context.Context, repositoryPath string, remoteName string, remoteURL string) error
	PushAllBranches(executionContext context.Context, repositoryPath string, remoteName string) error
}

// HostedRepositoryClient exposes the hosting-provider operations used by the migration service.
type HostedRepositoryClient interface {
	ViewRepository(executionContext context.Context, repository string) (githubcli.RepositoryMetadata, error)
	CreateRepository(executionContext context.Context, options githubcli.RepositoryCreationOptions) (string, error)
}

// ConfirmationPrompter collects the single user confirmation before mutating actions.
type ConfirmationPrompter interface {
	Confirm(prompt string) (bool, error)
}
