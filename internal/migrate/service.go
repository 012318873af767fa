package migrate

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/dwahdany/git-migration/internal/githubcli"
	"github.com/dwahdany/git-migration/internal/gitrepo"
)

const (
	inventoryHeaderConstant              = "\nFound repositories:\n"
	inventorySeparatorConstant           = "--------------------------------------------------------------------------------\n"
	inventoryRepositoryTemplateConstant  = "Repository: %s\n"
	inventoryPathTemplateConstant        = "Path: %s\n"
	inventoryRemoteTemplateConstant      = "Current remote: %s\n"
	inventoryNoRemoteLabelConstant       = "No remote"
	inventoryNewNameTemplateConstant     = "New name will be: %s\n"
	inventoryStatusTemplateConstant      = "Status: %s\n"
	inventoryStatusExistingLabelConstant = "Already exists on GitHub"
	inventoryStatusCreateLabelConstant   = "Will be created"
	confirmationPromptConstant           = "\nDo you want to proceed with the migration? (yes/no): "
	migrationCancelledMessageConstant    = "Migration cancelled.\n"
	processingTemplateConstant           = "\nProcessing %s...\n"
	currentRemoteTemplateConstant        = "Current remote: %s\n"
	noRemoteFoundTemplateConstant        = "✗ No remote found for %s\n"
	alreadyExistsTemplateConstant        = "✓ Repository %s already exists, skipping...\n"
	createdRepositoryTemplateConstant    = "✓ Created new repository: %s\n"
	creationFailedTemplateConstant       = "✗ Failed to create repository %s: %v\n"
	creationSkipUpdateMessageConstant    = "✗ Skipping remote update due to repository creation failure\n"
	remoteUpdatedTemplateConstant        = "✓ Updated remote for %s\n"
	remoteUpdateFailedTemplateConstant   = "✗ Failed to update remote for %s: %v\n"
	pushedBranchesMessageConstant        = "✓ Pushed all branches to new remote\n"
	pushFailedTemplateConstant           = "✗ Failed to push to new remote for %s: %v\n"
	remoteLookupFailedLogMessage         = "remote lookup failed, treating repository as having no remote"
	protocolConversionFailedLogMessage   = "created repository URL could not be converted, keeping original"
	migrationRunCompletedLogMessage      = "migration run completed"
	logFieldRepositoryConstant           = "repository"
	logFieldRemoteNameConstant           = "remote_name"
	logFieldRepositoryCountConstant      = "repository_count"
	logFieldCompletedCountConstant       = "completed_count"
	logFieldSkippedCountConstant         = "skipped_count"
	logFieldFailedCountConstant          = "failed_count"
)

// ServiceOptions configures a single migration run.
type ServiceOptions struct {
	Target      string
	Prefix      string
	RemoteName  string
	Description string
	Protocol    gitrepo.RemoteProtocol
	AssumeYes   bool
	DryRun      bool
}

// Service coordinates repository discovery, inventory reporting, confirmation, and sequential migration.
type Service struct {
	resolver     RepositoryResolver
	gitManager   GitRepositoryManager
	githubClient HostedRepositoryClient
	prompter     ConfirmationPrompter
	logger       *zap.Logger
	outputWriter io.Writer
}

// NewService constructs a Service from the provided collaborators.
func NewService(resolver RepositoryResolver, gitManager GitRepositoryManager, githubClient HostedRepositoryClient, prompter ConfirmationPrompter, logger *zap.Logger, outputWriter io.Writer) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if outputWriter == nil {
		outputWriter = io.Discard
	}
	return &Service{
		resolver:     resolver,
		gitManager:   gitManager,
		githubClient: githubClient,
		prompter:     prompter,
		logger:       logger,
		outputWriter: outputWriter,
	}
}

// Run executes the migration workflow and returns the terminal outcome of every attempted repository.
// Declined confirmations and dry runs return no outcomes and no error; an empty discovery result
// returns NoRepositoriesFoundError.
func (service *Service) Run(executionContext context.Context, options ServiceOptions) ([]MigrationOutcome, error) {
	repositories, resolutionError := service.resolver.ResolveRepositories(options.Target)
	if resolutionError != nil {
		return nil, resolutionError
	}

	if len(repositories) == 0 {
		return nil, NoRepositoriesFoundError{Target: options.Target}
	}

	inventory := service.buildInventory(executionContext, repositories, options)
	service.reportInventory(inventory)

	if options.DryRun {
		return nil, nil
	}

	if !options.AssumeYes {
		confirmed, confirmationError := service.prompter.Confirm(confirmationPromptConstant)
		if confirmationError != nil {
			return nil, confirmationError
		}
		if !confirmed {
			fmt.Fprint(service.outputWriter, migrationCancelledMessageConstant)
			return nil, nil
		}
	}

	outcomes := make([]MigrationOutcome, 0, len(inventory))
	for _, entry := range inventory {
		outcomes = append(outcomes, service.migrateRepository(executionContext, entry, options))
	}

	service.logRunSummary(outcomes)

	return outcomes, nil
}

func (service *Service) buildInventory(executionContext context.Context, repositories []string, options ServiceOptions) []RepositoryInventoryEntry {
	inventory := make([]RepositoryInventoryEntry, 0, len(repositories))
	for _, repositoryPath := range repositories {
		folderName := filepath.Base(repositoryPath)
		targetName := BuildTargetName(options.Prefix, folderName)

		remoteURL, lookupError := service.gitManager.GetRemoteURL(executionContext, repositoryPath, options.RemoteName)
		if lookupError != nil {
			service.logger.Debug(
				remoteLookupFailedLogMessage,
				zap.String(logFieldRepositoryConstant, repositoryPath),
				zap.String(logFieldRemoteNameConstant, options.RemoteName),
				zap.Error(lookupError),
			)
			remoteURL = ""
		}

		inventory = append(inventory, RepositoryInventoryEntry{
			Path:             repositoryPath,
			FolderName:       folderName,
			CurrentRemoteURL: strings.TrimSpace(remoteURL),
			TargetName:       targetName,
			TargetExists:     service.targetExists(executionContext, targetName),
		})
	}
	return inventory
}

func (service *Service) targetExists(executionContext context.Context, targetName string) bool {
	_, viewError := service.githubClient.ViewRepository(executionContext, targetName)
	return viewError == nil
}

func (service *Service) reportInventory(inventory []RepositoryInventoryEntry) {
	fmt.Fprint(service.outputWriter, inventoryHeaderConstant)
	fmt.Fprint(service.outputWriter, inventorySeparatorConstant)
	for _, entry := range inventory {
		remoteLabel := entry.CurrentRemoteURL
		if !entry.HasRemote() {
			remoteLabel = inventoryNoRemoteLabelConstant
		}

		statusLabel := inventoryStatusCreateLabelConstant
		if entry.TargetExists {
			statusLabel = inventoryStatusExistingLabelConstant
		}

		fmt.Fprintf(service.outputWriter, inventoryRepositoryTemplateConstant, entry.FolderName)
		fmt.Fprintf(service.outputWriter, inventoryPathTemplateConstant, entry.Path)
		fmt.Fprintf(service.outputWriter, inventoryRemoteTemplateConstant, remoteLabel)
		fmt.Fprintf(service.outputWriter, inventoryNewNameTemplateConstant, entry.TargetName)
		fmt.Fprintf(service.outputWriter, inventoryStatusTemplateConstant, statusLabel)
		fmt.Fprint(service.outputWriter, inventorySeparatorConstant)
	}
}

func (service *Service) migrateRepository(executionContext context.Context, entry RepositoryInventoryEntry, options ServiceOptions) MigrationOutcome {
	outcome := MigrationOutcome{RepositoryPath: entry.Path, TargetName: entry.TargetName}

	fmt.Fprintf(service.outputWriter, processingTemplateConstant, entry.Path)

	if !entry.HasRemote() {
		fmt.Fprintf(service.outputWriter, noRemoteFoundTemplateConstant, entry.Path)
		outcome.Status = MigrationStatusSkippedNoRemote
		return outcome
	}

	fmt.Fprintf(service.outputWriter, currentRemoteTemplateConstant, entry.CurrentRemoteURL)

	if entry.TargetExists {
		fmt.Fprintf(service.outputWriter, alreadyExistsTemplateConstant, entry.TargetName)
		outcome.Status = MigrationStatusSkippedExisting
		return outcome
	}

	createdURL, creationError := service.githubClient.CreateRepository(executionContext, githubcli.RepositoryCreationOptions{
		Name:        entry.TargetName,
		Description: options.Description,
		Visibility:  githubcli.RepositoryVisibilityPrivate,
	})
	if creationError != nil {
		fmt.Fprintf(service.outputWriter, creationFailedTemplateConstant, entry.TargetName, creationError)
		fmt.Fprint(service.outputWriter, creationSkipUpdateMessageConstant)
		outcome.Status = MigrationStatusAborted
		outcome.FailureCause = creationError
		return outcome
	}

	fmt.Fprintf(service.outputWriter, createdRepositoryTemplateConstant, createdURL)

	newRemoteURL := service.applyProtocolPreference(createdURL, options.Protocol)
	outcome.NewRemoteURL = newRemoteURL

	updateError := service.gitManager.SetRemoteURL(executionContext, entry.Path, options.RemoteName, newRemoteURL)
	if updateError != nil {
		fmt.Fprintf(service.outputWriter, remoteUpdateFailedTemplateConstant, entry.Path, updateError)
		outcome.Status = MigrationStatusRemoteUpdateFailed
		outcome.FailureCause = updateError
		return outcome
	}

	fmt.Fprintf(service.outputWriter, remoteUpdatedTemplateConstant, entry.Path)

	pushError := service.gitManager.PushAllBranches(executionContext, entry.Path, options.RemoteName)
	if pushError != nil {
		fmt.Fprintf(service.outputWriter, pushFailedTemplateConstant, entry.Path, pushError)
		outcome.Status = MigrationStatusPushFailed
		outcome.FailureCause = pushError
		return outcome
	}

	fmt.Fprint(service.outputWriter, pushedBranchesMessageConstant)
	outcome.Status = MigrationStatusCompleted
	return outcome
}

// applyProtocolPreference converts the created repository URL to the requested protocol.
// Conversion failures keep the created URL so the migration can still proceed.
func (service *Service) applyProtocolPreference(createdURL string, protocol gitrepo.RemoteProtocol) string {
	if len(protocol) == 0 {
		return createdURL
	}

	parsedRemote, parseError := gitrepo.ParseRemoteURL(createdURL)
	if parseError != nil {
		service.logger.Warn(protocolConversionFailedLogMessage, zap.Error(parseError))
		return createdURL
	}

	parsedRemote.Protocol = protocol
	convertedURL, formatError := gitrepo.FormatRemoteURL(parsedRemote)
	if formatError != nil {
		service.logger.Warn(protocolConversionFailedLogMessage, zap.Error(formatError))
		return createdURL
	}

	return convertedURL
}

func (service *Service) logRunSummary(outcomes []MigrationOutcome) {
	completedCount := 0
	skippedCount := 0
	failedCount := 0
	for _, outcome := range outcomes {
		switch outcome.Status {
		case MigrationStatusCompleted:
			completedCount++
		case MigrationStatusSkippedNoRemote, MigrationStatusSkippedExisting:
			skippedCount++
		default:
			failedCount++
		}
	}

	service.logger.Info(
		migrationRunCompletedLogMessage,
		zap.Int(logFieldRepositoryCountConstant, len(outcomes)),
		zap.Int(logFieldCompletedCountConstant, completedCount),
		zap.Int(logFieldSkippedCountConstant, skippedCount),
		zap.Int(logFieldFailedCountConstant, failedCount),
	)
}
