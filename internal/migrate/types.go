package migrate

import "fmt"

const (
	targetNameTemplateConstant                = "%s-%s"
	noRepositoriesFoundErrorTemplateConstant  = "no repositories found matching %q"
	migrationStatusSkippedNoRemoteConstant    = "skipped-no-remote"
	migrationStatusSkippedExistingConstant    = "skipped-existing"
	migrationStatusAbortedConstant            = "aborted-creation-failed"
	migrationStatusRemoteUpdateFailedConstant = "remote-update-failed"
	migrationStatusPushFailedConstant         = "push-failed"
	migrationStatusCompletedConstant          = "completed"
)

// MigrationStatus identifies the terminal state reached by a repository migration.
type MigrationStatus string

// Terminal migration states.
const (
	MigrationStatusSkippedNoRemote    MigrationStatus = MigrationStatus(migrationStatusSkippedNoRemoteConstant)
	MigrationStatusSkippedExisting    MigrationStatus = MigrationStatus(migrationStatusSkippedExistingConstant)
	MigrationStatusAborted            MigrationStatus = MigrationStatus(migrationStatusAbortedConstant)
	MigrationStatusRemoteUpdateFailed MigrationStatus = MigrationStatus(migrationStatusRemoteUpdateFailedConstant)
	MigrationStatusPushFailed         MigrationStatus = MigrationStatus(migrationStatusPushFailedConstant)
	MigrationStatusCompleted          MigrationStatus = MigrationStatus(migrationStatusCompletedConstant)
)

// RepositoryInventoryEntry captures the reported state of one discovered repository.
type RepositoryInventoryEntry struct {
	Path             string
	FolderName       string
	CurrentRemoteURL string
	TargetName       string
	TargetExists     bool
}

// HasRemote reports whether the repository has a configured remote.
func (entry RepositoryInventoryEntry) HasRemote() bool {
	return len(entry.CurrentRemoteURL) > 0
}

// MigrationOutcome records the terminal state of one repository migration attempt.
type MigrationOutcome struct {
	RepositoryPath string
	TargetName     string
	NewRemoteURL   string
	Status         MigrationStatus
	FailureCause   error
}

// NoRepositoriesFoundError indicates the target resolved to zero repositories.
type NoRepositoriesFoundError struct {
	Target string
}

// Error describes the empty discovery result.
func (emptyError NoRepositoriesFoundError) Error() string {
	return fmt.Sprintf(noRepositoriesFoundErrorTemplateConstant, emptyError.Target)
}

// BuildTargetName computes the hosted repository name for a local folder name.
func BuildTargetName(prefix string, folderName string) string {
	return fmt.Sprintf(targetNameTemplateConstant, prefix, folderName)
}
