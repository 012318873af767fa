package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dwahdany/git-migration/internal/discovery"
	"github.com/dwahdany/git-migration/internal/execshell"
	"github.com/dwahdany/git-migration/internal/githubcli"
	"github.com/dwahdany/git-migration/internal/gitrepo"
	"github.com/dwahdany/git-migration/internal/ui"
	"github.com/dwahdany/git-migration/internal/utils"
)

const (
	commandUseConstant                       = "migrate <target>"
	commandShortDescriptionConstant          = "Migrate local repositories to newly created hosted repositories"
	commandLongDescriptionConstant           = "migrate discovers git repositories under the target path or name, reports each repository's current remote and planned hosted name, and after one confirmation creates a private repository per local one, repoints the remote, and pushes all branches."
	prefixFlagNameConstant                   = "prefix"
	prefixFlagUsageConstant                  = "Name prefix applied to every created hosted repository."
	remoteFlagNameConstant                   = "remote"
	remoteFlagUsageConstant                  = "Name of the local remote to inspect and repoint."
	descriptionFlagNameConstant              = "description"
	descriptionFlagUsageConstant             = "Description applied to every created hosted repository."
	protocolFlagNameConstant                 = "protocol"
	protocolFlagUsageConstant                = "Rewrite created repository URLs to this protocol before repointing (ssh or https)."
	assumeYesFlagNameConstant                = "yes"
	assumeYesFlagUsageConstant               = "Skip the confirmation prompt."
	dryRunFlagNameConstant                   = "dry-run"
	dryRunFlagUsageConstant                  = "Report the planned migrations without performing any changes."
	unsupportedProtocolErrorTemplateConstant = "unsupported protocol %q: expected ssh or https"
	executorCreationErrorTemplateConstant    = "unable to construct shell executor: %w"
	managerCreationErrorTemplateConstant     = "unable to construct repository manager: %w"
	clientCreationErrorTemplateConstant      = "unable to construct GitHub client: %w"
	resolverCreationErrorTemplateConstant    = "unable to construct target resolver: %w"
	logFieldConfigurationFileConstant        = "config_file"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the migrate cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	ConfigurationProvider        func() CommandConfiguration
	HumanReadableLoggingProvider func() bool
	Resolver                     RepositoryResolver
	GitManager                   GitRepositoryManager
	GitHubClient                 HostedRepositoryClient
	Prompter                     ConfirmationPrompter
	CommandEventsObserver        execshell.CommandEventObserver
}

// Build constructs the cobra command for the migration workflow.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ExactArgs(1),
		RunE:          builder.run,
	}

	command.Flags().String(prefixFlagNameConstant, "", prefixFlagUsageConstant)
	command.Flags().String(remoteFlagNameConstant, "", remoteFlagUsageConstant)
	command.Flags().String(descriptionFlagNameConstant, "", descriptionFlagUsageConstant)
	command.Flags().String(protocolFlagNameConstant, "", protocolFlagUsageConstant)
	command.Flags().Bool(assumeYesFlagNameConstant, false, assumeYesFlagUsageConstant)
	command.Flags().Bool(dryRunFlagNameConstant, false, dryRunFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options, optionsError := builder.parseOptions(command, arguments)
	if optionsError != nil {
		return optionsError
	}

	logger := builder.resolveLogger()
	if configurationFilePath, pathAvailable := utils.NewCommandContextAccessor().ConfigurationFilePath(command.Context()); pathAvailable && len(configurationFilePath) > 0 {
		logger = logger.With(zap.String(logFieldConfigurationFileConstant, configurationFilePath))
	}

	gitManager, githubClient, dependenciesError := builder.resolveExecutionDependencies(logger)
	if dependenciesError != nil {
		return dependenciesError
	}

	resolver, resolverError := builder.resolveRepositoryResolver()
	if resolverError != nil {
		return resolverError
	}

	outputWriter := utils.NewFlushingWriter(command.OutOrStdout())

	prompter := builder.Prompter
	if prompter == nil {
		prompter = NewIOConfirmationPrompter(command.InOrStdin(), outputWriter)
	}

	service := NewService(resolver, gitManager, githubClient, prompter, logger, outputWriter)
	_, runError := service.Run(command.Context(), options)
	return runError
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) (ServiceOptions, error) {
	configuration := DefaultCommandConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}
	configuration = configuration.Sanitize()

	if command.Flags().Changed(prefixFlagNameConstant) {
		configuration.Prefix, _ = command.Flags().GetString(prefixFlagNameConstant)
	}
	if command.Flags().Changed(remoteFlagNameConstant) {
		configuration.RemoteName, _ = command.Flags().GetString(remoteFlagNameConstant)
	}
	if command.Flags().Changed(descriptionFlagNameConstant) {
		configuration.Description, _ = command.Flags().GetString(descriptionFlagNameConstant)
	}
	if command.Flags().Changed(protocolFlagNameConstant) {
		configuration.Protocol, _ = command.Flags().GetString(protocolFlagNameConstant)
	}
	configuration = configuration.Sanitize()

	assumeYesFlag, _ := command.Flags().GetBool(assumeYesFlagNameConstant)
	dryRunFlag, _ := command.Flags().GetBool(dryRunFlagNameConstant)

	protocol, protocolError := parseProtocolPreference(configuration.Protocol)
	if protocolError != nil {
		return ServiceOptions{}, protocolError
	}

	options := ServiceOptions{
		Target:      arguments[0],
		Prefix:      configuration.Prefix,
		RemoteName:  configuration.RemoteName,
		Description: configuration.Description,
		Protocol:    protocol,
		AssumeYes:   configuration.AssumeYes || assumeYesFlag,
		DryRun:      dryRunFlag,
	}

	return options, nil
}

func parseProtocolPreference(protocol string) (gitrepo.RemoteProtocol, error) {
	switch protocol {
	case "":
		return "", nil
	case string(gitrepo.RemoteProtocolSSH):
		return gitrepo.RemoteProtocolSSH, nil
	case string(gitrepo.RemoteProtocolHTTPS):
		return gitrepo.RemoteProtocolHTTPS, nil
	default:
		return "", fmt.Errorf(unsupportedProtocolErrorTemplateConstant, protocol)
	}
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveExecutionDependencies(logger *zap.Logger) (GitRepositoryManager, HostedRepositoryClient, error) {
	if builder.GitManager != nil && builder.GitHubClient != nil {
		return builder.GitManager, builder.GitHubClient, nil
	}

	observer := builder.CommandEventsObserver
	if observer == nil && builder.humanReadableLoggingEnabled() {
		observer = ui.NewConsoleCommandEventLogger(logger)
	}

	shellExecutor, executorError := execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner(), observer)
	if executorError != nil {
		return nil, nil, fmt.Errorf(executorCreationErrorTemplateConstant, executorError)
	}

	gitManager := builder.GitManager
	if gitManager == nil {
		repositoryManager, managerError := gitrepo.NewRepositoryManager(shellExecutor)
		if managerError != nil {
			return nil, nil, fmt.Errorf(managerCreationErrorTemplateConstant, managerError)
		}
		gitManager = repositoryManager
	}

	githubClient := builder.GitHubClient
	if githubClient == nil {
		client, clientError := githubcli.NewClient(shellExecutor)
		if clientError != nil {
			return nil, nil, fmt.Errorf(clientCreationErrorTemplateConstant, clientError)
		}
		githubClient = client
	}

	return gitManager, githubClient, nil
}

func (builder *CommandBuilder) resolveRepositoryResolver() (RepositoryResolver, error) {
	if builder.Resolver != nil {
		return builder.Resolver, nil
	}

	targetResolver, resolverError := discovery.NewTargetResolver(discovery.NewFilesystemRepositoryDiscoverer())
	if resolverError != nil {
		return nil, fmt.Errorf(resolverCreationErrorTemplateConstant, resolverError)
	}
	return targetResolver, nil
}

func (builder *CommandBuilder) humanReadableLoggingEnabled() bool {
	if builder.HumanReadableLoggingProvider == nil {
		return false
	}
	return builder.HumanReadableLoggingProvider()
}
