package execshell

import (
	"fmt"
	"strings"
)

const (
	gitExecutableNameConstant             = "git"
	githubCLIExecutableNameConstant       = "gh"
	commandFailedErrorTemplateConstant    = "%s exited with code %d%s"
	standardErrorSuffixTemplateConstant   = ": %s"
	commandArgumentsJoinSeparatorConstant = " "
)

// CommandName identifies a supported executable.
type CommandName string

// Supported executables.
const (
	CommandGit       CommandName = CommandName(gitExecutableNameConstant)
	CommandGitHubCLI CommandName = CommandName(githubCLIExecutableNameConstant)
)

// CommandDetails describes a single invocation of an external tool.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
}

// ShellCommand combines an executable name with invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable outputs of an executed command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandFailedError reports a command that completed with a non-zero exit code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the failed command including trimmed standard error output.
func (failedError CommandFailedError) Error() string {
	commandLabel := strings.Join(append([]string{string(failedError.Command.Name)}, failedError.Command.Details.Arguments...), commandArgumentsJoinSeparatorConstant)
	standardErrorSuffix := ""
	trimmedStandardError := strings.TrimSpace(failedError.Result.StandardError)
	if len(trimmedStandardError) > 0 {
		standardErrorSuffix = fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
	}
	return fmt.Sprintf(commandFailedErrorTemplateConstant, commandLabel, failedError.Result.ExitCode, standardErrorSuffix)
}
