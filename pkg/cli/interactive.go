package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/jiraops/jira-issue-action/pkg/console"
	"github.com/jiraops/jira-issue-action/pkg/constants"
	"github.com/jiraops/jira-issue-action/pkg/inputs"
	"github.com/jiraops/jira-issue-action/pkg/logger"
	"github.com/jiraops/jira-issue-action/pkg/tty"
	"github.com/jiraops/jira-issue-action/pkg/validation"
)

var interactiveLog = logger.New("cli:interactive")

// promptMissing asks for every required input that is still empty after
// the environment and config file have been read. Optional inputs are
// never prompted for.
func promptMissing(set *inputs.Set) error {
	if !tty.IsStdinTerminal() {
		return &inputs.ConfigurationError{
			Message: "interactive mode requires a terminal",
			Details: "stdin is not a TTY",
		}
	}

	var fields []huh.Field
	if set.Server == "" {
		fields = append(fields, huh.NewInput().
			Title("Jira server URL").
			Description("For example: https://yourcompany.atlassian.net").
			Value(&set.Server).
			Validate(func(s string) error {
				_, err := validation.ValidateURL(s)
				return err
			}))
	}
	if set.Username == "" {
		fields = append(fields, huh.NewInput().
			Title("Jira username or email").
			Value(&set.Username).
			Validate(func(s string) error {
				_, err := validation.ValidateUsername(s, "jira_username")
				return err
			}))
	}
	if set.APIToken == "" {
		fields = append(fields, huh.NewInput().
			Title("Jira API token").
			EchoMode(huh.EchoModePassword).
			Value(&set.APIToken).
			Validate(func(s string) error {
				_, err := validation.ValidateToken(s)
				return err
			}))
	}
	if set.ProjectKey == "" {
		fields = append(fields, huh.NewInput().
			Title("Project key").
			Description("For example: OPS").
			Value(&set.ProjectKey).
			Validate(func(s string) error {
				_, err := validation.ValidateProjectKey(s)
				return err
			}))
	}
	if set.IssueType == "" {
		fields = append(fields, huh.NewSelect[string]().
			Title("Issue type").
			Options(huh.NewOptions(constants.ValidIssueTypes...)...).
			Value(&set.IssueType))
	}
	if set.Summary == "" {
		fields = append(fields, huh.NewInput().
			Title("Issue summary").
			Value(&set.Summary).
			Validate(func(s string) error {
				_, err := validation.ValidateSummary(s)
				return err
			}))
	}
	if set.Description == "" {
		fields = append(fields, huh.NewText().
			Title("Issue description").
			Value(&set.Description).
			Validate(func(s string) error {
				if s == "" {
					return errors.New("description must not be empty")
				}
				_, err := validation.ValidateDescription(s)
				return err
			}))
	}
	if set.Priority == "" {
		fields = append(fields, huh.NewSelect[string]().
			Title("Priority").
			Options(huh.NewOptions(constants.ValidPriorities...)...).
			Value(&set.Priority))
	}

	if len(fields) == 0 {
		interactiveLog.Print("all required inputs already set, nothing to prompt for")
		return nil
	}
	interactiveLog.Printf("prompting for %d missing input(s)", len(fields))

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithAccessible(console.IsAccessibleMode())
	if err := form.Run(); err != nil {
		return &inputs.ConfigurationError{
			Message: "interactive input aborted",
			Details: fmt.Sprintf("%v", err),
		}
	}
	return nil
}
