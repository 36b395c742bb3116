package cli

import (
	"github.com/spf13/cobra"

	"github.com/jiraops/jira-issue-action/pkg/logger"
)

var validateLog = logger.New("cli:validate_command")

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	var opts pipelineOptions

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate inputs without contacting the Jira server",
		Long: `Run the full input pipeline and report the first problem found, without
any network traffic. Equivalent to:

  jira-issue-action create --dry-run

Examples:
  jira-issue-action validate                     # Inputs from the environment
  jira-issue-action validate --config issue.yml  # Fill gaps from a YAML file
  jira-issue-action validate --log-level DEBUG   # Show the resolved configuration`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			validateLog.Printf("running validate: config=%s interactive=%v", opts.configPath, opts.interactive)

			cfg, set, err := resolveConfig(opts)
			if err != nil {
				return err
			}
			printer := newPrinter(opts, set)
			printer.Debugf("%s", configSummary(cfg))
			printer.Successf("All inputs are valid")
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML file providing inputs not set in the environment")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Prompt for missing required inputs")
	cmd.Flags().StringVarP(&opts.logLevel, "log-level", "l", "", "Log level (DEBUG, INFO, WARNING, ERROR)")
	return cmd
}
