package cli

import (
	"github.com/spf13/cobra"

	"github.com/jiraops/jira-issue-action/pkg/gha"
	"github.com/jiraops/jira-issue-action/pkg/jira"
	"github.com/jiraops/jira-issue-action/pkg/logger"
)

var createLog = logger.New("cli:create_command")

// NewCreateCommand creates the create command
func NewCreateCommand() *cobra.Command {
	var opts pipelineOptions
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Validate inputs and create a Jira issue",
		Long: `Validate all configured inputs, connect to the Jira server, and create
an issue. The issue key and browse URL are written to GITHUB_OUTPUT and a
summary line to GITHUB_STEP_SUMMARY when those files are available.

Examples:
  jira-issue-action create                       # Inputs from the environment
  jira-issue-action create --config issue.yml    # Fill gaps from a YAML file
  jira-issue-action create --interactive         # Prompt for missing inputs
  jira-issue-action create --dry-run             # Validate and stop`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			createLog.Printf("running create: config=%s interactive=%v dry-run=%v", opts.configPath, opts.interactive, dryRun)

			cfg, set, err := resolveConfig(opts)
			if err != nil {
				return err
			}
			printer := newPrinter(opts, set)
			printer.Debugf("%s", configSummary(cfg))

			if dryRun {
				printer.Successf("All inputs are valid, dry run requested, no issue created")
				return nil
			}

			ctx := cmd.Context()
			client, err := jira.NewClient(cfg)
			if err != nil {
				return err
			}
			if err := client.Connect(ctx); err != nil {
				return err
			}
			printer.Infof("Connected to %s", cfg.Server)

			issueKey, err := jira.NewOrchestrator(client, printer).Submit(ctx, cfg)
			if err != nil {
				return err
			}
			issueURL := client.IssueURL(issueKey)
			printer.Successf("Issue available at %s", issueURL)

			if err := gha.SetOutput("issue_key", issueKey); err != nil {
				printer.Warnf("skipping issue_key output: %v", err)
			}
			if err := gha.SetOutput("issue_url", issueURL); err != nil {
				printer.Warnf("skipping issue_url output: %v", err)
			}
			if err := gha.AppendStepSummary(issueKey, issueURL); err != nil {
				printer.Warnf("skipping step summary: %v", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML file providing inputs not set in the environment")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Prompt for missing required inputs")
	cmd.Flags().StringVarP(&opts.logLevel, "log-level", "l", "", "Log level (DEBUG, INFO, WARNING, ERROR)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate inputs and exit without creating an issue")
	return cmd
}
