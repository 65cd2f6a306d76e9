package commands

import (
	"context"
	"fmt"
	"os"
)

// ValidateCmd checks the dataset against its schema and the category
// taxonomy, and lints any rendered documents passed as arguments.
type ValidateCmd struct {
	Documents []string `arg:"" optional:"" help:"Rendered documents to lint"`
}

func (v *ValidateCmd) Run(global *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	p, cleanup, err := buildPipeline(cfg, global, nil)
	if err != nil {
		return err
	}
	defer cleanup()

	report, err := p.Validate(context.Background(), v.Documents...)
	if err != nil {
		return err
	}

	for _, problem := range report.DatasetProblems {
		fmt.Fprintf(os.Stderr, "dataset: %s\n", problem)
	}
	if report.LintResult != nil {
		for _, issue := range report.LintResult.Issues {
			if issue.Line > 0 {
				fmt.Fprintf(os.Stderr, "%s:%d: [%s] %s: %s\n",
					issue.Document, issue.Line, issue.Severity, issue.Rule, issue.Message)
			} else {
				fmt.Fprintf(os.Stderr, "%s: [%s] %s: %s\n",
					issue.Document, issue.Severity, issue.Rule, issue.Message)
			}
		}
	}

	if !report.OK() {
		return fmt.Errorf("validation failed")
	}
	fmt.Println("Validation passed")
	return nil
}
