package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/stuagano/awesome-claude-code/internal/history"
)

// HistoryCmd lists recent generation runs from the run ledger.
type HistoryCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum number of runs to show"`
}

func (h *HistoryCmd) Run(global *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return fmt.Errorf("history is not enabled in the configuration")
	}

	store, err := history.NewSQLiteStore(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(context.Background(), h.Limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tSTYLE\tOUTPUT\tRESOURCES\tDURATION")
	for _, run := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.Style, run.OutputPath, run.ResourceCount, run.Duration)
	}
	return tw.Flush()
}
