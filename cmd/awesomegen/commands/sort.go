package commands

import (
	"context"
	"fmt"
)

// SortCmd rewrites the dataset in canonical category and name order.
// Running it on an already-sorted dataset changes nothing.
type SortCmd struct{}

func (s *SortCmd) Run(global *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	p, cleanup, err := buildPipeline(cfg, global, nil)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := p.Sort(context.Background()); err != nil {
		return err
	}
	fmt.Printf("Sorted %s\n", cfg.Dataset)
	return nil
}
