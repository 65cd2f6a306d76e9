package commands

import (
	"context"
	"fmt"

	"github.com/stuagano/awesome-claude-code/internal/generator"
	"github.com/stuagano/awesome-claude-code/internal/pipeline"
)

// GenerateCmd renders one style to its default or an explicit path.
type GenerateCmd struct {
	Style    string `short:"s" default:"awesome" help:"Style to render (awesome, classic, extra, flat)"`
	Output   string `short:"o" help:"Output path relative to the output directory (default per style)"`
	Category string `help:"Flat style only: category slug to include, or 'all'" default:"all"`
	Sort     string `help:"Flat style only: sort mode (az, za, category)" default:"az"`
}

func (g *GenerateCmd) Run(global *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	p, cleanup, err := buildPipeline(cfg, global, nil)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()
	var result *pipeline.StyleResult
	if g.Style == generator.StyleFlat {
		result, err = p.GenerateFlat(ctx, g.Category, g.Sort, g.Output)
	} else {
		result, err = p.GenerateStyle(ctx, g.Style, g.Output)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d resources)\n", result.OutputPath, result.ResourceCount)
	for _, warning := range result.Warnings {
		fmt.Printf("  warning: %s\n", warning)
	}
	return nil
}

// GenerateAllCmd renders every primary style, writing the configured
// root style to README.md.
type GenerateAllCmd struct{}

func (g *GenerateAllCmd) Run(global *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	p, cleanup, err := buildPipeline(cfg, global, nil)
	if err != nil {
		return err
	}
	defer cleanup()

	results, err := p.GenerateAll(context.Background())
	for _, result := range results {
		fmt.Printf("Wrote %s (%d resources, style %s)\n",
			result.OutputPath, result.ResourceCount, result.Style)
	}
	return err
}
