package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockplan/renderer"
	"github.com/google/subcommands"
)

type chartCmd struct {
	projection
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw the projection as a PNG chart" }
func (*chartCmd) Usage() string {
	return `esp chart [-o <file.png>] [-growth <rate>] [-from <year>] [-to <year>]

  Draws the projected gross value, net value and outstanding loans.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.projection.SetFlags(f)
	f.StringVar(&c.output, "o", "projection.png", "Output PNG file")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	growth, from, to, err := c.resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := renderer.ProjectionChart(out, renderer.NewProjection(p, growth, from, to).Years); err != nil {
		fmt.Fprintf(os.Stderr, "Error drawing chart: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Projection chart written to %s\n", c.output)
	return subcommands.ExitSuccess
}
