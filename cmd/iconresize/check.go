package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   checkCmdStr,
		Short: `verify the generated icons`,
		Long: `Verify that every icon file exists, is a PNG image
and has the expected square size.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			c.run(c.check)
		},
	}
}

var checkCmdStr = "check"

func (c *cli) check() error {
	g, done, err := c.generator()
	if err != nil {
		return err
	}
	defer done()
	reports, err := g.Check()
	for _, r := range reports {
		fmt.Fprintln(c.stdout, r.String())
	}
	return err
}
