package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srlehn/iconresize/icon"
	"github.com/srlehn/iconresize/internal/consts"
)

func newResizersCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   resizersCmdStr,
		Short: `list resizers`,
		Long: `List the registered resizers.
The one used without --resizer is marked with "*".`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			c.run(c.resizers)
		},
	}
}

var resizersCmdStr = "resizers"

func (c *cli) resizers() error {
	selected := c.resizerFlag
	if len(selected) == 0 {
		selected = consts.ResizerDefaultName
	}
	for _, name := range icon.RegisteredResizerNames() {
		mark := ` `
		if name == selected {
			mark = `*`
		}
		fmt.Fprintf(c.stdout, "%s %s\n", mark, name)
	}
	return nil
}
