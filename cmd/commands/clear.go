package commands

import (
	"github.com/spf13/cobra"

	"github.com/opensphere/editorial/internal/cli"
	"github.com/opensphere/editorial/pkg/store"
)

var clearForce bool

// NewClearCommand creates the clear command
func NewClearCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved document",
		Long: `Delete the autosaved document from the data directory. The editor
will start from the welcome document on the next launch.

Examples:
  # Delete with a confirmation prompt
  opensphere clear

  # Delete without prompting
  opensphere clear --force`,
		Args: cobra.NoArgs,
		RunE: runClear,
	}

	cmd.Flags().BoolVarP(&clearForce, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(dataDir)
	if err != nil {
		return err
	}

	if !ctx.Store.Has(store.ContentKey) {
		cli.PrintInfo("nothing saved, nothing to clear")
		return nil
	}

	if !clearForce {
		ok, err := cli.Confirm("Delete the saved document?", false)
		if err != nil {
			return err
		}
		if !ok {
			cli.PrintInfo("cancelled")
			return nil
		}
	}

	if err := ctx.Store.Delete(store.ContentKey); err != nil {
		return err
	}
	cli.PrintSuccess("saved document deleted")
	return nil
}
