package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"repofiles.dev/repofiles/internal/repofiles"
)

// newCatCmd creates the cat command
func newCatCmd() *cobra.Command {
	var ref string

	cmd := &cobra.Command{
		Use:   "cat <path>",
		Short: "Print a file or directory listing from the repository",
		Long: `Print a file or directory listing from the repository.

A file path prints the decoded file content. A directory path prints one
entry per line with its type and size.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, owner, repo, err := repoContext(cmd)
			if err != nil {
				return err
			}

			content, err := repofiles.GetFileContents(cmd.Context(), client, owner, repo, args[0], ref)
			if err != nil {
				return err
			}

			if content.File != nil {
				fmt.Fprint(cmd.OutOrStdout(), content.File.Content)
				return nil
			}

			for _, entry := range content.Entries {
				line := fmt.Sprintf("%-6s %8d  %s", entry.Type, entry.Size, entry.Path)
				fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render(line))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ref, "ref", "", "Branch, tag, or commit to read from. Defaults to the default branch.")

	return cmd
}
