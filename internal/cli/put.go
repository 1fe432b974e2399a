package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"repofiles.dev/repofiles/internal/repofiles"
)

// newPutCmd creates the put command
func newPutCmd() *cobra.Command {
	var (
		branch   string
		message  string
		content  string
		fromFile string
		sha      string
	)

	cmd := &cobra.Command{
		Use:   "put <path>",
		Short: "Create or update a single file on a branch",
		Long: `Create or update a single file on a branch as one commit.

If the file already exists and no --sha is given, its current sha is
discovered with an extra read before the write.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if content == "" && fromFile == "" {
				return fmt.Errorf("either --content or --from-file is required")
			}
			if fromFile != "" {
				data, err := os.ReadFile(fromFile)
				if err != nil {
					return err
				}
				content = string(data)
			}

			client, owner, repo, err := repoContext(cmd)
			if err != nil {
				return err
			}

			opts := repofiles.UpdateFileOptions{
				Path:    args[0],
				Content: content,
				Message: message,
				Branch:  branch,
			}
			if sha != "" {
				opts.SHA = &sha
			}

			result, err := repofiles.CreateOrUpdateFile(cmd.Context(), client, owner, repo, opts)
			if err != nil {
				return err
			}

			line := fmt.Sprintf("committed %s as %s", args[0], result.Commit.SHA)
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(line))
			return nil
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "main", "Branch to commit to.")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message.")
	cmd.Flags().StringVar(&content, "content", "", "Inline file content.")
	cmd.Flags().StringVar(&fromFile, "from-file", "", "Read content from a local file.")
	cmd.Flags().StringVar(&sha, "sha", "", "Known blob sha of the file being replaced.")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
