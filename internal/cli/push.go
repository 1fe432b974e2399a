package cli

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"repofiles.dev/repofiles/internal/repofiles"
)

// newPushCmd creates the push command
func newPushCmd() *cobra.Command {
	var (
		branch  string
		message string
		prefix  string
		yes     bool
	)

	cmd := &cobra.Command{
		Use:   "push <file>...",
		Short: "Push local files to a branch as one commit",
		Long: `Push local files to a branch as one commit.

All files are read locally before any API call. The branch reference is
force-updated: a commit pushed to the branch by someone else while this
command runs will be discarded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, owner, repo, err := repoContext(cmd)
			if err != nil {
				return err
			}

			if !yes && isInteractive() {
				confirmed := false
				prompt := &survey.Confirm{
					Message: fmt.Sprintf("Force-update %s/%s %s with %d file(s)?", owner, repo, branch, len(args)),
				}
				if err := survey.AskOne(prompt, &confirmed); err != nil {
					return err
				}
				if !confirmed {
					return nil
				}
			}

			files := make([]repofiles.FilePath, 0, len(args))
			for _, arg := range args {
				files = append(files, repofiles.FilePath{
					Path:     path.Join(prefix, filepath.ToSlash(filepath.Clean(arg))),
					Filepath: arg,
				})
			}

			ref, err := repofiles.PushFilesFromPath(cmd.Context(), client, owner, repo, branch, files, message)
			if err != nil {
				return err
			}

			line := fmt.Sprintf("pushed %d file(s), %s is now %s", len(files), ref.Ref, ref.SHA)
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(line))
			return nil
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "main", "Branch to push to.")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message.")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Repository directory to place the files under.")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt.")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
