package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/markcheck/internal/app"
	"go.trai.ch/markcheck/internal/core/domain"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Validate markup and CSS files",
		Long: "Validate files, directories or glob patterns. Directories are walked for " +
			".html, .htm, .xhtml and .css files. Unchanged files are answered from the cache.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKindFlag(cmd)
			if err != nil {
				return err
			}
			jobs, _ := cmd.Flags().GetInt("jobs")
			watch, _ := cmd.Flags().GetBool("watch")

			return c.app.Check(cmd.Context(), args, app.CheckOptions{
				Kind:  kind,
				Jobs:  jobs,
				Watch: watch,
			})
		},
	}
	cmd.Flags().StringP("kind", "k", "auto", "Document kind: auto, markup or css")
	cmd.Flags().IntP("jobs", "j", 0, "Maximum concurrent validator requests (default: number of CPUs)")
	cmd.Flags().BoolP("watch", "w", false, "Re-check files whenever they are written")
	return cmd
}

// parseKindFlag reads --kind, mapping "auto" and the empty string to KindUnknown.
func parseKindFlag(cmd *cobra.Command) (domain.Kind, error) {
	name, _ := cmd.Flags().GetString("kind")
	if name == "" || name == "auto" {
		return domain.KindUnknown, nil
	}
	return domain.ParseKind(name)
}
