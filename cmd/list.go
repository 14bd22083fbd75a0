package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mytodos/internal/models"
)

var listFilter string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the stored tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := models.ParseFilter(listFilter)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		svc, kv, err := openTaskService(cfg)
		if err != nil {
			return err
		}
		defer kv.Close()

		tasks := svc.List(cmd.Context(), f)
		if len(tasks) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Looks like there are no tasks here.")
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tSTATUS\tPRIORITY\tDATE\tTEXT")
		for _, t := range tasks {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", t.ID, t.Status, t.Priority, t.Date, t.Text)
		}
		return tw.Flush()
	},
}

func init() {
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "all", "all, unfinished, in-progress or completed")
	rootCmd.AddCommand(listCmd)
}
