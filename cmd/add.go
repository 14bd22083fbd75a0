package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mytodos/internal/models"
)

var (
	addDate     string
	addPriority string
)

var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Append a task",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		priority, err := models.ParsePriority(addPriority)
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

		task, err := svc.Add(cmd.Context(), strings.Join(args, " "), addDate, priority)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "added %d\n", task.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "due date, defaults to today")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "medium", "low, medium or high")
	rootCmd.AddCommand(addCmd)
}
