package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/oppia/explord/internal/checkpoint"
)

var checkpointsCmd = &cobra.Command{
	Use:   "checkpoints",
	Short: "Inspect and manage saved progress",
}

var checkpointsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved checkpoints for the learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		learnerID, _ := cmd.Flags().GetString("learner")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctrl := checkpoint.NewController(st.CheckpointRepo())
		recs, err := ctrl.List(ctx, learnerID)
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Println("No saved progress.")
			return nil
		}

		for _, rec := range recs {
			lastPlayed := time.UnixMilli(rec.LastPlayedMs).Format("2006-01-02 15:04")
			fmt.Printf("%s  v%d  %q  last played %s\n", rec.LessonID, rec.LessonVersion, rec.LessonTitle, lastPlayed)
		}
		return nil
	},
}

var checkpointsDeleteCmd = &cobra.Command{
	Use:   "delete <lesson-id>",
	Short: "Delete the learner's checkpoint for a lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		learnerID, _ := cmd.Flags().GetString("learner")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctrl := checkpoint.NewController(st.CheckpointRepo())
		if err := ctrl.Delete(ctx, learnerID, args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	},
}

var checkpointsOldestCmd = &cobra.Command{
	Use:   "oldest",
	Short: "Show the longest-untouched saved lesson",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		learnerID, _ := cmd.Flags().GetString("learner")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctrl := checkpoint.NewController(st.CheckpointRepo())
		oldest, err := ctrl.RetrieveOldest(ctx, learnerID)
		if err != nil {
			if isCheckpointNotFound(err) {
				fmt.Println("No saved progress.")
				return nil
			}
			return err
		}
		fmt.Printf("%s  v%d  %q\n", oldest.LessonID, oldest.LessonVersion, oldest.LessonTitle)
		return nil
	},
}

func init() {
	checkpointsCmd.AddCommand(checkpointsListCmd)
	checkpointsCmd.AddCommand(checkpointsDeleteCmd)
	checkpointsCmd.AddCommand(checkpointsOldestCmd)
}
