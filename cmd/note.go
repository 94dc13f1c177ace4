package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/misterclayt0n/cadence/internal/models"
	"github.com/spf13/cobra"
)

var noteText string

var noteCmd = &cobra.Command{
	Use:   "note [YYYY-MM-DD]",
	Short: "Set the note of a day (today by default); an empty note removes it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		loc, err := location()
		if err != nil {
			return err
		}
		day, err := parseDayArg(args, time.Now(), loc)
		if err != nil {
			return err
		}

		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		if strings.TrimSpace(noteText) == "" {
			if err := st.DeleteNote(ctx, day); err != nil {
				return fmt.Errorf("failed to remove note: %w", err)
			}
			fmt.Printf("✅ Note of %s removed\n", day)
			return nil
		}

		if err := st.UpsertNote(ctx, models.ExerciseNote{Day: day, Note: noteText}); err != nil {
			return fmt.Errorf("failed to save note: %w", err)
		}
		fmt.Printf("✅ Note of %s saved\n", day)
		return nil
	},
}

func init() {
	noteCmd.Flags().StringVarP(&noteText, "note", "n", "", "Note text")
	noteCmd.MarkFlagRequired("note")
	rootCmd.AddCommand(noteCmd)
}
