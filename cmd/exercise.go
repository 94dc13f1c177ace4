package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/misterclayt0n/cadence/internal/models"
	"github.com/misterclayt0n/cadence/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exerciseDesc        string
	exerciseMagnitude   string
	exerciseResistances []string
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Manage the exercise catalog",
}

var addExerciseCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create or update an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		magnitudes, err := st.AllMagnitudes(ctx)
		if err != nil {
			return fmt.Errorf("failed to read magnitudes: %w", err)
		}
		var magnitudeID int64
		for _, m := range magnitudes {
			if strings.EqualFold(m.Name, exerciseMagnitude) || strings.EqualFold(m.Unit, exerciseMagnitude) {
				magnitudeID = m.ID
				break
			}
		}
		if magnitudeID == 0 {
			return fmt.Errorf("unknown magnitude %q", exerciseMagnitude)
		}

		resistances, err := st.AllResistances(ctx)
		if err != nil {
			return fmt.Errorf("failed to read resistances: %w", err)
		}
		var resistanceIDs []int64
		for _, name := range exerciseResistances {
			r := findResistance(resistances, name)
			if r == nil {
				return fmt.Errorf("unknown resistance %q", name)
			}
			resistanceIDs = append(resistanceIDs, r.ID)
		}

		ex := models.Exercise{
			Name:        strings.TrimSpace(args[0]),
			Description: exerciseDesc,
			MagnitudeID: magnitudeID,
		}
		if ex.Name == "" {
			return fmt.Errorf("exercise name cannot be empty")
		}

		id, err := st.CreateExercise(ctx, ex, resistanceIDs)
		if err != nil {
			return fmt.Errorf("failed to create exercise: %w", err)
		}

		fmt.Printf("✅ Saved exercise #%d: %s\n", id, ex.Name)
		return nil
	},
}

var listExercisesCmd = &cobra.Command{
	Use:   "list",
	Short: "List the exercise catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		exercises, err := st.AllExercises(ctx)
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}
		if len(exercises) == 0 {
			fmt.Println("No exercises yet. Add one with `cadence exercise add` or `cadence import-catalog`.")
			return nil
		}

		magnitudes, err := st.AllMagnitudes(ctx)
		if err != nil {
			return fmt.Errorf("failed to read magnitudes: %w", err)
		}
		units := make(map[int64]string, len(magnitudes))
		for _, m := range magnitudes {
			units[m.ID] = m.Unit
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		for _, ex := range exercises {
			resistances, err := st.ResistancesForExercise(ctx, ex.ID)
			if err != nil {
				return fmt.Errorf("failed to read resistances of %s: %w", ex.Name, err)
			}
			names := make([]string, 0, len(resistances))
			for _, r := range resistances {
				names = append(names, r.Name)
			}

			fmt.Printf("%3d  %s (%s)", ex.ID, cyan(ex.Name), units[ex.MagnitudeID])
			if len(names) > 0 {
				fmt.Printf("  %s", yellow(strings.Join(names, ", ")))
			}
			fmt.Println()
			if ex.Description != "" {
				fmt.Printf("     %s\n", ex.Description)
			}
		}
		return nil
	},
}

var deleteExerciseCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete an exercise with its logs and schedules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		ex, err := st.GetExerciseByName(ctx, args[0])
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("exercise %q not found", args[0])
		}
		if err != nil {
			return err
		}

		if err := st.DeleteExercise(ctx, ex.ID); err != nil {
			return fmt.Errorf("failed to delete exercise: %w", err)
		}

		fmt.Printf("✅ Deleted exercise %s\n", ex.Name)
		return nil
	},
}

var importCatalogCmd = &cobra.Command{
	Use:   "import-catalog [file]",
	Short: "Import magnitudes, resistances and exercises from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var catalog models.CatalogImport
		if err := toml.Unmarshal(data, &catalog); err != nil {
			return fmt.Errorf("invalid TOML format: %w", err)
		}

		ctx := cmd.Context()
		st, err := openStorage(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ImportCatalog(ctx, catalog); err != nil {
			return fmt.Errorf("failed to import catalog: %w", err)
		}

		fmt.Printf("✅ Imported %d magnitudes, %d resistances and %d exercises\n",
			len(catalog.Magnitudes), len(catalog.Resistances), len(catalog.Exercises))
		return nil
	},
}

func findResistance(resistances []models.Resistance, name string) *models.Resistance {
	for i := range resistances {
		if strings.EqualFold(resistances[i].Name, strings.TrimSpace(name)) {
			return &resistances[i]
		}
	}
	return nil
}

func init() {
	addExerciseCmd.Flags().StringVarP(&exerciseDesc, "description", "d", "", "Exercise description")
	addExerciseCmd.Flags().StringVarP(&exerciseMagnitude, "magnitude", "m", "Repetitions", "Magnitude name or unit (Repetitions, Distance, Duration, ...)")
	addExerciseCmd.Flags().StringSliceVarP(&exerciseResistances, "resistance", "r", nil, "Resistance the exercise can be logged with (repeatable)")

	exerciseCmd.AddCommand(addExerciseCmd)
	exerciseCmd.AddCommand(listExercisesCmd)
	exerciseCmd.AddCommand(deleteExerciseCmd)

	rootCmd.AddCommand(exerciseCmd)
	rootCmd.AddCommand(importCatalogCmd)
}
