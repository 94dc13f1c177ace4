package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database schema and the default catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		magnitudes, err := st.AllMagnitudes(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to read catalog: %w", err)
		}
		resistances, err := st.AllResistances(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to read catalog: %w", err)
		}

		fmt.Printf("✅ Database initialized (%d magnitudes, %d resistances)\n", len(magnitudes), len(resistances))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
