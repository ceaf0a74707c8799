package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moonbite/onboard/internal/catalog"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the training modules",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Default()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		for i, m := range cat.Modules() {
			fmt.Printf("%d. %s (%s)\n", i+1, m.Title, m.ID)
			fmt.Printf("   %s\n", m.Description)
			fmt.Printf("   %d questions, pass mark %d%%, %d retries\n",
				len(m.Quiz.Questions), m.Quiz.PassingScore, m.Quiz.MaxAttempts)
		}
		return nil
	},
}
