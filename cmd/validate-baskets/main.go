package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// CLI-приложение для офлайн-проверки корзин перед оформлением.
func main() {
	rootCmd := &cobra.Command{
		Use:   "validate-baskets",
		Short: "Offline checkout validation for basket snapshots",
		Long: `validate-baskets reads basket snapshots (.json or .jsonl) and prints
one JSON report per basket: status, reason, enable_checkout and inventory matrix.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(runCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
