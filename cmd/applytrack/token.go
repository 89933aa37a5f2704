package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/applytrack/internal/config"
)

var tokenCmd = &cobra.Command{
	Use:   "hash-token <token>",
	Short: "Hash a bearer token for APPLYTRACK_TOKEN_HASH",
	Long:  `Print the bcrypt hash of a bearer token. Set the result as APPLYTRACK_TOKEN_HASH so the server can verify callers of the AI endpoints.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHashToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}

func runHashToken(_ *cobra.Command, args []string) error {
	hash, err := config.HashToken(args[0])
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}
