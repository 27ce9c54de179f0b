package main

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "blogsphere",
		Short:         "Blog comments and notifications API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: heredoc.Doc(`
			$ blogsphere serve
			$ blogsphere serve --migrate
			$ blogsphere migrate up
		`),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := godotenv.Load(); err != nil {
				fmt.Fprintln(os.Stderr, "No .env file found, using environment variables")
			}
		},
	}

	cmd.AddCommand(
		serveCmd(),
		migrateCmd(),
	)

	return cmd
}
