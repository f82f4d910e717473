package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/todoboard/core/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "todoboard",
		Short: "TodoBoard web server",
		Long:  `TodoBoard is a session-authenticated multi-user todo list with tag labels.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewDBCommand())
	rootCmd.AddCommand(commands.NewUserCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
