package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"meeze/backend/internal/db"
	"meeze/backend/internal/kv"
)

var (
	dbPath      string
	planContext string
)

var rootCmd = &cobra.Command{
	Use:   "meezectl",
	Short: "meezectl – inspect a local meeze database",
	Long: `meezectl reads the meeze backend's sqlite database directly and prints
plain-text reports: today's plan, timer status, and habit streaks.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "./data/meeze.db", "Path to the meeze sqlite database")
	rootCmd.PersistentFlags().StringVar(&planContext, "context", "work", "Context to report on: work or home")

	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(timersCmd)
	rootCmd.AddCommand(habitsCmd)
}

func openStore() (*kv.Store, func(), error) {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return nil, nil, err
	}
	if err := db.EnsureSchema(database); err != nil {
		_ = database.Close()
		return nil, nil, err
	}
	closeFn := func() { _ = database.Close() }
	return kv.NewStore(database), closeFn, nil
}
