// Package cli implements the command-line subcommands of the catalog binary.
package cli

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mhorky/librarium/internal/config"
	"github.com/mhorky/librarium/internal/database"
	"github.com/mhorky/librarium/internal/demo"
)

// SeedCommand populates a catalog database with sample authors, genres
// and books. Existing catalog rows are replaced.
type SeedCommand struct {
	DatabasePath string
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the catalog database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Replace the catalog contents with sample authors, genres and books.\n")
		fmt.Fprintf(os.Stderr, "The database file is created if it does not exist.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := demo.Seed(db); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}

	log.Printf("Seeded sample catalog into %s", cmd.DatabasePath)
	return nil
}
