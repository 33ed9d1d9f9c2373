// main.go
//
// OctoFit Tracker data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of octofit-tracker.
// octofit-tracker is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// octofit-tracker is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with octofit-tracker.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/localnerve/octofit-tracker/internal/config"
	"github.com/localnerve/octofit-tracker/internal/database"
	"github.com/localnerve/octofit-tracker/internal/logging"
	"github.com/localnerve/octofit-tracker/internal/services"
	"github.com/spf13/cobra"
)

var (
	envFilename string
	fixturePath string
	migrate     bool
	jsonOutput  bool
)

var rootCmd = &cobra.Command{
	Use:   "populate",
	Short: "Populate the octofit database with test data",
	Long: `populate clears every collection and loads the superhero demo dataset.

The load is not atomic: if a step fails the command exits non-zero and the
database keeps whatever was written before the failure. Run it again to reset.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&envFilename, "env-file", "f", "", "path to the .env file")
	rootCmd.Flags().StringVar(&fixturePath, "fixture", "", "load this fixture file instead of the built-in heroes")
	rootCmd.Flags().BoolVar(&migrate, "migrate", true, "run auto-migrations before loading")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the final counts as JSON")
}

func run(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnvFile(envFilename); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if migrate {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	var counts services.Counts
	if fixturePath != "" {
		raw, err := os.ReadFile(fixturePath)
		if err != nil {
			return err
		}
		fx, err := services.ParseFixture(raw)
		if err != nil {
			return err
		}
		counts, err = services.ResetWith(db, fx)
		if err != nil {
			return err
		}
	} else {
		counts, err = services.Reset(db)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(counts)
	}
	fmt.Fprintf(out, "Successfully populated %s with superhero test data!\n", cfg.DBDatabase)
	fmt.Fprintf(out, "  Users: %d\n", counts.Users)
	fmt.Fprintf(out, "  Teams: %d\n", counts.Teams)
	fmt.Fprintf(out, "  Activities: %d\n", counts.Activities)
	fmt.Fprintf(out, "  Leaderboard: %d\n", counts.Leaderboard)
	fmt.Fprintf(out, "  Workouts: %d\n", counts.Workouts)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
