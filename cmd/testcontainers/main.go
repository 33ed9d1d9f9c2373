package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/localnerve/octofit-tracker/internal/config"
	"github.com/localnerve/octofit-tracker/internal/database"
	"github.com/localnerve/octofit-tracker/internal/logging"
	"github.com/localnerve/octofit-tracker/internal/services"
	"github.com/localnerve/octofit-tracker/internal/testutil"
	"github.com/sirupsen/logrus"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	var seed bool
	flag.BoolVar(&seed, "seed", false, "load the superhero dataset once the database is up")
	flag.Parse()

	usage := `
Run a throwaway octofit database container and print the DB_* environment that reaches it.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH] [-seed]

ENV_FILE_PATH: path to the .env file; DB_TYPE (mariadb or postgres) and DB_IMAGE are read from it

example
  testcontainers -f /path/to/something/.env -seed
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if err := config.LoadEnvFile(envFilename); err != nil {
		logrus.Fatalf("Failed to load environment variables: %v", err)
	}
	logging.Setup(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	dbType := os.Getenv("DB_TYPE")
	if dbType == "" || config.IsSQLite(dbType) {
		dbType = "mariadb"
	}

	ctx := context.Background()
	dbc, err := testutil.StartDBContainer(ctx, dbType)
	if err != nil {
		logrus.Fatalf("Failed to create test container: %v", err)
	}

	cfg := dbc.Config
	if seed {
		if err := seedContainer(cfg); err != nil {
			_ = dbc.Terminate(ctx)
			logrus.Fatalf("Failed to seed: %v", err)
		}
	}

	fmt.Printf("DB_TYPE=%s\nDB_HOST=%s\nDB_PORT=%s\nDB_DATABASE=%s\nDB_USER=%s\nDB_PASSWORD=%s\n",
		cfg.DBType, cfg.DBHost, cfg.DBPort, cfg.DBDatabase, cfg.DBUser, cfg.DBPassword)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	sig := <-sigs
	logrus.Infof("Received signal: %v, terminating test container...", sig)
	if err := dbc.Terminate(ctx); err != nil {
		logrus.Errorf("Failed to terminate container: %v", err)
	}
}

func seedContainer(cfg *config.Config) error {
	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	counts, err := services.Reset(db)
	if err != nil {
		return err
	}
	logrus.WithField("counts", counts).Info("Seeded container database")
	return nil
}
