package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/localnerve/octofit-tracker/internal/config"
	"github.com/localnerve/octofit-tracker/internal/database"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

const (
	containerDatabase = "octofit_db"
	containerUser     = "octofit"
	containerPassword = "octofit"
)

// DBContainer is a throwaway database server and the config that reaches it
type DBContainer struct {
	Container testcontainers.Container
	Config    *config.Config
}

// Terminate stops and removes the container
func (c *DBContainer) Terminate(ctx context.Context) error {
	if c == nil || c.Container == nil {
		return nil
	}
	return c.Container.Terminate(ctx)
}

// StartDBContainer starts a mariadb or postgres server with its data directory on tmpfs.
// DB_IMAGE overrides the default image.
func StartDBContainer(ctx context.Context, dbType string) (*DBContainer, error) {
	var (
		image   string
		port    nat.Port
		env     map[string]string
		dataDir string
		waitFor wait.Strategy
		err     error
	)

	switch dbType {
	case "mysql", "mariadb":
		image = "mariadb:11.4"
		port, err = nat.NewPort("tcp", "3306")
		if err != nil {
			return nil, err
		}
		env = map[string]string{
			"MARIADB_ROOT_PASSWORD": containerPassword,
			"MARIADB_DATABASE":      containerDatabase,
			"MARIADB_USER":          containerUser,
			"MARIADB_PASSWORD":      containerPassword,
		}
		dataDir = "/var/lib/mysql"
		waitFor = wait.ForSQL(port, "mysql", func(host string, p nat.Port) string {
			return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", containerUser, containerPassword, host, p.Port(), containerDatabase)
		}).WithStartupTimeout(90 * time.Second)

	case "postgres", "postgresql":
		image = "postgres:17-alpine"
		port, err = nat.NewPort("tcp", "5432")
		if err != nil {
			return nil, err
		}
		env = map[string]string{
			"POSTGRES_DB":       containerDatabase,
			"POSTGRES_USER":     containerUser,
			"POSTGRES_PASSWORD": containerPassword,
		}
		dataDir = "/var/lib/postgresql/data"
		waitFor = wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort(port),
		).WithDeadline(90 * time.Second)

	default:
		return nil, fmt.Errorf("no container for database type: %s", dbType)
	}

	if override := os.Getenv("DB_IMAGE"); override != "" {
		image = override
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(port)},
			Env:          env,
			WaitingFor:   waitFor,
			HostConfigModifier: func(hc *container.HostConfig) {
				hc.Tmpfs = map[string]string{dataDir: "rw"}
			},
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", dbType, err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, err
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, err
	}

	return &DBContainer{
		Container: c,
		Config: &config.Config{
			DBType:            dbType,
			DBHost:            host,
			DBPort:            mapped.Port(),
			DBDatabase:        containerDatabase,
			DBUser:            containerUser,
			DBPassword:        containerPassword,
			DBConnectionLimit: 5,
		},
	}, nil
}

// NewContainerDB connects to a fresh container database with the schema migrated.
// Skipped in -short mode.
func NewContainerDB(t *testing.T, dbType string) (*gorm.DB, *config.Config) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping container test in short mode")
	}

	ctx := context.Background()
	dbc, err := StartDBContainer(ctx, dbType)
	if err != nil {
		t.Fatalf("Failed to start container: %v", err)
	}
	t.Cleanup(func() {
		if err := dbc.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	db, err := database.Connect(dbc.Config)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db, dbc.Config
}
