package testutil

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sso-jung/lolchat/internal/api"
	"github.com/sso-jung/lolchat/internal/catalog"
	"github.com/sso-jung/lolchat/internal/domain"
	"github.com/sso-jung/lolchat/internal/game"
	"github.com/sso-jung/lolchat/internal/repository"
	repoPostgres "github.com/sso-jung/lolchat/internal/repository/postgres"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB manages a testcontainers PostgreSQL instance
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// NewTestDB creates a new PostgreSQL testcontainer and returns a connection
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_lolchat"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	// Run migrations
	err = db.AutoMigrate(
		&domain.Player{},
		&domain.SkillOwned{},
		&domain.Inventory{},
	)
	if err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	testDB := &TestDB{
		Container: container,
		DB:        db,
		DSN:       dsn,
	}

	t.Cleanup(func() {
		testDB.Cleanup()
	})

	return testDB
}

// Cleanup terminates the container
func (tdb *TestDB) Cleanup() {
	if tdb.Container != nil {
		ctx := context.Background()
		tdb.Container.Terminate(ctx)
	}
}

// Truncate clears all tables for test isolation
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	tables := []string{
		"inventories",
		"skills_owned",
		"players",
	}

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			t.Logf("warning: failed to truncate %s: %v", table, err)
		}
	}
}

// TestCatalog returns a small fixed catalog for tests.
func TestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	champions := []domain.Champion{
		{ID: "AHRI", Name: "Ahri", Role: domain.RoleMage},
		{ID: "GAREN", Name: "Garen", Role: domain.RoleFighter},
	}
	skills := map[string][]domain.Skill{
		"AHRI": {
			{ID: "AHRI_Q", Name: "Orb of Deception"},
			{ID: "AHRI_W", Name: "Fox-Fire"},
		},
		"GAREN": {
			{ID: "GAREN_Q", Name: "Decisive Strike"},
		},
	}

	cat, err := catalog.New(champions, skills)
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}
	return cat
}

// TestServer holds all components for integration testing
type TestServer struct {
	Server  *httptest.Server
	DB      *TestDB
	Repos   *repository.Repositories
	Game    *game.Service
	Catalog *catalog.Catalog
}

// NewTestServer creates a complete test server with all dependencies
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	testDB := NewTestDB(t)
	cat := TestCatalog(t)

	repos := repoPostgres.NewRepositories(testDB.DB)
	gameService := game.NewService(repos, cat, 30*time.Second)
	router := api.NewRouter(gameService)

	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:  server,
		DB:      testDB,
		Repos:   repos,
		Game:    gameService,
		Catalog: cat,
	}

	t.Cleanup(func() {
		server.Close()
	})

	return ts
}

// BaseURL returns the test server's base URL
func (ts *TestServer) BaseURL() string {
	return ts.Server.URL
}
