package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"aging_curve/db"
	"aging_curve/models"
)

// 集成测试：真实 PostgreSQL（postgres:16-alpine）
//   GO_TEST_INTEGRATION=1 go test ./repository -run Postgres -v -count=1

func startPostgres(t *testing.T) *ResultRepository {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "aging"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/aging?sslmode=disable", host, port.Port())

	conn, err := db.Open(db.DriverPostgres, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, db.Migrate(ctx, conn, db.DriverPostgres))

	return NewResultRepository(conn, db.DriverPostgres).
		WithClock(tickingClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)))
}

func TestPostgresRegenerationCycle(t *testing.T) {
	repo := startPostgres(t)
	ctx := context.Background()
	key := models.BuildProfileKey(sampleProfile)

	first, err := repo.Create(ctx, sampleProfile, sampleResult("first"))
	require.NoError(t, err)

	rec, err := repo.FindByProfile(ctx, key)
	require.NoError(t, err)
	require.Equal(t, first, rec.ID)

	require.NoError(t, repo.SoftDelete(ctx, first))
	second, err := repo.Create(ctx, sampleProfile, sampleResult("second"))
	require.NoError(t, err)

	rec, err = repo.FindByProfile(ctx, key)
	require.NoError(t, err)
	require.Equal(t, second, rec.ID)
	require.Equal(t, "second", rec.ResultData.AnalysisSummary.Theme)

	old, err := repo.GetByID(ctx, first)
	require.NoError(t, err)
	require.Equal(t, models.StatusDeleted, old.Status)
	require.NotNil(t, old.DeletedAt)

	_, err = repo.GetByID(ctx, "missing")
	require.ErrorIs(t, err, ErrResultNotFound)
}
