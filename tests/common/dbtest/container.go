//go:build e2e || integration

package dbtest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"scheme-console/internal/infra/db"
	"scheme-console/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "test"
	testPassword = "testpass"
	pgPort       = nat.Port("5432/tcp")
	redisPort    = nat.Port("6379/tcp")
)

// sharedContainer is started at most once per test process.
type sharedContainer struct {
	once      sync.Once
	container testcontainers.Container
	err       error
	timeout   time.Duration
	request   testcontainers.ContainerRequest
}

var postgresContainer = &sharedContainer{
	timeout: 180 * time.Second,
	request: testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{string(pgPort)},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       "postgres",
		},
		// PostgreSQLデータをRAMに載せてI/O削減
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
			"-c", "max_connections=200",
		},
		WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
			return adminDSN(host, port)
		}).WithStartupTimeout(60 * time.Second),
		Labels: map[string]string{"purpose": "scheme-console-tests"},
	},
}

var redisContainer = &sharedContainer{
	timeout: 120 * time.Second,
	request: testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{string(redisPort)},
		WaitingFor:   wait.ForListeningPort(redisPort).WithStartupTimeout(60 * time.Second),
		Labels:       map[string]string{"purpose": "scheme-console-tests"},
	},
}

// endpoint starts the container if needed and returns its mapped host and port.
func (s *sharedContainer) endpoint(t *testing.T, port nat.Port) (string, nat.Port) {
	t.Helper()

	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		s.container, s.err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: s.request,
			Started:          true,
		})
	})
	require.NoError(t, s.err, "%sコンテナの起動に失敗", s.request.Image)

	ctx := context.Background()
	host, err := s.container.Host(ctx)
	require.NoError(t, err, "コンテナホストの取得に失敗")
	mapped, err := s.container.MappedPort(ctx, port)
	require.NoError(t, err, "マップされたポートの取得に失敗")
	return host, mapped
}

func adminDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", testUser, testPassword, host, port.Port())
}

// ------------------------------------------------------------
// PostgreSQLコンテナを起動し、プロセス専用のDBを作成してマイグレーションを適用
// ------------------------------------------------------------
func PreparePostgres(t *testing.T) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()

	host, port := postgresContainer.endpoint(t, pgPort)
	dsn := adminDSN(host, port)
	dbName := "testdb_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	require.NoError(t, adminExec(dsn, 5, "CREATE DATABASE "+dbName), "テスト用データベースの作成に失敗")
	t.Cleanup(func() {
		if err := adminExec(dsn, 1, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "Asia/Kolkata",
		MaxConns: 8,
	}
	require.NoError(t, db.Migrate(dbConfig), "データベースマイグレーションに失敗")

	pool, cleanup, err := db.Connect(dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(cleanup)

	return pool, dbConfig
}

// adminExec runs one statement on the maintenance database, retrying while
// the freshly started server still refuses concurrent CREATE DATABASE.
func adminExec(dsn string, attempts int, stmt string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return err
	}
	defer pool.Close()

	for i := range attempts {
		if i > 0 {
			backoff := min(time.Duration(i)*500*time.Millisecond, 3*time.Second)
			slog.Warn("管理SQLを再試行中", "attempt", i+1, "error", err.Error(), "retry_wait", backoff)
			time.Sleep(backoff)
		}
		if _, err = pool.Exec(ctx, stmt); err == nil {
			return nil
		}
	}
	return err
}

// ------------------------------------------------------------
// Redisコンテナを一度だけ起動し、接続設定を返す
// ------------------------------------------------------------
func PrepareRedis(t *testing.T) config.RedisConfig {
	t.Helper()

	host, port := redisContainer.endpoint(t, redisPort)
	return config.RedisConfig{Addr: host + ":" + port.Port()}
}

// truncates every scheme table
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE schemes, scheme_entries, scheme_region_overrides RESTART IDENTITY CASCADE")
	return err
}

// satisfied by *pgxpool.Pool and pgx.Tx
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CountRows(t *testing.T, db Querier, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}
