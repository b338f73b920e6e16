//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"scheme-console/cmd/bootstrap"
	"scheme-console/cmd/bootstrap/components"
	"scheme-console/internal/infra/cache"
	"scheme-console/internal/pkg/config"
	"scheme-console/internal/pkg/metrics"
	"scheme-console/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// Env is one running console backed by Postgres and the Redis sequencer.
type Env struct {
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Config config.Config
}

// ------------------------------------------------------------
// 各テストプロセス用にセットアップ
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) Env {
	gin.SetMode(gin.TestMode)

	pool, dbConfig := dbtest.PreparePostgres(t)
	redisConfig := dbtest.PrepareRedis(t)

	cfg := config.NewTestConfig()
	cfg.Store.Driver = config.StoreDriverPostgres
	cfg.Store.MigrateOnBoot = false
	cfg.DB = dbConfig
	cfg.Redis = redisConfig
	cfg.Scheme.Sequencer = config.SequencerRedis

	client, closeRedis, err := cache.Connect(redisConfig)
	require.NoError(t, err, "Redisへの接続に失敗")
	t.Cleanup(closeRedis)

	router, app := buildE2EApp(t, cfg)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	slog.Info("E2E環境の準備が完了しました", "database", dbConfig.DBName, "redis", redisConfig.Addr)
	return Env{Router: router, DB: pool, Redis: client, Config: cfg}
}

// ------------------------------------------------------------
// E2Eテスト用アプリケーション構築関数
// ------------------------------------------------------------
func buildE2EApp(t *testing.T, cfg config.Config) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	app := fx.New(
		fx.Supply(cfg),
		// the default registry is shared by every app built in this process
		fx.Provide(func() *metrics.Metrics { return metrics.New(prometheus.NewRegistry()) }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.StoreModule,
		bootstrap.SequencerModule,
		components.CatalogModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		// ログを無効にして起動
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), fmt.Sprintf("fxアプリケーションの起動に失敗 (store=%s)", cfg.Store.Driver))
	require.NotNil(t, router, "Routerのセットアップに失敗")

	return router, app
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Env
}

func (s *SharedSuite) SetupSuite() {
	s.Env = setupE2EEnvironment(s.T())
}

// every subtest starts with empty tables and a fresh daily sequence
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
	require.NoError(s.T(), s.Redis.FlushDB(context.Background()).Err(), "Failed to flush redis")
}
