//go:build integration_test || all_tests

// Package testinternals starts the docker backed dependencies the
// integration tests run against.
package testinternals

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"

	"github.com/2beens/trainingadventure/internal/db"
)

const TestDBName = "training_test"

func NewDockerPool(t *testing.T) *dockertest.Pool {
	t.Helper()

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	dockerPool, err := dockertest.NewPool("")
	require.NoError(t, err, "could not create new dockertest pool")
	dockerPool.MaxWait = 2 * time.Minute

	require.NoError(t, dockerPool.Client.Ping(), "could not ping docker")

	return dockerPool
}

// StartPostgres runs a postgres container, applies the schema and returns
// the host port it listens on. The container is removed on test cleanup.
func StartPostgres(t *testing.T, dockerPool *dockertest.Pool) string {
	t.Helper()

	pgResource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "12",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=" + TestDBName,
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	require.NoError(t, err, "dockerpool run postgres")

	t.Cleanup(func() {
		if err := pgResource.Close(); err != nil {
			t.Logf("postgres teardown: %s", err)
		}
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/%s?sslmode=disable", pgPort, TestDBName)

	// database/sql probe, pgx pools connect lazily
	err = dockerPool.Retry(func() error {
		sqlDB, err := sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		return sqlDB.Ping()
	})
	require.NoError(t, err, "connect to postgres")

	return pgPort
}

// NewPostgresPool starts postgres and returns a pool with the schema applied.
func NewPostgresPool(t *testing.T, dockerPool *dockertest.Pool) *pgxpool.Pool {
	t.Helper()

	ctx := context.Background()
	pgPort := StartPostgres(t, dockerPool)

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: "localhost",
		DBPort: pgPort,
		DBName: TestDBName,
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.EnsureSchema(ctx, pool))

	return pool
}

// StartRedis runs a redis container and returns the host port.
func StartRedis(t *testing.T, dockerPool *dockertest.Pool) string {
	t.Helper()

	redisResource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	require.NoError(t, err, "run redis")

	t.Cleanup(func() {
		if err := redisResource.Close(); err != nil {
			t.Logf("redis teardown: %s", err)
		}
	})

	redisPort := redisResource.GetPort("6379/tcp")
	err = dockerPool.Retry(func() error {
		rdb := redis.NewClient(&redis.Options{Addr: "localhost:" + redisPort})
		defer rdb.Close()
		return rdb.Ping(context.Background()).Err()
	})
	require.NoError(t, err, "connect to redis")

	return redisPort
}
