package locking_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/locking"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type RedisLockerIntegrationTestSuite struct {
	suite.Suite
	container *tcredis.RedisContainer
	client    *redis.Client
}

func TestRedisLockerIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	suite.Run(t, new(RedisLockerIntegrationTestSuite))
}

func (suite *RedisLockerIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	suite.Require().NoError(err)
	suite.container = container

	uri, err := container.ConnectionString(ctx)
	suite.Require().NoError(err)
	opts, err := redis.ParseURL(uri)
	suite.Require().NoError(err)
	suite.client = redis.NewClient(opts)
	suite.Require().NoError(suite.client.Ping(ctx).Err())
}

func (suite *RedisLockerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushDB(suite.T().Context()).Err())
}

func (suite *RedisLockerIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		_ = suite.client.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RedisLockerIntegrationTestSuite) TestSecondHolderWaitsThenGivesUp() {
	ctx := suite.T().Context()
	locker := locking.NewRedisLocker(suite.client, time.Second, 100*time.Millisecond)
	orderID := kernel.NewUUID()

	unlock, err := locker.Lock(ctx, orderID)
	suite.Require().NoError(err)

	_, err = locker.Lock(ctx, orderID)
	suite.Require().ErrorIs(err, ports.ErrLockNotAcquired)

	suite.Require().NoError(unlock(ctx))

	again, err := locker.Lock(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().NoError(again(ctx))
}

func (suite *RedisLockerIntegrationTestSuite) TestExpiredLockIsNotReleasedByOldHolder() {
	ctx := suite.T().Context()
	locker := locking.NewRedisLocker(suite.client, 50*time.Millisecond, time.Second)
	orderID := kernel.NewUUID()

	stale, err := locker.Lock(ctx, orderID)
	suite.Require().NoError(err)

	// The second Lock retries until the TTL frees the key.
	current, err := locker.Lock(ctx, orderID)
	suite.Require().NoError(err)

	suite.Require().NoError(stale(ctx))
	keys, err := suite.client.Keys(ctx, "laundry:order-lock:*").Result()
	suite.Require().NoError(err)
	suite.Len(keys, 1, "the current holder keeps its key")

	suite.Require().NoError(current(ctx))
	keys, err = suite.client.Keys(ctx, "laundry:order-lock:*").Result()
	suite.Require().NoError(err)
	suite.Empty(keys)
}

func (suite *RedisLockerIntegrationTestSuite) TestDifferentOrdersAreIndependent() {
	ctx := suite.T().Context()
	locker := locking.NewRedisLocker(suite.client, time.Second, 50*time.Millisecond)

	a, err := locker.Lock(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	b, err := locker.Lock(ctx, kernel.NewUUID())
	suite.Require().NoError(err)

	suite.Require().NoError(a(ctx))
	suite.Require().NoError(b(ctx))
}
