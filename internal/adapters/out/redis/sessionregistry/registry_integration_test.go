package sessionregistry_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"procurement/internal/adapters/out/redis/sessionregistry"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type RedisRegistryIntegrationTestSuite struct {
	suite.Suite
	container *tcredis.RedisContainer
	client    *goredis.Client
	registry  *sessionregistry.Registry
}

func (suite *RedisRegistryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	suite.Require().NoError(err)
	suite.container = container

	uri, err := container.ConnectionString(ctx)
	suite.Require().NoError(err)
	opts, err := goredis.ParseURL(uri)
	suite.Require().NoError(err)

	client, err := sessionregistry.Connect(ctx, opts.Addr)
	suite.Require().NoError(err)
	suite.client = client
}

func (suite *RedisRegistryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushAll(context.Background()).Err())
	suite.registry = sessionregistry.New(suite.client, sessionregistry.DefaultPrefix)
}

func (suite *RedisRegistryIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		_ = suite.client.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RedisRegistryIntegrationTestSuite) TestRegisterLogin_BindsBothDirections() {
	ctx := context.Background()
	suite.Require().NoError(suite.registry.RegisterLogin(ctx, "clerk-1", "s1"))

	sessionID, ok, err := suite.registry.SessionOf(ctx, "clerk-1")
	suite.Require().NoError(err)
	suite.True(ok)
	suite.Equal("s1", sessionID)

	userID, ok, err := suite.registry.UserOf(ctx, "s1")
	suite.Require().NoError(err)
	suite.True(ok)
	suite.Equal("clerk-1", userID)
}

func (suite *RedisRegistryIntegrationTestSuite) TestRegisterLogin_MarksPreviousSession() {
	ctx := context.Background()
	suite.Require().NoError(suite.registry.RegisterLogin(ctx, "clerk-1", "s1"))
	suite.Require().NoError(suite.registry.RegisterLogin(ctx, "clerk-1", "s2"))

	_, ok, err := suite.registry.UserOf(ctx, "s1")
	suite.Require().NoError(err)
	suite.False(ok)

	removed, err := suite.registry.RemoveLogoutTarget(ctx, "s1")
	suite.Require().NoError(err)
	suite.True(removed)
	removed, err = suite.registry.RemoveLogoutTarget(ctx, "s1")
	suite.Require().NoError(err)
	suite.False(removed)
}

func (suite *RedisRegistryIntegrationTestSuite) TestRegisterLogin_SameSessionIsNoop() {
	ctx := context.Background()
	suite.Require().NoError(suite.registry.RegisterLogin(ctx, "clerk-1", "s1"))
	suite.Require().NoError(suite.registry.RegisterLogin(ctx, "clerk-1", "s1"))

	removed, err := suite.registry.RemoveLogoutTarget(ctx, "s1")
	suite.Require().NoError(err)
	suite.False(removed)
	_, ok, _ := suite.registry.UserOf(ctx, "s1")
	suite.True(ok)
}

func (suite *RedisRegistryIntegrationTestSuite) TestUnregisterBySessionID() {
	ctx := context.Background()
	suite.Require().NoError(suite.registry.RegisterLogin(ctx, "clerk-1", "s1"))
	suite.Require().NoError(suite.registry.RegisterLogin(ctx, "clerk-1", "s2"))

	suite.Require().NoError(suite.registry.UnregisterBySessionID(ctx, "s1"))
	sessionID, ok, _ := suite.registry.SessionOf(ctx, "clerk-1")
	suite.True(ok)
	suite.Equal("s2", sessionID, "a stale session leaves the current binding alone")
	removed, _ := suite.registry.RemoveLogoutTarget(ctx, "s1")
	suite.False(removed)

	suite.Require().NoError(suite.registry.UnregisterBySessionID(ctx, "s2"))
	_, ok, _ = suite.registry.SessionOf(ctx, "clerk-1")
	suite.False(ok)
	_, ok, _ = suite.registry.UserOf(ctx, "s2")
	suite.False(ok)

	suite.NoError(suite.registry.UnregisterBySessionID(ctx, "unknown"))
}

func (suite *RedisRegistryIntegrationTestSuite) TestRemoveLogoutTarget_ExactlyOnceUnderConcurrency() {
	const callers = 32
	ctx := context.Background()
	suite.Require().NoError(suite.registry.RegisterLogin(ctx, "clerk-1", "s1"))
	suite.Require().NoError(suite.registry.RegisterLogin(ctx, "clerk-1", "s2"))

	var winners atomic.Int32
	var wg conc.WaitGroup
	for range callers {
		wg.Go(func() {
			if removed, err := suite.registry.RemoveLogoutTarget(ctx, "s1"); err == nil && removed {
				winners.Add(1)
			}
		})
	}
	wg.Wait()

	suite.Equal(int32(1), winners.Load())
}

func (suite *RedisRegistryIntegrationTestSuite) TestConcurrentLoginsOfOneUser_LeaveOneBinding() {
	const logins = 20
	ctx := context.Background()

	var wg conc.WaitGroup
	for i := range logins {
		wg.Go(func() {
			_ = suite.registry.RegisterLogin(ctx, "clerk-1", fmt.Sprintf("s%d", i))
		})
	}
	wg.Wait()

	current, ok, err := suite.registry.SessionOf(ctx, "clerk-1")
	suite.Require().NoError(err)
	suite.Require().True(ok)

	marked := 0
	for i := range logins {
		sessionID := fmt.Sprintf("s%d", i)
		if sessionID != current {
			_, bound, _ := suite.registry.UserOf(ctx, sessionID)
			suite.False(bound)
		}
		if removed, _ := suite.registry.RemoveLogoutTarget(ctx, sessionID); removed {
			marked++
		}
	}
	suite.Equal(logins-1, marked)
}

func TestRedisRegistryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRegistryIntegrationTestSuite))
}
