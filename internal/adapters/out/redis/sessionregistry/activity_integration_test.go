package sessionregistry_test

import (
	"context"
	"log/slog"
	"time"

	"procurement/internal/adapters/out/redis/sessionregistry"
)

const testIdleTimeout = 400 * time.Millisecond

func (suite *RedisRegistryIntegrationTestSuite) newActivity() *sessionregistry.Activity {
	return sessionregistry.NewActivity(suite.client, sessionregistry.DefaultPrefix, testIdleTimeout, slog.New(slog.DiscardHandler))
}

func (suite *RedisRegistryIntegrationTestSuite) bound(sessionID string) bool {
	_, ok, err := suite.registry.UserOf(context.Background(), sessionID)
	suite.Require().NoError(err)
	return ok
}

func (suite *RedisRegistryIntegrationTestSuite) TestActivity_TouchOnOneInstanceKeepsSessionOnAnother() {
	ctx := context.Background()
	first, second := suite.newActivity(), suite.newActivity()
	suite.Require().NoError(suite.registry.RegisterLogin(ctx, "clerk-1", "s1"))
	first.Touch("s1")

	// Requests keep landing on the second instance while both sweep.
	deadline := time.Now().Add(3 * testIdleTimeout)
	for time.Now().Before(deadline) {
		second.Touch("s1")
		first.DeleteExpired()
		second.DeleteExpired()
		suite.Require().True(suite.bound("s1"), "an active session must survive sweeps on every instance")
		time.Sleep(testIdleTimeout / 4)
	}

	// Idle everywhere: the first instance expires it.
	suite.Eventually(func() bool {
		first.DeleteExpired()
		return !suite.bound("s1")
	}, 5*testIdleTimeout, testIdleTimeout/4)

	_, ok, err := suite.registry.SessionOf(ctx, "clerk-1")
	suite.Require().NoError(err)
	suite.False(ok)
	tracked, err := second.Len(ctx)
	suite.Require().NoError(err)
	suite.Zero(tracked)
}

func (suite *RedisRegistryIntegrationTestSuite) TestActivity_ForgetKeepsBinding() {
	ctx := context.Background()
	activity := suite.newActivity()
	suite.Require().NoError(suite.registry.RegisterLogin(ctx, "clerk-1", "s1"))
	activity.Touch("s1")
	activity.Forget("s1")

	time.Sleep(2 * testIdleTimeout)
	activity.DeleteExpired()

	suite.True(suite.bound("s1"))
}

func (suite *RedisRegistryIntegrationTestSuite) TestActivity_ExpiryKeepsNewerBindingOfUser() {
	ctx := context.Background()
	activity := suite.newActivity()
	suite.Require().NoError(suite.registry.RegisterLogin(ctx, "clerk-1", "s1"))
	activity.Touch("s1")
	suite.Require().NoError(suite.registry.RegisterLogin(ctx, "clerk-1", "s2"))

	suite.Eventually(func() bool {
		activity.DeleteExpired()
		tracked, err := activity.Len(ctx)
		return err == nil && tracked == 0
	}, 5*testIdleTimeout, testIdleTimeout/4)

	sessionID, ok, err := suite.registry.SessionOf(ctx, "clerk-1")
	suite.Require().NoError(err)
	suite.True(ok)
	suite.Equal("s2", sessionID)
	suite.True(suite.bound("s2"))
}
