// Package redis connects to Redis and stores visitor preferences in it.
//
//	client, err := redis.Connect(ctx, redis.Config{ConnectionURL: "redis://localhost:6379/0", RetryAttempts: 3})
//	if err != nil {
//		return err
//	}
//	prefs := redis.NewPreferenceStore(client, redis.WithKeyPrefix("site:pref:"))
//	store, err := i18n.NewStore(i18n.WithPreferences(prefs))
//
// Connect accepts redis:// and rediss:// URLs and pings the server before
// returning, retrying with a doubling interval. Healthcheck wraps the same
// ping for readiness probes.
package redis
