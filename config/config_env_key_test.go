package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_MatchesMarketplaceKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "handloom",
			},
		},
		"session": map[string]any{
			"cookieName":   "sessionid",
			"cookieSecure": false,
		},
		"rateLimit": map[string]any{
			"requestsPerMin": 30,
			"idleTtl":        "10m",
		},
		"qrcode": map[string]any{
			"baseUrl": "http://localhost:8080",
		},
		"pubsub": map[string]any{
			"topicId":      "order-events",
			"pushAudience": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SESSION_COOKIESECURE", want: "session.cookieSecure"},
		{envKey: "RATELIMIT_REQUESTSPERMIN", want: "rateLimit.requestsPerMin"},
		{envKey: "RATELIMIT_IDLETTL", want: "rateLimit.idleTtl"},
		{envKey: "QRCODE_BASEURL", want: "qrcode.baseUrl"},
		{envKey: "PUBSUB_PUSHAUDIENCE", want: "pubsub.pushAudience"},
		{envKey: "ORDERS_MAX_QUANTITY", want: "orders.max.quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}
