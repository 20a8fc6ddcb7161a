package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode":      "disable",
			"maxOpenConns": 25,
		},
		"pagination": map[string]any{
			"defaultLimit": 100,
		},
		"jwt": map[string]any{
			"ttl": "24h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MAXOPENCONNS", want: "postgres.maxOpenConns"},
		{envKey: "PAGINATION_DEFAULTLIMIT", want: "pagination.defaultLimit"},
		{envKey: "JWT_TTL", want: "jwt.ttl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
