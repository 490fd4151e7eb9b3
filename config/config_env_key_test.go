package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"maxPoolSize": 0,
			"connectTimeout": "",
		},
		"secretKey": map[string]any{
			"session": "",
		},
		"googleOAuth": map[string]any{
			"clientId": "",
		},
		"storage": map[string]any{
			"bucketUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_MAXPOOLSIZE", want: "mongo.maxPoolSize"},
		{envKey: "MONGO_CONNECTTIMEOUT", want: "mongo.connectTimeout"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "GOOGLEOAUTH_CLIENTID", want: "googleOAuth.clientId"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
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
