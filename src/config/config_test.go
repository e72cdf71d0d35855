package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_PORT", "STORE_BACKEND", "MONGODB_CONNECTION_STRING", "MONGODB_DATABASE_NAME",
		"RABBITMQ_HOSTNAME", "RABBITMQ_EXCHANGE", "AUTH_USERNAME", "AUTH_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.HTTPPort != "3001" {
		t.Errorf("Expected default port 3001, got %s", cfg.HTTPPort)
	}
	if cfg.MongoDatabaseName != "canteen-db" {
		t.Errorf("Expected default database name, got %s", cfg.MongoDatabaseName)
	}
	if cfg.StoreBackend != StoreBackendMemory {
		t.Errorf("Without a connection string the backend must default to memory, got %s", cfg.StoreBackend)
	}
	if cfg.AuthUsername != "user" || cfg.AuthPassword != "1234" {
		t.Errorf("Unexpected default credentials: %s/%s", cfg.AuthUsername, cfg.AuthPassword)
	}
}

func TestLoadConfigBackendSelection(t *testing.T) {
	t.Run("connection string implies mongo", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MONGODB_CONNECTION_STRING", "mongodb://localhost:27017")

		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.StoreBackend != StoreBackendMongo {
			t.Errorf("Expected mongo backend, got %s", cfg.StoreBackend)
		}
	})

	t.Run("explicit memory wins", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MONGODB_CONNECTION_STRING", "mongodb://localhost:27017")
		t.Setenv("STORE_BACKEND", "memory")

		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.StoreBackend != StoreBackendMemory {
			t.Errorf("Expected memory backend, got %s", cfg.StoreBackend)
		}
	})

	t.Run("mongo without connection string fails", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STORE_BACKEND", "mongo")

		if _, err := LoadConfig(); err == nil {
			t.Error("Expected an error for mongo backend without a connection string")
		}
	})

	t.Run("unknown backend fails", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STORE_BACKEND", "postgres")

		if _, err := LoadConfig(); err == nil {
			t.Error("Expected an error for an unknown backend")
		}
	})
}
