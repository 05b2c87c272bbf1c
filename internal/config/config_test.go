package config

import "testing"

func TestDefaults(t *testing.T) {
	if DefaultHost != "0.0.0.0" {
		t.Errorf("DefaultHost = %v, want '0.0.0.0'", DefaultHost)
	}
	if DefaultPort != 8080 {
		t.Errorf("DefaultPort = %v, want 8080", DefaultPort)
	}
	if DefaultLogLevel != "INFO" {
		t.Errorf("DefaultLogLevel = %v, want 'INFO'", DefaultLogLevel)
	}
	if DefaultDBName != "crastudio.db" {
		t.Errorf("DefaultDBName = %v, want 'crastudio.db'", DefaultDBName)
	}
}

func TestAppConfig_Addr(t *testing.T) {
	cfg := AppConfig{host: "127.0.0.1", port: 9090}
	if cfg.Addr() != "127.0.0.1:9090" {
		t.Errorf("Addr() = %v, want '127.0.0.1:9090'", cfg.Addr())
	}
}

func TestAppConfig_WithHost(t *testing.T) {
	cfg := AppConfig{host: DefaultHost, port: DefaultPort}

	override := cfg.WithHost("10.0.0.1")
	if override.Host() != "10.0.0.1" {
		t.Errorf("Host() = %v, want '10.0.0.1'", override.Host())
	}

	// An empty override keeps the existing value.
	unchanged := cfg.WithHost("")
	if unchanged.Host() != DefaultHost {
		t.Errorf("Host() = %v, want %v", unchanged.Host(), DefaultHost)
	}
}

func TestAppConfig_WithPort(t *testing.T) {
	cfg := AppConfig{host: DefaultHost, port: DefaultPort}

	override := cfg.WithPort(3000)
	if override.Port() != 3000 {
		t.Errorf("Port() = %v, want 3000", override.Port())
	}

	unchanged := cfg.WithPort(0)
	if unchanged.Port() != DefaultPort {
		t.Errorf("Port() = %v, want %v", unchanged.Port(), DefaultPort)
	}
}

func TestAppConfig_APIKeysCopies(t *testing.T) {
	cfg := AppConfig{apiKeys: []string{"a", "b"}}

	keys := cfg.APIKeys()
	keys[0] = "mutated"

	if cfg.APIKeys()[0] != "a" {
		t.Error("APIKeys() returned a shared slice")
	}
}

func TestDefaultDBURL(t *testing.T) {
	got := defaultDBURL(".crastudio")
	want := "sqlite:///.crastudio/crastudio.db"
	if got != want {
		t.Errorf("defaultDBURL = %v, want %v", got, want)
	}
}
