package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	dir := t.TempDir()

	secret := filepath.Join(dir, "token.txt")
	if err := os.WriteFile(secret, []byte("  from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	secrets := filepath.Join(dir, "secrets")
	if err := os.Mkdir(secrets, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(secrets, "ENV_TEST_SECRET"), []byte("from-secrets"), 0o600); err != nil {
		t.Fatal(err)
	}

	orig := secretsDir
	secretsDir = secrets
	t.Cleanup(func() { secretsDir = orig })

	t.Setenv("ENV_TEST_DIRECT", "direct")
	t.Setenv("ENV_TEST_FILE_FILE", secret)
	t.Setenv("ENV_TEST_MISSING_FILE_FILE", filepath.Join(dir, "nope"))

	tests := []struct {
		name string
		key  string
		def  []string
		want string
	}{
		{"direct", "ENV_TEST_DIRECT", nil, "direct"},
		{"file variant", "ENV_TEST_FILE", nil, "from-file"},
		{"secrets dir", "ENV_TEST_SECRET", nil, "from-secrets"},
		{"missing file uses default", "ENV_TEST_MISSING_FILE", []string{"fallback"}, "fallback"},
		{"unset uses default", "ENV_TEST_UNSET", []string{"fallback"}, "fallback"},
		{"unset without default", "ENV_TEST_UNSET", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetEnv(tt.key, tt.def...); got != tt.want {
				t.Errorf("GetEnv(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("ENV_TEST_BOOL_TRUE", "true")
	t.Setenv("ENV_TEST_BOOL_ONE", "1")
	t.Setenv("ENV_TEST_BOOL_BAD", "maybe")

	tests := []struct {
		key  string
		def  bool
		want bool
	}{
		{"ENV_TEST_BOOL_TRUE", false, true},
		{"ENV_TEST_BOOL_ONE", false, true},
		{"ENV_TEST_BOOL_BAD", true, true},
		{"ENV_TEST_BOOL_UNSET", false, false},
	}

	for _, tt := range tests {
		if got := GetEnvBool(tt.key, tt.def); got != tt.want {
			t.Errorf("GetEnvBool(%q, %v) = %v, want %v", tt.key, tt.def, got, tt.want)
		}
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("ENV_TEST_INT", "42")
	t.Setenv("ENV_TEST_INT_NEG", "-7")
	t.Setenv("ENV_TEST_INT_BAD", "4x")

	tests := []struct {
		key  string
		def  []int
		want int
	}{
		{"ENV_TEST_INT", nil, 42},
		{"ENV_TEST_INT_NEG", []int{1}, -7},
		{"ENV_TEST_INT_BAD", []int{3}, 3},
		{"ENV_TEST_INT_UNSET", []int{9}, 9},
		{"ENV_TEST_INT_UNSET", nil, 0},
	}

	for _, tt := range tests {
		if got := GetEnvInt(tt.key, tt.def...); got != tt.want {
			t.Errorf("GetEnvInt(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}

	if got := GetEnvInt64("ENV_TEST_INT", int64(0)); got != 42 {
		t.Errorf("GetEnvInt64() = %d, want 42", got)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("ENV_TEST_DUR_STD", "1m30s")
	t.Setenv("ENV_TEST_DUR_DAYS", "2d")
	t.Setenv("ENV_TEST_DUR_BAD", "later")

	tests := []struct {
		key  string
		want time.Duration
	}{
		{"ENV_TEST_DUR_STD", 90 * time.Second},
		{"ENV_TEST_DUR_DAYS", 48 * time.Hour},
		{"ENV_TEST_DUR_BAD", time.Second},
		{"ENV_TEST_DUR_UNSET", time.Second},
	}

	for _, tt := range tests {
		if got := GetEnvDuration(tt.key, time.Second); got != tt.want {
			t.Errorf("GetEnvDuration(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
