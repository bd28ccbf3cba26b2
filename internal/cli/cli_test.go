package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/matexport/internal/app"
	"github.com/specialistvlad/matexport/internal/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearS3Env(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MATEXPORT_S3_ENDPOINT", "MATEXPORT_S3_REGION", "MATEXPORT_S3_ACCESS_KEY",
		"MATEXPORT_S3_SECRET_KEY", "MATEXPORT_S3_USE_SSL", "MINIO_ROOT_USER", "MINIO_ROOT_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func TestParse(t *testing.T) {
	defaultS3 := sink.S3Config{Region: "us-east-1", UseSSL: true}

	testCases := []struct {
		name       string
		args       []string
		wantConfig *app.Config
		wantExit   bool
		wantErr    string
	}{
		{
			name: "positional path with defaults",
			args: []string{"scene.hcl"},
			wantConfig: &app.Config{
				ScenePaths:       []string{"scene.hcl"},
				LogFormat:        "json",
				LogLevel:         "info",
				ResolveCacheSize: 256,
				S3:               defaultS3,
			},
		},
		{
			name: "all flags",
			args: []string{"-scene", "a.hcl", "-s", "dir", "-out", "out.json", "-log-format", "TEXT", "-log-level", "debug", "-resolve-cache", "0", "extra.hcl"},
			wantConfig: &app.Config{
				ScenePaths: []string{"a.hcl", "dir", "extra.hcl"},
				Output:     "out.json",
				LogFormat:  "text",
				LogLevel:   "debug",
				S3:         defaultS3,
			},
		},
		{
			name: "long output flag wins over shorthand",
			args: []string{"-out", "long", "-o", "short", "scene"},
			wantConfig: &app.Config{
				ScenePaths:       []string{"scene"},
				Output:           "long",
				LogFormat:        "json",
				LogLevel:         "info",
				ResolveCacheSize: 256,
				S3:               defaultS3,
			},
		},
		{
			name: "shorthand output flag",
			args: []string{"-o", "-", "scene"},
			wantConfig: &app.Config{
				ScenePaths:       []string{"scene"},
				Output:           "-",
				LogFormat:        "json",
				LogLevel:         "info",
				ResolveCacheSize: 256,
				S3:               defaultS3,
			},
		},
		{
			name:     "help",
			args:     []string{"-h"},
			wantExit: true,
		},
		{
			name:     "no scene path",
			args:     []string{"-o", "out"},
			wantExit: true,
		},
		{
			name:    "bad log format",
			args:    []string{"-log-format", "xml", "scene"},
			wantErr: "invalid log-format",
		},
		{
			name:    "bad log level",
			args:    []string{"-log-level", "trace", "scene"},
			wantErr: "invalid log-level",
		},
		{
			name:    "negative cache",
			args:    []string{"-resolve-cache", "-1", "scene"},
			wantErr: "resolve cache size cannot be negative",
		},
		{
			name:    "unknown flag",
			args:    []string{"-grid", "scene"},
			wantErr: "flag provided but not defined",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearS3Env(t)

			out := &bytes.Buffer{}
			args := append([]string{"-env-file", ""}, tc.args...)
			cfg, shouldExit, err := Parse(args, out)

			if tc.wantErr != "" {
				require.Error(t, err)
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, 2, exitErr.Code)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantExit, shouldExit)
			if tc.wantExit {
				assert.Nil(t, cfg)
				assert.Contains(t, out.String(), "Usage:")
				return
			}
			if diff := cmp.Diff(tc.wantConfig, cfg); diff != "" {
				t.Errorf("Parse() config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_EnvFile(t *testing.T) {
	clearS3Env(t)
	require.NoError(t, os.Unsetenv("MATEXPORT_S3_ENDPOINT"))
	require.NoError(t, os.Unsetenv("MINIO_ROOT_USER"))
	t.Cleanup(func() {
		_ = os.Unsetenv("MATEXPORT_S3_ENDPOINT")
		_ = os.Unsetenv("MINIO_ROOT_USER")
	})

	envPath := filepath.Join(t.TempDir(), "settings.env")
	content := "MATEXPORT_S3_ENDPOINT=localhost:9000\nMINIO_ROOT_USER=minioadmin\n"
	require.NoError(t, os.WriteFile(envPath, []byte(content), 0o600))

	cfg, shouldExit, err := Parse([]string{"-env-file", envPath, "-o", "s3://exports/shaders", "scene"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "localhost:9000", cfg.S3.Endpoint)
	assert.Equal(t, "minioadmin", cfg.S3.AccessKey)
	assert.Equal(t, "s3://exports/shaders", cfg.Output)
}
