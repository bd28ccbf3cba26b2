package sink

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureJSONExt(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"out", "out.json"},
		{"out.json", "out.json"},
		{"OUT.JSON", "OUT.JSON"},
		{"dir/shaders.txt", "dir/shaders.txt.json"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, EnsureJSONExt(tc.in))
		})
	}
}

func TestEncode(t *testing.T) {
	doc := map[string]any{
		"shaders": map[string]any{
			"aiStd1": map[string]any{
				"textures": map[string]any{"baseColor": map[string]any{"filePath": "tex.<UDIM>.png", "udim": true}},
				"values":   map[string]any{},
			},
		},
		"meshes": map[string]any{},
	}

	data, err := Encode(doc)
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, "\n    \"meshes\"", "four-space indentation")
	assert.Contains(t, out, "tex.<UDIM>.png", "angle brackets stay unescaped")
	assert.Less(t, strings.Index(out, "\"meshes\""), strings.Index(out, "\"shaders\""), "keys are sorted")
	assert.JSONEq(t, `{"meshes":{},"shaders":{"aiStd1":{"textures":{"baseColor":{"filePath":"tex.<UDIM>.png","udim":true}},"values":{}}}}`, out)
}

func TestNew_Selection(t *testing.T) {
	stdout := &bytes.Buffer{}
	opts := Options{
		Stdout: stdout,
		S3: S3Config{
			Endpoint:  "localhost:9000",
			AccessKey: "minio",
			SecretKey: "minio123",
		},
	}

	_, err := New("  ", opts)
	assert.True(t, errors.Is(err, ErrNoDestination))

	s, err := New("-", opts)
	require.NoError(t, err)
	assert.IsType(t, &WriterSink{}, s)
	assert.Equal(t, "stdout", s.Location())

	s, err = New("exports/shaders", opts)
	require.NoError(t, err)
	assert.IsType(t, &FileSink{}, s)
	assert.Equal(t, "exports/shaders.json", s.Location())

	s, err = New("s3://renders/show/shot010/shaders", opts)
	require.NoError(t, err)
	assert.IsType(t, &S3Sink{}, s)
	assert.Equal(t, "s3://renders/show/shot010/shaders.json", s.Location())

	_, err = New("-", Options{})
	require.Error(t, err)
}

func TestFileSink_Write(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shaders.json")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	s := NewFileSink(path)
	require.NoError(t, s.Write(context.Background(), []byte("{}\n")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")
}

func TestFileSink_WriteFailure(t *testing.T) {
	s := NewFileSink(filepath.Join(t.TempDir(), "missing", "dir", "shaders.json"))
	err := s.Write(context.Background(), []byte("{}"))
	require.Error(t, err)
}

func TestWriterSink_Write(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewWriterSink(buf, "buffer")
	require.NoError(t, s.Write(context.Background(), []byte("data")))
	assert.Equal(t, "data", buf.String())
}

func TestParseS3URL(t *testing.T) {
	bucket, key, err := ParseS3URL("s3://renders/a/b/shaders.json")
	require.NoError(t, err)
	assert.Equal(t, "renders", bucket)
	assert.Equal(t, "a/b/shaders.json", key)

	for _, bad := range []string{"s3://", "s3://bucket", "s3:///key", "http://bucket/key"} {
		_, _, err := ParseS3URL(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewS3Sink_Validation(t *testing.T) {
	_, err := NewS3Sink(S3Config{}, "b", "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint")

	_, err = NewS3Sink(S3Config{Endpoint: "localhost:9000"}, "b", "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access key")

	s, err := NewS3Sink(S3Config{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"}, "bucket", "key.json")
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", s.region)
}
