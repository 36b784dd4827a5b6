package scriptfs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsURL(t *testing.T) {
	root := t.TempDir()
	createFiles(t, root, map[string]string{
		"plugin.groovy":        "x",
		"with space/a b.txt":   "y",
		"nested/dir/file.text": "z",
	})

	t.Run("File", func(t *testing.T) {
		got, err := AsURL(filepath.Join(root, "plugin.groovy"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "file:///") || runtime.GOOS == "windows")
		assert.True(t, strings.HasSuffix(got, "/plugin.groovy"))
	})

	t.Run("DirectoryHasTrailingSlash", func(t *testing.T) {
		got, err := AsURL(filepath.Join(root, "nested", "dir"))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(got, "/nested/dir/"))
	})

	t.Run("Escaped", func(t *testing.T) {
		got, err := AsURL(filepath.Join(root, "with space", "a b.txt"))
		require.NoError(t, err)
		assert.Contains(t, got, "with%20space/a%20b.txt")
	})

	t.Run("RoundTrip", func(t *testing.T) {
		path := filepath.Join(root, "with space", "a b.txt")
		u, err := ToURL(path)
		require.NoError(t, err)

		parsed, err := url.Parse(u.String())
		require.NoError(t, err)
		assert.Equal(t, filepath.Clean(path), fileURLPath(parsed))
	})

	t.Run("Relative", func(t *testing.T) {
		t.Chdir(root)

		u, err := ToURL("plugin.groovy")
		require.NoError(t, err)
		assert.Equal(t, "file", u.Scheme)
		assert.True(t, filepath.IsAbs(fileURLPath(u)))
	})
}

func TestReadLines(t *testing.T) {
	root := t.TempDir()
	createFiles(t, root, map[string]string{
		"trailing.txt": "a\nb\n\n\n",
		"interior.txt": "a\n\nb\n",
		"empty.txt":    "",
		"bom.txt":      "\xef\xbb\xbffirst\nsecond\n",
		"latin1.txt":   "caf\xe9\n",
	})

	fileURL := func(t *testing.T, name string) string {
		t.Helper()
		u, err := AsURL(filepath.Join(root, name))
		require.NoError(t, err)
		return u
	}

	t.Run("FileURL", func(t *testing.T) {
		lines, err := ReadLines(fileURL(t, "trailing.txt"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, lines)

		lines, err = ReadLines(fileURL(t, "interior.txt"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "", "b"}, lines)

		lines, err = ReadLines(fileURL(t, "empty.txt"))
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("StripsBOM", func(t *testing.T) {
		lines, err := ReadLines(fileURL(t, "bom.txt"))
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, lines)
	})

	t.Run("Encoding", func(t *testing.T) {
		lines, err := ReadLines(fileURL(t, "latin1.txt"), WithEncoding("windows-1252"))
		require.NoError(t, err)
		assert.Equal(t, []string{"café"}, lines)
	})

	t.Run("UnknownEncoding", func(t *testing.T) {
		_, err := ReadLines(fileURL(t, "trailing.txt"), WithEncoding("no-such-charset"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownEncoding)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := ReadLines(fileURL(t, "missing.txt"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOpenURL)
	})

	t.Run("MalformedURL", func(t *testing.T) {
		_, err := ReadLines("http://[::1")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrParseURL)

		_, err = ReadLines("no-scheme-here")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrParseURL)
	})

	t.Run("UnsupportedScheme", func(t *testing.T) {
		_, err := ReadLines("ftp://example.com/script.groovy")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedScheme)
	})

	t.Run("HTTP", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/script.groovy":
				_, _ = w.Write([]byte("println 'a'\n\nprintln 'b'\n\n"))
			default:
				http.NotFound(w, r)
			}
		}))
		t.Cleanup(server.Close)

		lines, err := ReadLines(server.URL+"/script.groovy", WithHTTPClient(server.Client()))
		require.NoError(t, err)
		assert.Equal(t, []string{"println 'a'", "", "println 'b'"}, lines)

		_, err = ReadLines(server.URL+"/missing.groovy", WithHTTPTimeout(5*time.Second))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOpenURL)
	})

	t.Run("Unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		address := server.URL
		server.Close()

		_, err := ReadLines(address+"/script.groovy", WithHTTPTimeout(time.Second))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOpenURL)
	})

	t.Run("ContextCanceled", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("x\n"))
		}))
		t.Cleanup(server.Close)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := ReadLinesContext(ctx, server.URL+"/script.groovy")
		require.Error(t, err)
	})
}

func TestFileURLPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}

	u, err := url.Parse("file:///tmp/a%20b/c.txt")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/a b/c.txt", fileURLPath(u))

	u, err = url.Parse("file:relative/c.txt")
	require.NoError(t, err)
	assert.Equal(t, "relative/c.txt", fileURLPath(u))

	_, err = os.Stat(fileURLPath(u))
	assert.True(t, os.IsNotExist(err))
}
