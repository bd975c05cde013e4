package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := RootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSplitCmd(t *testing.T) {
	t.Run("Should split stdin into separated messages", func(t *testing.T) {
		out, err := execute(t, "intro\n\n![map](https://x/y.png)\noutro", "split")

		require.NoError(t, err)
		assert.Equal(t, "intro[⠀](https://x/y.png)\n---\noutro\n", out)
	})

	t.Run("Should read a file and strip front matter", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.md")
		require.NoError(t, os.WriteFile(path, []byte("---\ntitle: Doc\n---\nbody"), 0o600))

		out, err := execute(t, "", "split", path)

		require.NoError(t, err)
		assert.Equal(t, "body\n", out)
	})

	t.Run("Should honor max-length", func(t *testing.T) {
		out, err := execute(t, strings.Repeat("a", 12), "--max-length", "5", "split")

		require.NoError(t, err)
		assert.Equal(t, "aaaaa\n---\naaaaa\n---\naa\n", out)
	})

	t.Run("Should print traces", func(t *testing.T) {
		out, err := execute(t, "hello", "split", "--trace")

		require.NoError(t, err)
		assert.Equal(t, "[0.0 len=5] hello\n", out)
	})

	t.Run("Should fail for a missing file", func(t *testing.T) {
		_, err := execute(t, "", "split", filepath.Join(t.TempDir(), "nope.md"))
		assert.Error(t, err)
	})

	t.Run("Should reject an invalid max-length", func(t *testing.T) {
		_, err := execute(t, "x", "--max-length", "1", "split")
		assert.Error(t, err)
	})
}

func TestAuditCmd(t *testing.T) {
	doc := "a\n\n![one](1.png)\nb\n\n![two](2.png)\n\nc ![three](3.png)"
	out, err := execute(t, doc, "audit")

	require.NoError(t, err)
	assert.Contains(t, out, "images:    3")
	assert.Contains(t, out, "rewritten: 2")
	assert.Contains(t, out, "embedded:  1")
	assert.Contains(t, out, "  3.png")
}

func TestFetchCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/decks.md" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("first\n\n![img](https://x/i.png)\nsecond"))
	}))
	defer srv.Close()
	t.Setenv("DISCORDIFY_ARTICLE_BASE_URL", srv.URL)
	t.Setenv("DISCORDIFY_DELIVERY_INTERVAL", "0s")

	t.Run("Should print the posted messages", func(t *testing.T) {
		out, err := execute(t, "", "fetch", "decks")

		require.NoError(t, err)
		assert.Equal(t, "first[⠀](https://x/i.png)\n---\nsecond\n", out)
	})

	t.Run("Should report the apology on failure", func(t *testing.T) {
		out, err := execute(t, "", "fetch", "missing")

		require.Error(t, err)
		assert.Equal(t, "Something went wrong, sorry!", err.Error())
		assert.Empty(t, out)
	})
}
