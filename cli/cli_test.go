package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/designkit/aigen"
	"github.com/ByLCY/designkit/layout"
)

// execute runs the root command with an isolated credential file and log level.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(&bytes.Buffer{})
	base := []string{"--credential-path", filepath.Join(dir, "creds.yaml"), "--log-level", "error", "--out-dir", dir}
	root.SetArgs(append(args, base...))
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	original := [3]string{Version, Commit, Date}
	t.Cleanup(func() { Version, Commit, Date = original[0], original[1], original[2] })
	Version, Commit, Date = "1.2.3", "abcdef1", "2026-10-01"

	root := NewRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "1.2.3")
	assert.Contains(t, buf.String(), "abcdef1")
}

func TestRenderFromFlags(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "mobile.svg")
	debug := filepath.Join(dir, "mobile.json")

	stdout, err := execute(t, dir, "render", "--type", "mobile-app", "--scheme", "dark",
		"--format", "svg", "--out", out, "--debug", debug, "--table")
	require.NoError(t, err)
	assert.Contains(t, stdout, "rectangle")
	assert.Contains(t, stdout, "elements)")
	assert.Contains(t, stdout, out)

	svg, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")

	raw, err := os.ReadFile(debug)
	require.NoError(t, err)
	var res layout.Result
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Equal(t, 375.0, res.Frame.Width)
	assert.Equal(t, layout.ResolvePalette(layout.SchemeDark), res.Palette)
	assert.NotEmpty(t, res.Elements)
}

func TestRenderFailsOnMissingFontOverride(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "designkit.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("output:\n  fonts:\n    sans-bold: fonts/typo.ttf\n"), 0o644))

	_, err := execute(t, dir, "render", "--type", "landing-page", "--config", cfgFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sans-bold")
	assert.NoFileExists(t, filepath.Join(dir, "landing-page.pdf"))
}

func TestRenderDefaultOutputPath(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, dir, "render", "--type", "dashboard")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "dashboard.pdf"))
	require.NoError(t, err)
}

func TestRenderFromDesignFileWithData(t *testing.T) {
	dir := t.TempDir()
	design := filepath.Join(dir, "promo.design")
	require.NoError(t, os.WriteFile(design, []byte(`
design landing-page {
  style: classic
  frame: 800 x 600
  element container { height: 120 }
  element button { label: "Hi ${user.name}", x: 40, y: 40 }
}
`), 0o644))
	debug := filepath.Join(dir, "promo.json")

	_, err := execute(t, dir, "render", design, "--data", `{"user":{"name":"Ada"}}`, "--debug", debug)
	require.NoError(t, err)

	raw, err := os.ReadFile(debug)
	require.NoError(t, err)
	var res layout.Result
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Equal(t, 800.0, res.Frame.Width)
	require.Len(t, res.Elements, 3)
	assert.Equal(t, "Hi Ada", res.Elements[2].Content)
	assert.Equal(t, layout.SchemeLight, res.Intent.ColorScheme)
}

func TestRenderRejectsInvalidIntent(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, dir, "render", "--type", "poster")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type")
}

func TestSettingsLifecycle(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "(not set)")

	out, err = execute(t, dir, "settings", "set-key", "sk-or-secret-1234")
	require.NoError(t, err)
	assert.Contains(t, out, "********1234")
	assert.NotContains(t, out, "secret")

	out, err = execute(t, dir, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "********1234")

	_, err = execute(t, dir, "settings", "clear")
	require.NoError(t, err)
	out, err = execute(t, dir, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "(not set)")
}

func TestSetKeyFromStdin(t *testing.T) {
	dir := t.TempDir()
	root := NewRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(bytes.NewBufferString("sk-piped-9876\n"))
	root.SetArgs([]string{"settings", "set-key", "--credential-path", filepath.Join(dir, "creds.yaml")})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "9876")
}

func TestGenerateWithoutKeyMakesNoRequest(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	dir := t.TempDir()
	_, err := execute(t, dir, "generate", "--type", "mobile-app", "--endpoint", srv.URL)
	require.ErrorIs(t, err, aigen.ErrMissingCredential)
	assert.Contains(t, err.Error(), "settings set-key")
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestGenerateEndToEnd(t *testing.T) {
	reply := `{"design":{"layout":"stack","elements":[{"type":"text","properties":{"content":"From AI"}}],"style":{"colors":[]}}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-e2e", r.Header.Get("Authorization"))
		body, _ := json.Marshal(map[string]any{
			"choices": []any{map[string]any{"message": map[string]any{"role": "assistant", "content": reply}}},
		})
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	dir := t.TempDir()
	_, err := execute(t, dir, "settings", "set-key", "sk-e2e")
	require.NoError(t, err)

	debug := filepath.Join(dir, "gen.json")
	out, err := execute(t, dir, "generate", "--type", "mobile-app", "--endpoint", srv.URL, "--debug", debug)
	require.NoError(t, err)
	assert.Contains(t, out, "mobile-app.pdf")

	raw, err := os.ReadFile(debug)
	require.NoError(t, err)
	var res layout.Result
	require.NoError(t, json.Unmarshal(raw, &res))
	require.Len(t, res.Elements, 1)
	assert.Equal(t, "From AI", res.Elements[0].Content)
}
