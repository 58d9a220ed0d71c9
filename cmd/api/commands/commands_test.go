package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/domain"
)

func runCLI(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("REDIS_URL", "")
	t.Setenv("LOG_LEVEL", "error")
	for k, v := range env {
		t.Setenv(k, v)
	}

	// flags are package globals
	listForceError, listNoColor, listDelay = false, false, 0
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := runCLI(t, nil, "list", "--no-color", "--delay", "50ms")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Projects Overview  Avery Stone (AS)"))
	assert.Equal(t, 6, strings.Count(out, "░░░░░░░░░░░░░░░░░░░░"))
	assert.Contains(t, out, "Marketing Website Refresh  [Active]")
	assert.Contains(t, out, "API Gateway  [Paused]")
}

func TestList_ForcedError(t *testing.T) {
	out, err := runCLI(t, nil, "list", "--no-color", "--delay", "0s", "--error")
	require.Error(t, err)
	assert.True(t, domain.IsFetchError(err))
	assert.Contains(t, out, "Something went wrong")
	assert.Contains(t, out, domain.MockFetchErrorMessage)
}

func TestList_RedisCatalog(t *testing.T) {
	mr := miniredis.RunT(t)

	out, err := runCLI(t, map[string]string{
		"REDIS_URL":         "redis://" + mr.Addr(),
		"REDIS_CATALOG_KEY": "test:catalog",
	}, "list", "--no-color", "--delay", "0s")
	require.NoError(t, err)

	assert.Contains(t, out, "Design System  [Archived]")
	assert.True(t, mr.Exists("test:catalog"))
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, nil, "version")
	require.NoError(t, err)
	assert.Equal(t, "projects-overview dev\n", out)
}
