//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startWithSeed(t *testing.T, config string) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	if config != "" {
		require.NoError(t, tf.WriteConfig(config))
	}

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	for _, title := range []string{"Film A", "Film B", "Film C"} {
		require.True(t, tf.SeePlain(title), "%s should be listed at start", title)
	}
	require.True(t, tf.SeePlain("3 film"), "count line should show the seed size")
	return tf
}

func TestSearchNarrowsList(t *testing.T) {
	t.Parallel()
	tf := startWithSeed(t, "")
	defer tf.Cleanup()

	require.NoError(t, tf.Search("A"))
	require.True(t, tf.SeePlain(`1 film · "A"`), "only Film A contains an a")
}

func TestSearchWithoutMatchesShowsEmptyState(t *testing.T) {
	t.Parallel()
	tf := startWithSeed(t, "")
	defer tf.Cleanup()

	mark := tf.Mark()
	require.NoError(t, tf.Search("zzz"))
	require.True(t, tf.SeePlain("Tidak ada film ditemukan"), "empty state should be shown")
	require.True(t, tf.SeePlain(`0 film · "zzz"`))
	require.NotContains(t, tf.SincePlain(mark), "more below")
}

func TestTypingWithoutSubmitKeepsList(t *testing.T) {
	t.Parallel()
	tf := startWithSeed(t, "")
	defer tf.Cleanup()

	require.NoError(t, tf.FocusSearch())
	require.NoError(t, tf.Type("zzz"))

	ok := tf.WaitFor(func(string) bool {
		return strings.Contains(tf.SnapshotPlain(), "film ·")
	}, 500*time.Millisecond)
	require.False(t, ok, "nothing is searched before Enter")
}

func TestNarrowingCannotBeUndone(t *testing.T) {
	t.Parallel()
	tf := startWithSeed(t, "")
	defer tf.Cleanup()

	require.NoError(t, tf.Search("c"))
	require.True(t, tf.SeePlain(`1 film · "c"`))

	// Clear the field and search again with an empty query
	require.NoError(t, tf.FocusSearch())
	require.NoError(t, tf.Type(KeyBackspace))
	require.NoError(t, tf.SendEnter())
	require.True(t, tf.SeePlain(`1 film · ""`), "the list stays narrowed")
}

func TestSeedModeRestoresList(t *testing.T) {
	t.Parallel()
	tf := startWithSeed(t, "[search]\nmode = \"seed\"\n")
	defer tf.Cleanup()

	require.NoError(t, tf.Search("c"))
	require.True(t, tf.SeePlain(`1 film · "c"`))

	require.NoError(t, tf.FocusSearch())
	require.NoError(t, tf.Type(KeyBackspace))
	require.NoError(t, tf.SendEnter())
	require.True(t, tf.SeePlain(`3 film · ""`), "seed mode searches the full list")
}
