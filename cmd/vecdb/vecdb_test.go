package main_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vecdb "go.llib.dev/vectorkit/cmd/vecdb"
	"go.llib.dev/vectorkit/pkg/codeckit"
	"go.llib.dev/vectorkit/port/vector"
)

func execute(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := vecdb.NewCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--db-path", dbPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVecDB(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "vector.db")

		_, err := execute(t, dbPath, "push", "10", "20", "30")
		require.NoError(t, err)

		out, err := execute(t, dbPath, "len")
		require.NoError(t, err)
		assert.Equal(t, "3\n", out)

		_, err = execute(t, dbPath, "insert", "1", "99")
		require.NoError(t, err)
		_, err = execute(t, dbPath, "remove", "0")
		require.NoError(t, err)

		_, err = execute(t, dbPath, "get", "5")
		require.ErrorIs(t, err, vector.ErrOutOfRange)

		_, err = execute(t, dbPath, "swap", "0", "2")
		require.NoError(t, err)

		for i, exp := range []string{"30", "20", "99"} {
			out, err := execute(t, dbPath, "get", []string{"0", "1", "2"}[i])
			require.NoError(t, err)
			assert.Equal(t, exp+"\n", out)
		}
	})

	t.Run("dump prints a table", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "vector.db")
		_, err := execute(t, dbPath, "push", "foo", "bar")
		require.NoError(t, err)

		out, err := execute(t, dbPath, "dump")
		require.NoError(t, err)
		assert.Contains(t, strings.ToUpper(out), "INDEX")
		assert.Contains(t, out, "foo")
		assert.Contains(t, out, "bar")
	})

	t.Run("set, reserve, shrink and clear", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "vector.db")
		_, err := execute(t, dbPath, "push", "a")
		require.NoError(t, err)

		_, err = execute(t, dbPath, "set", "0", "b")
		require.NoError(t, err)
		out, err := execute(t, dbPath, "get", "0")
		require.NoError(t, err)
		assert.Equal(t, "b\n", out)

		_, err = execute(t, dbPath, "reserve", "32")
		require.NoError(t, err)
		out, err = execute(t, dbPath, "cap")
		require.NoError(t, err)
		assert.Equal(t, "33\n", out)

		_, err = execute(t, dbPath, "shrink")
		require.NoError(t, err)
		out, err = execute(t, dbPath, "cap")
		require.NoError(t, err)
		assert.Equal(t, "1\n", out)

		_, err = execute(t, dbPath, "clear")
		require.NoError(t, err)
		out, err = execute(t, dbPath, "len")
		require.NoError(t, err)
		assert.Equal(t, "0\n", out)
	})

	t.Run("buckets and codecs are selectable", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "vector.db")
		_, err := execute(t, dbPath, "--bucket", "other", "--codec", "json", "push", "x")
		require.NoError(t, err)

		out, err := execute(t, dbPath, "len")
		require.NoError(t, err)
		assert.Equal(t, "0\n", out)

		out, err = execute(t, dbPath, "--bucket", "other", "--codec", "json", "get", "0")
		require.NoError(t, err)
		assert.Equal(t, "x\n", out)
	})

	t.Run("dump fails when an element can't be decoded", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "vector.db")
		_, err := execute(t, dbPath, "push", "a", "b", "c")
		require.NoError(t, err)

		out, err := execute(t, dbPath, "--codec", "json", "dump")
		require.Error(t, err)
		assert.NotContains(t, strings.ToUpper(out), "LEN")
	})

	t.Run("unknown codec", func(t *testing.T) {
		_, err := execute(t, filepath.Join(t.TempDir(), "vector.db"), "--codec", "xml", "len")
		require.ErrorIs(t, err, codeckit.ErrUnknownCodec)
	})

	t.Run("invalid index", func(t *testing.T) {
		_, err := execute(t, filepath.Join(t.TempDir(), "vector.db"), "get", "first")
		require.Error(t, err)
	})
}
