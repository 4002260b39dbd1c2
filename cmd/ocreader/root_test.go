package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"ocreader/internal/db"
	"ocreader/internal/logger"

	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := rootApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"ocreader"}, args...))
	return out.String(), err
}

func setupEnv(t *testing.T) string {
	t.Helper()
	var logs bytes.Buffer
	logger.SetOutput(&logs)
	dir := t.TempDir()
	path := filepath.Join(dir, "ocreader.db")
	t.Setenv("OCREADER_CONFIG", "")
	t.Setenv("OCREADER_DATA_DIR", dir)
	t.Setenv("OCREADER_DB_PATH", path)
	return path
}

func TestMigrateCommand(t *testing.T) {
	setupEnv(t)

	out, err := runApp(t, "migrate", "--to", "11")
	require.NoError(t, err)
	require.Contains(t, out, "schema version 11")

	out, err = runApp(t, "migrate")
	require.NoError(t, err)
	require.Contains(t, out, "schema version 13")

	_, err = runApp(t, "migrate", "--to", "11")
	require.ErrorIs(t, err, db.ErrDowngrade)
}

func TestMigrateCommandRejectsOldVersion(t *testing.T) {
	setupEnv(t)

	_, err := runApp(t, "migrate", "--to", "3")
	require.ErrorIs(t, err, db.ErrUnsupportedSchema)
}

func TestTreeCommandOnEmptyStore(t *testing.T) {
	setupEnv(t)

	out, err := runApp(t, "tree")
	require.NoError(t, err)
	require.Contains(t, out, "KIND")
	require.Contains(t, out, "all")
	require.Contains(t, out, "starred")
}

func TestAccountCommandNotLoggedIn(t *testing.T) {
	setupEnv(t)

	_, err := runApp(t, "account")
	require.Error(t, err)
}

func TestReadCommandNeedsIDs(t *testing.T) {
	setupEnv(t)

	_, err := runApp(t, "read")
	require.Error(t, err)
}

func TestItemsCommandRejectsUnknownKind(t *testing.T) {
	setupEnv(t)

	_, err := runApp(t, "items", "bogus")
	require.Error(t, err)
}
