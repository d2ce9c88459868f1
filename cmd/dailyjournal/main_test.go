package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cli struct {
	t  *testing.T
	db string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	for _, key := range []string{"CONFIG_FILE", "DATABASE_URL", "ROLLOVER_AT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	t.Setenv("TIMEZONE", "UTC")
	return &cli{t: t, db: filepath.Join(t.TempDir(), "journal.db")}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	var out, errOut bytes.Buffer
	args = append([]string{"--db", c.db, "--date", "2024-06-01"}, args...)
	err := (&app{}).execute(context.Background(), args, &out, &errOut)
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	require.NoError(c.t, err, "dailyjournal %s", strings.Join(args, " "))
	return out
}

func firstField(out string) string {
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func TestJournalCommands(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("journal", "tasks", "write report", "review PR", "gym")
	assert.Contains(t, out, "1. write report")
	assert.Contains(t, out, "3. gym")

	c.mustRun("journal", "activity", "morning", "deep", "work")
	c.mustRun("journal", "reflect", "gratitude", "sunny day")

	out = c.mustRun("journal", "show")
	assert.Contains(t, out, "2. review PR")
	assert.Contains(t, out, "morning   deep work")
	assert.Contains(t, out, "Reflection (gratitude): sunny day")

	_, err := c.run("journal", "activity", "night", "x")
	assert.Error(t, err)
}

func TestLogAndTagCascade(t *testing.T) {
	c := newCLI(t)

	file := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(file, []byte("%PDF-1.4 test"), 0o644))

	itemID := firstField(c.mustRun("log", "file", file))
	require.NotEmpty(t, itemID)

	tagID := firstField(c.mustRun("tags", "add", "source", "Hacker", "News"))
	assert.Contains(t, c.mustRun("tags", "list", "source"), "Hacker News")

	out := c.mustRun("log", "tag", itemID, "source", "Hacker News")
	assert.Contains(t, out, "source=Hacker News")

	out = c.mustRun("tags", "rm", tagID)
	assert.Contains(t, out, "cleared from 1 item(s)")

	out = c.mustRun("log", "list")
	assert.Contains(t, out, "report")
	assert.NotContains(t, out, "source=")

	c.mustRun("log", "rm", itemID)
	_, err := c.run("log", "rm", itemID)
	assert.Error(t, err)
}

func TestTodayShowsItemsForSelectedDate(t *testing.T) {
	c := newCLI(t)

	file := filepath.Join(t.TempDir(), "notes.docx")
	require.NoError(t, os.WriteFile(file, []byte("PK\x03\x04"), 0o644))
	c.mustRun("log", "file", file)

	out := c.mustRun("today")
	assert.Contains(t, out, "Day 2024-06-01")
	assert.Contains(t, out, "Logged items (1)")
	assert.Contains(t, out, "notes")
}

func TestManifestCommands(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("manifest", "add", "9", "too", "fancy")
	assert.Error(t, err)

	noteID := firstField(c.mustRun("manifest", "add", "2", "ship", "v1"))
	assert.Contains(t, c.mustRun("manifest", "list"), "[style 2] ship v1")

	c.mustRun("manifest", "rm", noteID)
	assert.NotContains(t, c.mustRun("manifest", "list"), "ship v1")
}

func TestInvalidDateFlag(t *testing.T) {
	c := newCLI(t)
	args := []string{"--db", c.db, "--date", "06/01/2024", "today"}
	assert.Error(t, (&app{}).execute(context.Background(), args, &bytes.Buffer{}, &bytes.Buffer{}))
}

func TestExecuteClosesDatabaseOnError(t *testing.T) {
	c := newCLI(t)
	a := &app{}
	args := []string{"--db", c.db, "log", "rm", uuid.NewString()}

	err := a.execute(context.Background(), args, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	require.NotNil(t, a.db)

	sqlDB, err := a.db.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping(), "database handle must be closed after a failed command")
}
