package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/dmitrijs2005/skillverse/internal/config"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Defaults()
	cfg.StoreDriver = config.DriverMemory
	cfg.DigestScheme = "legacy"
	cfg.BackupDir = t.TempDir()
	return cfg
}

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	a, err := NewApp(context.Background(), testConfig(t), strings.NewReader(""), out, io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a, out
}

// feed replaces the input stream with the given lines.
func (a *App) feed(lines ...string) {
	a.reader = bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

// script runs the REPL over lines and returns everything it printed.
func script(t *testing.T, a *App, out *bytes.Buffer, lines ...string) string {
	t.Helper()
	out.Reset()
	a.feed(lines...)
	runREPL(context.Background(), a, a.reader, a.out)
	return out.String()
}

// correctAnswers returns the 1-based answer lines that ace a course quiz.
func correctAnswers(t *testing.T, a *App, courseID string) []string {
	t.Helper()
	c, ok := a.catalog.Course(courseID)
	require.True(t, ok)
	lines := make([]string, 0, len(c.Quiz))
	for _, q := range c.Quiz {
		lines = append(lines, strconv.Itoa(q.CorrectAnswer+1))
	}
	return lines
}

func registerAna(t *testing.T, a *App, out *bytes.Buffer) {
	t.Helper()
	got := script(t, a, out, "register", "Ana", "ana@example.com", "pass1234", "exit")
	require.Contains(t, got, "Welcome to SkillVerse, Ana!")
}

func ctx() context.Context { return context.Background() }
