package util_test

import (
	"bufio"
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/jlym/frienddir/internal/util"
	"github.com/stretchr/testify/require"
)

func TestStubClock(t *testing.T) {
	clock := util.NewStubClock()

	start := time.Date(2024, time.March, 3, 10, 0, 0, 0, time.UTC)
	clock.SetNow(start)
	require.Equal(t, start, clock.NowUtc())
	require.Equal(t, start, clock.NowUtc())

	next := clock.Advance(time.Minute)
	require.Equal(t, start.Add(time.Minute), next)
	require.Equal(t, next, clock.NowUtc())
}

func TestStubClockStartsAtEpoch(t *testing.T) {
	require.Equal(t, util.StubEpoch, util.NewStubClock().NowUtc())
}

func TestStubClockStep(t *testing.T) {
	clock := util.NewStubClock()
	clock.Step = time.Second

	first := clock.NowUtc()
	second := clock.NowUtc()
	require.Equal(t, util.StubEpoch, first)
	require.Equal(t, first.Add(time.Second), second)
}

func TestRealClockIsUtc(t *testing.T) {
	now := util.NewRealClock().NowUtc()
	require.Equal(t, time.UTC, now.Location())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := util.NewLogger(&buf, "warn", "json")
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", slog.String("name", "alice"))
	require.NotContains(t, buf.String(), "dropped")
	require.Contains(t, buf.String(), `"name":"alice"`)

	_, err = util.NewLogger(&buf, "loud", "text")
	require.Error(t, err)

	_, err = util.NewLogger(&buf, "info", "xml")
	require.Error(t, err)
}

func TestReadLine(t *testing.T) {
	wide := strings.Repeat("w", 100*1024)
	reader := bufio.NewReader(strings.NewReader("one\r\n\n" + wide + "\ntwo"))

	var lines []string
	for {
		line, err := util.ReadLine(reader)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		lines = append(lines, line)
	}
	require.Equal(t, []string{"one", "", wide, "two"}, lines)
}
