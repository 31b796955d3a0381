package connection

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfir-tools/tvlog/pkg/scan"
)

const (
	incomingLine = "123456789 Workstation 25-12-2020 14:30:00 25-12-2020 15:00:00 alice"
	outgoingLine = "987654321 24-12-2020 09:00:00 25-12-2020 10:30:45 bob RemoteControl {a1b2c3d4-e5f6}"
)

func TestParseLine_Incoming(t *testing.T) {
	p := NewParser(LayoutIncoming)
	rec := p.ParseLine(incomingLine)

	assert.Equal(t, "123456789", rec.ID)
	assert.Equal(t, "Workstation", rec.DisplayName)
	assert.Equal(t, "alice", rec.User)
	assert.Empty(t, rec.ConnectionType)
	assert.Empty(t, rec.ConnectionID)

	require.NotNil(t, rec.Start)
	require.NotNil(t, rec.End)
	assert.Equal(t, time.Date(2020, 12, 25, 14, 30, 0, 0, time.UTC), *rec.Start)
	assert.True(t, rec.HasElapsed)
	assert.Equal(t, 30*time.Minute, rec.Elapsed)
	assert.Equal(t, "00d.00h:30m:00s", rec.Duration)
}

func TestParseLine_Outgoing(t *testing.T) {
	p := NewParser(LayoutConnections)
	rec := p.ParseLine(outgoingLine)

	assert.Equal(t, "987654321", rec.ID)
	assert.Empty(t, rec.DisplayName)
	assert.Equal(t, "bob", rec.User)
	assert.Equal(t, "RemoteControl", rec.ConnectionType)
	assert.Equal(t, "{a1b2c3d4-e5f6}", rec.ConnectionID)

	require.NotNil(t, rec.Start)
	require.NotNil(t, rec.End)
	assert.Equal(t, 25*time.Hour+30*time.Minute+45*time.Second, rec.Elapsed)
	assert.Equal(t, "01d.01h:30m:45s", rec.Duration)
}

func TestParseLine_CompoundDisplayName(t *testing.T) {
	p := NewParser(LayoutIncoming)

	rec := p.ParseLine("123456789 John Doe Laptop 25-12-2020 14:30:00 25-12-2020 15:00:00 alice")

	assert.Equal(t, "John Doe Laptop", rec.DisplayName)
	require.NotNil(t, rec.Start, "name surplus must not shift the timestamp positions")
	assert.Equal(t, "alice", rec.User)
}

func TestParseLine_BadTimestampUsesSentinel(t *testing.T) {
	tests := []struct {
		name     string
		layout   Layout
		line     string
		sentinel string
	}{
		{
			name:     "incoming bad end",
			layout:   LayoutIncoming,
			line:     "123456789 Workstation 25-12-2020 14:30:00 garbage garbage alice",
			sentinel: "Invalid Duration",
		},
		{
			name:     "outgoing bad start",
			layout:   LayoutConnections,
			line:     "987654321 nonsense nonsense 25-12-2020 10:30:45 bob RemoteControl {a1b2c3d4}",
			sentinel: "--",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewParser(tt.layout).ParseLine(tt.line)
			assert.False(t, rec.HasElapsed)
			assert.Equal(t, tt.sentinel, rec.Duration)
			assert.Equal(t, tt.line, rec.Raw)
		})
	}
}

func TestParseLine_EmptyLine(t *testing.T) {
	p := NewParser(LayoutConnections)
	rec := p.ParseLine("")

	assert.Empty(t, rec.ID)
	assert.Nil(t, rec.Start)
	assert.Nil(t, rec.End)
	assert.Equal(t, "--", rec.Duration)
}

func TestParseLine_ShortLine(t *testing.T) {
	p := NewParser(LayoutConnections)
	rec := p.ParseLine("987654321 24-12-2020 09:00:00")

	assert.Equal(t, "987654321", rec.ID)
	require.NotNil(t, rec.Start)
	assert.Nil(t, rec.End)
	assert.Empty(t, rec.User)
	assert.Empty(t, rec.ConnectionID)
	assert.Equal(t, "--", rec.Duration)
}

func TestParseLines_OneRecordPerLine(t *testing.T) {
	p := NewParser(LayoutConnections)
	lines := []scan.Line{
		{Text: outgoingLine, Source: "Connections.txt", Num: 1},
		{Text: "", Source: "Connections.txt", Num: 2},
		{Text: "malformed", Source: "Connections.txt", Num: 3},
	}

	records := p.ParseLines(lines)

	require.Len(t, records, 3, "every line yields a record, malformed or not")
	assert.Equal(t, 1, records[0].Line)
	assert.Equal(t, 3, records[2].Line)
	assert.Equal(t, "Connections.txt", records[2].Source)
	assert.Equal(t, "malformed", records[2].ID)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Connections.txt")
	content := outgoingLine + "\n" + outgoingLine + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	p := NewParser(LayoutConnections)
	records, err := p.ParseFile(context.Background(), path)

	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, path, records[0].Source)
}

func TestParseFile_MissingFileIsFatal(t *testing.T) {
	p := NewParser(LayoutConnections)
	_, err := p.ParseFile(context.Background(), "/nonexistent/Connections.txt")
	require.Error(t, err)
}

func TestWithTimestampLayout(t *testing.T) {
	p := NewParser(LayoutConnections, WithTimestampLayout("2006-01-02 15:04:05"))
	rec := p.ParseLine("1 2020-12-24 09:00:00 2020-12-24 10:00:00 bob RemoteControl {g}")

	require.NotNil(t, rec.Start)
	assert.Equal(t, "00d.01h:00m:00s", rec.Duration)
}

func TestWithSentinel(t *testing.T) {
	layout := LayoutConnections.WithSentinel("n/a")
	rec := NewParser(layout).ParseLine("")
	assert.Equal(t, "n/a", rec.Duration)

	// Empty override keeps the default
	assert.Equal(t, "--", LayoutConnections.WithSentinel("").DurationSentinel)
}
