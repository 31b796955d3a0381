package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const outgoingFixture = `987654321 24-12-2020 09:00:00 25-12-2020 10:30:45 bob RemoteControl {a1b2c3d4-e5f6}
111222333 25-12-2020 08:00:00 25-12-2020 08:05:00 carol FileTransfer {ffff-0000}
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestNewIncomingCommand(t *testing.T) {
	cmd := NewIncomingCommand()

	if cmd.Use != "incoming <log-file>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	flags := []string{"config", "output", "quiet", "verbose", "after", "before", "shortest", "longest", "unique"}
	for _, flag := range flags {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}
}

func TestNewEventsCommand(t *testing.T) {
	cmd := NewEventsCommand()

	if cmd.Use != "events <log-dir>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}
	if cmd.Flags().Lookup("kind") == nil {
		t.Error("Missing flag: kind")
	}
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand()

	if cmd.Use != "version" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}
}

func TestRunOutgoing_Success(t *testing.T) {
	path := writeFixture(t, "Connections.txt", outgoingFixture)

	cmd := NewOutgoingCommand()
	cmd.SetArgs([]string{path, "-o", "json", "-q"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}

func TestRunOutgoing_MissingFileIsFatal(t *testing.T) {
	cmd := NewOutgoingCommand()
	cmd.SetArgs([]string{"/nonexistent/Connections.txt", "-q"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() expected error for missing file")
	}
}

func TestRunOutgoing_MutuallyExclusiveFlags(t *testing.T) {
	path := writeFixture(t, "Connections.txt", outgoingFixture)

	cmd := NewOutgoingCommand()
	cmd.SetArgs([]string{path, "--shortest", "--longest"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() expected error for --shortest with --longest")
	}
}

func TestRunOutgoing_UniqueNameRejected(t *testing.T) {
	path := writeFixture(t, "Connections.txt", outgoingFixture)

	cmd := NewOutgoingCommand()
	cmd.SetArgs([]string{path, "--unique", "name", "-q"})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "display name") {
		t.Errorf("Execute() = %v, want display name error", err)
	}
}

func TestRunOutgoing_UnknownOutputFormat(t *testing.T) {
	path := writeFixture(t, "Connections.txt", outgoingFixture)

	cmd := NewOutgoingCommand()
	cmd.SetArgs([]string{path, "-o", "xml"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() expected error for unknown output format")
	}
}

func TestRunEvents_MissingDirSucceedsEmpty(t *testing.T) {
	cmd := NewEventsCommand()
	cmd.SetArgs([]string{"/nonexistent/teamviewer", "-q"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("Execute() error = %v, directory scans are non-fatal", err)
	}
}

func TestRunEvents_UnknownKind(t *testing.T) {
	cmd := NewEventsCommand()
	cmd.SetArgs([]string{t.TempDir(), "--kind", "bogus"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() expected error for unknown kind")
	}
}

func TestParseBound(t *testing.T) {
	layout := "02-01-2006 15:04:05"

	full, err := parseBound("25-12-2020 14:30:00", layout)
	if err != nil || full == nil {
		t.Fatalf("parseBound(full) = %v, %v", full, err)
	}
	if full.Hour() != 14 {
		t.Errorf("Hour = %d, want 14", full.Hour())
	}

	dateOnly, err := parseBound("25-12-2020", layout)
	if err != nil || dateOnly == nil {
		t.Fatalf("parseBound(date) = %v, %v", dateOnly, err)
	}
	if dateOnly.Hour() != 0 {
		t.Errorf("Hour = %d, want 0 (midnight)", dateOnly.Hour())
	}

	if _, err := parseBound("not-a-date", layout); err == nil {
		t.Error("parseBound() expected error for garbage input")
	}

	none, err := parseBound("", layout)
	if err != nil || none != nil {
		t.Errorf("parseBound(\"\") = %v, %v, want nil, nil", none, err)
	}
}
