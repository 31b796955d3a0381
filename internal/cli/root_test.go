package cli

import "testing"

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	if cmd.Use != "tvlog" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	want := []string{"incoming", "outgoing", "events", "version"}
	for _, name := range want {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Missing subcommand: %s", name)
		}
	}

	if cmd.PersistentFlags().Lookup("log-level") == nil {
		t.Error("Missing persistent flag: log-level")
	}
}
