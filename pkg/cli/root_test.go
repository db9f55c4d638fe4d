package cli

import (
	"testing"
)

func TestRootCmd_HasSubcommands(t *testing.T) {
	want := map[string]bool{"serve": false, "fields": false, "version": false}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing %q subcommand", name)
		}
	}
}

func TestServeCmd_Flags(t *testing.T) {
	for _, name := range []string{"config", "port", "max-count", "log-level", "log-format", "rate-limit"} {
		if serveCmd.Flags().Lookup(name) == nil {
			t.Errorf("serve command missing --%s flag", name)
		}
	}
}
