package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/moeen/hemam-theme/internal/config"
)

func TestStoreClosedAfterCommand(t *testing.T) {
	for _, env := range []string{config.EnvStore, config.EnvStorePath, config.EnvKey, config.EnvMode, config.EnvLogLevel} {
		t.Setenv(env, "")
	}

	page := filepath.Join(t.TempDir(), "index.html")
	html := `<html><body style="background-color: #ffffff"><p style="color: #777777">Opening hours</p></body></html>`
	if err := os.WriteFile(page, []byte(html), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"success", []string{"settings", "set", "dark.primaryColor", "#e46c0a"}, false},
		{"validation failure", []string{"settings", "set", "dark.avoidColors", "#ff9800"}, true},
		{"strict audit failure", []string{"audit", page, "--strict"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := filepath.Join(t.TempDir(), "settings.db")
			a := &app{logger: hclog.NewNullLogger()}
			root := newRootCmd(a)
			root.SetOut(io.Discard)
			root.SetErr(io.Discard)
			root.SetArgs(append(tt.args, "--store", "sqlite", "--store-path", db))

			err := root.Execute()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if _, err := os.Stat(db); err != nil {
				t.Fatalf("store was never opened: %v", err)
			}
			if a.kv != nil || a.repo != nil {
				t.Error("settings store left open")
			}
		})
	}
}
