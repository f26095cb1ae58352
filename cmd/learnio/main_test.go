package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnio/learnio/internal/testutil"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantDebug bool
	}{
		{name: "debug mode", debugMode: true, wantDebug: true},
		{name: "info mode", debugMode: false, wantDebug: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := slog.Default()
			t.Cleanup(func() { slog.SetDefault(original) })

			setupLogger(tt.debugMode)
			assert.Equal(t, tt.wantDebug, slog.Default().Enabled(context.Background(), slog.LevelDebug))
			assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "learnio", cmd.Use)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.Equal(t, "false", cmd.PersistentFlags().Lookup("debug").DefValue)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"migrate", "report", "export", "progress", "reminder"}, names)
}

func findCommand(t *testing.T, path ...string) *cobra.Command {
	t.Helper()
	cmd, _, err := newRootCommand().Find(path)
	require.NoError(t, err)
	return cmd
}

func TestSubcommands(t *testing.T) {
	tests := []struct {
		path  []string
		use   string
		short string
		flags map[string]string
	}{
		{path: []string{"migrate", "up"}, use: "up [steps]", short: "Apply pending migrations"},
		{path: []string{"migrate", "down"}, use: "down [steps]", short: "Roll back migrations"},
		{path: []string{"migrate", "version"}, use: "version", short: "Show the current schema version"},
		{
			path:  []string{"report"},
			use:   "report <user-id>",
			short: "Write a progress report for a user",
			flags: map[string]string{"output": "./reports", "template": "", "pdf": "false"},
		},
		{
			path:  []string{"export"},
			use:   "export <user-id>",
			short: "Export a user's goals, plans and tasks to YAML",
			flags: map[string]string{"output": "./export"},
		},
		{path: []string{"progress", "recompute"}, use: "recompute <user-id>...", short: "Rebuild the stored progress snapshot of users"},
		{path: []string{"reminder", "send"}, use: "send <user-id>", short: "Send today's reminder to a user immediately"},
		{path: []string{"reminder", "enqueue"}, use: "enqueue", short: "Queue today's reminder for every user"},
	}
	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			cmd := findCommand(t, tt.path...)
			assert.Equal(t, tt.use, cmd.Use)
			assert.Equal(t, tt.short, cmd.Short)
			assert.NotNil(t, cmd.RunE)
			for name, def := range tt.flags {
				flag := cmd.Flags().Lookup(name)
				require.NotNil(t, flag, name)
				assert.Equal(t, def, flag.DefValue, name)
			}
		})
	}
}

func TestCommands_RunE_configError(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "migrate up", args: []string{"migrate", "up"}},
		{name: "migrate version", args: []string{"migrate", "version"}},
		{name: "report", args: []string{"report", "user-1"}},
		{name: "export", args: []string{"export", "user-1"}},
		{name: "progress recompute", args: []string{"progress", "recompute", "user-1"}},
		{name: "reminder send", args: []string{"reminder", "send", "user-1"}},
		{name: "reminder enqueue", args: []string{"reminder", "enqueue"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgPath := testutil.SetupBrokenConfigFile(t)
			setConfigFile(t, cfgPath)

			cmd := newRootCommand()
			cmd.SetArgs(append(tt.args, "--config", cfgPath))
			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "load config")
		})
	}
}

func TestCommands_argumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "report without user", args: []string{"report"}, wantErr: "accepts 1 arg(s), received 0"},
		{name: "export with two users", args: []string{"export", "a", "b"}, wantErr: "accepts 1 arg(s), received 2"},
		{name: "recompute without user", args: []string{"progress", "recompute"}, wantErr: "requires at least 1 arg(s), only received 0"},
		{name: "negative migrate steps", args: []string{"migrate", "down", "-1"}, wantErr: "unknown shorthand flag"},
		{name: "non numeric migrate steps", args: []string{"migrate", "down", "two"}, wantErr: `steps must be a non-negative integer: "two"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCommand()
			cmd.SetArgs(tt.args)
			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMigrateVersion_unreachableDatabase(t *testing.T) {
	cfgPath := testutil.SetupTestConfig(t, t.TempDir())
	setConfigFile(t, cfgPath)

	cmd := newRootCommand()
	cmd.SetArgs([]string{"migrate", "version", "--config", cfgPath})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read migration version")
}
