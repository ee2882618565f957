package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankist-dev/bankist/internal/config"
	"github.com/bankist-dev/bankist/internal/seed"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"init", dir, "--name", "Side Bank"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Initialized Side Bank")

	cfg, err := config.Load(filepath.Join(dir, "bankist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Side Bank", cfg.Bank.Name)
	assert.Equal(t, "accounts.csv", cfg.Seed.Path)

	accounts, err := seed.Load(filepath.Join(dir, "accounts.csv"))
	require.NoError(t, err)
	assert.Len(t, accounts, 4)
}

func TestRunInit_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "bank")
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"init", dir})

	require.NoError(t, cmd.Execute())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestAccountsList(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	// No config file present: defaults plus built-in seed accounts.
	cmd.SetArgs([]string{"accounts", "list", "--config", filepath.Join(t.TempDir(), "absent.yaml")})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "js")
	assert.Contains(t, out.String(), "Steven Thomas Williams")
	assert.Contains(t, out.String(), "3840")
}

func TestAccountsCheck(t *testing.T) {
	t.Run("clean seed", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewRootCommand()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"accounts", "check", "--config", filepath.Join(t.TempDir(), "absent.yaml")})

		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), "4 accounts OK")
	})

	t.Run("duplicate usernames", func(t *testing.T) {
		dir := t.TempDir()
		seedPath := filepath.Join(dir, "accounts.csv")
		csv := "owner,interest_rate,pin,movements\nSam Smith,1,1234,100\nSue Stone,1,5678,200\n"
		require.NoError(t, os.WriteFile(seedPath, []byte(csv), 0o644))

		cfg := config.Default()
		cfg.Seed.Path = seedPath
		cfgPath := filepath.Join(dir, "bankist.yaml")
		require.NoError(t, config.Save(cfgPath, cfg))

		var out bytes.Buffer
		cmd := NewRootCommand()
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"accounts", "check", "--config", cfgPath})

		require.Error(t, cmd.Execute())
		assert.Contains(t, out.String(), "share a username")
	})
}
