package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mahjong-hand/config"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	out, err := run(t, "", "eval", "--plain", "234m567m23p678s55s", "4p")
	require.NoError(t, err)
	assert.Contains(t, out, "Win: 4p (Ron)")
	assert.Contains(t, out, "Pinfu (1)")
	assert.Contains(t, out, "Best: 2 han 30 fu [standard]")
}

func TestEval_TableFlags(t *testing.T) {
	out, err := run(t, "", "eval", "--plain", "--seat", "south", "--round", "south", "--riichi", "--ippatsu", "123m456p789s99m22z", "2z")
	require.NoError(t, err)
	assert.Contains(t, out, "Seat: South | Round: South")
	assert.Contains(t, out, "Riichi (1)")
	assert.Contains(t, out, "Ippatsu (1)")
	assert.Contains(t, out, "Yakuhai (Seat Wind) (1)")
	assert.Contains(t, out, "Yakuhai (Round Wind) (1)")
}

func TestEval_KuitanFromConfig(t *testing.T) {
	out, err := run(t, "", "eval", "--plain", "234m567m23p55s[678s]", "4p")
	require.NoError(t, err)
	assert.Contains(t, out, "OpSq(6s,7s,8s)")
	assert.Contains(t, out, "Tanyao (1)")

	path := filepath.Join(t.TempDir(), "riichi.toml")
	require.NoError(t, os.WriteFile(path, []byte("[rules]\nkuitan = false\n"), 0o644))
	out, err = run(t, "", "eval", "--plain", "--config", path, "234m567m23p55s[678s]", "4p")
	require.NoError(t, err)
	assert.Contains(t, out, "No yaku")
	assert.NotContains(t, out, "Tanyao")
}

func TestEval_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad wind", []string{"eval", "--seat", "up", "234m567m23p678s55s4p"}},
		{"bad hand", []string{"eval", "234m567m"}},
		{"bad dora", []string{"eval", "--dora", "9x", "234m567m23p678s55s4p"}},
		{"bad ura", []string{"eval", "--ura", "0z", "234m567m23p678s55s4p"}},
		{"no args", []string{"eval"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestWaits(t *testing.T) {
	out, err := run(t, "", "waits", "1112345678999m")
	require.NoError(t, err)
	assert.Contains(t, out, "Shanten: 0")
	assert.Contains(t, out, "Waits: 123456789m")

	out, err = run(t, "", "waits", "13579m2468p1357z")
	require.NoError(t, err)
	assert.Contains(t, out, "Waits: none")

	_, err = run(t, "", "waits", "123m")
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	input := strings.Join([]string{
		"# sample",
		"234m567m23p678s55s4p",
		"",
		"123m456p789s234m9m 9m",
		"19m19p19s1234567z 1m",
	}, "\n")

	out, err := run(t, input, "batch", "--workers", "2", "-")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "234567m234p55678s 4p Tsumo: 3 han 20 fu [standard] Menzen Tsumo (1), Pinfu (1), Tanyao (1)", lines[0])
	assert.Contains(t, lines[1], "no yaku")
	assert.Contains(t, lines[2], "Yakuman")
}

func TestBatch_BadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hands.txt")
	require.NoError(t, os.WriteFile(path, []byte("234m567m23p678s55s4p\n123x\n"), 0o644))

	out, err := run(t, "", "batch", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBatchFailed)
	assert.Contains(t, out, "Pinfu (1)")
	assert.Contains(t, out, "line 2: 123x: error:")
}

func TestBatch_MissingFile(t *testing.T) {
	_, err := run(t, "", "batch", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestConfigCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "riichi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("table:\n  seat_wind: west\nbatch:\n  workers: 8\n"), 0o644))

	out, err := run(t, "", "config", "--config", path, "--round", "south")
	require.NoError(t, err)
	assert.Contains(t, out, "seat_wind: west")
	assert.Contains(t, out, "round_wind: south")
	assert.Contains(t, out, "workers: 8")
}

func TestShell(t *testing.T) {
	input := "help\n234m567m23p678s55s 4p\nbogus\nwaits 1112345678999m\nquit\n234m567m23p678s55s4p\n"
	out, err := run(t, input, "shell", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Best: 2 han 30 fu [standard]")
	assert.Contains(t, out, "Invalid input:")
	assert.Contains(t, out, "Waits: 123456789m")
	assert.NotContains(t, out, "Tsumo)", "input after quit is ignored")
}

func TestShell_EOF(t *testing.T) {
	out, err := run(t, "234m567m23p678s55s4p", "shell", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Win: 4p (Tsumo)")
}

func TestFormatter(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "hand rejected",
		Data:    logrus.Fields{"line": 2, "error": "bad"},
	}
	b, err := (&Formatter{}).Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02 03:04:05 [warning] hand rejected error=bad line=2\n", string(b))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger(config.Log{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)
	l.WithField("k", "v").Debug("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	_, err = newLogger(config.Log{Level: "loud", Format: "text"}, &buf)
	assert.Error(t, err)
}
