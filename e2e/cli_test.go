package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cliRunner manages CLI binary execution against a throwaway data file
type cliRunner struct {
	binaryPath string
	dataFile   string
}

func newCLIRunner(t *testing.T) *cliRunner {
	t.Helper()

	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "gamenight-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/gamenight")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		dataFile:   filepath.Join(t.TempDir(), "gamenight.json"),
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--storage", "file",
		"--data-file", r.dataFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, dir, parent, "could not find project root")
		dir = parent
	}
}

type playerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type gameResponse struct {
	ID       string `json:"id"`
	Winner   string `json:"winner"`
	Finished bool   `json:"finished"`
}

type leaderboardResponse struct {
	Entries []struct {
		Rank     int     `json:"rank"`
		Username string  `json:"username"`
		WinRate  float64 `json:"win_rate"`
	} `json:"entries"`
}

type winnersResponse struct {
	Winners []struct {
		Username string `json:"username"`
		Players  int    `json:"players"`
	} `json:"winners"`
}

func (r *cliRunner) addPlayer(t *testing.T, name string) playerResponse {
	t.Helper()

	output, err := r.run("player", "add", name)
	require.NoError(t, err, "player add failed: %s", output)

	var player playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &player))
	require.NotEmpty(t, player.ID)
	return player
}

func TestCLIFullEvening(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	runner := newCLIRunner(t)

	alice := runner.addPlayer(t, "alice")
	bob := runner.addPlayer(t, "bob")
	carol := runner.addPlayer(t, "carol")

	// Start a game
	output, err := runner.run("game", "start",
		"--seat", alice.ID+"=red",
		"--seat", bob.ID+"=blue",
		"--seat", carol.ID+"=white",
	)
	require.NoError(t, err, "game start failed: %s", output)

	var game gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &game))
	assert.False(t, game.Finished)

	// Finish it
	output, err = runner.run("game", "finish", game.ID, "--winner", alice.ID)
	require.NoError(t, err, "game finish failed: %s", output)

	var finished gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &finished))
	assert.True(t, finished.Finished)
	assert.Equal(t, "alice", finished.Winner)

	// Leaderboard has alice on top
	output, err = runner.run("stats", "leaderboard")
	require.NoError(t, err, "stats leaderboard failed: %s", output)

	var board leaderboardResponse
	require.NoError(t, json.Unmarshal([]byte(output), &board))
	require.Len(t, board.Entries, 3)
	assert.Equal(t, "alice", board.Entries[0].Username)
	assert.Equal(t, 1.0, board.Entries[0].WinRate)

	// Recent winners shows the game
	output, err = runner.run("stats", "recent")
	require.NoError(t, err, "stats recent failed: %s", output)

	var winners winnersResponse
	require.NoError(t, json.Unmarshal([]byte(output), &winners))
	require.Len(t, winners.Winners, 1)
	assert.Equal(t, "alice", winners.Winners[0].Username)
	assert.Equal(t, 3, winners.Winners[0].Players)
}

func TestCLIValidationErrors(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	runner := newCLIRunner(t)

	alice := runner.addPlayer(t, "alice")
	bob := runner.addPlayer(t, "bob")

	// Too few seats
	output, err := runner.run("game", "start",
		"--seat", alice.ID+"=red",
		"--seat", bob.ID+"=blue",
	)
	require.Error(t, err)
	assert.Contains(t, output, "at least")

	// Unknown color
	output, err = runner.run("game", "start",
		"--seat", alice.ID+"=red",
		"--seat", bob.ID+"=purple",
		"--seat", "ghost=white",
	)
	require.Error(t, err)
	assert.Contains(t, output, "color")
}

func TestCLIDataPersistsAcrossRuns(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	runner := newCLIRunner(t)
	runner.addPlayer(t, "alice")

	// A fresh process sees the same roster
	output, err := runner.run("player", "list")
	require.NoError(t, err, "player list failed: %s", output)

	var list struct {
		Players []playerResponse `json:"players"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &list))
	require.Len(t, list.Players, 1)
	assert.Equal(t, "alice", list.Players[0].Username)
}
