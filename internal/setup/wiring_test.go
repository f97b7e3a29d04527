package setup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\ninput_dir: from-file\n"), 0644))

	t.Setenv("AOC_CONFIG_PATH", path)
	t.Setenv("AOC_INPUT_DIR", "from-env")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "from-env", cfg.InputDir)
}

func TestLoadConfig_BadPath(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestWire_SolvesSamples(t *testing.T) {
	t.Setenv("AOC_CONFIG_PATH", "")
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	logger := zerolog.Nop()
	deps := Wire(cfg, &logger)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, deps.Runner.Days())

	want := map[int][2]int{
		1: {7, 5},
		2: {150, 900},
		3: {198, 230},
		4: {4512, 1924},
		5: {5, 12},
	}
	for day, answers := range want {
		path := filepath.Join("..", "..", "aoc", "2021", fmt.Sprintf("day%02d", day), "testdata", "example.txt")
		result, err := deps.Runner.Run(context.Background(), day, path)
		require.NoError(t, err, "day %d", day)
		assert.Equal(t, answers[0], result.Part1, "day %d part 1", day)
		assert.Equal(t, answers[1], result.Part2, "day %d part 2", day)
	}
}
