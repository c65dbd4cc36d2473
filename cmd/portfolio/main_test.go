package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Zachkp/portfolio/internal/scroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		progress, viewportWidth, segment, viewportHeight, containerTop = 0, 1280, 0, 900, 0
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestFrameCommand(t *testing.T) {
	out, err := execute(t, "frame", "--progress", "0.5")
	require.NoError(t, err)

	var frame map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &frame))
	assert.Equal(t, "desktop", frame["mode"])
	assert.Equal(t, 6.0, frame["total_segments"])
	assert.Equal(t, 0.5, frame["progress"])
}

func TestFrameCommandMobile(t *testing.T) {
	out, err := execute(t, "frame", "--progress", "0", "--width", "390")
	require.NoError(t, err)

	var frame map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &frame))
	assert.Equal(t, "mobile", frame["mode"])
	assert.NotContains(t, frame, "grid")
}

func TestFrameCommandRejectsProgress(t *testing.T) {
	_, err := execute(t, "frame", "--progress", "2")
	assert.Error(t, err)
}

func TestJumpCommand(t *testing.T) {
	out, err := execute(t, "jump", "--segment", "2", "--viewport", "900", "--top", "900")
	require.NoError(t, err)

	var resp struct {
		Segment int     `json:"segment"`
		Offset  float64 `json:"offset"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 2, resp.Segment)
	assert.InDelta(t, 900+scroll.JumpOffset(2, 900), resp.Offset, 1e-9)
}

func TestJumpCommandOutOfRange(t *testing.T) {
	_, err := execute(t, "jump", "--segment", "4", "--width", "390")
	assert.ErrorIs(t, err, scroll.ErrSegmentOutOfRange)

	_, err = execute(t, "jump", "--segment", "0", "--viewport", "0")
	assert.Error(t, err)
}
