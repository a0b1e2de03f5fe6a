package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/skirmish/internal/game"
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/testutil"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("bogus"))
}

func TestWaitForEnter(t *testing.T) {
	var out bytes.Buffer
	pause := waitForEnter(strings.NewReader("\n"), &out)

	require.NoError(t, pause(context.Background()))
	assert.Contains(t, out.String(), "Press Enter")

	// Input is exhausted: EOF lets every remaining round through.
	for range 3 {
		require.NoError(t, pause(testutil.ContextWithTimeout(t, time.Second)))
	}
}

func TestWaitForEnter_EmptyInput(t *testing.T) {
	pause := waitForEnter(strings.NewReader(""), io.Discard)

	for range 3 {
		require.NoError(t, pause(testutil.ContextWithTimeout(t, time.Second)))
	}
}

func TestWaitForEnter_ReadError(t *testing.T) {
	pause := waitForEnter(iotest.ErrReader(testutil.ErrSimulated), io.Discard)

	for range 2 {
		assert.ErrorIs(t, pause(testutil.ContextWithTimeout(t, time.Second)), testutil.ErrSimulated)
	}
}

func TestWaitForEnter_Cancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	pause := waitForEnter(r, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, pause(ctx), context.Canceled)
}

func TestPrintResult(t *testing.T) {
	var out bytes.Buffer
	printResult(&out, game.Result{
		Hero:     "Alice",
		Class:    model.ClassMage,
		Weapon:   "staff",
		Armor:    "robe",
		Enemy:    "Legendary Dragon",
		Location: "dragon lair",
		Strong:   true,
		Outcome:  combat.Outcome{Victory: true, Rounds: 4},
		Score:    200,
		Previous: model.PlayerProfile{Name: "Alice", Score: 10},
		Profile:  model.PlayerProfile{Name: "Alice", Score: 200},
	})

	assert.Equal(t,
		"Alice the MAGE (staff, robe) defeated Legendary Dragon (strong) at dragon lair in 4 rounds\nscore: 200 (was 10)\n",
		out.String())
}

func TestRun_RequiresPlayer(t *testing.T) {
	err := run(context.Background(), flags{})
	assert.Error(t, err)
}

func TestFlagChoices(t *testing.T) {
	assert.Equal(t, "warrior, thief, mage", classChoices())
	assert.Equal(t, `"mystic forest", "haunted manor", "dragon lair"`, locationChoices())
}
