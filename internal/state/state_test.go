package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/duelview/internal/palette"
)

func TestFrameValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		frame     Frame
		expectErr bool
		rangeErr  bool
	}{
		{
			name: "two players",
			frame: Frame{Players: []Player{
				{Slot: 0, Nickname: "A", Position: 3},
				{Slot: 1, Nickname: "B", Position: 17},
			}},
		},
		{
			name:      "more players than colours",
			frame:     Frame{Players: []Player{{Slot: 2, Nickname: "C"}}},
			expectErr: true,
			rangeErr:  true,
		},
		{
			name:      "tooltip for unknown slot",
			frame:     Frame{Tooltips: []Tooltip{{Slot: -1, Text: TooltipParry}}},
			expectErr: true,
			rangeErr:  true,
		},
		{
			name:      "off the piste",
			frame:     Frame{Players: []Player{{Slot: 0, Position: Piste + 1}}},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.frame.Validate(palette.PlayerColors)
			if !tc.expectErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var rangeErr *palette.OutOfRangeError
			require.Equal(t, tc.rangeErr, errors.As(err, &rangeErr))
		})
	}
}

func TestReplayValidate_StopsAtFirstBadFrame(t *testing.T) {
	t.Parallel()

	r := &Replay{Frames: []*Frame{
		{Turn: 1, Players: []Player{{Slot: 0}}},
		{Turn: 2, Players: []Player{{Slot: 5}}},
	}}
	err := r.Validate(palette.PlayerColors)
	require.ErrorContains(t, err, "turn 2")
}
