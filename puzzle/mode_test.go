package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_Select(t *testing.T) {
	tests := []struct {
		from, to Mode
		want     Transition
		changed  bool
	}{
		{ModeImage, ModeHard, Transition{ShowHard: true, FetchPuzzle: true}, true},
		{ModeImage, ModeEasy, Transition{ShowEasy: true}, true},
		{ModeHard, ModeImage, Transition{ShowImage: true}, true},
		{ModeEasy, ModeEasy, Transition{}, false},
		{ModeHard, ModeHard, Transition{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			s := NewSelector(tt.from)
			got, changed, err := s.Select(tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
			assert.Equal(t, tt.to, s.Current())
		})
	}
}

func TestSelector_UnknownMode(t *testing.T) {
	s := NewSelector(ModeEasy)
	_, _, err := s.Select(Mode(42))
	assert.ErrorIs(t, err, ErrUnknownMode)
	assert.Equal(t, ModeEasy, s.Current())
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeImage, ModeEasy, ModeHard} {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := ParseMode("medium")
	assert.ErrorIs(t, err, ErrUnknownMode)
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
