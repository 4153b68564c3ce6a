package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareTextWonDaily(t *testing.T) {
	answer := coaster("answer")
	s := NewSession(ModeDaily, 20260830, answer)

	wrong := coaster("wrong")
	wrong.Manufacturer = "Mack Rides"
	wrong.YearOpened = intp(2010)
	_, err := s.SubmitGuess(wrong)
	require.NoError(t, err)
	_, err = s.SubmitGuess(answer)
	require.NoError(t, err)
	require.Equal(t, StatusWon, s.Status)

	want := "Coastle #20260830 2/5\n" +
		"⬛🟩🟩⬛🟩\n" +
		"🟩🟩🟩🟩🟩\n"
	assert.Equal(t, want, ShareText(s))
}

func TestShareTextLostConcealsAnswer(t *testing.T) {
	answer := coaster("answer")
	answer.Name = "Steel Vengeance"
	s := NewSession(ModeDaily, 20260101, answer)

	wrong := coaster("wrong")
	wrong.Manufacturer = "Mack Rides"
	wrong.YearOpened = intp(2010)
	_, err := s.SubmitGuess(wrong)
	require.NoError(t, err)
	s.Status = StatusLost

	want := "Coastle #20260101 X/5\n" +
		"⬛🟩🟩⬛🟩\n" +
		"Answer: S•••• V••••••••\n"
	assert.Equal(t, want, ShareText(s))
}

func TestShareTextEndlessHeader(t *testing.T) {
	answer := coaster("answer")
	s := NewSession(ModeEndless, 0, answer)
	_, err := s.SubmitGuess(answer)
	require.NoError(t, err)

	want := "Coastle endless 1/5\n" +
		"🟩🟩🟩🟩🟩\n"
	assert.Equal(t, want, ShareText(s))
}

func TestShareTextDeterministic(t *testing.T) {
	answer := coaster("answer")
	s := NewSession(ModeDaily, 20260830, answer)
	_, _ = s.SubmitGuess(answer)
	assert.Equal(t, ShareText(s), ShareText(s))
}
