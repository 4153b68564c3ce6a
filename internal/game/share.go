// internal/game/share.go
//
// Share-text export: a deterministic text rendering of a finished session,
// pure in the Session value so it is testable by plain string comparison.
//
// Format:
//   Coastle #20260830 3/5        ← header; "endless" replaces the seed tag
//   ⬛🟩⬛⬛🟩                    ← one line per guess, one square per attribute
//   🟩🟩🟩🟩🟩
//   Answer: V•••••• N•••••       ← losses only, concealed reveal

package game

import (
	"fmt"
	"strings"
)

const (
	squareCorrect = "🟩"
	squareWrong   = "⬛"
)

// ShareText renders s for sharing. Callers should only expose the result
// for finished sessions; on an unfinished one the header reads "X/5" as if
// the game were lost.
func ShareText(s *Session) string {
	var b strings.Builder

	tag := "endless"
	if s.Mode == ModeDaily {
		tag = fmt.Sprintf("#%d", s.Seed)
	}
	result := "X/" + fmt.Sprint(MaxGuesses)
	if s.Status == StatusWon {
		result = fmt.Sprintf("%d/%d", len(s.Guesses), MaxGuesses)
	}
	fmt.Fprintf(&b, "Coastle %s %s\n", tag, result)

	for _, g := range s.Guesses {
		for _, attr := range Attributes {
			if g.Matches[attr] == VerdictCorrect {
				b.WriteString(squareCorrect)
			} else {
				b.WriteString(squareWrong)
			}
		}
		b.WriteString("\n")
	}

	if s.Status == StatusLost {
		fmt.Fprintf(&b, "Answer: %s\n", concealName(s.Answer.Name))
	}
	return b.String()
}

// concealName keeps the first rune of each word and masks the rest, so the
// reveal teases without spoiling tomorrow's conversation.
func concealName(name string) string {
	words := strings.Fields(name)
	out := make([]string, len(words))
	for i, w := range words {
		runes := []rune(w)
		out[i] = string(runes[0]) + strings.Repeat("•", len(runes)-1)
	}
	return strings.Join(out, " ")
}
