// internal/share/share.go
//
// Renders a finished puzzle as the plain-text block players paste into chats:
//
//	landmark puzzle #eiffel-tower – Jan 3, 2024
//
//	Landmark: 2/5 ✅
//	Country: X/5 ❌
//	City: 1/5 ✅
//
//	Total guesses: 8
//	https://example.com
//
// Output depends only on its inputs, so the same snapshot always yields the same bytes.

package share

import (
	"fmt"
	"strings"

	"github.com/robalobadob/landmark/internal/daily"
	"github.com/robalobadob/landmark/internal/game"
)

const (
	markSolved = "✅"
	markMissed = "❌"
	notSolved  = "X"
)

var labels = [...]string{"Landmark", "Country", "City"}

// Text builds the share payload for puzzle l on dayKey. url may be empty.
func Text(s game.State, l game.Landmark, dayKey, url string) string {
	lines := []string{
		fmt.Sprintf("landmark puzzle #%s – %s", l.ID, displayDate(dayKey)),
		"",
	}
	for _, r := range game.Rounds {
		lines = append(lines, roundLine(labels[r], s.Round(r)))
	}
	lines = append(lines, "", fmt.Sprintf("Total guesses: %d", s.TotalGuesses()))
	if url = strings.TrimSpace(url); url != "" {
		lines = append(lines, url)
	}
	return strings.Join(lines, "\n")
}

func roundLine(label string, rs game.RoundState) string {
	if rs.Solved() {
		return fmt.Sprintf("%s: %d/%d %s", label, min(rs.AttemptCount(), game.MaxAttempts), game.MaxAttempts, markSolved)
	}
	return fmt.Sprintf("%s: %s/%d %s", label, notSolved, game.MaxAttempts, markMissed)
}

// displayDate renders a day key as "Jan 2, 2006"; unparsable keys are shown as-is.
func displayDate(key string) string {
	t, err := daily.ParseKey(key)
	if err != nil {
		return key
	}
	return t.Format("Jan 2, 2006")
}
