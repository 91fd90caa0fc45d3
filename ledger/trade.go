// Package ledger owns the authoritative trade collection: the trade
// model, the store that mediates all mutation, and the persistence
// ports that back it.
package ledger

import (
	"fmt"
	"strings"
	"time"
)

// Direction of a position.
type Direction string

const (
	Buy  Direction = "BUY"
	Sell Direction = "SELL"
)

// Emotion tags the psychological state a trade was taken in. The string
// values carry their emoji prefixes because that is exactly what the
// persisted slot holds; changing them would orphan saved ledgers.
type Emotion string

const (
	Calm          Emotion = "🧘 Calm"
	Confident     Emotion = "🔥 Confident"
	Fearful       Emotion = "😨 Fearful"
	Overconfident Emotion = "😤 Overconfident"
	Revenge       Emotion = "🤡 Revenge"
)

// Emotions lists the valid tags in display order.
var Emotions = []Emotion{Calm, Confident, Fearful, Overconfident, Revenge}

// Trade is one logged position outcome. ID is assigned at creation and
// immutable; edits replace every other field wholesale. Result is a
// signed currency amount, profit if positive.
type Trade struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Symbol    string    `json:"symbol"`
	Direction Direction `json:"direction"`
	Result    float64   `json:"result"`
	Emotion   Emotion   `json:"emotion"`
	Notes     string    `json:"notes,omitempty"`
}

// ParseDirection accepts "BUY"/"SELL" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	}
	return "", fmt.Errorf("invalid direction %q (want BUY or SELL)", s)
}

// ParseEmotion accepts either the full stored tag ("🧘 Calm") or the
// bare word ("calm") in any case.
func ParseEmotion(s string) (Emotion, error) {
	in := strings.TrimSpace(s)
	for _, e := range Emotions {
		if in == string(e) {
			return e, nil
		}
		_, word, ok := strings.Cut(string(e), " ")
		if ok && strings.EqualFold(in, word) {
			return e, nil
		}
	}
	return "", fmt.Errorf("invalid emotion %q", s)
}

// Word returns the tag without its emoji prefix, for terminal output.
func (e Emotion) Word() string {
	_, word, ok := strings.Cut(string(e), " ")
	if !ok {
		return string(e)
	}
	return word
}
