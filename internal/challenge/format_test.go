package challenge

import (
	"strconv"
	"strings"
	"testing"

	"github.com/drunkirk/drunkirk-go/internal/engine"
)

func TestFormatSimpleWithoutQuantity(t *testing.T) {
	r := engine.NewSeeded(1, 1)
	c := Simple{ID: "finish_drink", Text: "Finish your drink", Difficulty: Hard}

	text, n := FormatSimple(r, c)
	if text != "Finish your drink" {
		t.Errorf("text = %q, want literal template", text)
	}
	if n != nil {
		t.Errorf("quantity = %d, want nil", *n)
	}
}

func TestFormatSimpleSubstitutesQuantity(t *testing.T) {
	r := engine.NewSeeded(4, 2)
	c := Simple{
		ID:         "take_sips",
		Text:       "Take {n} sips",
		Difficulty: Easy,
		Quantity:   &Range{Min: 1, Max: 3},
	}

	for i := 0; i < 200; i++ {
		text, n := FormatSimple(r, c)
		if n == nil {
			t.Fatal("quantity is nil for a ranged challenge")
		}
		if *n < 1 || *n > 3 {
			t.Fatalf("quantity %d outside [1,3]", *n)
		}
		if want := "Take " + strconv.Itoa(*n) + " sips"; text != want {
			t.Fatalf("text = %q, want %q", text, want)
		}
		if strings.Contains(text, "{n}") {
			t.Fatalf("placeholder left in %q", text)
		}
	}
}

func TestFormatTracked(t *testing.T) {
	tests := []struct {
		name   string
		rounds int
		want   string
	}{
		{name: "singular", rounds: 1, want: "Ana has to speak in an accent for 1 round."},
		{name: "plural", rounds: 3, want: "Ana has to speak in an accent for 3 rounds."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTracked("Ana", "speak in an accent", tt.rounds); got != tt.want {
				t.Errorf("FormatTracked() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	three := 3
	tests := []struct {
		name     string
		d        Difficulty
		quantity *int
		want     int
	}{
		{name: "nil quantity counts as one", d: Easy, quantity: nil, want: 1},
		{name: "easy multiplier", d: Easy, quantity: &three, want: 3},
		{name: "normal multiplier", d: Normal, quantity: &three, want: 6},
		{name: "hard multiplier", d: Hard, quantity: &three, want: 9},
		{name: "brutal multiplier", d: Brutal, quantity: &three, want: 12},
		{name: "brutal without quantity", d: Brutal, quantity: nil, want: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.d, tt.quantity); got != tt.want {
				t.Errorf("Score(%s, %v) = %d, want %d", tt.d, tt.quantity, got, tt.want)
			}
		})
	}
}
