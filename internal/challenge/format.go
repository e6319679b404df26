package challenge

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/drunkirk/drunkirk-go/internal/engine"
)

// quantityPlaceholder is the token a Simple challenge template may contain
// exactly once.
const quantityPlaceholder = "{n}"

// FormatSimple renders the display text for a simple challenge. When the
// challenge declares a quantity range, an integer is drawn from it and
// substituted for the placeholder; otherwise the text is returned verbatim
// with a nil quantity.
func FormatSimple(r engine.Rand, c Simple) (string, *int) {
	if c.Quantity == nil {
		return c.Text, nil
	}
	n := engine.IntBetween(r, c.Quantity.Min, c.Quantity.Max)
	return strings.Replace(c.Text, quantityPlaceholder, strconv.Itoa(n), 1), &n
}

// FormatTracked renders the ongoing-effect sentence shown when a tracked
// challenge starts, with singular/plural agreement on "round".
func FormatTracked(targetName, action string, rounds int) string {
	unit := "rounds"
	if rounds == 1 {
		unit = "round"
	}
	return fmt.Sprintf("%s has to %s for %d %s.", targetName, action, rounds, unit)
}
