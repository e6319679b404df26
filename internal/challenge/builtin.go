package challenge

// Challenge categories used by the built-in pool. Custom challenges always
// land in CategoryCustom.
const (
	CategoryDrinking = "drinking"
	CategorySocial   = "social"
	CategoryDare     = "dare"
	CategoryCustom   = "custom"
)

var builtin = []Challenge{
	Simple{
		ID:         "take_sips",
		Text:       "Take {n} sips",
		Difficulty: Easy,
		Categories: []string{CategoryDrinking},
		Quantity:   &Range{Min: 1, Max: 3},
	},
	Simple{
		ID:         "give_sips",
		Text:       "Give {n} sips",
		Difficulty: Easy,
		Categories: []string{CategoryDrinking},
		Quantity:   &Range{Min: 1, Max: 3},
	},
	Simple{
		ID:         "take_big_sips",
		Text:       "Take {n} sips",
		Difficulty: Normal,
		Categories: []string{CategoryDrinking},
		Quantity:   &Range{Min: 3, Max: 6},
	},
	Simple{
		ID:         "everyone_drinks",
		Text:       "Everyone drinks {n} sips",
		Difficulty: Normal,
		Categories: []string{CategoryDrinking},
		Quantity:   &Range{Min: 1, Max: 2},
	},
	Simple{
		ID:         "finish_drink",
		Text:       "Finish your drink",
		Difficulty: Hard,
		Categories: []string{CategoryDrinking},
	},
	Simple{
		ID:         "compliment_left",
		Text:       "Give {n} compliments to the player on your left",
		Difficulty: Easy,
		Categories: []string{CategorySocial},
		Quantity:   &Range{Min: 1, Max: 2},
	},
	Simple{
		ID:         "truth_question",
		Text:       "Answer a truth question from the group",
		Difficulty: Normal,
		Categories: []string{CategorySocial},
	},
	Simple{
		ID:         "group_story",
		Text:       "Tell an embarrassing story about yourself",
		Difficulty: Normal,
		Categories: []string{CategorySocial},
	},
	Simple{
		ID:         "do_pushups",
		Text:       "Do {n} push-ups",
		Difficulty: Normal,
		Categories: []string{CategoryDare},
		Quantity:   &Range{Min: 5, Max: 10},
	},
	Simple{
		ID:         "sing_chorus",
		Text:       "Sing the chorus of the last song you listened to",
		Difficulty: Hard,
		Categories: []string{CategoryDare},
	},
	Simple{
		ID:         "phone_reveal",
		Text:       "Let the group read your last text message out loud",
		Difficulty: Brutal,
		Categories: []string{CategoryDare, CategorySocial},
	},
	Simple{
		ID:         "waterfall",
		Text:       "Start a waterfall",
		Difficulty: Brutal,
		Categories: []string{CategoryDrinking},
	},
	Tracked{
		ID:         "left_hand_only",
		Action:     "drink only with their left hand",
		Difficulty: Easy,
		Categories: []string{CategoryDrinking},
		Rounds:     Range{Min: 2, Max: 4},
	},
	Tracked{
		ID:         "pinky_up",
		Action:     "drink with their pinky up",
		Difficulty: Easy,
		Categories: []string{CategoryDrinking},
		Rounds:     Range{Min: 2, Max: 4},
	},
	Tracked{
		ID:         "accent",
		Action:     "speak in an accent",
		Difficulty: Normal,
		Categories: []string{CategorySocial},
		Rounds:     Range{Min: 1, Max: 3},
	},
	Tracked{
		ID:         "no_names",
		Action:     "avoid saying anyone's name",
		Difficulty: Hard,
		Categories: []string{CategorySocial},
		Rounds:     Range{Min: 1, Max: 3},
	},
	Tracked{
		ID:         "silent_sips",
		Action:     "stay silent while anyone else is drinking",
		Difficulty: Hard,
		Categories: []string{CategorySocial, CategoryDrinking},
		Rounds:     Range{Min: 2, Max: 3},
	},
}

// Builtin returns a fresh copy of the static pool, safe for the caller to
// append custom challenges onto.
func Builtin() []Challenge {
	out := make([]Challenge, len(builtin))
	copy(out, builtin)
	return out
}
