package spam

// emojiRanges lists the Unicode blocks accepted by the emoji-only check,
// plus the joiners and modifiers that legal emoji sequences carry. Kept as
// an explicit table so the classification does not drift with a library's
// Unicode version; digits and '#' are intentionally not treated as emoji
var emojiRanges = [][2]rune{
	{0x2190, 0x21FF},   // arrows
	{0x2600, 0x26FF},   // miscellaneous symbols
	{0x2700, 0x27BF},   // dingbats
	{0x2B00, 0x2BFF},   // misc symbols and arrows (stars, circles)
	{0x1F1E6, 0x1F1FF}, // regional indicators (flags)
	{0x1F300, 0x1F5FF}, // misc symbols and pictographs, incl skin tones
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport and map
	{0x1F900, 0x1F9FF}, // supplemental symbols and pictographs
	{0x1FA70, 0x1FAFF}, // symbols and pictographs extended-A
	{0x200D, 0x200D},   // zero width joiner
	{0x20E3, 0x20E3},   // combining enclosing keycap
	{0xFE0E, 0xFE0F},   // variation selectors
}

func isEmojiRune(r rune) bool {
	for _, rng := range emojiRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

// isEmojiOnly reports whether s is non-empty and every rune is an emoji
// character. Whitespace disqualifies; callers pass normalized text so a
// lone emoji run is exactly what remains
func isEmojiOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isEmojiRune(r) {
			return false
		}
	}
	return true
}
