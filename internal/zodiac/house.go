package zodiac

import "strconv"

// House is a whole-sign house number, 1 through 12.
type House int

var houseThemes = [SignCount]string{
	"Self, Identity, and Appearance",
	"Money and Possessions",
	"Communication and Local Travel",
	"Home and Family",
	"Creativity and Romance",
	"Health and Daily Work",
	"Partnerships and Marriage",
	"Shared Resources and Transformation",
	"Philosophy and Long-Distance Travel",
	"Career and Public Reputation",
	"Friendships and Social Groups",
	"Spirituality and the Subconscious",
}

// HouseOf returns the whole-sign house a body occupies: the natal Sun's sign
// is the 1st house and each following sign is the next house.
func HouseOf(bodySign, natalSign Sign) House {
	return House(FocusHouseIndex(bodySign, natalSign) + 1)
}

// FocusHouseIndex returns the zero-based offset of bodySign from natalSign,
// 0 through 11. It indexes the house theme table directly and is used for
// the summary's focus house; HouseOf is this value plus one.
func FocusHouseIndex(bodySign, natalSign Sign) int {
	return ((int(bodySign)-int(natalSign))%SignCount + SignCount) % SignCount
}

// HouseThemeAt returns the theme at a zero-based house index.
func HouseThemeAt(index int) string {
	if index < 0 || index >= SignCount {
		return ""
	}
	return houseThemes[index]
}

// Valid reports whether h is in 1..12.
func (h House) Valid() bool {
	return h >= 1 && h <= SignCount
}

// Theme returns the life area associated with the house.
func (h House) Theme() string {
	return HouseThemeAt(int(h) - 1)
}

// Suffix returns the ordinal suffix used in transit statements. Only the
// literal numbers 1, 2 and 3 get st/nd/rd; everything else, 11 and 12
// included, gets th.
func (h House) Suffix() string {
	switch h {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// Ordinal returns the house number with its suffix, e.g. "4th".
func (h House) Ordinal() string {
	return strconv.Itoa(int(h)) + h.Suffix()
}

// HouseThemes returns a copy of the house theme table, 1st house first.
func HouseThemes() [SignCount]string {
	return houseThemes
}
