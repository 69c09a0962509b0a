package sport

// Sport identifies a rating dimension. Every player carries one rating per
// sport, and matches are settled within exactly one sport.
type Sport string

const (
	Tennis      Sport = "tennis"
	Padel       Sport = "padel"
	Basketball  Sport = "basketball"
	Volleyball  Sport = "volleyball"
	Badminton   Sport = "badminton"
	Squash      Sport = "squash"
	Pickleball  Sport = "pickleball"
	TableTennis Sport = "table_tennis"
	Futsal      Sport = "futsal"
)

// All is the closed set of supported sports.
var All = []Sport{
	Tennis,
	Padel,
	Basketball,
	Volleyball,
	Badminton,
	Squash,
	Pickleball,
	TableTennis,
	Futsal,
}

// IsSupported reports whether s is one of the supported sports.
func IsSupported(s Sport) bool {
	for _, known := range All {
		if s == known {
			return true
		}
	}
	return false
}
