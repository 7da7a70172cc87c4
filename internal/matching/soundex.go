package matching

import (
	"strings"
	"unicode"
)

// soundexGroups maps consonants to their sound group. Vowels separate two
// consonants of the same group; H and W do not.
var soundexGroups = map[rune]byte{
	'B': '1', 'F': '1', 'P': '1', 'V': '1',
	'C': '2', 'G': '2', 'J': '2', 'K': '2', 'Q': '2', 'S': '2', 'X': '2', 'Z': '2',
	'D': '3', 'T': '3',
	'L': '4',
	'M': '5', 'N': '5',
	'R': '6',
}

// soundexLength is the code length; the longer code keeps romanised names
// such as "Cho Chikun" and "Cho Hunhyun" apart.
const soundexLength = 6

// Soundex returns a phonetic code for a player name, so that romanisations
// like "Shuusaku" and "Shusaku" compare equal. Non-letters are ignored.
func Soundex(name string) string {
	var letters []rune
	for _, r := range strings.ToUpper(name) {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return ""
	}

	code := []byte(string(letters[0]))
	last := soundexGroups[letters[0]]
	for _, r := range letters[1:] {
		if len(code) >= soundexLength {
			break
		}
		group, ok := soundexGroups[r]
		if !ok {
			if r != 'H' && r != 'W' {
				last = 0
			}
			continue
		}
		if group != last {
			code = append(code, group)
		}
		last = group
	}
	for len(code) < soundexLength {
		code = append(code, '0')
	}
	return string(code)
}

// SoundexMatch reports whether two names sound alike.
func SoundexMatch(a, b string) bool {
	return Soundex(a) == Soundex(b)
}
