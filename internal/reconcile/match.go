package reconcile

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold lowercases s and strips diacritics so "JOAO SILVA" matches "João Silva".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}

	return strings.ToLower(strings.TrimSpace(out))
}

// matchParticipant returns the first roster entry whose name contains the
// payer name or is contained by it. Entries without a name never match.
func matchParticipant(payer string, roster []Participant) *Participant {
	p := fold(payer)
	if p == "" || payer == UnknownPayer {
		return nil
	}

	for i := range roster {
		name := fold(roster[i].Name)
		if name == "" {
			continue
		}

		if strings.Contains(name, p) || strings.Contains(p, name) {
			return &roster[i]
		}
	}

	return nil
}
