package types

import "strings"

// BilingualText carries the Uzbek and Russian variants of a display string.
// Uzbek is the canonical language; Russian falls back to it when empty.
type BilingualText struct {
	Uz string `json:"uz"`
	Ru string `json:"ru"`
}

// Resolve returns the variant for the requested locale, falling back to the
// Uzbek text and finally to whichever variant is non-empty.
func (b BilingualText) Resolve(locale string) string {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case "ru":
		if b.Ru != "" {
			return b.Ru
		}
	}
	if b.Uz != "" {
		return b.Uz
	}
	return b.Ru
}

// IsEmpty reports whether both variants are blank.
func (b BilingualText) IsEmpty() bool {
	return strings.TrimSpace(b.Uz) == "" && strings.TrimSpace(b.Ru) == ""
}
