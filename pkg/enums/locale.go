package enums

// Locale identifies a storefront display language.
type Locale string

const (
	LocaleUz Locale = "uz"
	LocaleRu Locale = "ru"
)

// String implements fmt.Stringer.
func (l Locale) String() string {
	return string(l)
}

// ParseLocale normalizes raw input, defaulting to Uzbek.
func ParseLocale(value string) Locale {
	if value == string(LocaleRu) {
		return LocaleRu
	}
	return LocaleUz
}
