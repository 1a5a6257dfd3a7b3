package enums

// SettingKey names the admin-configurable scalars stored in the settings table.
type SettingKey string

const (
	// SettingCurrencyRate is the USD to UZS multiplier shown on the storefront.
	SettingCurrencyRate SettingKey = "currencyRate"
)

// String implements fmt.Stringer.
func (k SettingKey) String() string {
	return string(k)
}
