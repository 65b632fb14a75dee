package domain

// Preferences holds per-user UI state: feature flags, dark mode and the
// active brand theme.
type Preferences struct {
	Flags      map[string]bool
	DarkMode   bool
	BrandTheme BrandTheme
}

// DefaultPreferences returns preferences with no flags set.
func DefaultPreferences() Preferences {
	return Preferences{
		Flags:      map[string]bool{},
		BrandTheme: ThemeDefault,
	}
}

// FlagEnabled returns the flag value, false when unset.
func (p Preferences) FlagEnabled(name string) bool {
	return p.Flags[name]
}
