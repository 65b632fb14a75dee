package repository

import (
	"context"
	"errors"

	"github.com/BigChangeApps/labs-sub003/internal/db"
	"github.com/BigChangeApps/labs-sub003/internal/domain"
)

const (
	prefsFlagsKey    = "flags"
	prefsDarkModeKey = "dark_mode"
	prefsThemeKey    = "theme"
)

// SQLitePreferencesRepo keeps each preference under its own key in the
// prefs namespace.
type SQLitePreferencesRepo struct {
	store LocalStore
}

// NewSQLitePreferencesRepo creates a new SQLitePreferencesRepo.
func NewSQLitePreferencesRepo(conn db.DBTX) *SQLitePreferencesRepo {
	return &SQLitePreferencesRepo{store: NewSQLiteLocalStore(conn)}
}

// Get returns the stored preferences, defaulting any key never written.
func (r *SQLitePreferencesRepo) Get(ctx context.Context) (domain.Preferences, error) {
	p := domain.DefaultPreferences()
	if err := r.read(ctx, prefsFlagsKey, &p.Flags); err != nil {
		return domain.Preferences{}, err
	}
	if p.Flags == nil {
		p.Flags = map[string]bool{}
	}
	if err := r.read(ctx, prefsDarkModeKey, &p.DarkMode); err != nil {
		return domain.Preferences{}, err
	}
	if err := r.read(ctx, prefsThemeKey, &p.BrandTheme); err != nil {
		return domain.Preferences{}, err
	}
	return p, nil
}

func (r *SQLitePreferencesRepo) read(ctx context.Context, key string, v any) error {
	e, err := r.store.Get(ctx, db.NamespacePrefs, key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return decodeValue("preference "+key, e.Value, v)
}

func (r *SQLitePreferencesRepo) Save(ctx context.Context, p domain.Preferences) error {
	values := []struct {
		key string
		v   any
	}{
		{prefsFlagsKey, p.Flags},
		{prefsDarkModeKey, p.DarkMode},
		{prefsThemeKey, p.BrandTheme},
	}
	for _, kv := range values {
		data, err := encodeValue("preference "+kv.key, kv.v)
		if err != nil {
			return err
		}
		if err := r.store.Put(ctx, db.NamespacePrefs, kv.key, data); err != nil {
			return err
		}
	}
	return nil
}
