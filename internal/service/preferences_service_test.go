package service

import (
	"context"
	"testing"

	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencesService_Defaults(t *testing.T) {
	_, uow := setupDB(t)
	svc := NewPreferencesService(uow)

	p, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDefault, p.BrandTheme)
	assert.False(t, p.DarkMode)
	assert.Empty(t, p.Flags)
}

func TestPreferencesService_Updates(t *testing.T) {
	_, uow := setupDB(t)
	ctx := context.Background()
	svc := NewPreferencesService(uow)

	require.NoError(t, svc.SetFlag(ctx, " parentInheritance ", true))
	require.NoError(t, svc.SetFlag(ctx, "breakdownV2", false))
	require.NoError(t, svc.SetDarkMode(ctx, true))
	require.NoError(t, svc.SetTheme(ctx, domain.ThemeBigChange))

	p, err := NewPreferencesService(uow).Get(ctx)
	require.NoError(t, err)
	assert.True(t, p.FlagEnabled("parentInheritance"))
	assert.False(t, p.FlagEnabled("breakdownV2"))
	assert.True(t, p.DarkMode)
	assert.Equal(t, domain.ThemeBigChange, p.BrandTheme)
}

func TestPreferencesService_Rejects(t *testing.T) {
	_, uow := setupDB(t)
	ctx := context.Background()
	svc := NewPreferencesService(uow)

	assert.ErrorIs(t, svc.SetFlag(ctx, "  ", true), domain.ErrValidation)
	assert.ErrorIs(t, svc.SetTheme(ctx, "neon"), domain.ErrValidation)
}
