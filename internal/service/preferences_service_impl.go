package service

import (
	"context"
	"strings"

	"github.com/BigChangeApps/labs-sub003/internal/db"
	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/BigChangeApps/labs-sub003/internal/repository"
)

type preferencesService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewPreferencesService(uow db.UnitOfWork, observers ...UseCaseObserver) PreferencesService {
	return &preferencesService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *preferencesService) Get(ctx context.Context) (p domain.Preferences, err error) {
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		p, err = repository.NewSQLitePreferencesRepo(tx).Get(ctx)
		return err
	})
	return p, err
}

func (s *preferencesService) update(ctx context.Context, fn func(p *domain.Preferences)) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLitePreferencesRepo(tx)
		p, err := repo.Get(ctx)
		if err != nil {
			return err
		}
		fn(&p)
		return repo.Save(ctx, p)
	})
}

func (s *preferencesService) SetFlag(ctx context.Context, name string, enabled bool) (err error) {
	defer observe(ctx, s.observer, "set-flag", map[string]any{"flag": name, "enabled": enabled}, &err)()
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.NewValidationError("flag", "flag name is required")
	}
	return s.update(ctx, func(p *domain.Preferences) {
		if p.Flags == nil {
			p.Flags = map[string]bool{}
		}
		p.Flags[name] = enabled
	})
}

func (s *preferencesService) SetDarkMode(ctx context.Context, enabled bool) (err error) {
	defer observe(ctx, s.observer, "set-dark-mode", map[string]any{"enabled": enabled}, &err)()
	return s.update(ctx, func(p *domain.Preferences) { p.DarkMode = enabled })
}

func (s *preferencesService) SetTheme(ctx context.Context, theme domain.BrandTheme) (err error) {
	defer observe(ctx, s.observer, "set-theme", map[string]any{"theme": string(theme)}, &err)()
	if !domain.ValidBrandThemes[theme] {
		return domain.NewValidationError("theme", "unknown brand theme %q", theme)
	}
	return s.update(ctx, func(p *domain.Preferences) { p.BrandTheme = theme })
}
