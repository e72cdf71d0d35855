package menu

import (
	"context"

	"go-canteen-api/src/infrastructure/log"
	"go-canteen-api/src/services/faults"
)

type MenuService interface {
	ListMenu(ctx context.Context) ([]MenuItem, error)
	AddMenuItem(ctx context.Context, item MenuItem) (MenuItem, error)
}

type menuService struct {
	logger     log.Logger
	repository MenuRepository
}

func NewMenuService(logger log.Logger, repository MenuRepository) *menuService {
	return &menuService{
		logger:     logger,
		repository: repository,
	}
}

func (s *menuService) ListMenu(ctx context.Context) ([]MenuItem, error) {
	items, err := s.repository.GetAll(ctx)
	if err != nil {
		s.logger.Exception(ctx, "Failed to fetch menu", err)
		return nil, err
	}
	return items, nil
}

func (s *menuService) AddMenuItem(ctx context.Context, item MenuItem) (MenuItem, error) {
	if item.Name == "" || item.Category == "" {
		return MenuItem{}, faults.NewValidation("Menu item name and category are required.")
	}
	if item.Price < 0 {
		return MenuItem{}, faults.NewValidation("Menu item price must not be negative.")
	}

	added, err := s.repository.Add(ctx, item)
	if err != nil {
		s.logger.Exception(ctx, "Failed to add menu item", err)
		return MenuItem{}, err
	}
	s.logger.Info(ctx, "Menu item added: "+added.Name)
	return added, nil
}

// SeedMenu inserts the given items, skipping any that already exist by name.
func SeedMenu(ctx context.Context, logger log.Logger, repository MenuRepository, items []MenuItem) error {
	for _, item := range items {
		if err := repository.Seed(ctx, item); err != nil {
			logger.Exception(ctx, "Failed to seed menu item: "+item.Name, err)
			return err
		}
	}
	logger.Info(ctx, "Menu seeded successfully")
	return nil
}
