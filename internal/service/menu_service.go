package service

import (
	"strings"

	"kopikita/internal/repositories"
	"kopikita/models"
	"kopikita/pkg/logger"
)

// MenuServiceInterface exposes menu browsing operations.
type MenuServiceInterface interface {
	GetMenu(category, query string) ([]*models.MenuItem, error)
	GetMenuItem(id string) (*models.MenuItem, error)
	GetCombos(id string) ([]*models.MenuItem, error)
}

// MenuService implements menu browsing over the catalog.
type MenuService struct {
	catalogRepo repositories.CatalogRepositoryInterface
	logger      *logger.Logger
}

// NewMenuService creates a new MenuService with the given repository and logger
func NewMenuService(catalogRepo repositories.CatalogRepositoryInterface, logger *logger.Logger) *MenuService {
	return &MenuService{
		catalogRepo: catalogRepo,
		logger:      logger.WithComponent("menu_service"),
	}
}

// GetMenu retrieves menu items, optionally filtered by category and a
// case-insensitive search over name and description.
func (s *MenuService) GetMenu(category, query string) ([]*models.MenuItem, error) {
	items, err := s.catalogRepo.GetAll()
	if err != nil {
		s.logger.Error("Failed to get menu items from repository", "error", err)
		return nil, err
	}

	if category == "" && query == "" {
		return items, nil
	}

	query = strings.ToLower(query)
	filtered := []*models.MenuItem{}
	for _, item := range items {
		if category != "" && string(item.Category) != category {
			continue
		}
		if query != "" {
			name := strings.ToLower(item.Name)
			description := strings.ToLower(item.Description)
			if !strings.Contains(name, query) && !strings.Contains(description, query) {
				continue
			}
		}
		filtered = append(filtered, item)
	}

	s.logger.Info("Filtered menu items", "category", category, "query", query, "count", len(filtered))
	return filtered, nil
}

// GetMenuItem retrieves a single menu item by id.
func (s *MenuService) GetMenuItem(id string) (*models.MenuItem, error) {
	item, err := s.catalogRepo.GetByID(id)
	if err != nil {
		s.logger.Warn("Menu item not found", "id", id, "error", err)
		return nil, err
	}
	return item, nil
}

// GetCombos retrieves the combo recommendations for a menu item.
func (s *MenuService) GetCombos(id string) ([]*models.MenuItem, error) {
	item, err := s.catalogRepo.GetByID(id)
	if err != nil {
		s.logger.Warn("Menu item not found for combos", "id", id, "error", err)
		return nil, err
	}

	if len(item.ComboWith) == 0 {
		return []*models.MenuItem{}, nil
	}
	return s.catalogRepo.GetByIDs(item.ComboWith)
}
