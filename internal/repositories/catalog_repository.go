package repositories

import (
	"fmt"

	"kopikita/models"
	"kopikita/pkg/logger"
)

// CatalogRepositoryInterface serves the immutable menu reference data.
type CatalogRepositoryInterface interface {
	GetAll() ([]*models.MenuItem, error)
	GetByID(id string) (*models.MenuItem, error)
	GetByIDs(ids []string) ([]*models.MenuItem, error)
}

// CatalogRepository holds the seeded menu in memory. The catalog is loaded
// once and never mutated.
type CatalogRepository struct {
	logger *logger.Logger
	items  []*models.MenuItem
	byID   map[string]*models.MenuItem
}

// NewCatalogRepository creates a catalog repository seeded with the menu
// reference data.
func NewCatalogRepository(logger *logger.Logger) *CatalogRepository {
	items := seedMenuItems()
	byID := make(map[string]*models.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	logger = logger.WithComponent("catalog_repository")
	logger.Info("Catalog seeded", "count", len(items))

	return &CatalogRepository{
		logger: logger,
		items:  items,
		byID:   byID,
	}
}

// GetAll - retrieves all menu items in display order
func (r *CatalogRepository) GetAll() ([]*models.MenuItem, error) {
	out := make([]*models.MenuItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

// GetByID - retrieves a single menu item
func (r *CatalogRepository) GetByID(id string) (*models.MenuItem, error) {
	item, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("menu item %s not found", id)
	}
	return item, nil
}

// GetByIDs - retrieves the items for the given ids, skipping unknown ones
func (r *CatalogRepository) GetByIDs(ids []string) ([]*models.MenuItem, error) {
	out := make([]*models.MenuItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := r.byID[id]; ok {
			out = append(out, item)
		} else {
			r.logger.Warn("Unknown menu item id in lookup", "id", id)
		}
	}
	return out, nil
}
