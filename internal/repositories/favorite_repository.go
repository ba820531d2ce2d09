package repositories

import (
	"fmt"
	"sort"

	"kopikita/models"
	"kopikita/pkg/localstore"
	"kopikita/pkg/logger"
)

// FavoriteRepositoryInterface persists saved favorites.
type FavoriteRepositoryInterface interface {
	Add(favorite *models.FavoriteItem) error
	GetAll() ([]*models.FavoriteItem, error)
	GetByID(id string) (*models.FavoriteItem, error)
	Delete(id string) error
}

// FavoriteRepository stores favorites as JSON records in the local store.
type FavoriteRepository struct {
	logger *logger.Logger
	store  *localstore.Store
}

// NewFavoriteRepository creates a new FavoriteRepository backed by the store.
func NewFavoriteRepository(logger *logger.Logger, store *localstore.Store) *FavoriteRepository {
	return &FavoriteRepository{
		logger: logger.WithComponent("favorite_repository"),
		store:  store,
	}
}

// Add - persists a new favorite
func (r *FavoriteRepository) Add(favorite *models.FavoriteItem) error {
	if favorite.ID == "" {
		return fmt.Errorf("favorite ID is required")
	}
	favorite.SchemaVersion = 1

	if err := r.store.Put(localstore.BucketFavorites, favorite.ID, favorite); err != nil {
		r.logger.Error("Failed to persist favorite", "favorite_id", favorite.ID, "error", err)
		return fmt.Errorf("failed to persist favorite: %v", err)
	}

	r.logger.Info("Favorite persisted", "favorite_id", favorite.ID, "menu_item_id", favorite.MenuItemID)
	return nil
}

// GetAll - retrieves all favorites, newest first
func (r *FavoriteRepository) GetAll() ([]*models.FavoriteItem, error) {
	favorites := []*models.FavoriteItem{}

	err := r.store.ForEach(localstore.BucketFavorites, func(key string, value []byte) error {
		var favorite models.FavoriteItem
		if err := localstore.Decode(value, &favorite); err != nil {
			r.logger.Warn("Skipping malformed favorite record", "key", key, "error", err)
			return nil
		}
		favorites = append(favorites, &favorite)
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to read favorites", "error", err)
		return nil, fmt.Errorf("failed to read favorites: %v", err)
	}

	sort.Slice(favorites, func(i, j int) bool {
		return favorites[i].SavedAt.After(favorites[j].SavedAt)
	})

	return favorites, nil
}

// GetByID - retrieves a single favorite
func (r *FavoriteRepository) GetByID(id string) (*models.FavoriteItem, error) {
	var favorite models.FavoriteItem
	found, err := r.store.Get(localstore.BucketFavorites, id, &favorite)
	if err != nil {
		r.logger.Warn("Failed to load favorite record", "favorite_id", id, "error", err)
		return nil, fmt.Errorf("favorite %s not found", id)
	}
	if !found {
		return nil, fmt.Errorf("favorite %s not found", id)
	}
	return &favorite, nil
}

// Delete - removes a favorite; deleting an absent id is a no-op
func (r *FavoriteRepository) Delete(id string) error {
	if err := r.store.Delete(localstore.BucketFavorites, id); err != nil {
		r.logger.Error("Failed to delete favorite", "favorite_id", id, "error", err)
		return fmt.Errorf("failed to delete favorite: %v", err)
	}
	return nil
}
