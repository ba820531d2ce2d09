package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"kopikita/internal/engine"
	"kopikita/internal/repositories"
	"kopikita/models"
	"kopikita/pkg/logger"
)

// FavoriteServiceInterface exposes favorites operations.
type FavoriteServiceInterface interface {
	SaveFavorite(itemID string, customization *models.Customization) (*models.FavoriteItem, error)
	GetAllFavorites() ([]*models.FavoriteItem, error)
	RemoveFavorite(id string) error
	Reorder(id string, quantity int) (CartView, error)
}

// FavoriteService manages saved favorites and re-ordering them into the
// cart.
type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepositoryInterface
	catalogRepo  repositories.CatalogRepositoryInterface
	cartService  CartServiceInterface
	logger       *logger.Logger
}

// NewFavoriteService creates a new FavoriteService with the given dependencies and logger
func NewFavoriteService(favoriteRepo repositories.FavoriteRepositoryInterface, catalogRepo repositories.CatalogRepositoryInterface, cartService CartServiceInterface, logger *logger.Logger) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		catalogRepo:  catalogRepo,
		cartService:  cartService,
		logger:       logger.WithComponent("favorite_service"),
	}
}

// SaveFavorite stores a (menu item, customization) snapshot. Saving the
// same pair twice is rejected.
func (s *FavoriteService) SaveFavorite(itemID string, customization *models.Customization) (*models.FavoriteItem, error) {
	item, err := s.catalogRepo.GetByID(itemID)
	if err != nil {
		s.logger.Warn("Save failed: unknown menu item", "item_id", itemID, "error", err)
		return nil, err
	}

	cust := engine.DefaultCustomization()
	if customization != nil {
		cust = *customization
	}

	existing, err := s.favoriteRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for _, favorite := range existing {
		if favorite.MenuItemID == itemID && favorite.Customization.Equal(cust) {
			s.logger.Warn("Save failed: favorite already exists", "item_id", itemID)
			return nil, fmt.Errorf("favorite already exists for this item and customization")
		}
	}

	favorite := &models.FavoriteItem{
		ID:            uuid.NewString(),
		MenuItemID:    itemID,
		Name:          fmt.Sprintf("%s (%s)", item.Name, cust.Size),
		Customization: cust,
		UnitPrice:     engine.ResolvePrice(item, cust),
		SavedAt:       time.Now(),
	}

	if err := s.favoriteRepo.Add(favorite); err != nil {
		s.logger.Error("Failed to save favorite", "item_id", itemID, "error", err)
		return nil, err
	}

	s.logger.Info("Favorite saved", "favorite_id", favorite.ID, "item_id", itemID)
	return favorite, nil
}

// GetAllFavorites retrieves all favorites, newest first.
func (s *FavoriteService) GetAllFavorites() ([]*models.FavoriteItem, error) {
	favorites, err := s.favoriteRepo.GetAll()
	if err != nil {
		s.logger.Error("Failed to fetch favorites", "error", err)
		return nil, err
	}
	return favorites, nil
}

// RemoveFavorite deletes a favorite by id.
func (s *FavoriteService) RemoveFavorite(id string) error {
	if id == "" {
		return fmt.Errorf("favorite ID is required")
	}

	if _, err := s.favoriteRepo.GetByID(id); err != nil {
		s.logger.Warn("Favorite not found for removal", "favorite_id", id, "error", err)
		return err
	}

	if err := s.favoriteRepo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("Favorite removed", "favorite_id", id)
	return nil
}

// Reorder adds a favorite back into the cart with the saved customization.
// The unit price is resolved fresh from the catalog, matching a normal add.
func (s *FavoriteService) Reorder(id string, quantity int) (CartView, error) {
	favorite, err := s.favoriteRepo.GetByID(id)
	if err != nil {
		s.logger.Warn("Favorite not found for reorder", "favorite_id", id, "error", err)
		return CartView{}, err
	}

	cust := favorite.Customization
	view, err := s.cartService.AddItem(favorite.MenuItemID, quantity, &cust)
	if err != nil {
		return CartView{}, err
	}

	s.logger.Info("Favorite reordered", "favorite_id", id, "quantity", quantity)
	return view, nil
}
