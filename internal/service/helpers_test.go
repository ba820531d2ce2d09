package service

import (
	"fmt"

	"kopikita/models"
	"kopikita/pkg/logger"
)

func newTestLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:  logger.LevelError,
		Format: "text",
		Output: "stderr",
	})
}

// memOrderRepo is an in-memory stand-in for the bbolt-backed repository.
type memOrderRepo struct {
	orders map[string]*models.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]*models.Order)}
}

func (r *memOrderRepo) Add(order *models.Order) error {
	o := *order
	r.orders[order.ID] = &o
	return nil
}

func (r *memOrderRepo) GetAll() ([]*models.Order, error) {
	out := make([]*models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		o := *order
		out = append(out, &o)
	}
	return out, nil
}

func (r *memOrderRepo) GetByID(id string) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s not found", id)
	}
	o := *order
	return &o, nil
}

func (r *memOrderRepo) Update(id string, order *models.Order) error {
	if _, ok := r.orders[id]; !ok {
		return fmt.Errorf("order %s not found", id)
	}
	o := *order
	r.orders[id] = &o
	return nil
}

func (r *memOrderRepo) GetActive() ([]*models.Order, error) {
	var out []*models.Order
	for _, order := range r.orders {
		if order.Status != models.StatusDone {
			o := *order
			out = append(out, &o)
		}
	}
	return out, nil
}

// memNotificationRepo is an in-memory notification repository.
type memNotificationRepo struct {
	notifications map[string]*models.Notification
}

func newMemNotificationRepo() *memNotificationRepo {
	return &memNotificationRepo{notifications: make(map[string]*models.Notification)}
}

func (r *memNotificationRepo) Add(notification *models.Notification) error {
	n := *notification
	r.notifications[notification.ID] = &n
	return nil
}

func (r *memNotificationRepo) GetAll() ([]*models.Notification, error) {
	out := make([]*models.Notification, 0, len(r.notifications))
	for _, notification := range r.notifications {
		n := *notification
		out = append(out, &n)
	}
	return out, nil
}

func (r *memNotificationRepo) GetByID(id string) (*models.Notification, error) {
	notification, ok := r.notifications[id]
	if !ok {
		return nil, fmt.Errorf("notification %s not found", id)
	}
	n := *notification
	return &n, nil
}

func (r *memNotificationRepo) Update(id string, notification *models.Notification) error {
	if _, ok := r.notifications[id]; !ok {
		return fmt.Errorf("notification %s not found", id)
	}
	n := *notification
	r.notifications[id] = &n
	return nil
}

func (r *memNotificationRepo) Delete(id string) error {
	delete(r.notifications, id)
	return nil
}

// memFavoriteRepo is an in-memory favorites repository.
type memFavoriteRepo struct {
	favorites map[string]*models.FavoriteItem
}

func newMemFavoriteRepo() *memFavoriteRepo {
	return &memFavoriteRepo{favorites: make(map[string]*models.FavoriteItem)}
}

func (r *memFavoriteRepo) Add(favorite *models.FavoriteItem) error {
	f := *favorite
	r.favorites[favorite.ID] = &f
	return nil
}

func (r *memFavoriteRepo) GetAll() ([]*models.FavoriteItem, error) {
	out := make([]*models.FavoriteItem, 0, len(r.favorites))
	for _, favorite := range r.favorites {
		f := *favorite
		out = append(out, &f)
	}
	return out, nil
}

func (r *memFavoriteRepo) GetByID(id string) (*models.FavoriteItem, error) {
	favorite, ok := r.favorites[id]
	if !ok {
		return nil, fmt.Errorf("favorite %s not found", id)
	}
	f := *favorite
	return &f, nil
}

func (r *memFavoriteRepo) Delete(id string) error {
	delete(r.favorites, id)
	return nil
}

// memProfileRepo is an in-memory profile repository.
type memProfileRepo struct {
	user     *models.User
	darkMode bool
	settings *models.AppSettings
}

func (r *memProfileRepo) GetUser() (*models.User, bool, error) {
	if r.user == nil {
		return nil, false, nil
	}
	u := *r.user
	return &u, true, nil
}

func (r *memProfileRepo) SaveUser(user *models.User) error {
	u := *user
	r.user = &u
	return nil
}

func (r *memProfileRepo) DeleteUser() error {
	r.user = nil
	return nil
}

func (r *memProfileRepo) GetDarkMode() (bool, error) { return r.darkMode, nil }

func (r *memProfileRepo) SetDarkMode(enabled bool) error {
	r.darkMode = enabled
	return nil
}

func (r *memProfileRepo) GetSettings() (models.AppSettings, error) {
	if r.settings == nil {
		return models.DefaultAppSettings(), nil
	}
	return *r.settings, nil
}

func (r *memProfileRepo) SaveSettings(settings models.AppSettings) error {
	r.settings = &settings
	return nil
}
