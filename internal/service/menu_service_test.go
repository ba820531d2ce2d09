package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopikita/internal/repositories"
	"kopikita/models"
)

func newTestMenuService(t *testing.T) *MenuService {
	t.Helper()
	log := newTestLogger()
	return NewMenuService(repositories.NewCatalogRepository(log), log)
}

func TestGetMenuUnfiltered(t *testing.T) {
	svc := newTestMenuService(t)

	items, err := svc.GetMenu("", "")
	require.NoError(t, err)
	assert.Len(t, items, 12)
}

func TestGetMenuByCategory(t *testing.T) {
	svc := newTestMenuService(t)

	items, err := svc.GetMenu(string(models.CategoryColdBrew), "")
	require.NoError(t, err)

	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, models.CategoryColdBrew, item.Category)
	}
}

func TestGetMenuSearchIsCaseInsensitive(t *testing.T) {
	svc := newTestMenuService(t)

	items, err := svc.GetMenu("", "AMERICANO")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Americano", items[0].Name)

	// Descriptions are searched too.
	items, err = svc.GetMenu("", "whiskey")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Irish Coffee", items[0].Name)
}

func TestGetMenuSearchNoMatches(t *testing.T) {
	svc := newTestMenuService(t)

	items, err := svc.GetMenu("", "bubble tea")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetMenuItem(t *testing.T) {
	svc := newTestMenuService(t)

	item, err := svc.GetMenuItem("1")
	require.NoError(t, err)
	assert.Equal(t, "Americano", item.Name)
	assert.Equal(t, 25000, item.BasePrice)

	_, err = svc.GetMenuItem("999")
	assert.Error(t, err)
}

func TestGetCombos(t *testing.T) {
	svc := newTestMenuService(t)

	// Americano pairs with Latte and Espresso.
	combos, err := svc.GetCombos("1")
	require.NoError(t, err)
	require.Len(t, combos, 2)
	assert.Equal(t, "Latte", combos[0].Name)
	assert.Equal(t, "Espresso", combos[1].Name)

	// Items without pairings return an empty list, not an error.
	combos, err = svc.GetCombos("3")
	require.NoError(t, err)
	assert.Empty(t, combos)
}
