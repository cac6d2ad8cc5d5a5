package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"littlelemon/entity"
	"littlelemon/repository"
)

func TestCreateMenuItemValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuServiceForTest(db)
	cat := seedCategory(t, db, "mains", "Mains")

	_, err := svc.Create(&MenuItemIn{Title: "Cheap Dish", Price: price("4.99"), CategoryID: cat.ID})
	require.ErrorIs(t, err, ErrPriceInvalid)

	_, err = svc.Create(&MenuItemIn{Title: "Orphan Dish", Price: price("9.00"), CategoryID: 9999})
	require.ErrorIs(t, err, ErrCategoryNotFound)

	item, err := svc.Create(&MenuItemIn{Title: "Grilled Fish", Price: price("19.99"), CategoryID: cat.ID})
	require.NoError(t, err)
	require.NotZero(t, item.ID)
	requireDecimal(t, "19.99", item.Price)
	require.Equal(t, "mains", item.Category.Slug)
}

func TestUpdateReplacesWholeItem(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuServiceForTest(db)
	mains := seedCategory(t, db, "mains", "Mains")
	desserts := seedCategory(t, db, "desserts", "Desserts")
	item := seedMenuItem(t, db, mains.ID, "Grilled Fish", "19.99")

	got, err := svc.Update(item.ID, &MenuItemIn{Title: "Lemon Cake", Price: price("7.50"), Featured: true, CategoryID: desserts.ID})
	require.NoError(t, err)
	require.Equal(t, "Lemon Cake", got.Title)
	requireDecimal(t, "7.50", got.Price)
	require.True(t, got.Featured)
	require.Equal(t, desserts.ID, got.CategoryID)

	_, err = svc.Update(9999, &MenuItemIn{Title: "X", Price: price("9.00"), CategoryID: mains.ID})
	require.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestPatchUpdatesOnlyGivenFields(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuServiceForTest(db)
	cat := seedCategory(t, db, "mains", "Mains")
	item := seedMenuItem(t, db, cat.ID, "Grilled Fish", "19.99")

	newTitle := "Grilled Salmon"
	got, err := svc.Patch(item.ID, &MenuItemPatch{Title: &newTitle})
	require.NoError(t, err)
	require.Equal(t, "Grilled Salmon", got.Title)
	requireDecimal(t, "19.99", got.Price)

	low := price("2.00")
	_, err = svc.Patch(item.ID, &MenuItemPatch{Price: &low})
	require.ErrorIs(t, err, ErrPriceInvalid)

	_, err = svc.Patch(item.ID, &MenuItemPatch{})
	require.ErrorIs(t, err, ErrNoFields)

	badCat := uint(9999)
	_, err = svc.Patch(item.ID, &MenuItemPatch{CategoryID: &badCat})
	require.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDeleteMenuItemProtectsOrderHistory(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuServiceForTest(db)
	cat := seedCategory(t, db, "mains", "Mains")
	ordered := seedMenuItem(t, db, cat.ID, "Grilled Fish", "19.99")
	unused := seedMenuItem(t, db, cat.ID, "Beef Pasta", "13.50")

	customer := seedUser(t, db, "cust@example.com", false)
	order := &entity.Order{Reference: "ref-del-1", UserID: customer.ID, Total: price("19.99")}
	require.NoError(t, db.Create(order).Error)
	require.NoError(t, db.Create(&entity.OrderItem{
		OrderID: order.ID, MenuItemID: ordered.ID, Quantity: 1,
		UnitPrice: price("19.99"), Price: price("19.99"),
	}).Error)

	require.ErrorIs(t, svc.Delete(ordered.ID), ErrMenuItemInUse)

	require.NoError(t, svc.Delete(unused.ID))
	_, err := svc.Get(unused.ID)
	require.ErrorIs(t, err, ErrMenuItemNotFound)

	require.ErrorIs(t, svc.Delete(9999), ErrMenuItemNotFound)
}

func TestItemOfDayIsSingleFeatured(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuServiceForTest(db)
	cat := seedCategory(t, db, "desserts", "Desserts")
	a := seedMenuItem(t, db, cat.ID, "Lemon Dessert", "7.99")
	b := seedMenuItem(t, db, cat.ID, "Baklava", "6.50")

	got, err := svc.SetItemOfDay(a.ID)
	require.NoError(t, err)
	require.True(t, got.Featured)

	got, err = svc.SetItemOfDay(b.ID)
	require.NoError(t, err)
	require.True(t, got.Featured)

	var featured int64
	require.NoError(t, db.Model(&entity.MenuItem{}).Where("featured = ?", true).Count(&featured).Error)
	require.EqualValues(t, 1, featured)

	prev, err := svc.Get(a.ID)
	require.NoError(t, err)
	require.False(t, prev.Featured)

	_, err = svc.SetItemOfDay(9999)
	require.ErrorIs(t, err, ErrMenuItemNotFound)
}

func TestListFiltersAndPagination(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuServiceForTest(db)
	apps := seedCategory(t, db, "appetizers", "Appetizers")
	mains := seedCategory(t, db, "mains", "Mains")
	seedMenuItem(t, db, apps.ID, "Bruschetta", "8.50")
	seedMenuItem(t, db, apps.ID, "Calamari", "11.00")
	seedMenuItem(t, db, mains.ID, "Grilled Fish", "19.99")

	items, total, err := svc.List(repository.MenuFilter{CategorySlug: "mains"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Grilled Fish", items[0].Title)

	// search is case-insensitive
	items, total, err = svc.List(repository.MenuFilter{Search: "fish"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Grilled Fish", items[0].Title)

	items, _, err = svc.List(repository.MenuFilter{Ordering: "-price"})
	require.NoError(t, err)
	require.Equal(t, "Grilled Fish", items[0].Title)

	items, _, err = svc.List(repository.MenuFilter{Ordering: "price"})
	require.NoError(t, err)
	require.Equal(t, "Bruschetta", items[0].Title)

	items, total, err = svc.List(repository.MenuFilter{Page: 2, PerPage: 2, Ordering: "title"})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, items, 1)

	// out-of-range guards fall back to defaults
	items, _, err = svc.List(repository.MenuFilter{Page: -1, PerPage: 500})
	require.NoError(t, err)
	require.Len(t, items, 3)
}

func TestCreateCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuServiceForTest(db)

	cat, err := svc.CreateCategory(&CategoryIn{Slug: "mains", Title: "Mains"})
	require.NoError(t, err)
	require.NotZero(t, cat.ID)

	_, err = svc.CreateCategory(&CategoryIn{Slug: "mains", Title: "Mains Again"})
	require.ErrorIs(t, err, ErrDuplicate)

	cats, err := svc.Categories()
	require.NoError(t, err)
	require.Len(t, cats, 1)
}

func TestDeleteCategoryProtectsItsItems(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuServiceForTest(db)

	cat := seedCategory(t, db, "mains", "Mains")
	empty := seedCategory(t, db, "desserts", "Desserts")
	seedMenuItem(t, db, cat.ID, "Grilled Fish", "19.99")

	err := svc.DeleteCategory(cat.ID)
	require.ErrorIs(t, err, ErrCategoryInUse)

	require.NoError(t, svc.DeleteCategory(empty.ID))

	cats, err := svc.Categories()
	require.NoError(t, err)
	require.Len(t, cats, 1)
	require.Equal(t, "mains", cats[0].Slug)

	err = svc.DeleteCategory(9999)
	require.ErrorIs(t, err, ErrCategoryNotFound)
}
