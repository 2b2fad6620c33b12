package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func warungStore() CartStore {
	return CartStore{StoreID: 1, StoreName: "Warung Kopi Mahasiswa", StoreOwner: "Andi"}
}

func TestCartAddItem_SameItemTwiceMergesQuantity(t *testing.T) {
	cart := &Cart{UserID: 7}

	item := CartItem{CatalogItemID: 10, Name: "Kopi Susu", Price: 10000, Quantity: 1}
	cart.AddItem(warungStore(), item)
	cart.AddItem(warungStore(), item)

	require.Len(t, cart.Stores, 1)
	require.Len(t, cart.Stores[0].Items, 1)
	assert.Equal(t, 2, cart.Stores[0].Items[0].Quantity)
}

func TestCartAddItem_SecondStoreAppendsGroup(t *testing.T) {
	cart := &Cart{UserID: 7}

	cart.AddItem(warungStore(), CartItem{CatalogItemID: 10, Name: "Kopi Susu", Price: 10000, Quantity: 1})
	cart.AddItem(CartStore{StoreID: 2, StoreName: "Jasa Desain Kita"}, CartItem{CatalogItemID: 30, Name: "Desain Logo", Price: 50000, Quantity: 1})

	require.Len(t, cart.Stores, 2)
	assert.Equal(t, uint(1), cart.Stores[0].StoreID)
	assert.Equal(t, uint(2), cart.Stores[1].StoreID)
	assert.False(t, cart.SingleStore())
}

func TestCartAddItem_ZeroQuantityDefaultsToOne(t *testing.T) {
	cart := &Cart{UserID: 7}

	cart.AddItem(warungStore(), CartItem{CatalogItemID: 10, Name: "Kopi Susu", Price: 10000})

	require.Len(t, cart.Stores, 1)
	assert.Equal(t, 1, cart.Stores[0].Items[0].Quantity)
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := &Cart{UserID: 7}
	cart.AddItem(warungStore(), CartItem{CatalogItemID: 10, Name: "Kopi Susu", Price: 10000, Quantity: 1})

	ok := cart.UpdateQuantity(1, 10, 3)
	require.True(t, ok)
	assert.Equal(t, 3, cart.Stores[0].Items[0].Quantity)

	// Zero quantity removes the line and its emptied group.
	ok = cart.UpdateQuantity(1, 10, 0)
	require.True(t, ok)
	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.Stores)
}

func TestCartUpdateQuantity_UnknownLine(t *testing.T) {
	cart := &Cart{UserID: 7}
	cart.AddItem(warungStore(), CartItem{CatalogItemID: 10, Name: "Kopi Susu", Price: 10000, Quantity: 1})

	assert.False(t, cart.UpdateQuantity(1, 99, 2))
	assert.False(t, cart.UpdateQuantity(9, 10, 2))
}

func TestCartRemoveItem_DropsEmptiedGroup(t *testing.T) {
	cart := &Cart{UserID: 7}
	cart.AddItem(warungStore(), CartItem{CatalogItemID: 10, Name: "Kopi Susu", Price: 10000, Quantity: 2})
	cart.AddItem(warungStore(), CartItem{CatalogItemID: 11, Name: "Roti Bakar", Price: 8000, Quantity: 1})

	require.True(t, cart.RemoveItem(1, 10))
	require.Len(t, cart.Stores, 1)
	require.Len(t, cart.Stores[0].Items, 1)

	require.True(t, cart.RemoveItem(1, 11))
	assert.Empty(t, cart.Stores)
	assert.False(t, cart.RemoveItem(1, 11))
}

func TestCartStoreTotal(t *testing.T) {
	cart := &Cart{UserID: 7}
	cart.AddItem(warungStore(), CartItem{CatalogItemID: 10, Name: "Kopi Susu", Price: 10000, Quantity: 2})
	cart.AddItem(warungStore(), CartItem{CatalogItemID: 11, Name: "Roti Bakar", Price: 5000, Quantity: 1})

	group := cart.Store(1)
	require.NotNil(t, group)
	assert.InDelta(t, 25000, group.Total(), 0.001)
}
