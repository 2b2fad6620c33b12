package entity

// CartItem is a single line in a store group. CatalogItemID plus the
// snapshot fields copied from the catalog row when the line was added.
type CartItem struct {
	CatalogItemID uint    `json:"itemId"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price"`
	Image         string  `json:"image,omitempty"`
	Quantity      int     `json:"quantity"`
}

// CartStore groups cart lines by the store they belong to. Group order
// follows first insertion.
type CartStore struct {
	StoreID    uint       `json:"storeId"`
	StoreName  string     `json:"storeName"`
	StoreOwner string     `json:"storeOwner,omitempty"`
	StoreImage string     `json:"storeImage,omitempty"`
	Items      []CartItem `json:"items"`
}

// Total returns the sum of price times quantity over the group's lines.
func (s *CartStore) Total() float64 {
	var total float64
	for _, item := range s.Items {
		total += item.Price * float64(item.Quantity)
	}

	return total
}

// Cart is the per-user shopping cart: an ordered list of store groups.
type Cart struct {
	UserID uint        `json:"userId"`
	Stores []CartStore `json:"stores"`
}

// AddItem merges the given line into the cart. An existing line for the same
// catalog item in the same store has its quantity incremented; otherwise a
// new line is appended. A missing store group is appended at the end.
func (c *Cart) AddItem(store CartStore, item CartItem) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	for si := range c.Stores {
		if c.Stores[si].StoreID != store.StoreID {
			continue
		}
		for ii := range c.Stores[si].Items {
			if c.Stores[si].Items[ii].CatalogItemID == item.CatalogItemID {
				c.Stores[si].Items[ii].Quantity += item.Quantity

				return
			}
		}
		c.Stores[si].Items = append(c.Stores[si].Items, item)

		return
	}

	store.Items = []CartItem{item}
	c.Stores = append(c.Stores, store)
}

// UpdateQuantity sets the quantity of a line. A quantity of zero or less
// removes the line. It reports whether the line existed.
func (c *Cart) UpdateQuantity(storeID, catalogItemID uint, quantity int) bool {
	for si := range c.Stores {
		if c.Stores[si].StoreID != storeID {
			continue
		}
		for ii := range c.Stores[si].Items {
			if c.Stores[si].Items[ii].CatalogItemID != catalogItemID {
				continue
			}
			if quantity <= 0 {
				c.removeLine(si, ii)
			} else {
				c.Stores[si].Items[ii].Quantity = quantity
			}

			return true
		}
	}

	return false
}

// RemoveItem drops a line from the cart. An emptied store group is dropped
// with it. It reports whether the line existed.
func (c *Cart) RemoveItem(storeID, catalogItemID uint) bool {
	for si := range c.Stores {
		if c.Stores[si].StoreID != storeID {
			continue
		}
		for ii := range c.Stores[si].Items {
			if c.Stores[si].Items[ii].CatalogItemID == catalogItemID {
				c.removeLine(si, ii)

				return true
			}
		}
	}

	return false
}

func (c *Cart) removeLine(storeIdx, itemIdx int) {
	items := c.Stores[storeIdx].Items
	c.Stores[storeIdx].Items = append(items[:itemIdx], items[itemIdx+1:]...)
	if len(c.Stores[storeIdx].Items) == 0 {
		c.Stores = append(c.Stores[:storeIdx], c.Stores[storeIdx+1:]...)
	}
}

// Store returns the group for the given store, or nil.
func (c *Cart) Store(storeID uint) *CartStore {
	for i := range c.Stores {
		if c.Stores[i].StoreID == storeID {
			return &c.Stores[i]
		}
	}

	return nil
}

// RemoveStore drops an entire store group after checkout.
func (c *Cart) RemoveStore(storeID uint) {
	for i := range c.Stores {
		if c.Stores[i].StoreID == storeID {
			c.Stores = append(c.Stores[:i], c.Stores[i+1:]...)

			return
		}
	}
}

// IsEmpty reports whether the cart has no lines at all.
func (c *Cart) IsEmpty() bool {
	for i := range c.Stores {
		if len(c.Stores[i].Items) > 0 {
			return false
		}
	}

	return true
}

// SingleStore reports whether the cart holds lines from exactly one store.
// Checkout requires this.
func (c *Cart) SingleStore() bool {
	return len(c.Stores) == 1
}
