package model

// ItemCatalog — неизменяемый реестр предметов id→Item.
// Строится один раз при старте процесса; после этого безопасен для
// конкурентного чтения без синхронизации.
type ItemCatalog struct {
	items map[int32]*Item
}

// NewItemCatalog builds the catalog, precomputing each item's chain root
// and depth. Returns *CatalogError on a dangling parent reference.
func NewItemCatalog(items []*Item) (*ItemCatalog, error) {
	byID := make(map[int32]*Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	// Chains are at most tier 1→4 deep; anything longer is a parent cycle.
	const maxChain = 8

	for _, it := range items {
		root := it
		depth := int32(0)
		for root.ParentID != 0 {
			parent, ok := byID[root.ParentID]
			if !ok {
				return nil, &CatalogError{Kind: "parent", ID: root.ParentID}
			}
			root = parent
			depth++
			if depth > maxChain {
				return nil, &CatalogError{Kind: "parent", ID: it.ID}
			}
		}
		it.RootID = root.ID
		it.ChainDepth = depth
	}

	return &ItemCatalog{items: byID}, nil
}

// Get returns the item by id, or a *CatalogError if absent.
func (c *ItemCatalog) Get(id int32) (*Item, error) {
	it, ok := c.items[id]
	if !ok {
		return nil, &CatalogError{Kind: "item", ID: id}
	}
	return it, nil
}

// Lookup returns the item by id without error wrapping, for hot paths
// where absence was already ruled out at construction.
func (c *ItemCatalog) Lookup(id int32) *Item { return c.items[id] }

// Len returns the number of catalog entries.
func (c *ItemCatalog) Len() int { return len(c.items) }

// All calls fn for every item in unspecified order; fn returning false
// stops the walk.
func (c *ItemCatalog) All(fn func(*Item) bool) {
	for _, it := range c.items {
		if !fn(it) {
			return
		}
	}
}

// Root returns the tier-1 ancestor of the item.
func (c *ItemCatalog) Root(it *Item) *Item {
	return c.items[it.RootID]
}

// IsStarterChain reports whether the item belongs to a starter upgrade
// chain: either the starter itself or a direct upgrade of one.
func (c *ItemCatalog) IsStarterChain(it *Item) bool {
	if it.Starter {
		return true
	}
	if it.ParentID == 0 {
		return false
	}
	parent := c.items[it.ParentID]
	return parent != nil && parent.Starter
}

// Price returns the effective price of the item: its own price plus every
// ancestor's along the upgrade chain. Display/sort concern only.
func (c *ItemCatalog) Price(it *Item) int32 {
	total := it.Price
	for id := it.ParentID; id != 0; {
		parent := c.items[id]
		if parent == nil {
			break
		}
		total += parent.Price
		id = parent.ParentID
	}
	return total
}

// CharacterCatalog — неизменяемый реестр персонажей id→Character.
type CharacterCatalog struct {
	characters map[int32]*Character
}

// NewCharacterCatalog builds the character catalog.
func NewCharacterCatalog(characters []*Character) *CharacterCatalog {
	byID := make(map[int32]*Character, len(characters))
	for _, ch := range characters {
		byID[ch.ID] = ch
	}
	return &CharacterCatalog{characters: byID}
}

// Get returns the character by id, or a *CatalogError if absent.
func (c *CharacterCatalog) Get(id int32) (*Character, error) {
	ch, ok := c.characters[id]
	if !ok {
		return nil, &CatalogError{Kind: "character", ID: id}
	}
	return ch, nil
}

// Len returns the number of catalog entries.
func (c *CharacterCatalog) Len() int { return len(c.characters) }

// All calls fn for every character in unspecified order; fn returning
// false stops the walk.
func (c *CharacterCatalog) All(fn func(*Character) bool) {
	for _, ch := range c.characters {
		if !fn(ch) {
			return
		}
	}
}
