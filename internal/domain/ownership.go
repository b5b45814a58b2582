package domain

import "time"

// OwnershipRecord is a (account, item) ownership fact. Ownership is boolean:
// an account owns a given item at most once, there is no quantity.
type OwnershipRecord struct {
	AccountID  string    `json:"account_id"`
	ItemID     int       `json:"item_id"`
	AcquiredAt time.Time `json:"acquired_at"`
}

// ActiveSelections holds an account's active item per selectable category.
// A selection must always reference an item the account owns; selling the
// item clears the selection in the same atomic step.
type ActiveSelections struct {
	Pet    *int `json:"active_pet"`
	Avatar *int `json:"active_avatar"`
	Theme  *int `json:"active_theme"`
}

// Slot returns a pointer to the selection slot for the given category, or
// nil for categories that do not support activation. The explicit switch
// keeps selection slots typed instead of addressed by string key.
func (s *ActiveSelections) Slot(c Category) **int {
	switch c {
	case CategoryPet:
		return &s.Pet
	case CategoryAvatar:
		return &s.Avatar
	case CategoryTheme:
		return &s.Theme
	default:
		return nil
	}
}

// ClearItem removes every selection referencing itemID and returns the
// categories that were cleared.
func (s *ActiveSelections) ClearItem(itemID int) []Category {
	var cleared []Category
	for _, c := range SelectableCategories {
		slot := s.Slot(c)
		if slot != nil && *slot != nil && **slot == itemID {
			*slot = nil
			cleared = append(cleared, c)
		}
	}
	return cleared
}
