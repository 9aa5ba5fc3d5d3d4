package questlogix

import (
	"context"

	"github.com/heroiclabs/nakama-common/runtime"
)

// ItemCategory groups catalog items for listing and filtering.
type ItemCategory string

const (
	ItemCategoryConsumable ItemCategory = "consumable"
	ItemCategoryMaterial   ItemCategory = "material"
	ItemCategorySpecial    ItemCategory = "special"
)

// InventoryConfig is the data definition for the InventorySystem type.
type InventoryConfig struct {
	Items map[string]*InventoryConfigItem `json:"items,omitempty"`
}

type InventoryConfigItem struct {
	Name        string                     `json:"name,omitempty"`
	Description string                     `json:"description,omitempty"`
	Category    ItemCategory               `json:"category,omitempty"`
	Rarity      string                     `json:"rarity,omitempty"`
	Price       int64                      `json:"price,omitempty"`
	Stackable   bool                       `json:"stackable,omitempty"`
	MaxStack    int64                      `json:"max_stack,omitempty"`
	Effect      *InventoryConfigItemEffect `json:"effect,omitempty"`
	Disabled    bool                       `json:"disabled,omitempty"`
}

// InventoryConfigItemEffect describes what happens when an item is used. The
// engine only gates usage and decrements quantity; applying the effect is
// entirely the caller's responsibility.
type InventoryConfigItemEffect struct {
	Type        string `json:"type,omitempty"`
	Value       int64  `json:"value,omitempty"`
	DurationSec int64  `json:"duration_sec,omitempty"`
	Description string `json:"description,omitempty"`
}

// Inventory is the per-user storage document mapping item IDs to held
// quantities. Entries with quantity zero are pruned on write.
type Inventory struct {
	Items map[string]int64 `json:"items,omitempty"`
}

// The InventorySystem manages each user's stackable item economy: grants with
// stacking and capacity rules, consumption, and purchases priced in the
// walking-experience currency.
type InventorySystem interface {
	System

	// List returns the non-disabled item catalog, optionally filtered by
	// category. An empty category returns everything.
	List(category ItemCategory) map[string]*InventoryConfigItem

	// GetItemTemplate returns the shared definition for an item ID, or nil
	// when the ID is unknown.
	GetItemTemplate(itemID string) *InventoryConfigItem

	// Snapshot returns the user's current inventory quantities.
	Snapshot(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string) (*Inventory, error)

	// UsedSlots returns how many distinct item stacks the user holds.
	UsedSlots(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string) (int, error)

	// MaxSlots returns the inventory slot capacity at the given level. Slot
	// counts are informational; grants are never gated by them.
	MaxSlots(userLevel int) int

	// GrantItem adds quantity of an item to the user's inventory. Stackable
	// items clamp at their max stack, silently discarding the excess.
	// Non-stackable items are granted a single unit and the grant reports
	// false when one is already held. Unknown item IDs report false.
	GrantItem(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID, itemID string, quantity int64) (granted bool, inventory *Inventory, err error)

	// UseItem decrements the item quantity by exactly one and returns the
	// item's effect for the caller to apply. Rejected when the item is
	// unknown or none are held.
	UseItem(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID, itemID string) (*InventoryConfigItemEffect, *Inventory, error)

	// RemoveItem takes quantity of an item out of the user's inventory,
	// rejecting the whole operation when not enough are held.
	RemoveItem(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID, itemID string, quantity int64) (*Inventory, error)

	// Purchase grants one unit of an item when the offered currency covers its
	// price. The engine does not debit the currency; the caller must do so
	// exactly when this reports true, using the item's price.
	Purchase(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID, itemID string, availableCurrency int64) (granted bool, inventory *Inventory, err error)

	// SetQuestlogix sets the Questlogix instance used to reach publishers.
	SetQuestlogix(ql Questlogix)
}
