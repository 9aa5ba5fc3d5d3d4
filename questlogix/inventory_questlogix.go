package questlogix

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	inventoryStorageCollection = "inventory"
	userItemsStorageKey        = "user_items"

	baseInventorySlots  = 20
	bonusSlotsPerBand   = 5
	slotLevelBandLevels = 5
)

// NakamaInventorySystem implements the InventorySystem interface using the
// Nakama storage engine as the per-user inventory store.
type NakamaInventorySystem struct {
	config     *InventoryConfig
	questlogix Questlogix
}

func NewNakamaInventorySystem(config *InventoryConfig) *NakamaInventorySystem {
	// Work on a copy so defaulting never edits the caller's config.
	cfg := *config
	if cfg.Items == nil {
		cfg.Items = make(map[string]*InventoryConfigItem)
	}
	return &NakamaInventorySystem{
		config: &cfg,
	}
}

func (i *NakamaInventorySystem) GetType() SystemType {
	return SystemTypeInventory
}

func (i *NakamaInventorySystem) GetConfig() any {
	return i.config
}

func (i *NakamaInventorySystem) SetQuestlogix(ql Questlogix) {
	i.questlogix = ql
}

// List returns the non-disabled item catalog, optionally filtered by category.
func (i *NakamaInventorySystem) List(category ItemCategory) map[string]*InventoryConfigItem {
	items := make(map[string]*InventoryConfigItem, len(i.config.Items))
	for itemID, item := range i.config.Items {
		if item.Disabled {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		items[itemID] = item
	}
	return items
}

// GetItemTemplate returns the shared definition for an item ID, or nil when
// the ID is unknown. An unknown ID is not a fault.
func (i *NakamaInventorySystem) GetItemTemplate(itemID string) *InventoryConfigItem {
	item, ok := i.config.Items[itemID]
	if !ok || item.Disabled {
		return nil
	}
	return item
}

func (i *NakamaInventorySystem) getUserInventory(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string) (*Inventory, string, error) {
	objects, err := nk.StorageRead(ctx, []*runtime.StorageRead{{
		Collection: inventoryStorageCollection,
		Key:        userItemsStorageKey,
		UserID:     userID,
	}})
	if err != nil {
		logger.Error("Failed to read user inventory: %v", err)
		return nil, "", ErrInternal
	}

	inventory := &Inventory{
		Items: make(map[string]int64),
	}
	var version string
	if len(objects) > 0 && objects[0].Value != "" {
		if err := json.Unmarshal([]byte(objects[0].Value), inventory); err != nil {
			logger.Error("Failed to unmarshal user inventory: %v", err)
			return nil, "", ErrInternal
		}
		if inventory.Items == nil {
			inventory.Items = make(map[string]int64)
		}
		version = objects[0].Version
	}
	return inventory, version, nil
}

func (i *NakamaInventorySystem) saveUserInventory(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string, inventory *Inventory, version string) error {
	// Zero-quantity entries are logically absent, drop them before writing.
	for itemID, quantity := range inventory.Items {
		if quantity <= 0 {
			delete(inventory.Items, itemID)
		}
	}

	data, err := json.Marshal(inventory)
	if err != nil {
		logger.Error("Failed to marshal user inventory: %v", err)
		return ErrInternal
	}
	_, err = nk.StorageWrite(ctx, []*runtime.StorageWrite{{
		Collection:      inventoryStorageCollection,
		Key:             userItemsStorageKey,
		UserID:          userID,
		Value:           string(data),
		Version:         version,
		PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
		PermissionWrite: runtime.STORAGE_PERMISSION_OWNER_WRITE,
	}})
	if err != nil {
		logger.Error("Failed to write user inventory: %v", err)
		return ErrInternal
	}
	return nil
}

func (i *NakamaInventorySystem) lockUser(userID string) func() {
	if i.questlogix == nil {
		return func() {}
	}
	locker := i.questlogix.UserLocker()
	locker.Lock(userID)
	return func() { locker.Unlock(userID) }
}

// Snapshot returns the user's current inventory quantities.
func (i *NakamaInventorySystem) Snapshot(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string) (*Inventory, error) {
	inventory, _, err := i.getUserInventory(ctx, logger, nk, userID)
	if err != nil {
		return nil, err
	}
	return inventory, nil
}

// UsedSlots returns how many distinct item stacks the user holds. Zero
// quantities are pruned on write, so every stored entry occupies a slot.
func (i *NakamaInventorySystem) UsedSlots(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string) (int, error) {
	inventory, _, err := i.getUserInventory(ctx, logger, nk, userID)
	if err != nil {
		return 0, err
	}
	return len(inventory.Items), nil
}

// MaxSlots returns the slot capacity at a level: 20 base slots plus 5 more
// for every 5 levels.
func (i *NakamaInventorySystem) MaxSlots(userLevel int) int {
	if userLevel < 0 {
		userLevel = 0
	}
	return baseInventorySlots + (userLevel/slotLevelBandLevels)*bonusSlotsPerBand
}

// GrantItem adds quantity of an item to the user's inventory under the
// stacking rules: stackable items clamp at their max stack and silently drop
// the excess, non-stackable items hold at most a single unit. The grant
// reports false without error when nothing could be added.
func (i *NakamaInventorySystem) GrantItem(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID, itemID string, quantity int64) (bool, *Inventory, error) {
	if quantity <= 0 {
		return false, nil, ErrBadInput
	}

	item := i.GetItemTemplate(itemID)
	if item == nil {
		logger.Warn("Attempted to grant unknown item: %s", itemID)
		return false, nil, nil
	}

	unlock := i.lockUser(userID)
	defer unlock()

	inventory, version, err := i.getUserInventory(ctx, logger, nk, userID)
	if err != nil {
		return false, nil, err
	}

	current := inventory.Items[itemID]
	if item.Stackable {
		updated := current + quantity
		if item.MaxStack > 0 && updated > item.MaxStack {
			updated = item.MaxStack
		}
		if updated == current {
			// Stack already full, nothing to write.
			return true, inventory, nil
		}
		inventory.Items[itemID] = updated
	} else {
		if current > 0 {
			return false, inventory, nil
		}
		inventory.Items[itemID] = 1
	}

	if err := i.saveUserInventory(ctx, logger, nk, userID, inventory, version); err != nil {
		return false, nil, err
	}
	return true, inventory, nil
}

// UseItem decrements the held quantity by exactly one and returns the item's
// effect descriptor for the caller to apply. The engine does not interpret
// the effect.
func (i *NakamaInventorySystem) UseItem(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID, itemID string) (*InventoryConfigItemEffect, *Inventory, error) {
	item := i.GetItemTemplate(itemID)
	if item == nil {
		return nil, nil, ErrItemNotFound
	}

	unlock := i.lockUser(userID)
	defer unlock()

	inventory, version, err := i.getUserInventory(ctx, logger, nk, userID)
	if err != nil {
		return nil, nil, err
	}

	if inventory.Items[itemID] <= 0 {
		return nil, nil, ErrItemInsufficient
	}
	inventory.Items[itemID]--

	if err := i.saveUserInventory(ctx, logger, nk, userID, inventory, version); err != nil {
		return nil, nil, err
	}

	if i.questlogix != nil {
		i.questlogix.SendPublisherEvents(ctx, logger, nk, userID, []*PublisherEvent{{
			Name:      "item_consumed",
			Id:        uuid.New().String(),
			Timestamp: time.Now().Unix(),
			Metadata:  map[string]string{"item_id": itemID},
			System:    i,
			SourceId:  itemID,
			Source:    item,
		}})
	}

	return item.Effect, inventory, nil
}

// RemoveItem takes quantity of an item out of the user's inventory. The whole
// removal is rejected when not enough units are held.
func (i *NakamaInventorySystem) RemoveItem(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID, itemID string, quantity int64) (*Inventory, error) {
	if quantity <= 0 {
		return nil, ErrBadInput
	}

	unlock := i.lockUser(userID)
	defer unlock()

	inventory, version, err := i.getUserInventory(ctx, logger, nk, userID)
	if err != nil {
		return nil, err
	}

	if inventory.Items[itemID] < quantity {
		return nil, ErrItemInsufficient
	}
	inventory.Items[itemID] -= quantity

	if err := i.saveUserInventory(ctx, logger, nk, userID, inventory, version); err != nil {
		return nil, err
	}
	return inventory, nil
}

// Purchase grants one unit of an item when the offered currency covers its
// price. The engine never debits the currency: the caller applies the debit,
// using the item's price, exactly when this reports true.
func (i *NakamaInventorySystem) Purchase(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID, itemID string, availableCurrency int64) (bool, *Inventory, error) {
	item := i.GetItemTemplate(itemID)
	if item == nil {
		logger.Warn("Attempted to purchase unknown item: %s", itemID)
		return false, nil, ErrItemNotFound
	}
	if availableCurrency < item.Price {
		return false, nil, nil
	}
	return i.GrantItem(ctx, logger, nk, userID, itemID, 1)
}
