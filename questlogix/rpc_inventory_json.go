package questlogix

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/heroiclabs/nakama-common/runtime"
)

func rpcInventoryList(q *questlogixImpl) rpcHandler {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		inventorySystem := q.GetInventorySystem()
		if inventorySystem == nil {
			return "", ErrSystemNotAvailable
		}

		var request struct {
			Category ItemCategory `json:"category,omitempty"`
		}
		if payload != "" {
			if err := json.Unmarshal([]byte(payload), &request); err != nil {
				logger.Error("Failed to unmarshal InventoryListRequest: %v", err)
				return "", ErrPayloadDecode
			}
		}

		response := struct {
			Items map[string]*InventoryConfigItem `json:"items"`
		}{
			Items: inventorySystem.List(request.Category),
		}
		responseData, err := json.Marshal(response)
		if err != nil {
			logger.Error("Failed to marshal response: %v", err)
			return "", ErrPayloadEncode
		}
		return string(responseData), nil
	}
}

func rpcInventorySnapshot(q *questlogixImpl) rpcHandler {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		inventorySystem := q.GetInventorySystem()
		if inventorySystem == nil {
			return "", ErrSystemNotAvailable
		}

		var request struct {
			UserLevel int `json:"user_level,omitempty"`
		}
		if payload != "" {
			if err := json.Unmarshal([]byte(payload), &request); err != nil {
				logger.Error("Failed to unmarshal InventorySnapshotRequest: %v", err)
				return "", ErrPayloadDecode
			}
		}

		userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
		if !ok || userID == "" {
			return "", ErrNoSessionUser
		}

		inventory, err := inventorySystem.Snapshot(ctx, logger, nk, userID)
		if err != nil {
			logger.Error("Error reading inventory snapshot: %v", err)
			return "", err
		}

		response := struct {
			Inventory *Inventory `json:"inventory"`
			UsedSlots int        `json:"used_slots"`
			MaxSlots  int        `json:"max_slots"`
		}{
			Inventory: inventory,
			UsedSlots: len(inventory.Items),
			MaxSlots:  inventorySystem.MaxSlots(request.UserLevel),
		}
		responseData, err := json.Marshal(response)
		if err != nil {
			logger.Error("Failed to marshal response: %v", err)
			return "", ErrPayloadEncode
		}
		return string(responseData), nil
	}
}

func rpcInventoryGrant(q *questlogixImpl) rpcHandler {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		inventorySystem := q.GetInventorySystem()
		if inventorySystem == nil {
			return "", ErrSystemNotAvailable
		}

		var request struct {
			ItemId   string `json:"item_id"`
			Quantity int64  `json:"quantity"`
		}
		if err := json.Unmarshal([]byte(payload), &request); err != nil {
			logger.Error("Failed to unmarshal InventoryGrantRequest: %v", err)
			return "", ErrPayloadDecode
		}
		if request.ItemId == "" {
			return "", runtime.NewError("item_id is required", INVALID_ARGUMENT_ERROR_CODE)
		}

		userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
		if !ok || userID == "" {
			return "", ErrNoSessionUser
		}

		granted, inventory, err := inventorySystem.GrantItem(ctx, logger, nk, userID, request.ItemId, request.Quantity)
		if err != nil {
			logger.Error("Error granting item %s: %v", request.ItemId, err)
			return "", err
		}

		response := struct {
			Granted   bool       `json:"granted"`
			Inventory *Inventory `json:"inventory,omitempty"`
		}{
			Granted:   granted,
			Inventory: inventory,
		}
		responseData, err := json.Marshal(response)
		if err != nil {
			logger.Error("Failed to marshal response: %v", err)
			return "", ErrPayloadEncode
		}
		return string(responseData), nil
	}
}

func rpcInventoryUse(q *questlogixImpl) rpcHandler {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		inventorySystem := q.GetInventorySystem()
		if inventorySystem == nil {
			return "", ErrSystemNotAvailable
		}

		var request struct {
			ItemId string `json:"item_id"`
		}
		if err := json.Unmarshal([]byte(payload), &request); err != nil {
			logger.Error("Failed to unmarshal InventoryUseRequest: %v", err)
			return "", ErrPayloadDecode
		}
		if request.ItemId == "" {
			return "", runtime.NewError("item_id is required", INVALID_ARGUMENT_ERROR_CODE)
		}

		userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
		if !ok || userID == "" {
			return "", ErrNoSessionUser
		}

		effect, inventory, err := inventorySystem.UseItem(ctx, logger, nk, userID, request.ItemId)
		if err != nil {
			logger.Error("Error using item %s: %v", request.ItemId, err)
			return "", err
		}

		response := struct {
			Effect    *InventoryConfigItemEffect `json:"effect,omitempty"`
			Inventory *Inventory                 `json:"inventory,omitempty"`
		}{
			Effect:    effect,
			Inventory: inventory,
		}
		responseData, err := json.Marshal(response)
		if err != nil {
			logger.Error("Failed to marshal response: %v", err)
			return "", ErrPayloadEncode
		}
		return string(responseData), nil
	}
}

func rpcInventoryPurchase(q *questlogixImpl) rpcHandler {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		inventorySystem := q.GetInventorySystem()
		if inventorySystem == nil {
			return "", ErrSystemNotAvailable
		}

		var request struct {
			ItemId string `json:"item_id"`
		}
		if err := json.Unmarshal([]byte(payload), &request); err != nil {
			logger.Error("Failed to unmarshal InventoryPurchaseRequest: %v", err)
			return "", ErrPayloadDecode
		}
		if request.ItemId == "" {
			return "", runtime.NewError("item_id is required", INVALID_ARGUMENT_ERROR_CODE)
		}

		userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
		if !ok || userID == "" {
			return "", ErrNoSessionUser
		}

		item := inventorySystem.GetItemTemplate(request.ItemId)
		if item == nil {
			return "", ErrItemNotFound
		}

		// The engine checks affordability against the wallet balance but
		// leaves the debit to this layer, applied only on success.
		account, err := nk.AccountGetId(ctx, userID)
		if err != nil {
			logger.Error("Failed to load account for purchase: %v", err)
			return "", ErrInternal
		}
		var wallet map[string]int64
		if err := json.Unmarshal([]byte(account.Wallet), &wallet); err != nil {
			logger.Error("Failed to parse wallet for purchase: %v", err)
			return "", ErrInternal
		}

		granted, inventory, err := inventorySystem.Purchase(ctx, logger, nk, userID, request.ItemId, wallet[walletKeyWalkingExp])
		if err != nil {
			logger.Error("Error purchasing item %s: %v", request.ItemId, err)
			return "", err
		}

		if granted {
			if _, _, err := nk.WalletUpdate(ctx, userID, map[string]int64{
				walletKeyWalkingExp: -item.Price,
			}, map[string]interface{}{
				"source":  "item_purchase",
				"item_id": request.ItemId,
			}, true); err != nil {
				logger.Error("Failed to debit wallet for purchase of %s: %v", request.ItemId, err)
			}
		}

		response := struct {
			Granted   bool       `json:"granted"`
			Inventory *Inventory `json:"inventory,omitempty"`
		}{
			Granted:   granted,
			Inventory: inventory,
		}
		responseData, err := json.Marshal(response)
		if err != nil {
			logger.Error("Failed to marshal response: %v", err)
			return "", ErrPayloadEncode
		}
		return string(responseData), nil
	}
}
