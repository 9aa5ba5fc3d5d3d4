package questlogix

import (
	"context"
	"database/sql"

	"github.com/heroiclabs/nakama-common/runtime"
)

// rpcHandler matches the signature expected by Initializer.RegisterRpc.
type rpcHandler = func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error)

// RPC identifiers registered with the Nakama initializer.
const (
	RpcIdObjectivesInitialize     = "objectives_initialize"
	RpcIdObjectivesGenerateDaily  = "objectives_generate_daily"
	RpcIdObjectivesUpdateProgress = "objectives_update_progress"
	RpcIdObjectivesList           = "objectives_list"
	RpcIdObjectivesClaim          = "objectives_claim"
	RpcIdObjectivesStats          = "objectives_stats"
	RpcIdInventoryList            = "inventory_list"
	RpcIdInventorySnapshot        = "inventory_snapshot"
	RpcIdInventoryGrant           = "inventory_grant"
	RpcIdInventoryUse             = "inventory_use"
	RpcIdInventoryPurchase        = "inventory_purchase"
)

// registerRpcs wires every system operation up as a JSON RPC.
func registerRpcs(logger runtime.Logger, initializer runtime.Initializer, q *questlogixImpl) error {
	rpcs := map[string]func(*questlogixImpl) rpcHandler{
		RpcIdObjectivesInitialize:     rpcObjectivesInitialize,
		RpcIdObjectivesGenerateDaily:  rpcObjectivesGenerateDaily,
		RpcIdObjectivesUpdateProgress: rpcObjectivesUpdateProgress,
		RpcIdObjectivesList:           rpcObjectivesList,
		RpcIdObjectivesClaim:          rpcObjectivesClaim,
		RpcIdObjectivesStats:          rpcObjectivesStats,
		RpcIdInventoryList:            rpcInventoryList,
		RpcIdInventorySnapshot:        rpcInventorySnapshot,
		RpcIdInventoryGrant:           rpcInventoryGrant,
		RpcIdInventoryUse:             rpcInventoryUse,
		RpcIdInventoryPurchase:        rpcInventoryPurchase,
	}

	for id, rpc := range rpcs {
		if err := initializer.RegisterRpc(id, rpc(q)); err != nil {
			logger.Error("Failed to register %s RPC: %v", id, err)
			return err
		}
	}
	return nil
}
