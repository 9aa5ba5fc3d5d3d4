package questlogix

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/heroiclabs/nakama-common/runtime"
)

// The currency and experience wallet keys the claim RPC credits. The engine
// itself never touches the wallet; ledger application is a transport concern.
const (
	walletKeyWalkingExp = "walking_exp"
	walletKeyExperience = "experience"
)

func rpcObjectivesInitialize(q *questlogixImpl) rpcHandler {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		objectivesSystem := q.GetObjectivesSystem()
		if objectivesSystem == nil {
			return "", ErrSystemNotAvailable
		}

		userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
		if !ok || userID == "" {
			return "", ErrNoSessionUser
		}

		instances, err := objectivesSystem.Initialize(ctx, logger, nk, userID)
		if err != nil {
			logger.Error("Error initializing user objectives: %v", err)
			return "", err
		}

		response := struct {
			Objectives []*ObjectiveInstance `json:"objectives"`
		}{
			Objectives: instances,
		}
		responseData, err := json.Marshal(response)
		if err != nil {
			logger.Error("Failed to marshal response: %v", err)
			return "", ErrPayloadEncode
		}
		return string(responseData), nil
	}
}

func rpcObjectivesGenerateDaily(q *questlogixImpl) rpcHandler {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		objectivesSystem := q.GetObjectivesSystem()
		if objectivesSystem == nil {
			return "", ErrSystemNotAvailable
		}

		var request struct {
			UserLevel int `json:"user_level"`
		}
		if payload != "" {
			if err := json.Unmarshal([]byte(payload), &request); err != nil {
				logger.Error("Failed to unmarshal ObjectivesGenerateDailyRequest: %v", err)
				return "", ErrPayloadDecode
			}
		}

		userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
		if !ok || userID == "" {
			return "", ErrNoSessionUser
		}

		instances, err := objectivesSystem.GenerateDaily(ctx, logger, nk, userID, request.UserLevel)
		if err != nil {
			logger.Error("Error generating daily objectives: %v", err)
			return "", err
		}

		response := struct {
			Objectives []*ObjectiveInstance `json:"objectives"`
		}{
			Objectives: instances,
		}
		responseData, err := json.Marshal(response)
		if err != nil {
			logger.Error("Failed to marshal response: %v", err)
			return "", ErrPayloadEncode
		}
		return string(responseData), nil
	}
}

func rpcObjectivesUpdateProgress(q *questlogixImpl) rpcHandler {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		objectivesSystem := q.GetObjectivesSystem()
		if objectivesSystem == nil {
			return "", ErrSystemNotAvailable
		}

		var request struct {
			Category string `json:"category"`
			Delta    int64  `json:"delta"`
		}
		if err := json.Unmarshal([]byte(payload), &request); err != nil {
			logger.Error("Failed to unmarshal ObjectivesUpdateProgressRequest: %v", err)
			return "", ErrPayloadDecode
		}
		if request.Category == "" {
			return "", runtime.NewError("category is required", INVALID_ARGUMENT_ERROR_CODE)
		}

		userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
		if !ok || userID == "" {
			return "", ErrNoSessionUser
		}

		completed, err := objectivesSystem.UpdateProgress(ctx, logger, nk, userID, request.Category, request.Delta)
		if err != nil {
			logger.Error("Error updating objective progress: %v", err)
			return "", err
		}

		response := struct {
			Completed []*ObjectiveInstance `json:"completed"`
		}{
			Completed: completed,
		}
		responseData, err := json.Marshal(response)
		if err != nil {
			logger.Error("Failed to marshal response: %v", err)
			return "", ErrPayloadEncode
		}
		return string(responseData), nil
	}
}

func rpcObjectivesList(q *questlogixImpl) rpcHandler {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		objectivesSystem := q.GetObjectivesSystem()
		if objectivesSystem == nil {
			return "", ErrSystemNotAvailable
		}

		var request struct {
			Kind           ObjectiveKind `json:"kind,omitempty"`
			Completed      bool          `json:"completed,omitempty"`
			CompletedLimit int           `json:"completed_limit,omitempty"`
		}
		if payload != "" {
			if err := json.Unmarshal([]byte(payload), &request); err != nil {
				logger.Error("Failed to unmarshal ObjectivesListRequest: %v", err)
				return "", ErrPayloadDecode
			}
		}

		userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
		if !ok || userID == "" {
			return "", ErrNoSessionUser
		}

		var instances []*ObjectiveInstance
		var err error
		if request.Completed {
			instances, err = objectivesSystem.ListCompleted(ctx, logger, nk, userID, request.Kind, request.CompletedLimit)
		} else {
			instances, err = objectivesSystem.ListActive(ctx, logger, nk, userID, request.Kind)
		}
		if err != nil {
			logger.Error("Error listing objectives: %v", err)
			return "", err
		}

		response := struct {
			Objectives []*ObjectiveInstance `json:"objectives"`
		}{
			Objectives: instances,
		}
		responseData, err := json.Marshal(response)
		if err != nil {
			logger.Error("Failed to marshal response: %v", err)
			return "", ErrPayloadEncode
		}
		return string(responseData), nil
	}
}

func rpcObjectivesClaim(q *questlogixImpl) rpcHandler {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		objectivesSystem := q.GetObjectivesSystem()
		if objectivesSystem == nil {
			return "", ErrSystemNotAvailable
		}

		var request struct {
			ObjectiveId string `json:"objective_id"`
		}
		if err := json.Unmarshal([]byte(payload), &request); err != nil {
			logger.Error("Failed to unmarshal ObjectivesClaimRequest: %v", err)
			return "", ErrPayloadDecode
		}
		if request.ObjectiveId == "" {
			return "", runtime.NewError("objective_id is required", INVALID_ARGUMENT_ERROR_CODE)
		}

		userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
		if !ok || userID == "" {
			return "", ErrNoSessionUser
		}

		reward, err := objectivesSystem.Claim(ctx, logger, nk, userID, request.ObjectiveId)
		if err != nil {
			logger.Error("Error claiming objective %s: %v", request.ObjectiveId, err)
			return "", err
		}

		// Apply currency and experience to the user's wallet here, on behalf
		// of the caller. The engine only reports the amounts.
		if reward.Currency > 0 || reward.Experience > 0 {
			changeset := map[string]int64{}
			if reward.Currency > 0 {
				changeset[walletKeyWalkingExp] = reward.Currency
			}
			if reward.Experience > 0 {
				changeset[walletKeyExperience] = reward.Experience
			}
			if _, _, err := nk.WalletUpdate(ctx, userID, changeset, map[string]interface{}{
				"source":       "objective_claim",
				"objective_id": request.ObjectiveId,
			}, true); err != nil {
				logger.Error("Failed to update wallet for objective claim %s: %v", request.ObjectiveId, err)
			}
		}

		response := struct {
			Reward *RewardDescriptor `json:"reward"`
		}{
			Reward: reward,
		}
		responseData, err := json.Marshal(response)
		if err != nil {
			logger.Error("Failed to marshal response: %v", err)
			return "", ErrPayloadEncode
		}
		return string(responseData), nil
	}
}

func rpcObjectivesStats(q *questlogixImpl) rpcHandler {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		objectivesSystem := q.GetObjectivesSystem()
		if objectivesSystem == nil {
			return "", ErrSystemNotAvailable
		}

		userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
		if !ok || userID == "" {
			return "", ErrNoSessionUser
		}

		stats, err := objectivesSystem.Stats(ctx, logger, nk, userID)
		if err != nil {
			logger.Error("Error computing objective stats: %v", err)
			return "", err
		}

		responseData, err := json.Marshal(stats)
		if err != nil {
			logger.Error("Failed to marshal response: %v", err)
			return "", ErrPayloadEncode
		}
		return string(responseData), nil
	}
}
