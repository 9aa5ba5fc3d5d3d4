package questlogix

import (
	"context"
	"math/rand"

	"github.com/heroiclabs/nakama-common/runtime"
)

// ObjectiveKind distinguishes quests from achievements.
type ObjectiveKind string

const (
	ObjectiveKindUnknown     ObjectiveKind = ""
	ObjectiveKindQuest       ObjectiveKind = "quest"
	ObjectiveKindAchievement ObjectiveKind = "achievement"
)

// ObjectiveLifespan describes how long an objective instance stays relevant.
// Only "daily" instances expire; every other lifespan is open-ended.
type ObjectiveLifespan string

const (
	ObjectiveLifespanDaily     ObjectiveLifespan = "daily"
	ObjectiveLifespanWeekly    ObjectiveLifespan = "weekly"
	ObjectiveLifespanMain      ObjectiveLifespan = "main"
	ObjectiveLifespanSide      ObjectiveLifespan = "side"
	ObjectiveLifespanPermanent ObjectiveLifespan = "permanent"
)

// RewardDescriptor is the static reward attached to an objective template. It
// is copied onto each instance at creation, never re-derived from the
// template. Currency and experience amounts are reported to the caller on
// claim for external ledger application; item and costume grants are routed
// through the inventory system.
type RewardDescriptor struct {
	Currency     int64  `json:"currency,omitempty"`
	Experience   int64  `json:"experience,omitempty"`
	Title        string `json:"title,omitempty"`
	ItemId       string `json:"item_id,omitempty"`
	ItemQuantity int64  `json:"item_quantity,omitempty"`
	CostumeId    string `json:"costume_id,omitempty"`
}

// ObjectivesConfig is the data definition for the ObjectivesSystem type.
type ObjectivesConfig struct {
	Objectives map[string]*ObjectivesConfigObjective `json:"objectives,omitempty"`

	// DailyCount is how many daily quests are handed out per generation run.
	DailyCount int `json:"daily_count,omitempty"`
}

type ObjectivesConfigObjective struct {
	Title         string            `json:"title,omitempty"`
	Description   string            `json:"description,omitempty"`
	Kind          ObjectiveKind     `json:"kind,omitempty"`
	Lifespan      ObjectiveLifespan `json:"lifespan,omitempty"`
	Category      string            `json:"category,omitempty"`
	TargetValue   int64             `json:"target_value,omitempty"`
	RequiredLevel int               `json:"required_level,omitempty"`
	Hidden        bool              `json:"hidden,omitempty"`
	ResetCronexpr string            `json:"reset_cronexpr,omitempty"`
	Reward        *RewardDescriptor `json:"reward,omitempty"`
	Disabled      bool              `json:"disabled,omitempty"`
}

// ObjectiveTemplate pairs a template ID with its shared definition for ordered
// catalog listings.
type ObjectiveTemplate struct {
	Id string `json:"id,omitempty"`
	*ObjectivesConfigObjective
}

// ObjectiveInstance is the per-user materialization of an objective template.
// It owns its state entirely; nothing is shared with the template after
// creation.
type ObjectiveInstance struct {
	Id              string            `json:"id,omitempty"`
	TemplateId      string            `json:"template_id,omitempty"`
	Kind            ObjectiveKind     `json:"kind,omitempty"`
	Lifespan        ObjectiveLifespan `json:"lifespan,omitempty"`
	Category        string            `json:"category,omitempty"`
	TargetValue     int64             `json:"target_value,omitempty"`
	CurrentProgress int64             `json:"current_progress,omitempty"`
	Completed       bool              `json:"completed,omitempty"`
	CompleteTimeSec int64             `json:"complete_time_sec,omitempty"`
	Active          bool              `json:"active,omitempty"`
	ClaimTimeSec    int64             `json:"claim_time_sec,omitempty"`
	CreateTimeSec   int64             `json:"create_time_sec,omitempty"`
	ExpireTimeSec   int64             `json:"expire_time_sec,omitempty"`
	Reward          *RewardDescriptor `json:"reward,omitempty"`
}

// IsExpired returns true once a daily instance has passed its expiry time.
// Instances without an expiry never expire.
func (o *ObjectiveInstance) IsExpired(nowSec int64) bool {
	return o.ExpireTimeSec > 0 && nowSec > o.ExpireTimeSec
}

// ObjectiveList is the per-user storage document holding all objective instances.
type ObjectiveList struct {
	Objectives map[string]*ObjectiveInstance `json:"objectives,omitempty"`
}

// ObjectiveStats summarizes a user's completion state across all objectives.
type ObjectiveStats struct {
	Total             int            `json:"total"`
	Completed         int            `json:"completed"`
	HiddenCompleted   int            `json:"hidden_completed"`
	CompletionRate    float64        `json:"completion_rate"`
	CategoryCompleted map[string]int `json:"category_completed,omitempty"`
}

// OnReward is a custom hook which can adjust a rolled reward before it is
// handed out, for example to apply a personalization multiplier.
type OnReward[T any] func(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID, sourceID string, source T, rewardConfig, reward *RewardDescriptor) (*RewardDescriptor, error)

// The ObjectivesSystem tracks quests and achievements for each user: it
// materializes instances from the shared template catalog, advances their
// progress from category-keyed activity deltas, detects completion, and gates
// one-time reward claiming.
type ObjectivesSystem interface {
	System

	// Templates returns the shared objective template catalog ordered by ID,
	// optionally filtered by kind.
	Templates(kind ObjectiveKind) []*ObjectiveTemplate

	// Initialize materializes the permanent objective set for a new user: all
	// achievement templates plus quests with the "main" lifespan. A user who
	// already holds instances is rejected with ErrUserAlreadyInitialized.
	Initialize(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string) ([]*ObjectiveInstance, error)

	// GenerateDaily prunes expired daily instances and deals out a fresh hand
	// of daily quests appropriate to the user's level. Unexpired instances
	// keep their slot even when completed or claimed, so repeat calls within
	// the same day are safe.
	GenerateDaily(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string, userLevel int) ([]*ObjectiveInstance, error)

	// UpdateProgress adds a non-negative delta to every active, unexpired,
	// uncompleted instance matching the category and returns the instances
	// which completed as a result of this call.
	UpdateProgress(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID, category string, delta int64) ([]*ObjectiveInstance, error)

	// ListActive returns the user's in-progress objectives: active, unexpired,
	// uncompleted, and not hidden.
	ListActive(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string, kind ObjectiveKind) ([]*ObjectiveInstance, error)

	// ListCompleted returns completed objectives, most recent first. A limit
	// of 0 returns all of them.
	ListCompleted(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string, kind ObjectiveKind, limit int) ([]*ObjectiveInstance, error)

	// Claim hands out the reward for a completed objective exactly once and
	// deactivates the instance. The returned descriptor's currency and
	// experience must be applied by the caller; item grants have already been
	// routed through the inventory system.
	Claim(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID, objectiveID string) (*RewardDescriptor, error)

	// Stats summarizes the user's objective completion state.
	Stats(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string) (*ObjectiveStats, error)

	// SetOnClaimReward sets a custom reward hook run after a claim's reward is
	// copied from the instance and before item grants are applied.
	SetOnClaimReward(fn OnReward[*ObjectivesConfigObjective])

	// SetRandom replaces the pseudo-random source used for daily quest
	// selection. Intended for deterministic tests.
	SetRandom(r *rand.Rand)

	// SetQuestlogix sets the Questlogix instance used to reach the inventory
	// system, personalizers, and publishers.
	SetQuestlogix(ql Questlogix)
}
