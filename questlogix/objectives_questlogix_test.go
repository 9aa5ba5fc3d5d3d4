package questlogix

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Constants for tests - match the ones in the implementation
const (
	testObjectivesCollection = "objectives"
	testObjectivesKey        = "user_objectives"
	testInventoryCollection  = "inventory"
	testInventoryKey         = "user_items"
)

// We'll create a custom mock that extends the existing MockNakamaModule
type testNakamaModule struct {
	*MockNakamaModule
	storage   map[string]string
	failRead  bool
	failWrite bool
}

// Create a new test module with storage capabilities
func newTestNakamaModule() *testNakamaModule {
	return &testNakamaModule{
		MockNakamaModule: NewMockNakama(nil),
		storage:          make(map[string]string),
	}
}

// Override storage operations with our custom implementations
func (m *testNakamaModule) StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error) {
	if m.failRead {
		return nil, errors.New("mock read error")
	}
	var result []*api.StorageObject
	for _, r := range reads {
		key := r.UserID + ":" + r.Collection + ":" + r.Key
		if val, ok := m.storage[key]; ok {
			result = append(result, &api.StorageObject{
				Collection: r.Collection,
				Key:        r.Key,
				UserId:     r.UserID,
				Value:      val,
				Version:    "v1",
			})
		}
	}
	return result, nil
}

func (m *testNakamaModule) StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error) {
	if m.failWrite {
		return nil, errors.New("mock write error")
	}
	var acks []*api.StorageObjectAck
	for _, w := range writes {
		key := w.UserID + ":" + w.Collection + ":" + w.Key
		m.storage[key] = w.Value
		acks = append(acks, &api.StorageObjectAck{
			Collection: w.Collection,
			Key:        w.Key,
			UserId:     w.UserID,
			Version:    "v1",
		})
	}
	return acks, nil
}

// mockQuestlogix wires systems together for tests and records every event
// handed to the publisher fan-out.
type mockQuestlogix struct {
	objectives ObjectivesSystem
	inventory  InventorySystem
	locker     *UserLocker
	events     []*PublisherEvent
}

func newMockQuestlogix() *mockQuestlogix {
	return &mockQuestlogix{locker: NewUserLocker()}
}

func (m *mockQuestlogix) SetPersonalizer(p Personalizer)        {}
func (m *mockQuestlogix) AddPersonalizer(p Personalizer)        {}
func (m *mockQuestlogix) AddPublisher(p Publisher)              {}
func (m *mockQuestlogix) GetObjectivesSystem() ObjectivesSystem { return m.objectives }
func (m *mockQuestlogix) GetInventorySystem() InventorySystem   { return m.inventory }
func (m *mockQuestlogix) UserLocker() *UserLocker               { return m.locker }

func (m *mockQuestlogix) PersonalizeConfig(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, system System, userID string) (any, error) {
	return system.GetConfig(), nil
}

func (m *mockQuestlogix) SendPublisherEvents(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string, events []*PublisherEvent) {
	m.events = append(m.events, events...)
}

func (m *mockQuestlogix) eventNames() []string {
	names := make([]string, 0, len(m.events))
	for _, event := range m.events {
		names = append(names, event.Name)
	}
	return names
}

// Logger stub for tests
// Implements runtime.Logger, logs to testing.T
type testLoggerImpl struct{ t *testing.T }

func (l *testLoggerImpl) Debug(msg string, fields ...interface{})                 { l.t.Logf("DEBUG: "+msg, fields...) }
func (l *testLoggerImpl) Info(msg string, fields ...interface{})                  { l.t.Logf("INFO: "+msg, fields...) }
func (l *testLoggerImpl) Warn(msg string, fields ...interface{})                  { l.t.Logf("WARN: "+msg, fields...) }
func (l *testLoggerImpl) Error(msg string, fields ...interface{})                 { l.t.Logf("ERROR: "+msg, fields...) }
func (l *testLoggerImpl) Fields() map[string]interface{}                          { return map[string]interface{}{} }
func (l *testLoggerImpl) WithField(key string, value interface{}) runtime.Logger  { return l }
func (l *testLoggerImpl) WithFields(fields map[string]interface{}) runtime.Logger { return l }

func newTestObjectivesSystem(cfg *ObjectivesConfig) (*NakamaObjectivesSystem, *mockQuestlogix) {
	sys := NewNakamaObjectivesSystem(cfg)
	sys.SetRandom(rand.New(rand.NewSource(42)))
	ql := newMockQuestlogix()
	ql.objectives = sys
	sys.SetQuestlogix(ql)
	return sys, ql
}

func seedUserObjectives(nk *testNakamaModule, userID string, list *ObjectiveList) {
	data, _ := json.Marshal(list)
	nk.storage[userID+":"+testObjectivesCollection+":"+testObjectivesKey] = string(data)
}

func TestObjectivesInitialize(t *testing.T) {
	sys, _ := newTestObjectivesSystem(DefaultObjectivesConfig())
	logger := &testLoggerImpl{t}
	nk := newTestNakamaModule()
	ctx := context.Background()
	userID := "user1"

	created, err := sys.Initialize(ctx, logger, nk, userID)
	require.NoError(t, err)

	// All achievements plus both "main" quests materialize at once.
	achievements := 0
	mainQuests := 0
	for _, instance := range created {
		assert.True(t, instance.Active)
		assert.False(t, instance.Completed)
		assert.Equal(t, int64(0), instance.CurrentProgress)
		switch instance.Kind {
		case ObjectiveKindAchievement:
			achievements++
		case ObjectiveKindQuest:
			assert.Equal(t, ObjectiveLifespanMain, instance.Lifespan)
			mainQuests++
		}
	}
	assert.Equal(t, 12, achievements)
	assert.Equal(t, 2, mainQuests)

	// Each instance carries its own reward copy, detached from the template.
	for _, instance := range created {
		if instance.TemplateId == "walk_first_step" {
			require.NotNil(t, instance.Reward)
			assert.Equal(t, int64(100), instance.Reward.Currency)
			assert.NotSame(t, sys.config.Objectives["walk_first_step"].Reward, instance.Reward)
		}
	}

	// Re-initialization must not duplicate anything.
	_, err = sys.Initialize(ctx, logger, nk, userID)
	assert.ErrorIs(t, err, ErrUserAlreadyInitialized)
}

func TestObjectivesInitialize_StorageErrors(t *testing.T) {
	sys, _ := newTestObjectivesSystem(DefaultObjectivesConfig())
	logger := &testLoggerImpl{t}
	nk := newTestNakamaModule()
	ctx := context.Background()

	nk.failRead = true
	_, err := sys.Initialize(ctx, logger, nk, "user1")
	assert.Error(t, err)
	nk.failRead = false

	nk.failWrite = true
	_, err = sys.Initialize(ctx, logger, nk, "user1")
	assert.Error(t, err)
}

func TestObjectivesUpdateProgressAndClaim(t *testing.T) {
	sys, ql := newTestObjectivesSystem(DefaultObjectivesConfig())
	inv := NewNakamaInventorySystem(DefaultInventoryConfig())
	inv.SetQuestlogix(ql)
	ql.inventory = inv

	logger := &testLoggerImpl{t}
	nk := newTestNakamaModule()
	ctx := context.Background()
	userID := "user2"

	_, err := sys.Initialize(ctx, logger, nk, userID)
	require.NoError(t, err)

	// A partial walk advances every "walk" objective but completes none.
	completed, err := sys.UpdateProgress(ctx, logger, nk, userID, "walk", 400)
	require.NoError(t, err)
	assert.Empty(t, completed)

	// Crossing the 1000 threshold completes exactly the first-step achievement.
	completed, err = sys.UpdateProgress(ctx, logger, nk, userID, "walk", 600)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "walk_first_step", completed[0].Id)
	assert.True(t, completed[0].Completed)
	assert.NotZero(t, completed[0].CompleteTimeSec)
	assert.Contains(t, ql.eventNames(), "objective_completed")

	// Progress past the target does not move a completed instance.
	_, err = sys.UpdateProgress(ctx, logger, nk, userID, "walk", 500)
	require.NoError(t, err)
	listed, err := sys.ListCompleted(ctx, logger, nk, userID, ObjectiveKindAchievement, 0)
	require.NoError(t, err)
	for _, instance := range listed {
		if instance.Id == "walk_first_step" {
			assert.Equal(t, int64(1000), instance.CurrentProgress)
		}
	}

	// Claim pays out once and routes the item grant through the inventory.
	reward, err := sys.Claim(ctx, logger, nk, userID, "walk_first_step")
	require.NoError(t, err)
	assert.Equal(t, int64(100), reward.Currency)
	assert.Equal(t, int64(50), reward.Experience)
	assert.Equal(t, "Novice Walker", reward.Title)
	assert.Contains(t, ql.eventNames(), "reward_claimed")

	inventory, err := inv.Snapshot(ctx, logger, nk, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), inventory.Items["health_potion"])

	// A second claim of the same objective is rejected, not re-granted.
	_, err = sys.Claim(ctx, logger, nk, userID, "walk_first_step")
	assert.ErrorIs(t, err, ErrObjectiveClaimed)
	inventory, err = inv.Snapshot(ctx, logger, nk, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), inventory.Items["health_potion"])
}

func TestObjectivesUpdateProgress_EdgeCases(t *testing.T) {
	sys, _ := newTestObjectivesSystem(DefaultObjectivesConfig())
	logger := &testLoggerImpl{t}
	nk := newTestNakamaModule()
	ctx := context.Background()
	userID := "user3"

	_, err := sys.Initialize(ctx, logger, nk, userID)
	require.NoError(t, err)

	// Negative deltas are rejected outright.
	_, err = sys.UpdateProgress(ctx, logger, nk, userID, "walk", -10)
	assert.ErrorIs(t, err, ErrBadInput)

	// Zero deltas are a no-op without a storage write.
	nk.failWrite = true
	completed, err := sys.UpdateProgress(ctx, logger, nk, userID, "walk", 0)
	assert.NoError(t, err)
	assert.Empty(t, completed)
	nk.failWrite = false

	// Unknown categories match nothing and report no completions.
	completed, err = sys.UpdateProgress(ctx, logger, nk, userID, "swimming", 100)
	assert.NoError(t, err)
	assert.Empty(t, completed)
}

func TestObjectivesClaimRejections(t *testing.T) {
	sys, _ := newTestObjectivesSystem(DefaultObjectivesConfig())
	logger := &testLoggerImpl{t}
	nk := newTestNakamaModule()
	ctx := context.Background()
	userID := "user4"

	_, err := sys.Initialize(ctx, logger, nk, userID)
	require.NoError(t, err)

	_, err = sys.Claim(ctx, logger, nk, userID, "no_such_objective")
	assert.ErrorIs(t, err, ErrObjectiveNotFound)

	_, err = sys.Claim(ctx, logger, nk, userID, "walk_first_step")
	assert.ErrorIs(t, err, ErrObjectiveNotComplete)
}

func TestObjectivesGenerateDaily(t *testing.T) {
	sys, _ := newTestObjectivesSystem(DefaultObjectivesConfig())
	logger := &testLoggerImpl{t}
	nk := newTestNakamaModule()
	ctx := context.Background()
	userID := "user5"

	// At level 1 only daily_walk_1km is eligible, so the hand stays short of
	// the configured count.
	hand, err := sys.GenerateDaily(ctx, logger, nk, userID, 1)
	require.NoError(t, err)
	require.Len(t, hand, 1)
	assert.Equal(t, "daily_walk_1km", hand[0].TemplateId)
	assert.NotEqual(t, hand[0].TemplateId, hand[0].Id)
	assert.Greater(t, hand[0].ExpireTimeSec, time.Now().Unix())

	// At level 5 all three daily templates qualify; the live instance is kept
	// and only the missing slots are dealt.
	hand, err = sys.GenerateDaily(ctx, logger, nk, userID, 5)
	require.NoError(t, err)
	require.Len(t, hand, 3)
	templates := make(map[string]bool)
	for _, instance := range hand {
		assert.Equal(t, ObjectiveLifespanDaily, instance.Lifespan)
		assert.False(t, templates[instance.TemplateId], "duplicate daily template %s", instance.TemplateId)
		templates[instance.TemplateId] = true
	}

	// A repeat call within the day hands out nothing new.
	repeat, err := sys.GenerateDaily(ctx, logger, nk, userID, 5)
	require.NoError(t, err)
	require.Len(t, repeat, 3)
	for idx := range repeat {
		assert.Equal(t, hand[idx].Id, repeat[idx].Id)
	}
}

func TestObjectivesGenerateDaily_ExpiryPruning(t *testing.T) {
	sys, _ := newTestObjectivesSystem(DefaultObjectivesConfig())
	logger := &testLoggerImpl{t}
	nk := newTestNakamaModule()
	ctx := context.Background()
	userID := "user6"
	now := time.Now().Unix()

	// Seed one expired daily with partial progress. The replacement starts
	// from zero, progress does not carry over.
	seedUserObjectives(nk, userID, &ObjectiveList{
		Objectives: map[string]*ObjectiveInstance{
			"daily_walk_1km_100": {
				Id:              "daily_walk_1km_100",
				TemplateId:      "daily_walk_1km",
				Kind:            ObjectiveKindQuest,
				Lifespan:        ObjectiveLifespanDaily,
				Category:        "walk",
				TargetValue:     1000,
				CurrentProgress: 500,
				Active:          true,
				CreateTimeSec:   now - dailyLifetimeSec - 100,
				ExpireTimeSec:   now - 100,
			},
		},
	})

	hand, err := sys.GenerateDaily(ctx, logger, nk, userID, 5)
	require.NoError(t, err)
	require.Len(t, hand, 3)
	for _, instance := range hand {
		assert.NotEqual(t, "daily_walk_1km_100", instance.Id)
		assert.Equal(t, int64(0), instance.CurrentProgress)
	}

	list, _, err := sys.getUserObjectives(ctx, logger, nk, userID)
	require.NoError(t, err)
	assert.NotContains(t, list.Objectives, "daily_walk_1km_100")
}

func TestObjectivesGenerateDaily_ClaimedDailyHoldsSlot(t *testing.T) {
	sys, _ := newTestObjectivesSystem(DefaultObjectivesConfig())
	logger := &testLoggerImpl{t}
	nk := newTestNakamaModule()
	ctx := context.Background()
	userID := "user12"

	hand, err := sys.GenerateDaily(ctx, logger, nk, userID, 1)
	require.NoError(t, err)
	require.Len(t, hand, 1)
	require.Equal(t, "daily_walk_1km", hand[0].TemplateId)

	completed, err := sys.UpdateProgress(ctx, logger, nk, userID, "walk", 1000)
	require.NoError(t, err)
	require.Len(t, completed, 1)

	_, err = sys.Claim(ctx, logger, nk, userID, hand[0].Id)
	require.NoError(t, err)

	// Regenerating within the same day must not re-deal the claimed template
	// or revive the claimed instance.
	regen, err := sys.GenerateDaily(ctx, logger, nk, userID, 1)
	require.NoError(t, err)
	require.Len(t, regen, 1)
	assert.Equal(t, hand[0].Id, regen[0].Id)
	assert.False(t, regen[0].Active)
	assert.Greater(t, regen[0].ClaimTimeSec, int64(0))
	assert.True(t, regen[0].Completed)

	_, err = sys.Claim(ctx, logger, nk, userID, hand[0].Id)
	assert.ErrorIs(t, err, ErrObjectiveClaimed)

	// At a higher level the claimed daily still occupies one of the slots and
	// its template stays out of the deal.
	regen, err = sys.GenerateDaily(ctx, logger, nk, userID, 5)
	require.NoError(t, err)
	require.Len(t, regen, 3)
	walkInstances := 0
	for _, instance := range regen {
		if instance.TemplateId == "daily_walk_1km" {
			walkInstances++
			assert.Equal(t, hand[0].Id, instance.Id)
		}
	}
	assert.Equal(t, 1, walkInstances)
}

func TestObjectivesCompletedDailyClaimableAfterExpiry(t *testing.T) {
	sys, ql := newTestObjectivesSystem(DefaultObjectivesConfig())
	inv := NewNakamaInventorySystem(DefaultInventoryConfig())
	inv.SetQuestlogix(ql)
	ql.inventory = inv

	logger := &testLoggerImpl{t}
	nk := newTestNakamaModule()
	ctx := context.Background()
	userID := "user7"
	now := time.Now().Unix()

	// A daily completed before its expiry keeps its reward claimable even
	// after the instance has expired.
	seedUserObjectives(nk, userID, &ObjectiveList{
		Objectives: map[string]*ObjectiveInstance{
			"daily_walk_1km_200": {
				Id:              "daily_walk_1km_200",
				TemplateId:      "daily_walk_1km",
				Kind:            ObjectiveKindQuest,
				Lifespan:        ObjectiveLifespanDaily,
				Category:        "walk",
				TargetValue:     1000,
				CurrentProgress: 1000,
				Completed:       true,
				CompleteTimeSec: now - 200,
				Active:          true,
				CreateTimeSec:   now - dailyLifetimeSec - 300,
				ExpireTimeSec:   now - 100,
				Reward:          &RewardDescriptor{Currency: 50, Experience: 25},
			},
		},
	})

	// Generation must not prune the completed-but-unclaimed instance.
	_, err := sys.GenerateDaily(ctx, logger, nk, userID, 5)
	require.NoError(t, err)
	list, _, err := sys.getUserObjectives(ctx, logger, nk, userID)
	require.NoError(t, err)
	require.Contains(t, list.Objectives, "daily_walk_1km_200")

	reward, err := sys.Claim(ctx, logger, nk, userID, "daily_walk_1km_200")
	require.NoError(t, err)
	assert.Equal(t, int64(50), reward.Currency)

	// Once claimed, the next generation run prunes it.
	_, err = sys.GenerateDaily(ctx, logger, nk, userID, 5)
	require.NoError(t, err)
	list, _, err = sys.getUserObjectives(ctx, logger, nk, userID)
	require.NoError(t, err)
	assert.NotContains(t, list.Objectives, "daily_walk_1km_200")
}

func TestObjectivesListActiveAndHidden(t *testing.T) {
	sys, _ := newTestObjectivesSystem(DefaultObjectivesConfig())
	logger := &testLoggerImpl{t}
	nk := newTestNakamaModule()
	ctx := context.Background()
	userID := "user8"

	_, err := sys.Initialize(ctx, logger, nk, userID)
	require.NoError(t, err)

	// Hidden achievements stay out of the active listing until completed.
	active, err := sys.ListActive(ctx, logger, nk, userID, ObjectiveKindAchievement)
	require.NoError(t, err)
	for _, instance := range active {
		assert.NotEqual(t, "special_night_walker", instance.Id)
		assert.NotEqual(t, "special_speed_demon", instance.Id)
	}

	// Hidden instances still accumulate progress and surface once completed.
	completed, err := sys.UpdateProgress(ctx, logger, nk, userID, "special", 10000)
	require.NoError(t, err)
	require.Len(t, completed, 2)

	listed, err := sys.ListCompleted(ctx, logger, nk, userID, ObjectiveKindAchievement, 0)
	require.NoError(t, err)
	ids := make([]string, 0, len(listed))
	for _, instance := range listed {
		ids = append(ids, instance.Id)
	}
	assert.Contains(t, ids, "special_night_walker")
	assert.Contains(t, ids, "special_speed_demon")

	// Completed instances leave the active listing.
	active, err = sys.ListActive(ctx, logger, nk, userID, ObjectiveKindUnknown)
	require.NoError(t, err)
	for _, instance := range active {
		assert.False(t, instance.Completed)
	}
}

func TestObjectivesExpiredReceivesNoProgress(t *testing.T) {
	sys, _ := newTestObjectivesSystem(DefaultObjectivesConfig())
	logger := &testLoggerImpl{t}
	nk := newTestNakamaModule()
	ctx := context.Background()
	userID := "user9"
	now := time.Now().Unix()

	seedUserObjectives(nk, userID, &ObjectiveList{
		Objectives: map[string]*ObjectiveInstance{
			"daily_walk_1km_300": {
				Id:            "daily_walk_1km_300",
				TemplateId:    "daily_walk_1km",
				Kind:          ObjectiveKindQuest,
				Lifespan:      ObjectiveLifespanDaily,
				Category:      "walk",
				TargetValue:   1000,
				Active:        true,
				CreateTimeSec: now - dailyLifetimeSec - 200,
				ExpireTimeSec: now - 100,
			},
		},
	})

	completed, err := sys.UpdateProgress(ctx, logger, nk, userID, "walk", 2000)
	require.NoError(t, err)
	assert.Empty(t, completed)

	list, _, err := sys.getUserObjectives(ctx, logger, nk, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), list.Objectives["daily_walk_1km_300"].CurrentProgress)

	// Expired instances are also absent from the active listing.
	active, err := sys.ListActive(ctx, logger, nk, userID, ObjectiveKindUnknown)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestObjectivesStats(t *testing.T) {
	sys, _ := newTestObjectivesSystem(DefaultObjectivesConfig())
	logger := &testLoggerImpl{t}
	nk := newTestNakamaModule()
	ctx := context.Background()
	userID := "user10"

	_, err := sys.Initialize(ctx, logger, nk, userID)
	require.NoError(t, err)

	_, err = sys.UpdateProgress(ctx, logger, nk, userID, "battle", 1)
	require.NoError(t, err)
	_, err = sys.UpdateProgress(ctx, logger, nk, userID, "special", 10000)
	require.NoError(t, err)

	stats, err := sys.Stats(ctx, logger, nk, userID)
	require.NoError(t, err)
	assert.Equal(t, 14, stats.Total)
	assert.Equal(t, 3, stats.Completed)
	assert.Equal(t, 2, stats.HiddenCompleted)
	assert.Equal(t, 1, stats.CategoryCompleted["battle"])
	assert.Equal(t, 2, stats.CategoryCompleted["special"])
	assert.InDelta(t, 100*3.0/14.0, stats.CompletionRate, 0.01)
}

func TestObjectivesOnClaimRewardHook(t *testing.T) {
	sys, _ := newTestObjectivesSystem(DefaultObjectivesConfig())
	logger := &testLoggerImpl{t}
	nk := newTestNakamaModule()
	ctx := context.Background()
	userID := "user11"

	hookCalled := false
	sys.SetOnClaimReward(func(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID, sourceID string, source *ObjectivesConfigObjective, rewardConfig, reward *RewardDescriptor) (*RewardDescriptor, error) {
		hookCalled = true
		doubled := *reward
		doubled.Currency *= 2
		return &doubled, nil
	})

	_, err := sys.Initialize(ctx, logger, nk, userID)
	require.NoError(t, err)
	_, err = sys.UpdateProgress(ctx, logger, nk, userID, "battle", 1)
	require.NoError(t, err)

	reward, err := sys.Claim(ctx, logger, nk, userID, "battle_first_win")
	require.NoError(t, err)
	assert.True(t, hookCalled)
	assert.Equal(t, int64(100), reward.Currency)
}

// Test for CRON-based daily expiry
func TestObjectiveDailyResetCronExpr(t *testing.T) {
	// Use a specific time for testing
	testTime := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	cfg := DefaultObjectivesConfig()
	cfg.Objectives["daily_walk_1km"].ResetCronexpr = "0 0 * * *" // Midnight every day
	sys, _ := newTestObjectivesSystem(cfg)

	instance := sys.newObjectiveInstance("daily_walk_1km", cfg.Objectives["daily_walk_1km"], testTime.Unix())
	assert.Equal(t, time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC).Unix(), instance.ExpireTimeSec)

	// Without a cron expression the instance lives exactly one day.
	plain := sys.newObjectiveInstance("daily_walk_3km", cfg.Objectives["daily_walk_3km"], testTime.Unix())
	assert.Equal(t, testTime.Unix()+dailyLifetimeSec, plain.ExpireTimeSec)
}

func TestObjectivesConfigDefaulting(t *testing.T) {
	// Defaulting the daily count must not write back into the caller's config.
	cfg := &ObjectivesConfig{Objectives: map[string]*ObjectivesConfigObjective{}}
	sys := NewNakamaObjectivesSystem(cfg)
	assert.Equal(t, 0, cfg.DailyCount)
	assert.Equal(t, defaultDailyCount, sys.config.DailyCount)
}

func TestObjectivesTemplates(t *testing.T) {
	cfg := DefaultObjectivesConfig()
	cfg.Objectives["walk_100km"].Disabled = true
	sys, _ := newTestObjectivesSystem(cfg)

	all := sys.Templates(ObjectiveKindUnknown)
	for _, template := range all {
		assert.NotEqual(t, "walk_100km", template.Id)
	}

	quests := sys.Templates(ObjectiveKindQuest)
	assert.Len(t, quests, 7)
	for idx := 1; idx < len(quests); idx++ {
		assert.Less(t, quests[idx-1].Id, quests[idx].Id)
	}
}
