package questlogix

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/robfig/cron/v3"
)

const (
	objectivesStorageCollection = "objectives"
	userObjectivesStorageKey    = "user_objectives"

	defaultDailyCount = 3
	dailyLifetimeSec  = 24 * 60 * 60
)

// NakamaObjectivesSystem implements the ObjectivesSystem interface using the
// Nakama storage engine as the per-user progression store.
type NakamaObjectivesSystem struct {
	config     *ObjectivesConfig
	questlogix Questlogix
	cronParser cron.Parser

	onClaimReward OnReward[*ObjectivesConfigObjective]

	randMu sync.Mutex
	rng    *rand.Rand
}

func NewNakamaObjectivesSystem(config *ObjectivesConfig) *NakamaObjectivesSystem {
	// Work on a copy so defaulting never edits the caller's config.
	cfg := *config
	if cfg.DailyCount <= 0 {
		cfg.DailyCount = defaultDailyCount
	}
	return &NakamaObjectivesSystem{
		config:     &cfg,
		cronParser: cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *NakamaObjectivesSystem) GetType() SystemType {
	return SystemTypeObjectives
}

func (s *NakamaObjectivesSystem) GetConfig() any {
	return s.config
}

func (s *NakamaObjectivesSystem) SetQuestlogix(ql Questlogix) {
	s.questlogix = ql
}

func (s *NakamaObjectivesSystem) SetOnClaimReward(fn OnReward[*ObjectivesConfigObjective]) {
	s.onClaimReward = fn
}

func (s *NakamaObjectivesSystem) SetRandom(r *rand.Rand) {
	s.randMu.Lock()
	s.rng = r
	s.randMu.Unlock()
}

// Templates returns the shared objective template catalog ordered by ID.
func (s *NakamaObjectivesSystem) Templates(kind ObjectiveKind) []*ObjectiveTemplate {
	templates := make([]*ObjectiveTemplate, 0, len(s.config.Objectives))
	for id, objective := range s.config.Objectives {
		if objective.Disabled {
			continue
		}
		if kind != ObjectiveKindUnknown && objective.Kind != kind {
			continue
		}
		templates = append(templates, &ObjectiveTemplate{Id: id, ObjectivesConfigObjective: objective})
	}
	sort.Slice(templates, func(i, j int) bool { return templates[i].Id < templates[j].Id })
	return templates
}

// resolveConfig runs the personalizer chain over the base config for this
// user. Any personalization failure falls back to the base definitions.
func (s *NakamaObjectivesSystem) resolveConfig(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string) *ObjectivesConfig {
	if s.questlogix == nil {
		return s.config
	}
	adjusted, err := s.questlogix.PersonalizeConfig(ctx, logger, nk, s, userID)
	if err != nil {
		logger.Error("Failed to personalize objectives config: %v", err)
		return s.config
	}
	if config, ok := adjusted.(*ObjectivesConfig); ok && config != nil {
		return config
	}
	return s.config
}

// newObjectiveInstance materializes a fresh, independently-owned instance
// from a template. Daily instances get a timestamped ID so the same template
// can be handed out again on later days, and an expiry of one day out unless
// the template pins expiry to a cron boundary.
func (s *NakamaObjectivesSystem) newObjectiveInstance(templateID string, template *ObjectivesConfigObjective, nowSec int64) *ObjectiveInstance {
	instance := &ObjectiveInstance{
		Id:            templateID,
		TemplateId:    templateID,
		Kind:          template.Kind,
		Lifespan:      template.Lifespan,
		Category:      template.Category,
		TargetValue:   template.TargetValue,
		Active:        true,
		CreateTimeSec: nowSec,
	}
	if template.Reward != nil {
		reward := *template.Reward
		instance.Reward = &reward
	}
	if template.Lifespan == ObjectiveLifespanDaily {
		instance.Id = fmt.Sprintf("%s_%d", templateID, nowSec)
		instance.ExpireTimeSec = nowSec + dailyLifetimeSec
		if template.ResetCronexpr != "" {
			if sched, err := s.cronParser.Parse(template.ResetCronexpr); err == nil {
				instance.ExpireTimeSec = sched.Next(time.Unix(nowSec, 0).UTC()).Unix()
			}
		}
	}
	return instance
}

func (s *NakamaObjectivesSystem) getUserObjectives(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string) (*ObjectiveList, string, error) {
	objects, err := nk.StorageRead(ctx, []*runtime.StorageRead{{
		Collection: objectivesStorageCollection,
		Key:        userObjectivesStorageKey,
		UserID:     userID,
	}})
	if err != nil {
		logger.Error("Failed to read user objectives: %v", err)
		return nil, "", ErrInternal
	}

	objectiveList := &ObjectiveList{
		Objectives: make(map[string]*ObjectiveInstance),
	}
	var version string
	if len(objects) > 0 && objects[0].Value != "" {
		if err := json.Unmarshal([]byte(objects[0].Value), objectiveList); err != nil {
			logger.Error("Failed to unmarshal user objectives: %v", err)
			return nil, "", ErrInternal
		}
		if objectiveList.Objectives == nil {
			objectiveList.Objectives = make(map[string]*ObjectiveInstance)
		}
		version = objects[0].Version
	}
	return objectiveList, version, nil
}

func (s *NakamaObjectivesSystem) saveUserObjectives(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string, objectiveList *ObjectiveList, version string) error {
	data, err := json.Marshal(objectiveList)
	if err != nil {
		logger.Error("Failed to marshal user objectives: %v", err)
		return ErrInternal
	}
	_, err = nk.StorageWrite(ctx, []*runtime.StorageWrite{{
		Collection:      objectivesStorageCollection,
		Key:             userObjectivesStorageKey,
		UserID:          userID,
		Value:           string(data),
		Version:         version,
		PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
		PermissionWrite: runtime.STORAGE_PERMISSION_OWNER_WRITE,
	}})
	if err != nil {
		logger.Error("Failed to write user objectives: %v", err)
		return ErrInternal
	}
	return nil
}

func (s *NakamaObjectivesSystem) lockUser(userID string) func() {
	if s.questlogix == nil {
		return func() {}
	}
	locker := s.questlogix.UserLocker()
	locker.Lock(userID)
	return func() { locker.Unlock(userID) }
}

// Initialize materializes one instance per achievement template plus every
// "main" lifespan quest for a new user. Re-initialization of a user who
// already holds instances is rejected rather than duplicated.
func (s *NakamaObjectivesSystem) Initialize(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string) ([]*ObjectiveInstance, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	objectiveList, version, err := s.getUserObjectives(ctx, logger, nk, userID)
	if err != nil {
		return nil, err
	}
	if len(objectiveList.Objectives) > 0 {
		logger.Warn("User %s already has objectives, refusing re-initialization", userID)
		return nil, ErrUserAlreadyInitialized
	}

	config := s.resolveConfig(ctx, logger, nk, userID)
	now := time.Now().Unix()

	created := make([]*ObjectiveInstance, 0, len(config.Objectives))
	for templateID, template := range config.Objectives {
		if template.Disabled {
			continue
		}
		switch {
		case template.Kind == ObjectiveKindAchievement:
		case template.Kind == ObjectiveKindQuest && template.Lifespan == ObjectiveLifespanMain:
		default:
			continue
		}
		instance := s.newObjectiveInstance(templateID, template, now)
		objectiveList.Objectives[instance.Id] = instance
		created = append(created, instance)
	}

	if err := s.saveUserObjectives(ctx, logger, nk, userID, objectiveList, version); err != nil {
		return nil, err
	}

	sort.Slice(created, func(i, j int) bool { return created[i].Id < created[j].Id })
	return created, nil
}

// GenerateDaily prunes expired daily quests and tops the user's hand back up
// to the configured daily count, drawing an unweighted random permutation of
// the level-eligible daily templates. Every unexpired instance keeps its slot
// regardless of completion or claim state, so calling again within the same
// day hands out nothing new.
func (s *NakamaObjectivesSystem) GenerateDaily(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string, userLevel int) ([]*ObjectiveInstance, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	objectiveList, version, err := s.getUserObjectives(ctx, logger, nk, userID)
	if err != nil {
		return nil, err
	}

	config := s.resolveConfig(ctx, logger, nk, userID)
	now := time.Now().Unix()
	changed := false

	// Drop stale dailies first so only truly expired entries get replaced.
	// Progress on an expired daily is lost, not carried over.
	live := make([]*ObjectiveInstance, 0, config.DailyCount)
	liveTemplates := make(map[string]bool)
	for id, instance := range objectiveList.Objectives {
		if instance.Lifespan != ObjectiveLifespanDaily {
			continue
		}
		if instance.IsExpired(now) && (!instance.Completed || instance.ClaimTimeSec > 0) {
			// Completed-but-unclaimed dailies survive expiry so their reward
			// stays claimable.
			delete(objectiveList.Objectives, id)
			changed = true
			continue
		}
		if !instance.IsExpired(now) {
			// A daily holds its slot for the whole day, even once completed or
			// claimed, so regenerating after a claim never re-deals the same
			// template.
			live = append(live, instance)
			liveTemplates[instance.TemplateId] = true
		}
	}

	eligible := make([]string, 0, len(config.Objectives))
	for templateID, template := range config.Objectives {
		if template.Disabled || template.Lifespan != ObjectiveLifespanDaily {
			continue
		}
		if template.RequiredLevel > userLevel || liveTemplates[templateID] {
			continue
		}
		eligible = append(eligible, templateID)
	}
	sort.Strings(eligible)

	s.randMu.Lock()
	s.rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	s.randMu.Unlock()

	hand := append([]*ObjectiveInstance(nil), live...)
	for _, templateID := range eligible {
		if len(hand) >= config.DailyCount {
			break
		}
		instance := s.newObjectiveInstance(templateID, config.Objectives[templateID], now)
		objectiveList.Objectives[instance.Id] = instance
		hand = append(hand, instance)
		changed = true
	}

	if changed {
		if err := s.saveUserObjectives(ctx, logger, nk, userID, objectiveList, version); err != nil {
			return nil, err
		}
	}

	sort.Slice(hand, func(i, j int) bool { return hand[i].Id < hand[j].Id })
	return hand, nil
}

// UpdateProgress routes an activity delta to every matching live instance and
// returns the instances completed by this call. Progress is monotonic:
// completed instances receive no further increments and deltas are never
// negative.
func (s *NakamaObjectivesSystem) UpdateProgress(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID, category string, delta int64) ([]*ObjectiveInstance, error) {
	if delta < 0 {
		logger.Warn("Rejected negative progress delta %d for user %s category %s", delta, userID, category)
		return nil, ErrBadInput
	}
	if delta == 0 {
		return []*ObjectiveInstance{}, nil
	}

	unlock := s.lockUser(userID)
	defer unlock()

	objectiveList, version, err := s.getUserObjectives(ctx, logger, nk, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	completed := make([]*ObjectiveInstance, 0, 1)
	changed := false

	for _, instance := range objectiveList.Objectives {
		if !instance.Active || instance.Completed || instance.Category != category || instance.IsExpired(now) {
			continue
		}
		instance.CurrentProgress += delta
		changed = true
		if instance.CurrentProgress >= instance.TargetValue {
			instance.Completed = true
			instance.CompleteTimeSec = now
			completed = append(completed, instance)
		}
	}

	if changed {
		if err := s.saveUserObjectives(ctx, logger, nk, userID, objectiveList, version); err != nil {
			return nil, err
		}
	}

	sort.Slice(completed, func(i, j int) bool { return completed[i].Id < completed[j].Id })

	if len(completed) > 0 && s.questlogix != nil {
		events := make([]*PublisherEvent, 0, len(completed))
		for _, instance := range completed {
			events = append(events, &PublisherEvent{
				Name:      "objective_completed",
				Id:        uuid.New().String(),
				Timestamp: now,
				Metadata: map[string]string{
					"objective_id": instance.Id,
					"template_id":  instance.TemplateId,
					"category":     instance.Category,
				},
				System:   s,
				SourceId: instance.TemplateId,
				Source:   s.config.Objectives[instance.TemplateId],
			})
		}
		s.questlogix.SendPublisherEvents(ctx, logger, nk, userID, events)
	}

	return completed, nil
}

// ListActive returns the user's in-progress objectives: active, unexpired,
// uncompleted, and not hidden. Hidden achievements stay out of default
// listings until completed.
func (s *NakamaObjectivesSystem) ListActive(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string, kind ObjectiveKind) ([]*ObjectiveInstance, error) {
	objectiveList, _, err := s.getUserObjectives(ctx, logger, nk, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	active := make([]*ObjectiveInstance, 0, len(objectiveList.Objectives))
	for _, instance := range objectiveList.Objectives {
		if !instance.Active || instance.Completed || instance.IsExpired(now) {
			continue
		}
		if kind != ObjectiveKindUnknown && instance.Kind != kind {
			continue
		}
		if template, ok := s.config.Objectives[instance.TemplateId]; ok && template.Hidden {
			continue
		}
		active = append(active, instance)
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Id < active[j].Id })
	return active, nil
}

// ListCompleted returns completed objectives most recent first. Hidden
// objectives are included once completed. A limit of 0 returns all.
func (s *NakamaObjectivesSystem) ListCompleted(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string, kind ObjectiveKind, limit int) ([]*ObjectiveInstance, error) {
	objectiveList, _, err := s.getUserObjectives(ctx, logger, nk, userID)
	if err != nil {
		return nil, err
	}

	completed := make([]*ObjectiveInstance, 0, len(objectiveList.Objectives))
	for _, instance := range objectiveList.Objectives {
		if !instance.Completed {
			continue
		}
		if kind != ObjectiveKindUnknown && instance.Kind != kind {
			continue
		}
		completed = append(completed, instance)
	}
	sort.Slice(completed, func(i, j int) bool {
		if completed[i].CompleteTimeSec != completed[j].CompleteTimeSec {
			return completed[i].CompleteTimeSec > completed[j].CompleteTimeSec
		}
		return completed[i].Id < completed[j].Id
	})
	if limit > 0 && len(completed) > limit {
		completed = completed[:limit]
	}
	return completed, nil
}

// Claim hands out a completed objective's reward exactly once. The instance
// is deactivated before any reward routing happens, so a concurrent or repeat
// claim of the same objective is rejected rather than re-granted. A daily
// objective which completed before expiring stays claimable after expiry.
func (s *NakamaObjectivesSystem) Claim(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID, objectiveID string) (*RewardDescriptor, error) {
	reward, instance, err := s.claimLocked(ctx, logger, nk, userID, objectiveID)
	if err != nil {
		return nil, err
	}

	// Reward routing happens outside the user lock: the claim is already
	// durable, and the inventory grant takes the same lock itself.
	if reward.ItemId != "" && reward.ItemQuantity > 0 && s.questlogix != nil {
		if inventory := s.questlogix.GetInventorySystem(); inventory != nil {
			granted, _, err := inventory.GrantItem(ctx, logger, nk, userID, reward.ItemId, reward.ItemQuantity)
			if err != nil {
				logger.Error("Failed to grant reward item %s for objective %s: %v", reward.ItemId, objectiveID, err)
			} else if !granted {
				logger.Warn("Reward item %s for objective %s was not granted", reward.ItemId, objectiveID)
			}
		}
	}

	if s.questlogix != nil {
		s.questlogix.SendPublisherEvents(ctx, logger, nk, userID, []*PublisherEvent{{
			Name:      "reward_claimed",
			Id:        uuid.New().String(),
			Timestamp: instance.ClaimTimeSec,
			Metadata: map[string]string{
				"objective_id": objectiveID,
				"template_id":  instance.TemplateId,
			},
			System:   s,
			SourceId: instance.TemplateId,
			Source:   s.config.Objectives[instance.TemplateId],
		}})
	}

	return reward, nil
}

func (s *NakamaObjectivesSystem) claimLocked(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID, objectiveID string) (*RewardDescriptor, *ObjectiveInstance, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	objectiveList, version, err := s.getUserObjectives(ctx, logger, nk, userID)
	if err != nil {
		return nil, nil, err
	}

	instance, ok := objectiveList.Objectives[objectiveID]
	if !ok {
		return nil, nil, ErrObjectiveNotFound
	}
	if !instance.Completed {
		return nil, nil, ErrObjectiveNotComplete
	}
	if !instance.Active || instance.ClaimTimeSec > 0 {
		return nil, nil, ErrObjectiveClaimed
	}

	instance.Active = false
	instance.ClaimTimeSec = time.Now().Unix()

	reward := &RewardDescriptor{}
	if instance.Reward != nil {
		copied := *instance.Reward
		reward = &copied
	}

	if s.onClaimReward != nil {
		template := s.config.Objectives[instance.TemplateId]
		adjusted, err := s.onClaimReward(ctx, logger, nk, userID, instance.TemplateId, template, instance.Reward, reward)
		if err != nil {
			logger.Error("Error in onClaimReward hook for %s: %v", objectiveID, err)
		} else if adjusted != nil {
			reward = adjusted
		}
	}

	if err := s.saveUserObjectives(ctx, logger, nk, userID, objectiveList, version); err != nil {
		return nil, nil, err
	}

	return reward, instance, nil
}

// Stats summarizes a user's objective completion state, including how many
// hidden objectives they have uncovered.
func (s *NakamaObjectivesSystem) Stats(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string) (*ObjectiveStats, error) {
	objectiveList, _, err := s.getUserObjectives(ctx, logger, nk, userID)
	if err != nil {
		return nil, err
	}

	stats := &ObjectiveStats{
		CategoryCompleted: make(map[string]int),
	}
	for _, instance := range objectiveList.Objectives {
		stats.Total++
		if !instance.Completed {
			continue
		}
		stats.Completed++
		stats.CategoryCompleted[instance.Category]++
		if template, ok := s.config.Objectives[instance.TemplateId]; ok && template.Hidden {
			stats.HiddenCompleted++
		}
	}
	if stats.Total > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.Total) * 100
	}
	return stats, nil
}
