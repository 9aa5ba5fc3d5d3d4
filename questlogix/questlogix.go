package questlogix

import (
	"context"
	"encoding/json"
	"io"

	"github.com/heroiclabs/nakama-common/runtime"
)

// The SystemType identifies each of the gameplay systems.
type SystemType uint

const (
	SystemTypeUnknown SystemType = iota
	SystemTypeObjectives
	SystemTypeInventory
)

// A System is a single gameplay system registered with Questlogix.
type System interface {
	// GetType provides the runtime type of the gameplay system.
	GetType() SystemType

	// GetConfig returns the configuration type of the gameplay system.
	GetConfig() any
}

// A SystemConfig describes which system to initialize and where its data
// definitions are loaded from. An empty config file selects the compiled-in
// default definition set.
type SystemConfig interface {
	GetType() SystemType
	GetConfigFile() string
}

type systemConfig struct {
	systemType SystemType
	configFile string
}

func (sc *systemConfig) GetType() SystemType   { return sc.systemType }
func (sc *systemConfig) GetConfigFile() string { return sc.configFile }

// NewSystemConfig creates a SystemConfig for use with Init.
func NewSystemConfig(systemType SystemType, configFile string) SystemConfig {
	return &systemConfig{systemType: systemType, configFile: configFile}
}

// Questlogix combines the progression and reward gameplay systems.
type Questlogix interface {
	// SetPersonalizer is deprecated in favor of AddPersonalizer to compose a chain of config personalization.
	SetPersonalizer(Personalizer)
	AddPersonalizer(personalizer Personalizer)

	AddPublisher(publisher Publisher)

	GetObjectivesSystem() ObjectivesSystem
	GetInventorySystem() InventorySystem

	// UserLocker returns the shared per-user lock used to serialize all
	// mutations against a single user's state.
	UserLocker() *UserLocker

	// PersonalizeConfig runs the personalizer chain over a system's config for
	// the given user and returns the adjusted config, or the base config when
	// no personalizer applies.
	PersonalizeConfig(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, system System, userID string) (any, error)

	// SendPublisherEvents fans events out to all registered publishers.
	SendPublisherEvents(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string, events []*PublisherEvent)
}

// questlogixImpl implements the Questlogix interface.
type questlogixImpl struct {
	personalizers []Personalizer
	publishers    []Publisher
	userLocker    *UserLocker

	systems map[SystemType]System
}

// Init initializes a Questlogix type with the configurations provided.
func Init(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, initializer runtime.Initializer, configs ...SystemConfig) (Questlogix, error) {
	ql := &questlogixImpl{
		personalizers: make([]Personalizer, 0),
		publishers:    make([]Publisher, 0),
		userLocker:    NewUserLocker(),
		systems:       make(map[SystemType]System),
	}

	for _, config := range configs {
		if err := ql.initSystem(ctx, logger, nk, config); err != nil {
			return nil, err
		}
	}

	if initializer != nil {
		if err := registerRpcs(logger, initializer, ql); err != nil {
			return nil, err
		}
	}

	return ql, nil
}

// initSystem initializes a specific system based on its type.
func (q *questlogixImpl) initSystem(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, config SystemConfig) error {
	logger.Info("Initializing system type: %v, config file: %s", config.GetType(), config.GetConfigFile())

	var configBytes []byte
	if config.GetConfigFile() != "" {
		configData, err := nk.ReadFile(config.GetConfigFile())
		if err != nil {
			logger.Error("Failed to read config file %s: %v", config.GetConfigFile(), err)
			return err
		}
		configBytes, err = io.ReadAll(configData)
		configData.Close()
		if err != nil {
			logger.Error("Failed to read config file contents: %v", err)
			return err
		}
	}

	var system System

	switch config.GetType() {
	case SystemTypeObjectives:
		objectivesConfig := DefaultObjectivesConfig()
		if configBytes != nil {
			objectivesConfig = &ObjectivesConfig{}
			if err := json.Unmarshal(configBytes, objectivesConfig); err != nil {
				logger.Error("Failed to parse Objectives system config: %v", err)
				return err
			}
		}
		objectives := NewNakamaObjectivesSystem(objectivesConfig)
		objectives.SetQuestlogix(q)
		system = objectives

	case SystemTypeInventory:
		inventoryConfig := DefaultInventoryConfig()
		if configBytes != nil {
			inventoryConfig = &InventoryConfig{}
			if err := json.Unmarshal(configBytes, inventoryConfig); err != nil {
				logger.Error("Failed to parse Inventory system config: %v", err)
				return err
			}
		}
		inventory := NewNakamaInventorySystem(inventoryConfig)
		inventory.SetQuestlogix(q)
		system = inventory

	default:
		logger.Error("Unknown system type: %v", config.GetType())
		return ErrSystemNotFound
	}

	q.systems[config.GetType()] = system
	return nil
}

func (q *questlogixImpl) SetPersonalizer(personalizer Personalizer) {
	q.personalizers = []Personalizer{personalizer}
}

func (q *questlogixImpl) AddPersonalizer(personalizer Personalizer) {
	q.personalizers = append(q.personalizers, personalizer)
}

func (q *questlogixImpl) AddPublisher(publisher Publisher) {
	q.publishers = append(q.publishers, publisher)
}

func (q *questlogixImpl) GetObjectivesSystem() ObjectivesSystem {
	if system, ok := q.systems[SystemTypeObjectives].(ObjectivesSystem); ok {
		return system
	}
	return nil
}

func (q *questlogixImpl) GetInventorySystem() InventorySystem {
	if system, ok := q.systems[SystemTypeInventory].(InventorySystem); ok {
		return system
	}
	return nil
}

func (q *questlogixImpl) UserLocker() *UserLocker {
	return q.userLocker
}

func (q *questlogixImpl) PersonalizeConfig(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, system System, userID string) (any, error) {
	config := system.GetConfig()
	for _, personalizer := range q.personalizers {
		adjusted, err := personalizer.GetValue(ctx, logger, nk, system, userID)
		if err != nil {
			return nil, err
		}
		if adjusted != nil {
			config = adjusted
		}
	}
	return config, nil
}

func (q *questlogixImpl) SendPublisherEvents(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string, events []*PublisherEvent) {
	if len(events) == 0 {
		return
	}
	for _, publisher := range q.publishers {
		publisher.Send(ctx, logger, nk, userID, events)
	}
}
