package questlogix

// DefaultObjectivesConfig returns the built-in objective catalog used when no
// config file is supplied to Init.
func DefaultObjectivesConfig() *ObjectivesConfig {
	return &ObjectivesConfig{
		DailyCount: defaultDailyCount,
		Objectives: map[string]*ObjectivesConfigObjective{
			"daily_walk_1km": {
				Title:         "First Steps",
				Description:   "Walk 1km",
				Kind:          ObjectiveKindQuest,
				Lifespan:      ObjectiveLifespanDaily,
				Category:      "walk",
				TargetValue:   1000,
				RequiredLevel: 1,
				Reward:        &RewardDescriptor{Currency: 50, Experience: 25},
			},
			"daily_walk_3km": {
				Title:         "Steady Strides",
				Description:   "Walk 3km",
				Kind:          ObjectiveKindQuest,
				Lifespan:      ObjectiveLifespanDaily,
				Category:      "walk",
				TargetValue:   3000,
				RequiredLevel: 3,
				Reward:        &RewardDescriptor{Currency: 150, Experience: 75, ItemId: "health_potion", ItemQuantity: 1},
			},
			"daily_battle_3": {
				Title:         "Battle Adept",
				Description:   "Win 3 dungeon battles",
				Kind:          ObjectiveKindQuest,
				Lifespan:      ObjectiveLifespanDaily,
				Category:      "battle",
				TargetValue:   3,
				RequiredLevel: 2,
				Reward:        &RewardDescriptor{Currency: 100, Experience: 50, ItemId: "energy_drink", ItemQuantity: 2},
			},
			"weekly_walk_20km": {
				Title:         "Weekly Marathoner",
				Description:   "Walk 20km in a week",
				Kind:          ObjectiveKindQuest,
				Lifespan:      ObjectiveLifespanWeekly,
				Category:      "walk",
				TargetValue:   20000,
				RequiredLevel: 5,
				Reward:        &RewardDescriptor{Currency: 500, Experience: 250, ItemId: "rare_gem", ItemQuantity: 1},
			},
			"main_first_costume": {
				Title:         "First Makeover",
				Description:   "Buy a costume",
				Kind:          ObjectiveKindQuest,
				Lifespan:      ObjectiveLifespanMain,
				Category:      "costume",
				TargetValue:   1,
				RequiredLevel: 1,
				Reward:        &RewardDescriptor{Currency: 200, Experience: 100, CostumeId: "warrior_helmet"},
			},
			"main_level_10": {
				Title:         "Path of Growth",
				Description:   "Reach level 10",
				Kind:          ObjectiveKindQuest,
				Lifespan:      ObjectiveLifespanMain,
				Category:      "level",
				TargetValue:   10,
				RequiredLevel: 1,
				Reward:        &RewardDescriptor{Currency: 300, Experience: 200, ItemId: "exp_boost", ItemQuantity: 3},
			},
			"side_walk_marathon": {
				Title:         "Marathon Challenge",
				Description:   "Walk 42.195km",
				Kind:          ObjectiveKindQuest,
				Lifespan:      ObjectiveLifespanSide,
				Category:      "walk",
				TargetValue:   42195,
				RequiredLevel: 10,
				Reward:        &RewardDescriptor{Currency: 1000, Experience: 500, CostumeId: "legendary_necklace"},
			},

			"walk_first_step": {
				Title:       "First Steps",
				Description: "Walk your first 1km",
				Kind:        ObjectiveKindAchievement,
				Lifespan:    ObjectiveLifespanPermanent,
				Category:    "walk",
				TargetValue: 1000,
				Reward:      &RewardDescriptor{Currency: 100, Experience: 50, Title: "Novice Walker", ItemId: "health_potion", ItemQuantity: 3},
			},
			"walk_10km": {
				Title:       "Steady Walker",
				Description: "Walk a total of 10km",
				Kind:        ObjectiveKindAchievement,
				Lifespan:    ObjectiveLifespanPermanent,
				Category:    "walk",
				TargetValue: 10000,
				Reward:      &RewardDescriptor{Currency: 300, Experience: 150, Title: "Steady Walker", ItemId: "energy_drink", ItemQuantity: 5},
			},
			"walk_marathon": {
				Title:       "Marathoner",
				Description: "Walk 42.195km",
				Kind:        ObjectiveKindAchievement,
				Lifespan:    ObjectiveLifespanPermanent,
				Category:    "walk",
				TargetValue: 42195,
				Reward:      &RewardDescriptor{Currency: 1000, Experience: 500, Title: "Marathoner", CostumeId: "legendary_necklace"},
			},
			"walk_100km": {
				Title:       "Century Walker",
				Description: "Walk a total of 100km",
				Kind:        ObjectiveKindAchievement,
				Lifespan:    ObjectiveLifespanPermanent,
				Category:    "walk",
				TargetValue: 100000,
				Reward:      &RewardDescriptor{Currency: 2000, Experience: 1000, Title: "Century Walker", ItemId: "lucky_charm", ItemQuantity: 1},
			},
			"battle_first_win": {
				Title:       "First Victory",
				Description: "Win your first battle",
				Kind:        ObjectiveKindAchievement,
				Lifespan:    ObjectiveLifespanPermanent,
				Category:    "battle",
				TargetValue: 1,
				Reward:      &RewardDescriptor{Currency: 50, Experience: 25, Title: "Rookie Fighter", ItemId: "health_potion", ItemQuantity: 1},
			},
			"battle_10_wins": {
				Title:       "Battle Master",
				Description: "Win 10 battles",
				Kind:        ObjectiveKindAchievement,
				Lifespan:    ObjectiveLifespanPermanent,
				Category:    "battle",
				TargetValue: 10,
				Reward:      &RewardDescriptor{Currency: 200, Experience: 100, Title: "Battle Master", ItemId: "exp_boost", ItemQuantity: 2},
			},
			"battle_boss_slayer": {
				Title:       "Boss Slayer",
				Description: "Defeat 5 boss monsters",
				Kind:        ObjectiveKindAchievement,
				Lifespan:    ObjectiveLifespanPermanent,
				Category:    "battle",
				TargetValue: 5,
				Reward:      &RewardDescriptor{Currency: 500, Experience: 250, Title: "Boss Slayer", CostumeId: "dragon_scale"},
			},
			"collection_first_costume": {
				Title:       "Fashionista",
				Description: "Buy your first costume",
				Kind:        ObjectiveKindAchievement,
				Lifespan:    ObjectiveLifespanPermanent,
				Category:    "collection",
				TargetValue: 1,
				Reward:      &RewardDescriptor{Currency: 100, Experience: 50, Title: "Fashionista", ItemId: "rare_gem", ItemQuantity: 1},
			},
			"collection_5_costumes": {
				Title:       "Costume Collector",
				Description: "Collect 5 costumes",
				Kind:        ObjectiveKindAchievement,
				Lifespan:    ObjectiveLifespanPermanent,
				Category:    "collection",
				TargetValue: 5,
				Reward:      &RewardDescriptor{Currency: 300, Experience: 150, Title: "Costume Collector", ItemId: "dragon_scale_material", ItemQuantity: 1},
			},
			"social_first_friend": {
				Title:       "First Friend",
				Description: "Add your first friend",
				Kind:        ObjectiveKindAchievement,
				Lifespan:    ObjectiveLifespanPermanent,
				Category:    "social",
				TargetValue: 1,
				Reward:      &RewardDescriptor{Currency: 50, Experience: 25, Title: "Sociable", ItemId: "health_potion", ItemQuantity: 2},
			},
			"special_night_walker": {
				Title:       "Night Owl",
				Description: "Walk 5km between midnight and 6am",
				Kind:        ObjectiveKindAchievement,
				Lifespan:    ObjectiveLifespanPermanent,
				Category:    "special",
				TargetValue: 5000,
				Hidden:      true,
				Reward:      &RewardDescriptor{Currency: 500, Experience: 250, Title: "Night Walker", ItemId: "lucky_charm", ItemQuantity: 1},
			},
			"special_speed_demon": {
				Title:       "Speed Demon",
				Description: "Walk 10km within an hour",
				Kind:        ObjectiveKindAchievement,
				Lifespan:    ObjectiveLifespanPermanent,
				Category:    "special",
				TargetValue: 10000,
				Hidden:      true,
				Reward:      &RewardDescriptor{Currency: 800, Experience: 400, Title: "Speed Demon", CostumeId: "excalibur"},
			},
		},
	}
}

// DefaultInventoryConfig returns the built-in item catalog used when no
// config file is supplied to Init. Prices are in the walking-experience
// currency.
func DefaultInventoryConfig() *InventoryConfig {
	return &InventoryConfig{
		Items: map[string]*InventoryConfigItem{
			"health_potion": {
				Name:        "Health Potion",
				Description: "Restores 50 health",
				Category:    ItemCategoryConsumable,
				Rarity:      "common",
				Price:       30,
				Stackable:   true,
				MaxStack:    99,
				Effect:      &InventoryConfigItemEffect{Type: "heal", Value: 50, Description: "Instantly restore 50 health"},
			},
			"energy_drink": {
				Name:        "Energy Drink",
				Description: "Double walking experience for 30 minutes",
				Category:    ItemCategoryConsumable,
				Rarity:      "rare",
				Price:       100,
				Stackable:   true,
				MaxStack:    10,
				Effect:      &InventoryConfigItemEffect{Type: "exp_boost", Value: 200, DurationSec: 1800, Description: "Double walking experience for 30 minutes"},
			},
			"speed_boots": {
				Name:        "Boots of Swiftness",
				Description: "Increased movement for an hour",
				Category:    ItemCategoryConsumable,
				Rarity:      "epic",
				Price:       200,
				Stackable:   true,
				MaxStack:    5,
				Effect:      &InventoryConfigItemEffect{Type: "distance_boost", Value: 150, DurationSec: 3600, Description: "1.5x walking distance for an hour"},
			},
			"rare_gem": {
				Name:        "Rare Gem",
				Description: "A gem used in special crafting",
				Category:    ItemCategoryMaterial,
				Rarity:      "rare",
				Price:       500,
				Stackable:   true,
				MaxStack:    50,
				Effect:      &InventoryConfigItemEffect{Type: "material", Description: "Crafting material"},
			},
			"dragon_scale_material": {
				Name:        "Dragon Scale",
				Description: "A material for crafting legendary gear",
				Category:    ItemCategoryMaterial,
				Rarity:      "legendary",
				Price:       1000,
				Stackable:   true,
				MaxStack:    10,
				Effect:      &InventoryConfigItemEffect{Type: "material", Description: "Legendary gear crafting material"},
			},
			"exp_boost": {
				Name:        "Experience Booster",
				Description: "Double all experience for an hour",
				Category:    ItemCategorySpecial,
				Rarity:      "epic",
				Price:       300,
				Stackable:   true,
				MaxStack:    3,
				Effect:      &InventoryConfigItemEffect{Type: "exp_boost", Value: 200, DurationSec: 3600, Description: "Double all experience for an hour"},
			},
			"lucky_charm": {
				Name:        "Lucky Charm",
				Description: "Increased rare drop rate for 24 hours",
				Category:    ItemCategorySpecial,
				Rarity:      "legendary",
				Price:       800,
				Stackable:   true,
				MaxStack:    1,
				Effect:      &InventoryConfigItemEffect{Type: "luck_boost", Value: 300, DurationSec: 86400, Description: "3x rare item drop rate for 24 hours"},
			},
		},
	}
}
