// Package achievements holds the static achievement catalog and the
// evaluator that matches collection and activity statistics against it.
package achievements

import (
	"github.com/cardfolio/backend/internal/models"
)

// Catalog is the read-only, order-stable list of achievement
// definitions with an index by type key. The catalog is append-only
// across releases: existing type keys never change meaning, because a
// changed requirement would retroactively revoke or grant achievements
// for existing users.
type Catalog struct {
	defs   []models.AchievementDefinition
	byType map[string]*models.AchievementDefinition
}

// NewCatalog builds the default catalog and its type index.
func NewCatalog() *Catalog {
	c := &Catalog{
		defs:   defaultDefinitions,
		byType: make(map[string]*models.AchievementDefinition, len(defaultDefinitions)),
	}
	for i := range c.defs {
		c.byType[c.defs[i].Type] = &c.defs[i]
	}
	return c
}

// All returns every definition in catalog order.
func (c *Catalog) All() []models.AchievementDefinition {
	return c.defs
}

// Get looks up a definition by its stable type key.
func (c *Catalog) Get(typeKey string) (*models.AchievementDefinition, bool) {
	def, ok := c.byType[typeKey]
	return def, ok
}

// ByCategory returns the definitions of one category, in catalog order.
func (c *Catalog) ByCategory(category models.AchievementCategory) []models.AchievementDefinition {
	var out []models.AchievementDefinition
	for _, def := range c.defs {
		if def.Category == category {
			out = append(out, def)
		}
	}
	return out
}

// ByRarity returns the definitions of one rarity tier, in catalog order.
func (c *Catalog) ByRarity(rarity models.AchievementRarity) []models.AchievementDefinition {
	var out []models.AchievementDefinition
	for _, def := range c.defs {
		if def.Rarity == rarity {
			out = append(out, def)
		}
	}
	return out
}

// Len returns the number of definitions in the catalog.
func (c *Catalog) Len() int {
	return len(c.defs)
}

func threshold(kind models.RequirementKind, target float64) models.Requirement {
	return models.Requirement{Kind: kind, Target: target}
}

func themed(theme string, target float64) models.Requirement {
	return models.Requirement{Kind: models.ReqThemedCount, Theme: theme, Target: target}
}

func flag(name string) models.Requirement {
	return models.Requirement{Kind: models.ReqFlag, Flag: name}
}

// defaultDefinitions is the shipped catalog. Keys are stable; append
// new entries at the end of their category block.
var defaultDefinitions = []models.AchievementDefinition{
	// --- Collection: unique cards ---
	{Type: "collector_1", Name: "First Catch", Description: "Add your first card to the collection", Icon: "🃏", Category: models.CategoryCollection, Rarity: models.AchievementCommon, Points: 10, Requirement: threshold(models.ReqUniqueCards, 1)},
	{Type: "collector_10", Name: "Starter Binder", Description: "Collect 10 unique cards", Icon: "📇", Category: models.CategoryCollection, Rarity: models.AchievementCommon, Points: 10, Requirement: threshold(models.ReqUniqueCards, 10)},
	{Type: "collector_25", Name: "Growing Binder", Description: "Collect 25 unique cards", Icon: "📒", Category: models.CategoryCollection, Rarity: models.AchievementCommon, Points: 15, Requirement: threshold(models.ReqUniqueCards, 25)},
	{Type: "collector_50", Name: "Serious Collector", Description: "Collect 50 unique cards", Icon: "📚", Category: models.CategoryCollection, Rarity: models.AchievementUncommon, Points: 25, Requirement: threshold(models.ReqUniqueCards, 50)},
	{Type: "collector_100", Name: "Century Collector", Description: "Collect 100 unique cards", Icon: "💯", Category: models.CategoryCollection, Rarity: models.AchievementUncommon, Points: 25, Requirement: threshold(models.ReqUniqueCards, 100)},
	{Type: "collector_151", Name: "Original Dex", Description: "Collect 151 unique cards", Icon: "🔴", Category: models.CategoryCollection, Rarity: models.AchievementRare, Points: 50, Requirement: threshold(models.ReqUniqueCards, 151)},
	{Type: "collector_200", Name: "Archivist", Description: "Collect 200 unique cards", Icon: "🗃️", Category: models.CategoryCollection, Rarity: models.AchievementRare, Points: 50, Requirement: threshold(models.ReqUniqueCards, 200)},
	{Type: "collector_251", Name: "Johto Dex", Description: "Collect 251 unique cards", Icon: "🟡", Category: models.CategoryCollection, Rarity: models.AchievementRare, Points: 50, Requirement: threshold(models.ReqUniqueCards, 251)},
	{Type: "collector_500", Name: "Grand Archivist", Description: "Collect 500 unique cards", Icon: "🏛️", Category: models.CategoryCollection, Rarity: models.AchievementEpic, Points: 100, Requirement: threshold(models.ReqUniqueCards, 500)},
	{Type: "collector_1000", Name: "Living Library", Description: "Collect 1000 unique cards", Icon: "🏰", Category: models.CategoryCollection, Rarity: models.AchievementLegendary, Points: 250, Requirement: threshold(models.ReqUniqueCards, 1000)},

	// --- Collection: total cards ---
	{Type: "stack_10", Name: "Small Stack", Description: "Own 10 cards in total", Icon: "🂠", Category: models.CategoryCollection, Rarity: models.AchievementCommon, Points: 10, Requirement: threshold(models.ReqCards, 10)},
	{Type: "stack_25", Name: "Deck Builder", Description: "Own 25 cards in total", Icon: "🎴", Category: models.CategoryCollection, Rarity: models.AchievementCommon, Points: 10, Requirement: threshold(models.ReqCards, 25)},
	{Type: "stack_50", Name: "Half Century", Description: "Own 50 cards in total", Icon: "🗂️", Category: models.CategoryCollection, Rarity: models.AchievementCommon, Points: 15, Requirement: threshold(models.ReqCards, 50)},
	{Type: "stack_100", Name: "Full Binder", Description: "Own 100 cards in total", Icon: "📦", Category: models.CategoryCollection, Rarity: models.AchievementUncommon, Points: 25, Requirement: threshold(models.ReqCards, 100)},
	{Type: "stack_250", Name: "Shoebox", Description: "Own 250 cards in total", Icon: "👟", Category: models.CategoryCollection, Rarity: models.AchievementUncommon, Points: 25, Requirement: threshold(models.ReqCards, 250)},
	{Type: "stack_500", Name: "Card Vault", Description: "Own 500 cards in total", Icon: "🔐", Category: models.CategoryCollection, Rarity: models.AchievementRare, Points: 50, Requirement: threshold(models.ReqCards, 500)},
	{Type: "stack_1000", Name: "Hoarder", Description: "Own 1000 cards in total", Icon: "🏗️", Category: models.CategoryCollection, Rarity: models.AchievementRare, Points: 50, Requirement: threshold(models.ReqCards, 1000)},
	{Type: "stack_2500", Name: "Warehouse", Description: "Own 2500 cards in total", Icon: "🏭", Category: models.CategoryCollection, Rarity: models.AchievementEpic, Points: 100, Requirement: threshold(models.ReqCards, 2500)},
	{Type: "stack_5000", Name: "Dragon's Hoard", Description: "Own 5000 cards in total", Icon: "🐉", Category: models.CategoryCollection, Rarity: models.AchievementLegendary, Points: 250, Requirement: threshold(models.ReqCards, 5000)},

	// --- Collection: value ---
	{Type: "value_10", Name: "Pocket Money", Description: "Collection worth €10", Icon: "🪙", Category: models.CategoryCollection, Rarity: models.AchievementCommon, Points: 10, Requirement: threshold(models.ReqCollectionValueEUR, 10)},
	{Type: "value_25", Name: "Piggy Bank", Description: "Collection worth €25", Icon: "🐷", Category: models.CategoryCollection, Rarity: models.AchievementCommon, Points: 10, Requirement: threshold(models.ReqCollectionValueEUR, 25)},
	{Type: "value_50", Name: "Savings Jar", Description: "Collection worth €50", Icon: "🫙", Category: models.CategoryCollection, Rarity: models.AchievementCommon, Points: 15, Requirement: threshold(models.ReqCollectionValueEUR, 50)},
	{Type: "value_100", Name: "Three Digits", Description: "Collection worth €100", Icon: "💶", Category: models.CategoryCollection, Rarity: models.AchievementUncommon, Points: 25, Requirement: threshold(models.ReqCollectionValueEUR, 100)},
	{Type: "value_250", Name: "Smart Investment", Description: "Collection worth €250", Icon: "📈", Category: models.CategoryCollection, Rarity: models.AchievementUncommon, Points: 25, Requirement: threshold(models.ReqCollectionValueEUR, 250)},
	{Type: "value_500", Name: "Serious Money", Description: "Collection worth €500", Icon: "💰", Category: models.CategoryCollection, Rarity: models.AchievementRare, Points: 50, Requirement: threshold(models.ReqCollectionValueEUR, 500)},
	{Type: "value_1000", Name: "Four Digits", Description: "Collection worth €1,000", Icon: "💎", Category: models.CategoryCollection, Rarity: models.AchievementRare, Points: 50, Requirement: threshold(models.ReqCollectionValueEUR, 1000)},
	{Type: "value_2500", Name: "Treasure Chest", Description: "Collection worth €2,500", Icon: "🧰", Category: models.CategoryCollection, Rarity: models.AchievementEpic, Points: 100, Requirement: threshold(models.ReqCollectionValueEUR, 2500)},
	{Type: "value_5000", Name: "Gold Vault", Description: "Collection worth €5,000", Icon: "🏦", Category: models.CategoryCollection, Rarity: models.AchievementEpic, Points: 100, Requirement: threshold(models.ReqCollectionValueEUR, 5000)},
	{Type: "value_10000", Name: "Market Mogul", Description: "Collection worth €10,000", Icon: "👑", Category: models.CategoryCollection, Rarity: models.AchievementLegendary, Points: 250, Requirement: threshold(models.ReqCollectionValueEUR, 10000)},

	// --- Collection: rare cards ---
	{Type: "rare_1", Name: "First Rare", Description: "Own a rare card", Icon: "⭐", Category: models.CategoryCollection, Rarity: models.AchievementCommon, Points: 10, Requirement: threshold(models.ReqRareCards, 1)},
	{Type: "rare_5", Name: "Rare Handful", Description: "Own 5 rare cards", Icon: "✨", Category: models.CategoryCollection, Rarity: models.AchievementCommon, Points: 15, Requirement: threshold(models.ReqRareCards, 5)},
	{Type: "rare_10", Name: "Rare Collector", Description: "Own 10 rare cards", Icon: "🌟", Category: models.CategoryCollection, Rarity: models.AchievementUncommon, Points: 25, Requirement: threshold(models.ReqRareCards, 10)},
	{Type: "rare_25", Name: "Rarity Hunter", Description: "Own 25 rare cards", Icon: "🎯", Category: models.CategoryCollection, Rarity: models.AchievementRare, Points: 50, Requirement: threshold(models.ReqRareCards, 25)},
	{Type: "rare_50", Name: "Shining Binder", Description: "Own 50 rare cards", Icon: "🌠", Category: models.CategoryCollection, Rarity: models.AchievementEpic, Points: 100, Requirement: threshold(models.ReqRareCards, 50)},
	{Type: "rare_100", Name: "Rarity Royalty", Description: "Own 100 rare cards", Icon: "🏆", Category: models.CategoryCollection, Rarity: models.AchievementLegendary, Points: 250, Requirement: threshold(models.ReqRareCards, 100)},

	// --- Collection: energy types ---
	{Type: "fire_type_10", Name: "Fire Starter", Description: "Own 10 Fire-type cards", Icon: "🔥", Category: models.CategoryCollection, Rarity: models.AchievementCommon, Points: 15, Requirement: themed("type:fire", 10)},
	{Type: "fire_type_25", Name: "Flame Keeper", Description: "Own 25 Fire-type cards", Icon: "🌋", Category: models.CategoryCollection, Rarity: models.AchievementUncommon, Points: 25, Requirement: themed("type:fire", 25)},
	{Type: "water_type_10", Name: "Making a Splash", Description: "Own 10 Water-type cards", Icon: "💧", Category: models.CategoryCollection, Rarity: models.AchievementCommon, Points: 15, Requirement: themed("type:water", 10)},
	{Type: "water_type_25", Name: "Tidal Wave", Description: "Own 25 Water-type cards", Icon: "🌊", Category: models.CategoryCollection, Rarity: models.AchievementUncommon, Points: 25, Requirement: themed("type:water", 25)},
	{Type: "grass_type_10", Name: "Green Thumb", Description: "Own 10 Grass-type cards", Icon: "🌿", Category: models.CategoryCollection, Rarity: models.AchievementCommon, Points: 15, Requirement: themed("type:grass", 10)},
	{Type: "grass_type_25", Name: "Overgrowth", Description: "Own 25 Grass-type cards", Icon: "🌳", Category: models.CategoryCollection, Rarity: models.AchievementUncommon, Points: 25, Requirement: themed("type:grass", 25)},
	{Type: "lightning_type_10", Name: "Spark Collector", Description: "Own 10 Lightning-type cards", Icon: "⚡", Category: models.CategoryCollection, Rarity: models.AchievementCommon, Points: 15, Requirement: themed("type:lightning", 10)},
	{Type: "lightning_type_25", Name: "Thunderstorm", Description: "Own 25 Lightning-type cards", Icon: "🌩️", Category: models.CategoryCollection, Rarity: models.AchievementUncommon, Points: 25, Requirement: themed("type:lightning", 25)},
	{Type: "psychic_type_10", Name: "Mind Reader", Description: "Own 10 Psychic-type cards", Icon: "🔮", Category: models.CategoryCollection, Rarity: models.AchievementCommon, Points: 15, Requirement: themed("type:psychic", 10)},
	{Type: "fighting_type_10", Name: "Black Belt", Description: "Own 10 Fighting-type cards", Icon: "🥋", Category: models.CategoryCollection, Rarity: models.AchievementCommon, Points: 15, Requirement: themed("type:fighting", 10)},
	{Type: "darkness_type_10", Name: "Night Owl", Description: "Own 10 Darkness-type cards", Icon: "🌑", Category: models.CategoryCollection, Rarity: models.AchievementCommon, Points: 15, Requirement: themed("type:darkness", 10)},
	{Type: "metal_type_10", Name: "Heavy Metal", Description: "Own 10 Metal-type cards", Icon: "⚙️", Category: models.CategoryCollection, Rarity: models.AchievementCommon, Points: 15, Requirement: themed("type:metal", 10)},
	{Type: "dragon_type_5", Name: "Dragon Tamer", Description: "Own 5 Dragon-type cards", Icon: "🐲", Category: models.CategoryCollection, Rarity: models.AchievementRare, Points: 50, Requirement: themed("type:dragon", 5)},
	{Type: "fairy_type_5", Name: "Fairy Tale", Description: "Own 5 Fairy-type cards", Icon: "🧚", Category: models.CategoryCollection, Rarity: models.AchievementRare, Points: 50, Requirement: themed("type:fairy", 5)},
	{Type: "colorless_type_10", Name: "Plain and Simple", Description: "Own 10 Colorless-type cards", Icon: "⚪", Category: models.CategoryCollection, Rarity: models.AchievementCommon, Points: 15, Requirement: themed("type:colorless", 10)},

	// --- Collection: supertypes ---
	{Type: "trainer_cards_25", Name: "Coaching Staff", Description: "Own 25 Trainer cards", Icon: "🎓", Category: models.CategoryCollection, Rarity: models.AchievementUncommon, Points: 25, Requirement: themed("supertype:trainer", 25)},
	{Type: "energy_cards_25", Name: "Power Plant", Description: "Own 25 Energy cards", Icon: "🔋", Category: models.CategoryCollection, Rarity: models.AchievementUncommon, Points: 25, Requirement: themed("supertype:energy", 25)},

	// --- Collection: creatures ---
	{Type: "pikachu_10", Name: "Pika Pal", Description: "Own 10 Pikachu cards", Icon: "🐭", Category: models.CategoryCollection, Rarity: models.AchievementUncommon, Points: 25, Requirement: themed("name:pikachu", 10)},
	{Type: "eevee_5", Name: "Eevee Enthusiast", Description: "Own 5 Eevee cards", Icon: "🦊", Category: models.CategoryCollection, Rarity: models.AchievementUncommon, Points: 25, Requirement: themed("name:eevee", 5)},
	{Type: "charizard_3", Name: "Charizard Chaser", Description: "Own 3 Charizard cards", Icon: "🔶", Category: models.CategoryCollection, Rarity: models.AchievementRare, Points: 50, Requirement: themed("name:charizard", 3)},
	{Type: "mewtwo_1", Name: "Genetic Wonder", Description: "Own a Mewtwo card", Icon: "🧬", Category: models.CategoryCollection, Rarity: models.AchievementUncommon, Points: 25, Requirement: themed("name:mewtwo", 1)},
	{Type: "snorlax_3", Name: "Nap Time", Description: "Own 3 Snorlax cards", Icon: "😴", Category: models.CategoryCollection, Rarity: models.AchievementUncommon, Points: 25, Requirement: themed("name:snorlax", 3)},
	{Type: "magikarp_10", Name: "Splash Damage", Description: "Own 10 Magikarp cards", Icon: "🐟", Category: models.CategoryCollection, Rarity: models.AchievementRare, Points: 50, Requirement: themed("name:magikarp", 10)},

	// --- Collection: generations ---
	{Type: "gen1_50", Name: "Kanto Classic", Description: "Own 50 cards from Generation 1 sets", Icon: "1️⃣", Category: models.CategoryCollection, Rarity: models.AchievementRare, Points: 50, Requirement: themed("gen:1", 50)},
	{Type: "gen2_50", Name: "Johto Journey", Description: "Own 50 cards from Generation 2 sets", Icon: "2️⃣", Category: models.CategoryCollection, Rarity: models.AchievementRare, Points: 50, Requirement: themed("gen:2", 50)},
	{Type: "gen3_50", Name: "Hoenn Hopper", Description: "Own 50 cards from Generation 3 sets", Icon: "3️⃣", Category: models.CategoryCollection, Rarity: models.AchievementRare, Points: 50, Requirement: themed("gen:3", 50)},

	// --- Collection: variants ---
	{Type: "holo_10", Name: "Shiny Things", Description: "Own 10 holo cards", Icon: "🪩", Category: models.CategoryCollection, Rarity: models.AchievementUncommon, Points: 25, Requirement: themed("variant:holo", 10)},
	{Type: "reverse_holo_25", Name: "Mirror Mirror", Description: "Own 25 reverse holo cards", Icon: "🪞", Category: models.CategoryCollection, Rarity: models.AchievementRare, Points: 50, Requirement: themed("variant:reverse_holo", 25)},
	{Type: "first_edition_1", Name: "Piece of History", Description: "Own a first edition card", Icon: "📜", Category: models.CategoryCollection, Rarity: models.AchievementRare, Points: 50, Requirement: themed("variant:first_edition", 1)},
	{Type: "first_edition_10", Name: "Time Capsule", Description: "Own 10 first edition cards", Icon: "⏳", Category: models.CategoryCollection, Rarity: models.AchievementLegendary, Points: 250, Requirement: themed("variant:first_edition", 10)},

	// --- Collection: sets ---
	{Type: "set_explorer_5", Name: "Set Explorer", Description: "Own cards from 5 different sets", Icon: "🧭", Category: models.CategoryCollection, Rarity: models.AchievementCommon, Points: 15, Requirement: themed("sets_touched", 5)},
	{Type: "set_explorer_10", Name: "Set Voyager", Description: "Own cards from 10 different sets", Icon: "🗺️", Category: models.CategoryCollection, Rarity: models.AchievementUncommon, Points: 25, Requirement: themed("sets_touched", 10)},
	{Type: "set_explorer_25", Name: "Set Cartographer", Description: "Own cards from 25 different sets", Icon: "🌍", Category: models.CategoryCollection, Rarity: models.AchievementRare, Points: 50, Requirement: themed("sets_touched", 25)},

	// --- Collection: exact counts ---
	{Type: "lucky_777", Name: "Jackpot", Description: "Own exactly 777 cards", Icon: "🎰", Category: models.CategoryCollection, Rarity: models.AchievementEpic, Points: 100, Requirement: threshold(models.ReqExactCards, 777), Hidden: true},
	{Type: "answer_42", Name: "The Answer", Description: "Own exactly 42 cards", Icon: "🌌", Category: models.CategoryCollection, Rarity: models.AchievementRare, Points: 50, Requirement: threshold(models.ReqExactCards, 42), Hidden: true},
	{Type: "perfect_hundred", Name: "Perfect Hundred", Description: "Own exactly 100 unique cards", Icon: "🎯", Category: models.CategoryCollection, Rarity: models.AchievementEpic, Points: 100, Requirement: threshold(models.ReqExactUniqueCards, 100), Hidden: true},

	// --- Social: friends ---
	{Type: "friend_1", Name: "First Friend", Description: "Add your first friend", Icon: "🤝", Category: models.CategorySocial, Rarity: models.AchievementCommon, Points: 10, Requirement: threshold(models.ReqFriends, 1)},
	{Type: "friend_5", Name: "Friend Circle", Description: "Have 5 friends", Icon: "👥", Category: models.CategorySocial, Rarity: models.AchievementCommon, Points: 15, Requirement: threshold(models.ReqFriends, 5)},
	{Type: "friend_10", Name: "Social Butterfly", Description: "Have 10 friends", Icon: "🦋", Category: models.CategorySocial, Rarity: models.AchievementUncommon, Points: 25, Requirement: threshold(models.ReqFriends, 10)},
	{Type: "friend_25", Name: "Community Pillar", Description: "Have 25 friends", Icon: "🏘️", Category: models.CategorySocial, Rarity: models.AchievementRare, Points: 50, Requirement: threshold(models.ReqFriends, 25)},
	{Type: "friend_50", Name: "Local Celebrity", Description: "Have 50 friends", Icon: "📸", Category: models.CategorySocial, Rarity: models.AchievementEpic, Points: 100, Requirement: threshold(models.ReqFriends, 50)},
	{Type: "friend_100", Name: "Legendary Networker", Description: "Have 100 friends", Icon: "🌐", Category: models.CategorySocial, Rarity: models.AchievementLegendary, Points: 250, Requirement: threshold(models.ReqFriends, 100)},

	// --- Social: activity ---
	{Type: "active_7", Name: "Regular", Description: "Active on 7 days in the last month", Icon: "📅", Category: models.CategorySocial, Rarity: models.AchievementCommon, Points: 15, Requirement: threshold(models.ReqActiveDays30, 7)},
	{Type: "active_15", Name: "Devoted", Description: "Active on 15 days in the last month", Icon: "🗓️", Category: models.CategorySocial, Rarity: models.AchievementUncommon, Points: 25, Requirement: threshold(models.ReqActiveDays30, 15)},
	{Type: "active_30", Name: "Ever-Present", Description: "Active every day of the last month", Icon: "☀️", Category: models.CategorySocial, Rarity: models.AchievementEpic, Points: 100, Requirement: threshold(models.ReqActiveDays30, 30)},
	{Type: "streak_3", Name: "Warming Up", Description: "Log in 3 days in a row", Icon: "🔛", Category: models.CategorySocial, Rarity: models.AchievementCommon, Points: 10, Requirement: threshold(models.ReqLoginStreak, 3)},
	{Type: "streak_7", Name: "One Week Wonder", Description: "Log in 7 days in a row", Icon: "📆", Category: models.CategorySocial, Rarity: models.AchievementCommon, Points: 15, Requirement: threshold(models.ReqLoginStreak, 7)},
	{Type: "streak_14", Name: "Fortnight Faithful", Description: "Log in 14 days in a row", Icon: "🕰️", Category: models.CategorySocial, Rarity: models.AchievementUncommon, Points: 25, Requirement: threshold(models.ReqLoginStreak, 14)},
	{Type: "streak_30", Name: "Monthly Devotion", Description: "Log in 30 days in a row", Icon: "🌙", Category: models.CategorySocial, Rarity: models.AchievementRare, Points: 50, Requirement: threshold(models.ReqLoginStreak, 30)},
	{Type: "streak_60", Name: "Habit Formed", Description: "Log in 60 days in a row", Icon: "⛓️", Category: models.CategorySocial, Rarity: models.AchievementRare, Points: 50, Requirement: threshold(models.ReqLoginStreak, 60)},
	{Type: "streak_100", Name: "Centurion", Description: "Log in 100 days in a row", Icon: "🛡️", Category: models.CategorySocial, Rarity: models.AchievementEpic, Points: 100, Requirement: threshold(models.ReqLoginStreak, 100)},
	{Type: "streak_365", Name: "Year-Round Trainer", Description: "Log in 365 days in a row", Icon: "🎂", Category: models.CategorySocial, Rarity: models.AchievementLegendary, Points: 250, Requirement: threshold(models.ReqLoginStreak, 365)},

	// --- Trading ---
	{Type: "trade_1", Name: "First Trade", Description: "Complete your first trade", Icon: "🔄", Category: models.CategoryTrading, Rarity: models.AchievementCommon, Points: 10, Requirement: threshold(models.ReqCompletedTrades, 1)},
	{Type: "trade_5", Name: "Deal Maker", Description: "Complete 5 trades", Icon: "🤲", Category: models.CategoryTrading, Rarity: models.AchievementCommon, Points: 15, Requirement: threshold(models.ReqCompletedTrades, 5)},
	{Type: "trade_10", Name: "Market Regular", Description: "Complete 10 trades", Icon: "🏪", Category: models.CategoryTrading, Rarity: models.AchievementUncommon, Points: 25, Requirement: threshold(models.ReqCompletedTrades, 10)},
	{Type: "trade_25", Name: "Shrewd Negotiator", Description: "Complete 25 trades", Icon: "🧮", Category: models.CategoryTrading, Rarity: models.AchievementRare, Points: 50, Requirement: threshold(models.ReqCompletedTrades, 25)},
	{Type: "trade_50", Name: "Trade Baron", Description: "Complete 50 trades", Icon: "🎩", Category: models.CategoryTrading, Rarity: models.AchievementEpic, Points: 100, Requirement: threshold(models.ReqCompletedTrades, 50)},
	{Type: "trade_100", Name: "Market Master", Description: "Complete 100 trades", Icon: "⚖️", Category: models.CategoryTrading, Rarity: models.AchievementEpic, Points: 100, Requirement: threshold(models.ReqCompletedTrades, 100)},
	{Type: "trade_250", Name: "Trading Legend", Description: "Complete 250 trades", Icon: "🏅", Category: models.CategoryTrading, Rarity: models.AchievementLegendary, Points: 250, Requirement: threshold(models.ReqCompletedTrades, 250)},
	{Type: "daily_trades_3", Name: "Busy Market Day", Description: "Complete 3 trades in one day", Icon: "🛒", Category: models.CategoryTrading, Rarity: models.AchievementUncommon, Points: 25, Requirement: threshold(models.ReqDailyTradesCompleted, 3)},
	{Type: "daily_trades_5", Name: "Trading Frenzy", Description: "Complete 5 trades in one day", Icon: "🌪️", Category: models.CategoryTrading, Rarity: models.AchievementRare, Points: 50, Requirement: threshold(models.ReqDailyTradesCompleted, 5)},
	{Type: "daily_trades_10", Name: "Floor Trader", Description: "Complete 10 trades in one day", Icon: "📊", Category: models.CategoryTrading, Rarity: models.AchievementEpic, Points: 100, Requirement: threshold(models.ReqDailyTradesCompleted, 10)},

	// --- Special ---
	{Type: "daily_10", Name: "Booster Box Day", Description: "Add 10 cards in one day", Icon: "📬", Category: models.CategorySpecial, Rarity: models.AchievementUncommon, Points: 25, Requirement: threshold(models.ReqDailyCardsAdded, 10)},
	{Type: "daily_25", Name: "Haul Day", Description: "Add 25 cards in one day", Icon: "🚚", Category: models.CategorySpecial, Rarity: models.AchievementRare, Points: 50, Requirement: threshold(models.ReqDailyCardsAdded, 25)},
	{Type: "daily_50", Name: "Collection Avalanche", Description: "Add 50 cards in one day", Icon: "🏔️", Category: models.CategorySpecial, Rarity: models.AchievementEpic, Points: 100, Requirement: threshold(models.ReqDailyCardsAdded, 50)},
	{Type: "eeveelution_complete", Name: "Eeveelution Expert", Description: "Own a card of Eevee and every Eeveelution", Icon: "🌈", Category: models.CategorySpecial, Rarity: models.AchievementEpic, Points: 100, Requirement: flag("eeveelution_complete")},
	{Type: "all_types_collected", Name: "Type Master", Description: "Own at least one card of every energy type", Icon: "🎨", Category: models.CategorySpecial, Rarity: models.AchievementEpic, Points: 100, Requirement: flag("all_types_collected")},
	{Type: "classic_sets_complete", Name: "Old School", Description: "Own cards from every classic set", Icon: "🏺", Category: models.CategorySpecial, Rarity: models.AchievementLegendary, Points: 250, Requirement: flag("classic_sets_complete")},
	{Type: "starter_squad", Name: "Starter Squad", Description: "Own cards of all three original starters", Icon: "🎒", Category: models.CategorySpecial, Rarity: models.AchievementRare, Points: 50, Requirement: flag("starter_squad")},
	{Type: "early_adopter", Name: "Early Adopter", Description: "Joined during the first month", Icon: "🚀", Category: models.CategorySpecial, Rarity: models.AchievementLegendary, Points: 250, Requirement: flag("early_adopter"), Hidden: true},
}
