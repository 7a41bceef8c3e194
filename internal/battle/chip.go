package battle

type Element string

const (
	ElementNone Element = "none"
	ElementFire Element = "fire"
	ElementAqua Element = "aqua"
	ElementElec Element = "elec"
	ElementWood Element = "wood"
)

type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
)

// Chip is an immutable template. It holds no slices or pointers, so a plain
// assignment is a deep copy; drawing a chip into a hand never aliases the
// catalog entry.
type Chip struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Element     Element `json:"element"`
	Damage      int     `json:"damage"`
	Accuracy    int     `json:"accuracy"` // percent, 0-100
	Rarity      Rarity  `json:"rarity"`
	Cost        int     `json:"cost"`
	Breaks      bool    `json:"breaks,omitempty"` // damages the target's panel on hit
	Description string  `json:"description"`
}

// Catalog is the shared chip pool. Order matters only for display.
var Catalog = []Chip{
	{ID: "cannon", Name: "Cannon", Element: ElementNone, Damage: 40, Accuracy: 100, Rarity: RarityCommon, Cost: 20, Description: "Basic shot. Deals 40 damage."},
	{ID: "cannonP", Name: "Cannon*", Element: ElementNone, Damage: 60, Accuracy: 100, Rarity: RarityUncommon, Cost: 30, Description: "Powered up shot. Deals 60 damage."},
	{ID: "highCannon", Name: "High Cannon", Element: ElementNone, Damage: 80, Accuracy: 100, Rarity: RarityRare, Cost: 40, Description: "Strong cannon shot. Deals 80 damage."},
	{ID: "sword", Name: "Sword", Element: ElementNone, Damage: 60, Accuracy: 100, Rarity: RarityCommon, Cost: 25, Breaks: true, Description: "Slashing attack. Deals 60 damage and cracks the panel."},
	{ID: "areaGrab", Name: "Area Grab", Element: ElementNone, Damage: 30, Accuracy: 100, Rarity: RarityUncommon, Cost: 35, Description: "Steals ground. Deals 30 damage."},
	{ID: "shockWave", Name: "Shock Wave", Element: ElementElec, Damage: 50, Accuracy: 100, Rarity: RarityUncommon, Cost: 30, Description: "Electrical wave. Deals 50 damage."},
	{ID: "heatShot", Name: "Heat Shot", Element: ElementFire, Damage: 40, Accuracy: 100, Rarity: RarityCommon, Cost: 25, Description: "Fiery shot. Deals 40 damage."},
	{ID: "bubbler", Name: "Bubbler", Element: ElementAqua, Damage: 50, Accuracy: 100, Rarity: RarityCommon, Cost: 25, Description: "Bubble shot. Deals 50 damage."},
	{ID: "spreader", Name: "Spreader", Element: ElementWood, Damage: 30, Accuracy: 90, Rarity: RarityCommon, Cost: 20, Description: "Seed spread. Deals 30 damage."},
}

// DefaultFolder returns a fresh copy of the catalog for one player.
func DefaultFolder() []Chip {
	folder := make([]Chip, len(Catalog))
	copy(folder, Catalog)
	return folder
}
