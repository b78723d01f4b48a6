package level

import "math/rand"

// Flavor word lists for the generated character descriptor. Drawn from the
// level RNG so each world/stage pair always meets the same serpent.
var (
	characterAdjectives = []string{
		"Mossy", "Umber", "Gilded", "Sly", "Drowsy", "Restless",
		"Coiled", "Velvet", "Ashen", "Amber", "Brindled", "Wily",
		"Hollow", "Thorned", "Silent", "Garnet",
	}
	characterCreatures = []string{
		"Adder", "Viper", "Wyrm", "Boa", "Asp", "Sidewinder",
		"Mamba", "Krait", "Serpent", "Racer", "Taipan", "Cobra",
	}
)

// Character builds the level's serpent descriptor from the generator RNG.
func Character(rng *rand.Rand) string {
	adj := characterAdjectives[rng.Intn(len(characterAdjectives))]
	creature := characterCreatures[rng.Intn(len(characterCreatures))]
	return adj + " " + creature
}
