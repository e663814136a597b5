package vocab

// Built-in English vocabulary. Seeds are lowercase; lookups tolerate
// plural/singular variants of the seed but terms are stored as matched.
//
// Level 1 stays close to the seed, level 2 moves to broad semantic
// categories, level 3 to very broad concept words. Tier 5 never consults
// the vocabulary, so level 3 is the widest net cast before soft constraints
// are dropped entirely.
var defaultLevels = map[Level]map[string][]string{
	LevelSynonym: {
		"bedtime":    {"sleep", "night", "lullaby"},
		"sleep":      {"bedtime", "calm", "lullaby"},
		"story":      {"tale", "storytelling"},
		"tale":       {"story"},
		"song":       {"music", "tune", "rhyme"},
		"rhyme":      {"song", "nursery"},
		"lullaby":    {"sleep", "bedtime", "song"},
		"dinosaur":   {"dino", "t-rex", "triceratops"},
		"dino":       {"dinosaur"},
		"dragon":     {"dragons", "beast"},
		"unicorn":    {"pony", "horse"},
		"princess":   {"prince", "royal"},
		"pirate":     {"treasure", "ship"},
		"space":      {"rocket", "planet", "astronaut"},
		"rocket":     {"space", "spaceship"},
		"car":        {"vehicle", "racing"},
		"bus":        {"vehicle", "wheels"},
		"train":      {"railway", "engine"},
		"truck":      {"lorry", "digger"},
		"fox":        {"foxes", "cub"},
		"bear":       {"cub", "teddy"},
		"rabbit":     {"bunny", "hare"},
		"owl":        {"bird"},
		"dog":        {"puppy", "pup"},
		"cat":        {"kitten", "kitty"},
		"fish":       {"sea", "ocean"},
		"shark":      {"sea", "ocean"},
		"whale":      {"sea", "ocean"},
		"bug":        {"insect", "minibeast"},
		"broomstick": {"broom", "witch"},
		"witch":      {"wizard", "magic"},
		"wizard":     {"witch", "magic"},
		"magic":      {"magical", "spell"},
		"trombone":   {"trumpet", "brass"},
		"trumpet":    {"trombone", "brass"},
		"piano":      {"keyboard"},
		"drum":       {"percussion", "beat"},
		"guitar":     {"strings"},
		"christmas":  {"festive", "santa"},
		"halloween":  {"spooky", "pumpkin"},
		"football":   {"sport", "soccer"},
		"science":    {"experiment", "stem"},
		"maths":      {"numbers", "counting"},
		"phonics":    {"letters", "reading"},
	},
	LevelBroad: {
		"bedtime":    {"calm", "relaxation", "wind down"},
		"story":      {"fiction", "audiobook"},
		"song":       {"music", "sing-along"},
		"dinosaur":   {"prehistoric", "animals"},
		"dragon":     {"fantasy", "myth"},
		"unicorn":    {"fantasy", "fairy tale"},
		"princess":   {"fairy tale", "fantasy"},
		"pirate":     {"adventure", "sea"},
		"space":      {"science", "exploration"},
		"car":        {"transport", "machines"},
		"bus":        {"transport", "town"},
		"train":      {"transport", "journeys"},
		"truck":      {"transport", "machines"},
		"fox":        {"woodland", "wildlife"},
		"bear":       {"woodland", "wildlife"},
		"rabbit":     {"woodland", "wildlife"},
		"owl":        {"woodland", "wildlife"},
		"dog":        {"pets", "animals"},
		"cat":        {"pets", "animals"},
		"fish":       {"ocean", "nature"},
		"shark":      {"ocean", "nature"},
		"whale":      {"ocean", "nature"},
		"bug":        {"nature", "garden"},
		"broomstick": {"witch", "magic"},
		"witch":      {"magic", "fantasy"},
		"wizard":     {"magic", "fantasy"},
		"magic":      {"fantasy", "fairy tale"},
		"trombone":   {"music", "instrument"},
		"trumpet":    {"music", "instrument"},
		"piano":      {"music", "instrument"},
		"drum":       {"music", "instrument"},
		"guitar":     {"music", "instrument"},
		"christmas":  {"seasonal", "winter"},
		"halloween":  {"seasonal", "autumn"},
		"football":   {"sport", "activity"},
		"science":    {"learning", "facts"},
		"maths":      {"learning", "numbers"},
		"phonics":    {"learning", "literacy"},
	},
	LevelVeryBroad: {
		"bedtime":    {"gentle", "quiet"},
		"story":      {"imagination", "adventure"},
		"song":       {"fun", "play"},
		"dinosaur":   {"discovery", "adventure"},
		"dragon":     {"adventure", "imagination"},
		"unicorn":    {"imagination", "wonder"},
		"princess":   {"imagination", "classic"},
		"pirate":     {"adventure", "discovery"},
		"space":      {"discovery", "wonder"},
		"car":        {"adventure", "fun"},
		"bus":        {"adventure", "everyday"},
		"train":      {"adventure", "journeys"},
		"truck":      {"adventure", "fun"},
		"fox":        {"animals", "nature"},
		"bear":       {"animals", "nature"},
		"rabbit":     {"animals", "nature"},
		"owl":        {"animals", "nature"},
		"dog":        {"animals", "friendship"},
		"cat":        {"animals", "friendship"},
		"fish":       {"nature", "discovery"},
		"shark":      {"nature", "discovery"},
		"whale":      {"nature", "discovery"},
		"bug":        {"nature", "discovery"},
		"broomstick": {"adventure", "imagination"},
		"witch":      {"adventure", "imagination"},
		"wizard":     {"adventure", "imagination"},
		"magic":      {"adventure", "wonder"},
		"trombone":   {"music", "fun"},
		"trumpet":    {"music", "fun"},
		"piano":      {"music", "calm"},
		"drum":       {"music", "play"},
		"guitar":     {"music", "play"},
		"christmas":  {"family", "celebration"},
		"halloween":  {"fun", "imagination"},
		"football":   {"play", "teamwork"},
		"science":    {"discovery", "curiosity"},
		"maths":      {"learning", "play"},
		"phonics":    {"learning", "school"},
	},
}

// Category neighbors consulted by the close-synonym tier. Keys are
// lowercase; values keep display casing to match catalog tags.
var defaultCategoryExpansions = map[string][]string{
	"stories":    {"Audiobooks", "Podcasts"},
	"music":      {"Songs", "Sound & Music"},
	"learning":   {"Educational", "Activities"},
	"audiobooks": {"Stories"},
	"podcasts":   {"Stories"},
	"activities": {"Learning", "Games"},
}
