package models

// StatKey names one of the five compared attributes
type StatKey string

const (
	StatGoals     StatKey = "goals"
	StatPace      StatKey = "pace"
	StatDribbling StatKey = "dribbling"
	StatPassing   StatKey = "passing"
	StatPhysical  StatKey = "physical"
)

// StatKeys lists the stat keys in display and chart order
var StatKeys = [5]StatKey{StatGoals, StatPace, StatDribbling, StatPassing, StatPhysical}

// Label returns the chart label for the key ("Goals")
func (k StatKey) Label() string {
	switch k {
	case StatGoals:
		return "Goals"
	case StatPace:
		return "Pace"
	case StatDribbling:
		return "Dribbling"
	case StatPassing:
		return "Passing"
	case StatPhysical:
		return "Physical"
	default:
		return string(k)
	}
}

// Stats holds the five 0-100 ratings of a player
type Stats struct {
	Goals     int `json:"goals"`
	Pace      int `json:"pace"`
	Dribbling int `json:"dribbling"`
	Passing   int `json:"passing"`
	Physical  int `json:"physical"`
}

// Value returns the rating for key, 0 for an unknown key
func (s Stats) Value(key StatKey) int {
	switch key {
	case StatGoals:
		return s.Goals
	case StatPace:
		return s.Pace
	case StatDribbling:
		return s.Dribbling
	case StatPassing:
		return s.Passing
	case StatPhysical:
		return s.Physical
	default:
		return 0
	}
}

// Values returns the ratings in StatKeys order
func (s Stats) Values() [5]int {
	var out [5]int
	for i, k := range StatKeys {
		out[i] = s.Value(k)
	}
	return out
}

// Achievements counts major honours
type Achievements struct {
	BallonDor int `json:"ballonDor"`
	UCL       int `json:"ucl"`
	WorldCup  int `json:"worldCup"`
}

// Difficulty of a tutorial. The set is open; these are the values the catalog uses.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Tutorial is a skill video attached to a player
type Tutorial struct {
	Title      string     `json:"title"`
	Video      string     `json:"video"`
	Difficulty Difficulty `json:"difficulty"`
}

// Player is one catalog record (read-only after load)
type Player struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Country      string       `json:"country"`
	CountryCode  string       `json:"countryCode"`
	Flag         string       `json:"flag"`
	Image        string       `json:"image"`
	Position     string       `json:"position"`
	Club         string       `json:"club"`
	Bio          string       `json:"bio"`
	FunFact      string       `json:"funFact"`
	Stats        Stats        `json:"stats"`
	Achievements Achievements `json:"achievements"`
	Tutorials    []Tutorial   `json:"tutorials"`
}
