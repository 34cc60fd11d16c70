package domain

// OpeningHours maps a lowercase three-letter weekday key ("mon".."sun") to a
// list of "HH:MM-HH:MM" windows. The planning engine never inspects this data
// directly; it is consumed only through the opening-hours evaluator port.
type OpeningHours map[string][]string

// Tourist-trap levels as curated in the content database.
const (
	TrapLow   = "low"
	TrapMixed = "mixed"
	TrapHigh  = "high"
)

// POI is a visitable point of interest supplied by the content database.
// All fields are read-only inputs to plan generation. Category and Tags are
// open string sets (content is externally curated); a zero MinVisitMinutes or
// MaxVisitMinutes means the content provides no bound and pace defaults apply.
type POI struct {
	ID       string
	Name     string
	Category string
	Tags     []string
	Coord    *Coordinates
	Region   string

	MinVisitMinutes int
	MaxVisitMinutes int

	CostMin int
	CostMax int

	TouristTrap string
	BestTimes   []string
	Hours       OpeningHours
}
