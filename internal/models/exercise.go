package models

type Exercise struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MagnitudeID int64  `json:"magnitude_id"` // Which unit of measure a log of this exercise carries.
}

type Magnitude struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

type Resistance struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// ExerciseResistance marks a resistance as valid for an exercise.
type ExerciseResistance struct {
	ExerciseID   int64 `json:"exercise_id"`
	ResistanceID int64 `json:"resistance_id"`
}

//
// For TOML parsing only
//

type MagnitudeTOML struct {
	Name string `toml:"name"`
	Unit string `toml:"unit"`
}

type ResistanceTOML struct {
	Name string `toml:"name"`
	Unit string `toml:"unit"`
}

type ExerciseDefTOML struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Magnitude   string   `toml:"magnitude"`   // Magnitude name, e.g. "Repetitions".
	Resistances []string `toml:"resistances"` // Resistance names valid for the exercise.
}

type CatalogImport struct {
	Magnitudes  []MagnitudeTOML   `toml:"magnitude"`
	Resistances []ResistanceTOML  `toml:"resistance"`
	Exercises   []ExerciseDefTOML `toml:"exercise"`
}
