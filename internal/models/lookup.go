package models

// LookupTable names one of the reference tables with integer ids and unique names.
type LookupTable string

// Supported lookup tables
const (
	Skills    LookupTable = "skills"
	Interests LookupTable = "interests"
	Schools   LookupTable = "schools"
	Majors    LookupTable = "majors"
)

// LookupDB represents a skill, interest, school or major row.
type LookupDB struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
