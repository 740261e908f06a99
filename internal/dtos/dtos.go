package dtos

import "time"

// TripData is a single trip of a city dataset plus the fields derived from its start time.
// Gender is empty and HasBirthYear false when the value is missing in the row
type TripData struct {
	Index        int
	StartTime    time.Time
	EndTime      time.Time
	Duration     float64
	StartStation string
	EndStation   string
	UserType     string
	Gender       string
	BirthYear    int
	HasBirthYear bool

	Month   int
	Weekday int
	Hour    int
}

// Table is the loaded (or filtered) trips of a city. HasGender and HasBirthYear tell if the
// source file carries those optional columns at all
type Table struct {
	City         string
	Trips        []TripData
	HasGender    bool
	HasBirthYear bool
}

func (t *Table) Len() int {
	return len(t.Trips)
}

func (t *Table) IsEmpty() bool {
	return len(t.Trips) == 0
}

// Window returns the trips in [from, from+size) clipped to the end of the table
func (t *Table) Window(from int, size int) []TripData {
	if from < 0 {
		from = 0
	}
	if from >= len(t.Trips) || size <= 0 {
		return nil
	}
	to := from + size
	if to > len(t.Trips) {
		to = len(t.Trips)
	}
	return t.Trips[from:to]
}

// WithTrips returns a table with the same columns as t holding only trips
func (t *Table) WithTrips(trips []TripData) *Table {
	return &Table{
		City:         t.City,
		Trips:        trips,
		HasGender:    t.HasGender,
		HasBirthYear: t.HasBirthYear,
	}
}

// Selection is the city, month and weekday chosen for one session. Month and Weekday are
// either a menu name or "all"
type Selection struct {
	City    string
	Month   string
	Weekday string
}
