// Package catalog holds the static menus of the explorer: which cities can be analyzed,
// which file backs each city and the month/weekday code tables shown to the user.
package catalog

import (
	"strconv"
	"strings"
	"time"
)

const All = "all"

const (
	Chicago     = "chicago"
	NewYorkCity = "new york city"
	Washington  = "washington"
)

// Option is one entry of a menu: the code the user types and the name it stands for
type Option struct {
	Code string
	Name string
}

// Table is an ordered menu. The order of the options is the order they are displayed
type Table []Option

var (
	Cities = Table{
		{Code: "0", Name: Chicago},
		{Code: "1", Name: NewYorkCity},
		{Code: "2", Name: Washington},
	}

	Months = Table{
		{Code: "0", Name: All},
		{Code: "1", Name: "january"},
		{Code: "2", Name: "february"},
		{Code: "3", Name: "march"},
		{Code: "4", Name: "april"},
		{Code: "5", Name: "may"},
		{Code: "6", Name: "june"},
	}

	// Weekdays codes follow Monday=1 ... Sunday=7, the same numbering used for the
	// derived weekday of every trip
	Weekdays = Table{
		{Code: "0", Name: All},
		{Code: "1", Name: "monday"},
		{Code: "2", Name: "tuesday"},
		{Code: "3", Name: "wednesday"},
		{Code: "4", Name: "thursday"},
		{Code: "5", Name: "friday"},
		{Code: "6", Name: "saturday"},
		{Code: "7", Name: "sunday"},
	}

	// CityFiles maps every city to the default name of its trips file
	CityFiles = map[string]string{
		Chicago:     "chicago.csv",
		NewYorkCity: "new_york_city.csv",
		Washington:  "washington.csv",
	}
)

// Lookup returns the name bound to code. The match is exact, no trimming nor case folding
func (t Table) Lookup(code string) (string, bool) {
	for _, opt := range t {
		if opt.Code == code {
			return opt.Name, true
		}
	}
	return "", false
}

// Number returns the numeric code of name, e.g. 3 for "march" in Months
func (t Table) Number(name string) (int, bool) {
	for _, opt := range t {
		if opt.Name == name {
			n, err := strconv.Atoi(opt.Code)
			if err != nil {
				return 0, false
			}
			return n, true
		}
	}
	return 0, false
}

// NameOf returns the name shown for the numeric code n
func (t Table) NameOf(n int) (string, bool) {
	return t.Lookup(strconv.Itoa(n))
}

// MonthName returns the menu name of the month number. Months outside the menu
// (july onwards) fall back to the calendar name
func MonthName(month int) string {
	if name, ok := Months.NameOf(month); ok && name != All {
		return name
	}
	if month < 1 || month > 12 {
		return strconv.Itoa(month)
	}
	return strings.ToLower(time.Month(month).String())
}

// WeekdayName returns the menu name for a weekday number in the Monday=1..Sunday=7 range
func WeekdayName(weekday int) string {
	if name, ok := Weekdays.NameOf(weekday); ok && name != All {
		return name
	}
	return strconv.Itoa(weekday)
}

// IsCity reports whether city is one of the known cities
func IsCity(city string) bool {
	_, ok := CityFiles[city]
	return ok
}
