// Package filter narrows a loaded table to the trips of the selected month and weekday
package filter

import (
	"fmt"

	"bikeshare/internal/catalog"
	"bikeshare/internal/dtos"
	explorerErrors "bikeshare/internal/errors"

	log "github.com/sirupsen/logrus"
)

// Apply returns a new table with the trips matching month AND weekday. "all" disables the
// corresponding filter. The input table is left untouched
func Apply(table *dtos.Table, month string, weekday string) (*dtos.Table, error) {
	monthID, err := filterID(catalog.Months, month)
	if err != nil {
		return nil, err
	}

	weekdayID, err := filterID(catalog.Weekdays, weekday)
	if err != nil {
		return nil, err
	}

	trips := make([]dtos.TripData, 0, table.Len())
	for _, trip := range table.Trips {
		if ValidMonth(trip, monthID) && ValidWeekday(trip, weekdayID) {
			trips = append(trips, trip)
		}
	}

	log.Debugf("[city: %s][month: %s][weekday: %s] kept %v of %v trips", table.City, month, weekday, len(trips), table.Len())
	return table.WithTrips(trips), nil
}

// ValidMonth returns true if the trip started in monthID, or if monthID is 0 (all)
func ValidMonth(trip dtos.TripData, monthID int) bool {
	return monthID == 0 || trip.Month == monthID
}

// ValidWeekday returns true if the trip started on weekdayID, or if weekdayID is 0 (all)
func ValidWeekday(trip dtos.TripData, weekdayID int) bool {
	return weekdayID == 0 || trip.Weekday == weekdayID
}

func filterID(table catalog.Table, name string) (int, error) {
	if name == catalog.All {
		return 0, nil
	}
	id, ok := table.Number(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", explorerErrors.ErrUnknownFilter, name)
	}
	return id, nil
}
