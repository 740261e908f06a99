package transformer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"bikeshare/internal/dtos"
	explorerErrors "bikeshare/internal/errors"

	log "github.com/sirupsen/logrus"
)

const (
	StartTimeColumn    = "Start Time"
	EndTimeColumn      = "End Time"
	DurationColumn     = "Trip Duration"
	StartStationColumn = "Start Station"
	EndStationColumn   = "End Station"
	UserTypeColumn     = "User Type"
	GenderColumn       = "Gender"
	BirthYearColumn    = "Birth Year"

	missingColumn = -1
)

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
}

// Columns holds the position of every known column in a csv header, missingColumn when absent
type Columns struct {
	StartTime    int
	EndTime      int
	Duration     int
	StartStation int
	EndStation   int
	UserType     int
	Gender       int
	BirthYear    int
}

// NewColumns resolves the column positions from the header row. Every column but Gender and
// Birth Year is required
func NewColumns(header []string) (Columns, error) {
	idx := func(col string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")), col) {
				return i
			}
		}
		return missingColumn
	}

	columns := Columns{
		StartTime:    idx(StartTimeColumn),
		EndTime:      idx(EndTimeColumn),
		Duration:     idx(DurationColumn),
		StartStation: idx(StartStationColumn),
		EndStation:   idx(EndStationColumn),
		UserType:     idx(UserTypeColumn),
		Gender:       idx(GenderColumn),
		BirthYear:    idx(BirthYearColumn),
	}

	required := map[string]int{
		StartTimeColumn:    columns.StartTime,
		EndTimeColumn:      columns.EndTime,
		DurationColumn:     columns.Duration,
		StartStationColumn: columns.StartStation,
		EndStationColumn:   columns.EndStation,
		UserTypeColumn:     columns.UserType,
	}
	var missing []string
	for name, pos := range required {
		if pos == missingColumn {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return Columns{}, fmt.Errorf("%w: %s", explorerErrors.ErrMissingColumn, strings.Join(missing, ", "))
	}

	return columns, nil
}

func (c Columns) HasGender() bool {
	return c.Gender != missingColumn
}

func (c Columns) HasBirthYear() bool {
	return c.BirthYear != missingColumn
}

// Transform turns a raw csv row into TripData, deriving month, weekday (Monday=1..Sunday=7)
// and hour from the start time
func Transform(columns Columns, row []string, index int) (*dtos.TripData, error) {
	startTime, err := ParseTime(field(row, columns.StartTime))
	if err != nil {
		log.Debugf("[row: %v] Invalid start time: %v", index, field(row, columns.StartTime))
		return nil, fmt.Errorf("%w: %s: %q", explorerErrors.ErrInvalidTripData, explorerErrors.ErrInvalidDate, field(row, columns.StartTime))
	}

	endTime, err := ParseTime(field(row, columns.EndTime))
	if err != nil {
		log.Debugf("[row: %v] Invalid end time: %v", index, field(row, columns.EndTime))
		return nil, fmt.Errorf("%w: %s: %q", explorerErrors.ErrInvalidTripData, explorerErrors.ErrInvalidDate, field(row, columns.EndTime))
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(field(row, columns.Duration)), 64)
	if err != nil {
		log.Debugf("[row: %v] Invalid duration type: %v", index, field(row, columns.Duration))
		return nil, fmt.Errorf("%w: %s", explorerErrors.ErrInvalidTripData, explorerErrors.ErrInvalidDurationType)
	}

	trip := &dtos.TripData{
		Index:        index,
		StartTime:    startTime,
		EndTime:      endTime,
		Duration:     duration,
		StartStation: field(row, columns.StartStation),
		EndStation:   field(row, columns.EndStation),
		UserType:     field(row, columns.UserType),
		Month:        int(startTime.Month()),
		Weekday:      Weekday(startTime),
		Hour:         startTime.Hour(),
	}

	if columns.HasGender() {
		trip.Gender = field(row, columns.Gender)
	}

	if columns.HasBirthYear() {
		rawYear := strings.TrimSpace(field(row, columns.BirthYear))
		if rawYear != "" {
			year, err := strconv.ParseFloat(rawYear, 64)
			if err != nil {
				log.Debugf("[row: %v] Invalid birth year: %v", index, rawYear)
				return nil, fmt.Errorf("%w: %s", explorerErrors.ErrInvalidTripData, explorerErrors.ErrInvalidBirthYear)
			}
			trip.BirthYear = int(year)
			trip.HasBirthYear = true
		}
	}

	return trip, nil
}

// ParseTime parses a trip timestamp with any of the accepted layouts
func ParseTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		t, err = time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// Weekday returns the day of the week of t numbered Monday=1 ... Sunday=7
func Weekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == int(time.Sunday) {
		return 7
	}
	return wd
}

func field(row []string, pos int) string {
	if pos < 0 || pos >= len(row) {
		return ""
	}
	return row[pos]
}
