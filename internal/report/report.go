// Package report prints the descriptive statistics of a filtered table. Each report is
// independent from the others and only reads the table.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"bikeshare/internal/catalog"
	"bikeshare/internal/dtos"
	"bikeshare/internal/stats"

	log "github.com/sirupsen/logrus"
)

const (
	NoDataMessage               = "No data available for the selected filters."
	GenderUnavailableMessage    = "Gender is not available for the city data!"
	BirthYearUnavailableMessage = "Birth Year is not available for the city data!"

	defaultSeparatorWidth = 40
	countIndent           = "  "

	timeStatsTitle     = "Calculating The Most Frequent Times of Travel..."
	stationStatsTitle  = "Calculating The Most Popular Stations and Trip..."
	durationStatsTitle = "Calculating Trip Duration..."
	userStatsTitle     = "Calculating User Stats..."
)

// Reporter writes reports to out. Now is used to time each report and can be replaced in tests
type Reporter struct {
	out            io.Writer
	separatorWidth int
	Now            func() time.Time
}

func NewReporter(out io.Writer, separatorWidth int) *Reporter {
	if separatorWidth <= 0 {
		separatorWidth = defaultSeparatorWidth
	}
	return &Reporter{
		out:            out,
		separatorWidth: separatorWidth,
		Now:            time.Now,
	}
}

// All runs the four reports in their fixed order
func (r *Reporter) All(table *dtos.Table) {
	r.TimeStats(table)
	r.StationStats(table)
	r.DurationStats(table)
	r.UserStats(table)
}

// TimeStats prints the most common month, weekday and start hour
func (r *Reporter) TimeStats(table *dtos.Table) {
	r.run(timeStatsTitle, table, func() {
		months := make([]int, 0, table.Len())
		weekdays := make([]int, 0, table.Len())
		hours := make([]int, 0, table.Len())
		for _, trip := range table.Trips {
			months = append(months, trip.Month)
			weekdays = append(weekdays, trip.Weekday)
			hours = append(hours, trip.Hour)
		}

		month, _, _ := stats.Mode(months)
		r.printf("Most common month: %s\n", catalog.MonthName(month))

		weekday, _, _ := stats.Mode(weekdays)
		r.printf("Most common weekday: %s\n", catalog.WeekdayName(weekday))

		hour, _, _ := stats.Mode(hours)
		r.printf("Most common hour: %d\n", hour)
	})
}

// StationStats prints the most common start station, end station and trip
func (r *Reporter) StationStats(table *dtos.Table) {
	r.run(stationStatsTitle, table, func() {
		starts := make([]string, 0, table.Len())
		ends := make([]string, 0, table.Len())
		for _, trip := range table.Trips {
			starts = append(starts, trip.StartStation)
			ends = append(ends, trip.EndStation)
		}

		start, _, _ := stats.Mode(starts)
		r.printf("Most common Start Station: %s\n", start)

		end, _, _ := stats.Mode(ends)
		r.printf("Most common End Station: %s\n", end)

		pair, _, _ := stats.TopPair(starts, ends)
		r.printf("Most common combination Start -> End Station: %s -> %s\n", pair.First, pair.Second)
	})
}

// DurationStats prints the total and the mean trip duration in seconds
func (r *Reporter) DurationStats(table *dtos.Table) {
	r.run(durationStatsTitle, table, func() {
		durations := make([]float64, 0, table.Len())
		for _, trip := range table.Trips {
			durations = append(durations, trip.Duration)
		}

		r.printf("Total travel time: %s s\n", formatFloat(stats.Sum(durations)))

		mean, _ := stats.Mean(durations)
		r.printf("Mean travel time: %s s\n", formatFloat(mean))
	})
}

// UserStats prints the user type counts and, when the city data has them, the gender counts
// and the birth year figures
func (r *Reporter) UserStats(table *dtos.Table) {
	r.run(userStatsTitle, table, func() {
		userTypes := make([]string, 0, table.Len())
		genders := make([]string, 0, table.Len())
		birthYears := make([]int, 0, table.Len())
		for _, trip := range table.Trips {
			if trip.UserType != "" {
				userTypes = append(userTypes, trip.UserType)
			}
			if trip.Gender != "" {
				genders = append(genders, trip.Gender)
			}
			if trip.HasBirthYear {
				birthYears = append(birthYears, trip.BirthYear)
			}
		}

		r.printCounts("User type counts:", userTypes)

		if table.HasGender {
			r.printCounts("Gender counts:", genders)
		} else {
			r.printf("%s\n", GenderUnavailableMessage)
		}

		if !table.HasBirthYear {
			r.printf("%s\n", BirthYearUnavailableMessage)
			return
		}

		earliest, latest, ok := stats.MinMax(birthYears)
		if !ok {
			r.printf("%s\n", BirthYearUnavailableMessage)
			return
		}
		common, _, _ := stats.Mode(birthYears)
		r.printf("Earliest year of birth: %d\n", earliest)
		r.printf("Most recent year of birth: %d\n", latest)
		r.printf("Most common year of birth: %d\n", common)
	})
}

// run prints the title, the body (or the no data message for an empty table) and the
// time it took
func (r *Reporter) run(title string, table *dtos.Table, body func()) {
	r.printf("\n%s\n\n", title)
	start := r.Now()

	if table.IsEmpty() {
		log.Debugf("[city: %s] empty table, skipping %q", table.City, title)
		r.printf("%s\n", NoDataMessage)
	} else {
		body()
	}

	elapsed := r.Now().Sub(start)
	r.printf("\nThis took %s seconds.\n", strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64))
	r.printf("%s\n", strings.Repeat("-", r.separatorWidth))
}

func (r *Reporter) printCounts(title string, values []string) {
	r.printf("%s\n", title)
	for _, count := range stats.Counts(values) {
		r.printf("%s%s: %d\n", countIndent, count.Value, count.N)
	}
}

func (r *Reporter) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(r.out, format, args...); err != nil {
		log.Errorf("error writing report: %v", err)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
