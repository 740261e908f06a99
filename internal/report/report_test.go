package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"bikeshare/internal/catalog"
	"bikeshare/internal/dtos"
	"bikeshare/internal/filter"
	"bikeshare/internal/loader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chicagoCSV = `Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
2017-03-06 17:30:00,2017-03-06 17:45:00,900,Canal St,Clark St,Subscriber,Male,1980.0
2017-03-06 17:10:00,2017-03-06 17:20:00,600,Canal St,Clark St,Subscriber,Female,1990.0
2017-03-07 08:00:00,2017-03-07 08:10:00,600,Clark St,Canal St,Customer,,
2017-04-04 17:00:00,2017-04-04 17:05:00,300,Clark St,Canal St,Subscriber,Male,1975.0
2017-03-13 17:40:00,2017-03-13 17:45:00,300,Lake St,Canal St,Subscriber,Male,1980.0
`

const washingtonCSV = `Start Time,End Time,Trip Duration,Start Station,End Station,User Type
2017-06-21 08:36:34,2017-06-21 08:44:43,489.5,14th & Belmont St NW,15th & K St NW,Subscriber
2017-06-22 08:40:00,2017-06-22 08:46:00,400.5,14th & Belmont St NW,15th & K St NW,Customer
`

func newTestReporter(out *bytes.Buffer) *Reporter {
	reporter := NewReporter(out, 0)
	fixed := time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)
	reporter.Now = func() time.Time { return fixed }
	return reporter
}

func load(t *testing.T, data string, city string) *dtos.Table {
	t.Helper()
	table, err := loader.Read(strings.NewReader(data), city)
	require.NoError(t, err)
	return table
}

func TestTimeStats(t *testing.T) {
	var out bytes.Buffer
	newTestReporter(&out).TimeStats(load(t, chicagoCSV, catalog.Chicago))

	got := out.String()
	assert.Contains(t, got, timeStatsTitle)
	assert.Contains(t, got, "Most common month: march\n")
	assert.Contains(t, got, "Most common weekday: monday\n")
	assert.Contains(t, got, "Most common hour: 17\n")
	assert.Contains(t, got, "This took 0 seconds.\n")
	assert.Contains(t, got, strings.Repeat("-", defaultSeparatorWidth)+"\n")
}

func TestStationStats(t *testing.T) {
	var out bytes.Buffer
	newTestReporter(&out).StationStats(load(t, chicagoCSV, catalog.Chicago))

	got := out.String()
	// Canal St and Clark St both start two trips, Canal St is seen first
	assert.Contains(t, got, "Most common Start Station: Canal St\n")
	assert.Contains(t, got, "Most common End Station: Canal St\n")
	assert.Contains(t, got, "Most common combination Start -> End Station: Canal St -> Clark St\n")
}

func TestDurationStats(t *testing.T) {
	var out bytes.Buffer
	newTestReporter(&out).DurationStats(load(t, washingtonCSV, catalog.Washington))

	got := out.String()
	assert.Contains(t, got, "Total travel time: 890 s\n")
	assert.Contains(t, got, "Mean travel time: 445 s\n")
}

func TestUserStats_WithDemographics(t *testing.T) {
	var out bytes.Buffer
	newTestReporter(&out).UserStats(load(t, chicagoCSV, catalog.Chicago))

	got := out.String()
	assert.Contains(t, got, "User type counts:\n  Subscriber: 4\n  Customer: 1\n")
	assert.Contains(t, got, "Gender counts:\n  Male: 3\n  Female: 1\n")
	assert.Contains(t, got, "Earliest year of birth: 1975\n")
	assert.Contains(t, got, "Most recent year of birth: 1990\n")
	assert.Contains(t, got, "Most common year of birth: 1980\n")
	assert.NotContains(t, got, GenderUnavailableMessage)
	assert.NotContains(t, got, BirthYearUnavailableMessage)
}

func TestUserStats_WithoutDemographics(t *testing.T) {
	var out bytes.Buffer
	newTestReporter(&out).UserStats(load(t, washingtonCSV, catalog.Washington))

	got := out.String()
	assert.Contains(t, got, GenderUnavailableMessage)
	assert.Contains(t, got, BirthYearUnavailableMessage)
	assert.NotContains(t, got, "year of birth:")
	assert.NotContains(t, got, "Gender counts:")
}

func TestAll_EmptyTablePrintsNoData(t *testing.T) {
	table := load(t, chicagoCSV, catalog.Chicago)
	empty, err := filter.Apply(table, "june", catalog.All)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())

	var out bytes.Buffer
	newTestReporter(&out).All(empty)

	got := out.String()
	assert.Equal(t, 4, strings.Count(got, NoDataMessage))
	assert.Equal(t, 4, strings.Count(got, "This took"))
	assert.NotContains(t, got, "Most common")
}

func TestAll_WashingtonMostCommonHour(t *testing.T) {
	table := load(t, washingtonCSV, catalog.Washington)
	filtered, err := filter.Apply(table, catalog.All, catalog.All)
	require.NoError(t, err)
	assert.Equal(t, table.Len(), filtered.Len())

	var out bytes.Buffer
	newTestReporter(&out).All(filtered)

	got := out.String()
	assert.Contains(t, got, "Most common hour: 8\n")
	assert.Contains(t, got, "Most common month: june\n")
	assert.True(t, strings.Index(got, timeStatsTitle) < strings.Index(got, userStatsTitle))
}
