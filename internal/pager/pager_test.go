package pager

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"bikeshare/internal/dtos"
	explorerErrors "bikeshare/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedConfirmer answers with the given values and records the questions
type scriptedConfirmer struct {
	answers  []bool
	messages []string
}

func (s *scriptedConfirmer) Confirm(message string) (bool, error) {
	s.messages = append(s.messages, message)
	if len(s.answers) == 0 {
		return false, explorerErrors.ErrInputClosed
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func tableOf(n int) *dtos.Table {
	start := time.Date(2017, time.January, 2, 9, 0, 0, 0, time.UTC)
	trips := make([]dtos.TripData, n)
	for i := range trips {
		trips[i] = dtos.TripData{
			Index:        i,
			StartTime:    start,
			EndTime:      start.Add(10 * time.Minute),
			Duration:     600,
			StartStation: fmt.Sprintf("Station %d", i),
			EndStation:   "Union Station",
			UserType:     "Subscriber",
			Month:        1,
			Weekday:      1,
			Hour:         9,
		}
	}
	return &dtos.Table{City: "washington", Trips: trips}
}

func TestNext_WindowsInOrder(t *testing.T) {
	table := tableOf(12)
	p := NewPager(&scriptedConfirmer{}, &bytes.Buffer{}, 5)

	for n, want := range [][]int{{0, 1, 2, 3, 4}, {5, 6, 7, 8, 9}, {10, 11}, {}} {
		window := p.Next(table)
		got := []int{}
		for _, trip := range window {
			got = append(got, trip.Index)
		}
		assert.Equal(t, want, got, "window %d", n)
	}
}

func TestMessage_FirstThenNext(t *testing.T) {
	p := NewPager(&scriptedConfirmer{}, &bytes.Buffer{}, 0)

	assert.Equal(t, "\nDisplay the first 5 rows of data (y -> yes, n -> no)? ", p.Message())
	p.Next(tableOf(1))
	assert.Equal(t, "\nDisplay the next 5 rows of data (y -> yes, n -> no)? ", p.Message())
}

func TestRun_StopsOnNo(t *testing.T) {
	var out bytes.Buffer
	confirmer := &scriptedConfirmer{answers: []bool{true, true, false, true}}
	p := NewPager(confirmer, &out, 5)

	require.NoError(t, p.Run(tableOf(12)))

	require.Len(t, confirmer.messages, 3)
	assert.Contains(t, confirmer.messages[0], "the first")
	assert.Contains(t, confirmer.messages[1], "the next")
	assert.Contains(t, confirmer.messages[2], "the next")

	got := out.String()
	assert.Contains(t, got, "Station 9")
	assert.NotContains(t, got, "Station 10")
	assert.Contains(t, got, "(10 of 12 rows shown)")
}

func TestRun_PastTheEnd(t *testing.T) {
	var out bytes.Buffer
	p := NewPager(&scriptedConfirmer{answers: []bool{true, true, false}}, &out, 5)

	require.NoError(t, p.Run(tableOf(3)))

	got := out.String()
	assert.Contains(t, got, "(3 of 3 rows shown)")
	assert.Equal(t, 1, strings.Count(got, NoMoreRows))
}

func TestRun_PropagatesInputClosed(t *testing.T) {
	p := NewPager(&scriptedConfirmer{answers: []bool{true}}, &bytes.Buffer{}, 5)

	assert.ErrorIs(t, p.Run(tableOf(3)), explorerErrors.ErrInputClosed)
}

func TestPrintRows_OptionalColumns(t *testing.T) {
	var out bytes.Buffer
	table := tableOf(1)
	table.HasGender = true
	table.HasBirthYear = true
	table.Trips[0].Gender = "Female"

	NewPager(&scriptedConfirmer{}, &out, 5).Next(table)

	got := out.String()
	assert.Contains(t, got, "Gender")
	assert.Contains(t, got, "Birth Year")
	assert.Contains(t, got, "Female")
	assert.Contains(t, got, missingValue)
	assert.Contains(t, got, "2017-01-02 09:00:00")
}
