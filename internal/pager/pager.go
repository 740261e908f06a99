// Package pager shows the raw rows of a filtered table in fixed size windows
package pager

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"bikeshare/internal/dtos"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultPageSize = 5
	NoMoreRows      = "No more rows to display."

	firstWording = "the first"
	nextWording  = "the next"
	timeLayout   = "2006-01-02 15:04:05"
	missingValue = "NaN"
)

// Confirmer asks a yes/no question
type Confirmer interface {
	Confirm(message string) (bool, error)
}

// Pager keeps the position of the next window to display. It starts with no rows shown
type Pager struct {
	confirmer Confirmer
	out       io.Writer
	pageSize  int
	cursor    int
	shown     bool
}

func NewPager(confirmer Confirmer, out io.Writer, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager{
		confirmer: confirmer,
		out:       out,
		pageSize:  pageSize,
	}
}

// Message returns the question shown before the next window
func (p *Pager) Message() string {
	wording := firstWording
	if p.shown {
		wording = nextWording
	}
	return fmt.Sprintf("\nDisplay %s %d rows of data (y -> yes, n -> no)? ", wording, p.pageSize)
}

// Run asks to display rows until the user answers no
func (p *Pager) Run(table *dtos.Table) error {
	for {
		display, err := p.confirmer.Confirm(p.Message())
		if err != nil {
			return err
		}
		if !display {
			return nil
		}
		p.Next(table)
	}
}

// Next prints the window starting at the cursor and moves the cursor forward. Past the end of
// the table nothing but a notice is printed
func (p *Pager) Next(table *dtos.Table) []dtos.TripData {
	window := table.Window(p.cursor, p.pageSize)
	log.Debugf("[city: %s] showing rows from %v, %v rows", table.City, p.cursor, len(window))

	p.cursor += p.pageSize
	p.shown = true

	if len(window) == 0 {
		p.printf("%s\n", NoMoreRows)
		return window
	}

	p.printRows(table, window)
	p.printf("(%s of %s rows shown)\n", humanize.Comma(int64(min(p.cursor, table.Len()))), humanize.Comma(int64(table.Len())))
	return window
}

func (p *Pager) printRows(table *dtos.Table, rows []dtos.TripData) {
	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)

	header := "\tStart Time\tEnd Time\tTrip Duration\tStart Station\tEnd Station\tUser Type"
	if table.HasGender {
		header += "\tGender"
	}
	if table.HasBirthYear {
		header += "\tBirth Year"
	}
	header += "\tMonth\tWeekday\tHour"
	fmt.Fprintln(w, header)

	for _, trip := range rows {
		line := fmt.Sprintf("%d\t%s\t%s\t%s\t%s\t%s\t%s",
			trip.Index,
			trip.StartTime.Format(timeLayout),
			trip.EndTime.Format(timeLayout),
			strconv.FormatFloat(trip.Duration, 'f', -1, 64),
			trip.StartStation,
			trip.EndStation,
			orMissing(trip.UserType),
		)
		if table.HasGender {
			line += "\t" + orMissing(trip.Gender)
		}
		if table.HasBirthYear {
			year := missingValue
			if trip.HasBirthYear {
				year = strconv.Itoa(trip.BirthYear)
			}
			line += "\t" + year
		}
		line += fmt.Sprintf("\t%d\t%d\t%d", trip.Month, trip.Weekday, trip.Hour)
		fmt.Fprintln(w, line)
	}

	if err := w.Flush(); err != nil {
		log.Errorf("error writing rows: %v", err)
	}
}

func (p *Pager) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(p.out, format, args...); err != nil {
		log.Errorf("error writing rows: %v", err)
	}
}

func orMissing(value string) string {
	if value == "" {
		return missingValue
	}
	return value
}
