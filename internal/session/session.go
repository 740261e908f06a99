// Package session runs the interactive loop of the explorer: filters, load, reports, raw rows
// and the restart question. Nothing is kept from one iteration to the next.
package session

import (
	"fmt"
	"io"

	"bikeshare/internal/config"
	"bikeshare/internal/dtos"
	"bikeshare/internal/filter"
	"bikeshare/internal/loader"
	"bikeshare/internal/pager"
	"bikeshare/internal/prompt"
	"bikeshare/internal/report"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const restartMessage = "\nWould you like to restart (y -> yes, n -> no)? "

// LoadFunc reads the whole dataset of a city
type LoadFunc func(filepath string, city string) (*dtos.Table, error)

type Session struct {
	config   *config.ExplorerConfig
	prompter *prompt.Prompter
	out      io.Writer
	load     LoadFunc
	reporter *report.Reporter
}

func NewSession(explorerConfig *config.ExplorerConfig, in io.Reader, out io.Writer) *Session {
	return &Session{
		config:   explorerConfig,
		prompter: prompt.NewPrompter(in, out),
		out:      out,
		load:     loader.Load,
		reporter: report.NewReporter(out, explorerConfig.SeparatorWidth),
	}
}

// Run repeats sessions until the user declines to restart. Load errors end the loop
func (s *Session) Run() error {
	for {
		if err := s.RunOnce(); err != nil {
			return err
		}

		restart, err := s.prompter.Confirm(restartMessage)
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
}

// RunOnce runs a single session: collect filters, load and filter the city data, print the
// four reports and offer the raw rows
func (s *Session) RunOnce() error {
	sessionID := uuid.NewString()

	selection, err := s.prompter.CollectFilters(s.config.SeparatorWidth)
	if err != nil {
		return err
	}

	logger := log.WithFields(log.Fields{
		"session": sessionID,
		"city":    selection.City,
		"month":   selection.Month,
		"weekday": selection.Weekday,
	})
	logger.Debug("filters selected")

	table, err := s.loadFiltered(selection)
	if err != nil {
		logger.Errorf("error loading data: %v", err)
		return err
	}
	logger.Debugf("%v trips after filtering", table.Len())

	s.reporter.All(table)

	return pager.NewPager(s.prompter, s.out, s.config.PageSize).Run(table)
}

func (s *Session) loadFiltered(selection dtos.Selection) (*dtos.Table, error) {
	path, err := s.config.CityFilepath(selection.City)
	if err != nil {
		return nil, err
	}

	table, err := s.load(path, selection.City)
	if err != nil {
		return nil, fmt.Errorf("error loading %s data: %w", selection.City, err)
	}

	return filter.Apply(table, selection.Month, selection.Weekday)
}
