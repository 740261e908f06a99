// Package loader reads a city trips file into memory
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"bikeshare/internal/dtos"
	explorerErrors "bikeshare/internal/errors"
	"bikeshare/internal/transformer"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
)

// Load opens the csv file at filepath and reads every trip of the given city
func Load(filepath string, city string) (*dtos.Table, error) {
	dataFile, err := os.Open(filepath)
	if err != nil {
		log.Debugf("[city: %s] error opening %s: %s", city, filepath, err.Error())
		return nil, err
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", filepath, err.Error())
		}
	}(dataFile)

	table, err := Read(dataFile, city)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", filepath, err)
	}

	log.Infof("[city: %s] loaded %s trips from %s", city, humanize.Comma(int64(table.Len())), filepath)
	return table, nil
}

// Read parses csv data with a header row. Columns are matched by name so their order does
// not matter
func Read(r io.Reader, city string) (*dtos.Table, error) {
	csvReader := csv.NewReader(r)
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err == io.EOF {
		return nil, explorerErrors.ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns, err := transformer.NewColumns(header)
	if err != nil {
		return nil, err
	}

	table := &dtos.Table{
		City:         city,
		HasGender:    columns.HasGender(),
		HasBirthYear: columns.HasBirthYear(),
	}

	for index := 0; ; index++ {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", index, err)
		}

		trip, err := transformer.Transform(columns, row, index)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", index, err)
		}
		table.Trips = append(table.Trips, *trip)
	}

	return table, nil
}
