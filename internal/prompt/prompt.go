// Package prompt asks the user for the session filters and yes/no answers. Reading is done
// from any io.Reader so the prompts can be driven by scripted input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"bikeshare/internal/catalog"
	"bikeshare/internal/dtos"
	explorerErrors "bikeshare/internal/errors"

	log "github.com/sirupsen/logrus"
)

const (
	Greeting = "Hello! Let's explore some US bikeshare data!"

	cityLabel    = "CITY"
	monthLabel   = "MONTH"
	weekdayLabel = "WEEKDAY"

	yes = "y"
	no  = "n"
)

type inputState int

const (
	awaitingInput inputState = iota
	validInput
	invalidInput
)

// BuildMessage formats the menu of a category, e.g.
// "SELECT a CITY ID from (0 -> chicago, 1 -> new york city, 2 -> washington): "
func BuildMessage(label string, options catalog.Table) string {
	pairs := make([]string, 0, len(options))
	for _, opt := range options {
		pairs = append(pairs, opt.Code+" -> "+opt.Name)
	}
	return fmt.Sprintf("SELECT a %s ID from (%s): ", label, strings.Join(pairs, ", "))
}

// validate is the transition of the input state machine: it returns validInput and the
// option name when code belongs to options, invalidInput otherwise
func validate(options catalog.Table, code string) (inputState, string) {
	if name, ok := options.Lookup(code); ok {
		return validInput, name
	}
	return invalidInput, ""
}

// validAnswer tells if answer, once lower cased, is a yes or a no
func validAnswer(answer string) (inputState, bool) {
	switch strings.ToLower(answer) {
	case yes:
		return validInput, true
	case no:
		return validInput, false
	default:
		return invalidInput, false
	}
}

// Prompter writes questions to out and reads the answers line by line from in
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine returns the next line without its line terminator. ErrInputClosed is returned
// once the input is exhausted
func (p *Prompter) ReadLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err == io.EOF && line == "" {
		return "", explorerErrors.ErrInputClosed
	}
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Choose shows the menu of options until a valid code is typed and returns its name. There is
// no retry limit
func (p *Prompter) Choose(label string, options catalog.Table) (string, error) {
	message := BuildMessage(label, options)
	for state := awaitingInput; ; state = awaitingInput {
		p.print(message)
		code, err := p.ReadLine()
		if err != nil {
			return "", err
		}

		var name string
		if state, name = validate(options, code); state == validInput {
			return name, nil
		}
		log.Debugf("[%s] invalid option %q", label, code)
	}
}

// Confirm asks message until the answer is y or n (in any case)
func (p *Prompter) Confirm(message string) (bool, error) {
	for {
		p.print(message)
		answer, err := p.ReadLine()
		if err != nil {
			return false, err
		}

		state, accepted := validAnswer(answer)
		if state == validInput {
			return accepted, nil
		}
	}
}

// CollectFilters greets the user, asks for city, month and weekday and echoes the selection
func (p *Prompter) CollectFilters(separatorWidth int) (dtos.Selection, error) {
	p.print(Greeting + "\n")

	city, err := p.Choose(cityLabel, catalog.Cities)
	if err != nil {
		return dtos.Selection{}, err
	}

	month, err := p.Choose(monthLabel, catalog.Months)
	if err != nil {
		return dtos.Selection{}, err
	}

	weekday, err := p.Choose(weekdayLabel, catalog.Weekdays)
	if err != nil {
		return dtos.Selection{}, err
	}

	p.print(fmt.Sprintf("Selected city [%s], month [%s] and weekday [%s]!\n", city, month, weekday))
	p.print(strings.Repeat("-", separatorWidth) + "\n")

	return dtos.Selection{City: city, Month: month, Weekday: weekday}, nil
}

func (p *Prompter) print(text string) {
	if _, err := io.WriteString(p.out, text); err != nil {
		log.Errorf("error writing prompt: %v", err)
	}
}
