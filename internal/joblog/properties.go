package joblog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Tiliavir/joblog/internal/model"
)

// Properties describes the job, stored next to the logs file as key=value
// lines:
//
//	weeklyhours=38.5
type Properties struct {
	// WeeklyHours is the number of hours to be worked per week. Zero means unset.
	WeeklyHours float64
}

// WeeklyTarget returns the weekly hours as a duration.
func (p Properties) WeeklyTarget() time.Duration {
	return time.Duration(p.WeeklyHours * float64(time.Hour))
}

// ParseProperties reads key=value lines up to EOF or the first blank line.
// Unknown keys are rejected.
func ParseProperties(r io.Reader) (Properties, error) {
	var p Properties
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			break
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return Properties{}, fmt.Errorf("%w: property without value: '%s'", model.ErrCorruptedFile, line)
		}
		switch key {
		case "weeklyhours":
			hours, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil || hours < 0 || hours > 7*24 {
				return Properties{}, fmt.Errorf("%w: invalid weeklyhours: '%s'", model.ErrCorruptedFile, line)
			}
			p.WeeklyHours = hours
		default:
			return Properties{}, fmt.Errorf("%w: unknown property '%s'", model.ErrCorruptedFile, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return Properties{}, fmt.Errorf("%w: properties: %v", model.ErrCorruptedFile, err)
	}
	return p, nil
}

// loadProperties reads path, returning empty properties if it does not exist.
func loadProperties(path string) (Properties, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Properties{}, nil
	}
	if err != nil {
		return Properties{}, fmt.Errorf("%w: could not open properties %s: %v", model.ErrCorruptedFile, path, err)
	}
	defer f.Close()
	return ParseProperties(f)
}
