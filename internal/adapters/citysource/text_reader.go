package citysource

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"tour-planner-service/internal/domain"
)

var ErrMalformedLine = errors.New("malformed city line")

// Read cities from a plain text source, one "<id> <x> <y>" triple per line.
// Blank lines are skipped and line order is kept as city order. The id must
// be an integer but is otherwise discarded. Any malformed line fails the
// whole read.
func ReadCities(r io.Reader) ([]domain.City, error) {
	cities := make([]domain.City, 0, 64)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		city, err := parseCity(fields)
		if err != nil {
			return nil, fmt.Errorf("read cities: line %d: %w", lineNo, err)
		}
		cities = append(cities, city)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read cities: scan: %w", err)
	}

	return cities, nil
}

// Open a city file and read it with ReadCities.
func ReadCitiesFile(path string) ([]domain.City, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read cities: open %q: %w", path, err)
	}
	defer f.Close()

	cities, err := ReadCities(f)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	return cities, nil
}

func parseCity(fields []string) (domain.City, error) {
	if len(fields) != 3 {
		return domain.City{}, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedLine, len(fields))
	}

	if _, err := strconv.Atoi(fields[0]); err != nil {
		return domain.City{}, fmt.Errorf("%w: id %q is not an integer", ErrMalformedLine, fields[0])
	}

	x, err := parseCoord("x", fields[1])
	if err != nil {
		return domain.City{}, err
	}

	y, err := parseCoord("y", fields[2])
	if err != nil {
		return domain.City{}, err
	}

	return domain.City{X: x, Y: y}, nil
}

// ParseFloat accepts NaN and Inf; neither is a usable coordinate.
func parseCoord(name, field string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrMalformedLine, name, field)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s %q is not finite", ErrMalformedLine, name, field)
	}
	return v, nil
}
