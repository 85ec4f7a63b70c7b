// Package schedule provides cron schedules that fire on the Martian calendar:
// at sol starts, at solar longitude crossings and at season boundaries.
package schedule

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/litescript/ls-marstime/internal/logging"
	"github.com/litescript/ls-marstime/internal/mars"
)

// Schedule prefixes understood by Parse in addition to standard cron specs.
const (
	solPrefix    = "@sol"
	lsPrefix     = "@ls"
	seasonPrefix = "@season"
)

// SolSchedule fires at the start of every Every-th sol of each Mars year,
// shifted by Offset sols. Sol numbering restarts at 0 each year.
type SolSchedule struct {
	Every  int
	Offset float64

	Log *logging.Logger
}

// Next returns the first firing strictly after now.
//
// This implements robfig/cron.Schedule
func (s SolSchedule) Next(now time.Time) time.Time {
	next, err := s.next(now)
	if err != nil {
		logOrDiscard(s.Log).Error("sol schedule after %s: %v", now.UTC().Format(time.RFC3339), err)
		return time.Time{}
	}
	return next
}

func (s SolSchedule) next(now time.Time) (time.Time, error) {
	every := float64(s.Every)
	if s.Every <= 0 {
		every = 1
	}
	if s.Offset < 0 || s.Offset >= every {
		return time.Time{}, fmt.Errorf("offset %v outside [0, %v): %w", s.Offset, every, mars.ErrOutOfRange)
	}

	m, err := mars.FromTime(now)
	if err != nil {
		return time.Time{}, err
	}
	year := m.Year()
	n := math.Floor((m.Sol()-s.Offset)/every) + 1
	sol := n*every + s.Offset

	// Two passes: the rest of this year, then the first firing of the next.
	for i := 0; i < 2; i++ {
		length, err := mars.SolsInYear(year)
		if err != nil {
			return time.Time{}, err
		}
		for sol < length {
			at, err := mars.New(year, sol)
			if err != nil {
				return time.Time{}, err
			}
			if t := at.Time(); t.After(now) {
				return t, nil
			}
			sol += every
		}
		year++
		sol = s.Offset
	}
	return time.Time{}, fmt.Errorf("no sol firing after MY%d: %w", m.Year(), mars.ErrOutOfRange)
}

// SolarLongitudeSchedule fires every time the solar longitude crosses Ls,
// once per Mars year.
type SolarLongitudeSchedule struct {
	Ls float64

	Log *logging.Logger
}

// Next returns the first crossing strictly after now.
//
// This implements robfig/cron.Schedule
func (s SolarLongitudeSchedule) Next(now time.Time) time.Time {
	next, err := mars.NextCrossing(now, s.Ls)
	if err != nil {
		logOrDiscard(s.Log).Error("Ls %.2f schedule after %s: %v", s.Ls, now.UTC().Format(time.RFC3339), err)
		return time.Time{}
	}
	return next
}

// SeasonSchedule fires at every equinox and solstice.
type SeasonSchedule struct {
	Log *logging.Logger
}

// Next returns the first season boundary strictly after now.
//
// This implements robfig/cron.Schedule
func (s SeasonSchedule) Next(now time.Time) time.Time {
	next, _, err := mars.NextSeasonBoundary(now)
	if err != nil {
		logOrDiscard(s.Log).Error("season schedule after %s: %v", now.UTC().Format(time.RFC3339), err)
		return time.Time{}
	}
	return next
}

// Parse parses a schedule spec. In addition to everything
// cron.ParseStandard accepts it understands:
//
//	@sol [every [offset]]   start of each sol (or every n sols, offset in sols)
//	@ls <degrees>           each crossing of a solar longitude
//	@season                 each equinox and solstice
func Parse(spec string, log *logging.Logger) (cron.Schedule, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty schedule")
	}

	switch strings.ToLower(fields[0]) {
	case solPrefix:
		s := SolSchedule{Every: 1, Log: log}
		if len(fields) > 3 {
			return nil, fmt.Errorf("%s: too many fields in %q", solPrefix, spec)
		}
		if len(fields) > 1 {
			every, err := strconv.Atoi(fields[1])
			if err != nil || every <= 0 {
				return nil, fmt.Errorf("%s: every must be a positive integer, got %q", solPrefix, fields[1])
			}
			s.Every = every
		}
		if len(fields) > 2 {
			offset, err := strconv.ParseFloat(fields[2], 64)
			if err != nil || offset < 0 || offset >= float64(s.Every) {
				return nil, fmt.Errorf("%s: offset must be in [0, %d), got %q", solPrefix, s.Every, fields[2])
			}
			s.Offset = offset
		}
		return s, nil

	case lsPrefix:
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s: want one solar longitude, got %q", lsPrefix, spec)
		}
		ls, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || math.IsNaN(ls) || math.IsInf(ls, 0) {
			return nil, fmt.Errorf("%s: invalid solar longitude %q", lsPrefix, fields[1])
		}
		return SolarLongitudeSchedule{Ls: ls, Log: log}, nil

	case seasonPrefix:
		if len(fields) != 1 {
			return nil, fmt.Errorf("%s takes no arguments, got %q", seasonPrefix, spec)
		}
		return SeasonSchedule{Log: log}, nil
	}

	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse schedule %q: %w", spec, err)
	}
	return schedule, nil
}

// Upcoming returns the next n firings of s after from. It stops early if the
// schedule reports no further firings.
func Upcoming(s cron.Schedule, from time.Time, n int) []time.Time {
	var out []time.Time
	t := from
	for i := 0; i < n; i++ {
		next := s.Next(t)
		if next.IsZero() || !next.After(t) {
			break
		}
		out = append(out, next)
		t = next
	}
	return out
}

func logOrDiscard(l *logging.Logger) *logging.Logger {
	if l == nil {
		return logging.Discard()
	}
	return l
}
