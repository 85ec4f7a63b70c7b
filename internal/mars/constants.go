// Package mars converts between UTC instants and Martian time: Mars year,
// sol of year, and solar longitude.
//
// Year boundaries come from a tabulated epoch table rather than a closed-form
// expression because the number of sols per Mars year is not constant.
package mars

import "time"

// Sol and year lengths. Values come from the NSSDC Mars fact sheet.
const (
	// SolLengthHours is the length of a Martian sol in Earth hours.
	SolLengthHours = 24.6597

	// SecondsPerDay is the length of an Earth day in SI seconds (no leap seconds).
	SecondsPerDay = 86400.0

	// SecondsPerSol is the length of a Martian sol in seconds.
	SecondsPerSol = SolLengthHours * 3600

	// SolsPerYear is the average number of sols in a Mars year.
	SolsPerYear = 686.973 * 24 / SolLengthHours

	// OrbitalEccentricity is the eccentricity of the Martian orbit.
	OrbitalEccentricity = 0.09341233
)

// Tabulated year range. MarsTime values must have a year in [MinYear, MaxYear];
// the epoch table also carries the start of MaxYear+1 so the final year has a
// known length.
const (
	MinYear = -99
	MaxYear = 99
)

// Orbit event constants. Each is the mean over Mars years -99..99, computed
// against the high-accuracy solar longitude model.
const (
	// PerihelionSol is the mean sol of perihelion.
	PerihelionSol = 484.7751442474616

	// PerihelionSolarLongitude is the mean solar longitude at perihelion.
	PerihelionSolarLongitude = 250.7003325807747

	// AphelionSol is the mean sol of aphelion.
	AphelionSol = 150.4678423253568

	// AphelionSolarLongitude is the mean solar longitude at aphelion.
	AphelionSolarLongitude = 70.69892410184094

	// NorthernSpringEquinoxSol is the sol at which Ls = 0. It is 0 by definition.
	NorthernSpringEquinoxSol = 0.0

	// NorthernSummerSolsticeSol is the mean sol at which Ls = 90.
	NorthernSummerSolsticeSol = 193.34175272577892

	// NorthernAutumnEquinoxSol is the mean sol at which Ls = 180.
	NorthernAutumnEquinoxSol = 371.7705141740778

	// NorthernWinterSolsticeSol is the mean sol at which Ls = 270.
	NorthernWinterSolsticeSol = 514.4640401184736
)

// J2000 is the reference epoch used by the solar longitude formulas.
var J2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
