package birthyear

import "bikeshare/domain/business/modecounter"

// BirthYearAccumulator struct that collects the birth years of the users
// + earliest: smallest birth year seen
// + mostRecent: greatest birth year seen
// + years: occurrences of each birth year
type BirthYearAccumulator struct {
	earliest   int
	mostRecent int
	years      *modecounter.ModeCounter[int]
}

func NewBirthYearAccumulator() *BirthYearAccumulator {
	return &BirthYearAccumulator{
		years: modecounter.New[int](),
	}
}

func (ba *BirthYearAccumulator) UpdateAccumulator(year int) {
	if ba.years.Total() == 0 || year < ba.earliest {
		ba.earliest = year
	}
	if ba.years.Total() == 0 || year > ba.mostRecent {
		ba.mostRecent = year
	}
	ba.years.UpdateCounter(year)
}

// IsEmpty returns true if no birth year was collected
func (ba *BirthYearAccumulator) IsEmpty() bool {
	return ba.years.Total() == 0
}

func (ba *BirthYearAccumulator) GetEarliest() int {
	return ba.earliest
}

func (ba *BirthYearAccumulator) GetMostRecent() int {
	return ba.mostRecent
}

// GetMostCommon returns the most frequent birth year, the earliest one on ties
func (ba *BirthYearAccumulator) GetMostCommon() int {
	year, _, _ := ba.years.Mode()
	return year
}
