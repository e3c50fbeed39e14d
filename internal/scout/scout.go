// Package scout holds the Cartola scoring rules: scout codes, their point
// weights, the category each one belongs to, and the position lookup.
//
// Everything here is static. The tables are validated once at init so a bad
// edit fails the binary at startup rather than skewing a season of scores.
package scout

import (
	"fmt"
	"math"
)

// Code is a single in-match event category (goal, assist, tackle, ...).
type Code string

const (
	Goal            Code = "G"
	Assist          Code = "A"
	ShotOnPost      Code = "FT"
	ShotSaved       Code = "FD"
	ShotWide        Code = "FF"
	FoulSuffered    Code = "FS"
	PenaltyWon      Code = "PS"
	Tackle          Code = "DS"
	CleanSheet      Code = "SG"
	DifficultSave   Code = "DE"
	PenaltySaved    Code = "DP"
	OwnGoal         Code = "GC"
	RedCard         Code = "CV"
	YellowCard      Code = "CA"
	GoalConceded    Code = "GS"
	FoulCommitted   Code = "FC"
	PenaltyConceded Code = "PC"
	Offside         Code = "I"
	PenaltyMissed   Code = "PP"
)

// Category groups scout codes for the derived score columns.
type Category string

const (
	Offense    Category = "offense"
	Defense    Category = "defense"
	Discipline Category = "discipline"
)

// Weights is the point value of one occurrence of each scout.
var Weights = map[Code]float64{
	Goal: 8.0, Assist: 5.0, ShotOnPost: 3.0, ShotSaved: 1.2, ShotWide: 0.8, FoulSuffered: 0.5, PenaltyWon: 1.0,
	Tackle: 1.2, CleanSheet: 5.0, DifficultSave: 1.0, PenaltySaved: 7.0,
	OwnGoal: -3.0, RedCard: -3.0, YellowCard: -1.0, GoalConceded: -1.0,
	FoulCommitted: -0.3, PenaltyConceded: -1.0, Offside: -0.1, PenaltyMissed: -4.0,
}

// Categories lists the scouts summed into each derived score. The three
// sets are disjoint and together cover every key of Weights.
var Categories = map[Category][]Code{
	Offense:    {Goal, Assist, ShotOnPost, ShotSaved, ShotWide, FoulSuffered, PenaltyWon},
	Defense:    {Tackle, CleanSheet, DifficultSave, PenaltySaved},
	Discipline: {OwnGoal, RedCard, YellowCard, GoalConceded, FoulCommitted, PenaltyConceded, Offside, PenaltyMissed},
}

// All is every scout code in column order: offense, defense, discipline.
var All = func() []Code {
	codes := make([]Code, 0, len(Weights))
	for _, cat := range []Category{Offense, Defense, Discipline} {
		codes = append(codes, Categories[cat]...)
	}
	return codes
}()

func init() {
	if err := validate(); err != nil {
		panic(err)
	}
}

// validate checks that categories partition the weight table exactly.
func validate() error {
	seen := make(map[Code]Category, len(Weights))
	for cat, codes := range Categories {
		for _, c := range codes {
			if prev, dup := seen[c]; dup {
				return fmt.Errorf("scout %s in both %s and %s", c, prev, cat)
			}
			if _, ok := Weights[c]; !ok {
				return fmt.Errorf("scout %s in %s has no weight", c, cat)
			}
			seen[c] = cat
		}
	}
	if len(seen) != len(Weights) {
		return fmt.Errorf("%d weighted scouts but %d categorized", len(Weights), len(seen))
	}
	return nil
}

// Counts maps scout code to the number of occurrences in one round.
// Absent codes count as zero.
type Counts map[Code]float64

// Scores are the derived fantasy columns of one scored record.
type Scores struct {
	Offense    float64
	Defense    float64
	Discipline float64
	Total      float64
}

// Score computes the weighted category sums for one round. Each category is
// rounded to 2 decimals and Total is the rounded sum of the three, so
// Total == Offense + Defense + Discipline holds after rounding.
func Score(c Counts) Scores {
	s := Scores{
		Offense:    Round2(weighted(c, Offense)),
		Defense:    Round2(weighted(c, Defense)),
		Discipline: Round2(weighted(c, Discipline)),
	}
	s.Total = Round2(s.Offense + s.Defense + s.Discipline)
	return s
}

func weighted(c Counts, cat Category) float64 {
	var sum float64
	for _, code := range Categories[cat] {
		sum += c[code] * Weights[code]
	}
	return sum
}

// Round2 rounds half away from zero to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
