package pipeline

import (
	"sort"

	"github.com/albapepper/cartola-scouts/internal/scout"
)

// Leaderboards holds the thresholds and sizes of the named views.
type Leaderboards struct {
	TopLimit            int
	MostPlayedLimit     int
	GoalkeepersLimit    int
	ValueMinAverage     float64
	ValueMaxPrice       float64
	LowestRatedMinGames int
	DefensePositions    []string
}

// DefaultLeaderboards returns the stock view settings.
func DefaultLeaderboards() Leaderboards {
	return Leaderboards{
		TopLimit:            20,
		MostPlayedLimit:     30,
		GoalkeepersLimit:    15,
		ValueMinAverage:     5,
		ValueMaxPrice:       10,
		LowestRatedMinGames: 3,
		DefensePositions:    []string{scout.Goalkeeper, scout.Defender, scout.Fullback},
	}
}

// FinisherRow counts shots that forced a save or hit the post.
type FinisherRow struct {
	ID             int
	Name           string
	Club           string
	Position       string
	ShotsSaved     float64
	ShotsOnPost    float64
	DangerousShots float64
}

// Views is every named projection derived from the history and the
// season aggregate. None depends on another.
type Views struct {
	TopScorers        []SeasonRow
	BestDefense       []SeasonRow
	ValuePicks        []SeasonRow
	MostPlayed        []SeasonRow
	LowestRated       []SeasonRow
	MostUndisciplined []SeasonRow
	TopFinishers      []FinisherRow
	BestGoalkeepers   []SeasonRow
	TopAssists        []SeasonRow
	LatestForm        []Record
	// ByPosition is keyed by position label; Unknown is never present.
	ByPosition map[string][]SeasonRow
}

// BuildViews derives the leaderboards. season must be the output of
// AggregateSeason.
func BuildViews(history []Record, season []SeasonRow, lb Leaderboards) Views {
	defense := make(map[string]bool, len(lb.DefensePositions))
	for _, p := range lb.DefensePositions {
		defense[p] = true
	}

	v := Views{
		TopScorers: ranked(season, nil, goals, true, lb.TopLimit),
		BestDefense: ranked(season, func(r SeasonRow) bool { return defense[r.Position] },
			func(r SeasonRow) float64 { return r.AvgDefense }, true, lb.TopLimit),
		ValuePicks: ranked(season, func(r SeasonRow) bool {
			return r.AvgFantasy > lb.ValueMinAverage && r.Price != nil && *r.Price < lb.ValueMaxPrice
		}, avgFantasy, true, 0),
		MostPlayed: ranked(season, nil, func(r SeasonRow) float64 { return float64(r.Games) }, true, lb.MostPlayedLimit),
		LowestRated: ranked(season, func(r SeasonRow) bool { return r.Games >= lb.LowestRatedMinGames },
			avgFantasy, false, lb.TopLimit),
		MostUndisciplined: ranked(season, nil, func(r SeasonRow) float64 { return r.AvgDiscipline }, false, lb.TopLimit),
		TopFinishers:      topFinishers(history, lb.TopLimit),
		BestGoalkeepers: ranked(season, func(r SeasonRow) bool { return r.Position == scout.Goalkeeper },
			func(r SeasonRow) float64 { return r.AvgDefense }, true, lb.GoalkeepersLimit),
		TopAssists: ranked(season, nil, func(r SeasonRow) float64 { return r.MaxScouts[scout.Assist] }, true, lb.TopLimit),
		LatestForm: latestForm(history),
		ByPosition: make(map[string][]SeasonRow),
	}

	for _, r := range season {
		if !scout.Known(r.Position) {
			continue
		}
		v.ByPosition[r.Position] = append(v.ByPosition[r.Position], r)
	}
	for pos, rows := range v.ByPosition {
		sortSeason(rows, avgFantasy, true)
		v.ByPosition[pos] = rows
	}
	return v
}

func goals(r SeasonRow) float64      { return r.MaxScouts[scout.Goal] }
func avgFantasy(r SeasonRow) float64 { return r.AvgFantasy }

// ranked filters, sorts and truncates a copy of season. limit <= 0 keeps
// every row.
func ranked(season []SeasonRow, keep func(SeasonRow) bool, key func(SeasonRow) float64, desc bool, limit int) []SeasonRow {
	out := make([]SeasonRow, 0, len(season))
	for _, r := range season {
		if keep == nil || keep(r) {
			out = append(out, r)
		}
	}
	sortSeason(out, key, desc)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// topFinishers sums saved and on-post shots per player over the history.
func topFinishers(history []Record, limit int) []FinisherRow {
	type key struct {
		id       int
		name     string
		club     string
		position string
	}
	index := make(map[key]int)
	var rows []FinisherRow
	for _, r := range history {
		k := key{r.ID, r.Name, r.ClubName, r.PositionName}
		i, ok := index[k]
		if !ok {
			i = len(rows)
			index[k] = i
			rows = append(rows, FinisherRow{ID: r.ID, Name: r.Name, Club: r.ClubName, Position: r.PositionName})
		}
		rows[i].ShotsSaved += r.Scouts[scout.ShotSaved]
		rows[i].ShotsOnPost += r.Scouts[scout.ShotOnPost]
	}
	for i := range rows {
		rows[i].ShotsSaved = scout.Round2(rows[i].ShotsSaved)
		rows[i].ShotsOnPost = scout.Round2(rows[i].ShotsOnPost)
		rows[i].DangerousShots = scout.Round2(rows[i].ShotsSaved + rows[i].ShotsOnPost)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].DangerousShots != rows[j].DangerousShots {
			return rows[i].DangerousShots > rows[j].DangerousShots
		}
		return rows[i].ID < rows[j].ID
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// latestForm returns the rows of the most recent round, best score first.
func latestForm(history []Record) []Record {
	if len(history) == 0 {
		return nil
	}
	latest := history[0].Round
	for _, r := range history {
		if r.Round > latest {
			latest = r.Round
		}
	}
	var out []Record
	for _, r := range history {
		if r.Round == latest {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Scores.Total != out[j].Scores.Total {
			return out[i].Scores.Total > out[j].Scores.Total
		}
		return out[i].ID < out[j].ID
	})
	return out
}
