package pipeline

import (
	"sort"

	"github.com/albapepper/cartola-scouts/internal/scout"
)

// SeasonRow is one player's rollup across every available round.
type SeasonRow struct {
	ID       int
	Name     string
	Position string
	Club     string
	Photo    string

	TotalPoints   float64
	AvgOffense    float64
	AvgDefense    float64
	AvgDiscipline float64
	// MaxScouts holds the best single-round count of each scout.
	MaxScouts   scout.Counts
	Games       int
	Price       *float64
	PriceChange float64
	AvgFantasy  float64
}

type playerKey struct {
	id       int
	name     string
	position string
	club     string
}

type accumulator struct {
	row        SeasonRow
	sumFantasy float64
	sumOffense float64
	sumDefense float64
	sumDisc    float64
	sumChange  float64
}

// AggregateSeason groups scored history by (id, name, position, club) and
// returns one row per group ordered by average fantasy points, highest
// first, ties broken by player id. Groups keep first-appearance order
// otherwise.
func AggregateSeason(history []Record) []SeasonRow {
	index := make(map[playerKey]int)
	var accs []*accumulator

	for _, r := range history {
		key := playerKey{r.ID, r.Name, r.PositionName, r.ClubName}
		i, ok := index[key]
		if !ok {
			i = len(accs)
			index[key] = i
			accs = append(accs, &accumulator{row: SeasonRow{
				ID:        r.ID,
				Name:      r.Name,
				Position:  r.PositionName,
				Club:      r.ClubName,
				MaxScouts: make(scout.Counts, len(scout.All)),
			}})
		}
		a := accs[i]

		if a.row.Photo == "" && r.PhotoURL != "" {
			a.row.Photo = r.PhotoURL
		}
		if a.row.Games == 0 {
			for _, code := range scout.All {
				a.row.MaxScouts[code] = r.Scouts[code]
			}
		} else {
			for _, code := range scout.All {
				if v := r.Scouts[code]; v > a.row.MaxScouts[code] {
					a.row.MaxScouts[code] = v
				}
			}
		}
		a.row.Games++
		a.sumFantasy += r.Scores.Total
		a.sumOffense += r.Scores.Offense
		a.sumDefense += r.Scores.Defense
		a.sumDisc += r.Scores.Discipline
		a.sumChange += r.PriceVariation
		if r.Price != nil {
			p := *r.Price
			a.row.Price = &p
		}
	}

	rows := make([]SeasonRow, 0, len(accs))
	for _, a := range accs {
		avg, ok := perGame(a.sumFantasy, a.row.Games)
		if !ok {
			continue
		}
		row := a.row
		n := float64(row.Games)
		row.TotalPoints = scout.Round2(a.sumFantasy)
		row.AvgOffense = scout.Round2(a.sumOffense / n)
		row.AvgDefense = scout.Round2(a.sumDefense / n)
		row.AvgDiscipline = scout.Round2(a.sumDisc / n)
		row.PriceChange = scout.Round2(a.sumChange)
		row.AvgFantasy = avg
		for _, code := range scout.All {
			row.MaxScouts[code] = scout.Round2(row.MaxScouts[code])
		}
		if row.Price != nil {
			p := scout.Round2(*row.Price)
			row.Price = &p
		}
		rows = append(rows, row)
	}

	sortSeason(rows, func(r SeasonRow) float64 { return r.AvgFantasy }, true)
	return rows
}

// perGame is total/games rounded to 2 decimals. ok is false when the player
// has no rounds, in which case the row is not emitted.
func perGame(total float64, games int) (float64, bool) {
	if games <= 0 {
		return 0, false
	}
	return scout.Round2(total / float64(games)), true
}

// sortSeason orders rows by key (descending when desc) with player id
// ascending as the tie-break. The sort is stable.
func sortSeason(rows []SeasonRow, key func(SeasonRow) float64, desc bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		ki, kj := key(rows[i]), key(rows[j])
		if ki != kj {
			if desc {
				return ki > kj
			}
			return ki < kj
		}
		return rows[i].ID < rows[j].ID
	})
}
