package pipeline

import (
	"sort"

	"github.com/albapepper/cartola-scouts/internal/scout"
	"github.com/albapepper/cartola-scouts/internal/store"
)

// Column names of the materialized tables.
const (
	ColID               = "id"
	ColName             = "name"
	ColFullName         = "full_name"
	ColPhotoURL         = "photo_url"
	ColClubID           = "club_id"
	ColClubName         = "club_name"
	ColPositionID       = "position_id"
	ColPositionName     = "position_name"
	ColRound            = "round"
	ColStatusID         = "status_id"
	ColOfficialPoints   = "official_points"
	ColOfficialAverage  = "official_average"
	ColPrice            = "price"
	ColPriceVariation   = "price_variation"
	ColMinToAppreciate  = "min_to_appreciate"
	ColGamesAccumulated = "games_accumulated"
	ColOffenseScore     = "offense_score"
	ColDefenseScore     = "defense_score"
	ColDisciplineScore  = "discipline_score"
	ColFantasyScore     = "fantasy_score"

	ColPosition       = "position"
	ColClub           = "club"
	ColPhoto          = "photo"
	ColTotalPoints    = "total_points"
	ColAvgOffense     = "avg_offense"
	ColAvgDefense     = "avg_defense"
	ColAvgDiscipline  = "avg_discipline"
	ColGoalsTotal     = "goals_total"
	ColAssistsTotal   = "assists_total"
	ColTacklesTotal   = "tackles_total"
	ColGames          = "games"
	ColPriceChange    = "price_change"
	ColAvgFantasy     = "avg_fantasy"
	ColDangerousShots = "dangerous_shots"
)

func scoutColumns() []store.Column {
	cols := make([]store.Column, len(scout.All))
	for i, code := range scout.All {
		cols[i] = store.Column{Name: string(code), Type: store.Real}
	}
	return cols
}

var historyColumns = concat(
	[]store.Column{
		{Name: ColID, Type: store.Integer},
		{Name: ColName, Type: store.Text},
		{Name: ColFullName, Type: store.Text},
		{Name: ColPhotoURL, Type: store.Text},
		{Name: ColClubID, Type: store.Integer},
		{Name: ColClubName, Type: store.Text},
		{Name: ColPositionID, Type: store.Integer},
		{Name: ColPositionName, Type: store.Text},
		{Name: ColRound, Type: store.Integer},
		{Name: ColStatusID, Type: store.Integer},
		{Name: ColOfficialPoints, Type: store.Real},
		{Name: ColOfficialAverage, Type: store.Real},
		{Name: ColPrice, Type: store.Real},
		{Name: ColPriceVariation, Type: store.Real},
		{Name: ColMinToAppreciate, Type: store.Real},
		{Name: ColGamesAccumulated, Type: store.Integer},
	},
	scoutColumns(),
	[]store.Column{
		{Name: ColOffenseScore, Type: store.Real},
		{Name: ColDefenseScore, Type: store.Real},
		{Name: ColDisciplineScore, Type: store.Real},
		{Name: ColFantasyScore, Type: store.Real},
	},
)

var seasonColumns = concat(
	[]store.Column{
		{Name: ColID, Type: store.Integer},
		{Name: ColName, Type: store.Text},
		{Name: ColPosition, Type: store.Text},
		{Name: ColClub, Type: store.Text},
		{Name: ColPhoto, Type: store.Text},
		{Name: ColTotalPoints, Type: store.Real},
		{Name: ColAvgOffense, Type: store.Real},
		{Name: ColAvgDefense, Type: store.Real},
		{Name: ColAvgDiscipline, Type: store.Real},
	},
	scoutColumns(),
	[]store.Column{
		{Name: ColGoalsTotal, Type: store.Real},
		{Name: ColAssistsTotal, Type: store.Real},
		{Name: ColTacklesTotal, Type: store.Real},
		{Name: ColGames, Type: store.Integer},
		{Name: ColPrice, Type: store.Real},
		{Name: ColPriceChange, Type: store.Real},
		{Name: ColAvgFantasy, Type: store.Real},
	},
)

var finisherColumns = []store.Column{
	{Name: ColID, Type: store.Integer},
	{Name: ColName, Type: store.Text},
	{Name: ColClub, Type: store.Text},
	{Name: ColPosition, Type: store.Text},
	{Name: string(scout.ShotSaved), Type: store.Real},
	{Name: string(scout.ShotOnPost), Type: store.Real},
	{Name: ColDangerousShots, Type: store.Real},
}

var latestFormColumns = []store.Column{
	{Name: ColID, Type: store.Integer},
	{Name: ColName, Type: store.Text},
	{Name: ColFantasyScore, Type: store.Real},
	{Name: ColRound, Type: store.Integer},
}

func concat(parts ...[]store.Column) []store.Column {
	var out []store.Column
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Tables materializes the history, the season aggregate and every view.
// The history table comes first, then the season ranking, the named views
// and the per-position tables in label order.
func Tables(history []Record, season []SeasonRow, v Views) []store.Table {
	tables := []store.Table{
		{
			Name:    store.HistoryTable,
			Columns: historyColumns,
			Rows:    historyRows(history),
			Indexes: [][]string{{ColID}, {ColRound}},
		},
		seasonTable(store.SeasonTable, season, [][]string{{ColID}, {ColClub}}),
		seasonTable(store.TopScorersTable, v.TopScorers, nil),
		seasonTable(store.BestDefenseTable, v.BestDefense, nil),
		seasonTable(store.ValuePicksTable, v.ValuePicks, nil),
		seasonTable(store.MostPlayedTable, v.MostPlayed, nil),
		seasonTable(store.LowestRatedTable, v.LowestRated, nil),
		seasonTable(store.MostUndisciplinedTable, v.MostUndisciplined, nil),
		{
			Name:    store.TopFinishersTable,
			Columns: finisherColumns,
			Rows:    finisherRows(v.TopFinishers),
		},
		seasonTable(store.BestGoalkeepersTable, v.BestGoalkeepers, nil),
		seasonTable(store.TopAssistsTable, v.TopAssists, nil),
		{
			Name:    store.LatestFormTable,
			Columns: latestFormColumns,
			Rows:    latestFormRows(v.LatestForm),
		},
	}

	labels := make([]string, 0, len(v.ByPosition))
	for label := range v.ByPosition {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		tables = append(tables, seasonTable(scout.PositionTable(label), v.ByPosition[label], nil))
	}
	return tables
}

func historyRows(history []Record) [][]any {
	rows := make([][]any, len(history))
	for i, r := range history {
		row := make([]any, 0, len(historyColumns))
		row = append(row,
			r.ID, r.Name, nilEmpty(r.FullName), nilEmpty(r.PhotoURL),
			intOrNil(r.ClubID), r.ClubName, intOrNil(r.PositionID), r.PositionName,
			r.Round, intOrNil(r.StatusID),
			floatOrNil(r.OfficialPoints), floatOrNil(r.OfficialAverage), floatOrNil(r.Price),
			r.PriceVariation, floatOrNil(r.MinToAppreciate), intOrNil(r.GamesAccumulated),
		)
		for _, code := range scout.All {
			row = append(row, r.Scouts[code])
		}
		row = append(row, r.Scores.Offense, r.Scores.Defense, r.Scores.Discipline, r.Scores.Total)
		rows[i] = row
	}
	return rows
}

func seasonTable(name string, season []SeasonRow, indexes [][]string) store.Table {
	rows := make([][]any, len(season))
	for i, r := range season {
		row := make([]any, 0, len(seasonColumns))
		row = append(row,
			r.ID, r.Name, r.Position, r.Club, nilEmpty(r.Photo),
			r.TotalPoints, r.AvgOffense, r.AvgDefense, r.AvgDiscipline,
		)
		for _, code := range scout.All {
			row = append(row, r.MaxScouts[code])
		}
		row = append(row,
			r.MaxScouts[scout.Goal], r.MaxScouts[scout.Assist], r.MaxScouts[scout.Tackle],
			r.Games, floatOrNil(r.Price), r.PriceChange, r.AvgFantasy,
		)
		rows[i] = row
	}
	return store.Table{Name: name, Columns: seasonColumns, Rows: rows, Indexes: indexes}
}

func finisherRows(finishers []FinisherRow) [][]any {
	rows := make([][]any, len(finishers))
	for i, f := range finishers {
		rows[i] = []any{f.ID, f.Name, f.Club, f.Position, f.ShotsSaved, f.ShotsOnPost, f.DangerousShots}
	}
	return rows
}

func latestFormRows(form []Record) [][]any {
	rows := make([][]any, len(form))
	for i, r := range form {
		rows[i] = []any{r.ID, r.Name, r.Scores.Total, r.Round}
	}
	return rows
}

// nilEmpty stores empty strings as NULL.
func nilEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func intOrNil(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func floatOrNil(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
