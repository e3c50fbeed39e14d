package pipeline

import (
	"errors"
	"fmt"
	"sort"

	"github.com/albapepper/cartola-scouts/internal/scout"
	"github.com/albapepper/cartola-scouts/internal/source"
)

// ErrSchema is returned when a fetched round lacks a required column.
var ErrSchema = errors.New("round dataset violates schema")

// Raw source column names.
const (
	rawID               = "atletas.atleta_id"
	rawNickname         = "atletas.apelido"
	rawFullName         = "atletas.nome"
	rawPhoto            = "atletas.foto"
	rawClubID           = "atletas.clube_id"
	rawClubName         = "atletas.clube.id.full.name"
	rawPositionID       = "atletas.posicao_id"
	rawRound            = "atletas.rodada_id"
	rawStatusID         = "atletas.status_id"
	rawPoints           = "atletas.pontos_num"
	rawAverage          = "atletas.media_num"
	rawPrice            = "atletas.preco_num"
	rawPriceVariation   = "atletas.variacao_num"
	rawMinToAppreciate  = "atletas.minimo_para_valorizar"
	rawGamesAccumulated = "atletas.jogos_num"
)

// requiredColumns must be present in every round. Scout codes only need to
// appear in at least one round of the unified dataset; a round without one
// counts it as zero.
var requiredColumns = []string{
	rawID, rawNickname, rawClubName, rawPositionID, rawRound, rawPrice, rawPriceVariation,
}

// Record is one normalized (player, round) row. Scores is zero until the
// record passes through Score. Pointer fields are optional source values
// and persist as NULL when absent.
type Record struct {
	ID               int
	Name             string
	FullName         string
	PhotoURL         string
	ClubID           *int
	ClubName         string
	PositionID       *int
	PositionName     string
	Round            int
	StatusID         *int
	OfficialPoints   *float64
	OfficialAverage  *float64
	Price            *float64
	PriceVariation   float64
	MinToAppreciate  *float64
	GamesAccumulated *int
	Scouts           scout.Counts
	Scores           scout.Scores
}

// ValidateSchema checks that a round carries every required identity column.
func ValidateSchema(raw *source.RawRound) error {
	var missing []string
	for _, col := range requiredColumns {
		if !raw.Has(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: round %d missing columns %v", ErrSchema, raw.Number, missing)
	}
	return nil
}

// ValidateScouts checks that every scout code is present in at least one of
// the rounds.
func ValidateScouts(rounds []*source.RawRound) error {
	var missing []string
	for _, code := range scout.All {
		found := false
		for _, raw := range rounds {
			if raw.Has(string(code)) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, string(code))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: scout columns absent from every round %v", ErrSchema, missing)
	}
	return nil
}

// Unify concatenates the rounds in the given order and normalizes every
// row. Rows without a parseable player id cannot be attributed to anyone
// and are counted in skipped instead. Scout columns a round lacks read as
// zero.
func Unify(rounds []*source.RawRound) (records []Record, skipped int, err error) {
	for _, raw := range rounds {
		if err := ValidateSchema(raw); err != nil {
			return nil, 0, err
		}
	}
	if err := ValidateScouts(rounds); err != nil {
		return nil, 0, err
	}
	for _, raw := range rounds {
		for i := range raw.Rows {
			rec, ok := normalizeRow(raw, i)
			if !ok {
				skipped++
				continue
			}
			records = append(records, rec)
		}
	}
	return records, skipped, nil
}

func normalizeRow(raw *source.RawRound, i int) (Record, bool) {
	id, ok := source.Int(raw.Cell(i, rawID))
	if !ok {
		return Record{}, false
	}

	positionID := optInt(raw.Cell(i, rawPositionID))
	label := scout.Unknown
	if positionID != nil {
		label = scout.PositionLabel(*positionID)
	}

	round, ok := source.Int(raw.Cell(i, rawRound))
	if !ok {
		round = raw.Number
	}

	counts := make(scout.Counts, len(scout.All))
	for _, code := range scout.All {
		v, _ := source.Number(raw.Cell(i, string(code)))
		counts[code] = v
	}

	variation, _ := source.Number(raw.Cell(i, rawPriceVariation))

	return Record{
		ID:               id,
		Name:             raw.Cell(i, rawNickname),
		FullName:         raw.Cell(i, rawFullName),
		PhotoURL:         raw.Cell(i, rawPhoto),
		ClubID:           optInt(raw.Cell(i, rawClubID)),
		ClubName:         raw.Cell(i, rawClubName),
		PositionID:       positionID,
		PositionName:     label,
		Round:            round,
		StatusID:         optInt(raw.Cell(i, rawStatusID)),
		OfficialPoints:   optFloat(raw.Cell(i, rawPoints)),
		OfficialAverage:  optFloat(raw.Cell(i, rawAverage)),
		Price:            optFloat(raw.Cell(i, rawPrice)),
		PriceVariation:   variation,
		MinToAppreciate:  optFloat(raw.Cell(i, rawMinToAppreciate)),
		GamesAccumulated: optInt(raw.Cell(i, rawGamesAccumulated)),
		Scouts:           counts,
	}, true
}

// Score returns a copy of records with the derived score columns filled.
func Score(records []Record) []Record {
	scored := make([]Record, len(records))
	for i, r := range records {
		r.Scores = scout.Score(r.Scouts)
		scored[i] = r
	}
	return scored
}

func optInt(cell string) *int {
	if v, ok := source.Int(cell); ok {
		return &v
	}
	return nil
}

func optFloat(cell string) *float64 {
	if v, ok := source.Number(cell); ok {
		return &v
	}
	return nil
}
