// Package pipelinetest builds small round datasets for tests.
package pipelinetest

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/albapepper/cartola-scouts/internal/scout"
	"github.com/albapepper/cartola-scouts/internal/source"
)

// Header is the column set of a well-formed round file.
var Header = func() []string {
	h := []string{
		"atletas.atleta_id", "atletas.apelido", "atletas.nome", "atletas.foto",
		"atletas.clube_id", "atletas.clube.id.full.name", "atletas.posicao_id",
		"atletas.rodada_id", "atletas.status_id", "atletas.pontos_num", "atletas.media_num",
		"atletas.preco_num", "atletas.variacao_num", "atletas.minimo_para_valorizar",
		"atletas.jogos_num",
	}
	for _, c := range scout.All {
		h = append(h, string(c))
	}
	return h
}()

// Player is one row of a round. Zero-valued scouts are written as empty
// cells.
type Player struct {
	ID        int
	Name      string
	Club      string
	Position  int
	Photo     string
	Price     string
	Variation string
	Scouts    scout.Counts
}

// CSV renders players as a round file with the given header.
func CSV(round int, header []string, players ...Player) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(header)
	for _, p := range players {
		cells := map[string]string{
			"atletas.atleta_id":          fmt.Sprint(p.ID),
			"atletas.apelido":            p.Name,
			"atletas.nome":               p.Name + " Full",
			"atletas.foto":               p.Photo,
			"atletas.clube_id":           "1",
			"atletas.clube.id.full.name": p.Club,
			"atletas.posicao_id":         fmt.Sprint(p.Position),
			"atletas.rodada_id":          fmt.Sprint(round),
			"atletas.status_id":          "7",
			"atletas.preco_num":          p.Price,
			"atletas.variacao_num":       p.Variation,
			"atletas.jogos_num":          fmt.Sprint(round),
		}
		for code, v := range p.Scouts {
			if v != 0 {
				cells[string(code)] = fmt.Sprint(v)
			}
		}
		rec := make([]string, len(header))
		for i, col := range header {
			rec[i] = cells[col]
		}
		_ = w.Write(rec)
	}
	w.Flush()
	return buf.Bytes()
}

// Round decodes players into a RawRound with the full header.
func Round(round int, players ...Player) *source.RawRound {
	raw, err := source.DecodeCSV(round, bytes.NewReader(CSV(round, Header, players...)))
	if err != nil {
		panic(err)
	}
	return raw
}

// Season is a small three-round dataset covering every position, an
// unmapped position code and a player missing from one round.
func Season() []*source.RawRound {
	return []*source.RawRound{
		Round(1,
			Player{ID: 10, Name: "Keeper", Club: "Flamengo", Position: 1, Price: "8.5", Variation: "0.5",
				Scouts: scout.Counts{scout.CleanSheet: 1, scout.DifficultSave: 3}},
			Player{ID: 20, Name: "Striker", Club: "Flamengo", Position: 5, Photo: "https://img/20.png", Price: "12", Variation: "1",
				Scouts: scout.Counts{scout.Goal: 2, scout.Assist: 1, scout.ShotSaved: 2}},
			Player{ID: 30, Name: "Wingback", Club: "Palmeiras", Position: 2, Price: "6", Variation: "-0.2",
				Scouts: scout.Counts{scout.Tackle: 4, scout.FoulCommitted: 2}},
			Player{ID: 40, Name: "Mystery", Club: "Palmeiras", Position: 9, Price: "3",
				Scouts: scout.Counts{scout.Assist: 1}},
		),
		Round(2,
			Player{ID: 10, Name: "Keeper", Club: "Flamengo", Position: 1, Price: "9", Variation: "0.5",
				Scouts: scout.Counts{scout.PenaltySaved: 1, scout.GoalConceded: 1}},
			Player{ID: 20, Name: "Striker", Club: "Flamengo", Position: 5, Price: "12.5", Variation: "0.5",
				Scouts: scout.Counts{scout.Goal: 1, scout.ShotOnPost: 1, scout.YellowCard: 1}},
			Player{ID: 30, Name: "Wingback", Club: "Palmeiras", Position: 2, Price: "6.1", Variation: "0.1",
				Scouts: scout.Counts{scout.Tackle: 2, scout.Assist: 1}},
		),
		Round(3,
			Player{ID: 10, Name: "Keeper", Club: "Flamengo", Position: 1, Price: "9.2", Variation: "0.2",
				Scouts: scout.Counts{scout.CleanSheet: 1}},
			Player{ID: 20, Name: "Striker", Club: "Flamengo", Position: 5, Price: "13", Variation: "0.5",
				Scouts: scout.Counts{scout.Goal: 1}},
			Player{ID: 30, Name: "Wingback", Club: "Palmeiras", Position: 2, Price: "6.3", Variation: "0.2",
				Scouts: scout.Counts{scout.RedCard: 1}},
		),
	}
}
