package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "\ufeff,atletas.atleta_id,atletas.apelido,G,A\n" +
	"0,101,Hulk,2,1\n" +
	"1,102,Arrascaeta,,NA\n" +
	"2,103,Short\n"

func TestDecodeCSV(t *testing.T) {
	rr, err := DecodeCSV(3, strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, 3, rr.Number)
	assert.Len(t, rr.Rows, 3)
	assert.True(t, rr.Has("atletas.atleta_id"))
	assert.True(t, rr.Has(""), "BOM must be stripped from the index column")
	assert.False(t, rr.Has("DS"))

	assert.Equal(t, "Hulk", rr.Cell(0, "atletas.apelido"))
	assert.Equal(t, "", rr.Cell(2, "A"), "short rows are padded")
	assert.Equal(t, "", rr.Cell(0, "missing"))
}

func TestDecodeCSV_Empty(t *testing.T) {
	_, err := DecodeCSV(1, strings.NewReader(""))
	assert.Error(t, err)
}

func TestNumber(t *testing.T) {
	for _, cell := range []string{"", "NA", "nan", "None", "abc"} {
		_, ok := Number(cell)
		assert.False(t, ok, "cell %q", cell)
	}
	v, ok := Number(" 12.5 ")
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)

	n, ok := Int("7.0")
	assert.True(t, ok)
	assert.Equal(t, 7, n)
}

func TestClientFetchRound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data/rodada-1.csv":
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write([]byte(sampleCSV))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/data/", 0, 5*time.Second, nil)
	assert.Equal(t, srv.URL+"/data/rodada-2.csv", c.RoundURL(2))

	rr, err := c.FetchRound(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, rr.Number)
	assert.Len(t, rr.Rows, 3)

	_, err = c.FetchRound(context.Background(), 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
