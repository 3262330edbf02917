//go:build e2e
// +build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/harmonics/chord"
	"github.com/jsphweid/harmonics/cmd"
	"github.com/jsphweid/harmonics/constants"
	"github.com/jsphweid/harmonics/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var server *httptest.Server

func TestMain(m *testing.M) {
	cfg, err := constants.LoadConfig()
	if err != nil {
		panic(err.Error())
	}
	server = httptest.NewServer(cmd.NewHandler(cfg, chord.NewBuilder(), zap.NewNop()))

	exitVal := m.Run()

	server.Close()
	os.Exit(exitVal)
}

func getJSON(t *testing.T, path string, v any) int {
	t.Helper()
	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v))
	return resp.StatusCode
}

func TestDominantSeventhOfKeyMatchesChordE2E(t *testing.T) {
	var numeral model.NumeralResponse
	status := getJSON(t, "/keys/F/numerals/V7", &numeral)
	assert := assert.New(t)
	assert.Equal(200, status)
	assert.Equal([]string{"C", "E", "G", "Bb"}, numeral.Notes)

	var c model.ChordResponse
	status = getJSON(t, "/chords?symbol=C7", &c)
	assert.Equal(200, status)
	assert.Equal(numeral.Notes, c.Notes)
	assert.Equal("60-64-67-70", c.ChordKey)
}

func TestBadKeyE2E(t *testing.T) {
	var res model.ErrorResponse
	status := getJSON(t, "/keys/X/sevenths", &res)
	assert.Equal(t, 400, status)
	assert.Contains(t, res.Error, "invalid key")
}
