package datasource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPlayersSkipsIncompleteRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("Ocp-Apim-Subscription-Key"))
		assert.Equal(t, "/scores/json/Players", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"PlayerID": 1, "Name": "Patrick Mahomes", "Team": "KC", "Position": "QB"},
			{"PlayerID": 2, "Name": "", "Team": "KC", "Position": "WR"},
			{"PlayerID": 3, "Name": "Free Agent", "Team": "", "Position": "RB"}
		]`))
	}))
	defer server.Close()

	client := NewSportsDataClient(testClient(), server.URL, "test-key", 2024, 1, true, logrus.New())

	players, err := client.ListPlayers(context.Background())
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Patrick Mahomes", players[0].Name)
	assert.Equal(t, "1", players[0].ID)
}

func TestListInjuries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/scores/json/Injuries/2024", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"Team": "BUF", "Name": "Star Corner", "Position": "CB", "Status": "Out"}
		]`))
	}))
	defer server.Close()

	client := NewSportsDataClient(testClient(), server.URL, "test-key", 2024, 1, true, logrus.New())

	injuries, err := client.ListInjuries(context.Background(), 2024)
	require.NoError(t, err)
	require.Len(t, injuries, 1)
	assert.Equal(t, InjuryRecord{Team: "BUF", Name: "Star Corner", Position: "CB", Status: "Out"}, injuries[0])
}

func TestHeadToHead(t *testing.T) {
	responses := map[string]string{
		"/scores/json/Scores/2023": `[
			{"HomeTeam": "KC", "AwayTeam": "BUF", "HomeScore": 27, "AwayScore": 24},
			{"HomeTeam": "KC", "AwayTeam": "DAL", "HomeScore": 10, "AwayScore": 30}
		]`,
		"/scores/json/Scores/2024": `[
			{"HomeTeam": "BUF", "AwayTeam": "KC", "HomeScore": 31, "AwayScore": 17}
		]`,
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := responses[r.URL.Path]
		require.True(t, ok, "unexpected path %s", r.URL.Path)
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	client := NewSportsDataClient(testClient(), server.URL, "test-key", 2024, 1, true, logrus.New())

	record, err := client.HeadToHead(context.Background(), "KC", "BUF")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"KC": 1, "BUF": 1}, record)
}

func TestSportsDataDisabled(t *testing.T) {
	client := NewSportsDataClient(testClient(), "http://unused", "key", 2024, 1, false, logrus.New())

	_, err := client.ListPlayers(context.Background())
	assert.ErrorIs(t, err, ErrFeedDisabled)
}
