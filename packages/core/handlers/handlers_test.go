package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"futsim-api/packages/core"
	"futsim-api/packages/core/models"
	"futsim-api/packages/core/testdb"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type server struct {
	db     *gorm.DB
	router *gin.Engine
	module *core.Module
}

func newServer(t *testing.T) *server {
	gin.SetMode(gin.TestMode)

	db := testdb.New(t)
	m := core.NewModule(db, core.Options{})
	r := gin.New()
	m.SetupRoutes(r)

	return &server{db: db, router: r, module: m}
}

func (s *server) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.Nil(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (s *server) championship(t *testing.T, name, format string) models.Championship {
	t.Helper()
	w := s.do(t, http.MethodPost, "/championships", models.CreateChampionshipRequest{Name: name, Format: format})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.Championship](t, w)
}

func (s *server) addTeam(t *testing.T, championshipID uint, name string, w, d, l, gf, ga int) models.Team {
	t.Helper()
	resp := s.do(t, http.MethodPost, fmt.Sprintf("/championships/%d/teams", championshipID), models.TeamFormRequest{
		Name:         name,
		Wins:         fmt.Sprint(w),
		Draws:        fmt.Sprint(d),
		Losses:       fmt.Sprint(l),
		GoalsFor:     fmt.Sprint(gf),
		GoalsAgainst: fmt.Sprint(ga),
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var body struct {
		Team models.Team `json:"team"`
	}
	require.Nil(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body.Team
}
