package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"octofit.backend/internal/infrastructure/models"
	"octofit.backend/internal/infrastructure/repositories"
	"octofit.backend/internal/usecases"
)

type testAPI struct {
	t           *testing.T
	router      *gin.Engine
	db          *gorm.DB
	leaderboard *usecases.LeaderboardUsecase
}

func plainHasher(p string) (string, error) { return "hashed:" + p, nil }

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	teamRepo := repositories.NewTeamRepository(db)
	userRepo := repositories.NewUserRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	leaderboardRepo := repositories.NewLeaderboardRepository(db)
	workoutRepo := repositories.NewWorkoutRepository(db)
	uow := repositories.NewUnitOfWork(db)

	leaderboard := usecases.NewLeaderboardUsecase(leaderboardRepo, userRepo, teamRepo, activityRepo, uow, nil, time.Minute)

	teams := NewTeamHandler(usecases.NewTeamUsecase(teamRepo))
	users := NewUserHandler(usecases.NewUserUsecase(userRepo, plainHasher))
	activities := NewActivityHandler(usecases.NewActivityUsecase(activityRepo))
	board := NewLeaderboardHandler(leaderboard)
	workouts := NewWorkoutHandler(usecases.NewWorkoutUsecase(workoutRepo))
	root := NewRootHandler("", nil)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/", root.APIIndex)
	mount(api, "/teams", teams.ListTeams, teams.CreateTeam, teams.GetTeam, teams.UpdateTeam, teams.DeleteTeam)
	mount(api, "/users", users.ListUsers, users.CreateUser, users.GetUser, users.UpdateUser, users.DeleteUser)
	mount(api, "/activities", activities.ListActivities, activities.CreateActivity, activities.GetActivity, activities.UpdateActivity, activities.DeleteActivity)
	mount(api, "/leaderboard", board.ListLeaderboard, board.CreateEntry, board.GetEntry, board.UpdateEntry, board.DeleteEntry)
	mount(api, "/workouts", workouts.ListWorkouts, workouts.CreateWorkout, workouts.GetWorkout, workouts.UpdateWorkout, workouts.DeleteWorkout)

	return &testAPI{t: t, router: r, db: db, leaderboard: leaderboard}
}

func mount(g *gin.RouterGroup, path string, list, create, get, update, del gin.HandlerFunc) {
	g.GET(path+"/", list)
	g.POST(path+"/", create)
	g.GET(path+"/:id/", get)
	g.PUT(path+"/:id/", update)
	g.PATCH(path+"/:id/", update)
	g.DELETE(path+"/:id/", del)
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// create posts body and returns the decoded representation.
func (a *testAPI) create(path, body string) map[string]interface{} {
	a.t.Helper()
	w := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decodeObject(a.t, w)
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func fieldErrors(t *testing.T, w *httptest.ResponseRecorder) map[string][]string {
	t.Helper()
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	var body struct {
		Code   string              `json:"code"`
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "VALIDATION_ERROR", body.Code)
	return body.Errors
}

func idOf(obj map[string]interface{}) string {
	return fmt.Sprintf("%.0f", obj["id"].(float64))
}
