package api

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/service"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise log dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs for API (Data Transfer Objects) ---

// AddExerciseRequest accepts a urlencoded form or JSON.
// Fields are looseText so no field content can fail binding; the service validates.
type AddExerciseRequest struct {
	Description looseText `form:"description" json:"description"`
	Duration    looseText `form:"duration" json:"duration"`
	Date        looseText `form:"date" json:"date"`
}

// looseText takes any JSON scalar as its literal text: 30 and "30" both become "30".
// null is empty.
type looseText string

func (t *looseText) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = looseText(s)
		return nil
	}
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		raw = ""
	}
	*t = looseText(raw)
	return nil
}

// LogQueryRequest holds the raw log query parameters.
type LogQueryRequest struct {
	From  string `form:"from"`
	To    string `form:"to"`
	Limit string `form:"limit"`
}

// ExerciseResponse echoes the new exercise. ID is the owning user's id,
// not the exercise's; existing clients depend on that.
type ExerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"_id"`
}

type LogEntryResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse is a user's filtered log. Count always equals len(Log).
type LogResponse struct {
	Username string             `json:"username"`
	Count    int                `json:"count"`
	ID       string             `json:"_id"`
	Log      []LogEntryResponse `json:"log"`
}

// MapExerciseToResponse converts an AddExercise result to its response DTO.
func MapExerciseToResponse(res *service.ExerciseResult) ExerciseResponse {
	return ExerciseResponse{
		Username:    res.User.Username,
		Description: res.Exercise.Description,
		Duration:    res.Exercise.Duration,
		Date:        domain.FormatDate(res.Exercise.Date),
		ID:          res.User.ID.Hex(),
	}
}

// MapLogToResponse converts an exercise log to its response DTO.
func MapLogToResponse(l *service.ExerciseLog) LogResponse {
	entries := make([]LogEntryResponse, len(l.Exercises))
	for i, ex := range l.Exercises {
		entries[i] = LogEntryResponse{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        domain.FormatDate(ex.Date),
		}
	}
	return LogResponse{
		Username: l.User.Username,
		Count:    len(entries),
		ID:       l.User.ID.Hex(),
		Log:      entries,
	}
}

// --- Handler Methods ---

// AddExercise handles POST /api/users/:_id/exercises.
func (h *ExerciseHandler) AddExercise(c *gin.Context) {
	// A body that will not decode still goes to the service, which checks the user first.
	var req AddExerciseRequest
	bindErr := c.ShouldBind(&req)

	res, err := h.exerciseService.AddExercise(c.Request.Context(), c.Param("_id"), service.AddExerciseInput{
		Description: string(req.Description),
		Duration:    string(req.Duration),
		Date:        string(req.Date),
		BodyErr:     bindErr,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapExerciseToResponse(res))
}

// GetLogs handles GET /api/users/:_id/logs?from=&to=&limit=.
func (h *ExerciseHandler) GetLogs(c *gin.Context) {
	var q LogQueryRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	logs, err := h.exerciseService.GetLogs(c.Request.Context(), c.Param("_id"), service.LogQuery{
		From:  q.From,
		To:    q.To,
		Limit: q.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapLogToResponse(logs))
}
