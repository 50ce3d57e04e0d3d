package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Pangolin/internal/dto"
	"github.com/lshigami/Pangolin/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserQuizService struct {
	mock.Mock
}

func (m *MockUserQuizService) ListPublished() ([]dto.QuizSummaryDTO, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.QuizSummaryDTO), args.Error(1)
}

type MockQuizSubmissionService struct {
	mock.Mock
}

func (m *MockQuizSubmissionService) SubmitQuiz(quizID uint, req dto.QuizSubmitDTO) (*dto.SubmissionResultDTO, error) {
	args := m.Called(quizID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SubmissionResultDTO), args.Error(1)
}

func (m *MockQuizSubmissionService) GetQuizAnalytics(quizID uint) (*dto.QuizAnalyticsDTO, error) {
	args := m.Called(quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizAnalyticsDTO), args.Error(1)
}

func setupRouter(uqs *MockUserQuizService, qss *MockQuizSubmissionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewUserQuizController(uqs, qss)

	r := gin.New()
	r.GET("/api/quizzes", ctrl.ListPublishedQuizzes)
	r.POST("/api/quizzes/:id/submit", ctrl.SubmitQuiz)
	r.GET("/api/quizzes/:id/analytics", ctrl.GetQuizAnalytics)
	return r
}

func TestListPublishedQuizzesEndpoint(t *testing.T) {
	uqs := new(MockUserQuizService)
	qss := new(MockQuizSubmissionService)
	uqs.On("ListPublished").Return([]dto.QuizSummaryDTO{
		{Title: "Animals", Description: "desc", Tags: []string{"fun"}},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quizzes", nil)
	setupRouter(uqs, qss).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body []dto.QuizSummaryDTO
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body, 1)
	assert.Equal(t, "Animals", body[0].Title)
}

func TestSubmitQuizEndpoint(t *testing.T) {
	uqs := new(MockUserQuizService)
	qss := new(MockQuizSubmissionService)

	winner := "bold"
	qss.On("SubmitQuiz", uint(7), dto.QuizSubmitDTO{Answers: []dto.SubmittedAnswerDTO{
		{QuestionID: 1, AnswerID: 1},
		{QuestionID: 2, AnswerID: 4},
	}}).Return(&dto.SubmissionResultDTO{
		Result: &winner,
		Scores: map[string]float64{"bold": 2, "shy": 1},
	}, nil)

	payload := `{"answers":[{"questionId":1,"answerId":1},{"questionId":2,"answerId":4}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quizzes/7/submit", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	setupRouter(uqs, qss).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":"bold","scores":{"bold":2,"shy":1}}`, w.Body.String())
}

func TestSubmitQuizEndpoint_NullResult(t *testing.T) {
	uqs := new(MockUserQuizService)
	qss := new(MockQuizSubmissionService)

	qss.On("SubmitQuiz", uint(7), mock.Anything).Return(&dto.SubmissionResultDTO{
		Scores: map[string]float64{},
	}, nil)

	payload := `{"answers":[{"questionId":99,"answerId":99}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quizzes/7/submit", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	setupRouter(uqs, qss).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":null,"scores":{}}`, w.Body.String())
}

func TestSubmitQuizEndpoint_BadQuizID(t *testing.T) {
	uqs := new(MockUserQuizService)
	qss := new(MockQuizSubmissionService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quizzes/abc/submit", strings.NewReader(`{"answers":[]}`))
	req.Header.Set("Content-Type", "application/json")
	setupRouter(uqs, qss).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	qss.AssertNotCalled(t, "SubmitQuiz")
}

func TestSubmitQuizEndpoint_MissingAnswers(t *testing.T) {
	uqs := new(MockUserQuizService)
	qss := new(MockQuizSubmissionService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quizzes/7/submit", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	setupRouter(uqs, qss).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	qss.AssertNotCalled(t, "SubmitQuiz")
}

func TestGetQuizAnalyticsEndpoint_NotFound(t *testing.T) {
	uqs := new(MockUserQuizService)
	qss := new(MockQuizSubmissionService)
	qss.On("GetQuizAnalytics", uint(404)).Return(nil, service.ErrAnalyticsNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quizzes/404/analytics", nil)
	setupRouter(uqs, qss).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}
