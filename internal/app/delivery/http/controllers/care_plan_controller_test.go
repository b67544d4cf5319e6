package controllers

import (
	"bytes"
	"careplan-service/internal/app/models"
	"careplan-service/internal/pkg/constvars"
	"careplan-service/internal/pkg/dto/requests"
	"careplan-service/internal/pkg/dto/responses"
	"careplan-service/internal/pkg/exceptions"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCarePlanUsecase struct {
	createCarePlanFn func(ctx context.Context, request *requests.CreateCarePlan) (uint64, error)
	addCareGoalFn    func(ctx context.Context, request *requests.AddCareGoal) (uint64, error)
	summaryFn        func(ctx context.Context, request *requests.GetCarePlanSummary) (*models.CarePlanSummary, error)
}

func (s *stubCarePlanUsecase) CreateCarePlan(ctx context.Context, request *requests.CreateCarePlan) (uint64, error) {
	return s.createCarePlanFn(ctx, request)
}

func (s *stubCarePlanUsecase) AddCareGoal(ctx context.Context, request *requests.AddCareGoal) (uint64, error) {
	return s.addCareGoalFn(ctx, request)
}

func (s *stubCarePlanUsecase) AddIntervention(ctx context.Context, request *requests.AddIntervention) (uint64, error) {
	return 0, nil
}

func (s *stubCarePlanUsecase) RecordGoalProgress(ctx context.Context, request *requests.RecordGoalProgress) error {
	return nil
}

func (s *stubCarePlanUsecase) MarkGoalAchieved(ctx context.Context, request *requests.MarkGoalAchieved) error {
	return nil
}

func (s *stubCarePlanUsecase) AddBarrier(ctx context.Context, request *requests.AddBarrier) (uint64, error) {
	return 0, nil
}

func (s *stubCarePlanUsecase) ResolveBarrier(ctx context.Context, request *requests.ResolveBarrier) error {
	return nil
}

func (s *stubCarePlanUsecase) ScheduleCarePlanReview(ctx context.Context, request *requests.ScheduleCarePlanReview) (uint64, error) {
	return 0, nil
}

func (s *stubCarePlanUsecase) ConductCarePlanReview(ctx context.Context, request *requests.ConductCarePlanReview) error {
	return nil
}

func (s *stubCarePlanUsecase) AssignCareTeamMember(ctx context.Context, request *requests.AssignCareTeamMember) error {
	return nil
}

func (s *stubCarePlanUsecase) GetCarePlanSummary(ctx context.Context, request *requests.GetCarePlanSummary) (*models.CarePlanSummary, error) {
	return s.summaryFn(ctx, request)
}

func newTestController(usecase *stubCarePlanUsecase) *CarePlanController {
	return &CarePlanController{
		Log:             zap.NewNop(),
		CarePlanUsecase: usecase,
	}
}

func withRequestID(req *http.Request) *http.Request {
	ctx := context.WithValue(req.Context(), constvars.CONTEXT_REQUEST_ID_KEY, "test-request-id")
	return req.WithContext(ctx)
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) responses.ResponseDTO {
	t.Helper()
	var envelope responses.ResponseDTO
	require.NoError(t, json.NewDecoder(body).Decode(&envelope))
	return envelope
}

func TestCreateCarePlanHandler(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		var captured *requests.CreateCarePlan
		ctrl := newTestController(&stubCarePlanUsecase{
			createCarePlanFn: func(ctx context.Context, request *requests.CreateCarePlan) (uint64, error) {
				captured = request
				return 7, nil
			},
		})

		body := []byte(`{
			"patient_id": "Patient/alice",
			"provider_id": "Practitioner/bob",
			"plan_type": "chronic_disease",
			"start_date": 1000,
			"review_frequency_days": 7
		}`)
		req := withRequestID(httptest.NewRequest("POST", "/care-plans", bytes.NewReader(body)))
		rr := httptest.NewRecorder()
		ctrl.CreateCarePlan(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		require.NotNil(t, captured)
		assert.Equal(t, "Patient/alice", captured.PatientID)

		envelope := decodeEnvelope(t, rr.Body)
		assert.True(t, envelope.Success)
		assert.Equal(t, constvars.CreateCarePlanSuccessMessage, envelope.Message)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		ctrl := newTestController(&stubCarePlanUsecase{})

		req := withRequestID(httptest.NewRequest("POST", "/care-plans", bytes.NewReader([]byte("{not json"))))
		rr := httptest.NewRecorder()
		ctrl.CreateCarePlan(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		envelope := decodeEnvelope(t, rr.Body)
		assert.False(t, envelope.Success)
	})

	t.Run("validation failure", func(t *testing.T) {
		ctrl := newTestController(&stubCarePlanUsecase{})

		// plan_type outside the enum, patient_id not a principal ref
		body := []byte(`{
			"patient_id": "not a ref",
			"provider_id": "Practitioner/bob",
			"plan_type": "experimental",
			"start_date": 1000,
			"review_frequency_days": 7
		}`)
		req := withRequestID(httptest.NewRequest("POST", "/care-plans", bytes.NewReader(body)))
		rr := httptest.NewRecorder()
		ctrl.CreateCarePlan(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing request id", func(t *testing.T) {
		ctrl := newTestController(&stubCarePlanUsecase{})

		req := httptest.NewRequest("POST", "/care-plans", bytes.NewReader([]byte("{}")))
		rr := httptest.NewRecorder()
		ctrl.CreateCarePlan(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestAddCareGoalHandler(t *testing.T) {
	newRouter := func(ctrl *CarePlanController) *chi.Mux {
		router := chi.NewRouter()
		router.Post("/care-plans/{care_plan_id}/goals", func(w http.ResponseWriter, r *http.Request) {
			ctrl.AddCareGoal(w, withRequestID(r))
		})
		return router
	}

	t.Run("takes the plan id from the URL", func(t *testing.T) {
		var captured *requests.AddCareGoal
		ctrl := newTestController(&stubCarePlanUsecase{
			addCareGoalFn: func(ctx context.Context, request *requests.AddCareGoal) (uint64, error) {
				captured = request
				return 3, nil
			},
		})

		body := []byte(`{
			"provider_id": "Practitioner/bob",
			"goal_description": "walk daily",
			"target_date": 3000000,
			"priority": "high"
		}`)
		req := httptest.NewRequest("POST", "/care-plans/42/goals", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		newRouter(ctrl).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		require.NotNil(t, captured)
		assert.Equal(t, uint64(42), captured.CarePlanID)
	})

	t.Run("rejects a non-numeric plan id", func(t *testing.T) {
		ctrl := newTestController(&stubCarePlanUsecase{})

		req := httptest.NewRequest("POST", "/care-plans/abc/goals", bytes.NewReader([]byte("{}")))
		rr := httptest.NewRecorder()
		newRouter(ctrl).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("propagates domain errors", func(t *testing.T) {
		ctrl := newTestController(&stubCarePlanUsecase{
			addCareGoalFn: func(ctx context.Context, request *requests.AddCareGoal) (uint64, error) {
				return 0, exceptions.ErrCarePlanNotFound(request.CarePlanID)
			},
		})

		body := []byte(`{
			"provider_id": "Practitioner/bob",
			"goal_description": "walk daily",
			"target_date": 3000000,
			"priority": "high"
		}`)
		req := httptest.NewRequest("POST", "/care-plans/42/goals", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		newRouter(ctrl).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		envelope := decodeEnvelope(t, rr.Body)
		assert.False(t, envelope.Success)
		assert.Equal(t, constvars.ErrClientCarePlanNotFound, envelope.Message)
	})
}

func TestGetCarePlanSummaryHandler(t *testing.T) {
	router := func(ctrl *CarePlanController) *chi.Mux {
		r := chi.NewRouter()
		r.Get("/care-plans/{care_plan_id}/summary", func(w http.ResponseWriter, req *http.Request) {
			ctx := context.WithValue(req.Context(), constvars.CONTEXT_PRINCIPAL_KEY, "Practitioner/bob")
			ctrl.GetCarePlanSummary(w, withRequestID(req.WithContext(ctx)))
		})
		return r
	}

	t.Run("returns the summary for the proven principal", func(t *testing.T) {
		var captured *requests.GetCarePlanSummary
		ctrl := newTestController(&stubCarePlanUsecase{
			summaryFn: func(ctx context.Context, request *requests.GetCarePlanSummary) (*models.CarePlanSummary, error) {
				captured = request
				return &models.CarePlanSummary{CarePlanID: request.CarePlanID, PatientID: "Patient/alice"}, nil
			},
		})

		req := httptest.NewRequest("GET", "/care-plans/9/summary", nil)
		rr := httptest.NewRecorder()
		router(ctrl).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, captured)
		assert.Equal(t, uint64(9), captured.CarePlanID)
		assert.Equal(t, "Practitioner/bob", captured.Requester)
	})
}
