package controllers

import (
	"careplan-service/internal/app/contracts"
	"careplan-service/internal/pkg/constvars"
	"careplan-service/internal/pkg/dto/requests"
	"careplan-service/internal/pkg/dto/responses"
	"careplan-service/internal/pkg/exceptions"
	"careplan-service/internal/pkg/utils"
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const handlerTimeout = 10 * time.Second

type CarePlanController struct {
	Log             *zap.Logger
	CarePlanUsecase contracts.CarePlanUsecase
}

var (
	carePlanControllerInstance *CarePlanController
	onceCarePlanController     sync.Once
)

func NewCarePlanController(logger *zap.Logger, carePlanUsecase contracts.CarePlanUsecase) *CarePlanController {
	onceCarePlanController.Do(func() {
		carePlanControllerInstance = &CarePlanController{
			Log:             logger,
			CarePlanUsecase: carePlanUsecase,
		}
	})
	return carePlanControllerInstance
}

func (ctrl *CarePlanController) requestID(w http.ResponseWriter, r *http.Request, handlerName string) (string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CarePlanController." + handlerName + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	ctrl.Log.Info("CarePlanController."+handlerName+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return requestID, true
}

func (ctrl *CarePlanController) decodeAndValidate(w http.ResponseWriter, r *http.Request, requestID string, request interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("CarePlanController error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return false
	}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("CarePlanController validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return false
	}
	return true
}

func (ctrl *CarePlanController) writeUsecaseError(w http.ResponseWriter, requestID, handlerName string, err error) {
	ctrl.Log.Error("CarePlanController."+handlerName+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if err == context.DeadlineExceeded {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}

func (ctrl *CarePlanController) CreateCarePlan(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "CreateCarePlan")
	if !ok {
		return
	}

	request := new(requests.CreateCarePlan)
	if !ctrl.decodeAndValidate(w, r, requestID, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	carePlanID, err := ctrl.CarePlanUsecase.CreateCarePlan(ctx, request)
	if err != nil {
		ctrl.writeUsecaseError(w, requestID, "CreateCarePlan", err)
		return
	}

	ctrl.Log.Info("CarePlanController.CreateCarePlan succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64(constvars.LoggingCarePlanIDKey, carePlanID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCarePlanSuccessMessage, responses.CarePlanCreated{CarePlanID: carePlanID})
}

func (ctrl *CarePlanController) AddCareGoal(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "AddCareGoal")
	if !ok {
		return
	}

	carePlanID, err := utils.ParseIDURLParam(r, constvars.URLParamCarePlanID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.AddCareGoal)
	if !ctrl.decodeAndValidate(w, r, requestID, request) {
		return
	}
	request.CarePlanID = carePlanID

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	goalID, err := ctrl.CarePlanUsecase.AddCareGoal(ctx, request)
	if err != nil {
		ctrl.writeUsecaseError(w, requestID, "AddCareGoal", err)
		return
	}

	ctrl.Log.Info("CarePlanController.AddCareGoal succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64(constvars.LoggingGoalIDKey, goalID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AddCareGoalSuccessMessage, responses.CareGoalAdded{GoalID: goalID})
}

func (ctrl *CarePlanController) AddIntervention(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "AddIntervention")
	if !ok {
		return
	}

	carePlanID, err := utils.ParseIDURLParam(r, constvars.URLParamCarePlanID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.AddIntervention)
	if !ctrl.decodeAndValidate(w, r, requestID, request) {
		return
	}
	request.CarePlanID = carePlanID

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	interventionID, err := ctrl.CarePlanUsecase.AddIntervention(ctx, request)
	if err != nil {
		ctrl.writeUsecaseError(w, requestID, "AddIntervention", err)
		return
	}

	ctrl.Log.Info("CarePlanController.AddIntervention succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64("intervention_id", interventionID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AddInterventionSuccessMessage, responses.InterventionAdded{InterventionID: interventionID})
}

func (ctrl *CarePlanController) RecordGoalProgress(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "RecordGoalProgress")
	if !ok {
		return
	}

	goalID, err := utils.ParseIDURLParam(r, constvars.URLParamGoalID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.RecordGoalProgress)
	if !ctrl.decodeAndValidate(w, r, requestID, request) {
		return
	}
	request.GoalID = goalID

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	if err := ctrl.CarePlanUsecase.RecordGoalProgress(ctx, request); err != nil {
		ctrl.writeUsecaseError(w, requestID, "RecordGoalProgress", err)
		return
	}

	ctrl.Log.Info("CarePlanController.RecordGoalProgress succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64(constvars.LoggingGoalIDKey, goalID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecordGoalProgressSuccessMessage, nil)
}

func (ctrl *CarePlanController) MarkGoalAchieved(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "MarkGoalAchieved")
	if !ok {
		return
	}

	goalID, err := utils.ParseIDURLParam(r, constvars.URLParamGoalID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.MarkGoalAchieved)
	if !ctrl.decodeAndValidate(w, r, requestID, request) {
		return
	}
	request.GoalID = goalID

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	if err := ctrl.CarePlanUsecase.MarkGoalAchieved(ctx, request); err != nil {
		ctrl.writeUsecaseError(w, requestID, "MarkGoalAchieved", err)
		return
	}

	ctrl.Log.Info("CarePlanController.MarkGoalAchieved succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64(constvars.LoggingGoalIDKey, goalID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MarkGoalAchievedSuccessMessage, nil)
}

func (ctrl *CarePlanController) AddBarrier(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "AddBarrier")
	if !ok {
		return
	}

	carePlanID, err := utils.ParseIDURLParam(r, constvars.URLParamCarePlanID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.AddBarrier)
	if !ctrl.decodeAndValidate(w, r, requestID, request) {
		return
	}
	request.CarePlanID = carePlanID

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	barrierID, err := ctrl.CarePlanUsecase.AddBarrier(ctx, request)
	if err != nil {
		ctrl.writeUsecaseError(w, requestID, "AddBarrier", err)
		return
	}

	ctrl.Log.Info("CarePlanController.AddBarrier succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64(constvars.LoggingBarrierIDKey, barrierID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AddBarrierSuccessMessage, responses.BarrierAdded{BarrierID: barrierID})
}

func (ctrl *CarePlanController) ResolveBarrier(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "ResolveBarrier")
	if !ok {
		return
	}

	barrierID, err := utils.ParseIDURLParam(r, constvars.URLParamBarrierID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.ResolveBarrier)
	if !ctrl.decodeAndValidate(w, r, requestID, request) {
		return
	}
	request.BarrierID = barrierID

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	if err := ctrl.CarePlanUsecase.ResolveBarrier(ctx, request); err != nil {
		ctrl.writeUsecaseError(w, requestID, "ResolveBarrier", err)
		return
	}

	ctrl.Log.Info("CarePlanController.ResolveBarrier succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64(constvars.LoggingBarrierIDKey, barrierID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResolveBarrierSuccessMessage, nil)
}

func (ctrl *CarePlanController) ScheduleCarePlanReview(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "ScheduleCarePlanReview")
	if !ok {
		return
	}

	carePlanID, err := utils.ParseIDURLParam(r, constvars.URLParamCarePlanID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.ScheduleCarePlanReview)
	if !ctrl.decodeAndValidate(w, r, requestID, request) {
		return
	}
	request.CarePlanID = carePlanID

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	reviewID, err := ctrl.CarePlanUsecase.ScheduleCarePlanReview(ctx, request)
	if err != nil {
		ctrl.writeUsecaseError(w, requestID, "ScheduleCarePlanReview", err)
		return
	}

	ctrl.Log.Info("CarePlanController.ScheduleCarePlanReview succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64(constvars.LoggingReviewIDKey, reviewID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ScheduleReviewSuccessMessage, responses.ReviewScheduled{ReviewID: reviewID})
}

func (ctrl *CarePlanController) ConductCarePlanReview(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "ConductCarePlanReview")
	if !ok {
		return
	}

	reviewID, err := utils.ParseIDURLParam(r, constvars.URLParamReviewID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.ConductCarePlanReview)
	if !ctrl.decodeAndValidate(w, r, requestID, request) {
		return
	}
	request.ReviewID = reviewID

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	if err := ctrl.CarePlanUsecase.ConductCarePlanReview(ctx, request); err != nil {
		ctrl.writeUsecaseError(w, requestID, "ConductCarePlanReview", err)
		return
	}

	ctrl.Log.Info("CarePlanController.ConductCarePlanReview succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64(constvars.LoggingReviewIDKey, reviewID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConductReviewSuccessMessage, nil)
}

func (ctrl *CarePlanController) AssignCareTeamMember(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "AssignCareTeamMember")
	if !ok {
		return
	}

	carePlanID, err := utils.ParseIDURLParam(r, constvars.URLParamCarePlanID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.AssignCareTeamMember)
	if !ctrl.decodeAndValidate(w, r, requestID, request) {
		return
	}
	request.CarePlanID = carePlanID

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	if err := ctrl.CarePlanUsecase.AssignCareTeamMember(ctx, request); err != nil {
		ctrl.writeUsecaseError(w, requestID, "AssignCareTeamMember", err)
		return
	}

	ctrl.Log.Info("CarePlanController.AssignCareTeamMember succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64(constvars.LoggingCarePlanIDKey, carePlanID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssignCareTeamMemberSuccessMessage, nil)
}

func (ctrl *CarePlanController) GetCarePlanSummary(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "GetCarePlanSummary")
	if !ok {
		return
	}

	carePlanID, err := utils.ParseIDURLParam(r, constvars.URLParamCarePlanID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	requester, _ := r.Context().Value(constvars.CONTEXT_PRINCIPAL_KEY).(string)
	request := &requests.GetCarePlanSummary{
		CarePlanID: carePlanID,
		Requester:  requester,
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	summary, err := ctrl.CarePlanUsecase.GetCarePlanSummary(ctx, request)
	if err != nil {
		ctrl.writeUsecaseError(w, requestID, "GetCarePlanSummary", err)
		return
	}

	ctrl.Log.Info("CarePlanController.GetCarePlanSummary succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64(constvars.LoggingCarePlanIDKey, carePlanID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCarePlanSummarySuccessMessage, summary)
}
