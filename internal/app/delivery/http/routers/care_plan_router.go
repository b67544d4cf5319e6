package routers

import (
	"careplan-service/internal/app/delivery/http/controllers"
	"careplan-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachCarePlanRoutes(r chi.Router, ctrl *controllers.CarePlanController) {
	r.Route("/"+constvars.ResourceCarePlans, func(r chi.Router) {
		r.Post("/", ctrl.CreateCarePlan)

		r.Route(fmt.Sprintf("/{%s}", constvars.URLParamCarePlanID), func(r chi.Router) {
			r.Post("/"+constvars.ResourceGoals, ctrl.AddCareGoal)
			r.Post("/"+constvars.ResourceInterventions, ctrl.AddIntervention)
			r.Post("/"+constvars.ResourceBarriers, ctrl.AddBarrier)
			r.Post("/"+constvars.ResourceReviews, ctrl.ScheduleCarePlanReview)
			r.Post("/"+constvars.ResourceTeamMembers, ctrl.AssignCareTeamMember)
			r.Get("/summary", ctrl.GetCarePlanSummary)
		})
	})

	r.Route("/"+constvars.ResourceGoals, func(r chi.Router) {
		r.Route(fmt.Sprintf("/{%s}", constvars.URLParamGoalID), func(r chi.Router) {
			r.Post("/progress", ctrl.RecordGoalProgress)
			r.Put("/achieve", ctrl.MarkGoalAchieved)
		})
	})

	r.Route("/"+constvars.ResourceBarriers, func(r chi.Router) {
		r.Put(fmt.Sprintf("/{%s}/resolve", constvars.URLParamBarrierID), ctrl.ResolveBarrier)
	})

	r.Route("/"+constvars.ResourceReviews, func(r chi.Router) {
		r.Put(fmt.Sprintf("/{%s}/conduct", constvars.URLParamReviewID), ctrl.ConductCarePlanReview)
	})
}
