package plan

import (
	"net/http"

	"fitcircle/internal/api"
	"fitcircle/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// withID resolves the caller and the :id path parameter.
func withID(c *gin.Context) (auth.Principal, uuid.UUID, bool) {
	p, ok := auth.MustPrincipal(c)
	if !ok {
		return auth.Principal{}, uuid.Nil, false
	}
	id, ok := api.UUIDParam(c, "id")
	if !ok {
		return auth.Principal{}, uuid.Nil, false
	}
	return p, id, true
}

// targetUser is the caller unless ?user_id= names someone else.
func targetUser(c *gin.Context, p auth.Principal) (uuid.UUID, bool) {
	raw := c.Query("user_id")
	if raw == "" {
		return p.UserID, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid user_id", Kind: "validation"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) workoutPlan(c *gin.Context, status int, call func(p auth.Principal, id uuid.UUID) (*WorkoutPlanDetail, error)) {
	p, id, ok := withID(c)
	if !ok {
		return
	}
	d, err := call(p, id)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(status, d.View())
}

func (h *Handler) dietPlan(c *gin.Context, status int, call func(p auth.Principal, id uuid.UUID) (*DietPlan, error)) {
	p, id, ok := withID(c)
	if !ok {
		return
	}
	dp, err := call(p, id)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(status, dp.View())
}

// @Summary      List plan options
// @Description  Workout goals, fitness levels, diet goals and diet types with their labels
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} plan.Options
// @Router       /plan-options [get]
func (h *Handler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Options())
}

// @Summary      Create a workout plan
// @Description  The window defaults to four weeks from today. Trainers and managers may create plans for other users.
// @Tags         plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body plan.CreateWorkoutPlanRequest true "Workout plan"
// @Success      201 {object} plan.WorkoutPlanView
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /workout-plans [post]
func (h *Handler) CreateWorkoutPlan(c *gin.Context) {
	p, ok := auth.MustPrincipal(c)
	if !ok {
		return
	}

	var req CreateWorkoutPlanRequest
	if !api.BindJSON(c, &req) {
		return
	}

	d, err := h.service.CreateWorkoutPlan(c.Request.Context(), p, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d.View())
}

// @Summary      List workout plans
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Param        user_id query string false "User ID"
// @Success      200 {array} plan.WorkoutPlanView
// @Failure      403 {object} api.ErrorResponse
// @Router       /workout-plans [get]
func (h *Handler) ListWorkoutPlans(c *gin.Context) {
	p, ok := auth.MustPrincipal(c)
	if !ok {
		return
	}
	userID, ok := targetUser(c, p)
	if !ok {
		return
	}

	list, err := h.service.ListWorkoutPlans(c.Request.Context(), p, userID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	out := make([]WorkoutPlanView, 0, len(list))
	for _, d := range list {
		out = append(out, d.View())
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Get a workout plan
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Workout plan ID"
// @Success      200 {object} plan.WorkoutPlanView
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /workout-plans/{id} [get]
func (h *Handler) GetWorkoutPlan(c *gin.Context) {
	h.workoutPlan(c, http.StatusOK, func(p auth.Principal, id uuid.UUID) (*WorkoutPlanDetail, error) {
		return h.service.GetWorkoutPlan(c.Request.Context(), p, id)
	})
}

// @Summary      Update a workout plan
// @Description  Only the fields present in the body change
// @Tags         plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Workout plan ID"
// @Param        request body plan.UpdateWorkoutPlanRequest true "Changes"
// @Success      200 {object} plan.WorkoutPlanView
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /workout-plans/{id} [patch]
func (h *Handler) UpdateWorkoutPlan(c *gin.Context) {
	var req UpdateWorkoutPlanRequest
	if !api.BindJSON(c, &req) {
		return
	}
	h.workoutPlan(c, http.StatusOK, func(p auth.Principal, id uuid.UUID) (*WorkoutPlanDetail, error) {
		return h.service.UpdateWorkoutPlan(c.Request.Context(), p, id, req)
	})
}

// @Summary      Complete a workout plan
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Workout plan ID"
// @Success      200 {object} plan.WorkoutPlanView
// @Failure      409 {object} api.ErrorResponse
// @Router       /workout-plans/{id}/complete [post]
func (h *Handler) CompleteWorkoutPlan(c *gin.Context) {
	h.workoutPlan(c, http.StatusOK, func(p auth.Principal, id uuid.UUID) (*WorkoutPlanDetail, error) {
		return h.service.CompleteWorkoutPlan(c.Request.Context(), p, id)
	})
}

// @Summary      Reopen a completed workout plan
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Workout plan ID"
// @Success      200 {object} plan.WorkoutPlanView
// @Failure      409 {object} api.ErrorResponse
// @Router       /workout-plans/{id}/reopen [post]
func (h *Handler) ReopenWorkoutPlan(c *gin.Context) {
	h.workoutPlan(c, http.StatusOK, func(p auth.Principal, id uuid.UUID) (*WorkoutPlanDetail, error) {
		return h.service.ReopenWorkoutPlan(c.Request.Context(), p, id)
	})
}

// @Summary      Schedule a workout
// @Description  The session must fall inside the plan window. The length defaults to the plan's session length.
// @Tags         plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Workout plan ID"
// @Param        request body plan.AddWorkoutRequest true "Workout"
// @Success      201 {object} plan.WorkoutRecord
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /workout-plans/{id}/workouts [post]
func (h *Handler) AddWorkout(c *gin.Context) {
	var req AddWorkoutRequest
	if !api.BindJSON(c, &req) {
		return
	}
	p, id, ok := withID(c)
	if !ok {
		return
	}

	w, err := h.service.AddWorkout(c.Request.Context(), p, id, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, w.Record())
}

// @Summary      Complete a workout
// @Tags         plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Workout ID"
// @Param        request body plan.CompleteWorkoutRequest true "Session result"
// @Success      200 {object} plan.WorkoutRecord
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /workouts/{id}/complete [post]
func (h *Handler) CompleteWorkout(c *gin.Context) {
	var req CompleteWorkoutRequest
	if !api.BindJSON(c, &req) {
		return
	}
	p, id, ok := withID(c)
	if !ok {
		return
	}

	w, err := h.service.CompleteWorkout(c.Request.Context(), p, id, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w.Record())
}

// @Summary      Create a diet plan
// @Tags         plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body plan.CreateDietPlanRequest true "Diet plan"
// @Success      201 {object} plan.DietPlanView
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Router       /diet-plans [post]
func (h *Handler) CreateDietPlan(c *gin.Context) {
	p, ok := auth.MustPrincipal(c)
	if !ok {
		return
	}

	var req CreateDietPlanRequest
	if !api.BindJSON(c, &req) {
		return
	}

	dp, err := h.service.CreateDietPlan(c.Request.Context(), p, req)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dp.View())
}

// @Summary      List diet plans
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Param        user_id query string false "User ID"
// @Success      200 {array} plan.DietPlanView
// @Failure      403 {object} api.ErrorResponse
// @Router       /diet-plans [get]
func (h *Handler) ListDietPlans(c *gin.Context) {
	p, ok := auth.MustPrincipal(c)
	if !ok {
		return
	}
	userID, ok := targetUser(c, p)
	if !ok {
		return
	}

	list, err := h.service.ListDietPlans(c.Request.Context(), p, userID)
	if err != nil {
		api.RespondError(c, err)
		return
	}
	out := make([]DietPlanView, 0, len(list))
	for _, dp := range list {
		out = append(out, dp.View())
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Get a diet plan
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Diet plan ID"
// @Success      200 {object} plan.DietPlanView
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /diet-plans/{id} [get]
func (h *Handler) GetDietPlan(c *gin.Context) {
	h.dietPlan(c, http.StatusOK, func(p auth.Principal, id uuid.UUID) (*DietPlan, error) {
		return h.service.GetDietPlan(c.Request.Context(), p, id)
	})
}

// @Summary      Update a diet plan
// @Description  Only the fields present in the body change
// @Tags         plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Diet plan ID"
// @Param        request body plan.UpdateDietPlanRequest true "Changes"
// @Success      200 {object} plan.DietPlanView
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /diet-plans/{id} [patch]
func (h *Handler) UpdateDietPlan(c *gin.Context) {
	var req UpdateDietPlanRequest
	if !api.BindJSON(c, &req) {
		return
	}
	h.dietPlan(c, http.StatusOK, func(p auth.Principal, id uuid.UUID) (*DietPlan, error) {
		return h.service.UpdateDietPlan(c.Request.Context(), p, id, req)
	})
}

// @Summary      Complete a diet plan
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Diet plan ID"
// @Success      200 {object} plan.DietPlanView
// @Failure      409 {object} api.ErrorResponse
// @Router       /diet-plans/{id}/complete [post]
func (h *Handler) CompleteDietPlan(c *gin.Context) {
	h.dietPlan(c, http.StatusOK, func(p auth.Principal, id uuid.UUID) (*DietPlan, error) {
		return h.service.CompleteDietPlan(c.Request.Context(), p, id)
	})
}

// @Summary      Reopen a completed diet plan
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Diet plan ID"
// @Success      200 {object} plan.DietPlanView
// @Failure      409 {object} api.ErrorResponse
// @Router       /diet-plans/{id}/reopen [post]
func (h *Handler) ReopenDietPlan(c *gin.Context) {
	h.dietPlan(c, http.StatusOK, func(p auth.Principal, id uuid.UUID) (*DietPlan, error) {
		return h.service.ReopenDietPlan(c.Request.Context(), p, id)
	})
}
