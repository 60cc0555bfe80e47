package schedule

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/workoutdelivery/internal/civil"
	"github.com/2beens/workoutdelivery/internal/telemetry/tracing"
	"github.com/2beens/workoutdelivery/internal/workouts"
	"github.com/2beens/workoutdelivery/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=schedule_test

type workoutsRepo interface {
	FindActivePlan(ctx context.Context, ownerID string) (*workouts.Plan, error)
	FindInstance(ctx context.Context, ownerID string, date civil.Date) (*workouts.Instance, error)
}

type DayResponse struct {
	OwnerID string `json:"ownerId"`
	Slot
	Instance *workouts.Instance `json:"instance,omitempty"`
}

type WeekResponse struct {
	OwnerID    string `json:"ownerId"`
	WeekOffset int    `json:"weekOffset"`
	Slots      []Slot `json:"slots"`
}

type Handler struct {
	repo    workoutsRepo
	planner *Planner
	clock   *civil.Clock
}

func NewHandler(repo workoutsRepo, planner *Planner, clock *civil.Clock) *Handler {
	return &Handler{
		repo:    repo,
		planner: planner,
		clock:   clock,
	}
}

// HandleDay answers what is scheduled for the owner on ?date= (default: today).
func (handler *Handler) HandleDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.day")
	defer span.End()

	ownerID := mux.Vars(r)["ownerId"]
	if ownerID == "" {
		http.Error(w, "error, owner id empty", http.StatusBadRequest)
		return
	}

	date := handler.clock.Today()
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		parsed, err := civil.ParseDate(dateParam)
		if err != nil {
			http.Error(w, "error, invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		date = parsed
	}
	span.SetAttributes(
		attribute.String("owner.id", ownerID),
		attribute.String("date", date.String()),
	)

	plan, ok := handler.activePlan(ctx, w, ownerID)
	if !ok {
		return
	}

	resp := DayResponse{
		OwnerID: ownerID,
		Slot:    handler.planner.ScheduledFor(plan, date),
	}

	instance, err := handler.repo.FindInstance(ctx, ownerID, date)
	switch {
	case err == nil:
		resp.Instance = instance
	case errors.Is(err, workouts.ErrNotFound):
	default:
		log.Errorf("find instance [%s] %s: %s", ownerID, date, err)
		http.Error(w, "error, failed to get scheduled workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (handler *Handler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.week")
	defer span.End()

	vars := mux.Vars(r)
	ownerID := vars["ownerId"]
	if ownerID == "" {
		http.Error(w, "error, owner id empty", http.StatusBadRequest)
		return
	}

	offset := 0
	if offsetStr := vars["offset"]; offsetStr != "" {
		var err error
		offset, err = strconv.Atoi(offsetStr)
		if err != nil {
			http.Error(w, "error, week offset NaN", http.StatusBadRequest)
			return
		}
	}

	plan, ok := handler.activePlan(ctx, w, ownerID)
	if !ok {
		return
	}

	slots, err := handler.planner.Week(plan, offset)
	if err != nil {
		log.Errorf("schedule week [%s] offset %d: %s", ownerID, offset, err)
		http.Error(w, "error, failed to resolve week", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, WeekResponse{
		OwnerID:    ownerID,
		WeekOffset: offset,
		Slots:      slots,
	}, http.StatusOK)
}

func (handler *Handler) activePlan(ctx context.Context, w http.ResponseWriter, ownerID string) (*workouts.Plan, bool) {
	plan, err := handler.repo.FindActivePlan(ctx, ownerID)
	if err != nil {
		if errors.Is(err, workouts.ErrNotFound) {
			http.Error(w, "no active plan", http.StatusNotFound)
			return nil, false
		}
		log.Errorf("find active plan [%s]: %s", ownerID, err)
		http.Error(w, "error, failed to get active plan", http.StatusInternalServerError)
		return nil, false
	}
	return plan, true
}
