package workouts

import (
	"errors"
	"time"

	"github.com/2beens/workoutdelivery/internal/civil"
)

var (
	ErrNotFound = errors.New("not found")
)

type Exercise struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	RestSeconds int    `json:"restSeconds"`
	Weight      string `json:"weight,omitempty"`
	MuscleGroup string `json:"muscleGroup,omitempty"`
}

// Session is one workout of the weekly template, e.g. "Treino A".
type Session struct {
	Title     string     `json:"title"`
	Exercises []Exercise `json:"exercises"`
}

// Plan is the weekly template generated for an owner. Sessions are
// consumed in order: session 0 goes to the first scheduled day of the week.
type Plan struct {
	ID       int64     `json:"id"`
	OwnerID  string    `json:"ownerId"`
	Sessions []Session `json:"sessions"`
	IsActive bool      `json:"isActive"`
	// IsFallback marks a degraded plan, produced when generation failed
	IsFallback bool      `json:"isFallback"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (p *Plan) SessionsPerWeek() int {
	return len(p.Sessions)
}

func (p *Plan) Session(index int) (*Session, bool) {
	if index < 0 || index >= len(p.Sessions) {
		return nil, false
	}
	return &p.Sessions[index], true
}

// DeliveryStatus can be one of:
//   - pending
//   - sent
//   - completed (terminal)
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliverySent      DeliveryStatus = "sent"
	DeliveryCompleted DeliveryStatus = "completed"
)

func (s DeliveryStatus) String() string {
	return string(s)
}

// AcceptsReply reports whether a reply can still move the instance forward.
func (s DeliveryStatus) AcceptsReply() bool {
	return s == DeliveryPending || s == DeliverySent
}

func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryCompleted
}

// ApprovalStatus is owned by the trainer approval flow, never changed here.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending_approval"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) String() string {
	return string(s)
}

// Instance is the datestamped occurrence of one session for one owner.
// At most one exists per (OwnerID, Date).
type Instance struct {
	OwnerID         string         `json:"ownerId"`
	Date            civil.Date     `json:"date"`
	SessionIndex    int            `json:"sessionIndex"`
	Title           string         `json:"title"`
	RenderedContent string         `json:"renderedContent"`
	DeliveryStatus  DeliveryStatus `json:"deliveryStatus"`
	ApprovalStatus  ApprovalStatus `json:"approvalStatus"`
	SourcePlanID    int64          `json:"sourcePlanId"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// InstanceFields are the fields the distribution runner (re)writes on upsert.
// Statuses are not part of it: a re-run must never reset a reply transition.
type InstanceFields struct {
	SessionIndex    int
	Title           string
	RenderedContent string
	SourcePlanID    int64
}

type UpsertResult struct {
	Instance *Instance
	Created  bool
}

// PlanApproval summarizes the trainer review state of a plan's instances.
type PlanApproval struct {
	// FirstScheduled is nil when no instance exists yet for the plan
	FirstScheduled *civil.Date
	Approved       bool
}

const PointsReasonWorkoutCompleted = "workout_completed"
