package distribution

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/workoutdelivery/internal/delivery"
	"github.com/2beens/workoutdelivery/internal/telemetry/tracing"
	"github.com/2beens/workoutdelivery/pkg"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	runner distributionRunner
}

func NewHandler(runner distributionRunner) *Handler {
	return &Handler{
		runner: runner,
	}
}

// HandleRun triggers a distribution run, ?dryRun=true skips delivery.
func (handler *Handler) HandleRun(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.distribution.run")
	defer span.End()

	dryRun := false
	if dryRunParam := r.URL.Query().Get("dryRun"); dryRunParam != "" {
		var err error
		dryRun, err = strconv.ParseBool(dryRunParam)
		if err != nil {
			http.Error(w, "error, invalid dryRun param", http.StatusBadRequest)
			return
		}
	}

	result, err := handler.runner.Run(ctx, RunParams{DryRun: dryRun})
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrNotConfigured):
			log.Errorf("distribution run: %s", err)
			http.Error(w, "error, delivery provider not configured", http.StatusServiceUnavailable)
		case errors.Is(err, ErrRunInProgress):
			http.Error(w, "error, a distribution run is in progress", http.StatusConflict)
		default:
			log.Errorf("distribution run: %s", err)
			http.Error(w, "error, distribution run failed", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, result, http.StatusOK)
}
