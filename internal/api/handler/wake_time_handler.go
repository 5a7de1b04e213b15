package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/blaisecz/sleep-calculator/internal/api/validation"
	"github.com/blaisecz/sleep-calculator/internal/domain"
	"github.com/blaisecz/sleep-calculator/internal/service"
	"github.com/blaisecz/sleep-calculator/pkg/problem"
	"go.opentelemetry.io/otel/trace"
)

type WakeTimeHandler struct {
	service service.WakeTimeService
}

func NewWakeTimeHandler(service service.WakeTimeService) *WakeTimeHandler {
	return &WakeTimeHandler{service: service}
}

// Calculate handles POST /v1/wake-times
// @Summary Calculate wake-up times
// @Description Align wake-up times to 90-minute sleep cycles. The quality policy returns up to five scored candidates (best first) between 5 and 7 cycles; the proximity policy returns up to four unscored candidates around the target in chronological order.
// @Tags wake-times
// @Accept json
// @Produce json
// @Param request body domain.WakeTimesRequest true "Bedtime, target wake time and options"
// @Success 200 {object} domain.WakeTimesResponse "Ordered wake-up candidates"
// @Failure 400 {object} problem.Problem "Malformed JSON body"
// @Failure 422 {object} problem.Problem "Invalid field values"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /wake-times [post]
func (h *WakeTimeHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req domain.WakeTimesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").WithInstance(r.URL.Path).Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).WithInstance(r.URL.Path).Write(w)
		return
	}

	h.respond(w, r, &req)
}

// Lookup handles GET /v1/wake-times
// @Summary Calculate wake-up times from query parameters
// @Description Same calculation as the POST endpoint, for clients that prefer a cacheable GET.
// @Tags wake-times
// @Produce json
// @Param bedtime query string true "Bedtime (HH:MM, 24-hour)" example(22:30)
// @Param wake_time query string true "Target wake time (HH:MM, 24-hour)" example(07:00)
// @Param fall_asleep_minutes query integer false "Minutes needed to fall asleep (0-120)" default(15) minimum(0) maximum(120)
// @Param policy query string false "Window policy" Enums(quality, proximity) default(quality)
// @Param time_format query string false "Display format for times" Enums(12h, 24h) default(24h)
// @Success 200 {object} domain.WakeTimesResponse "Ordered wake-up candidates"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /wake-times [get]
func (h *WakeTimeHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	req, fieldErrors := parseWakeTimesQuery(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).WithInstance(r.URL.Path).Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).WithInstance(r.URL.Path).Write(w)
		return
	}

	h.respond(w, r, &req)
}

func (h *WakeTimeHandler) respond(w http.ResponseWriter, r *http.Request, req *domain.WakeTimesRequest) {
	response, err := h.service.Compute(r.Context(), req)
	if err != nil {
		if fieldErr, ok := validation.FieldErrorFor(err); ok {
			problem.InvalidField(fieldErr.Field, fieldErr.Message).WithInstance(r.URL.Path).Write(w)
			return
		}
		log.Printf("wake-times: compute failed: %v", err)
		problem.InternalError("Failed to calculate wake-up times").WithInstance(r.URL.Path).Write(w)
		return
	}

	if sc := trace.SpanFromContext(r.Context()).SpanContext(); sc.HasTraceID() {
		response.TraceID = sc.TraceID().String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseWakeTimesQuery(r *http.Request) (domain.WakeTimesRequest, []problem.FieldError) {
	query := r.URL.Query()
	req := domain.WakeTimesRequest{
		Bedtime:    query.Get("bedtime"),
		WakeTime:   query.Get("wake_time"),
		Policy:     query.Get("policy"),
		TimeFormat: query.Get("time_format"),
	}

	if latencyStr := query.Get("fall_asleep_minutes"); latencyStr != "" {
		latency, err := strconv.Atoi(latencyStr)
		if err != nil {
			return req, []problem.FieldError{{
				Field:   "fall_asleep_minutes",
				Message: "must be an integer",
			}}
		}
		req.FallAsleepMinutes = &latency
	}

	return req, nil
}
