package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/giftmatch/pkg/errors"
	"github.com/matzehuels/giftmatch/pkg/match"
)

// =============================================================================
// Wire types
// =============================================================================

type participantPayload struct {
	ID         string   `json:"id,omitempty"`
	Name       string   `json:"name"`
	Exclusions []string `json:"exclusions,omitempty"`
}

type solveRequest struct {
	Participants []participantPayload `json:"participants"`

	// Assign-only knobs; ignored by check and stats.
	Attempts int   `json:"attempts,omitempty"`
	Seed     int64 `json:"seed,omitempty"`
	Fallback bool  `json:"fallback,omitempty"`
}

type checkResponse struct {
	Possible bool   `json:"possible"`
	Reason   string `json:"reason"`
}

type assignmentPayload struct {
	GiverID  string `json:"giver_id,omitempty"`
	Giver    string `json:"giver"`
	Receiver string `json:"receiver"`
}

type assignResponse struct {
	Assignments []assignmentPayload `json:"assignments"`
}

type statsParticipantPayload struct {
	Name               string  `json:"name"`
	Exclusions         int     `json:"exclusions"`
	AvailableReceivers int     `json:"available_receivers"`
	ConstraintLevel    float64 `json:"constraint_level"`
}

type statsResponse struct {
	TotalParticipants int                       `json:"total_participants"`
	Participants      []statsParticipantPayload `json:"participants"`
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	participants, err := decodeParticipants(w, r)
	if err != nil {
		return
	}

	result := match.CheckSolvable(participants)
	writeJSON(w, http.StatusOK, checkResponse{Possible: result.Possible, Reason: result.Reason})
}

func (s *Server) handleAssign(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "request body must be JSON"))
		return
	}
	participants := toParticipants(req.Participants)

	assignments, err := match.Generate(participants, &match.Options{
		Attempts: req.Attempts,
		Seed:     req.Seed,
		Fallback: req.Fallback,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, match.ErrNoParticipants), stderrors.Is(err, match.ErrTooFewParticipants):
			writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "group too small to match"))
		case stderrors.Is(err, match.ErrAttemptsExhausted):
			// Distinguish a truly infeasible group from bad luck so the
			// client knows whether retrying can help.
			if feasibility := match.CheckSolvable(participants); !feasibility.Possible {
				writeError(w, errors.New(errors.ErrCodeInfeasible, "%s", feasibility.Reason))
			} else {
				writeError(w, errors.Wrap(errors.ErrCodeExhausted, err, "retry the request"))
			}
		default:
			writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "assignment failed"))
		}
		return
	}

	resp := assignResponse{Assignments: make([]assignmentPayload, len(assignments))}
	for i, a := range assignments {
		resp.Assignments[i] = assignmentPayload{GiverID: a.GiverID, Giver: a.Giver, Receiver: a.Receiver}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	participants, err := decodeParticipants(w, r)
	if err != nil {
		return
	}

	stats := match.ComputeStats(participants)
	resp := statsResponse{
		TotalParticipants: stats.TotalParticipants,
		Participants:      make([]statsParticipantPayload, len(stats.Participants)),
	}
	for i, ps := range stats.Participants {
		resp.Participants[i] = statsParticipantPayload{
			Name:               ps.Name,
			Exclusions:         ps.Exclusions,
			AvailableReceivers: ps.AvailableReceivers,
			ConstraintLevel:    ps.ConstraintLevel,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// Helpers
// =============================================================================

// decodeParticipants decodes the request body and writes the error
// response itself on failure, so callers can just bail out.
func decodeParticipants(w http.ResponseWriter, r *http.Request) ([]match.Participant, error) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		werr := errors.Wrap(errors.ErrCodeInvalidInput, err, "request body must be JSON")
		writeError(w, werr)
		return nil, werr
	}
	return toParticipants(req.Participants), nil
}

func toParticipants(payload []participantPayload) []match.Participant {
	out := make([]match.Participant, len(payload))
	for i, p := range payload {
		out[i] = match.Participant{ID: p.ID, Name: p.Name, Exclusions: p.Exclusions}
	}
	return out
}

// statusFor maps error codes to HTTP statuses.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidGroup, errors.ErrCodeInvalidFormat:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeInfeasible:
		return http.StatusConflict
	case errors.ErrCodeExhausted:
		return http.StatusServiceUnavailable
	case errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err *errors.Error) {
	writeJSON(w, statusFor(err.Code), errorResponse{Code: err.Code, Message: err.Message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
