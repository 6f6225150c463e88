package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	return New("127.0.0.1:0", log.New(io.Discard))
}

func post(t *testing.T, s *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleCheck(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantStatus   int
		wantPossible bool
	}{
		{
			name:         "Feasible",
			body:         `{"participants":[{"name":"alice"},{"name":"bob"}]}`,
			wantStatus:   http.StatusOK,
			wantPossible: true,
		},
		{
			name:         "TooFew",
			body:         `{"participants":[{"name":"alice"}]}`,
			wantStatus:   http.StatusOK,
			wantPossible: false,
		},
		{
			name:         "ExclusionBlocksEverything",
			body:         `{"participants":[{"name":"alice","exclusions":["bob"]},{"name":"bob"}]}`,
			wantStatus:   http.StatusOK,
			wantPossible: false,
		},
	}

	s := testServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, s, "/v1/check", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body)
			}

			var resp checkResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Possible != tt.wantPossible {
				t.Errorf("possible = %v, want %v (reason: %s)", resp.Possible, tt.wantPossible, resp.Reason)
			}
			if resp.Reason == "" {
				t.Error("reason must always be set")
			}
		})
	}
}

func TestHandleCheckBadBody(t *testing.T) {
	s := testServer(t)
	rec := post(t, s, "/v1/check", "{not json")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Code != "INVALID_INPUT" {
		t.Errorf("code = %s, want INVALID_INPUT", resp.Code)
	}
}

func TestHandleAssign(t *testing.T) {
	s := testServer(t)
	rec := post(t, s, "/v1/assign",
		`{"participants":[{"id":"1","name":"alice"},{"id":"2","name":"bob"},{"id":"3","name":"carol"}],"seed":42}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}

	var resp assignResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Assignments) != 3 {
		t.Fatalf("got %d assignments, want 3", len(resp.Assignments))
	}
	for _, a := range resp.Assignments {
		if a.Giver == a.Receiver {
			t.Errorf("%s assigned to themselves", a.Giver)
		}
		if a.GiverID == "" {
			t.Errorf("giver ID missing for %s", a.Giver)
		}
	}
}

func TestHandleAssignInfeasible(t *testing.T) {
	s := testServer(t)
	// bob and carol can only give to alice; one of them must go empty.
	rec := post(t, s, "/v1/assign",
		`{"participants":[{"name":"alice"},{"name":"bob","exclusions":["carol"]},{"name":"carol","exclusions":["bob"]}],"seed":1,"attempts":5}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", rec.Code, rec.Body)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Code != "INFEASIBLE" {
		t.Errorf("code = %s, want INFEASIBLE", resp.Code)
	}
}

func TestHandleAssignTooSmall(t *testing.T) {
	s := testServer(t)
	rec := post(t, s, "/v1/assign", `{"participants":[{"name":"alice"}]}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", rec.Code, rec.Body)
	}
}

func TestHandleStats(t *testing.T) {
	s := testServer(t)
	rec := post(t, s, "/v1/stats",
		`{"participants":[{"name":"alice"},{"name":"bob","exclusions":["alice"]},{"name":"carol"}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}

	var resp statsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.TotalParticipants != 3 {
		t.Errorf("total = %d, want 3", resp.TotalParticipants)
	}
	if resp.Participants[0].Name != "bob" {
		t.Errorf("most constrained = %s, want bob", resp.Participants[0].Name)
	}
	if got := resp.Participants[0].AvailableReceivers; got != 1 {
		t.Errorf("bob available = %d, want 1", got)
	}
}

func TestHealthz(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
