package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleettools/fleetd/pkg/checkpoint"
	"github.com/fleettools/fleetd/pkg/config"
	"github.com/fleettools/fleetd/pkg/dispatch"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/lifecycle"
	"github.com/fleettools/fleetd/pkg/locks"
	"github.com/fleettools/fleetd/pkg/mailbox"
	"github.com/fleettools/fleetd/pkg/planner"
	"github.com/fleettools/fleetd/pkg/projection"
	testdb "github.com/fleettools/fleetd/test/database"
)

// envelope mirrors the wire format for decoding in tests.
type envelope struct {
	Data      json.RawMessage `json:"data"`
	Error     *ResponseError  `json:"error"`
	Timestamp string          `json:"timestamp"`
}

func setupServer(t *testing.T) http.Handler {
	t.Helper()
	client := testdb.NewTestClient(t)
	store := eventstore.NewStore(client.Client, projection.NewEngine(client.Client), time.Second)

	cfg := &config.Config{
		StateDir:    t.TempDir(),
		ProjectPath: t.TempDir(),
		Liveness: config.LivenessConfig{
			StaleThreshold: time.Minute,
			HeartbeatCheck: time.Minute,
		},
		Locks: config.LockConfig{
			SweepInterval:  time.Minute,
			DefaultTimeout: time.Minute,
			MaxTimeout:     time.Hour,
		},
		Dispatch: config.DispatchConfig{
			BlockerTimeout: time.Minute,
			TickInterval:   time.Minute,
		},
		Checkpoint: config.CheckpointConfig{
			ProgressThresholds:     []int{25, 50, 75},
			MinKeep:                1,
			RetentionDays:          30,
			CompletedRetentionDays: 30,
			MaxBytes:               1 << 20,
			WarnBytes:              1 << 19,
			ActivityThreshold:      time.Minute,
		},
	}

	missions := lifecycle.NewMissionService(store, client.Client)
	sorties := lifecycle.NewSortieService(store, client.Client)
	lockSvc := locks.NewService(store, client.Client, &cfg.Locks, cfg.ProjectPath)
	mail := mailbox.NewService(store, client.Client)
	specialists := dispatch.NewSpecialistService(store, client.Client, sorties, &cfg.Liveness)
	checkpoints := checkpoint.NewService(store, client.Client, missions, sorties, lockSvc, mail, cfg)
	scheduler := dispatch.NewScheduler(store, client.Client, missions, sorties, lockSvc, mail,
		specialists, checkpoints, &cfg.Dispatch)
	plannerSvc := planner.NewService(nil, missions, sorties)

	srv := NewServer(cfg, client, store, missions, sorties, specialists, scheduler,
		lockSvc, mail, checkpoints, plannerSvc)
	return srv.Handler()
}

func request(t *testing.T, h http.Handler, method, path string, body any) (int, *envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env),
		"body: %s", rec.Body.String())
	require.NotEmpty(t, env.Timestamp)
	return rec.Code, &env
}

func decode(t *testing.T, raw json.RawMessage, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, dst))
}

func TestHealthEndpoint(t *testing.T) {
	h := setupServer(t)

	status, env := request(t, h, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, status)
	require.Nil(t, env.Error)

	var health HealthResponse
	decode(t, env.Data, &health)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "wal", health.JournalMode)
	assert.NotEmpty(t, health.Version)
}

func TestMissionEndpoints(t *testing.T) {
	h := setupServer(t)

	status, env := request(t, h, http.MethodPost, "/api/v1/missions", map[string]any{
		"title":    "ship the feature",
		"priority": "high",
	})
	require.Equal(t, http.StatusCreated, status)
	require.Nil(t, env.Error)

	var m struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decode(t, env.Data, &m)
	assert.True(t, strings.HasPrefix(m.ID, "msn-"), m.ID)
	assert.Equal(t, "pending", m.Status)

	status, env = request(t, h, http.MethodGet, "/api/v1/missions/"+m.ID, nil)
	assert.Equal(t, http.StatusOK, status)
	require.Nil(t, env.Error)

	// Unknown mission maps to the stable NOT_FOUND code.
	status, env = request(t, h, http.MethodGet, "/api/v1/missions/msn-ghost", nil)
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	// Missing title maps to VALIDATION_ERROR with the offending field.
	status, env = request(t, h, http.MethodPost, "/api/v1/missions", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Equal(t, "title", env.Error.Details["field"])
}

func TestSortieFlowOverHTTP(t *testing.T) {
	h := setupServer(t)

	_, env := request(t, h, http.MethodPost, "/api/v1/missions", map[string]any{"title": "m"})
	var m struct {
		ID string `json:"id"`
	}
	decode(t, env.Data, &m)

	status, env := request(t, h, http.MethodPost, "/api/v1/sorties", map[string]any{
		"mission_id": m.ID,
		"title":      "implement handler",
	})
	require.Equal(t, http.StatusCreated, status)
	var st struct {
		ID string `json:"id"`
	}
	decode(t, env.Data, &st)

	status, _ = request(t, h, http.MethodPost, "/api/v1/sorties/"+st.ID+"/assign",
		map[string]any{"specialist_id": "spc-1"})
	require.Equal(t, http.StatusOK, status)

	// Only the assignee may start.
	status, env = request(t, h, http.MethodPost, "/api/v1/sorties/"+st.ID+"/start",
		map[string]any{"specialist_id": "spc-2"})
	assert.Equal(t, http.StatusPreconditionFailed, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "PRECONDITION_FAILED", env.Error.Code)

	status, _ = request(t, h, http.MethodPost, "/api/v1/sorties/"+st.ID+"/start",
		map[string]any{"specialist_id": "spc-1"})
	require.Equal(t, http.StatusOK, status)

	status, env = request(t, h, http.MethodPost, "/api/v1/sorties/"+st.ID+"/complete",
		map[string]any{"specialist_id": "spc-1", "tests_passed": true, "summary": "done"})
	require.Equal(t, http.StatusOK, status)
	var done struct {
		Status   string `json:"status"`
		Progress int    `json:"progress"`
	}
	decode(t, env.Data, &done)
	assert.Equal(t, "completed", done.Status)
	assert.Equal(t, 100, done.Progress)
}

func TestLockConflictCarriesDetails(t *testing.T) {
	h := setupServer(t)

	status, env := request(t, h, http.MethodPost, "/api/v1/locks", map[string]any{
		"file":          "pkg/api/server.go",
		"specialist_id": "spc-1",
	})
	require.Equal(t, http.StatusCreated, status)
	var lock struct {
		ID string `json:"id"`
	}
	decode(t, env.Data, &lock)

	status, env = request(t, h, http.MethodPost, "/api/v1/locks", map[string]any{
		"file":          "pkg/api/server.go",
		"specialist_id": "spc-2",
	})
	assert.Equal(t, http.StatusConflict, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CONFLICT", env.Error.Code)
	assert.Equal(t, lock.ID, env.Error.Details["lock_id"])
	assert.Equal(t, "spc-1", env.Error.Details["reserved_by"])
}

func TestDecomposeEndpoint(t *testing.T) {
	h := setupServer(t)

	status, env := request(t, h, http.MethodPost, "/api/v1/decompose", map[string]any{
		"task":    "design it; build it; test it",
		"dry_run": true,
	})
	require.Equal(t, http.StatusOK, status)
	var dry struct {
		Plan struct {
			Sorties []struct {
				Key string `json:"key"`
			} `json:"sorties"`
		} `json:"plan"`
		Mission *struct{} `json:"mission"`
	}
	decode(t, env.Data, &dry)
	assert.Len(t, dry.Plan.Sorties, 3)
	assert.Nil(t, dry.Mission)

	status, env = request(t, h, http.MethodPost, "/api/v1/decompose", map[string]any{
		"task": "design it; build it",
	})
	require.Equal(t, http.StatusCreated, status)
	var res struct {
		Mission struct {
			ID string `json:"id"`
		} `json:"mission"`
		Sorties []struct {
			ID string `json:"id"`
		} `json:"sorties"`
	}
	decode(t, env.Data, &res)
	assert.NotEmpty(t, res.Mission.ID)
	assert.Len(t, res.Sorties, 2)
}

func TestEventEndpoints(t *testing.T) {
	h := setupServer(t)

	_, env := request(t, h, http.MethodPost, "/api/v1/missions", map[string]any{"title": "m"})
	var m struct {
		ID string `json:"id"`
	}
	decode(t, env.Data, &m)

	status, env := request(t, h, http.MethodGet, "/api/v1/events/stream/mission/"+m.ID, nil)
	require.Equal(t, http.StatusOK, status)
	var events []struct {
		EventType      string `json:"event_type"`
		SequenceNumber int64  `json:"sequence_number"`
	}
	decode(t, env.Data, &events)
	require.Len(t, events, 1)
	assert.Equal(t, "mission_created", events[0].EventType)

	// Raw appends validate the event type against the closed payload union.
	status, env = request(t, h, http.MethodPost, "/api/v1/events", map[string]any{
		"event_type":  "mission_teleported",
		"stream_type": "mission",
		"stream_id":   m.ID,
		"payload":     map[string]any{"mission_id": m.ID},
	})
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestErrorEnvelopeForRouterAndHandlerErrors(t *testing.T) {
	h := setupServer(t)

	// An unknown route never reaches a handler; the router's error still
	// renders as the standard envelope.
	status, env := request(t, h, http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.Equal(t, "Not Found", env.Error.Message)

	// A wrong method on a known route is a router error too.
	status, env = request(t, h, http.MethodDelete, "/api/v1/status", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, status)
	require.NotNil(t, env.Error)

	// Handler-level HTTP errors keep their message.
	status, env = request(t, h, http.MethodPost, "/api/v1/locks/lck-x/extend",
		map[string]any{"additional_ms": 0})
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Equal(t, "additional_ms must be positive", env.Error.Message)
}

func TestStatusEndpoint(t *testing.T) {
	h := setupServer(t)

	_, env := request(t, h, http.MethodPost, "/api/v1/missions", map[string]any{"title": "m"})
	var m struct {
		ID string `json:"id"`
	}
	decode(t, env.Data, &m)
	_, _ = request(t, h, http.MethodPost, "/api/v1/sorties", map[string]any{
		"mission_id": m.ID,
		"title":      "s",
	})

	status, env := request(t, h, http.MethodGet, "/api/v1/status", nil)
	require.Equal(t, http.StatusOK, status)
	var overview StatusResponse
	decode(t, env.Data, &overview)
	assert.Equal(t, 1, overview.Missions["pending"])
	assert.Equal(t, 1, overview.Sorties["pending"])
	assert.Positive(t, overview.LastSequence)
}

func TestStartMissionEndpointSpawnsSpecialists(t *testing.T) {
	h := setupServer(t)

	_, env := request(t, h, http.MethodPost, "/api/v1/missions", map[string]any{"title": "m"})
	var m struct {
		ID string `json:"id"`
	}
	decode(t, env.Data, &m)
	_, env = request(t, h, http.MethodPost, "/api/v1/sorties", map[string]any{
		"mission_id": m.ID,
		"title":      "s",
	})
	var st struct {
		ID string `json:"id"`
	}
	decode(t, env.Data, &st)

	status, env := request(t, h, http.MethodPost, "/api/v1/missions/"+m.ID+"/start", nil)
	require.Equal(t, http.StatusOK, status)
	require.Nil(t, env.Error)

	status, env = request(t, h, http.MethodGet, "/api/v1/sorties/"+st.ID, nil)
	require.Equal(t, http.StatusOK, status)
	var assigned struct {
		Status     string  `json:"status"`
		AssignedTo *string `json:"assigned_to"`
	}
	decode(t, env.Data, &assigned)
	assert.Equal(t, "assigned", assigned.Status)
	require.NotNil(t, assigned.AssignedTo)
	assert.True(t, strings.HasPrefix(*assigned.AssignedTo, "spc-"))
}
