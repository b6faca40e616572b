package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "agvsim/internal/adapters/in/http"
	"agvsim/internal/core/application/usecases/commands"
	"agvsim/internal/core/application/usecases/queries"
	"agvsim/internal/core/ports"
	"agvsim/internal/core/state"
)

// nopStore satisfies ports.StateStore without persisting anything.
type nopStore struct{}

func (nopStore) Load(_ context.Context) (*state.Snapshot, error)  { return state.Seed() }
func (nopStore) Save(_ context.Context, _ *state.Snapshot) error  { return nil }
func (nopStore) Reset(_ context.Context, _ *state.Snapshot) error { return nil }

func newTestServer(t *testing.T) (*echo.Echo, *state.Aggregate) {
	t.Helper()

	agg := state.NewAggregate()
	seed, err := state.Seed()
	require.NoError(t, err)
	require.NoError(t, agg.Replace(seed))

	var store ports.StateStore = nopStore{}
	srv := httpadapter.NewServer(
		commands.NewLoadGraphCommandHandler(agg),
		commands.NewAddRobotCommandHandler(agg),
		commands.NewAddOrderCommandHandler(agg),
		commands.NewTickCommandHandler(agg),
		commands.NewResetCommandHandler(agg, store),
		queries.NewGetGraphQueryHandler(agg),
		queries.NewGetRobotsQueryHandler(agg),
		queries.NewGetOrdersQueryHandler(agg),
		queries.NewGetRoutesQueryHandler(agg),
		state.Seed,
	)

	e := echo.New()
	srv.RegisterRoutes(e)
	return e, agg
}

func doRequest(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	e, _ := newTestServer(t)
	rec := doRequest(t, e, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGetGraph(t *testing.T) {
	e, _ := newTestServer(t)
	rec := doRequest(t, e, http.MethodGet, "/getGraph", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Nodes []string `json:"nodes"`
		Edges []struct {
			From   string  `json:"from"`
			To     string  `json:"to"`
			Weight float64 `json:"weight"`
		} `json:"edges"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, body.Nodes)
	require.Len(t, body.Edges, 6)
	assert.Equal(t, "A", body.Edges[0].From)
	assert.Equal(t, "B", body.Edges[0].To)
	assert.InDelta(t, 1.0, body.Edges[0].Weight, 0)
}

func TestLoadGraph(t *testing.T) {
	e, agg := newTestServer(t)

	t.Run("success", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/loadGraph",
			`{"nodes":["X","Y"],"edges":[{"from":"X","to":"Y","weight":2.5}]}`)
		require.Equal(t, http.StatusOK, rec.Code)

		snap, err := agg.Snapshot()
		require.NoError(t, err)
		assert.Equal(t, []string{"X", "Y"}, snap.Graph.Nodes())
		assert.Empty(t, snap.Robots)
	})

	t.Run("invalid weight", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/loadGraph",
			`{"nodes":["X","Y"],"edges":[{"from":"X","to":"Y","weight":-1}]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("undeclared endpoint", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/loadGraph",
			`{"nodes":["X"],"edges":[{"from":"X","to":"Z","weight":1}]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/loadGraph", `{"nodes":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAddRobot(t *testing.T) {
	e, _ := newTestServer(t)

	t.Run("created", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/addRobot", `{"name":"R4","node":"F"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"name":"R4","status":"IDLE","node":"F"}`, rec.Body.String())
	})

	t.Run("unknown node", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/addRobot", `{"name":"R5","node":"Z"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate name", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/addRobot", `{"name":"R1","node":"A"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/addRobot", `{"node":"A"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAddOrder(t *testing.T) {
	e, _ := newTestServer(t)

	t.Run("created and scheduled", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/addOrder",
			`{"name":"O-2","source":"A","target":"F"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t,
			`{"name":"O-2","source":"A","target":"F","status":"IN_PROGRESS"}`,
			rec.Body.String())
	})

	t.Run("unknown node", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/addOrder",
			`{"name":"O-3","source":"X","target":"B"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate name", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/addOrder",
			`{"name":"O-1001","source":"A","target":"B"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestGetRobotsAndOrders(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(t, e, http.MethodGet, "/getRobots", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"robots":[
		{"name":"R1","status":"IDLE","node":"A"},
		{"name":"R2","status":"IDLE","node":"C"},
		{"name":"R3","status":"IDLE","node":"E"}
	]}`, rec.Body.String())

	rec = doRequest(t, e, http.MethodGet, "/getOrders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"orders":[
		{"name":"O-1001","source":"B","target":"D","status":"NEW"}
	]}`, rec.Body.String())
}

func TestTickAndRoutes(t *testing.T) {
	e, agg := newTestServer(t)

	_, err := agg.AssignOrder("O-1001")
	require.NoError(t, err)

	rec := doRequest(t, e, http.MethodGet, "/routes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"routes":[
		{"robot":"R1","order":"O-1001","path":["A","B","C","D"]}
	]}`, rec.Body.String())

	rec = doRequest(t, e, http.MethodPost, "/tick", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Session   string `json:"session"`
		Seq       uint64 `json:"seq"`
		Moves     []struct {
			Robot string `json:"robot"`
			From  string `json:"from"`
			To    string `json:"to"`
		} `json:"moves"`
		Completed []string `json:"completed"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Session)
	assert.Equal(t, uint64(1), body.Seq)
	require.Len(t, body.Moves, 1)
	assert.Equal(t, "R1", body.Moves[0].Robot)
	assert.Equal(t, "A", body.Moves[0].From)
	assert.Equal(t, "B", body.Moves[0].To)
	assert.Empty(t, body.Completed)
}

func TestReset(t *testing.T) {
	e, agg := newTestServer(t)

	_, err := agg.AssignOrder("O-1001")
	require.NoError(t, err)
	_, err = agg.Tick()
	require.NoError(t, err)

	rec := doRequest(t, e, http.MethodPost, "/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)

	snap, err := agg.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.Orders, 1)
	assert.True(t, snap.Orders[0].IsNew())
	for _, r := range snap.Robots {
		assert.True(t, r.IsIdle())
	}
}
