// Package http exposes the fleet core over HTTP. The paths and JSON shapes
// are consumed by an existing external client and must stay stable.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"agvsim/internal/core/application/usecases/commands"
	"agvsim/internal/core/application/usecases/queries"
	"agvsim/internal/core/state"
	"agvsim/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	loadGraphHandler commands.LoadGraphCommandHandler
	addRobotHandler  commands.AddRobotCommandHandler
	addOrderHandler  commands.AddOrderCommandHandler
	tickHandler      commands.TickCommandHandler
	resetHandler     commands.ResetCommandHandler
	getGraphHandler  queries.GetGraphQueryHandler
	getRobotsHandler queries.GetRobotsQueryHandler
	getOrdersHandler queries.GetOrdersQueryHandler
	getRoutesHandler queries.GetRoutesQueryHandler
	seed             func() (*state.Snapshot, error)
}

// NewServer creates an HTTP server with the required command and query
// handlers. seed supplies the snapshot /reset restores.
func NewServer(
	loadGraphHandler commands.LoadGraphCommandHandler,
	addRobotHandler commands.AddRobotCommandHandler,
	addOrderHandler commands.AddOrderCommandHandler,
	tickHandler commands.TickCommandHandler,
	resetHandler commands.ResetCommandHandler,
	getGraphHandler queries.GetGraphQueryHandler,
	getRobotsHandler queries.GetRobotsQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getRoutesHandler queries.GetRoutesQueryHandler,
	seed func() (*state.Snapshot, error),
) *Server {
	return &Server{
		loadGraphHandler: loadGraphHandler,
		addRobotHandler:  addRobotHandler,
		addOrderHandler:  addOrderHandler,
		tickHandler:      tickHandler,
		resetHandler:     resetHandler,
		getGraphHandler:  getGraphHandler,
		getRobotsHandler: getRobotsHandler,
		getOrdersHandler: getOrdersHandler,
		getRoutesHandler: getRoutesHandler,
		seed:             seed,
	}
}

// RegisterRoutes mounts all endpoints on the given echo instance. CORS is
// open so local visualization frontends can poll the read endpoints.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.CORS())

	e.GET("/healthz", s.Healthz)
	e.POST("/loadGraph", s.LoadGraph)
	e.POST("/addRobot", s.AddRobot)
	e.POST("/addOrder", s.AddOrder)
	e.POST("/tick", s.Tick)
	e.POST("/reset", s.Reset)
	e.GET("/getGraph", s.GetGraph)
	e.GET("/getRobots", s.GetRobots)
	e.GET("/getOrders", s.GetOrders)
	e.GET("/routes", s.GetRoutes)
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps the core error taxonomy onto HTTP statuses: duplicate
// names conflict with existing state (409), other validation faults are bad
// requests (400), invariant violations and everything unclassified are
// internal errors (500).
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrDuplicateName):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, state.ErrGraphNotLoaded):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, errorBody{Code: status, Message: err.Error()})
}

type edgeBody struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

type graphBody struct {
	Nodes []string   `json:"nodes"`
	Edges []edgeBody `json:"edges"`
}

type robotBody struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Node   string `json:"node"`
}

type orderBody struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Target string `json:"target"`
	Status string `json:"status"`
}

type routeBody struct {
	Robot string   `json:"robot"`
	Order string   `json:"order"`
	Path  []string `json:"path"`
}

type moveBody struct {
	Robot string `json:"robot"`
	From  string `json:"from"`
	To    string `json:"to"`
}

type tickBody struct {
	Session   string     `json:"session"`
	Seq       uint64     `json:"seq"`
	Moves     []moveBody `json:"moves"`
	Completed []string   `json:"completed"`
}

type ackBody struct {
	Status string `json:"status"`
}

// Healthz handles GET /healthz.
func (s *Server) Healthz(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, ackBody{Status: "ok"})
}

// LoadGraph handles POST /loadGraph - (re)initializes the warehouse graph.
func (s *Server) LoadGraph(ctx echo.Context) error {
	var body graphBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	specs := make([]commands.EdgeSpec, 0, len(body.Edges))
	for _, e := range body.Edges {
		specs = append(specs, commands.EdgeSpec{From: e.From, To: e.To, Weight: e.Weight})
	}

	cmd, err := commands.NewLoadGraphCommand(body.Nodes, specs)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.loadGraphHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ackBody{Status: "ok"})
}

// AddRobot handles POST /addRobot - registers an idle robot at a node.
func (s *Server) AddRobot(ctx echo.Context) error {
	var body robotBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewAddRobotCommand(body.Name, body.Node)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.addRobotHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, robotBody{
		Name:   created.Name(),
		Status: string(created.Status()),
		Node:   created.Node(),
	})
}

// AddOrder handles POST /addOrder - creates an order and immediately tries
// to schedule it.
func (s *Server) AddOrder(ctx echo.Context) error {
	var body orderBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewAddOrderCommand(body.Name, body.Source, body.Target)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.addOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderBody{
		Name:   created.Name(),
		Source: created.Source(),
		Target: created.Target(),
		Status: string(created.Status()),
	})
}

// Tick handles POST /tick - advances the simulation one step.
func (s *Server) Tick(ctx echo.Context) error {
	summary, err := s.tickHandler.Handle(ctx.Request().Context(), commands.NewTickCommand())
	if err != nil {
		return writeError(ctx, err)
	}

	body := tickBody{
		Session:   summary.Session.String(),
		Seq:       summary.Seq,
		Moves:     make([]moveBody, 0, len(summary.Moves)),
		Completed: summary.CompletedOrders,
	}
	if body.Completed == nil {
		body.Completed = []string{}
	}
	for _, m := range summary.Moves {
		body.Moves = append(body.Moves, moveBody{Robot: m.Robot, From: m.From, To: m.To})
	}

	return ctx.JSON(http.StatusOK, body)
}

// Reset handles POST /reset - restores the seed state.
func (s *Server) Reset(ctx echo.Context) error {
	seed, err := s.seed()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewResetCommand(seed)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.resetHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ackBody{Status: "ok"})
}

// GetGraph handles GET /getGraph.
func (s *Server) GetGraph(ctx echo.Context) error {
	got, err := s.getGraphHandler.Handle(ctx.Request().Context(), queries.NewGetGraphQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	body := graphBody{
		Nodes: got.Nodes,
		Edges: make([]edgeBody, 0, len(got.Edges)),
	}
	for _, e := range got.Edges {
		body.Edges = append(body.Edges, edgeBody{From: e.From, To: e.To, Weight: e.Weight})
	}

	return ctx.JSON(http.StatusOK, body)
}

// GetRobots handles GET /getRobots.
func (s *Server) GetRobots(ctx echo.Context) error {
	got, err := s.getRobotsHandler.Handle(ctx.Request().Context(), queries.NewGetRobotsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	robots := make([]robotBody, 0, len(got))
	for _, r := range got {
		robots = append(robots, robotBody{Name: r.Name, Status: string(r.Status), Node: r.Node})
	}

	return ctx.JSON(http.StatusOK, map[string][]robotBody{"robots": robots})
}

// GetOrders handles GET /getOrders.
func (s *Server) GetOrders(ctx echo.Context) error {
	got, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	orders := make([]orderBody, 0, len(got))
	for _, o := range got {
		orders = append(orders, orderBody{
			Name:   o.Name,
			Source: o.Source,
			Target: o.Target,
			Status: string(o.Status),
		})
	}

	return ctx.JSON(http.StatusOK, map[string][]orderBody{"orders": orders})
}

// GetRoutes handles GET /routes - planned paths of executing robots.
func (s *Server) GetRoutes(ctx echo.Context) error {
	got, err := s.getRoutesHandler.Handle(ctx.Request().Context(), queries.NewGetRoutesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	routes := make([]routeBody, 0, len(got))
	for _, r := range got {
		routes = append(routes, routeBody{Robot: r.Robot, Order: r.Order, Path: r.Path})
	}

	return ctx.JSON(http.StatusOK, map[string][]routeBody{"routes": routes})
}
