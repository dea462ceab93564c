package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
	"github.com/katalvlaran/labyrinth/solver"
	"github.com/katalvlaran/labyrinth/store"
)

// AlgorithmImport marks records uploaded as text rather than generated.
const AlgorithmImport = "import"

// Phases accepted by the events route.
const (
	PhaseGenerate = "generate"
	PhaseSolve    = "solve"
)

// MazeControllerConfig holds the dependencies of a MazeController.
type MazeControllerConfig struct {
	Repo             store.Repository
	MaxCells         int // upper bound on rows·columns, 0 for none
	DefaultAlgorithm generator.Kind
	DefaultSolver    solver.Kind
	Logger           logrus.FieldLogger
	// Seeds draws seeds for requests that do not name one; nil uses math/rand.
	Seeds func() int64
}

// MazeController generates, imports, serves and solves mazes.
type MazeController struct {
	repo             store.Repository
	maxCells         int
	defaultAlgorithm generator.Kind
	defaultSolver    solver.Kind
	log              logrus.FieldLogger
	seeds            func() int64
	now              func() time.Time
}

// NewMazeController returns a controller over cfg.Repo.
func NewMazeController(cfg MazeControllerConfig) (*MazeController, error) {
	if cfg.Repo == nil {
		return nil, errors.New("api: maze controller needs a repository")
	}
	mc := &MazeController{
		repo:             cfg.Repo,
		maxCells:         cfg.MaxCells,
		defaultAlgorithm: cfg.DefaultAlgorithm,
		defaultSolver:    cfg.DefaultSolver,
		log:              cfg.Logger,
		seeds:            cfg.Seeds,
		now:              time.Now,
	}
	if mc.log == nil {
		mc.log = logrus.StandardLogger()
	}
	if mc.seeds == nil {
		mc.seeds = rand.Int63
	}

	return mc, nil
}

// RegisterPublic registers the read routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:id", mc.get)
		mazes.GET("/:id/text", mc.text)
		mazes.GET("/:id/stats", mc.stats)
		mazes.GET("/:id/solution", mc.solution)
		mazes.GET("/:id/events", mc.events)
	}
}

// RegisterProtected registers the write routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.POST("/import", mc.importText)
	}
}

// create generates a maze. A request naming a seed gets the stored maze for
// that seed when one exists (200) and a new one otherwise (201).
func (mc *MazeController) create(c *gin.Context) {
	var req CreateMazeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := mc.checkSize(req.Rows, req.Columns); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	kind := mc.defaultAlgorithm
	if req.Algorithm != "" {
		k, err := generator.ParseKind(req.Algorithm)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		kind = k
	}

	ctx := c.Request.Context()
	if req.Seed == nil {
		rec, err := mc.generate(ctx, req.Rows, req.Columns, kind, mc.seeds())
		if err == nil {
			err = mc.repo.Save(ctx, rec)
		}
		if err != nil {
			mc.fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, newMazeResponse(rec))
		return
	}

	key := store.SeedKey(req.Rows, req.Columns, kind.String(), *req.Seed)
	rec, created, err := mc.repo.FindOrCreate(ctx, key, func() (*store.Record, error) {
		return mc.generate(ctx, req.Rows, req.Columns, kind, *req.Seed)
	})
	if err != nil {
		mc.fail(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, newMazeResponse(rec))
}

// importText stores a maze uploaded in text form. Malformed text is rejected
// with its line and column; a maze that is not perfect is rejected too.
func (mc *MazeController) importText(c *gin.Context) {
	limit := int64(1 << 20)
	if mc.maxCells > 0 {
		limit = int64(4*mc.maxCells + 4096)
	}
	body, err := readAllLimited(c, limit)
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return
	}

	m, err := maze.Parse(bytes.NewReader(body))
	if err != nil {
		var perr *maze.ParseError
		if errors.As(err, &perr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "line": perr.Line, "column": perr.Column})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err = mc.checkSize(m.Rows(), m.Columns()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err = m.Verify(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	rec := &store.Record{
		ID:        uuid.New(),
		Rows:      m.Rows(),
		Columns:   m.Columns(),
		Algorithm: AlgorithmImport,
		Text:      m.String(),
		CreatedAt: mc.now().UTC(),
	}
	if err = mc.repo.Save(c.Request.Context(), rec); err != nil {
		mc.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, newMazeResponse(rec))
}

func (mc *MazeController) get(c *gin.Context) {
	rec, ok := mc.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newMazeResponse(rec))
}

func (mc *MazeController) text(c *gin.Context) {
	rec, ok := mc.load(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(rec.Text))
}

func (mc *MazeController) stats(c *gin.Context) {
	rec, ok := mc.load(c)
	if !ok {
		return
	}
	m, ok := mc.parse(c, rec)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newStatsResponse(m.Stats()))
}

// solution solves the stored maze with ?solver= (default configured solver).
func (mc *MazeController) solution(c *gin.Context) {
	kind, ok := mc.solverKind(c)
	if !ok {
		return
	}
	rec, ok := mc.load(c)
	if !ok {
		return
	}
	m, ok := mc.parse(c, rec)
	if !ok {
		return
	}

	res, err := solver.Solve(c.Request.Context(), m, kind)
	if err != nil {
		mc.fail(c, err)
		return
	}
	path := make([]CellDTO, len(res.Path))
	for i, cell := range res.Path {
		path[i] = CellDTO{X: cell.X, Y: cell.Y}
	}
	c.JSON(http.StatusOK, SolutionResponse{
		Solver:   kind.String(),
		Steps:    res.Steps,
		Expanded: res.Expanded,
		Path:     path,
		Frame:    render.Frame(m),
	})
}

// events replays one phase as change events: ?phase=generate (default)
// re-carves a generated maze from its seed, ?phase=solve runs ?solver= with
// optional ?trace=true.
func (mc *MazeController) events(c *gin.Context) {
	rec, ok := mc.load(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	var recorder maze.Recorder

	switch phase := c.DefaultQuery("phase", PhaseGenerate); phase {
	case PhaseGenerate:
		if rec.Algorithm == AlgorithmImport {
			c.JSON(http.StatusConflict, gin.H{"error": "imported mazes have no generation to replay"})
			return
		}
		kind, err := generator.ParseKind(rec.Algorithm)
		if err != nil {
			mc.fail(c, err)
			return
		}
		m, err := maze.NewWalled(rec.Rows, rec.Columns)
		if err == nil {
			_, err = generator.Generate(ctx, m, kind, rand.New(rand.NewSource(rec.Seed)), generator.WithSink(&recorder))
		}
		if err == nil && m.String() != rec.Text {
			err = fmt.Errorf("api: replay of %s diverged from the stored maze", rec.ID)
		}
		if err != nil {
			mc.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, EventsResponse{
			Phase: phase, Algorithm: kind.String(),
			Rows: rec.Rows, Columns: rec.Columns,
			Events: newEventDTOs(recorder.Events),
		})

	case PhaseSolve:
		kind, ok := mc.solverKind(c)
		if !ok {
			return
		}
		trace, err := strconv.ParseBool(c.DefaultQuery("trace", "false"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "trace must be a boolean"})
			return
		}
		m, ok := mc.parse(c, rec)
		if !ok {
			return
		}
		opts := []solver.Option{solver.WithSink(&recorder)}
		if trace {
			opts = append(opts, solver.WithTrace())
		}
		if _, err = solver.Solve(ctx, m, kind, opts...); err != nil {
			mc.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, EventsResponse{
			Phase: phase, Algorithm: kind.String(),
			Rows: rec.Rows, Columns: rec.Columns,
			Events: newEventDTOs(recorder.Events),
		})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown phase %q", phase)})
	}
}

// generate carves and verifies a rows×columns maze from seed.
func (mc *MazeController) generate(ctx context.Context, rows, columns int, kind generator.Kind, seed int64) (*store.Record, error) {
	m, err := maze.NewWalled(rows, columns)
	if err != nil {
		return nil, err
	}
	if _, err = generator.Generate(ctx, m, kind, rand.New(rand.NewSource(seed))); err != nil {
		return nil, err
	}
	if err = m.Verify(); err != nil {
		return nil, err
	}
	mc.log.WithFields(logrus.Fields{
		"rows":      rows,
		"columns":   columns,
		"algorithm": kind.String(),
		"seed":      seed,
	}).Info("maze generated")

	return &store.Record{
		ID:        uuid.New(),
		Rows:      rows,
		Columns:   columns,
		Algorithm: kind.String(),
		Seed:      seed,
		Text:      m.String(),
		CreatedAt: mc.now().UTC(),
	}, nil
}

func (mc *MazeController) checkSize(rows, columns int) error {
	if mc.maxCells > 0 && exceedsCells(rows, columns, mc.maxCells) {
		return fmt.Errorf("%dx%d exceeds the limit of %d cells", rows, columns, mc.maxCells)
	}

	return nil
}

// exceedsCells reports whether rows·columns is above limit without forming
// the product, which may overflow.
func exceedsCells(rows, columns, limit int) bool {
	return rows > limit || columns > limit || (rows > 0 && columns > limit/rows)
}

func (mc *MazeController) solverKind(c *gin.Context) (solver.Kind, bool) {
	name := c.Query("solver")
	if name == "" {
		return mc.defaultSolver, true
	}
	kind, err := solver.ParseKind(name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, false
	}

	return kind, true
}

// load fetches the record named by the :id parameter, writing the error
// response itself when it cannot.
func (mc *MazeController) load(c *gin.Context) (*store.Record, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed maze id"})
		return nil, false
	}
	rec, err := mc.repo.ByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return nil, false
	}
	if err != nil {
		mc.fail(c, err)
		return nil, false
	}

	return rec, true
}

// parse rebuilds the maze of a stored record.
func (mc *MazeController) parse(c *gin.Context, rec *store.Record) (*maze.Maze, bool) {
	m, err := maze.Parse(strings.NewReader(rec.Text))
	if err != nil {
		mc.fail(c, fmt.Errorf("api: stored maze %s is corrupt: %w", rec.ID, err))
		return nil, false
	}

	return m, true
}

// fail reports an internal error without leaking its detail to the client.
func (mc *MazeController) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	mc.log.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// readAllLimited reads the request body, failing past limit bytes.
func readAllLimited(c *gin.Context, limit int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	body, err := c.GetRawData()
	if err != nil {
		return nil, fmt.Errorf("request body: %w", err)
	}

	return body, nil
}
