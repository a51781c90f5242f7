package api

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rhyrak/krsplan/internal/conflict"
	"github.com/rhyrak/krsplan/internal/eliminator"
	"github.com/rhyrak/krsplan/internal/exporter"
	"github.com/rhyrak/krsplan/internal/parser"
	"github.com/rhyrak/krsplan/internal/scheduler"
	"github.com/rhyrak/krsplan/internal/store"
	"github.com/rhyrak/krsplan/pkg/model"
)

type Server struct {
	Store  *store.Store
	Config *scheduler.Configuration
	Logger *slog.Logger
}

// Router wires every endpoint onto a new gin engine.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.POST("/catalogs", s.handlePostCatalog)
	r.GET("/catalogs", s.handleGetCatalogs)
	r.GET("/catalogs/:id", s.handleGetCatalog)
	r.DELETE("/catalogs/:id", s.handleDeleteCatalog)

	r.POST("/plans", s.handlePostPlan)
	r.GET("/plans/:id", s.handleGetPlan)
	r.DELETE("/plans/:id", s.handleDeletePlan)
	r.PUT("/plans/:id/classes", s.handlePutPlanClass)
	r.GET("/plans/:id/conflicts", s.handleGetPlanConflicts)
	r.POST("/plans/:id/fill", s.handlePostPlanFill)
	r.GET("/plans/:id/ics", s.handleGetPlanICS)

	r.POST("/eliminate", s.handlePostEliminate)
	return r
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// fail maps package errors onto HTTP statuses.
func (s *Server) fail(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrCatalogNotFound), errors.Is(err, store.ErrPlanNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrSubjectNotInPlan), errors.Is(err, store.ErrClassNotFound),
		errors.Is(err, model.ErrMalformedSchedule):
		status = http.StatusBadRequest
	case errors.Is(err, parser.ErrEmptyParseResult):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, scheduler.ErrNoFeasibleAssignment):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		s.logger().Error("request failed", "path", ctx.FullPath(), "err", err)
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}

// handlePostCatalog accepts either a multipart "file" upload or the raw text
// as request body.
func (s *Server) handlePostCatalog(ctx *gin.Context) {
	name := ctx.Query("name")
	var text []byte

	if file, err := ctx.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			ctx.String(http.StatusBadRequest, err.Error())
			return
		}
		defer f.Close()
		if text, err = io.ReadAll(f); err != nil {
			ctx.String(http.StatusBadRequest, err.Error())
			return
		}
		if n := ctx.PostForm("name"); n != "" {
			name = n
		}
		if name == "" {
			name = file.Filename
		}
	} else {
		body, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			ctx.String(http.StatusBadRequest, err.Error())
			return
		}
		text = body
	}

	res, err := s.Config.NewParser().Parse(string(bytes.TrimPrefix(text, []byte("\xef\xbb\xbf"))))
	if err != nil {
		s.fail(ctx, err)
		return
	}
	if name == "" {
		name = "Untitled"
	}
	id := s.Store.AddCatalog(name, res.Catalog)

	ctx.JSON(http.StatusCreated, gin.H{
		"id":       id,
		"name":     name,
		"subjects": res.Catalog.Len(),
		"debug":    res.Debug,
	})
}

func (s *Server) handleGetCatalogs(ctx *gin.Context) {
	type summary struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Subjects int    `json:"subjects"`
	}
	out := []summary{}
	for _, c := range s.Store.Catalogs() {
		out = append(out, summary{ID: c.ID, Name: c.Name, Subjects: c.Catalog.Len()})
	}
	ctx.JSON(http.StatusOK, gin.H{"catalogs": out})
}

func (s *Server) handleGetCatalog(ctx *gin.Context) {
	c, err := s.Store.Catalog(ctx.Param("id"))
	if err != nil {
		s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, c)
}

func (s *Server) handleDeleteCatalog(ctx *gin.Context) {
	if err := s.Store.DeleteCatalog(ctx.Param("id")); err != nil {
		s.fail(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

type planRequest struct {
	Name       string   `json:"name"`
	CatalogID  string   `json:"catalogId" binding:"required"`
	SubjectIDs []string `json:"subjectIds"`
}

func (s *Server) handlePostPlan(ctx *gin.Context) {
	var req planRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := s.Store.AddPlan(req.Name, req.CatalogID, req.SubjectIDs)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, p)
}

func (s *Server) handleGetPlan(ctx *gin.Context) {
	p, err := s.Store.Plan(ctx.Param("id"))
	if err != nil {
		s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, p)
}

func (s *Server) handleDeletePlan(ctx *gin.Context) {
	if err := s.Store.DeletePlan(ctx.Param("id")); err != nil {
		s.fail(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

type classRequest struct {
	SubjectID string `json:"subjectId" binding:"required"`
	ClassID   string `json:"classId" binding:"required"`
}

func (s *Server) handlePutPlanClass(ctx *gin.Context) {
	var req classRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := s.Store.SelectClass(ctx.Param("id"), req.SubjectID, req.ClassID)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, p)
}

func (s *Server) handleGetPlanConflicts(ctx *gin.Context) {
	sel, err := s.Store.Selections(ctx.Param("id"))
	if err != nil {
		s.fail(ctx, err)
		return
	}
	subjects, err := s.Store.Subjects(ctx.Param("id"))
	if err != nil {
		s.fail(ctx, err)
		return
	}

	ids := []string{}
	found := conflict.Conflicts(sel)
	for _, x := range sel {
		if found[x.Class.ClassID] {
			ids = append(ids, x.Class.ClassID)
		}
	}
	valid, report := scheduler.Validate(sel, subjects)

	ctx.JSON(http.StatusOK, gin.H{
		"conflicts": ids,
		"valid":     valid,
		"report":    report,
	})
}

func (s *Server) handlePostPlanFill(ctx *gin.Context) {
	id := ctx.Param("id")
	p, err := s.Store.Plan(id)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	subjects, err := s.Store.Subjects(id)
	if err != nil {
		s.fail(ctx, err)
		return
	}

	assignment, err := scheduler.FillSections(subjects, p.SelectedClassBySubjectID)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	p, err = s.Store.SetClasses(id, assignment)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, p)
}

func (s *Server) handleGetPlanICS(ctx *gin.Context) {
	sel, err := s.Store.Selections(ctx.Param("id"))
	if err != nil {
		s.fail(ctx, err)
		return
	}
	loc, err := s.Config.Location()
	if err != nil {
		s.fail(ctx, err)
		return
	}
	start, err := s.Config.Start(loc)
	if err != nil {
		s.fail(ctx, err)
		return
	}

	var buf bytes.Buffer
	if err := exporter.GenerateICS(sel, exporter.Options{Start: start, Weeks: s.Config.Weeks}, &buf); err != nil {
		s.fail(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="plan.ics"`)
	ctx.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

type eliminateRequest struct {
	Candidates []model.SubjectSchedule `json:"candidates"`
	Want       []string                `json:"want"`
	Drop       string                  `json:"drop"`
	Lock       *model.Schedule         `json:"lock"`
}

// handlePostEliminate runs the posted candidates through eliminator.Build.
func (s *Server) handlePostEliminate(ctx *gin.Context) {
	var req eliminateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chain := eliminator.Build(req.Want, req.Drop, req.Lock)
	ctx.JSON(http.StatusOK, gin.H{"results": chain.Run(req.Candidates)})
}
