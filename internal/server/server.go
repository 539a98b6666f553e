// Package server exposes the viewer over HTTP for the browser page.
package server

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sheetlab/sheetview/internal/config"
	"github.com/sheetlab/sheetview/internal/viewer"
	"github.com/sheetlab/sheetview/pkg/sheetview"
	"github.com/sheetlab/sheetview/pkg/sheetview/chart"
)

//go:embed templates/*
var embeddedFiles embed.FS

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Error codes surfaced to the page as toast payloads.
const (
	codeFormatRejected = "FORMAT_REJECTED"
	codeDecodeFailed   = "DECODE_FAILED"
	codeNoWorkbook     = "NO_WORKBOOK"
	codeNotFound       = "NOT_FOUND"
	codeInvalidInput   = "INVALID_INPUT"
)

// Server wires the viewer state to the HTTP API.
type Server struct {
	router    *gin.Engine
	viewer    *viewer.Viewer
	templates *template.Template
	cfg       *config.Config
}

// New creates a server around a viewer.
func New(v *viewer.Viewer, cfg *config.Config) (*Server, error) {
	gin.SetMode(cfg.Server.GinMode)

	templates, err := template.ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:    gin.Default(),
		viewer:    v,
		templates: templates,
		cfg:       cfg,
	}
	s.router.SetHTMLTemplate(templates)
	s.router.MaxMultipartMemory = cfg.Upload.MaxUploadBytes
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)

	api := s.router.Group("/api")
	api.POST("/workbook", s.handleUpload)
	api.GET("/sheets", s.handleSheets)
	api.GET("/sheets/:name", s.handleSheet)
	api.POST("/sheets/:name/activate", s.handleActivate)
	api.GET("/chart", s.handleChart)
	api.PUT("/cell", s.handleUpdateCell)
	api.GET("/export", s.handleExport)
}

// Handler returns the HTTP handler, for serving and for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	log.Printf("[server] listening on %s", s.cfg.Server.Addr)
	return s.router.Run(s.cfg.Server.Addr)
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// handleUpload ingests a dropped or picked file. The whole sheet
// collection is replaced on success; on any failure prior state stays
// as it was and the page gets a toast payload.
func (s *Server) handleUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded", "code": codeInvalidInput})
		return
	}
	defer file.Close()

	if header.Size > s.cfg.Upload.MaxUploadBytes {
		log.Printf("[upload] rejected %q: %d bytes over limit", header.Filename, header.Size)
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("File size (%.1f MB) exceeds the limit", float64(header.Size)/(1024*1024)),
			"code":  codeInvalidInput,
		})
		return
	}

	if err := s.viewer.Load(file, header.Filename, header.Size); err != nil {
		var decodeErr *sheetview.DecodeError
		switch {
		case errors.Is(err, sheetview.ErrWrongFormat):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Only .xlsx and .xls files are supported",
				"code":  codeFormatRejected,
			})
		case errors.As(err, &decodeErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Could not read the spreadsheet file",
				"code":  codeDecodeFailed,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "code": codeInvalidInput})
		}
		return
	}

	snap := s.viewer.Snapshot()
	grid, err := s.viewer.Grid(snap.ActiveSheet)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "code": codeInvalidInput})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"file":    snap.File,
		"sheets":  snap.SheetNames,
		"active":  snap.ActiveSheet,
		"grid":    grid,
		"chart":   snap.Sample,
		"palette": chart.Palette,
	})
}

func (s *Server) handleSheets(c *gin.Context) {
	snap := s.viewer.Snapshot()
	if !snap.Loaded {
		c.JSON(http.StatusNotFound, gin.H{"error": "No workbook loaded", "code": codeNoWorkbook})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"file":   snap.File,
		"sheets": snap.SheetNames,
		"active": snap.ActiveSheet,
	})
}

func (s *Server) handleSheet(c *gin.Context) {
	name := c.Param("name")
	grid, err := s.viewer.Grid(name)
	if err != nil {
		s.renderStateError(c, err, name)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sheet": name, "grid": grid})
}

func (s *Server) handleActivate(c *gin.Context) {
	name := c.Param("name")
	sample, err := s.viewer.SwitchSheet(name)
	if err != nil {
		s.renderStateError(c, err, name)
		return
	}
	c.JSON(http.StatusOK, gin.H{"active": name, "chart": sample, "palette": chart.Palette})
}

func (s *Server) handleChart(c *gin.Context) {
	snap := s.viewer.Snapshot()
	if !snap.Loaded {
		c.JSON(http.StatusNotFound, gin.H{"error": "No workbook loaded", "code": codeNoWorkbook})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"active":  snap.ActiveSheet,
		"chart":   snap.Sample,
		"palette": chart.Palette,
	})
}

type cellUpdate struct {
	Sheet string `json:"sheet" binding:"required"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Value string `json:"value"`
}

func (s *Server) handleUpdateCell(c *gin.Context) {
	var req cellUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": codeInvalidInput})
		return
	}
	if req.Row < 0 || req.Col < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cell coordinates must not be negative", "code": codeInvalidInput})
		return
	}
	if err := s.viewer.UpdateCell(req.Sheet, req.Row, req.Col, req.Value); err != nil {
		s.renderStateError(c, err, req.Sheet)
		return
	}
	snap := s.viewer.Snapshot()
	c.JSON(http.StatusOK, gin.H{"chart": snap.Sample})
}

func (s *Server) handleExport(c *gin.Context) {
	data, filename, err := s.viewer.Export()
	if err != nil {
		s.renderStateError(c, err, "")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (s *Server) renderStateError(c *gin.Context, err error, name string) {
	if errors.Is(err, sheetview.ErrNoWorkbook) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No workbook loaded", "code": codeNoWorkbook})
		return
	}
	log.Printf("[server] request for %q failed: %v", name, err)
	c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": codeNotFound})
}
