package service

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/vilaca/gh-repo-export/internal/domain"
)

// ReportBuilder produces the aggregate result for a user.
type ReportBuilder interface {
	Build(ctx context.Context, login string) (*domain.AggregateResult, error)
}

// Renderer turns an aggregate result into the exported artifacts.
type Renderer interface {
	RenderJSON(w io.Writer, result *domain.AggregateResult) error
	RenderHTML(w io.Writer, result *domain.AggregateResult) error
}

// DataSource tells where a rendered export got its data from.
type DataSource string

const (
	// SourceSnapshot means a previously written structured snapshot was reused.
	SourceSnapshot DataSource = "snapshot"
	// SourceFetched means the snapshot could not be used and the data was fetched again.
	SourceFetched DataSource = "fetched"
	// SourceExported means a structured export was written first and reused.
	SourceExported DataSource = "exported"
)

// ExportStatus reports the outcome of ExportRendered.
type ExportStatus struct {
	Path           string
	StructuredPath string // set when a structured export was written alongside
	Source         DataSource
	Err            error
}

// OK reports whether the rendered file was written.
func (s ExportStatus) OK() bool {
	return s.Err == nil
}

// Exporter persists structured and rendered exports.
type Exporter struct {
	builder  ReportBuilder
	renderer Renderer
	store    *FileStore
	logger   Logger
}

// NewExporter creates a new exporter.
func NewExporter(builder ReportBuilder, renderer Renderer, store *FileStore, logger Logger) *Exporter {
	return &Exporter{
		builder:  builder,
		renderer: renderer,
		store:    store,
		logger:   logger,
	}
}

// StructuredPath derives the snapshot path that accompanies a rendered export.
func StructuredPath(renderedPath string) string {
	return strings.TrimSuffix(renderedPath, ".html") + ".json"
}

// ExportStructured builds the report for login and writes its structured form to path.
// Errors are logged and returned; nothing is written on failure.
func (e *Exporter) ExportStructured(ctx context.Context, login, path string) (*domain.AggregateResult, error) {
	result, err := e.builder.Build(ctx, login)
	if err != nil {
		e.logger.Printf("Export failed: %v", err)
		return nil, err
	}

	var buf bytes.Buffer
	if err := e.renderer.RenderJSON(&buf, result); err != nil {
		e.logger.Printf("Export failed: %v", err)
		return nil, err
	}

	if err := e.store.WriteFile(path, buf.Bytes()); err != nil {
		e.logger.Printf("Export failed: %v", err)
		return nil, err
	}

	e.logger.Printf("Exported repository data of %s to %s", login, path)
	return result, nil
}

// ExportRendered writes the rendered page for login to path.
//
// With a sourcePath the snapshot stored there is reused; if it cannot be
// read the data is fetched again. Without one, a structured export is
// written next to path first and its result reused.
//
// ExportRendered never fails: errors are logged and reported in the
// returned status only.
func (e *Exporter) ExportRendered(ctx context.Context, login, path, sourcePath string) ExportStatus {
	status := ExportStatus{Path: path}

	var (
		result *domain.AggregateResult
		err    error
	)
	if sourcePath != "" {
		result, err = e.store.LoadSnapshot(sourcePath)
		if err == nil {
			status.Source = SourceSnapshot
		} else {
			e.logger.Printf("Failed to load data from %s, fetching again: %v", sourcePath, err)
			status.Source = SourceFetched
			result, err = e.builder.Build(ctx, login)
		}
	} else {
		status.Source = SourceExported
		status.StructuredPath = StructuredPath(path)
		result, err = e.ExportStructured(ctx, login, status.StructuredPath)
	}
	if err != nil {
		e.logger.Printf("Export failed: %v", err)
		status.Err = err
		return status
	}

	var buf bytes.Buffer
	if err := e.renderer.RenderHTML(&buf, result); err != nil {
		e.logger.Printf("Export failed: %v", err)
		status.Err = err
		return status
	}

	if err := e.store.WriteFile(path, buf.Bytes()); err != nil {
		e.logger.Printf("Export failed: %v", err)
		status.Err = err
		return status
	}

	e.logger.Printf("Exported repositories of %s to %s", result.Profile.Login, path)
	return status
}
