package export

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"resumeforge/internal/domain/resume"
	"resumeforge/internal/domain/template"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"golang.org/x/exp/slog"
)

// ValidationError блокирует экспорт и несёт ошибки ровно по отсутствующим
// обязательным полям.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("required fields are missing: %s", strings.Join(names, ", "))
}

// Renderer - порт на рендерер макетов.
type Renderer interface {
	Render(rec resume.Record, v template.Variant) (string, error)
}

// Artifact - готовый документ для скачивания.
type Artifact struct {
	Filename string
	Data     []byte
}

type Servicer interface {
	Export(ctx context.Context, draftID string, rec resume.Record, v template.Variant) (*Artifact, error)
}

// Service прогоняет запись через валидацию, рендерер и движок PDF.
// Повторный экспорт того же черновика до завершения текущего отклоняется.
type Service struct {
	renderer Renderer
	engine   Engine
	opts     Options
	log      *slog.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewService(renderer Renderer, engine Engine, opts Options, log *slog.Logger) *Service {
	return &Service{
		renderer: renderer,
		engine:   engine,
		opts:     opts,
		log:      log.With("component", "export_service"),
		inflight: make(map[string]struct{}),
	}
}

func (s *Service) Export(ctx context.Context, draftID string, rec resume.Record, v template.Variant) (*Artifact, error) {
	if errs := resume.Validate(rec); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	if err := s.acquire(draftID); err != nil {
		return nil, err
	}
	defer s.release(draftID)

	html, err := s.renderer.Render(rec, v)
	if err != nil {
		return nil, err
	}

	pdf, err := s.engine.Render(ctx, html, s.opts)
	if err != nil {
		s.log.Error("export failed", "draft_id", draftID, "variant", v, "error", err)
		return nil, err
	}

	if s.opts.Compress {
		pdf = s.compress(pdf)
	}

	name := Filename(rec.Personal.Name)
	s.log.Info("draft exported", "draft_id", draftID, "variant", v, "filename", name, "size_bytes", len(pdf))
	return &Artifact{Filename: name, Data: pdf}, nil
}

func (s *Service) acquire(draftID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[draftID]; busy {
		return ErrExportInProgress
	}
	s.inflight[draftID] = struct{}{}
	return nil
}

func (s *Service) release(draftID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, draftID)
}

// compress прогоняет документ через оптимизатор pdfcpu. Неудача не срывает
// экспорт - отдаём несжатый документ.
func (s *Service) compress(pdf []byte) []byte {
	var out bytes.Buffer
	if err := api.Optimize(bytes.NewReader(pdf), &out, nil); err != nil {
		s.log.Warn("pdf optimization failed, returning original", "error", err)
		return pdf
	}
	return out.Bytes()
}
