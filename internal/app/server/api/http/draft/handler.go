package draft

import (
	"context"
	"errors"
	"fmt"

	"resumeforge/internal/domain/export"
	"resumeforge/internal/domain/resume"
	"resumeforge/internal/domain/template"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Renderer - порт на рендерер макетов для предпросмотра.
type Renderer interface {
	Render(rec resume.Record, v template.Variant) (string, error)
}

type Handler struct {
	service    resume.Servicer
	renderer   Renderer
	exporter   export.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service resume.Servicer, renderer Renderer, exporter export.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		renderer:   renderer,
		exporter:   exporter,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	// Жизненный цикл черновика
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.deleteOp(), h.delete)

	// Операции формы
	huma.Register(api, h.personalOp(), h.updatePersonal)
	huma.Register(api, h.skillsOp(), h.updateSkills)
	huma.Register(api, h.photoOp(), h.updatePhoto)
	huma.Register(api, h.experienceAppendOp(), h.appendExperience)
	huma.Register(api, h.experienceUpdateOp(), h.updateExperience)
	huma.Register(api, h.experienceRemoveOp(), h.removeExperience)
	huma.Register(api, h.educationAppendOp(), h.appendEducation)
	huma.Register(api, h.educationUpdateOp(), h.updateEducation)
	huma.Register(api, h.educationRemoveOp(), h.removeEducation)

	// Предпросмотр и экспорт
	huma.Register(api, h.validateOp(), h.validate)
	huma.Register(api, h.previewOp(), h.preview)
	huma.Register(api, h.exportOp(), h.export)
}

func (h *Handler) create(ctx context.Context, _ *struct{}) (*draftOutput, error) {
	d, err := h.service.CreateDraft(ctx)
	if err != nil {
		return nil, err
	}
	return draftOK(d), nil
}

func (h *Handler) get(ctx context.Context, input *getInput) (*draftOutput, error) {
	d, err := h.service.GetDraft(ctx, input.ID)
	if err != nil {
		return nil, mapDomainError(err)
	}
	return draftOK(d), nil
}

func (h *Handler) delete(ctx context.Context, input *getInput) (*statusOutput, error) {
	if err := h.service.DeleteDraft(ctx, input.ID); err != nil {
		return nil, mapDomainError(err)
	}
	return &statusOutput{Body: statusResponse{Status: "Ok"}}, nil
}

func (h *Handler) updatePersonal(ctx context.Context, input *personalInput) (*draftOutput, error) {
	d, err := h.service.UpdatePersonal(ctx, input.ID, input.Body.Field, input.Body.Value)
	if err != nil {
		return nil, mapDomainError(err)
	}
	return draftOK(d), nil
}

func (h *Handler) updateSkills(ctx context.Context, input *skillsInput) (*draftOutput, error) {
	d, err := h.service.UpdateSkills(ctx, input.ID, input.Body.Skills)
	if err != nil {
		return nil, mapDomainError(err)
	}
	return draftOK(d), nil
}

func (h *Handler) updatePhoto(ctx context.Context, input *photoInput) (*draftOutput, error) {
	d, err := h.service.UpdatePhoto(ctx, input.ID, input.Body.Data)
	if err != nil {
		return nil, mapDomainError(err)
	}
	return draftOK(d), nil
}

func (h *Handler) appendExperience(ctx context.Context, input *entryAppendInput) (*draftOutput, error) {
	d, err := h.service.AppendExperience(ctx, input.ID)
	if err != nil {
		return nil, mapDomainError(err)
	}
	return draftOK(d), nil
}

func (h *Handler) updateExperience(ctx context.Context, input *entryUpdateInput) (*draftOutput, error) {
	d, err := h.service.UpdateExperience(ctx, input.ID, input.Index, input.Body.Field, input.Body.Value)
	if err != nil {
		return nil, mapDomainError(err)
	}
	return draftOK(d), nil
}

func (h *Handler) removeExperience(ctx context.Context, input *entryRemoveInput) (*draftOutput, error) {
	d, err := h.service.RemoveExperience(ctx, input.ID, input.Index)
	if err != nil {
		return nil, mapDomainError(err)
	}
	return draftOK(d), nil
}

func (h *Handler) appendEducation(ctx context.Context, input *entryAppendInput) (*draftOutput, error) {
	d, err := h.service.AppendEducation(ctx, input.ID)
	if err != nil {
		return nil, mapDomainError(err)
	}
	return draftOK(d), nil
}

func (h *Handler) updateEducation(ctx context.Context, input *entryUpdateInput) (*draftOutput, error) {
	d, err := h.service.UpdateEducation(ctx, input.ID, input.Index, input.Body.Field, input.Body.Value)
	if err != nil {
		return nil, mapDomainError(err)
	}
	return draftOK(d), nil
}

func (h *Handler) removeEducation(ctx context.Context, input *entryRemoveInput) (*draftOutput, error) {
	d, err := h.service.RemoveEducation(ctx, input.ID, input.Index)
	if err != nil {
		return nil, mapDomainError(err)
	}
	return draftOK(d), nil
}

func (h *Handler) validate(ctx context.Context, input *getInput) (*validateOutput, error) {
	errs, err := h.service.ValidateDraft(ctx, input.ID)
	if err != nil {
		return nil, mapDomainError(err)
	}

	resp := validateResponse{Valid: len(errs) == 0}
	if len(errs) > 0 {
		resp.Errors = errs
	}
	return &validateOutput{Body: resp}, nil
}

func (h *Handler) preview(ctx context.Context, input *previewInput) (*previewOutput, error) {
	variant, err := template.ParseVariant(input.Variant)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	d, err := h.service.GetDraft(ctx, input.ID)
	if err != nil {
		return nil, mapDomainError(err)
	}

	html, err := h.renderer.Render(d.Record, variant)
	if err != nil {
		return nil, mapDomainError(err)
	}

	return &previewOutput{
		ContentType: "text/html; charset=utf-8",
		Body:        []byte(html),
	}, nil
}

func (h *Handler) export(ctx context.Context, input *exportInput) (*exportOutput, error) {
	variant, err := template.ParseVariant(input.Body.Variant)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	d, err := h.service.GetDraft(ctx, input.ID)
	if err != nil {
		return nil, mapDomainError(err)
	}

	artifact, err := h.exporter.Export(ctx, d.ID, d.Record, variant)
	if err != nil {
		return nil, mapExportError(err)
	}

	return &exportOutput{
		ContentType:        "application/pdf",
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", artifact.Filename),
		Body:               artifact.Data,
	}, nil
}

func draftOK(d *resume.Draft) *draftOutput {
	return &draftOutput{
		Body: draftResponse{
			Status: "Ok",
			Draft:  d,
		},
	}
}

// mapDomainError переводит доменные ошибки в HTTP статусы.
func mapDomainError(err error) error {
	switch {
	case errors.Is(err, resume.ErrNotFound):
		return huma.Error404NotFound("Draft not found")
	case errors.Is(err, resume.ErrUnknownField),
		errors.Is(err, resume.ErrIndexOutOfRange),
		errors.Is(err, resume.ErrInvalidPhoto),
		errors.Is(err, template.ErrUnknownVariant):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return err
	}
}

// mapExportError обрабатывает два вида ошибок экспорта: блокирующую
// валидацию (поле-к-полю) и сбой самого конвертера.
func mapExportError(err error) error {
	var verr *export.ValidationError
	if errors.As(err, &verr) {
		details := make([]error, 0, len(verr.Fields))
		for field, msg := range verr.Fields {
			details = append(details, &huma.ErrorDetail{
				Message:  msg,
				Location: "record.personal." + field,
			})
		}
		return huma.Error422UnprocessableEntity("Draft is not ready for export", details...)
	}

	if errors.Is(err, export.ErrExportInProgress) {
		return huma.Error409Conflict(err.Error())
	}
	if errors.Is(err, export.ErrEngineFailed) {
		return huma.Error502BadGateway("PDF conversion failed, try again")
	}
	return mapDomainError(err)
}
