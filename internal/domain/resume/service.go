package resume

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Servicer - бизнес-логика работы с черновиками резюме.
type Servicer interface {
	CreateDraft(ctx context.Context) (*Draft, error)
	GetDraft(ctx context.Context, id string) (*Draft, error)
	DeleteDraft(ctx context.Context, id string) error

	UpdatePersonal(ctx context.Context, id, field, value string) (*Draft, error)
	UpdateSkills(ctx context.Context, id, skills string) (*Draft, error)
	UpdatePhoto(ctx context.Context, id, dataURI string) (*Draft, error)

	AppendExperience(ctx context.Context, id string) (*Draft, error)
	UpdateExperience(ctx context.Context, id string, index int, field, value string) (*Draft, error)
	RemoveExperience(ctx context.Context, id string, index int) (*Draft, error)

	AppendEducation(ctx context.Context, id string) (*Draft, error)
	UpdateEducation(ctx context.Context, id string, index int, field, value string) (*Draft, error)
	RemoveEducation(ctx context.Context, id string, index int) (*Draft, error)

	ValidateDraft(ctx context.Context, id string) (map[string]string, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) Servicer {
	return &Service{
		repo: repo,
		log:  log.With("component", "resume_service"),
	}
}

// CreateDraft создает черновик с пустой записью по умолчанию.
func (s *Service) CreateDraft(ctx context.Context) (*Draft, error) {
	now := time.Now().UTC()
	d := Draft{
		ID:        uuid.NewString(),
		Record:    NewRecord(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		s.log.Error("failed to create draft", "error", err)
		return nil, fmt.Errorf("create draft: %w", err)
	}
	s.log.Info("draft created", "draft_id", d.ID)
	return &d, nil
}

func (s *Service) GetDraft(ctx context.Context, id string) (*Draft, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// DeleteDraft сбрасывает черновик. Аналог закрытия формы: запись
// отбрасывается без следа.
func (s *Service) DeleteDraft(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("draft deleted", "draft_id", id)
	return nil
}

// apply загружает черновик, применяет чистое обновление записи и сохраняет
// результат. Прежняя запись при этом не изменяется.
func (s *Service) apply(ctx context.Context, id string, update func(Record) (Record, error)) (*Draft, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := update(d.Record)
	if err != nil {
		return nil, err
	}

	d.Record = next
	d.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, *d); err != nil {
		s.log.Error("failed to save draft", "draft_id", id, "error", err)
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return d, nil
}

func (s *Service) UpdatePersonal(ctx context.Context, id, field, value string) (*Draft, error) {
	return s.apply(ctx, id, func(r Record) (Record, error) {
		return r.WithPersonalField(field, value)
	})
}

func (s *Service) UpdateSkills(ctx context.Context, id, skills string) (*Draft, error) {
	return s.apply(ctx, id, func(r Record) (Record, error) {
		return r.WithSkills(skills), nil
	})
}

func (s *Service) UpdatePhoto(ctx context.Context, id, dataURI string) (*Draft, error) {
	return s.apply(ctx, id, func(r Record) (Record, error) {
		return r.WithPhoto(dataURI)
	})
}

func (s *Service) AppendExperience(ctx context.Context, id string) (*Draft, error) {
	return s.apply(ctx, id, func(r Record) (Record, error) {
		return r.AppendExperience(), nil
	})
}

func (s *Service) UpdateExperience(ctx context.Context, id string, index int, field, value string) (*Draft, error) {
	return s.apply(ctx, id, func(r Record) (Record, error) {
		return r.WithExperienceField(index, field, value)
	})
}

func (s *Service) RemoveExperience(ctx context.Context, id string, index int) (*Draft, error) {
	return s.apply(ctx, id, func(r Record) (Record, error) {
		return r.RemoveExperience(index)
	})
}

func (s *Service) AppendEducation(ctx context.Context, id string) (*Draft, error) {
	return s.apply(ctx, id, func(r Record) (Record, error) {
		return r.AppendEducation(), nil
	})
}

func (s *Service) UpdateEducation(ctx context.Context, id string, index int, field, value string) (*Draft, error) {
	return s.apply(ctx, id, func(r Record) (Record, error) {
		return r.WithEducationField(index, field, value)
	})
}

func (s *Service) RemoveEducation(ctx context.Context, id string, index int) (*Draft, error) {
	return s.apply(ctx, id, func(r Record) (Record, error) {
		return r.RemoveEducation(index)
	})
}

// ValidateDraft возвращает текущие ошибки обязательных полей черновика.
func (s *Service) ValidateDraft(ctx context.Context, id string) (map[string]string, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return Validate(d.Record), nil
}
