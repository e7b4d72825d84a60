package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/exp/slog"

	"resumeforge/internal/app/client/config"
	"resumeforge/internal/domain/resume"
)

// Секции резюме со списочными позициями
const (
	SectionExperience = "experience"
	SectionEducation  = "education"
)

type ctxKey string

// AppKey - ключ, под которым приложение лежит в контексте команды
const AppKey ctxKey = "app"

// FromContext достает приложение из контекста команды
func FromContext(ctx context.Context) *App {
	app, _ := ctx.Value(AppKey).(*App)
	return app
}

type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации HTTP клиента: %w", err)
	}

	return &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
	}, nil
}

// Config возвращает конфигурацию клиента
func (a *App) Config() *config.Config {
	return a.config
}

// CheckConnection проверяет соединение с сервером
func (a *App) CheckConnection() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return a.httpClient.HealthCheck(ctx)
}

// CurrentDraft возвращает ID текущего черновика из локального файла
func (a *App) CurrentDraft() (string, error) {
	data, err := os.ReadFile(a.config.DraftPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("черновик не найден. Создайте его: resumeforge draft new")
		}
		return "", fmt.Errorf("ошибка чтения текущего черновика: %w", err)
	}

	id := strings.TrimSpace(string(data))
	if id == "" {
		return "", fmt.Errorf("черновик не найден. Создайте его: resumeforge draft new")
	}

	return id, nil
}

func (a *App) saveCurrentDraft(id string) error {
	if err := os.WriteFile(a.config.DraftPath, []byte(id), 0600); err != nil {
		return fmt.Errorf("ошибка сохранения текущего черновика: %w", err)
	}
	return nil
}

func (a *App) clearCurrentDraft() error {
	if err := os.Remove(a.config.DraftPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("ошибка удаления текущего черновика: %w", err)
	}
	return nil
}

// NewDraft создает черновик на сервере и делает его текущим
func (a *App) NewDraft(ctx context.Context) (*resume.Draft, error) {
	draft, err := a.httpClient.CreateDraft(ctx)
	if err != nil {
		return nil, err
	}

	if err := a.saveCurrentDraft(draft.ID); err != nil {
		a.log.Warn("Не удалось запомнить текущий черновик", "error", err)
	}

	a.log.Info("Черновик создан", "id", draft.ID)
	return draft, nil
}

// GetDraft возвращает текущий черновик с сервера
func (a *App) GetDraft(ctx context.Context) (*resume.Draft, error) {
	id, err := a.CurrentDraft()
	if err != nil {
		return nil, err
	}

	return a.httpClient.GetDraft(ctx, id)
}

// DeleteDraft удаляет текущий черновик на сервере и забывает его
func (a *App) DeleteDraft(ctx context.Context) error {
	id, err := a.CurrentDraft()
	if err != nil {
		return err
	}

	if err := a.httpClient.DeleteDraft(ctx, id); err != nil {
		return err
	}

	if err := a.clearCurrentDraft(); err != nil {
		a.log.Warn("Не удалось забыть текущий черновик", "error", err)
	}

	a.log.Info("Черновик удален", "id", id)
	return nil
}

// SetPersonal обновляет одно контактное поле текущего черновика
func (a *App) SetPersonal(ctx context.Context, field, value string) (*resume.Draft, error) {
	id, err := a.CurrentDraft()
	if err != nil {
		return nil, err
	}

	return a.httpClient.UpdatePersonal(ctx, id, field, value)
}

// SetSkills заменяет блок навыков текущего черновика
func (a *App) SetSkills(ctx context.Context, skills string) (*resume.Draft, error) {
	id, err := a.CurrentDraft()
	if err != nil {
		return nil, err
	}

	return a.httpClient.UpdateSkills(ctx, id, skills)
}

// SetPhoto загружает файл изображения как фотографию текущего черновика
func (a *App) SetPhoto(ctx context.Context, path string) (*resume.Draft, error) {
	id, err := a.CurrentDraft()
	if err != nil {
		return nil, err
	}

	dataURI, err := EncodePhoto(path)
	if err != nil {
		return nil, err
	}

	return a.httpClient.UpdatePhoto(ctx, id, dataURI)
}

// AppendEntry добавляет пустую позицию в секцию текущего черновика
func (a *App) AppendEntry(ctx context.Context, section string) (*resume.Draft, error) {
	id, err := a.CurrentDraft()
	if err != nil {
		return nil, err
	}

	return a.httpClient.AppendEntry(ctx, id, section)
}

// SetEntry обновляет поле позиции секции текущего черновика
func (a *App) SetEntry(ctx context.Context, section string, index int, field, value string) (*resume.Draft, error) {
	id, err := a.CurrentDraft()
	if err != nil {
		return nil, err
	}

	return a.httpClient.UpdateEntry(ctx, id, section, index, field, value)
}

// RemoveEntry удаляет позицию секции текущего черновика
func (a *App) RemoveEntry(ctx context.Context, section string, index int) (*resume.Draft, error) {
	id, err := a.CurrentDraft()
	if err != nil {
		return nil, err
	}

	return a.httpClient.RemoveEntry(ctx, id, section, index)
}

// Validate проверяет обязательные поля текущего черновика
func (a *App) Validate(ctx context.Context) (bool, map[string]string, error) {
	id, err := a.CurrentDraft()
	if err != nil {
		return false, nil, err
	}

	return a.httpClient.Validate(ctx, id)
}

// Preview возвращает HTML предпросмотр текущего черновика
func (a *App) Preview(ctx context.Context, variant string) ([]byte, error) {
	id, err := a.CurrentDraft()
	if err != nil {
		return nil, err
	}

	return a.httpClient.Preview(ctx, id, variant)
}

// Export конвертирует текущий черновик в PDF.
// Возвращает имя файла, предложенное сервером, и сами данные.
func (a *App) Export(ctx context.Context, variant string) (string, []byte, error) {
	id, err := a.CurrentDraft()
	if err != nil {
		return "", nil, err
	}

	filename, data, err := a.httpClient.Export(ctx, id, variant)
	if err != nil {
		return "", nil, err
	}

	if filename == "" {
		filename = "resume.pdf"
	}

	a.log.Info("Черновик экспортирован", "id", id, "filename", filename, "bytes", len(data))
	return filename, data, nil
}

// EncodePhoto читает файл изображения и кодирует его как data URI.
// Тип определяется по содержимому, не по расширению.
func EncodePhoto(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения файла: %w", err)
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("файл %s не является изображением (%s)", path, mtype.String())
	}

	return "data:" + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
