// Сервис конструктора резюме:
// - черновик создаётся пустым и живёт, пока жив сервер;
// - операции формы точечно обновляют запись (контакты, опыт, образование,
//   навыки, фотография);
// - предпросмотр рендерит один из трёх макетов;
// - экспорт проверяет обязательные поля и конвертирует макет в PDF.

//POST   /api/v1/drafts                        # Создать черновик
//GET    /api/v1/drafts/{id}                   # Получить черновик
//DELETE /api/v1/drafts/{id}                   # Сбросить черновик
//PUT    /api/v1/drafts/{id}/personal          # Обновить контактное поле
//PUT    /api/v1/drafts/{id}/skills            # Заменить навыки
//PUT    /api/v1/drafts/{id}/photo             # Заменить фотографию
//POST   /api/v1/drafts/{id}/experience        # Добавить позицию опыта
//PUT    /api/v1/drafts/{id}/experience/{i}    # Обновить позицию опыта
//DELETE /api/v1/drafts/{id}/experience/{i}    # Удалить позицию опыта
//POST   /api/v1/drafts/{id}/education         # Добавить позицию образования
//PUT    /api/v1/drafts/{id}/education/{i}     # Обновить позицию образования
//DELETE /api/v1/drafts/{id}/education/{i}     # Удалить позицию образования
//GET    /api/v1/drafts/{id}/validate          # Проверить обязательные поля
//GET    /api/v1/drafts/{id}/preview           # HTML предпросмотр
//POST   /api/v1/drafts/{id}/export            # PDF экспорт

package api

import (
	draftAPI "resumeforge/internal/app/server/api/http/draft"
	healthAPI "resumeforge/internal/app/server/api/http/health"
	"resumeforge/internal/app/server/api/http/middleware"
	"resumeforge/internal/app/server/api/http/middleware/logger"
	"resumeforge/internal/domain/export"
	"resumeforge/internal/domain/resume"
	"resumeforge/internal/infrastructure/storage/sqlite"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	Draft  *draftAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(storage *sqlite.Storage, renderer draftAPI.Renderer, exporter export.Servicer, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("ResumeForge API", "1.0.0")

	API := humachi.New(mux, config)

	h := handlers(storage, renderer, exporter, log)
	h.Health.SetupRoutes(API)
	h.Draft.SetupRoutes(API)

	return mux
}

func handlers(storage *sqlite.Storage, renderer draftAPI.Renderer, exporter export.Servicer, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	draftRepo := sqlite.NewDraftRepository(storage, log)
	draftService := resume.NewService(draftRepo, log)
	middlewares.Add(loggerMW.Middleware())
	draftHandler := draftAPI.NewHandler(draftService, renderer, exporter, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Draft:  draftHandler,
	}
}
