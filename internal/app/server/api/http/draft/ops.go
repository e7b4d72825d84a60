package draft

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafts-create",
		Method:      http.MethodPost,
		Path:        "/api/v1/drafts",
		Summary:     "Создать черновик резюме",
		Description: "Создает черновик с пустой записью: по одной пустой позиции в опыте работы и образовании.",
		Tags:        []string{"drafts"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafts-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/drafts/{id}",
		Summary:     "Получить черновик",
		Tags:        []string{"drafts"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafts-delete",
		Method:      http.MethodDelete,
		Path:        "/api/v1/drafts/{id}",
		Summary:     "Сбросить черновик",
		Description: "Удаляет черновик без следа. Аналог закрытия формы.",
		Tags:        []string{"drafts"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) personalOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafts-update-personal",
		Method:      http.MethodPut,
		Path:        "/api/v1/drafts/{id}/personal",
		Summary:     "Обновить контактное поле",
		Description: "Принимает одно из полей: name, email, phone, address.",
		Tags:        []string{"drafts"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) skillsOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafts-update-skills",
		Method:      http.MethodPut,
		Path:        "/api/v1/drafts/{id}/skills",
		Summary:     "Заменить строку навыков",
		Tags:        []string{"drafts"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) photoOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafts-update-photo",
		Method:      http.MethodPut,
		Path:        "/api/v1/drafts/{id}/photo",
		Summary:     "Заменить фотографию",
		Description: "Принимает data URI изображения. Очистка фотографии не поддерживается.",
		Tags:        []string{"drafts"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) experienceAppendOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafts-experience-append",
		Method:      http.MethodPost,
		Path:        "/api/v1/drafts/{id}/experience",
		Summary:     "Добавить пустую позицию опыта работы",
		Tags:        []string{"drafts", "experience"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) experienceUpdateOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafts-experience-update",
		Method:      http.MethodPut,
		Path:        "/api/v1/drafts/{id}/experience/{index}",
		Summary:     "Обновить поле позиции опыта работы",
		Description: "Принимает одно из полей: company, position, duration, description.",
		Tags:        []string{"drafts", "experience"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) experienceRemoveOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafts-experience-remove",
		Method:      http.MethodDelete,
		Path:        "/api/v1/drafts/{id}/experience/{index}",
		Summary:     "Удалить позицию опыта работы",
		Tags:        []string{"drafts", "experience"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) educationAppendOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafts-education-append",
		Method:      http.MethodPost,
		Path:        "/api/v1/drafts/{id}/education",
		Summary:     "Добавить пустую позицию образования",
		Tags:        []string{"drafts", "education"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) educationUpdateOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafts-education-update",
		Method:      http.MethodPut,
		Path:        "/api/v1/drafts/{id}/education/{index}",
		Summary:     "Обновить поле позиции образования",
		Description: "Принимает одно из полей: institution, degree, year.",
		Tags:        []string{"drafts", "education"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) educationRemoveOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafts-education-remove",
		Method:      http.MethodDelete,
		Path:        "/api/v1/drafts/{id}/education/{index}",
		Summary:     "Удалить позицию образования",
		Tags:        []string{"drafts", "education"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) validateOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafts-validate",
		Method:      http.MethodGet,
		Path:        "/api/v1/drafts/{id}/validate",
		Summary:     "Проверить обязательные поля",
		Description: "Возвращает ошибки ровно по отсутствующим полям: name, email, phone.",
		Tags:        []string{"drafts"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) previewOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafts-preview",
		Method:      http.MethodGet,
		Path:        "/api/v1/drafts/{id}/preview",
		Summary:     "Предпросмотр резюме",
		Description: "Возвращает HTML выбранного макета. Содержимое одинаково для всех макетов, отличается только оформление.",
		Tags:        []string{"drafts", "render"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) exportOp() huma.Operation {
	return huma.Operation{
		OperationID: "drafts-export",
		Method:      http.MethodPost,
		Path:        "/api/v1/drafts/{id}/export",
		Summary:     "Экспортировать резюме в PDF",
		Description: "Проверяет обязательные поля, рендерит выбранный макет и конвертирует его в PDF. Повторный экспорт того же черновика до завершения текущего отклоняется.",
		Tags:        []string{"drafts", "render"},
		Middlewares: h.middleware,
	}
}
