package draft

import (
	"resumeforge/internal/domain/resume"
)

type draftOutput struct {
	Body draftResponse
}

type draftResponse struct {
	Status string        `json:"status"`
	Draft  *resume.Draft `json:"draft,omitempty"`
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}

type getInput struct {
	ID string `path:"id" doc:"ID черновика"`
}

// fieldRequest - точечное обновление одного поля.
type fieldRequest struct {
	Field string `json:"field" minLength:"1" doc:"Имя поля" example:"name"`
	Value string `json:"value" doc:"Новое значение"`
}

type personalInput struct {
	ID   string `path:"id" doc:"ID черновика"`
	Body fieldRequest
}

type skillsInput struct {
	ID   string `path:"id" doc:"ID черновика"`
	Body struct {
		Skills string `json:"skills" doc:"Навыки одной строкой, через запятую по соглашению"`
	}
}

type photoInput struct {
	ID   string `path:"id" doc:"ID черновика"`
	Body struct {
		Data string `json:"data" minLength:"1" doc:"Фотография как data URI (data:image/...)"`
	}
}

type entryAppendInput struct {
	ID string `path:"id" doc:"ID черновика"`
}

type entryUpdateInput struct {
	ID    string `path:"id" doc:"ID черновика"`
	Index int    `path:"index" minimum:"0" doc:"Позиция в списке"`
	Body  fieldRequest
}

type entryRemoveInput struct {
	ID    string `path:"id" doc:"ID черновика"`
	Index int    `path:"index" minimum:"0" doc:"Позиция в списке"`
}

type validateOutput struct {
	Body validateResponse
}

type validateResponse struct {
	Valid bool `json:"valid"`
	// Сообщения ровно по отсутствующим обязательным полям
	Errors map[string]string `json:"errors,omitempty"`
}

type previewInput struct {
	ID      string `path:"id" doc:"ID черновика"`
	Variant string `query:"variant" doc:"Макет: modern, classic или minimalist; по умолчанию modern" required:"false"`
}

type previewOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type exportInput struct {
	ID   string `path:"id" doc:"ID черновика"`
	Body struct {
		Variant string `json:"variant,omitempty" doc:"Макет: modern, classic или minimalist; по умолчанию modern"`
	}
}

type exportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}
