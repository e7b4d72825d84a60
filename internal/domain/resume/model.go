package resume

import (
	"time"
)

// Personal - контактные данные владельца резюме.
// Формат email/телефона намеренно не проверяется, только наличие.
type Personal struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Experience - одна запись об опыте работы. Все поля свободный текст.
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Education - одна запись об образовании.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
}

// Record - данные резюме целиком. Значение никогда не мутируется на месте:
// каждая операция возвращает новую копию, прежняя остаётся снимком.
type Record struct {
	Personal   Personal     `json:"personal"`
	Photo      string       `json:"photo,omitempty"` // data URI или пустая строка
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Skills     string       `json:"skills"`
}

// Draft - запись резюме вместе со служебными полями хранилища.
type Draft struct {
	ID        string    `json:"id"`
	Record    Record    `json:"record"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRecord возвращает пустую запись: все строки пустые, в опыте работы и
// образовании ровно по одной пустой позиции.
func NewRecord() Record {
	return Record{
		Experience: []Experience{{}},
		Education:  []Education{{}},
	}
}

// Clone возвращает глубокую копию записи. Срезы копируются, чтобы изменение
// копии не было видно через исходное значение.
func (r Record) Clone() Record {
	out := r
	out.Experience = make([]Experience, len(r.Experience))
	copy(out.Experience, r.Experience)
	out.Education = make([]Education, len(r.Education))
	copy(out.Education, r.Education)
	return out
}
