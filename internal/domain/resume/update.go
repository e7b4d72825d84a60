package resume

import (
	"fmt"
	"strings"
)

// Имена полей, принимаемые операциями обновления.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldAddress = "address"

	FieldCompany     = "company"
	FieldPosition    = "position"
	FieldDuration    = "duration"
	FieldDescription = "description"

	FieldInstitution = "institution"
	FieldDegree      = "degree"
	FieldYear        = "year"
)

// WithPersonalField возвращает копию записи с одним изменённым контактным
// полем.
func (r Record) WithPersonalField(field, value string) (Record, error) {
	out := r.Clone()
	switch field {
	case FieldName:
		out.Personal.Name = value
	case FieldEmail:
		out.Personal.Email = value
	case FieldPhone:
		out.Personal.Phone = value
	case FieldAddress:
		out.Personal.Address = value
	default:
		return Record{}, fmt.Errorf("personal field %q: %w", field, ErrUnknownField)
	}
	return out, nil
}

// WithExperienceField возвращает копию с изменённым полем позиции i.
// Индекс проверяется явно: устаревший индекс - это ошибка, а не no-op.
func (r Record) WithExperienceField(i int, field, value string) (Record, error) {
	if i < 0 || i >= len(r.Experience) {
		return Record{}, fmt.Errorf("experience[%d]: %w", i, ErrIndexOutOfRange)
	}
	out := r.Clone()
	switch field {
	case FieldCompany:
		out.Experience[i].Company = value
	case FieldPosition:
		out.Experience[i].Position = value
	case FieldDuration:
		out.Experience[i].Duration = value
	case FieldDescription:
		out.Experience[i].Description = value
	default:
		return Record{}, fmt.Errorf("experience field %q: %w", field, ErrUnknownField)
	}
	return out, nil
}

// AppendExperience добавляет пустую позицию в конец списка.
func (r Record) AppendExperience() Record {
	out := r.Clone()
	out.Experience = append(out.Experience, Experience{})
	return out
}

// RemoveExperience удаляет позицию i, сохраняя порядок остальных.
// Список может опустеть полностью - минимальная длина не поддерживается.
func (r Record) RemoveExperience(i int) (Record, error) {
	if i < 0 || i >= len(r.Experience) {
		return Record{}, fmt.Errorf("experience[%d]: %w", i, ErrIndexOutOfRange)
	}
	out := r.Clone()
	out.Experience = append(out.Experience[:i], out.Experience[i+1:]...)
	return out, nil
}

// WithEducationField возвращает копию с изменённым полем позиции i.
func (r Record) WithEducationField(i int, field, value string) (Record, error) {
	if i < 0 || i >= len(r.Education) {
		return Record{}, fmt.Errorf("education[%d]: %w", i, ErrIndexOutOfRange)
	}
	out := r.Clone()
	switch field {
	case FieldInstitution:
		out.Education[i].Institution = value
	case FieldDegree:
		out.Education[i].Degree = value
	case FieldYear:
		out.Education[i].Year = value
	default:
		return Record{}, fmt.Errorf("education field %q: %w", field, ErrUnknownField)
	}
	return out, nil
}

// AppendEducation добавляет пустую позицию в конец списка.
func (r Record) AppendEducation() Record {
	out := r.Clone()
	out.Education = append(out.Education, Education{})
	return out
}

// RemoveEducation удаляет позицию i.
func (r Record) RemoveEducation(i int) (Record, error) {
	if i < 0 || i >= len(r.Education) {
		return Record{}, fmt.Errorf("education[%d]: %w", i, ErrIndexOutOfRange)
	}
	out := r.Clone()
	out.Education = append(out.Education[:i], out.Education[i+1:]...)
	return out, nil
}

// WithSkills заменяет строку навыков целиком. Запятые - соглашение
// пользователя, не формат.
func (r Record) WithSkills(skills string) Record {
	out := r.Clone()
	out.Skills = skills
	return out
}

// WithPhoto заменяет фотографию. Принимается только data URI изображения;
// очистка фотографии не поддерживается.
func (r Record) WithPhoto(dataURI string) (Record, error) {
	if !strings.HasPrefix(dataURI, "data:image/") {
		return Record{}, ErrInvalidPhoto
	}
	out := r.Clone()
	out.Photo = dataURI
	return out, nil
}
