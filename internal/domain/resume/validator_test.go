package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	full := NewRecord()
	full.Personal = Personal{Name: "Jane Doe", Email: "jane@x.com", Phone: "555-1234"}

	tests := []struct {
		name    string
		mutate  func(Record) Record
		missing []string
	}{
		{
			name:   "all required fields present",
			mutate: func(r Record) Record { return r },
		},
		{
			name: "address may stay empty",
			mutate: func(r Record) Record {
				r.Personal.Address = ""
				return r
			},
		},
		{
			name: "missing name",
			mutate: func(r Record) Record {
				r.Personal.Name = ""
				return r
			},
			missing: []string{FieldName},
		},
		{
			name: "whitespace-only counts as missing",
			mutate: func(r Record) Record {
				r.Personal.Email = "   "
				return r
			},
			missing: []string{FieldEmail},
		},
		{
			name: "missing everything",
			mutate: func(r Record) Record {
				r.Personal = Personal{}
				return r
			},
			missing: []string{FieldName, FieldEmail, FieldPhone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.mutate(full.Clone()))

			// Ошибки ровно по отсутствующим полям, не больше
			assert.Len(t, errs, len(tt.missing))
			for _, f := range tt.missing {
				assert.Contains(t, errs, f)
				assert.NotEmpty(t, errs[f])
			}
		})
	}
}

func TestValidate_ScenarioFromForm(t *testing.T) {
	// Запись с заполненными обязательными полями и пустым остальным
	// проходит валидацию.
	r := NewRecord()
	r.Personal = Personal{Name: "Jane Doe", Email: "jane@x.com", Phone: "555-1234", Address: ""}

	assert.Empty(t, Validate(r))
}
