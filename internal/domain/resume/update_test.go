package resume

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	r := NewRecord()

	assert.Equal(t, Personal{}, r.Personal)
	assert.Empty(t, r.Photo)
	assert.Empty(t, r.Skills)
	// Ровно по одной пустой позиции в каждом списке
	require.Len(t, r.Experience, 1)
	assert.Equal(t, Experience{}, r.Experience[0])
	require.Len(t, r.Education, 1)
	assert.Equal(t, Education{}, r.Education[0])
}

func TestRecord_WithPersonalField(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr bool
		check   func(t *testing.T, r Record)
	}{
		{
			name:  "set name",
			field: FieldName,
			value: "Jane Doe",
			check: func(t *testing.T, r Record) { assert.Equal(t, "Jane Doe", r.Personal.Name) },
		},
		{
			name:  "set email",
			field: FieldEmail,
			value: "jane@x.com",
			check: func(t *testing.T, r Record) { assert.Equal(t, "jane@x.com", r.Personal.Email) },
		},
		{
			name:  "set phone",
			field: FieldPhone,
			value: "555-1234",
			check: func(t *testing.T, r Record) { assert.Equal(t, "555-1234", r.Personal.Phone) },
		},
		{
			name:  "set address",
			field: FieldAddress,
			value: "Elm st. 5",
			check: func(t *testing.T, r Record) { assert.Equal(t, "Elm st. 5", r.Personal.Address) },
		},
		{
			name:    "unknown field",
			field:   "nickname",
			value:   "jd",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := NewRecord()
			got, err := orig.WithPersonalField(tt.field, tt.value)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownField)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
			// Исходная запись не изменилась
			assert.Equal(t, Personal{}, orig.Personal)
		})
	}
}

func TestRecord_ExperienceAddRemoveRoundTrip(t *testing.T) {
	orig := NewRecord()
	orig, err := orig.WithExperienceField(0, FieldCompany, "Acme")
	require.NoError(t, err)

	// Добавление и удаление по тому же индексу возвращает список
	// к прежней длине и содержимому.
	grown := orig.AppendExperience()
	require.Len(t, grown.Experience, 2)

	back, err := grown.RemoveExperience(1)
	require.NoError(t, err)

	if diff := cmp.Diff(orig, back); diff != "" {
		t.Errorf("record mismatch after add+remove (-want +got):\n%s", diff)
	}
}

func TestRecord_RemoveExperience(t *testing.T) {
	r := NewRecord().AppendExperience().AppendExperience()
	r, err := r.WithExperienceField(1, FieldPosition, "middle")
	require.NoError(t, err)

	t.Run("keeps order of the rest", func(t *testing.T) {
		got, err := r.RemoveExperience(0)
		require.NoError(t, err)
		require.Len(t, got.Experience, 2)
		assert.Equal(t, "middle", got.Experience[0].Position)
	})

	t.Run("may empty the list entirely", func(t *testing.T) {
		got := NewRecord()
		got, err := got.RemoveExperience(0)
		require.NoError(t, err)
		assert.Empty(t, got.Experience)
	})

	t.Run("stale index fails loudly", func(t *testing.T) {
		_, err := r.RemoveExperience(3)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		_, err = r.RemoveExperience(-1)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})
}

func TestRecord_WithExperienceField(t *testing.T) {
	r := NewRecord()

	r, err := r.WithExperienceField(0, FieldCompany, "Acme")
	require.NoError(t, err)
	r, err = r.WithExperienceField(0, FieldPosition, "Engineer")
	require.NoError(t, err)
	r, err = r.WithExperienceField(0, FieldDuration, "2020-2023")
	require.NoError(t, err)
	r, err = r.WithExperienceField(0, FieldDescription, "Did things")
	require.NoError(t, err)

	assert.Equal(t, Experience{
		Company:     "Acme",
		Position:    "Engineer",
		Duration:    "2020-2023",
		Description: "Did things",
	}, r.Experience[0])

	_, err = r.WithExperienceField(0, "salary", "1")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = r.WithExperienceField(5, FieldCompany, "x")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestRecord_EducationOps(t *testing.T) {
	r := NewRecord()

	r, err := r.WithEducationField(0, FieldInstitution, "MIT")
	require.NoError(t, err)
	r, err = r.WithEducationField(0, FieldDegree, "BSc")
	require.NoError(t, err)
	r, err = r.WithEducationField(0, FieldYear, "2019")
	require.NoError(t, err)

	assert.Equal(t, Education{Institution: "MIT", Degree: "BSc", Year: "2019"}, r.Education[0])

	grown := r.AppendEducation()
	require.Len(t, grown.Education, 2)
	assert.Equal(t, Education{}, grown.Education[1])

	back, err := grown.RemoveEducation(1)
	require.NoError(t, err)
	if diff := cmp.Diff(r, back); diff != "" {
		t.Errorf("record mismatch after add+remove (-want +got):\n%s", diff)
	}

	_, err = r.WithEducationField(0, "gpa", "5.0")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestRecord_WithPhoto(t *testing.T) {
	r := NewRecord()

	got, err := r.WithPhoto("data:image/png;base64,iVBORw0KGgo=")
	require.NoError(t, err)
	assert.NotEmpty(t, got.Photo)
	assert.Empty(t, r.Photo)

	_, err = r.WithPhoto("http://example.com/me.png")
	assert.ErrorIs(t, err, ErrInvalidPhoto)

	_, err = r.WithPhoto("")
	assert.ErrorIs(t, err, ErrInvalidPhoto)
}

func TestRecord_CloneIsolation(t *testing.T) {
	orig := NewRecord()
	clone := orig.Clone()

	clone.Experience[0].Company = "changed"
	assert.Empty(t, orig.Experience[0].Company)
}
