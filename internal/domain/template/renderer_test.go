package template

import (
	"io"
	"strings"
	"testing"

	"resumeforge/internal/domain/resume"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return r
}

func recordFixture() resume.Record {
	r := resume.NewRecord()
	r.Personal = resume.Personal{
		Name:    "Jane Doe",
		Email:   "jane@x.com",
		Phone:   "555-1234",
		Address: "Elm st. 5",
	}
	r.Skills = "Go, SQL, Docker"
	r, _ = r.WithExperienceField(0, resume.FieldCompany, "Acme")
	r, _ = r.WithExperienceField(0, resume.FieldPosition, "Engineer")
	r = r.AppendExperience()
	r, _ = r.WithExperienceField(1, resume.FieldCompany, "Globex")
	r, _ = r.WithEducationField(0, resume.FieldInstitution, "MIT")
	r, _ = r.WithEducationField(0, resume.FieldDegree, "BSc")
	return r
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{in: "modern", want: VariantModern},
		{in: "classic", want: VariantClassic},
		{in: "minimalist", want: VariantMinimalist},
		{in: "", want: VariantModern},
		{in: "fancy", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("variant "+tt.in, func(t *testing.T) {
			got, err := ParseVariant(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownVariant)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderer_AllVariantsCarrySameContent(t *testing.T) {
	r := testRenderer(t)
	rec := recordFixture()

	for _, v := range Variants() {
		t.Run(string(v), func(t *testing.T) {
			html, err := r.Render(rec, v)
			require.NoError(t, err)

			for _, want := range []string{
				"Jane Doe", "jane@x.com", "555-1234", "Elm st. 5",
				"Acme", "Engineer", "Globex", "MIT", "BSc",
				"Go, SQL, Docker",
			} {
				assert.Contains(t, html, want)
			}
		})
	}
}

func TestRenderer_PhotoOnlyWhenPresent(t *testing.T) {
	r := testRenderer(t)

	rec := recordFixture()
	for _, v := range Variants() {
		html, err := r.Render(rec, v)
		require.NoError(t, err)
		assert.NotContains(t, html, "<img", "variant %s", v)
	}

	withPhoto, err := rec.WithPhoto("data:image/png;base64,iVBORw0KGgo=")
	require.NoError(t, err)
	for _, v := range Variants() {
		html, err := r.Render(withPhoto, v)
		require.NoError(t, err)
		assert.Contains(t, html, `src="data:image/png;base64,iVBORw0KGgo="`, "variant %s", v)
		assert.NotContains(t, html, "ZgotmplZ", "variant %s", v)
	}
}

func TestRenderer_PreservesEntryOrder(t *testing.T) {
	r := testRenderer(t)
	rec := recordFixture()

	for _, v := range Variants() {
		html, err := r.Render(rec, v)
		require.NoError(t, err)

		first := strings.Index(html, "Acme")
		second := strings.Index(html, "Globex")
		require.GreaterOrEqual(t, first, 0)
		require.GreaterOrEqual(t, second, 0)
		assert.Less(t, first, second, "variant %s must keep stored order", v)
	}
}

func TestRenderer_DoesNotMutateRecord(t *testing.T) {
	r := testRenderer(t)
	rec := recordFixture()
	snapshot := rec.Clone()

	for _, v := range Variants() {
		_, err := r.Render(rec, v)
		require.NoError(t, err)
	}

	if diff := cmp.Diff(snapshot, rec); diff != "" {
		t.Errorf("record changed by rendering (-want +got):\n%s", diff)
	}
}

func TestRenderer_EscapesFreeText(t *testing.T) {
	r := testRenderer(t)

	rec := recordFixture()
	rec, err := rec.WithExperienceField(0, resume.FieldDescription, "built <script>alert(1)</script>\nshipped it")
	require.NoError(t, err)

	html, err := r.Render(rec, VariantModern)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	// Переводы строк превращаются в <br>
	assert.Contains(t, html, "<br>shipped it")
}

func TestRenderer_UnknownVariant(t *testing.T) {
	r := testRenderer(t)

	_, err := r.Render(recordFixture(), Variant("fancy"))
	assert.ErrorIs(t, err, ErrUnknownVariant)
}
