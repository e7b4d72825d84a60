package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "two words", in: "Jane Doe", want: "Jane_Doe_resume.pdf"},
		{name: "single word", in: "Jane", want: "Jane_resume.pdf"},
		{name: "extra whitespace collapses", in: "  Jane   van  Doe ", want: "Jane_van_Doe_resume.pdf"},
		{name: "tabs and newlines", in: "Jane\tDoe\n", want: "Jane_Doe_resume.pdf"},
		{name: "empty falls back", in: "", want: "resume.pdf"},
		{name: "whitespace only falls back", in: "   ", want: "resume.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.in))
		})
	}
}
