package casing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		c      Case
		input  string
		output string
	}{
		{"kebab from pascal", Kebab, "MyProject", "my-project"},
		{"kebab from snake", Kebab, "my_project", "my-project"},
		{"kebab from spaces", Kebab, "My Project", "my-project"},
		{"kebab empty", Kebab, "", ""},
		{"pascal from kebab", Pascal, "my-project", "MyProject"},
		{"pascal from snake", Pascal, "my_project", "MyProject"},
		{"pascal empty", Pascal, "", ""},
		{"snake from pascal", Snake, "MyProject", "my_project"},
		{"snake from kebab", Snake, "my-project", "my_project"},
		{"snake from spaces", Snake, "My Project", "my_project"},
		{"snake empty", Snake, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.output, tt.c.Apply(tt.input))
		})
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	inputs := map[Case]string{
		Kebab:  "my-project",
		Pascal: "MyProject",
		Snake:  "my_project",
	}

	for c, in := range inputs {
		assert.Equal(t, in, c.Apply(in), "%s should be a fixed point of %s", in, c.FilterName())
	}
}

func TestKebabAndSnakeAgreeOnSegmentation(t *testing.T) {
	// The two lower-case forms only differ in their separator, so they
	// must split any input into the same words.
	inputs := []string{"MyProject", "my-project", "my_project", "someHTTPName", "a", ""}

	for _, in := range inputs {
		kebabWords := strings.Split(Kebab.Apply(in), "-")
		snakeWords := strings.Split(Snake.Apply(in), "_")
		assert.Equal(t, kebabWords, snakeWords, "segmentation of %q", in)
	}
}

func TestFilterNames(t *testing.T) {
	names := make([]string, 0, len(All()))
	for _, c := range All() {
		names = append(names, c.FilterName())
	}
	assert.Equal(t, []string{"kebab_case", "pascal_case", "snake_case"}, names)
}
