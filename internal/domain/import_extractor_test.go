package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractImports(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "import from",
			content: `import { a } from './a'`,
			want:    []string{"./a"},
		},
		{
			name:    "side effect import",
			content: `import "./polyfill"`,
			want:    []string{"./polyfill"},
		},
		{
			name:    "require",
			content: `const helpers = require('../scripts/helpers')`,
			want:    []string{"../scripts/helpers"},
		},
		{
			name: "imports before requires",
			content: "const x = require('./x')\n" +
				"import y from './y'\n" +
				"import * as z from \"lodash\"\n",
			want: []string{"./y", "lodash", "./x"},
		},
		{
			name:    "commented import still counts",
			content: "// import old from './old'\n",
			want:    []string{"./old"},
		},
		{
			name:    "require with space is not matched",
			content: `require ('./spaced')`,
		},
		{
			name:    "no imports",
			content: "module.exports = 42\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractImports(tt.content))
		})
	}
}
