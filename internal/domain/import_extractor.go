package domain

import "regexp"

var (
	importPattern  = regexp.MustCompile(`import\s+(?:[^'"]+from\s+)?['"](.+?)['"]`)
	requirePattern = regexp.MustCompile(`require\(['"](.+?)['"]\)`)
)

// ExtractImports returns the raw specifiers referenced by a source file:
// every `import ... from '<p>'` or `import '<p>'` match first, then every
// `require('<p>')` match, each group in textual order. Comments and strings
// are not understood, so commented-out imports still count.
func ExtractImports(content string) []string {
	var imports []string

	for _, match := range importPattern.FindAllStringSubmatch(content, -1) {
		imports = append(imports, match[1])
	}

	for _, match := range requirePattern.FindAllStringSubmatch(content, -1) {
		imports = append(imports, match[1])
	}

	return imports
}
