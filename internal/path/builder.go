package path

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// Builder derives report file paths from seller names.
type Builder struct {
	outputDir string
	prefix    string

	whitespaceReg *regexp.Regexp
	notAlnumReg   *regexp.Regexp
}

// NewBuilder creates outputDir when it is absent.
func NewBuilder(
	outputDir string,
	prefix string,
) (b *Builder, err error) {
	if _, err = os.Stat(outputDir); os.IsNotExist(err) {
		if err = os.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("create output dir %s: %s", outputDir, err)
		}
	}

	b = &Builder{
		outputDir: outputDir,
		prefix:    prefix,
	}
	if b.whitespaceReg, err = regexp.Compile(whitespaceRegexp); err != nil {
		return
	}
	b.notAlnumReg, err = regexp.Compile(notAlnumRegexp)
	return
}

// Output returns the report path for a seller name. Whitespace becomes
// an underscore, then every non-alphanumeric rune is stripped.
func (b *Builder) Output(name string) string {
	clean := b.whitespaceReg.ReplaceAllString(name, "_")
	clean = b.notAlnumReg.ReplaceAllString(clean, "")
	return filepath.Join(b.outputDir, b.prefix+clean+extXLSX)
}
