package lang

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// tsLanguage adapts *sitter.Language to the lang package's narrow TSLanguage
// interface, and is the bridge the splitter package uses to get back the
// concrete *sitter.Language for parsing.
type tsLanguage struct {
	name string
	raw  *sitter.Language
}

func (t *tsLanguage) Name() string { return t.name }

// Raw returns the underlying *sitter.Language for use by the splitter's
// tree-sitter parser. Returns nil if l has no tree-sitter grammar (e.g.
// Markdown, PlainText, Ruby — see grammar_tables.go).
func Raw(l Language) *sitter.Language {
	g := GrammarFor(l)
	ts, ok := g.TreeSitterLanguage.(*tsLanguage)
	if !ok || ts == nil {
		return nil
	}
	return ts.raw
}

func tsLang(name string, raw *sitter.Language) TSLanguage {
	return &tsLanguage{name: name, raw: raw}
}

// These variables wire the per-language grammar packages this module
// depends on: github.com/smacker/go-tree-sitter plus its golang, rust, c,
// cpp, javascript, typescript/typescript, bash, and python grammar
// subpackages, grounded on theRebelliousNerd-codenerd's
// internal/world/ast_treesitter.go.
var (
	tsGo         = tsLang("go", golang.GetLanguage())
	tsRust       = tsLang("rust", rust.GetLanguage())
	tsC          = tsLang("c", c.GetLanguage())
	tsCPP        = tsLang("cpp", cpp.GetLanguage())
	tsJavaScript = tsLang("javascript", javascript.GetLanguage())
	tsTypeScript = tsLang("typescript", typescript.GetLanguage())
	tsBash       = tsLang("bash", bash.GetLanguage())
	tsPython     = tsLang("python", python.GetLanguage())
)
