package lang

import (
	"bytes"
	"path/filepath"
	"strings"
)

// exactFilenames maps a bare filename (case-sensitive, the common VCS
// convention) straight to a Language, ahead of any extension check.
var exactFilenames = map[string]Language{
	"Makefile":   Shell,
	"makefile":   Shell,
	"GNUmakefile": Shell,
	"Dockerfile": Shell,
	"Rakefile":   Ruby,
	"Gemfile":    Ruby,
}

// extensions maps a lowercased file extension (including the leading dot)
// to a Language.
var extensions = map[string]Language{
	".md":       Markdown,
	".markdown": Markdown,
	".go":       Go,
	".rs":       Rust,
	".c":        C,
	".h":        C,
	".cc":       CPP,
	".cpp":      CPP,
	".cxx":      CPP,
	".hpp":      CPP,
	".hh":       CPP,
	".ts":       TypeScript,
	".tsx":      TypeScript,
	".js":       JavaScript,
	".jsx":      JavaScript,
	".mjs":      JavaScript,
	".cjs":      JavaScript,
	".py":       Python,
	".rb":       Ruby,
	".sh":       Shell,
	".bash":     Shell,
	".zsh":      Shell,
}

// shebangLanguages maps the interpreter basename found on a shebang line to
// a Language.
var shebangLanguages = map[string]Language{
	"python":  Python,
	"python3": Python,
	"ruby":    Ruby,
	"bash":    Shell,
	"sh":      Shell,
	"zsh":     Shell,
	"node":    JavaScript,
}

// Detect classifies path into a Language. Dispatch order, per §4.1: exact
// filename match, extension match, then shebang inspection of sampleBytes.
// Detect never fails; unknown files default to PlainText.
func Detect(path string, sampleBytes []byte) Language {
	base := filepath.Base(path)
	if l, ok := exactFilenames[base]; ok {
		return l
	}

	ext := strings.ToLower(filepath.Ext(path))
	if l, ok := extensions[ext]; ok {
		return l
	}

	if l, ok := detectShebang(sampleBytes); ok {
		return l
	}

	return PlainText
}

func detectShebang(sampleBytes []byte) (Language, bool) {
	if !bytes.HasPrefix(sampleBytes, []byte("#!")) {
		return PlainText, false
	}
	nl := bytes.IndexByte(sampleBytes, '\n')
	line := sampleBytes[2:]
	if nl >= 0 {
		line = sampleBytes[2:nl]
	}
	line = bytes.TrimSpace(line)
	fields := bytes.Fields(line)
	if len(fields) == 0 {
		return PlainText, false
	}

	interpreter := filepath.Base(string(fields[0]))
	// Handle "#!/usr/bin/env python3" style indirection.
	if interpreter == "env" && len(fields) > 1 {
		interpreter = filepath.Base(string(fields[1]))
	}

	if l, ok := shebangLanguages[interpreter]; ok {
		return l, true
	}
	return PlainText, false
}
