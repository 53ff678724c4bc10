package lang

import "github.com/trueflow-dev/trueflow/internal/block"

// grammars holds the immutable, init-time-built parsing surface for every
// supported Language. Node-kind tables are representative rather than
// exhaustive, per §4.4 of the spec: anything not named here coalesces into
// a Gap at the top level.
var grammars = map[Language]Grammar{
	PlainText: {
		Language: PlainText,
	},
	Markdown: {
		Language: Markdown,
	},
	Go: {
		Language:           Go,
		TreeSitterLanguage: tsGo,
		NodeKinds: map[string]block.Kind{
			"import_declaration":   block.KindImportBlock,
			"function_declaration": block.KindFunction,
			"method_declaration":   block.KindFunction,
			"type_declaration":     block.KindStruct, // refined: struct vs interface, see splitter.refineKind
			"const_declaration":    block.KindConstant,
			"var_declaration":      block.KindConstant,
		},
		ImportNodeTypes:     map[string]bool{"import_declaration": true},
		DocCommentNodeTypes: map[string]bool{"comment": true},
		SignatureFields:     []string{"receiver", "name", "parameters", "result"},
		BodyField:           "body",
	},
	Rust: {
		Language:           Rust,
		TreeSitterLanguage: tsRust,
		NodeKinds: map[string]block.Kind{
			"use_declaration": block.KindImportBlock,
			"const_item":      block.KindConstant,
			"static_item":     block.KindConstant,
			"function_item":   block.KindFunction,
			"struct_item":     block.KindStruct,
			"enum_item":       block.KindEnum,
			"impl_item":       block.KindClass,
			"mod_item":        block.KindClass,
		},
		ImportNodeTypes:     map[string]bool{"use_declaration": true},
		DocCommentNodeTypes: map[string]bool{"line_comment": true, "block_comment": true},
		SignatureFields:     []string{"name", "parameters", "return_type"},
		BodyField:           "body",
	},
	Python: {
		Language:           Python,
		TreeSitterLanguage: tsPython,
		NodeKinds: map[string]block.Kind{
			"import_statement":      block.KindImportBlock,
			"import_from_statement": block.KindImportBlock,
			"function_definition":   block.KindFunction,
			"class_definition":      block.KindClass,
			"expression_statement":  block.KindConstant, // top-level assignment
		},
		ImportNodeTypes:     map[string]bool{"import_statement": true, "import_from_statement": true},
		DocCommentNodeTypes: map[string]bool{"comment": true},
		SignatureFields:     []string{"name", "parameters", "return_type"},
		BodyField:           "body",
	},
	TypeScript: {
		Language:           TypeScript,
		TreeSitterLanguage: tsTypeScript,
		NodeKinds: map[string]block.Kind{
			"import_statement":      block.KindImportBlock,
			"function_declaration":  block.KindFunction,
			"method_definition":     block.KindFunction,
			"class_declaration":     block.KindClass,
			"interface_declaration": block.KindClass,
			"lexical_declaration":   block.KindConstant,
		},
		ImportNodeTypes:     map[string]bool{"import_statement": true},
		DocCommentNodeTypes: map[string]bool{"comment": true},
		SignatureFields:     []string{"name", "parameters", "return_type"},
		BodyField:           "body",
	},
	JavaScript: {
		Language:           JavaScript,
		TreeSitterLanguage: tsJavaScript,
		NodeKinds: map[string]block.Kind{
			"import_statement":     block.KindImportBlock,
			"function_declaration": block.KindFunction,
			"method_definition":    block.KindFunction,
			"class_declaration":    block.KindClass,
			"lexical_declaration":  block.KindConstant,
		},
		ImportNodeTypes:     map[string]bool{"import_statement": true},
		DocCommentNodeTypes: map[string]bool{"comment": true},
		SignatureFields:     []string{"name", "parameters"},
		BodyField:           "body",
	},
	C: {
		Language:           C,
		TreeSitterLanguage: tsC,
		NodeKinds: map[string]block.Kind{
			"preproc_include":   block.KindImportBlock,
			"function_definition": block.KindFunction,
			"struct_specifier":  block.KindStruct,
			"enum_specifier":    block.KindEnum,
			"declaration":       block.KindConstant,
		},
		ImportNodeTypes:     map[string]bool{"preproc_include": true},
		DocCommentNodeTypes: map[string]bool{"comment": true},
		SignatureFields:     []string{"declarator"},
		BodyField:           "body",
	},
	CPP: {
		Language:           CPP,
		TreeSitterLanguage: tsCPP,
		NodeKinds: map[string]block.Kind{
			"preproc_include":      block.KindImportBlock,
			"function_definition":  block.KindFunction,
			"struct_specifier":     block.KindStruct,
			"enum_specifier":       block.KindEnum,
			"class_specifier":      block.KindClass,
			"namespace_definition": block.KindClass,
			"declaration":          block.KindConstant,
		},
		ImportNodeTypes:     map[string]bool{"preproc_include": true},
		DocCommentNodeTypes: map[string]bool{"comment": true},
		SignatureFields:     []string{"declarator"},
		BodyField:           "body",
	},
	Shell: {
		Language:           Shell,
		TreeSitterLanguage: tsBash,
		NodeKinds: map[string]block.Kind{
			"function_definition": block.KindFunction,
			"variable_assignment": block.KindConstant,
			"command":             block.KindConstant, // leading `set`/export lines
		},
		DocCommentNodeTypes: map[string]bool{"comment": true},
		SignatureFields:     nil, // bash grammar has no distinct signature node
		BodyField:           "body",
	},
	Ruby: {
		// No tree-sitter grammar for Ruby ships anywhere in the reference
		// corpus; Ruby is split with the regex-driven fallback in
		// splitter/ruby.go instead of a Grammar-driven tree-sitter walk.
		Language: Ruby,
	},
}
