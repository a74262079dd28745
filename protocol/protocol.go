package protocol

import (
	"encoding/json"
	"strings"
)

const (
	CompletionItemKindText          = "text"
	CompletionItemKindMethod        = "method"
	CompletionItemKindFunction      = "function"
	CompletionItemKindConstructor   = "constructor"
	CompletionItemKindField         = "field"
	CompletionItemKindVariable      = "variable"
	CompletionItemKindClass         = "class"
	CompletionItemKindInterface     = "interface"
	CompletionItemKindModule        = "module"
	CompletionItemKindProperty      = "property"
	CompletionItemKindUnit          = "unit"
	CompletionItemKindValue         = "value"
	CompletionItemKindEnum          = "enum"
	CompletionItemKindKeyword       = "keyword"
	CompletionItemKindSnippet       = "snippet"
	CompletionItemKindColor         = "color"
	CompletionItemKindFile          = "file"
	CompletionItemKindReference     = "reference"
	CompletionItemKindFolder        = "folder"
	CompletionItemKindEnumMember    = "enummember"
	CompletionItemKindConstant      = "constant"
	CompletionItemKindStruct        = "struct"
	CompletionItemKindEvent         = "event"
	CompletionItemKindOperator      = "operator"
	CompletionItemKindTypeParameter = "typeparameter"
)

func GetCompletionItemKind(kind string) *uint {
	var result uint
	switch kind {
	case "text":
		result = 1
	case "method":
		result = 2
	case "function":
		result = 3
	case "constructor":
		result = 4
	case "field":
		result = 5
	case "variable":
		result = 6
	case "class":
		result = 7
	case "interface":
		result = 8
	case "module":
		result = 9
	case "property":
		result = 10
	case "unit":
		result = 11
	case "value":
		result = 12
	case "enum":
		result = 13
	case "keyword":
		result = 14
	case "snippet":
		result = 15
	case "color":
		result = 16
	case "file":
		result = 17
	case "reference":
		result = 18
	case "folder":
		result = 19
	case "enummember":
		result = 20
	case "constant":
		result = 21
	case "struct":
		result = 22
	case "event":
		result = 23
	case "operator":
		result = 24
	case "typeparameter":
		result = 25
	default:
		result = 1
	}
	return &result
}

// The JSON "null" result for requests which completed without a value.
var NullResult = json.RawMessage("null")

type RequestMessage struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

type ResponseMessage struct {
	ID     int64           `json:"id"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *ResponseError  `json:"error,omitempty"`
}

// A server initiated message, used for publishing diagnostics.
type NotificationMessage struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type InitializeResult struct {
	Capabilities ServerCapabilities `json:"capabilities"`
	ServerInfo   *ServerInfo        `json:"serverInfo,omitempty"`
}

type ServerCapabilities struct {
	CompletionProvider         *CompletionOptions    `json:"completionProvider,omitempty"`
	DefinitionProvider         *bool                 `json:"definitionProvider,omitempty"`
	HoverProvider              bool                  `json:"hoverProvider,omitempty"`
	DocumentFormattingProvider bool                  `json:"documentFormattingProvider,omitempty"`
	TextDocumentSync           *TextDocumentSyncKind `json:"textDocumentSync,omitempty"`
}

type CompletionOptions struct {
	ResolveProvider *bool `json:"resolveProvider,omitempty"`
}

type ServerInfo struct {
	Name    string  `json:"name"`
	Version *string `json:"version"`
}

type TextDocumentSyncKind int

const (
	TextDocumentSyncKindNone        TextDocumentSyncKind = 0
	TextDocumentSyncKindFull        TextDocumentSyncKind = 1
	TextDocumentSyncKindIncremental TextDocumentSyncKind = 2
)

type CompletionResult struct {
	IsIncomplete bool             `json:"isIncomplete"`
	Items        []CompletionItem `json:"items"`
}

type CompletionItem struct {
	Label         string        `json:"label"`
	Kind          *uint         `json:"kind,omitempty"`
	Data          any           `json:"data,omitempty"`
	Documentation MarkUpContent `json:"documentation,omitempty"`
}

type MarkUpContent struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type Position struct {
	Line      uint `json:"line"`
	Character uint `json:"character"`
}

type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

type Location struct {
	URI   string `json:"uri"`
	Range Range  `json:"range"`
}

type TextDocumentIdentifier struct {
	URI string `json:"uri"`
}

type TextDocumentPositionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     Position               `json:"position"`
}

type HoverParams struct {
	TextDocumentPositionParams
}

type Hover struct {
	Contents []string `json:"contents"`
}

type DefinitionParams struct {
	TextDocumentPositionParams
}

type CompletionParams struct {
	TextDocumentPositionParams
}

type TextDocumentItem struct {
	URI        string `json:"uri"`
	LanguageID string `json:"languageId"`
	Version    int    `json:"version"`
	Text       string `json:"text"`
}

type DidOpenTextDocumentParams struct {
	TextDocument TextDocumentItem `json:"textDocument"`
}

type VersionedTextDocumentIdentifier struct {
	TextDocumentIdentifier
	Version int `json:"version"`
}

type TextDocumentContentChangeEvent struct {
	Text string `json:"text"`
}

type DidChangeTextDocumentParams struct {
	TextDocument   VersionedTextDocumentIdentifier  `json:"textDocument"`
	ContentChanges []TextDocumentContentChangeEvent `json:"contentChanges"`
}

type DiagnosticSeverity int

const (
	DiagnosticSeverityError       DiagnosticSeverity = 1
	DiagnosticSeverityWarning     DiagnosticSeverity = 2
	DiagnosticSeverityInformation DiagnosticSeverity = 3
	DiagnosticSeverityHint        DiagnosticSeverity = 4
)

type Diagnostic struct {
	Range    Range              `json:"range"`
	Severity DiagnosticSeverity `json:"severity,omitempty"`
	Source   string             `json:"source,omitempty"`
	Message  string             `json:"message"`
}

type PublishDiagnosticsParams struct {
	URI         string       `json:"uri"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

type TextEdit struct {
	Range   Range  `json:"range"`
	NewText string `json:"newText"`
}

type FormattingOptions struct {
	TabSize      uint `json:"tabSize"`
	InsertSpaces bool `json:"insertSpaces"`
}

type DocumentFormattingParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Options      FormattingOptions      `json:"options"`
}

// URI converts a filepath into a file URI. Windows paths have their
// backslashes replaced so the drive letter ends up after the scheme's
// third slash.
func URI(filepath string) string {
	path := strings.ReplaceAll(filepath, "\\", "/")
	if strings.HasPrefix(path, "/") {
		return "file://" + path
	}
	return "file:///" + path
}
