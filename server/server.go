package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/abrishk26/rlox/format"
	"github.com/abrishk26/rlox/interp"
	"github.com/abrishk26/rlox/lang"
	"github.com/abrishk26/rlox/parser"
	"github.com/abrishk26/rlox/protocol"
	sitter "github.com/smacker/go-tree-sitter"
)

const contentLengthHeaderName = "Content-Length"

// Unhandled LSP method error.
var ErrUnhandledMethod = errors.New("unhandled method")

// Creates a new language server. The logger function parameter specifies the
// function to call for logging. If the logger is nil, will default to a
// function that does not log anything.
func NewServer(logger func(msg string)) Server {
	serverLogger := func(msg string) {}
	if logger != nil {
		serverLogger = logger
	}

	return Server{
		documents: make(map[string]string),
		logger:    serverLogger,
		nodes:     make(map[string]*sitter.Node),
	}
}

// Language server.
type Server struct {
	// Map of file URI and parsed nodes.
	nodes map[string]*sitter.Node
	// Map of file URI and source code.
	documents map[string]string
	logger    func(msg string)
}

// Serve reads JSONRPC from the reader, processes the message and responds by
// writing to writer.
func (s *Server) Serve(rd io.Reader, w io.Writer) error {
	reader := bufio.NewReader(rd)
	for {
		s.logger("\n------------------------------------------------------------------\nreading message...\n")
		msg, err := readMessage(reader)
		if err != nil {
			s.logger(fmt.Sprintf("[ERROR] %s\n", err.Error()))
			return err
		}
		s.logger(fmt.Sprintf("[REQUEST]\n%s\n", stringifyRequestMessage(msg)))

		if msg.Method == "exit" {
			return nil
		}

		contents, err := s.handleMessage(msg)
		if err != nil {
			s.logger(fmt.Sprintf("[ERROR] could not handle message: %s\n", err))
			continue
		}
		for _, content := range contents {
			contentBytes, err := json.Marshal(content)
			if err != nil {
				s.logger("could not marshal contents")
				continue
			}
			resMsg := ToProtocolMessage(contentBytes)
			s.logger(fmt.Sprintf("response: \n%s", resMsg))
			if _, err = fmt.Fprint(w, resMsg); err != nil {
				s.logger(fmt.Sprintf("could not print message to output %v: %s\n", msg, err))
				continue
			}
		}
	}
}

// Read LSP messages from the reader and return the unmarshalled request
// message.
func readMessage(r *bufio.Reader) (protocol.RequestMessage, error) {
	message := protocol.RequestMessage{}
	var contentLength int64
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return message, fmt.Errorf("could not read line: %s", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		colonIndex := strings.IndexRune(line, ':')
		if colonIndex == -1 {
			return message, fmt.Errorf("could not find colon delimiter in header")
		}
		name := line[:colonIndex]
		value := strings.TrimSpace(line[colonIndex+1:])
		if name == "Content-Length" {
			contentLength, err = strconv.ParseInt(value, 10, 64)
			if err != nil {
				return message, fmt.Errorf("failed to parse content length: %s", err)
			}
		}
	}

	content := make([]byte, contentLength)
	_, err := io.ReadFull(r, content)
	if err != nil {
		return message, fmt.Errorf("failed to read content: %s", err)
	}

	if err := json.Unmarshal(content, &message); err != nil {
		return message, fmt.Errorf("failed to unmarshal message: %s", err)
	}
	return message, nil
}

// Handles the request message and returns the messages to write back to the
// client. Notifications which need no reply return no messages, document
// syncs return the diagnostics notification for the new contents.
func (s *Server) handleMessage(msg protocol.RequestMessage) ([]any, error) {
	switch msg.Method {
	case "initialize":
		result := protocol.InitializeResult{
			Capabilities: newServerCapabilities(),
		}
		resultBytes, err := json.Marshal(result)
		if err != nil {
			return nil, err
		}
		return []any{protocol.ResponseMessage{
			ID:     msg.ID,
			Result: json.RawMessage(resultBytes),
		}}, nil

	case "initialized":
		return nil, nil

	case "shutdown":
		return []any{protocol.ResponseMessage{
			ID:     msg.ID,
			Result: protocol.NullResult,
		}}, nil

	case "textDocument/didOpen":
		var params protocol.DidOpenTextDocumentParams
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return nil, err
		}
		if params.TextDocument.LanguageID != "rlox" {
			return nil, fmt.Errorf("unhandled language %s, expected rlox", params.TextDocument.LanguageID)
		}
		return s.syncDocument(params.TextDocument.URI, params.TextDocument.Text)

	case "textDocument/didChange":
		var params protocol.DidChangeTextDocumentParams
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return nil, err
		}
		if len(params.ContentChanges) == 0 {
			return nil, nil
		}
		// Sync is full, the last change carries the whole document.
		text := params.ContentChanges[len(params.ContentChanges)-1].Text
		return s.syncDocument(params.TextDocument.URI, text)

	case "textDocument/hover":
		var params protocol.HoverParams
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return nil, err
		}
		return s.handleHover(msg.ID, params)

	case "textDocument/definition":
		var params protocol.DefinitionParams
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return nil, err
		}
		return s.handleDefinition(msg.ID, params)

	case "textDocument/completion":
		items := completionItems()
		resultBytes, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		return []any{protocol.ResponseMessage{
			ID:     msg.ID,
			Result: json.RawMessage(resultBytes),
		}}, nil

	case "completionItem/resolve":
		var item protocol.CompletionItem
		if err := json.Unmarshal(msg.Params, &item); err != nil {
			return nil, err
		}
		resultBytes, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		return []any{protocol.ResponseMessage{
			ID:     msg.ID,
			Result: json.RawMessage(resultBytes),
		}}, nil

	case "textDocument/formatting":
		var params protocol.DocumentFormattingParams
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return nil, err
		}
		return s.handleFormatting(msg.ID, params)

	default:
		// Covers methods we do not implement and the LSP version specific
		// "$/" ones. Replying keeps clients from waiting on the request.
		err := protocol.ResponseError{Code: -32601, Message: ErrUnhandledMethod.Error()}
		return []any{protocol.ResponseMessage{ID: msg.ID, Error: &err}}, nil
	}
}

// Stores the new document contents, reparses it and returns the diagnostics
// notification for it.
func (s *Server) syncDocument(uri, text string) ([]any, error) {
	s.documents[uri] = text
	rootNode, err := sitter.ParseCtx(context.Background(), []byte(text), parser.GetLanguage())
	if err != nil {
		return nil, err
	}
	s.nodes[uri] = rootNode

	diagnostics := Diagnostics(text)
	paramsBytes, err := json.Marshal(protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
	if err != nil {
		return nil, err
	}
	return []any{protocol.NotificationMessage{
		JSONRPC: "2.0",
		Method:  "textDocument/publishDiagnostics",
		Params:  json.RawMessage(paramsBytes),
	}}, nil
}

func (s *Server) handleHover(id int64, params protocol.HoverParams) ([]any, error) {
	rootNode, ok := s.nodes[params.TextDocument.URI]
	if !ok {
		return nil, errors.New("source node not found")
	}
	sourceCode, ok := s.documents[params.TextDocument.URI]
	if !ok {
		return nil, errors.New("source code not found")
	}
	nullResponse := []any{protocol.ResponseMessage{ID: id, Result: protocol.NullResult}}

	identifier, err := parser.FindIdentifier(rootNode, []byte(sourceCode), params.Position.Line, params.Position.Character)
	if errors.Is(err, parser.ErrNoDefinition) {
		return nullResponse, nil
	}
	if err != nil {
		return nil, err
	}

	var contents []string
	if item, ok := lang.Lib[identifier]; ok {
		contents = []string{item.Doc()}
	} else if desc, ok := lang.Keywords[identifier]; ok {
		contents = []string{desc}
	} else {
		return nullResponse, nil
	}

	resultBytes, err := json.Marshal(protocol.Hover{Contents: contents})
	if err != nil {
		return nil, err
	}
	return []any{protocol.ResponseMessage{
		ID:     id,
		Result: json.RawMessage(resultBytes),
	}}, nil
}

func (s *Server) handleDefinition(id int64, params protocol.DefinitionParams) ([]any, error) {
	rootNode, ok := s.nodes[params.TextDocument.URI]
	if !ok {
		return nil, errors.New("source node not found")
	}
	sourceCode, ok := s.documents[params.TextDocument.URI]
	if !ok {
		return nil, errors.New("source code not found")
	}
	nullResponse := []any{protocol.ResponseMessage{ID: id, Result: protocol.NullResult}}

	identifier, err := parser.FindIdentifier(rootNode, []byte(sourceCode), params.Position.Line, params.Position.Character)
	if errors.Is(err, parser.ErrNoDefinition) {
		return nullResponse, nil
	}
	if err != nil {
		return nil, err
	}

	definitionRange, err := parser.FindFuncDefinition(identifier, []byte(sourceCode))
	if errors.Is(err, parser.ErrNoDefinition) {
		definitionRange, err = parser.FindVarDefinition(identifier, []byte(sourceCode))
	}
	if errors.Is(err, parser.ErrNoDefinition) {
		return nullResponse, nil
	}
	if err != nil {
		return nil, err
	}

	location := protocol.Location{
		URI:   params.TextDocument.URI,
		Range: ToProtocolRange(definitionRange),
	}
	locationBytes, err := json.Marshal(location)
	if err != nil {
		return nil, err
	}
	return []any{protocol.ResponseMessage{
		ID:     id,
		Result: json.RawMessage(locationBytes),
	}}, nil
}

func (s *Server) handleFormatting(id int64, params protocol.DocumentFormattingParams) ([]any, error) {
	rootNode, ok := s.nodes[params.TextDocument.URI]
	if !ok {
		return nil, errors.New("source node not found")
	}
	sourceCode, ok := s.documents[params.TextDocument.URI]
	if !ok {
		return nil, errors.New("source code not found")
	}

	edits := format.GetIndentationEdits(rootNode)
	edits = append(edits, format.GetTrailingWhitespaceEdits([]byte(sourceCode))...)
	editsBytes, err := json.Marshal(edits)
	if err != nil {
		return nil, err
	}
	return []any{protocol.ResponseMessage{
		ID:     id,
		Result: json.RawMessage(editsBytes),
	}}, nil
}

// Diagnostics runs the interpreter frontend over the source and converts
// every scan, parse and resolve error into an LSP diagnostic.
func Diagnostics(sourceCode string) []protocol.Diagnostic {
	result := []protocol.Diagnostic{}
	_, errs := interp.Check(sourceCode)
	for _, err := range errs {
		line := 1
		message := err.Error()
		switch e := err.(type) {
		case interp.ScanError:
			line = e.Line
			message = e.Message
		case interp.ParseError:
			line = e.Token.Line
			message = e.Message
		case interp.ResolveError:
			line = e.Line
			message = e.Message
		}
		if line < 1 {
			line = 1
		}
		result = append(result, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint(line - 1), Character: 0},
				End:   protocol.Position{Line: uint(line - 1), Character: 0},
			},
			Severity: protocol.DiagnosticSeverityError,
			Source:   "rlox",
			Message:  message,
		})
	}
	return result
}

func completionItems() []protocol.CompletionItem {
	items := []protocol.CompletionItem{}
	for _, item := range lang.Lib {
		items = append(items, protocol.CompletionItem{
			Label: item.Name,
			Kind:  protocol.GetCompletionItemKind(protocol.CompletionItemKindFunction),
			Documentation: protocol.MarkUpContent{
				Kind:  "markdown",
				Value: item.Doc(),
			},
		})
	}
	for keyword, desc := range lang.Keywords {
		items = append(items, protocol.CompletionItem{
			Label: keyword,
			Kind:  protocol.GetCompletionItemKind(protocol.CompletionItemKindKeyword),
			Documentation: protocol.MarkUpContent{
				Kind:  "markdown",
				Value: desc,
			},
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Label < items[j].Label })
	return items
}

// Converts parser range into protocol range.
func ToProtocolRange(r parser.Range) protocol.Range {
	var result protocol.Range
	result.Start.Line = uint(r.Start.Row)
	result.Start.Character = uint(r.Start.Column)
	result.End.Line = uint(r.End.Row)
	result.End.Character = uint(r.End.Column)
	return result
}

// Formats content into LSP format by adding in headers and field names ready
// to send over the wire.
func ToProtocolMessage(contentBytes []byte) string {
	return fmt.Sprintf("%s: %d\r\n\r\n%s", contentLengthHeaderName, len(contentBytes), contentBytes)
}

func stringifyRequestMessage(msg protocol.RequestMessage) string {
	return fmt.Sprintf("    id: %d\n    method: %s\n    params: %s", msg.ID, msg.Method, string(msg.Params))
}

func newServerCapabilities() protocol.ServerCapabilities {
	resolveProvider := true
	definitionProvider := true
	textDocumentSyncKind := protocol.TextDocumentSyncKindFull
	result := protocol.ServerCapabilities{
		CompletionProvider: &protocol.CompletionOptions{
			ResolveProvider: &resolveProvider,
		},
		DefinitionProvider:         &definitionProvider,
		HoverProvider:              true,
		DocumentFormattingProvider: true,
		TextDocumentSync:           &textDocumentSyncKind,
	}
	return result
}
