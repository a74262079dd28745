package interp

import (
	"fmt"
	"strconv"
)

// A scan error with the line it occurred on.
type ScanError struct {
	Line    int
	Message string
}

func (e ScanError) Error() string {
	return fmt.Sprintf("[line: %d] Error: %s", e.Line, e.Message)
}

// Scanner turns rlox source text into tokens. Scanning continues past
// errors so that every problem in the source is reported in one pass.
type Scanner struct {
	source  []rune
	current int
	line    int
	tokens  []Token
	errs    []error
}

func NewScanner(source string) *Scanner {
	return &Scanner{source: []rune(source), line: 1}
}

// ScanTokens scans the whole source and returns the tokens terminated by an
// EOF token. When the source contains lexical errors the collected errors
// are returned alongside the tokens scanned so far.
func (s *Scanner) ScanTokens() ([]Token, []error) {
	for !s.isAtEnd() {
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Line: s.line})
	return s.tokens, s.errs
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '{':
		s.addToken(LeftBrace)
	case '}':
		s.addToken(RightBrace)
	case '(':
		s.addToken(LeftParen)
	case ')':
		s.addToken(RightParen)
	case ',':
		s.addToken(Comma)
	case '.':
		s.addToken(Dot)
	case ';':
		s.addToken(Semicolon)
	case '*':
		s.addToken(Star)
	case '-':
		s.addToken(Minus)
	case '+':
		s.addToken(Plus)
	case '/':
		if s.peek() == '/' {
			for !s.isAtEnd() && s.peek() != '\n' {
				s.advance()
			}
			if !s.isAtEnd() {
				s.line++
				s.advance()
			}
		} else {
			s.addToken(Slash)
		}
	case '!':
		if s.match('=') {
			s.addToken(BangEqual)
		} else {
			s.addToken(Bang)
		}
	case '=':
		if s.match('=') {
			s.addToken(EqualEqual)
		} else {
			s.addToken(Equal)
		}
	case '>':
		if s.match('=') {
			s.addToken(GreaterEqual)
		} else {
			s.addToken(Greater)
		}
	case '<':
		if s.match('=') {
			s.addToken(LessEqual)
		} else {
			s.addToken(Less)
		}
	case '"':
		s.scanString()
	case ' ', '\t', '\r':
	case '\n':
		s.line++
	default:
		if isDigit(c) {
			s.scanNumber(c)
		} else if isAlpha(c) {
			s.scanIdentifier(c)
		} else {
			s.error("Unexpected character.")
		}
	}
}

func (s *Scanner) scanString() {
	var buf []rune
	for !s.isAtEnd() && s.peek() != '"' {
		if s.peek() == '\n' {
			s.line++
		} else {
			buf = append(buf, s.peek())
		}
		s.advance()
	}
	if s.isAtEnd() {
		s.error("Unterminated string.")
		return
	}
	s.advance()
	value := string(buf)
	s.tokens = append(s.tokens, Token{
		Type:    String,
		Line:    s.line,
		Lexeme:  value,
		Literal: Str(value),
	})
}

func (s *Scanner) scanNumber(first rune) {
	buf := []rune{first}
	for !s.isAtEnd() && (isDigit(s.peek()) || s.peek() == '.') {
		buf = append(buf, s.peek())
		s.advance()
	}
	text := string(buf)
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		s.error("Invalid number literal.")
		return
	}
	s.tokens = append(s.tokens, Token{
		Type:    Number,
		Line:    s.line,
		Lexeme:  text,
		Literal: Num(value),
	})
}

func (s *Scanner) scanIdentifier(first rune) {
	buf := []rune{first}
	for !s.isAtEnd() && isAlphaNumeric(s.peek()) {
		buf = append(buf, s.peek())
		s.advance()
	}
	text := string(buf)
	if keyword, ok := keywords[text]; ok {
		s.tokens = append(s.tokens, Token{Type: keyword, Line: s.line, Lexeme: text})
		return
	}
	s.tokens = append(s.tokens, Token{Type: Identifier, Line: s.line, Lexeme: text})
}

func (s *Scanner) addToken(tokenType TokenType) {
	s.tokens = append(s.tokens, Token{Type: tokenType, Line: s.line})
}

func (s *Scanner) error(message string) {
	s.errs = append(s.errs, ScanError{Line: s.line, Message: message})
}

func (s *Scanner) advance() rune {
	c := s.source[s.current]
	s.current++
	return c
}

func (s *Scanner) match(expected rune) bool {
	if s.isAtEnd() || s.peek() != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}
