package interp

import "fmt"

// A parse error at a specific token.
type ParseError struct {
	Token   Token
	Message string
}

func (e ParseError) Error() string {
	if e.Token.Type == EOF {
		return fmt.Sprintf("[Line: %d] at end '%s'", e.Token.Line, e.Message)
	}
	at := e.Token.Lexeme
	if at == "" {
		at = e.Token.Type.String()
	}
	return fmt.Sprintf("[Line: %d] at %s '%s'", e.Token.Line, at, e.Message)
}

// Parser is a recursive descent parser over scanned tokens. After an error
// it synchronizes at the next statement boundary so a single pass reports
// every problem it can find.
type Parser struct {
	tokens  []Token
	current int
	errs    []error
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses a whole program. The returned statements are only usable
// when no errors are returned.
func (p *Parser) Parse() ([]Stmt, []error) {
	var stmts []Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.errs = append(p.errs, err)
			p.synchronize()
			continue
		}
		stmts = append(stmts, stmt)
	}
	return stmts, p.errs
}

// ParseExpression parses a single expression spanning all of the input,
// used by the REPL to evaluate bare expressions without a trailing
// semicolon.
func (p *Parser) ParseExpression() (Expr, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.isAtEnd() {
		return nil, ParseError{Token: p.peek(), Message: "Expect expression"}
	}
	return expr, nil
}

func (p *Parser) declaration() (Stmt, error) {
	if p.match(Var) {
		return p.varDecl()
	}
	if p.match(Fun) {
		return p.function()
	}
	if p.match(Class) {
		return p.classDecl()
	}
	return p.statement()
}

func (p *Parser) varDecl() (Stmt, error) {
	name, err := p.consume(Identifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	var initializer Expr
	if p.match(Equal) {
		if initializer, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(Semicolon, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &VarStmt{Name: name, Initializer: initializer}, nil
}

func (p *Parser) function() (Stmt, error) {
	name, err := p.consume(Identifier, "Expect name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(LeftParen, "Expect '(' after function name."); err != nil {
		return nil, err
	}
	var params []Token
	if !p.check(RightParen) {
		for {
			param, err := p.consume(Identifier, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(Comma) {
				break
			}
		}
	}
	if _, err := p.consume(RightParen, "Expect ')' after parameters."); err != nil {
		return nil, err
	}
	if _, err := p.consume(LeftBrace, "Expect '{' before function body."); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &FuncStmt{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) classDecl() (Stmt, error) {
	name, err := p.consume(Identifier, "Expect class name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(LeftBrace, "Expect '{' before class body."); err != nil {
		return nil, err
	}
	var methods []*FuncStmt
	for !p.isAtEnd() && !p.check(RightBrace) {
		method, err := p.function()
		if err != nil {
			return nil, err
		}
		methods = append(methods, method.(*FuncStmt))
	}
	if _, err := p.consume(RightBrace, "Expect '}' after class body."); err != nil {
		return nil, err
	}
	return &ClassStmt{Name: name, Methods: methods}, nil
}

func (p *Parser) statement() (Stmt, error) {
	if p.match(Return) {
		return p.returnStmt()
	}
	if p.match(LeftBrace) {
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &BlockStmt{Statements: stmts}, nil
	}
	if p.match(If) {
		return p.ifStmt()
	}
	if p.match(While) {
		return p.whileStmt()
	}
	if p.match(For) {
		return p.forStmt()
	}
	return p.exprStmt()
}

func (p *Parser) returnStmt() (Stmt, error) {
	keyword := p.previous()
	var value Expr
	var err error
	if !p.check(Semicolon) {
		if value, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(Semicolon, "Expect ';' after return statement."); err != nil {
		return nil, err
	}
	return &ReturnStmt{Keyword: keyword, Value: value}, nil
}

func (p *Parser) ifStmt() (Stmt, error) {
	if _, err := p.consume(LeftParen, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(RightParen, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseStmt Stmt
	if p.match(Else) {
		if elseStmt, err = p.statement(); err != nil {
			return nil, err
		}
	}
	return &IfStmt{Condition: condition, Then: then, Else: elseStmt}, nil
}

func (p *Parser) whileStmt() (Stmt, error) {
	if _, err := p.consume(LeftParen, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(RightParen, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Condition: condition, Body: body}, nil
}

// A for loop desugars into a while loop wrapped in blocks carrying the
// initializer and increment.
func (p *Parser) forStmt() (Stmt, error) {
	if _, err := p.consume(LeftParen, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var initializer Stmt
	var err error
	if p.match(Semicolon) {
		initializer = nil
	} else if p.match(Var) {
		if initializer, err = p.varDecl(); err != nil {
			return nil, err
		}
	} else {
		if initializer, err = p.exprStmt(); err != nil {
			return nil, err
		}
	}

	var condition Expr
	if !p.check(Semicolon) {
		if condition, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(Semicolon, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var increment Expr
	if !p.check(RightParen) {
		if increment, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(RightParen, "Expect ')' after loop clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &BlockStmt{Statements: []Stmt{body, &ExprStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &LiteralExpr{Value: Bool(true)}
	}
	body = &WhileStmt{Condition: condition, Body: body}
	if initializer != nil {
		body = &BlockStmt{Statements: []Stmt{initializer, body}}
	}
	return body, nil
}

func (p *Parser) block() ([]Stmt, error) {
	var stmts []Stmt
	for !p.isAtEnd() && !p.check(RightBrace) {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.consume(RightBrace, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) exprStmt() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(Semicolon, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ExprStmt{Expression: expr}, nil
}

func (p *Parser) expression() (Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}
	if p.match(Equal) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		switch target := expr.(type) {
		case *VariableExpr:
			return &AssignExpr{Name: target.Name, Value: value}, nil
		case *GetExpr:
			return &SetExpr{Object: target.Object, Name: target.Name, Value: value}, nil
		}
		return nil, ParseError{Token: equals, Message: "Invalid assignment target."}
	}
	return expr, nil
}

func (p *Parser) or() (Expr, error) {
	left, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(Or) {
		operator := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		left = &LogicalExpr{Left: left, Operator: operator, Right: right}
	}
	return left, nil
}

func (p *Parser) and() (Expr, error) {
	left, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(And) {
		operator := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		left = &LogicalExpr{Left: left, Operator: operator, Right: right}
	}
	return left, nil
}

func (p *Parser) equality() (Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(EqualEqual, BangEqual) {
		operator := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(Greater, GreaterEqual, Less, LessEqual) {
		operator := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(Plus, Minus) {
		operator := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(Slash, Star) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (Expr, error) {
	if p.match(Bang, Minus) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Operator: operator, Right: right}, nil
	}
	return p.call()
}

func (p *Parser) call() (Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		if p.match(LeftParen) {
			if expr, err = p.finishCall(expr); err != nil {
				return nil, err
			}
		} else if p.match(Dot) {
			name, err := p.consume(Identifier, "Expect property name after '.'.")
			if err != nil {
				return nil, err
			}
			expr = &GetExpr{Object: expr, Name: name}
		} else {
			break
		}
	}
	return expr, nil
}

func (p *Parser) finishCall(callee Expr) (Expr, error) {
	var arguments []Expr
	if !p.check(RightParen) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			arguments = append(arguments, arg)
			if !p.match(Comma) {
				break
			}
		}
	}
	paren, err := p.consume(RightParen, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return &CallExpr{Callee: callee, Paren: paren, Arguments: arguments}, nil
}

func (p *Parser) primary() (Expr, error) {
	switch {
	case p.match(False):
		return &LiteralExpr{Value: Bool(false)}, nil
	case p.match(True):
		return &LiteralExpr{Value: Bool(true)}, nil
	case p.match(Nil):
		return &LiteralExpr{Value: NilValue{}}, nil
	case p.match(Number, String):
		return &LiteralExpr{Value: p.previous().Literal}, nil
	case p.match(LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(RightParen, "Expect ')' after expression"); err != nil {
			return nil, err
		}
		return &GroupingExpr{Expression: expr}, nil
	case p.match(Identifier):
		return &VariableExpr{Name: p.previous()}, nil
	}
	return nil, ParseError{Token: p.peek(), Message: "Expect expression"}
}

// Discard tokens until the next likely statement boundary so parsing can
// continue after an error.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == Semicolon {
			return
		}
		switch p.peek().Type {
		case Class, Fun, Var, For, If, While, Return:
			return
		}
		p.advance()
	}
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tokenType TokenType) bool {
	return p.peek().Type == tokenType
}

func (p *Parser) match(types ...TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(tokenType TokenType, message string) (Token, error) {
	if p.check(tokenType) {
		return p.advance(), nil
	}
	return Token{}, ParseError{Token: p.peek(), Message: message}
}
