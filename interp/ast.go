package interp

// Expression nodes. All nodes are used through pointers so the resolver can
// key its depth table on node identity.
type Expr interface {
	exprNode()
}

type LiteralExpr struct {
	Value Object
}

type BinaryExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

type LogicalExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

type UnaryExpr struct {
	Operator Token
	Right    Expr
}

type GroupingExpr struct {
	Expression Expr
}

type VariableExpr struct {
	Name Token
}

type AssignExpr struct {
	Name  Token
	Value Expr
}

type CallExpr struct {
	Callee    Expr
	Paren     Token
	Arguments []Expr
}

type GetExpr struct {
	Object Expr
	Name   Token
}

type SetExpr struct {
	Object Expr
	Name   Token
	Value  Expr
}

func (*LiteralExpr) exprNode()  {}
func (*BinaryExpr) exprNode()   {}
func (*LogicalExpr) exprNode()  {}
func (*UnaryExpr) exprNode()    {}
func (*GroupingExpr) exprNode() {}
func (*VariableExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}
func (*CallExpr) exprNode()     {}
func (*GetExpr) exprNode()      {}
func (*SetExpr) exprNode()      {}

// Statement nodes.
type Stmt interface {
	stmtNode()
}

type ExprStmt struct {
	Expression Expr
}

type VarStmt struct {
	Name        Token
	Initializer Expr
}

type BlockStmt struct {
	Statements []Stmt
}

type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

type FuncStmt struct {
	Name   Token
	Params []Token
	Body   []Stmt
}

type ClassStmt struct {
	Name    Token
	Methods []*FuncStmt
}

type ReturnStmt struct {
	Keyword Token
	Value   Expr
}

func (*ExprStmt) stmtNode()   {}
func (*VarStmt) stmtNode()    {}
func (*BlockStmt) stmtNode()  {}
func (*IfStmt) stmtNode()     {}
func (*WhileStmt) stmtNode()  {}
func (*FuncStmt) stmtNode()   {}
func (*ClassStmt) stmtNode()  {}
func (*ReturnStmt) stmtNode() {}
