package jaslang

// Expr and Stmt are the node vocabularies of the syntax tree. Nodes own
// their children exclusively; the tree contains no sharing and no cycles.

type Expr interface {
	exprNode()
}

type Stmt interface {
	stmtNode()
}

type LiteralKind uint8

const (
	LiteralNumber LiteralKind = iota
	LiteralString
	LiteralBool
	LiteralNull
	// LiteralVoid marks "no value produced", distinct from null. It exists
	// only at the tree layer and never escapes into a variable binding.
	LiteralVoid
)

type Literal struct {
	Kind LiteralKind
	Num  float64
	Str  string
	Bool bool
}

type Unary struct {
	Operator TokenKind
	Operand  Expr
}

type Binary struct {
	Left     Expr
	Operator TokenKind
	Right    Expr
}

type Grouping struct {
	Inner Expr
}

type Variable struct {
	Name string
}

type Assign struct {
	Name  string
	Value Expr
}

type Call struct {
	Callee    Expr
	Arguments []Expr
}

type Member struct {
	Object   Expr
	Property string
	Computed bool // true for a[0], false for a.key
}

type ArrayLit struct {
	Elements []Expr
}

type ObjectPair struct {
	Key   string
	Value Expr
}

type ObjectLit struct {
	Pairs []ObjectPair
}

type FuncLit struct {
	Parameters []string
	Body       []Stmt
}

func (*Literal) exprNode()   {}
func (*Unary) exprNode()     {}
func (*Binary) exprNode()    {}
func (*Grouping) exprNode()  {}
func (*Variable) exprNode()  {}
func (*Assign) exprNode()    {}
func (*Call) exprNode()      {}
func (*Member) exprNode()    {}
func (*ArrayLit) exprNode()  {}
func (*ObjectLit) exprNode() {}
func (*FuncLit) exprNode()   {}

type ExprStmt struct {
	Expr Expr
}

type VarDecl struct {
	Name    string
	Init    Expr // nil when omitted
	Mutable bool
}

type FuncDecl struct {
	Name       string
	Parameters []string
	Body       []Stmt
}

type Block struct {
	Stmts []Stmt
}

type If struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil when absent
}

type While struct {
	Cond Expr
	Body Stmt
}

type Return struct {
	Value Expr // nil for a bare return
}

type Break struct{}

type Continue struct{}

func (*ExprStmt) stmtNode() {}
func (*VarDecl) stmtNode()  {}
func (*FuncDecl) stmtNode() {}
func (*Block) stmtNode()    {}
func (*If) stmtNode()       {}
func (*While) stmtNode()    {}
func (*Return) stmtNode()   {}
func (*Break) stmtNode()    {}
func (*Continue) stmtNode() {}
