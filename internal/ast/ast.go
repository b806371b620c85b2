package ast

import (
	"bytes"
	"strconv"
	"strings"

	"brio/internal/token"
)

type Node interface {
	TokenLiteral() string
	String() string
	// Pos reports the 1-based line and column of the node's leading token.
	Pos() (line, col int)
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

/* -------------------- Statements -------------------- */

type ExpressionStatement struct {
	Token      token.Token // first token of expression
	Expression Expression
}

func (*ExpressionStatement) statementNode()          {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) String() string {
	if es.Expression == nil {
		return ""
	}
	return es.Expression.String() + ";"
}

type VarStatement struct {
	Token token.Token // 'var'
	Name  *Identifier
	Value Expression // nil when declared without initializer
}

func (*VarStatement) statementNode()          {}
func (vs *VarStatement) TokenLiteral() string { return vs.Token.Literal }
func (vs *VarStatement) String() string {
	var out bytes.Buffer
	out.WriteString("var ")
	out.WriteString(vs.Name.String())
	if vs.Value != nil {
		out.WriteString(" = ")
		out.WriteString(vs.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

type FuncStatement struct {
	Token      token.Token // 'def'
	Name       *Identifier
	Parameters []*Identifier
	Body       *BlockStatement
}

func (*FuncStatement) statementNode()          {}
func (fs *FuncStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *FuncStatement) String() string {
	var out bytes.Buffer
	params := []string{}
	for _, p := range fs.Parameters {
		params = append(params, p.String())
	}
	out.WriteString("def ")
	out.WriteString(fs.Name.String())
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(fs.Body.String())
	return out.String()
}

type BlockStatement struct {
	Token      token.Token // '{'
	Statements []Statement
}

func (*BlockStatement) statementNode()          {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, s := range bs.Statements {
		out.WriteString(s.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

type IfStatement struct {
	Token       token.Token // 'if'
	Condition   Expression
	Consequence Statement
	Alternative Statement // nil when there is no else branch
}

func (*IfStatement) statementNode()          {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(is.Condition.String())
	out.WriteString(") ")
	out.WriteString(is.Consequence.String())
	if is.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(is.Alternative.String())
	}
	return out.String()
}

type WhileStatement struct {
	Token     token.Token // 'while'
	Condition Expression
	Body      Statement
}

func (*WhileStatement) statementNode()          {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) String() string {
	return "while (" + ws.Condition.String() + ") " + ws.Body.String()
}

// ForStatement is the desugared for loop: an optional initializer, a
// condition (boolean true when omitted), an optional post expression run
// after every iteration, and the body.
type ForStatement struct {
	Token token.Token // 'for'
	Init  Statement   // nil or VarStatement/ExpressionStatement
	Cond  Expression
	Post  Expression // nil when omitted
	Body  Statement
}

func (*ForStatement) statementNode()          {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *ForStatement) String() string {
	var out bytes.Buffer
	out.WriteString("for (")
	if fs.Init != nil {
		out.WriteString(fs.Init.String())
	} else {
		out.WriteString(";")
	}
	out.WriteString(" ")
	out.WriteString(fs.Cond.String())
	out.WriteString(";")
	if fs.Post != nil {
		out.WriteString(" ")
		out.WriteString(fs.Post.String())
	}
	out.WriteString(") ")
	out.WriteString(fs.Body.String())
	return out.String()
}

type PrintStatement struct {
	Token      token.Token // 'print'
	Expression Expression
}

func (*PrintStatement) statementNode()          {}
func (ps *PrintStatement) TokenLiteral() string { return ps.Token.Literal }
func (ps *PrintStatement) String() string {
	return "print " + ps.Expression.String() + ";"
}

type ReturnStatement struct {
	Token token.Token // 'return'
	Value Expression  // nil for a bare return
}

func (*ReturnStatement) statementNode()          {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) String() string {
	var out bytes.Buffer
	out.WriteString("return")
	if rs.Value != nil {
		out.WriteString(" ")
		out.WriteString(rs.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

/* -------------------- Expressions -------------------- */

type Identifier struct {
	Token token.Token // IDENT
	Value string
}

func (*Identifier) expressionNode()        {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }

type NumberLiteral struct {
	Token token.Token
	Value float64
}

func (*NumberLiteral) expressionNode()         {}
func (nl *NumberLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NumberLiteral) String() string {
	return strconv.FormatFloat(nl.Value, 'g', -1, 64)
}

type StringLiteral struct {
	Token token.Token
	Value string
}

func (*StringLiteral) expressionNode()         {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return `"` + sl.Value + `"` }

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (*BooleanLiteral) expressionNode()         {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Literal }
func (bl *BooleanLiteral) String() string       { return bl.Token.Literal }

type NullLiteral struct {
	Token token.Token
}

func (*NullLiteral) expressionNode()         {}
func (nl *NullLiteral) TokenLiteral() string { return nl.Token.Literal }
func (*NullLiteral) String() string          { return "null" }

type Grouping struct {
	Token      token.Token // '('
	Expression Expression
}

func (*Grouping) expressionNode()        {}
func (g *Grouping) TokenLiteral() string { return g.Token.Literal }
func (g *Grouping) String() string       { return "(" + g.Expression.String() + ")" }

type PrefixExpression struct {
	Token    token.Token // the operator token
	Operator string
	Right    Expression
}

func (*PrefixExpression) expressionNode()         {}
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Literal }
func (pe *PrefixExpression) String() string {
	return "(" + pe.Operator + pe.Right.String() + ")"
}

type InfixExpression struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (*InfixExpression) expressionNode()         {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *InfixExpression) String() string {
	return "(" + ie.Left.String() + " " + ie.Operator + " " + ie.Right.String() + ")"
}

// LogicalExpression is kept apart from InfixExpression because its right
// operand is evaluated conditionally (short circuit).
type LogicalExpression struct {
	Token    token.Token // 'and' / 'or'
	Left     Expression
	Operator string
	Right    Expression
}

func (*LogicalExpression) expressionNode()         {}
func (le *LogicalExpression) TokenLiteral() string { return le.Token.Literal }
func (le *LogicalExpression) String() string {
	return "(" + le.Left.String() + " " + le.Operator + " " + le.Right.String() + ")"
}

type AssignExpression struct {
	Token token.Token // '='
	Name  *Identifier
	Value Expression
}

func (*AssignExpression) expressionNode()         {}
func (ae *AssignExpression) TokenLiteral() string { return ae.Token.Literal }
func (ae *AssignExpression) String() string {
	return ae.Name.String() + " = " + ae.Value.String()
}

// AlterationExpression is the postfix ++/-- on a bare variable.
type AlterationExpression struct {
	Token token.Token // '++' / '--'
	Name  *Identifier
	Op    token.Type
}

func (*AlterationExpression) expressionNode()         {}
func (ae *AlterationExpression) TokenLiteral() string { return ae.Token.Literal }
func (ae *AlterationExpression) String() string {
	return ae.Name.String() + string(ae.Op)
}

type CallExpression struct {
	Token     token.Token // '('
	Function  Expression
	Arguments []Expression
}

func (*CallExpression) expressionNode()         {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) String() string {
	var out bytes.Buffer
	args := []string{}
	for _, a := range ce.Arguments {
		args = append(args, a.String())
	}
	out.WriteString(ce.Function.String())
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

type ListLiteral struct {
	Token    token.Token // '['
	Elements []Expression
}

func (*ListLiteral) expressionNode()         {}
func (ll *ListLiteral) TokenLiteral() string { return ll.Token.Literal }
func (ll *ListLiteral) String() string {
	var out bytes.Buffer
	els := []string{}
	for _, el := range ll.Elements {
		els = append(els, el.String())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(els, ", "))
	out.WriteString("]")
	return out.String()
}

// SpliceExpression is indexing or range-slicing of a named list:
// name[i], name[lo:hi], name[:hi], name[lo:], name[:]. IsSplice marks the
// ranged form; Start/End are nil when omitted.
type SpliceExpression struct {
	Token    token.Token // '['
	List     *Identifier
	IsSplice bool
	Start    Expression
	End      Expression
}

func (*SpliceExpression) expressionNode()         {}
func (se *SpliceExpression) TokenLiteral() string { return se.Token.Literal }
func (se *SpliceExpression) String() string {
	var out bytes.Buffer
	out.WriteString(se.List.String())
	out.WriteString("[")
	if se.Start != nil {
		out.WriteString(se.Start.String())
	}
	if se.IsSplice {
		out.WriteString(":")
		if se.End != nil {
			out.WriteString(se.End.String())
		}
	}
	out.WriteString("]")
	return out.String()
}

// MethodCallExpression is name.method(args...): a built-in list method
// invoked on a named receiver. Dotted access on anything other than a bare
// identifier is rejected by the parser.
type MethodCallExpression struct {
	Token  token.Token // '.'
	Object *Identifier
	Call   *CallExpression
}

func (*MethodCallExpression) expressionNode()         {}
func (mc *MethodCallExpression) TokenLiteral() string { return mc.Token.Literal }
func (mc *MethodCallExpression) String() string {
	return mc.Object.String() + "." + mc.Call.String()
}

/* -------------------- Positions -------------------- */

func (p *Program) Pos() (int, int) {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return 1, 1
}

func (es *ExpressionStatement) Pos() (int, int)  { return es.Token.Line, es.Token.Col }
func (vs *VarStatement) Pos() (int, int)         { return vs.Token.Line, vs.Token.Col }
func (fs *FuncStatement) Pos() (int, int)        { return fs.Token.Line, fs.Token.Col }
func (bs *BlockStatement) Pos() (int, int)       { return bs.Token.Line, bs.Token.Col }
func (is *IfStatement) Pos() (int, int)          { return is.Token.Line, is.Token.Col }
func (ws *WhileStatement) Pos() (int, int)       { return ws.Token.Line, ws.Token.Col }
func (fs *ForStatement) Pos() (int, int)         { return fs.Token.Line, fs.Token.Col }
func (ps *PrintStatement) Pos() (int, int)       { return ps.Token.Line, ps.Token.Col }
func (rs *ReturnStatement) Pos() (int, int)      { return rs.Token.Line, rs.Token.Col }
func (i *Identifier) Pos() (int, int)            { return i.Token.Line, i.Token.Col }
func (nl *NumberLiteral) Pos() (int, int)        { return nl.Token.Line, nl.Token.Col }
func (sl *StringLiteral) Pos() (int, int)        { return sl.Token.Line, sl.Token.Col }
func (bl *BooleanLiteral) Pos() (int, int)       { return bl.Token.Line, bl.Token.Col }
func (nl *NullLiteral) Pos() (int, int)          { return nl.Token.Line, nl.Token.Col }
func (g *Grouping) Pos() (int, int)              { return g.Token.Line, g.Token.Col }
func (pe *PrefixExpression) Pos() (int, int)     { return pe.Token.Line, pe.Token.Col }
func (ie *InfixExpression) Pos() (int, int)      { return ie.Token.Line, ie.Token.Col }
func (le *LogicalExpression) Pos() (int, int)    { return le.Token.Line, le.Token.Col }
func (ae *AssignExpression) Pos() (int, int)     { return ae.Token.Line, ae.Token.Col }
func (ae *AlterationExpression) Pos() (int, int) { return ae.Token.Line, ae.Token.Col }
func (ce *CallExpression) Pos() (int, int)       { return ce.Token.Line, ce.Token.Col }
func (ll *ListLiteral) Pos() (int, int)          { return ll.Token.Line, ll.Token.Col }
func (se *SpliceExpression) Pos() (int, int)     { return se.Token.Line, se.Token.Col }
func (mc *MethodCallExpression) Pos() (int, int) { return mc.Token.Line, mc.Token.Col }
