package parser

import (
	"fmt"
	"strconv"

	"brio/internal/ast"
	"brio/internal/diag"
	"brio/internal/token"
)

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// maxArity bounds both parameter lists and argument lists.
const maxArity = 255

type Parser struct {
	tokens []token.Token
	idx    int

	errs  []*Error
	diags []diag.Diagnostic

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

/* -------------------- precedence -------------------- */

const (
	_ int = iota
	LOWEST
	ASSIGNPREC  // = x++ x--
	ORPREC      // or
	ANDPREC     // and
	EQUALS      // == !=
	LESSGREATER // < <= > >=
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -X, !X
	CALL        // fn(X), x.m(X), x[i]
)

var precedences = map[token.Type]int{
	token.ASSIGN:   ASSIGNPREC,
	token.INCR:     ASSIGNPREC,
	token.DECR:     ASSIGNPREC,
	token.OR:       ORPREC,
	token.AND:      ANDPREC,
	token.EQ:       EQUALS,
	token.NE:       EQUALS,
	token.LT:       LESSGREATER,
	token.LE:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.GE:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.STAR:     PRODUCT,
	token.SLASH:    PRODUCT,
	token.LBRACKET: CALL,
	token.LPAREN:   CALL,
	token.DOT:      CALL,
}

/* -------------------- constructor -------------------- */

// New builds a parser over an already-scanned token stream. The stream is
// expected to end with an EOF token; the parser never reads past it.
func New(tokens []token.Token) *Parser {
	if len(tokens) == 0 {
		tokens = []token.Token{{Type: token.EOF, Line: 1, Col: 1}}
	}

	p := &Parser{
		tokens:         tokens,
		errs:           []*Error{},
		diags:          []diag.Diagnostic{},
		prefixParseFns: map[token.Type]prefixParseFn{},
		infixParseFns:  map[token.Type]infixParseFn{},
	}

	p.curToken = p.tokenAt(0)
	p.peekToken = p.tokenAt(1)

	// Prefix parsers
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.NUM, p.parseNumberLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.NULL, p.parseNullLiteral)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.LBRACKET, p.parseListLiteral)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)

	// Infix parsers
	for _, tt := range []token.Type{
		token.PLUS, token.MINUS, token.STAR, token.SLASH,
		token.EQ, token.NE, token.LT, token.LE, token.GT, token.GE,
	} {
		p.registerInfix(tt, p.parseInfixExpression)
	}
	p.registerInfix(token.AND, p.parseLogicalExpression)
	p.registerInfix(token.OR, p.parseLogicalExpression)
	p.registerInfix(token.ASSIGN, p.parseAssignExpression)
	p.registerInfix(token.INCR, p.parseAlterationExpression)
	p.registerInfix(token.DECR, p.parseAlterationExpression)
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.DOT, p.parseMethodCallExpression)
	p.registerInfix(token.LBRACKET, p.parseSpliceExpression)

	return p
}

func (p *Parser) registerPrefix(t token.Type, fn prefixParseFn) { p.prefixParseFns[t] = fn }
func (p *Parser) registerInfix(t token.Type, fn infixParseFn)   { p.infixParseFns[t] = fn }

func (p *Parser) Diagnostics() []diag.Diagnostic { return p.diags }
func (p *Parser) Errors() []*Error               { return p.errs }

// Err returns the first error encountered, or nil. Parsing recovers to the
// next statement boundary after an error so later diagnostics stay useful,
// but the pipeline fails on this first error.
func (p *Parser) Err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return p.errs[0]
}

/* -------------------- program -------------------- */

func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for p.curToken.Type != token.EOF {
		stmt := p.parseDeclaration()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
			p.nextToken()
		} else {
			p.synchronize()
		}
	}

	return program
}

// Parse scans tokens into a program and reports the first syntax error.
func Parse(tokens []token.Token) (*ast.Program, error) {
	p := New(tokens)
	program := p.ParseProgram()
	if err := p.Err(); err != nil {
		return nil, err
	}
	return program, nil
}

/* -------------------- statements -------------------- */

// parseDeclaration handles the declaration level of the grammar: function
// and variable declarations, then everything parseStatement accepts.
func (p *Parser) parseDeclaration() ast.Statement {
	switch p.curToken.Type {
	case token.DEF:
		return p.parseFuncStatement()
	case token.VAR:
		return p.parseVarStatement()
	default:
		return p.parseStatement()
	}
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.FOR:
		return p.parseForStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.PRINT:
		return p.parsePrintStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.LBRACE:
		return p.parseBlockStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseFuncStatement() ast.Statement {
	stmt := &ast.FuncStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT, CodeExpectedFunctionName, "expected function name") {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(token.LPAREN, CodeExpectedLParenAfterFunctionName, "expected '(' after function name") {
		return nil
	}

	params := []*ast.Identifier{}
	if p.peekToken.Type != token.RPAREN {
		for {
			if len(params) >= maxArity {
				p.errorAt(p.peekToken, CodeTooManyParameters,
					fmt.Sprintf("function %s has more than %d parameters", stmt.Name.Value, maxArity))
				return nil
			}
			if !p.expectPeek(token.IDENT, CodeExpectedParameterName, "expected parameter name") {
				return nil
			}
			params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
			if p.peekToken.Type != token.COMMA {
				break
			}
			p.nextToken()
		}
	}
	stmt.Parameters = params

	if !p.expectPeek(token.RPAREN, CodeExpectedRParenAfterParameters, "expected ')' after parameters") {
		return nil
	}
	if !p.expectPeek(token.LBRACE, CodeExpectedLBraceBeforeFunctionBody, "expected '{' before function body") {
		return nil
	}

	body := p.parseBlockStatement()
	if body == nil {
		return nil
	}
	stmt.Body = body

	return stmt
}

func (p *Parser) parseVarStatement() *ast.VarStatement {
	stmt := &ast.VarStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT, CodeExpectedVariableName, "expected variable name") {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if p.peekToken.Type == token.ASSIGN {
		p.nextToken()
		p.nextToken()
		stmt.Value = p.parseExpression(LOWEST)
		if stmt.Value == nil {
			return nil
		}
	}

	if !p.expectPeek(token.SEMICOLON, CodeExpectedSemicolonAfterVariableDeclaration, "expected ';' after variable declaration") {
		return nil
	}

	return stmt
}

func (p *Parser) parseForStatement() ast.Statement {
	stmt := &ast.ForStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN, CodeExpectedLParenAfterFor, "expected '(' after 'for'") {
		return nil
	}

	// Initializer: ';' for none, a var declaration, or an expression statement.
	switch p.peekToken.Type {
	case token.SEMICOLON:
		p.nextToken()
	case token.VAR:
		p.nextToken()
		init := p.parseVarStatement()
		if init == nil {
			return nil
		}
		stmt.Init = init
	default:
		p.nextToken()
		init := p.parseExpressionStatement()
		if init == nil {
			return nil
		}
		stmt.Init = init
	}

	// Condition defaults to true when omitted.
	if p.peekToken.Type != token.SEMICOLON {
		p.nextToken()
		stmt.Cond = p.parseExpression(LOWEST)
		if stmt.Cond == nil {
			return nil
		}
	} else {
		stmt.Cond = &ast.BooleanLiteral{
			Token: token.Token{Type: token.TRUE, Literal: "true", Line: p.curToken.Line, Col: p.curToken.Col},
			Value: true,
		}
	}
	if !p.expectPeek(token.SEMICOLON, CodeExpectedSemicolonAfterForCondition, "expected ';' after for condition") {
		return nil
	}

	if p.peekToken.Type != token.RPAREN {
		p.nextToken()
		stmt.Post = p.parseExpression(LOWEST)
		if stmt.Post == nil {
			return nil
		}
	}
	if !p.expectPeek(token.RPAREN, CodeExpectedRParenAfterForClauses, "expected ')' after for clauses") {
		return nil
	}

	p.nextToken()
	body := p.parseStatement()
	if body == nil {
		return nil
	}
	stmt.Body = body

	return stmt
}

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN, CodeExpectedLParenAfterIf, "expected '(' after 'if'") {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if stmt.Condition == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN, CodeExpectedRParenAfterCondition, "expected ')' after condition") {
		return nil
	}

	p.nextToken()
	stmt.Consequence = p.parseStatement()
	if stmt.Consequence == nil {
		return nil
	}

	if p.peekToken.Type == token.ELSE {
		p.nextToken()
		p.nextToken()
		stmt.Alternative = p.parseStatement()
		if stmt.Alternative == nil {
			return nil
		}
	}

	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN, CodeExpectedLParenAfterWhile, "expected '(' after 'while'") {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if stmt.Condition == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN, CodeExpectedRParenAfterCondition, "expected ')' after condition") {
		return nil
	}

	p.nextToken()
	stmt.Body = p.parseStatement()
	if stmt.Body == nil {
		return nil
	}

	return stmt
}

func (p *Parser) parsePrintStatement() ast.Statement {
	stmt := &ast.PrintStatement{Token: p.curToken}

	p.nextToken()
	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}

	if !p.expectPeek(token.SEMICOLON, CodeExpectedSemicolonAfterPrintValue, "expected ';' after print value") {
		return nil
	}

	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	if p.peekToken.Type != token.SEMICOLON {
		p.nextToken()
		stmt.Value = p.parseExpression(LOWEST)
		if stmt.Value == nil {
			return nil
		}
	}

	if !p.expectPeek(token.SEMICOLON, CodeExpectedSemicolonAfterReturnValue, "expected ';' after return value") {
		return nil
	}

	return stmt
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken, Statements: []ast.Statement{}}

	p.nextToken()
	for p.curToken.Type != token.RBRACE && p.curToken.Type != token.EOF {
		stmt := p.parseDeclaration()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
			p.nextToken()
		} else {
			p.synchronize()
		}
	}

	if p.curToken.Type != token.RBRACE {
		p.errorAt(p.curToken, CodeExpectedRBraceAfterBlock, "expected '}' after block")
		return nil
	}

	return block
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}

	if !p.expectPeek(token.SEMICOLON, CodeExpectedSemicolonAfterExpression, "expected ';' after expression") {
		return nil
	}

	return stmt
}

/* -------------------- expressions -------------------- */

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errorAt(p.curToken, CodeExpectedExpression,
			fmt.Sprintf("expected expression, got %q", p.curToken.Literal))
		return nil
	}
	left := prefix()

	for left != nil && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.errorAt(p.curToken, CodeUnableToParseLiteralToFloat,
			fmt.Sprintf("unable to parse literal %q as a number", p.curToken.Literal))
		return nil
	}
	return &ast.NumberLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curToken.Type == token.TRUE}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.NullLiteral{Token: p.curToken}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN, CodeExpectedRParenAfterExpression, "expected ')' after expression") {
		return nil
	}
	return &ast.Grouping{Token: tok, Expression: expr}
}

func (p *Parser) parseListLiteral() ast.Expression {
	list := &ast.ListLiteral{Token: p.curToken, Elements: []ast.Expression{}}

	if p.peekToken.Type == token.RBRACKET {
		p.nextToken()
		return list
	}

	p.nextToken()
	el := p.parseExpression(LOWEST)
	if el == nil {
		return nil
	}
	list.Elements = append(list.Elements, el)

	for p.peekToken.Type == token.COMMA {
		p.nextToken()
		if p.peekToken.Type == token.RBRACKET {
			break // trailing comma
		}
		p.nextToken()
		el := p.parseExpression(LOWEST)
		if el == nil {
			return nil
		}
		list.Elements = append(list.Elements, el)
	}

	if !p.expectPeek(token.RBRACKET, CodeExpectedRBrackAfterValues, "expected ']' after list values") {
		return nil
	}

	return list
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Literal}
	p.nextToken()
	expr.Right = p.parseExpression(PREFIX)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Literal,
	}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseLogicalExpression(left ast.Expression) ast.Expression {
	expr := &ast.LogicalExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Literal,
	}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}
	return expr
}

// parseAssignExpression validates the assignment target structurally, right
// after the left-hand side has been parsed: only a bare variable reference
// may appear left of '='.
func (p *Parser) parseAssignExpression(left ast.Expression) ast.Expression {
	tok := p.curToken

	name, ok := left.(*ast.Identifier)
	if !ok {
		p.errorAt(tok, CodeInvalidAssignmentTarget,
			fmt.Sprintf("invalid assignment target: %s", left.String()))
		return nil
	}

	p.nextToken()
	value := p.parseExpression(LOWEST) // right-associative
	if value == nil {
		return nil
	}

	return &ast.AssignExpression{Token: tok, Name: name, Value: value}
}

// parseAlterationExpression handles the postfix ++/--, valid only on a bare
// variable reference.
func (p *Parser) parseAlterationExpression(left ast.Expression) ast.Expression {
	tok := p.curToken

	name, ok := left.(*ast.Identifier)
	if !ok {
		p.errorAt(tok, CodeInvalidAlterationTarget,
			fmt.Sprintf("invalid %s target: %s", tok.Literal, left.String()))
		return nil
	}

	return &ast.AlterationExpression{Token: tok, Name: name, Op: tok.Type}
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	expr := &ast.CallExpression{Token: p.curToken, Function: function}
	args := p.parseCallArguments(function)
	if args == nil {
		return nil
	}
	expr.Arguments = args
	return expr
}

func (p *Parser) parseCallArguments(callee ast.Expression) []ast.Expression {
	args := []ast.Expression{}

	if p.peekToken.Type == token.RPAREN {
		p.nextToken()
		return args
	}

	for {
		if len(args) >= maxArity {
			p.errorAt(p.peekToken, CodeTooManyArguments,
				fmt.Sprintf("call to %s has more than %d arguments", callee.String(), maxArity))
			return nil
		}
		p.nextToken()
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		args = append(args, arg)
		if p.peekToken.Type != token.COMMA {
			break
		}
		p.nextToken()
	}

	if !p.expectPeek(token.RPAREN, CodeExpectedRParenAfterArguments, "expected ')' after arguments") {
		return nil
	}

	return args
}

// parseMethodCallExpression handles name.method(args...). The dot is only
// legal when the receiver is a bare variable reference, and the member must
// itself be a call; this is not general property access.
func (p *Parser) parseMethodCallExpression(left ast.Expression) ast.Expression {
	tok := p.curToken

	object, ok := left.(*ast.Identifier)
	if !ok {
		p.errorAt(tok, CodeCanOnlyCallIdentifiers,
			fmt.Sprintf("can only call methods on identifiers, got %s", left.String()))
		return nil
	}

	if !p.expectPeek(token.IDENT, CodeCanOnlyCallIdentifiers, "expected method name after '.'") {
		return nil
	}
	method := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(token.LPAREN, CodeCanOnlyCallIdentifiers, "expected '(' after method name") {
		return nil
	}

	call := p.parseCallExpression(method)
	if call == nil {
		return nil
	}

	return &ast.MethodCallExpression{Token: tok, Object: object, Call: call.(*ast.CallExpression)}
}

// parseSpliceExpression handles name[i] and name[lo:hi] with either bound
// optional. Indexing anything but a bare identifier is a syntax error.
func (p *Parser) parseSpliceExpression(left ast.Expression) ast.Expression {
	tok := p.curToken

	name, ok := left.(*ast.Identifier)
	if !ok {
		p.errorAt(tok, CodeCanOnlySpliceIdentifiers,
			fmt.Sprintf("can only index identifiers, got %s", left.String()))
		return nil
	}

	expr := &ast.SpliceExpression{Token: tok, List: name}

	if p.peekToken.Type != token.COLON {
		p.nextToken()
		expr.Start = p.parseExpression(LOWEST)
		if expr.Start == nil {
			return nil
		}
	}

	if p.peekToken.Type == token.COLON {
		p.nextToken()
		expr.IsSplice = true
		if p.peekToken.Type != token.RBRACKET {
			p.nextToken()
			expr.End = p.parseExpression(LOWEST)
			if expr.End == nil {
				return nil
			}
		}
	}

	if !p.expectPeek(token.RBRACKET, CodeExpectedRBrackAfterIndex, "expected ']' after index") {
		return nil
	}

	return expr
}

/* -------------------- machinery -------------------- */

func (p *Parser) tokenAt(i int) token.Token {
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF sentinel
	}
	return p.tokens[i]
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.idx++
	p.peekToken = p.tokenAt(p.idx + 1)
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) expectPeek(t token.Type, code string, msg string) bool {
	if p.peekToken.Type == t {
		p.nextToken()
		return true
	}
	p.errorAt(p.peekToken, code, fmt.Sprintf("%s, got %q", msg, displayLexeme(p.peekToken)))
	return false
}

func displayLexeme(tok token.Token) string {
	if tok.Type == token.EOF {
		return "end of input"
	}
	return tok.Literal
}

// synchronize discards tokens until a statement boundary so parsing can
// resume after an error: just past a semicolon, or right before a keyword
// that starts a new declaration or statement.
func (p *Parser) synchronize() {
	p.nextToken()

	for p.curToken.Type != token.EOF {
		if p.curToken.Type == token.SEMICOLON {
			p.nextToken()
			return
		}

		switch p.curToken.Type {
		case token.CLASS, token.DEF, token.VAR, token.FOR,
			token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.nextToken()
	}
}

func (p *Parser) errorAt(tok token.Token, code string, msg string) {
	p.errs = append(p.errs, &Error{Code: code, Message: msg, Line: tok.Line})
	p.diags = append(p.diags, diag.Diagnostic{
		Code:     code,
		Message:  msg,
		Severity: diag.SeverityError,
		Range: diag.Range{
			Line:   tok.Line,
			Col:    tok.Col,
			Length: tokLength(tok),
		},
	})
}

func tokLength(tok token.Token) int {
	if tok.Literal == "" {
		return 1
	}
	return len([]rune(tok.Literal))
}
