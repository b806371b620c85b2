package parser

import "fmt"

// Error codes, one per grammar production that can fail. The code names
// the construct so callers can match on the condition rather than on
// message text.
const (
	CodeExpectedFunctionName                      = "ExpectedFunctionName"
	CodeExpectedLParenAfterFunctionName           = "ExpectedLParenAfterFunctionName"
	CodeExpectedParameterName                     = "ExpectedParameterName"
	CodeExpectedRParenAfterParameters             = "ExpectedRParenAfterParameters"
	CodeExpectedLBraceBeforeFunctionBody          = "ExpectedLBraceBeforeFunctionBody"
	CodeExpectedVariableName                      = "ExpectedVariableName"
	CodeExpectedSemicolonAfterVariableDeclaration = "ExpectedSemicolonAfterVariableDeclaration"
	CodeExpectedLParenAfterFor                    = "ExpectedLParenAfterFor"
	CodeExpectedSemicolonAfterForCondition        = "ExpectedSemicolonAfterForCondition"
	CodeExpectedRParenAfterForClauses             = "ExpectedRParenAfterForClauses"
	CodeExpectedLParenAfterIf                     = "ExpectedLParenAfterIf"
	CodeExpectedLParenAfterWhile                  = "ExpectedLParenAfterWhile"
	CodeExpectedRParenAfterCondition              = "ExpectedRParenAfterCondition"
	CodeExpectedSemicolonAfterPrintValue          = "ExpectedSemicolonAfterPrintValue"
	CodeExpectedSemicolonAfterReturnValue         = "ExpectedSemicolonAfterReturnValue"
	CodeExpectedSemicolonAfterExpression          = "ExpectedSemicolonAfterExpression"
	CodeExpectedRBraceAfterBlock                  = "ExpectedRBraceAfterBlock"
	CodeExpectedRParenAfterExpression             = "ExpectedRParenAfterExpression"
	CodeExpectedRParenAfterArguments              = "ExpectedRParenAfterArguments"
	CodeExpectedRBrackAfterValues                 = "ExpectedRBrackAfterValues"
	CodeExpectedRBrackAfterIndex                  = "ExpectedRBrackAfterIndex"
	CodeExpectedExpression                        = "ExpectedExpression"
	CodeInvalidAssignmentTarget                   = "InvalidAssignmentTarget"
	CodeInvalidAlterationTarget                   = "InvalidAlterationTarget"
	CodeCanOnlyCallIdentifiers                    = "CanOnlyCallIdentifiers"
	CodeCanOnlySpliceIdentifiers                  = "CanOnlySpliceIdentifiers"
	CodeTooManyParameters                         = "TooManyParameters"
	CodeTooManyArguments                          = "TooManyArguments"
	CodeUnableToParseLiteralToFloat               = "UnableToParseLiteralToFloat"
)

// Error is a single syntax error with its source line.
type Error struct {
	Code    string
	Message string
	Line    int
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Line, e.Message)
}
