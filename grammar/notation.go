package grammar

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the rule notation.
const (
	tokArrow = iota + 1
	tokBar
	tokLiteral
	tokSymbol
	tokNewline
)

var tokenNames = map[int]string{
	tokArrow:   "'->'",
	tokBar:     "'|'",
	tokLiteral: "literal",
	tokSymbol:  "symbol",
	tokNewline: "end of line",
}

var (
	notationLexer *lexmachine.Lexer
	lexerErr      error
	lexerOnce     sync.Once
)

// The lexer prefers the earlier pattern for matches of equal length, thus
// ARROW has to be added before SYMBOL.
func initLexer() {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`->`), token(tokArrow))
	lexer.Add([]byte(`\|`), token(tokBar))
	lexer.Add([]byte("\"[^\"\n]*\""), token(tokLiteral))
	lexer.Add([]byte("\n"), token(tokNewline))
	lexer.Add([]byte("#[^\n]*"), skip)
	lexer.Add([]byte("( |\t|\r)+"), skip)
	lexer.Add([]byte("[^ \t\r\n\"|#]+"), token(tokSymbol))
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA for rule notation: %v", err)
		lexerErr = err
		return
	}
	notationLexer = lexer
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func token(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// ParseRules reads rules in textual notation, one rule per line:
//
//    LHS -> A B "c" | x
//
// Lines may contain comments starting with '#'. Symbols must not contain
// whitespace, '"', '|' or '#'. A context character may be given bare or as a
// quoted literal.
func ParseRules(input string) ([]*Rule, error) {
	lexerOnce.Do(initLexer)
	if lexerErr != nil {
		return nil, lexerErr
	}
	scanner, err := notationLexer.Scanner([]byte(input + "\n"))
	if err != nil {
		return nil, err
	}
	var rules []*Rule
	var line []*lexmachine.Token
	for {
		tok, err, eof := scanner.Next()
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				return rules, fmt.Errorf("line %d, column %d: unexpected input", ui.FailLine, ui.FailColumn)
			}
			return rules, err
		}
		if eof {
			break
		}
		t := tok.(*lexmachine.Token)
		if t.Type != tokNewline {
			line = append(line, t)
			continue
		}
		if len(line) > 0 {
			rule, err := parseRule(line)
			if err != nil {
				return rules, err
			}
			rules = append(rules, rule)
			line = line[:0]
		}
	}
	tracer().Debugf("read %d rules", len(rules))
	return rules, nil
}

// ReadRules reads rules in textual notation from r.
func ReadRules(r io.Reader) ([]*Rule, error) {
	var b strings.Builder
	if _, err := io.Copy(&b, bufio.NewReader(r)); err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}
	return ParseRules(b.String())
}

// WriteRules writes rules in textual notation, one per line.
func WriteRules(w io.Writer, rules []*Rule) error {
	bw := bufio.NewWriter(w)
	for _, r := range rules {
		if _, err := bw.WriteString(r.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// LHS ARROW (SYMBOL|LITERAL)+ [BAR (SYMBOL|LITERAL)]
func parseRule(line []*lexmachine.Token) (*Rule, error) {
	at := func(t *lexmachine.Token) string {
		return fmt.Sprintf("line %d, column %d", t.StartLine, t.StartColumn)
	}
	if len(line) < 3 || line[0].Type != tokSymbol || line[1].Type != tokArrow {
		return nil, fmt.Errorf("%s: expected 'LHS -> RHS'", at(line[0]))
	}
	rule := &Rule{LHS: line[0].Value.(string)}
	rest := line[2:]
	for i, t := range rest {
		switch t.Type {
		case tokSymbol, tokLiteral:
			rule.RHS = append(rule.RHS, t.Value.(string))
		case tokBar:
			if i == 0 {
				return nil, fmt.Errorf("%s: empty right hand side", at(t))
			}
			if len(rest) != i+2 || (rest[i+1].Type != tokSymbol && rest[i+1].Type != tokLiteral) {
				return nil, fmt.Errorf("%s: expected single context after '|'", at(t))
			}
			rule.Context = Unquote(rest[i+1].Value.(string))
			return rule, nil
		default:
			return nil, fmt.Errorf("%s: unexpected %s", at(t), tokenNames[t.Type])
		}
	}
	return rule, nil
}
