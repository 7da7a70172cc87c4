package parser

import (
	"io"

	"go.uber.org/zap"

	"github.com/lgbarn/sgf-extract-go/internal/errors"
)

// Parser parses SGF input into game trees.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
	file         string
	log          *zap.SugaredLogger
}

// NewParser creates a new parser for the given reader.
// A nil logger discards warnings.
func NewParser(r io.Reader, log *zap.SugaredLogger) *Parser {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Parser{
		lexer: NewLexer(r, log),
		log:   log,
	}
}

// SetFileName sets the name reported in parse errors.
func (p *Parser) SetFileName(name string) {
	p.file = name
}

// nextToken gets the next token from the lexer.
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// errorf builds a ParseError at the current token.
func (p *Parser) errorf(expected string) error {
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		File:     p.file,
		Line:     p.currentToken.Line,
		Column:   p.currentToken.Column,
		Expected: expected,
		Got:      p.currentToken.describe(),
	}
}

// ParseGame parses the next game tree from the input.
// Returns nil if no more games are available.
func (p *Parser) ParseGame() (*GameTree, error) {
	if p.currentToken == nil {
		p.nextToken()
	}

	p.skipToNextGame()
	if p.currentToken.Type == EOFToken {
		return nil, nil
	}
	return p.parseGameTree()
}

// skipToNextGame skips anything before the next '('.
func (p *Parser) skipToNextGame() {
	skipped := 0
	for p.currentToken.Type != TreeStart && p.currentToken.Type != EOFToken {
		skipped++
		p.nextToken()
	}
	if skipped > 0 {
		p.log.Debugw("skipped text between games", "tokens", skipped, "line", p.currentToken.Line)
	}
}

// parseGameTree parses "(" Sequence GameTree* ")".
func (p *Parser) parseGameTree() (*GameTree, error) {
	tree := &GameTree{Line: p.currentToken.Line}
	p.nextToken()

	if p.currentToken.Type != NodeStart {
		return nil, p.errorf("';'")
	}
	for p.currentToken.Type == NodeStart {
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		tree.Nodes = append(tree.Nodes, node)
	}

	for p.currentToken.Type == TreeStart {
		variation, err := p.parseGameTree()
		if err != nil {
			return nil, err
		}
		tree.Variations = append(tree.Variations, variation)
	}

	if p.currentToken.Type != TreeEnd {
		return nil, p.errorf("')'")
	}
	p.nextToken()
	return tree, nil
}

// parseNode parses ";" Property*.
func (p *Parser) parseNode() (*Node, error) {
	node := &Node{Line: p.currentToken.Line}
	p.nextToken()

	for p.currentToken.Type == PropIdent {
		prop := Property{Ident: p.currentToken.Text, Line: p.currentToken.Line}
		p.nextToken()
		for p.currentToken.Type == PropValue {
			prop.Values = append(prop.Values, p.currentToken.Text)
			p.nextToken()
		}
		if len(prop.Values) == 0 {
			return nil, p.errorf("value for " + prop.Ident)
		}
		node.Properties = append(node.Properties, prop)
	}
	return node, nil
}

// ParseAllGames parses all game trees from the input.
func (p *Parser) ParseAllGames() ([]*GameTree, error) {
	var games []*GameTree

	for {
		game, err := p.ParseGame()
		if err != nil {
			return games, err
		}
		if game == nil {
			break
		}
		games = append(games, game)
	}

	return games, nil
}
