package texttemplate

import (
	"fmt"
	"strings"

	"github.com/strata-dev/strata/pkg/filepos"
)

const (
	valueOpen  = "{{"
	valueClose = "}}"
	stmtOpen   = "<<"
	stmtClose  = ">>"
)

type Parser struct {
	associatedName string
}

func NewParser() *Parser {
	return &Parser{}
}

// Parse scans the source once, left to right, matching value and statement
// delimiters non-overlappingly. Text between matches (and before the first /
// after the last) becomes literal nodes. Stray closing delimiters are
// treated as literal text.
func (p *Parser) Parse(dataBs []byte, associatedName string) (*NodeRoot, error) {
	p.associatedName = associatedName

	data := string(dataBs)

	var nodes []interface{}

	currLine := 1
	textStart := 0
	textStartLine := 1
	i := 0

	for i < len(data) {
		var closeDelim string
		isValue := false

		switch {
		case strings.HasPrefix(data[i:], valueOpen):
			closeDelim = valueClose
			isValue = true
		case strings.HasPrefix(data[i:], stmtOpen):
			closeDelim = stmtClose
		default:
			if data[i] == '\n' {
				currLine++
			}
			i++
			continue
		}

		openLine := currLine

		rel := strings.Index(data[i+len(valueOpen):], closeDelim)
		if rel < 0 {
			return nil, fmt.Errorf(
				"Missing closing '%s' for opening at line %d", closeDelim, openLine)
		}

		if i > textStart {
			nodes = append(nodes, &NodeText{
				Position: p.newPosition(textStartLine),
				Content:  data[textStart:i],
			})
		}

		content := data[i+len(valueOpen) : i+len(valueOpen)+rel]

		if isValue {
			nodes = append(nodes, &NodeValue{Position: p.newPosition(openLine), Content: content})
		} else {
			nodes = append(nodes, &NodeStmt{Position: p.newPosition(openLine), Content: content})
		}

		currLine += strings.Count(content, "\n")

		i += len(valueOpen) + rel + len(closeDelim)
		textStart = i
		textStartLine = currLine
	}

	if textStart < len(data) {
		nodes = append(nodes, &NodeText{
			Position: p.newPosition(textStartLine),
			Content:  data[textStart:],
		})
	}

	return &NodeRoot{Items: nodes}, nil
}

func (p *Parser) newPosition(line int) *filepos.Position {
	pos := filepos.NewPosition(line)
	pos.SetFile(p.associatedName)
	return pos
}
