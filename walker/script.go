package walker

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// moves is the participle grammar of a move string: forward counts
// interleaved with single-letter turns.
type moves struct {
	Steps []*move `parser:"@@*"`
}

type move struct {
	Forward *int    `parser:"  @Int"`
	Turn    *string `parser:"| @Turn"`
}

var movesLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Turn", Pattern: `[LR]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var movesParser = participle.MustBuild[moves](
	participle.Lexer(movesLexer),
	participle.Elide("Whitespace"),
)

// ParseMoves reads a move string such as "10R5L5R10L4R5L5" into instructions.
// Whitespace between tokens is ignored and an empty string yields no
// instructions. Any other character is ErrParseMoves.
func ParseMoves(s string) ([]Instruction, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	ast, err := movesParser.ParseString("moves", s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseMoves, err)
	}

	out := make([]Instruction, 0, len(ast.Steps))
	for _, m := range ast.Steps {
		switch {
		case m.Forward != nil:
			out = append(out, Instruction{Kind: Forward, Steps: *m.Forward})
		case m.Turn != nil && *m.Turn == "L":
			out = append(out, Instruction{Kind: TurnLeft})
		case m.Turn != nil:
			out = append(out, Instruction{Kind: TurnRight})
		}
	}
	return out, nil
}

// FormatMoves renders instructions back into move-string form.
func FormatMoves(instructions []Instruction) string {
	var sb strings.Builder
	for _, in := range instructions {
		sb.WriteString(in.String())
	}
	return sb.String()
}
