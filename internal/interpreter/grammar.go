package interpreter

import (
	"errors"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"toyrobot/internal/robot"
)

// A single space is a token so that "PLACE  1,2,NORTH" and "PLACE1,2,NORTH"
// are rejected. Other blanks are elided, which keeps "1\t,2" valid the way a
// trimmed field is.
var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Space", Pattern: ` `},
	{Name: "Blank", Pattern: `[\t\r\f\v]+`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Ident", Pattern: `[A-Za-z_]\w*`},
	{Name: "Punct", Pattern: `,`},
})

type line struct {
	Place  *placeArgs `parser:"  'PLACE' Space @@"`
	Move   bool       `parser:"| @'MOVE'"`
	Left   bool       `parser:"| @'LEFT'"`
	Right  bool       `parser:"| @'RIGHT'"`
	Report bool       `parser:"| @'REPORT'"`
}

type placeArgs struct {
	X      string `parser:"@Int ','"`
	Y      string `parser:"@Int ','"`
	Facing string `parser:"@Ident"`
}

var parser = participle.MustBuild[line](
	participle.Lexer(commandLexer),
	participle.Elide("Blank"),
)

var errEmptyCommand = errors.New("empty command")

// Normalize trims surrounding whitespace and upper-cases text.
func Normalize(text string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(text))
}

func parse(normalized string) (Command, error) {
	if normalized == "" {
		return Command{}, errEmptyCommand
	}
	ln, err := parser.ParseString("", normalized)
	if err != nil {
		return Command{}, err
	}
	return ln.command()
}

func (l *line) command() (Command, error) {
	switch {
	case l.Place != nil:
		return l.Place.command()
	case l.Move:
		return Command{Kind: Move}, nil
	case l.Left:
		return Command{Kind: Left}, nil
	case l.Right:
		return Command{Kind: Right}, nil
	case l.Report:
		return Command{Kind: Report}, nil
	}
	return Command{}, errEmptyCommand
}

func (p *placeArgs) command() (Command, error) {
	x, err := parseCoordinate(p.X)
	if err != nil {
		return Command{}, err
	}
	y, err := parseCoordinate(p.Y)
	if err != nil {
		return Command{}, err
	}
	facing, err := robot.ParseOrientation(p.Facing)
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: Place, Position: robot.Position{X: x, Y: y}, Facing: facing}, nil
}

// parseCoordinate reads a signed decimal that fits in 32 bits.
func parseCoordinate(text string) (int, error) {
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
