package lexer

// Class represents the lexical class of a single input character.
type Class uint8

// List of character classes
const (
	ClassOther      Class = iota // Anything else, including "." and signs
	ClassWhitespace              // Space, tab, newline or carriage return
	ClassOpenParen               // Open parenthesis: "("
	ClassCloseParen              // Close parenthesis: ")"
	ClassDigit                   // Decimal digits: "0" to "9"
)

var classValues = map[Class][]rune{
	ClassWhitespace: []rune(" \t\n\r"),
	ClassOpenParen:  []rune{'('},
	ClassCloseParen: []rune{')'},
	ClassDigit:      []rune("0123456789"),
}

var classNames = map[Class]string{
	ClassOther:      "other",
	ClassWhitespace: "whitespace",
	ClassOpenParen:  "open_paren",
	ClassCloseParen: "close_paren",
	ClassDigit:      "digit",
}

func (c Class) String() string {
	if v, ok := classNames[c]; ok {
		return v
	}
	return classNames[ClassOther]
}

func isClass(c Class) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range classValues[c] {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	isWhitespace = isClass(ClassWhitespace)
	isOpenParen  = isClass(ClassOpenParen)
	isCloseParen = isClass(ClassCloseParen)
	isDigit      = isClass(ClassDigit)
)

// Classify returns the class of the given rune.
func Classify(r rune) Class {
	switch {
	case isWhitespace(r):
		return ClassWhitespace
	case isOpenParen(r):
		return ClassOpenParen
	case isCloseParen(r):
		return ClassCloseParen
	case isDigit(r):
		return ClassDigit
	}
	return ClassOther
}

// IsTerminator returns true for the classes that end an atom.
func IsTerminator(c Class) bool {
	return c == ClassWhitespace || c == ClassOpenParen || c == ClassCloseParen
}
