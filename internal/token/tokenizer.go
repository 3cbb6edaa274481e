package token

// Tokenizer turns one line of expression text into tokens.
type Tokenizer interface {
	Tokenize(input string) ([]Token, error)
}
