package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"monkey/internal/source"
	"monkey/internal/token"
)

type TokenOutput struct {
	Kind  string `json:"kind" msgpack:"kind"`
	Text  string `json:"text,omitempty" msgpack:"text,omitempty"`
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
}

func tokenOutputs(tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Literal,
			Start: tok.Span.Start,
			End:   tok.Span.End,
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)
		if _, err := fmt.Fprintf(w, "%3d: %-10s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Literal != "" {
			fmt.Fprintf(w, " %q", tok.Literal)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tokenOutputs(tokens))
}

// FormatTokensMsgPack пишет поток токенов как msgpack-массив для внешних инструментов.
func FormatTokensMsgPack(w io.Writer, tokens []token.Token) error {
	enc := msgpack.NewEncoder(w)
	enc.UseCompactInts(true)
	return enc.Encode(tokenOutputs(tokens))
}

// DecodeTokensMsgPack читает поток, записанный FormatTokensMsgPack.
func DecodeTokensMsgPack(r io.Reader) ([]TokenOutput, error) {
	var out []TokenOutput
	if err := msgpack.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode tokens: %w", err)
	}
	return out, nil
}
