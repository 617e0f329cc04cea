// File: pkg/merge/decode.go
package merge

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// Decoder turns raw file bytes into text. ok is false when the bytes are not
// valid in the decoder's encoding.
type Decoder interface {
	Name() string
	Decode(data []byte) (text string, ok bool)
}

// DefaultDecoders returns UTF-8 followed by the GBK fallback.
func DefaultDecoders() []Decoder {
	return []Decoder{UTF8Decoder{}, NewCharsetDecoder("gbk", simplifiedchinese.GBK)}
}

// UTF8Decoder accepts only well-formed UTF-8.
type UTF8Decoder struct{}

func (UTF8Decoder) Name() string { return "utf-8" }

func (UTF8Decoder) Decode(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

// CharsetDecoder decodes a legacy charset through golang.org/x/text. The
// x/text decoders substitute U+FFFD for malformed input instead of failing, so
// any replacement rune in the output is treated as a decode failure.
type CharsetDecoder struct {
	name string
	enc  encoding.Encoding
}

// NewCharsetDecoder wraps enc under the given display name.
func NewCharsetDecoder(name string, enc encoding.Encoding) CharsetDecoder {
	return CharsetDecoder{name: name, enc: enc}
}

func (d CharsetDecoder) Name() string { return d.name }

func (d CharsetDecoder) Decode(data []byte) (string, bool) {
	out, err := d.enc.NewDecoder().Bytes(data)
	if err != nil || bytes.ContainsRune(out, utf8.RuneError) {
		return "", false
	}
	return string(out), true
}

// DecodePlaceholder is substituted for content no decoder accepts.
func DecodePlaceholder(path string) string {
	return fmt.Sprintf("[Error: Could not decode file %s]", path)
}

// DecodeContent tries each decoder in order and returns the first success.
// Line endings are normalized to "\n".
func DecodeContent(data []byte, decoders []Decoder) (text string, decoder string, ok bool) {
	for _, d := range decoders {
		if s, ok := d.Decode(data); ok {
			return normalizeNewlines(s), d.Name(), true
		}
	}
	return "", "", false
}

// LoadContent reads path and decodes it. A file no decoder accepts yields the
// placeholder text; read failures are returned as errors.
func LoadContent(path string, decoders []Decoder, logger *zap.Logger) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Failed to read file", zap.String("filePath", path), zap.Error(err))
		return "", fmt.Errorf("error reading file %s: %w", path, err)
	}

	text, used, ok := DecodeContent(data, decoders)
	if !ok {
		logger.Warn("Could not decode file, substituting placeholder", zap.String("filePath", path))
		return DecodePlaceholder(path), nil
	}

	logger.Debug("Loaded file content",
		zap.String("filePath", path),
		zap.String("encoding", used),
		zap.Int("contentSizeBytes", len(data)))
	return text, nil
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
