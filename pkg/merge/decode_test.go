package merge

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func gbkBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func TestDecodeContent(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		wantText    string
		wantDecoder string
		wantOK      bool
	}{
		{
			name:        "ascii",
			data:        []byte("const a=1;"),
			wantText:    "const a=1;",
			wantDecoder: "utf-8",
			wantOK:      true,
		},
		{
			name:        "utf-8 multibyte",
			data:        []byte("// 中文注释\nlet x = '✓';"),
			wantText:    "// 中文注释\nlet x = '✓';",
			wantDecoder: "utf-8",
			wantOK:      true,
		},
		{
			name:        "crlf normalized",
			data:        []byte("a\r\nb\rc\n"),
			wantText:    "a\nb\nc\n",
			wantDecoder: "utf-8",
			wantOK:      true,
		},
		{
			name:        "empty",
			data:        []byte{},
			wantText:    "",
			wantDecoder: "utf-8",
			wantOK:      true,
		},
		{
			name:   "invalid in both encodings",
			data:   []byte{0xff, 0xfe, 0xff},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, used, ok := DecodeContent(tt.data, DefaultDecoders())
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantDecoder, used)
		})
	}
}

func TestDecodeContentFallsBackToGBK(t *testing.T) {
	data := gbkBytes(t, "// 中文注释\nconst a = 1;")
	_, isUTF8 := UTF8Decoder{}.Decode(data)
	require.False(t, isUTF8)

	text, used, ok := DecodeContent(data, DefaultDecoders())
	require.True(t, ok)
	assert.Equal(t, "gbk", used)
	assert.Equal(t, "// 中文注释\nconst a = 1;", text)
}

func TestCharsetDecoderRejectsMalformedInput(t *testing.T) {
	d := NewCharsetDecoder("gbk", simplifiedchinese.GBK)
	_, ok := d.Decode([]byte{0xd6}) // truncated two-byte sequence
	assert.False(t, ok)

	_, ok = d.Decode([]byte{0xff})
	assert.False(t, ok)
}

func TestLoadContent(t *testing.T) {
	root := t.TempDir()
	utf := writeFile(t, root, "a.ts", []byte("const a=1;"))
	gbk := writeFile(t, root, "gbk.js", gbkBytes(t, "var s = '你好';"))
	bad := writeFile(t, root, "bad.js", []byte{0xff, 0xfe, 0xff})

	logger := zap.NewNop()

	text, err := LoadContent(utf, DefaultDecoders(), logger)
	require.NoError(t, err)
	assert.Equal(t, "const a=1;", text)

	text, err = LoadContent(gbk, DefaultDecoders(), logger)
	require.NoError(t, err)
	assert.Equal(t, "var s = '你好';", text)

	text, err = LoadContent(bad, DefaultDecoders(), logger)
	require.NoError(t, err)
	assert.Equal(t, "[Error: Could not decode file "+bad+"]", text)

	_, err = LoadContent(filepath.Join(root, "missing.ts"), DefaultDecoders(), logger)
	assert.Error(t, err)
}
