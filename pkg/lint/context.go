package lint

import (
	"errors"
	"path/filepath"

	"golang.org/x/text/encoding"

	"github.com/leapstack-labs/proplint/pkg/charset"
	"github.com/leapstack-labs/proplint/pkg/parser"
	"github.com/leapstack-labs/proplint/pkg/tree"
)

// InputFile identifies an analyzed file and the charset it is read with.
type InputFile struct {
	Path    string
	Charset encoding.Encoding // nil means charset.Default
}

// NewInputFile creates an InputFile.
func NewInputFile(path string, enc encoding.Encoding) *InputFile {
	return &InputFile{Path: path, Charset: enc}
}

// Name returns the base name of the file.
func (f *InputFile) Name() string {
	return filepath.Base(f.Path)
}

// Encoding returns the file's charset, falling back to charset.Default.
func (f *InputFile) Encoding() encoding.Encoding {
	if f.Charset == nil {
		return charset.Default
	}
	return f.Charset
}

// ReadContent reads and decodes the file from disk.
func (f *InputFile) ReadContent() (string, error) {
	return charset.ReadFile(f.Path, f.Encoding())
}

func (f *InputFile) String() string {
	return f.Path
}

// Context is what a check sees while scanning one file.
type Context struct {
	Tree *tree.Properties
	File *InputFile

	source []byte // set when the file does not live on disk
}

// NewContext wraps an already parsed tree.
func NewContext(file *InputFile, t *tree.Properties) *Context {
	return &Context{Tree: t, File: file}
}

// ParseContext reads and parses the file at path.
func ParseContext(path string, enc encoding.Encoding) (*Context, error) {
	file := NewInputFile(path, enc)
	t, err := parser.ParseFile(path, file.Encoding())
	if err != nil {
		return nil, err
	}
	return NewContext(file, t), nil
}

// NewContextFromSource parses in-memory content as if it were read from name.
func NewContextFromSource(name string, content []byte, enc encoding.Encoding) (*Context, error) {
	file := NewInputFile(name, enc)
	t, err := parser.Parse(content, file.Encoding())
	if err != nil {
		var rerr *charset.ReadError
		if errors.As(err, &rerr) {
			rerr.Path = name
		}
		return nil, err
	}
	return &Context{Tree: t, File: file, source: content}, nil
}

// ReadContent returns the file's text, decoded with the same charset the
// tree was parsed with.
func (c *Context) ReadContent() (string, error) {
	return c.ReadContentAs(c.File.Encoding())
}

// ReadContentAs returns the file's text decoded with enc.
func (c *Context) ReadContentAs(enc encoding.Encoding) (string, error) {
	if c.source == nil {
		return charset.ReadFile(c.File.Path, enc)
	}
	s, err := charset.Decode(c.source, enc)
	if err != nil {
		return "", &charset.ReadError{Path: c.File.Path, Charset: charset.Name(enc), Err: err}
	}
	return s, nil
}
