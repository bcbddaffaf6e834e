package lookup

import (
	"errors"

	"github.com/casualjim/tryget"
	"github.com/fogfish/opts"
	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned by NewJSON when the document does not parse.
var ErrInvalidJSON = errors.New("invalid json document")

// JSONOption configures a JSON source.
type JSONOption = opts.Option[jsonOptions]

type jsonOptions struct {
	Integers bool
	Prefix   string
}

var (
	// WithIntegers makes whole numbers come back as int64 instead of float64.
	WithIntegers = opts.ForName[jsonOptions, bool]("Integers")

	// WithPrefix prepends a path, joined with a dot, to every lookup.
	WithPrefix = opts.ForName[jsonOptions, string]("Prefix")
)

// JSON looks up paths in a JSON document using gjson path syntax,
// e.g. "server.port" or "users.0.name".
//
// Values are decoded the way gjson decodes them: objects become map[string]any,
// arrays []any, numbers float64 (or int64 with WithIntegers), and null is found
// with a nil value, which never narrows.
type JSON struct {
	doc     []byte
	options jsonOptions
}

// NewJSON creates a source over doc.
func NewJSON(doc []byte, options ...JSONOption) (*JSON, error) {
	if !gjson.ValidBytes(doc) {
		return nil, ErrInvalidJSON
	}
	src := &JSON{doc: doc}
	if err := opts.Apply(&src.options, options); err != nil {
		return nil, err
	}
	return src, nil
}

// TryGet looks up path. The result is successful when the path exists.
func (j *JSON) TryGet(path string) tryget.Dynamic {
	if j.options.Prefix != "" {
		path = j.options.Prefix + "." + path
	}

	res := gjson.GetBytes(j.doc, path)
	if !res.Exists() {
		return tryget.NotFound[any]()
	}
	if j.options.Integers && res.Type == gjson.Number && isWhole(res) {
		return tryget.Found[any](res.Int())
	}
	return tryget.Found(res.Value())
}

// Raw looks up path and returns the matching JSON text, unparsed.
func (j *JSON) Raw(path string) tryget.Result[string] {
	if j.options.Prefix != "" {
		path = j.options.Prefix + "." + path
	}

	res := gjson.GetBytes(j.doc, path)
	return tryget.New(res.Exists(), res.Raw)
}

func isWhole(res gjson.Result) bool {
	return res.Float() == float64(res.Int())
}
