package envjson_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Azhovan/envjson"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// parserCase is one row of testdata/parser_cases.yaml.
type parserCase struct {
	Name      string            `yaml:"name"`
	Prefix    string            `yaml:"prefix"`
	Separator string            `yaml:"separator"`
	Include   []string          `yaml:"include"`
	Exclude   []string          `yaml:"exclude"`
	Raw       bool              `yaml:"raw"`
	Document  map[string]any    `yaml:"document"`
	Vars      map[string]string `yaml:"vars"`
	Want      string            `yaml:"want"`
}

func (tc parserCase) options() []envjson.Option {
	var opts []envjson.Option
	if tc.Prefix != "" {
		opts = append(opts, envjson.WithPrefix(tc.Prefix))
	}
	if tc.Separator != "" {
		opts = append(opts, envjson.WithSeparator(tc.Separator))
	}
	if len(tc.Include) > 0 {
		opts = append(opts, envjson.WithInclude(tc.Include...))
	}
	if len(tc.Exclude) > 0 {
		opts = append(opts, envjson.WithExclude(tc.Exclude...))
	}
	if tc.Raw {
		opts = append(opts, envjson.WithRawStrings())
	}
	if tc.Document != nil {
		opts = append(opts, envjson.WithDocument(tc.Document))
	}
	return opts
}

// TestParser_DocumentShapes runs the file-driven cases and compares the
// parsed tree against the expected JSON document.
func TestParser_DocumentShapes(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "parser_cases.yaml"))
	require.NoError(t, err)

	var cases []parserCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			parser, err := envjson.New(tc.options()...)
			require.NoError(t, err)

			got, err := json.Marshal(parser.Parse(tc.Vars))
			require.NoError(t, err)

			assert.JSONEq(t, tc.Want, string(got))
		})
	}
}
