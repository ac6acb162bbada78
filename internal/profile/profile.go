package profile

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/aligntext/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Profile holds the values found in a profile file. Nil fields were not set.
type Profile struct {
	Width      *int
	Mode       *string
	Paragraphs *string
	Workers    *int
	LogLevel   *string
	LogFormat  *string
}

// fileRoot mirrors the accepted layout of a profile file.
type fileRoot struct {
	Width      *int     `hcl:"width,optional"`
	Mode       *string  `hcl:"mode,optional"`
	Paragraphs *string  `hcl:"paragraphs,optional"`
	Workers    *int     `hcl:"workers,optional"`
	Log        *logBody `hcl:"log,block"`
}

type logBody struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Load parses the profile at path. env becomes the `env` variable.
func Load(ctx context.Context, path string, env map[string]string) (*Profile, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading profile.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, diags)
	}
	return decode(file.Body, path, env)
}

// Parse is like Load but reads the profile from src. filename is used in
// diagnostics only.
func Parse(src []byte, filename string, env map[string]string) (*Profile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse profile %s: %w", filename, diags)
	}
	return decode(file.Body, filename, env)
}

func decode(body hcl.Body, filename string, env map[string]string) (*Profile, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, evalContext(env), &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode profile %s: %w", filename, diags)
	}

	p := &Profile{
		Width:      root.Width,
		Mode:       root.Mode,
		Paragraphs: root.Paragraphs,
		Workers:    root.Workers,
	}
	if root.Log != nil {
		p.LogLevel = root.Log.Level
		p.LogFormat = root.Log.Format
	}
	return p, nil
}

func evalContext(env map[string]string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vars[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
		Functions: map[string]function.Function{
			"upper":    stdlib.UpperFunc,
			"lower":    stdlib.LowerFunc,
			"min":      stdlib.MinFunc,
			"max":      stdlib.MaxFunc,
			"parseint": stdlib.ParseIntFunc,
			"coalesce": stdlib.CoalesceFunc,
		},
	}
}
