// Package problemfile reads decision problems from YAML documents.
//
// A document looks like:
//
//	name: supplier-selection
//	alternatives: [A1, A2, A3, A4]
//	criteria:
//	  - {name: quality, type: benefit, weight: 1}
//	  - {name: price, type: cost, weight: 2}
//	matrix:
//	  - [8, 7]
//	  - [5, 9]
//
// Decoding is lenient about number types; shape and vocabulary checks are
// left to the engine.
package problemfile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/saw/internal/domain/model"
	"github.com/okian/saw/pkg/saw"
)

// Load reads the problem stored at path.
func Load(ctx context.Context, path string) (model.Problem, error) {
	if err := ctx.Err(); err != nil {
		return model.Problem{}, err
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return model.Problem{}, fmt.Errorf("%w: read %s: %w", ErrLoadProblem, path, err)
	}
	p, err := decode(k)
	if err != nil {
		return model.Problem{}, fmt.Errorf("%w: %s: %w", ErrLoadProblem, path, err)
	}
	return p, nil
}

// LoadAll reads every path in order and stops at the first failure.
func LoadAll(ctx context.Context, paths []string) ([]model.Problem, error) {
	out := make([]model.Problem, 0, len(paths))
	for _, path := range paths {
		p, err := Load(ctx, strings.TrimSpace(path))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Parse decodes a problem from YAML bytes.
func Parse(ctx context.Context, data []byte) (model.Problem, error) {
	if err := ctx.Err(); err != nil {
		return model.Problem{}, err
	}
	k := koanf.New(".")
	if err := k.Load(bytesProvider(data), yaml.Parser()); err != nil {
		return model.Problem{}, fmt.Errorf("%w: parse: %w", ErrLoadProblem, err)
	}
	p, err := decode(k)
	if err != nil {
		return model.Problem{}, fmt.Errorf("%w: %w", ErrLoadProblem, err)
	}
	return p, nil
}

func decode(k *koanf.Koanf) (model.Problem, error) {
	p := model.Problem{
		Name:         k.String("name"),
		Alternatives: k.Strings("alternatives"),
	}

	raw, ok := k.Get("criteria").([]any)
	if !ok || len(raw) == 0 {
		return model.Problem{}, errors.New("criteria: expected a list of {name, type, weight}")
	}
	for j, item := range raw {
		c, ok := item.(map[string]any)
		if !ok {
			return model.Problem{}, fmt.Errorf("criteria[%d]: expected {name, type, weight}, got %v", j, item)
		}
		w, err := saw.CoerceNumber(c["weight"])
		if err != nil {
			return model.Problem{}, fmt.Errorf("criteria[%d].weight: %w", j, err)
		}
		name, _ := c["name"].(string)
		typ, _ := c["type"].(string)
		p.Criteria = append(p.Criteria, model.Criterion{
			Name:   name,
			Type:   typ,
			Weight: w,
		})
	}

	matrix, err := saw.CoerceMatrix(k.Get("matrix"))
	if err != nil {
		return model.Problem{}, fmt.Errorf("matrix: %w", err)
	}
	p.Matrix = matrix
	return p, nil
}

// bytesProvider serves an in-memory document to koanf.
type bytesProvider []byte

func (b bytesProvider) ReadBytes() ([]byte, error) { return b, nil }

func (b bytesProvider) Read() (map[string]any, error) {
	return nil, errors.New("bytes provider does not support Read()")
}
