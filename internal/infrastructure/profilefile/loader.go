// Package profilefile loads the profile document that drives every page.
package profilefile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"portfolio-site/internal/domain/profile"
	"portfolio-site/internal/domain/skill"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultProfile []byte

var ErrInvalidProfile = errors.New("invalid profile")

// Load reads the profile at path, or the embedded default when path is empty,
// and returns it frozen in a Store.
func Load(path string) (*profile.Store, error) {
	data, err := Read(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return profile.NewStore(p), nil
}

func Read(path string) ([]byte, error) {
	if path == "" {
		return defaultProfile, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve profile path: %w", err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", abs, err)
	}
	return data, nil
}

// Parse decodes a YAML profile and checks it against the JSON schema and the
// struct constraints.
func Parse(data []byte) (profile.Profile, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return profile.Profile{}, fmt.Errorf("%w: decode yaml: %v", ErrInvalidProfile, err)
	}
	if doc == nil {
		return profile.Profile{}, fmt.Errorf("%w: empty document", ErrInvalidProfile)
	}
	if err := validateSchema(doc); err != nil {
		return profile.Profile{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	var p profile.Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return profile.Profile{}, fmt.Errorf("%w: decode profile: %v", ErrInvalidProfile, err)
	}

	if err := newValidator().Struct(p); err != nil {
		return profile.Profile{}, fmt.Errorf("%w: %w", ErrInvalidProfile, toValidationError(err))
	}
	return p, nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("skillcategory", func(fl validator.FieldLevel) bool {
		return skill.Category(fl.Field().String()).Known()
	})
	return v
}

func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	ve := &ValidationError{Errors: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   fe.Namespace(),
			Message: fmt.Sprintf("failed %q constraint", fe.Tag()),
		})
	}
	return ve
}
