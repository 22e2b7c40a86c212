package venues

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/tidwall/jsonc"

	"github.com/agentstation/tripmap/pkg/errors"
)

// Format names a dataset encoding.
type Format string

// Supported dataset encodings.
const (
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
	FormatYAML  Format = "yaml"
)

// FormatFromPath picks the encoding from the file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".jsonc":
		return FormatJSONC
	default:
		return FormatJSON
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("venuetag", func(fl validator.FieldLevel) bool {
			return Tag(fl.Field().String()).Valid()
		})
	})
	return validate
}

// Load reads, decodes, and validates the dataset at path.
// Every failure is reported as a DatasetError.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapDataset(path, errors.WrapIO("read", path, err))
	}

	list, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return nil, errors.WrapDataset(path, err)
	}

	set, err := Build(list)
	if err != nil {
		return nil, errors.WrapDataset(path, err)
	}
	return set, nil
}

// Decode parses a dataset document. It does not validate.
func Decode(data []byte, format Format) ([]Venue, error) {
	var list []Venue
	if err := decodeInto(data, format, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// decodeInto unmarshals data into target according to format.
func decodeInto(data []byte, format Format, target any) error {
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, target); err != nil {
			return errors.WrapParse(string(format), "", err)
		}
	case FormatJSON, FormatJSONC:
		if err := json.Unmarshal(jsonc.ToJSON(data), target); err != nil {
			return errors.WrapParse(string(format), "", err)
		}
	default:
		return errors.NewValidationError("format", format, "unsupported format")
	}
	return nil
}

// Validate checks every venue record and reports the first violation.
func Validate(list []Venue) error {
	v := validatorInstance()
	for i, venue := range list {
		if err := v.Struct(venue); err != nil {
			return toValidationError(i, venue, err)
		}
	}
	return nil
}

// Build validates the records and arranges them into a Set.
func Build(list []Venue) (*Set, error) {
	if err := Validate(list); err != nil {
		return nil, err
	}
	return NewSet(list)
}

func toValidationError(index int, venue Venue, err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &errors.ValidationError{
			Field:   fmt.Sprintf("venues[%d].%s", index, fe.Field()),
			Value:   fe.Value(),
			Message: fmt.Sprintf("venue %q failed %q check", venue.Name, fe.Tag()),
		}
	}
	return errors.NewValidationError(fmt.Sprintf("venues[%d]", index), venue.Name, err.Error())
}
