// Package formatter renders a vehicle's identifying attributes as a plain
// record, and as JSON or YAML text.
//
// Go Learning Note — Single Responsibility:
// Vehicles know how to price themselves; they do not know how to print
// themselves. Keeping serialization here means a new output format never
// touches the domain package, and a new variant never touches this one.
package formatter

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
	"insurance/internal/domain/entities"
	"insurance/internal/domain/validation"
	"insurance/internal/domain/vehicle"
)

// Record is the serializable identity of a vehicle.
type Record struct {
	Make  string `json:"make" yaml:"make"`
	Model string `json:"model" yaml:"model"`
	Year  int    `json:"year" yaml:"year"`
}

// ToRecord copies the identity fields of v into a Record.
func ToRecord(v vehicle.Identified) (Record, error) {
	if err := vehicle.Check(v); err != nil {
		return Record{}, err
	}
	return Record{
		Make:  v.Make(),
		Model: v.Model(),
		Year:  v.Year(),
	}, nil
}

// JSON renders the record of v as a compact JSON object.
func JSON(v vehicle.Identified) (string, error) {
	return Format(v, "json")
}

// YAML renders the record of v as a YAML mapping.
func YAML(v vehicle.Identified) (string, error) {
	return Format(v, "yaml")
}

// Format renders v in the named format ("json" or "yaml").
func Format(v vehicle.Identified, format string) (string, error) {
	rec, err := ToRecord(v)
	if err != nil {
		return "", err
	}
	text, err := encode(rec, format)
	if err != nil {
		return "", fmt.Errorf("vehicle record: %w", err)
	}
	return text, nil
}

// Profile renders the public profile of u. Nothing beyond UserProfile is
// exposed, so follow lists stay out of the output.
func Profile(u *entities.User, format string) (string, error) {
	if u == nil {
		return "", validation.New("user", "required", nil)
	}
	text, err := encode(u.Profile(), format)
	if err != nil {
		return "", fmt.Errorf("user profile: %w", err)
	}
	return text, nil
}

func encode(x any, format string) (string, error) {
	var (
		b   []byte
		err error
	)
	switch format {
	case "", "json":
		b, err = json.Marshal(x)
	case "yaml", "yml":
		b, err = yaml.Marshal(x)
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}
	return string(b), nil
}

// ParseRecord decodes a JSON record produced by JSON.
func ParseRecord(data []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("decode vehicle record: %w", err)
	}
	return rec, nil
}

// Vehicle rebuilds a variant of the given kind from the record. The catalog
// re-runs construction validation, so a tampered record is rejected.
func (r Record) Vehicle(catalog *vehicle.Catalog, kind string) (vehicle.Vehicle, error) {
	return catalog.Build(kind, r.Make, r.Model, r.Year)
}
