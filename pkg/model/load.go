package model

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/mpapenbr/fmtune-formatter/pkg/units"
)

const (
	// FormatVersion is the setup document format produced by the current form layer.
	FormatVersion string = "v1.2.0"
	// RequiredFormatVersion is the oldest document format we can read.
	RequiredFormatVersion string = "v1.0.0"
)

var (
	ErrUnknownUnit        = errors.New("unknown unit")
	ErrUnitMismatch       = errors.New("unit does not match quantity")
	ErrUnsupportedVersion = errors.New("unsupported format version")
)

// units used when a document does not specify one
var defaultUnits = map[units.Quantity]units.Unit{
	units.Pressure:   units.Bar,
	units.SpringRate: units.KGFMM,
	units.Length:     units.CM,
	units.Force:      units.KGF,
}

// DefaultUnit returns the unit assumed for q when a document does not specify one.
func DefaultUnit(q units.Quantity) units.Unit {
	return defaultUnits[q]
}

// Load reads a setup document (YAML or JSON) and validates it.
func Load(r io.Reader) (*FMSetup, error) {
	setup := &FMSetup{}
	if err := yaml.NewDecoder(r).Decode(setup); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty setup document")
		}
		return nil, fmt.Errorf("decode setup: %w", err)
	}
	if err := setup.Validate(); err != nil {
		return nil, err
	}
	return setup, nil
}

// LoadFile reads a setup document from file.
func LoadFile(name string) (*FMSetup, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// CheckFormatVersion accepts blank versions and versions from RequiredFormatVersion up to
// the current major version.
func CheckFormatVersion(toCheck string) error {
	if toCheck == "" {
		return nil
	}
	if !strings.HasPrefix(toCheck, "v") {
		toCheck = "v" + toCheck
	}
	if !semver.IsValid(toCheck) {
		return fmt.Errorf("%w: %q is not a valid version", ErrUnsupportedVersion, toCheck)
	}
	if semver.Compare(toCheck, RequiredFormatVersion) < 0 ||
		semver.Major(toCheck) != semver.Major(FormatVersion) {
		return fmt.Errorf("%w: %s (supported %s up to %s.x)",
			ErrUnsupportedVersion, toCheck, RequiredFormatVersion, semver.Major(FormatVersion))
	}
	return nil
}

// Validate checks the format version and the unit tags. Missing unit tags are set to
// the default unit of the quantity.
func (s *FMSetup) Validate() error {
	if err := CheckFormatVersion(s.Version); err != nil {
		return err
	}
	checks := []struct {
		name     string
		target   *FrontAndRearWithUnit
		quantity units.Quantity
	}{
		{"tires", &s.Tune.Tires, units.Pressure},
		{"springs", &s.Tune.Springs, units.SpringRate},
		{"rideHeight", &s.Tune.RideHeight, units.Length},
		{"aero", &s.Tune.Aero, units.Force},
	}
	for _, c := range checks {
		if c.target.Unit == "" {
			c.target.Unit = defaultUnits[c.quantity]
			continue
		}
		c.target.Unit = units.Unit(strings.ToLower(strings.TrimSpace(string(c.target.Unit))))
		if !units.Valid(c.target.Unit) {
			return fmt.Errorf("%s: %w %q", c.name, ErrUnknownUnit, c.target.Unit)
		}
		if units.QuantityOf(c.target.Unit) != c.quantity {
			return fmt.Errorf("%s: %w: %s is not a %s unit",
				c.name, ErrUnitMismatch, c.target.Unit, c.quantity)
		}
	}
	return nil
}
