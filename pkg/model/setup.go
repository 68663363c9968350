package model

import "strings"

// FMSetup is a complete tuning record as delivered by the form layer.
type FMSetup struct {
	Version   string              `yaml:"version"` // format version of the document
	Year      Value               `yaml:"year"`
	Make      Value               `yaml:"make"`
	Model     Value               `yaml:"model"`
	Author    Value               `yaml:"author"`
	ShareCode Value               `yaml:"shareCode"` // in-game share code
	Notes     Value               `yaml:"notes"`
	Stats     Stats               `yaml:"stats"`
	Upgrades  PerformanceUpgrades `yaml:"upgrades"`
	Tune      TuneSettings        `yaml:"tune"`
}

// Stats are entered in the units of the selected global unit system.
type Stats struct {
	Classification Value `yaml:"classification"`
	PI             Value `yaml:"pi"`
	Power          Value `yaml:"power"`
	Torque         Value `yaml:"torque"`
	Weight         Value `yaml:"weight"`
	FrontWeight    Value `yaml:"frontWeight"` // percent
	TopSpeed       Value `yaml:"topSpeed"`
	ZeroToSixty    Value `yaml:"zeroToSixty"`   // seconds
	ZeroToHundred  Value `yaml:"zeroToHundred"` // seconds
}

// Title returns "<year> <make> <model>", skipping blank parts.
func (s *FMSetup) Title() string {
	parts := []string{}
	for _, v := range []Value{s.Year, s.Make, s.Model} {
		if !v.IsBlank() {
			parts = append(parts, v.String())
		}
	}
	return strings.Join(parts, " ")
}

// ClassLabel returns "<class> <pi>" or "" if neither is set.
func (s Stats) ClassLabel() string {
	parts := []string{}
	for _, v := range []Value{s.Classification, s.PI} {
		if !v.IsUnset() {
			parts = append(parts, v.String())
		}
	}
	return strings.Join(parts, " ")
}
