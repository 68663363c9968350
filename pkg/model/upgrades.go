package model

// UpgradeField is a single upgrade selection. Key is the field name used in the setup document.
type UpgradeField struct {
	Key   string
	Value Value
}

// UpgradeGroup is an ordered list of upgrade fields.
type UpgradeGroup struct {
	Key    string
	Title  string
	Fields []UpgradeField
}

type PerformanceUpgrades struct {
	Conversions      Conversions      `yaml:"conversions"`
	FuelAir          FuelAir          `yaml:"fuelAir"`
	Engine           EngineUpgrades   `yaml:"engine"`
	PlatformHandling PlatformHandling `yaml:"platformHandling"`
	Drivetrain       Drivetrain       `yaml:"drivetrain"`
	Tires            TireUpgrades     `yaml:"tires"`
	Wheels           Wheels           `yaml:"wheels"`
	AeroAppearance   AeroAppearance   `yaml:"aeroAppearance"`
}

// Groups returns the upgrade groups in display order.
func (p PerformanceUpgrades) Groups() []UpgradeGroup {
	return []UpgradeGroup{
		{Key: "conversions", Title: "Conversions", Fields: p.Conversions.Fields()},
		{Key: "fuelAir", Title: "Fuel & Air", Fields: p.FuelAir.Fields()},
		{Key: "engine", Title: "Engine", Fields: p.Engine.Fields()},
		{Key: "platformHandling", Title: "Platform & Handling", Fields: p.PlatformHandling.Fields()},
		{Key: "drivetrain", Title: "Drivetrain", Fields: p.Drivetrain.Fields()},
		{Key: "tires", Title: "Tires", Fields: p.Tires.Fields()},
		{Key: "wheels", Title: "Wheels", Fields: p.Wheels.Fields()},
		{Key: "aeroAppearance", Title: "Aero & Appearance", Fields: p.AeroAppearance.Fields()},
	}
}

type Conversions struct {
	Engine     Value `yaml:"engine"`
	Drivetrain Value `yaml:"drivetrain"`
	Aspiration Value `yaml:"aspiration"`
	BodyKit    Value `yaml:"bodyKit"`
}

func (c Conversions) Fields() []UpgradeField {
	return []UpgradeField{
		{"engine", c.Engine},
		{"drivetrain", c.Drivetrain},
		{"aspiration", c.Aspiration},
		{"bodyKit", c.BodyKit},
	}
}

type FuelAir struct {
	Intake         Value `yaml:"intake"`
	IntakeManifold Value `yaml:"intakeManifold"`
	Carburetor     Value `yaml:"carburetor"`
	FuelSystem     Value `yaml:"fuelSystem"`
	Ignition       Value `yaml:"ignition"`
	Exhaust        Value `yaml:"exhaust"`
}

func (f FuelAir) Fields() []UpgradeField {
	return []UpgradeField{
		{"intake", f.Intake},
		{"intakeManifold", f.IntakeManifold},
		{"carburetor", f.Carburetor},
		{"fuelSystem", f.FuelSystem},
		{"ignition", f.Ignition},
		{"exhaust", f.Exhaust},
	}
}

type EngineUpgrades struct {
	Camshaft           Value `yaml:"camshaft"`
	Valves             Value `yaml:"valves"`
	Displacement       Value `yaml:"displacement"`
	PistonsCompression Value `yaml:"pistonsCompression"`
	Turbo              Value `yaml:"turbo"`
	TwinTurbo          Value `yaml:"twinTurbo"`
	Supercharger       Value `yaml:"supercharger"`
	Intercooler        Value `yaml:"intercooler"`
	OilCooling         Value `yaml:"oilCooling"`
	Flywheel           Value `yaml:"flywheel"`
	RestrictorPlate    Value `yaml:"restrictorPlate"`
}

func (e EngineUpgrades) Fields() []UpgradeField {
	return []UpgradeField{
		{"camshaft", e.Camshaft},
		{"valves", e.Valves},
		{"displacement", e.Displacement},
		{"pistonsCompression", e.PistonsCompression},
		{"turbo", e.Turbo},
		{"twinTurbo", e.TwinTurbo},
		{"supercharger", e.Supercharger},
		{"intercooler", e.Intercooler},
		{"oilCooling", e.OilCooling},
		{"flywheel", e.Flywheel},
		{"restrictorPlate", e.RestrictorPlate},
	}
}

type PlatformHandling struct {
	Brakes               Value `yaml:"brakes"`
	SpringsDampers       Value `yaml:"springsDampers"`
	FrontArb             Value `yaml:"frontArb"`
	RearArb              Value `yaml:"rearArb"`
	ChassisReinforcement Value `yaml:"chassisReinforcement"`
	WeightReduction      Value `yaml:"weightReduction"`
}

func (p PlatformHandling) Fields() []UpgradeField {
	return []UpgradeField{
		{"brakes", p.Brakes},
		{"springsDampers", p.SpringsDampers},
		{"frontArb", p.FrontArb},
		{"rearArb", p.RearArb},
		{"chassisReinforcement", p.ChassisReinforcement},
		{"weightReduction", p.WeightReduction},
	}
}

type Drivetrain struct {
	Clutch       Value `yaml:"clutch"`
	Transmission Value `yaml:"transmission"`
	Driveline    Value `yaml:"driveline"`
	Differential Value `yaml:"differential"`
}

func (d Drivetrain) Fields() []UpgradeField {
	return []UpgradeField{
		{"clutch", d.Clutch},
		{"transmission", d.Transmission},
		{"driveline", d.Driveline},
		{"differential", d.Differential},
	}
}

type TireUpgrades struct {
	Compound   Value `yaml:"compound"`
	FrontWidth Value `yaml:"frontWidth"`
	RearWidth  Value `yaml:"rearWidth"`
}

func (t TireUpgrades) Fields() []UpgradeField {
	return []UpgradeField{
		{"compound", t.Compound},
		{"frontWidth", t.FrontWidth},
		{"rearWidth", t.RearWidth},
	}
}

type Wheels struct {
	Style           Value `yaml:"style"`
	FrontSize       Value `yaml:"frontSize"`
	RearSize        Value `yaml:"rearSize"`
	FrontTrackWidth Value `yaml:"frontTrackWidth"`
	RearTrackWidth  Value `yaml:"rearTrackWidth"`
}

func (w Wheels) Fields() []UpgradeField {
	return []UpgradeField{
		{"style", w.Style},
		{"frontSize", w.FrontSize},
		{"rearSize", w.RearSize},
		{"frontTrackWidth", w.FrontTrackWidth},
		{"rearTrackWidth", w.RearTrackWidth},
	}
}

type AeroAppearance struct {
	FrontBumper Value `yaml:"frontBumper"`
	RearBumper  Value `yaml:"rearBumper"`
	RearWing    Value `yaml:"rearWing"`
	SideSkirts  Value `yaml:"sideSkirts"`
	Hood        Value `yaml:"hood"`
}

func (a AeroAppearance) Fields() []UpgradeField {
	return []UpgradeField{
		{"frontBumper", a.FrontBumper},
		{"rearBumper", a.RearBumper},
		{"rearWing", a.RearWing},
		{"sideSkirts", a.SideSkirts},
		{"hood", a.Hood},
	}
}
