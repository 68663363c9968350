package config

// this holds the resolved configuration values from CLI
var (
	LogLevel   string // sets the log level (zap log level values)
	LogFormat  string // text vs json
	LogFilter  string // zapfilter rules, empty means no filtering
	InputFile  string // setup document (yaml or json), "-" reads stdin
	OutputFile string // destination of the document, empty means stdout
	Target     string // forum or chat
	UnitSystem string // metric or imperial, used for the stats block
	ShareLink  string // optional link placed in the attribution block
	Preview    bool   // render forum output for the terminal
	Unit       string // source unit for the convert command
	Decimals   int    // precision used by the convert command
	Output     string // text vs json for the convert command
)

// Config holds the values a document generation run is based on
type Config struct {
	InputFile  string
	OutputFile string
	Target     string
	UnitSystem string
	ShareLink  string
	Preview    bool
}

// Current returns the generation settings from the resolved CLI values
func Current() Config {
	return Config{
		InputFile:  InputFile,
		OutputFile: OutputFile,
		Target:     Target,
		UnitSystem: UnitSystem,
		ShareLink:  ShareLink,
		Preview:    Preview,
	}
}
