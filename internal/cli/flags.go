package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	Text       string
	TargetLang string
	Domain     string
	Glossary   string
	Summary    bool
	NoSummary  bool
	ListModels bool

	// Cache maintenance flags
	ClearCache bool
	CacheStats bool

	// Batch flags
	Batch       bool
	BatchConfig string
	InputDir    string
	OutputDir   string
	FilePattern string
	DeleteAfter bool
	NoDelete    bool
}

// NewFlags creates a new Flags instance
func NewFlags() *Flags {
	return &Flags{}
}

// SummaryFlag folds the --summary/--no-summary pair into an optional
// override: nil when neither was given.
func (f *Flags) SummaryFlag() *bool {
	if f.NoSummary {
		no := false
		return &no
	}
	if f.Summary {
		yes := true
		return &yes
	}
	return nil
}

// DeleteFlag folds --delete-after/--no-delete the same way.
func (f *Flags) DeleteFlag() *bool {
	if f.NoDelete {
		no := false
		return &no
	}
	if f.DeleteAfter {
		yes := true
		return &yes
	}
	return nil
}
