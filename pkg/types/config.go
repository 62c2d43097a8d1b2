package types

// Config represents the overall toolkit configuration
type Config struct {
	Extract ExtractConfig `yaml:"extract" json:"extract"`
	Banks   []Bank        `yaml:"banks" json:"banks"`
	Book    BookConfig    `yaml:"book" json:"book"`
	Storage StorageConfig `yaml:"storage" json:"storage"`
}

// ExtractConfig holds extractor pipeline settings
type ExtractConfig struct {
	SourcePath    string `yaml:"source_path" json:"source_path"`       // raw text dump
	RawTextPath   string `yaml:"raw_text_path" json:"raw_text_path"`   // cleaned full-text output
	QuestionsPath string `yaml:"questions_path" json:"questions_path"` // extracted JSON output

	// Strict drops records with missing or empty choices instead of
	// emitting them with a warning.
	Strict bool `yaml:"strict" json:"strict"`

	// Phrases are literal boilerplate fragments removed wherever they occur
	// in explanation text.
	Phrases []string `yaml:"phrases" json:"phrases"`

	// SectionMarkers are removed together with the rest of their line.
	SectionMarkers []string `yaml:"section_markers" json:"section_markers"`
}

// Bank identifies one pre-extracted question bank and its rendered book
type Bank struct {
	Name          string `yaml:"name" json:"name"`
	QuestionsPath string `yaml:"questions_path" json:"questions_path"`
	OutputPath    string `yaml:"output_path" json:"output_path"`
	Title         string `yaml:"title" json:"title"`
}

// BookConfig holds metadata applied to every built book
type BookConfig struct {
	Creator  string `yaml:"creator" json:"creator"`
	Language string `yaml:"language" json:"language"`
	IconPath string `yaml:"icon_path" json:"icon_path"` // optional, silently skipped if absent
}

// StorageConfig defines storage adapter settings
type StorageConfig struct {
	Adapter string           `yaml:"adapter" json:"adapter"` // "local" or "s3"
	Local   LocalStorageOpts `yaml:"local" json:"local"`
	S3      S3StorageOpts    `yaml:"s3" json:"s3"`
}

// LocalStorageOpts configures the local filesystem adapter
type LocalStorageOpts struct {
	BasePath string `yaml:"base_path" json:"base_path"`
}

// S3StorageOpts configures the S3-compatible adapter
type S3StorageOpts struct {
	Endpoint        string `yaml:"endpoint" json:"endpoint"`
	Region          string `yaml:"region" json:"region"`
	Bucket          string `yaml:"bucket" json:"bucket"`
	AccessKeyID     string `yaml:"access_key_id" json:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key" json:"secret_access_key"`
}

// FindBank returns the bank with the given name, or false if none matches.
func (c *Config) FindBank(name string) (Bank, bool) {
	for _, b := range c.Banks {
		if b.Name == name {
			return b, true
		}
	}
	return Bank{}, false
}
