package joblog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tiliavir/joblog/internal/model"
	"github.com/Tiliavir/joblog/internal/storage"
)

// Config controls where a Joblog keeps its files.
type Config struct {
	// Dir is the storage folder searched for in the working directory and
	// its parents.
	Dir string
	// LogsName is the name of the logs file inside Dir.
	LogsName string
	// PropertiesName is the name of the optional job properties file inside Dir.
	PropertiesName string
	// SearchDepth is the number of directories searched, the working
	// directory included.
	SearchDepth int
	// WorkDir is where the search starts. Empty means the process working
	// directory.
	WorkDir string
}

const (
	DefaultDir            = ".joblog"
	DefaultLogsName       = "logs"
	DefaultPropertiesName = "properties"
	DefaultSearchDepth    = 10
)

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Dir:            DefaultDir,
		LogsName:       DefaultLogsName,
		PropertiesName: DefaultPropertiesName,
		SearchDepth:    DefaultSearchDepth,
	}
}

// Joblog is the job of one process invocation: it finds the storage
// directory, loads the logs on first use and saves them once at the end.
type Joblog struct {
	cfg   Config
	path  string
	check bool
	logs  *storage.LogList
	props *Properties
	opts  []storage.Option
}

// New returns a Joblog; opts are passed on to the LogList when it is loaded.
func New(cfg Config, opts ...storage.Option) *Joblog {
	def := DefaultConfig()
	if cfg.Dir == "" {
		cfg.Dir = def.Dir
	}
	if cfg.LogsName == "" {
		cfg.LogsName = def.LogsName
	}
	if cfg.PropertiesName == "" {
		cfg.PropertiesName = def.PropertiesName
	}
	if cfg.SearchDepth <= 0 {
		cfg.SearchDepth = def.SearchDepth
	}
	return &Joblog{cfg: cfg, opts: opts}
}

// SetPath uses path as storage directory instead of searching for one. It
// has no effect once the logs are loaded.
func (j *Joblog) SetPath(path string) {
	if j.logs != nil {
		return
	}
	j.path = path
}

// Path returns the storage directory, empty before it is known.
func (j *Joblog) Path() string {
	return j.path
}

// DoChecks makes the next load verify the integrity of the logs.
func (j *Joblog) DoChecks() {
	j.check = true
}

func (j *Joblog) workDir() (string, error) {
	if j.cfg.WorkDir != "" {
		return j.cfg.WorkDir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot determine working directory: %w", err)
	}
	return wd, nil
}

// locate sets j.path if it was not given explicitly.
func (j *Joblog) locate() error {
	if j.path != "" {
		return nil
	}
	wd, err := j.workDir()
	if err != nil {
		return err
	}
	rel := filepath.Join(j.cfg.Dir, j.cfg.LogsName)
	root, err := Locate(wd, j.cfg.SearchDepth, rel, isFile)
	if err != nil {
		return fmt.Errorf("%w: could not open a logs file: %v", model.ErrCorruptedFile, err)
	}
	j.path = filepath.Join(root, j.cfg.Dir)
	return nil
}

// LogsPath returns the path of the logs file, searching for it if needed.
func (j *Joblog) LogsPath() (string, error) {
	if err := j.locate(); err != nil {
		return "", err
	}
	return filepath.Join(j.path, j.cfg.LogsName), nil
}

// LogList returns the logs, loading them on first use. The Joblog keeps
// ownership of the list.
func (j *Joblog) LogList() (*storage.LogList, error) {
	if j.logs != nil {
		return j.logs, nil
	}
	name, err := j.LogsPath()
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open a logs file: %v", model.ErrCorruptedFile, err)
	}
	logs, err := storage.Open(f, j.opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if j.check {
		if err := logs.Check(); err != nil {
			_ = logs.Close()
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	j.logs = logs
	return logs, nil
}

// Properties returns the job properties, an empty value if the storage
// directory holds none.
func (j *Joblog) Properties() (Properties, error) {
	if j.props != nil {
		return *j.props, nil
	}
	if err := j.locate(); err != nil {
		return Properties{}, err
	}
	p, err := loadProperties(filepath.Join(j.path, j.cfg.PropertiesName))
	if err != nil {
		return Properties{}, err
	}
	j.props = &p
	return p, nil
}

// Init creates the storage directory with an empty logs file and returns its
// path. The directory must not exist yet.
func (j *Joblog) Init() (string, error) {
	path := j.path
	if path == "" {
		wd, err := j.workDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(wd, j.cfg.Dir)
	}
	if err := os.Mkdir(path, 0o755); err != nil {
		return "", fmt.Errorf("%w: could not create a directory: %v", model.ErrCorruptedFile, err)
	}
	f, err := os.OpenFile(filepath.Join(path, j.cfg.LogsName), os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("%w: could not create a log file: %v", model.ErrCorruptedFile, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: could not create a log file: %v", model.ErrCorruptedFile, err)
	}
	j.path = path
	return path, nil
}

// Save writes pending changes of the logs. It does nothing if they were
// never loaded.
func (j *Joblog) Save() error {
	if j.logs == nil {
		return nil
	}
	return j.logs.Save()
}

// Close releases the logs file without saving.
func (j *Joblog) Close() error {
	if j.logs == nil {
		return nil
	}
	err := j.logs.Close()
	j.logs = nil
	return err
}
