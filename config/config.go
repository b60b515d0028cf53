package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/sadalchemist/alchemist/internal/domain"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "ALCHEMIST"

type Config struct {
	Output       string        `mapstructure:"output"`
	FPS          string        `mapstructure:"fps"`
	HWAccel      string        `mapstructure:"hwaccel"`
	Preset       string        `mapstructure:"preset"`
	Task         string        `mapstructure:"task"`
	FFmpeg       string        `mapstructure:"ffmpeg"`
	FFprobe      string        `mapstructure:"ffprobe"`
	ProbeTimeout time.Duration `mapstructure:"probe_timeout"`
	ProbeOnce    bool          `mapstructure:"probe_once"`
	Report       string        `mapstructure:"report"`
	DryRun       bool          `mapstructure:"dry_run"`
	Check        bool          `mapstructure:"check"`
	Verbose      bool          `mapstructure:"verbose"`
	Log          LogConfig     `mapstructure:"log"`

	// Folders are the image-sequence folders in queue order: the config
	// file list first, then positional arguments.
	Folders []string `mapstructure:"folders"`

	// Audio and Takes are keyed by folder as given on the command line.
	Audio map[string]string `mapstructure:"-"`
	Takes map[string]string `mapstructure:"-"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output", "")
	v.SetDefault("fps", "24")
	v.SetDefault("hwaccel", string(domain.HWAccelAuto))
	v.SetDefault("preset", string(domain.PresetPreviewH264))
	v.SetDefault("task", "")
	v.SetDefault("ffmpeg", "ffmpeg")
	v.SetDefault("ffprobe", "ffprobe")
	v.SetDefault("probe_timeout", 10*time.Second)
	v.SetDefault("probe_once", true)
	v.SetDefault("report", "")
	v.SetDefault("dry_run", false)
	v.SetDefault("check", false)
	v.SetDefault("verbose", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("folders", []string{})
}

// NewFlagSet declares the command-line flags. Flag names use dashes; the
// matching config and environment keys use underscores.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false

	fs.String("config", "", "YAML config file")
	fs.StringP("output", "o", "", "output folder for rendered videos")
	fs.String("fps", "24", "frame rate, integer, decimal or num/den")
	fs.String("hwaccel", string(domain.HWAccelAuto), "hardware acceleration: auto, gpu or cpu")
	fs.String("preset", string(domain.PresetPreviewH264), "preset: preview-h264, prores-proxy or prores-standard")
	fs.StringP("task", "t", "", "task code used in output names (default TASK)")
	fs.String("ffmpeg", "ffmpeg", "ffmpeg binary")
	fs.String("ffprobe", "ffprobe", "ffprobe binary")
	fs.Duration("probe-timeout", 10*time.Second, "timeout for ffprobe and encoder capability checks")
	fs.Bool("probe-once", true, "probe GPU encoder availability once per batch")
	fs.String("report", "", "write an HTML report of the run to this file")
	fs.BoolP("dry-run", "n", false, "print the encoder commands without running them")
	fs.Bool("check", false, "check that ffmpeg and ffprobe are usable and exit")
	fs.BoolP("verbose", "v", false, "show encoder output")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.String("log-format", "text", "log format: text or json")
	fs.StringArray("audio", nil, "attach audio to a folder, as folder=file (repeatable)")
	fs.StringArray("take", nil, "set the take of a folder, as folder=take (repeatable)")
	return fs
}

var flagKeys = map[string]string{
	"output":        "output",
	"fps":           "fps",
	"hwaccel":       "hwaccel",
	"preset":        "preset",
	"task":          "task",
	"ffmpeg":        "ffmpeg",
	"ffprobe":       "ffprobe",
	"probe-timeout": "probe_timeout",
	"probe-once":    "probe_once",
	"report":        "report",
	"dry-run":       "dry_run",
	"check":         "check",
	"verbose":       "verbose",
	"log-level":     "log.level",
	"log-format":    "log.format",
}

// Load builds the configuration from defaults, an optional config file,
// ALCHEMIST_* environment variables and args, in increasing precedence.
// It returns pflag.ErrHelp when help was requested.
func Load(args []string) (*Config, error) {
	fs := NewFlagSet("alchemist")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return FromFlags(fs)
}

// FromFlags resolves a parsed flag set.
func FromFlags(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Folders = append(cfg.Folders, fs.Args()...)

	audio, _ := fs.GetStringArray("audio")
	var err error
	if cfg.Audio, err = parseAssignments("audio", audio); err != nil {
		return nil, err
	}
	takes, _ := fs.GetStringArray("take")
	if cfg.Takes, err = parseAssignments("take", takes); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// parseAssignments splits folder=value pairs. The folder ends at the first
// '='.
func parseAssignments(flag string, values []string) (map[string]string, error) {
	out := make(map[string]string, len(values))
	for _, raw := range values {
		folder, value, ok := strings.Cut(raw, "=")
		folder, value = strings.TrimSpace(folder), strings.TrimSpace(value)
		if !ok || folder == "" || value == "" {
			return nil, fmt.Errorf("invalid --%s %q: want folder=value", flag, raw)
		}
		out[folder] = value
	}
	return out, nil
}

func (c *Config) validate() error {
	if _, err := domain.ParseHWAccel(c.HWAccel); err != nil {
		return err
	}
	if c.ProbeTimeout < 0 {
		return fmt.Errorf("probe timeout must not be negative")
	}
	return nil
}

// BatchSettings converts the config into the settings shared by every job.
func (c *Config) BatchSettings() (domain.BatchSettings, error) {
	hw, err := domain.ParseHWAccel(c.HWAccel)
	if err != nil {
		return domain.BatchSettings{}, err
	}
	return domain.BatchSettings{
		OutputDir: c.Output,
		FPS:       strings.TrimSpace(c.FPS),
		HWAccel:   hw,
		Preset:    domain.ParsePreset(c.Preset),
		TaskCode:  strings.TrimSpace(c.Task),
	}, nil
}
