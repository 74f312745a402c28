package config

import (
	"encoding/json"
	"os"
	"sync"
)

type BackendType string

type EngineType string

const (
	BackendRemote BackendType = "Local Server"
	BackendOpenAI BackendType = "OpenAI"

	EngineSystem EngineType = "System"
	EngineOpenAI EngineType = "OpenAI"

	DefaultConfigPath    string = "config.json"
	DefaultCaptionServer string = "localhost:8765"

	DefaultMaxLength = 50
	DefaultBeamWidth = 4
	DefaultRate      = 150
)

var BackendsList = [...]string{
	string(BackendRemote),
	string(BackendOpenAI),
}

var EnginesList = [...]string{
	string(EngineSystem),
	string(EngineOpenAI),
}

type CaptionConfig struct {
	Backend   BackendType `json:"backend"`
	Server    string      `json:"server"`
	Model     string      `json:"model"`
	APIKey    string      `json:"api_key"`
	MaxLength int         `json:"max_length"`
	BeamWidth int         `json:"beam_width"`
}

type SpeechConfig struct {
	Engine    EngineType `json:"engine"`
	Voice     string     `json:"voice"`
	Rate      int        `json:"rate"`
	AutoSpeak bool       `json:"auto_speak"`
	APIKey    string     `json:"api_key"`
}

type Config struct {
	mu sync.RWMutex

	Caption      CaptionConfig `json:"caption"`
	Speech       SpeechConfig  `json:"speech"`
	HighContrast bool          `json:"high_contrast"`
}

func (c *Config) GetMaxLength() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Caption.MaxLength
}

func (c *Config) SetMaxLength(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Caption.MaxLength = n
}

func (c *Config) GetBeamWidth() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Caption.BeamWidth
}

func (c *Config) SetBeamWidth(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Caption.BeamWidth = n
}

func (c *Config) GetRate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Speech.Rate
}

func (c *Config) SetRate(rate int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Speech.Rate = rate
}

func (c *Config) GetAutoSpeak() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Speech.AutoSpeak
}

func (c *Config) SetAutoSpeak(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Speech.AutoSpeak = on
}

func (c *Config) GetHighContrast() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.HighContrast
}

func (c *Config) SetHighContrast(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.HighContrast = on
}

func (c *Config) Save(path string) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)

	if err != nil {
		return
	}

	defer f.Close()

	c.mu.RLock()
	defer c.mu.RUnlock()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(c)

	if err != nil {
		return
	}
}

func (c *Config) SaveByDefault() {
	c.Save(DefaultConfigPath)
}

func LoadConfigFile(path string) *Config {
	var cfg *Config = NewDefaultConfig()

	if _, err := os.Stat(path); err == nil {
		f, err := os.Open(path)

		if err != nil {
			return cfg
		}

		defer f.Close()

		dec := json.NewDecoder(f)
		err = dec.Decode(cfg)

		if err != nil {
			return NewDefaultConfig()
		}
	}

	return cfg
}

func NewDefaultConfig() *Config {
	return &Config{
		Caption: CaptionConfig{
			Backend:   BackendRemote,
			Server:    DefaultCaptionServer,
			MaxLength: DefaultMaxLength,
			BeamWidth: DefaultBeamWidth,
		},
		Speech: SpeechConfig{
			Engine:    EngineSystem,
			Rate:      DefaultRate,
			AutoSpeak: true,
		},
	}
}
