package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	API struct {
		BaseURL        string            `json:"base_url"`
		Timeout        Duration          `json:"timeout"`
		DefaultHeaders map[string]string `json:"default_headers,omitempty"`
	} `json:"api,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`

	Fetch struct {
		Resource string `json:"resource"`
		Page     int    `json:"page"`
		Limit    int    `json:"limit"`
		ID       int    `json:"id"`
	} `json:"fetch,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		API: API{
			BaseURL:        jsonCfg.API.BaseURL,
			Timeout:        time.Duration(jsonCfg.API.Timeout),
			DefaultHeaders: jsonCfg.API.DefaultHeaders,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
		Fetch: Fetch{
			Resource: jsonCfg.Fetch.Resource,
			Page:     jsonCfg.Fetch.Page,
			Limit:    jsonCfg.Fetch.Limit,
			ID:       jsonCfg.Fetch.ID,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
