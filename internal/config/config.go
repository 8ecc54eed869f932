package config

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	applog "datareports/internal/log"
)

type Config struct {
	Log   LogConfig   `yaml:"log"`
	Paths PathsConfig `yaml:"paths"`
	CSV   CSVConfig   `yaml:"csv"`
	Excel ExcelConfig `yaml:"excel"`
	JSON  JSONConfig  `yaml:"json"`
	Text  TextConfig  `yaml:"text"`
	Fetch FetchConfig `yaml:"fetch"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// PathsConfig names the folder inputs are fetched into and the folder
// reports are written to.
type PathsConfig struct {
	DataDir      string `yaml:"data_dir"`
	ProcessedDir string `yaml:"processed_dir"`
}

type CSVConfig struct {
	Input         string   `yaml:"input"`
	Output        string   `yaml:"output"`
	Title         string   `yaml:"title"`
	CategoryField string   `yaml:"category_field"`
	NumericFields []string `yaml:"numeric_fields"`
	Labels        []string `yaml:"labels"`
	Decimals      []int    `yaml:"decimals"`
	NumberStyle   string   `yaml:"number_style"`
}

type ExcelConfig struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	Title       string `yaml:"title"`
	MinRow      int    `yaml:"min_row"`
	MaxRow      int    `yaml:"max_row"`
	NameColumn  string `yaml:"name_column"`
	ValueColumn string `yaml:"value_column"`
	TopN        int    `yaml:"top_n"`
}

type JSONConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Team   string `yaml:"team"`
}

type TextConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Word   string `yaml:"word"`
}

// FetchConfig describes the workbook download. RawName is what the HTTP
// body is saved as; the cleaned copy is written to ExcelConfig.Input.
type FetchConfig struct {
	URL     string        `yaml:"url"`
	RawName string        `yaml:"raw_name"`
	Timeout time.Duration `yaml:"timeout"`
}

const (
	NumberStylePlain   = "plain"
	NumberStyleGrouped = "grouped"
)

func Load() *Config {
	cfg := &Config{
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Paths: PathsConfig{
			DataDir:      getEnv("DATA_DIR", "data"),
			ProcessedDir: getEnv("PROCESSED_DIR", "data_processed"),
		},
		CSV: CSVConfig{
			Input:         getEnv("CSV_INPUT", "covid_19_data.csv"),
			Output:        getEnv("CSV_OUTPUT", "covid_cases_by_continent.txt"),
			Title:         getEnv("CSV_TITLE", "COVID-19 Total Cases by Continent"),
			CategoryField: getEnv("CSV_CATEGORY_FIELD", "continent"),
			NumericFields: getEnvList("CSV_NUMERIC_FIELDS", []string{"total_cases", "total_cases_per_million"}),
			Labels:        getEnvList("CSV_LABELS", []string{"Total Cases", "Total Cases per Million"}),
			Decimals:      getEnvInts("CSV_DECIMALS", []int{0, 2}),
			NumberStyle:   getEnv("CSV_NUMBER_STYLE", NumberStylePlain),
		},
		Excel: ExcelConfig{
			Input:       getEnv("EXCEL_INPUT", "population_data.xlsx"),
			Output:      getEnv("EXCEL_OUTPUT", "top_25_countries_by_population.txt"),
			Title:       getEnv("EXCEL_TITLE", "Top 25 Countries by Population (2022)"),
			MinRow:      getEnvInt("EXCEL_MIN_ROW", 5),
			MaxRow:      getEnvInt("EXCEL_MAX_ROW", 30),
			NameColumn:  getEnv("EXCEL_NAME_COLUMN", "C"),
			ValueColumn: getEnv("EXCEL_VALUE_COLUMN", "E"),
			TopN:        getEnvInt("EXCEL_TOP_N", 25),
		},
		JSON: JSONConfig{
			Input:  getEnv("JSON_INPUT", "premier_league_table.json"),
			Output: getEnv("JSON_OUTPUT", "manchester_united_table.txt"),
			Team:   getEnv("JSON_TEAM", "Manchester United"),
		},
		Text: TextConfig{
			Input:  getEnv("TEXT_INPUT", "moby_dick.txt"),
			Output: getEnv("TEXT_OUTPUT", "ahab_name_count.txt"),
			Word:   getEnv("TEXT_WORD", "Ahab"),
		},
		Fetch: FetchConfig{
			URL:     getEnv("FETCH_URL", "https://databank.worldbank.org/data/download/POP.xlsx"),
			RawName: getEnv("FETCH_RAW_NAME", "world_population.xlsx"),
			Timeout: getEnvDuration("FETCH_TIMEOUT", 60*time.Second),
		},
	}

	return cfg
}

var columnPattern = regexp.MustCompile(`^[A-Za-z]{1,3}$`)

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if _, err := applog.ParseLevel(c.Log.Level); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.Log.Level))
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'text' or 'json'", c.Log.Format))
	}

	if c.Paths.DataDir == "" {
		errors = append(errors, "data directory cannot be empty")
	}
	if c.Paths.ProcessedDir == "" {
		errors = append(errors, "processed directory cannot be empty")
	}

	// CSV aggregation
	if c.CSV.Input == "" || c.CSV.Output == "" {
		errors = append(errors, "CSV input and output file names are required")
	}
	if strings.TrimSpace(c.CSV.CategoryField) == "" {
		errors = append(errors, "CSV category field cannot be empty")
	}
	if len(c.CSV.NumericFields) == 0 {
		errors = append(errors, "at least one CSV numeric field is required")
	}
	for _, f := range c.CSV.NumericFields {
		if strings.TrimSpace(f) == "" {
			errors = append(errors, "CSV numeric field names cannot be empty")
			break
		}
	}
	if len(c.CSV.Labels) != len(c.CSV.NumericFields) {
		errors = append(errors, fmt.Sprintf("CSV labels (%d) must match numeric fields (%d)", len(c.CSV.Labels), len(c.CSV.NumericFields)))
	}
	if len(c.CSV.Decimals) != len(c.CSV.NumericFields) {
		errors = append(errors, fmt.Sprintf("CSV decimals (%d) must match numeric fields (%d)", len(c.CSV.Decimals), len(c.CSV.NumericFields)))
	}
	for _, d := range c.CSV.Decimals {
		if d < 0 || d > 10 {
			errors = append(errors, fmt.Sprintf("invalid CSV decimals %d: must be between 0 and 10", d))
			break
		}
	}
	if c.CSV.NumberStyle != NumberStylePlain && c.CSV.NumberStyle != NumberStyleGrouped {
		errors = append(errors, fmt.Sprintf("invalid number style '%s': must be '%s' or '%s'", c.CSV.NumberStyle, NumberStylePlain, NumberStyleGrouped))
	}

	// Excel ranking
	if c.Excel.Input == "" || c.Excel.Output == "" {
		errors = append(errors, "Excel input and output file names are required")
	}
	if c.Excel.MinRow < 1 {
		errors = append(errors, fmt.Sprintf("invalid Excel min row %d: must be at least 1", c.Excel.MinRow))
	} else if c.Excel.MaxRow < c.Excel.MinRow {
		errors = append(errors, fmt.Sprintf("invalid Excel max row %d: must be at least min row %d", c.Excel.MaxRow, c.Excel.MinRow))
	}
	if !columnPattern.MatchString(c.Excel.NameColumn) {
		errors = append(errors, fmt.Sprintf("invalid Excel name column '%s'", c.Excel.NameColumn))
	}
	if !columnPattern.MatchString(c.Excel.ValueColumn) {
		errors = append(errors, fmt.Sprintf("invalid Excel value column '%s'", c.Excel.ValueColumn))
	}
	if c.Excel.TopN < 1 {
		errors = append(errors, fmt.Sprintf("invalid Excel top N %d: must be at least 1", c.Excel.TopN))
	}

	// JSON lookup
	if c.JSON.Input == "" || c.JSON.Output == "" {
		errors = append(errors, "JSON input and output file names are required")
	}
	if strings.TrimSpace(c.JSON.Team) == "" {
		errors = append(errors, "JSON team name cannot be empty")
	}

	// Text count
	if c.Text.Input == "" || c.Text.Output == "" {
		errors = append(errors, "text input and output file names are required")
	}
	if c.Text.Word == "" {
		errors = append(errors, "word to count cannot be empty")
	}

	// Fetch; an empty URL is reported when fetching, not here
	if c.Fetch.URL != "" {
		if parsedURL, err := url.Parse(c.Fetch.URL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid fetch URL '%s': %v", c.Fetch.URL, err))
		} else if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
			errors = append(errors, fmt.Sprintf("invalid fetch URL scheme '%s': must be 'http' or 'https'", parsedURL.Scheme))
		}
	}
	if c.Fetch.RawName == "" {
		errors = append(errors, "fetch raw file name cannot be empty")
	}
	if c.Fetch.Timeout <= 0 {
		errors = append(errors, fmt.Sprintf("invalid fetch timeout %v: must be positive", c.Fetch.Timeout))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvList reads a comma-separated list.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		out = append(out, strings.TrimSpace(part))
	}
	return out
}

// getEnvInts reads a comma-separated list of integers. Any unparsable entry
// discards the whole value.
func getEnvInts(key string, defaultValue []int) []int {
	parts := getEnvList(key, nil)
	if parts == nil {
		return defaultValue
	}
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		i, err := strconv.Atoi(p)
		if err != nil {
			return defaultValue
		}
		out = append(out, i)
	}
	return out
}
