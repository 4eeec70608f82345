package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		URI  string `yaml:"uri"`
		Name string `yaml:"name"`
	} `yaml:"database"`

	JWT struct {
		Secret  string `yaml:"secret"`
		TTLDays int    `yaml:"ttl_days"`
	} `yaml:"jwt"`

	Email struct {
		Service   string `yaml:"service"` // named relay, e.g. gmail
		SMTPHost  string `yaml:"smtp_host"`
		SMTPPort  int    `yaml:"smtp_port"`
		Username  string `yaml:"username"`
		Password  string `yaml:"password"`
		FromEmail string `yaml:"from_email"`
	} `yaml:"email"`

	Storage struct {
		Type      string `yaml:"type"`       // local, s3
		BasePath  string `yaml:"base_path"`  // local storage root
		BaseURL   string `yaml:"base_url"`   // public URL base
		Bucket    string `yaml:"bucket"`     // S3/R2 bucket
		Region    string `yaml:"region"`     // S3 region
		AccessKey string `yaml:"access_key"` // S3/R2 credentials
		SecretKey string `yaml:"secret_key"`
		Endpoint  string `yaml:"endpoint"` // custom S3 endpoint (R2)
	} `yaml:"storage"`

	Admin struct {
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"admin"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or builds the configuration from environment
// variables when MONGODB_URI is set (deployment and test mode).
func LoadConfig() {
	var cfg Config

	dbURI := os.Getenv("MONGODB_URI")

	if dbURI == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.URI = dbURI
	cfg.Database.Name = os.Getenv("MONGODB_DB")
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")

	cfg.Email.Service = os.Getenv("EMAIL_SERVICE")
	cfg.Email.Username = os.Getenv("EMAIL_USER")
	cfg.Email.Password = os.Getenv("EMAIL_PASS")
	cfg.Email.FromEmail = os.Getenv("EMAIL_USER")

	cfg.Storage.Type = os.Getenv("STORAGE_TYPE")
	cfg.Storage.Bucket = os.Getenv("STORAGE_BUCKET")
	cfg.Storage.Region = os.Getenv("STORAGE_REGION")
	cfg.Storage.AccessKey = os.Getenv("STORAGE_ACCESS_KEY")
	cfg.Storage.SecretKey = os.Getenv("STORAGE_SECRET_KEY")
	cfg.Storage.Endpoint = os.Getenv("STORAGE_ENDPOINT")
	cfg.Storage.BaseURL = os.Getenv("STORAGE_BASE_URL")

	cfg.Admin.Name = os.Getenv("ADMIN_NAME")
	cfg.Admin.Email = os.Getenv("ADMIN_EMAIL")
	cfg.Admin.Password = os.Getenv("ADMIN_PASSWORD")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "portfolio"
	}
	if cfg.JWT.TTLDays == 0 {
		cfg.JWT.TTLDays = 7
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "local"
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Email.SMTPPort == 0 {
		cfg.Email.SMTPPort = 587
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
