package config

import (
	"os"
	"strconv"
	"strings"
)

type EnvConfig struct {
	Postgres struct {
		Host     string
		Database string
		Username string
		Password string
		Port     string
	}
	JWT struct {
		SecretKey string
		Algorithm string
		Expire    int
	}
	CORS struct {
		AllowDomains string
		GlobalDomain string
	}
	Redis struct {
		Password string
		Database int
		Host     string
		Port     string
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Minio struct {
		Endpoint       string
		AccessKey      string
		SecretKey      string
		DocumentBucket string
	}
	Jobs struct {
		TimeoutSeconds  int // RUNNING jobs older than this are failed by the watchdog
		WatchdogSeconds int // sweep interval
	}
	AICache struct {
		TTLSeconds int
	}
	Notifications struct {
		ReminderSweepSeconds int // due-reminder dispatch interval
	}
	Signature struct {
		TokenSecret string
	}
	Grafana struct {
		OTLPEndpoint string
		ServiceName  string
	}
	Environment struct {
		Mode  string
		Group string
	}
	DomainName string
}

func LoadEnvConfig() *EnvConfig {
	var config EnvConfig

	// Postgres
	config.Postgres.Host = os.Getenv("PGPOOL_HOST")
	config.Postgres.Database = os.Getenv("PGPOOL_DB")
	config.Postgres.Username = os.Getenv("PGPOOL_USER")
	config.Postgres.Password = os.Getenv("PGPOOL_PASSWORD")
	config.Postgres.Port = os.Getenv("PGPOOL_PORT")

	// JWT
	config.JWT.SecretKey = os.Getenv("JWT_SECRET_KEY")
	config.JWT.Algorithm = os.Getenv("JWT_ALGORITHM")
	if config.JWT.Algorithm == "" {
		config.JWT.Algorithm = "HS256"
	}
	if val := os.Getenv("JWT_EXPIRE"); val != "" {
		config.JWT.Expire, _ = strconv.Atoi(val)
	} else {
		config.JWT.Expire = 3600 * 24 * 7
	}

	config.CORS.AllowDomains = os.Getenv("ALLOWED_DOMAINS")
	config.CORS.GlobalDomain = os.Getenv("GLOBAL_DOMAIN")

	config.Redis.Password = os.Getenv("REDIS_PASSWORD")
	config.Redis.Database, _ = strconv.Atoi(os.Getenv("REDIS_DB"))
	config.Redis.Host = os.Getenv("REDIS_HOST")
	config.Redis.Port = os.Getenv("REDIS_PORT")

	// RabbitMQ
	config.RabbitMQ.Host = os.Getenv("RABBITMQ_HOST")
	if config.RabbitMQ.Host == "" {
		config.RabbitMQ.Host = "localhost"
	}
	config.RabbitMQ.Port = os.Getenv("RABBITMQ_PORT")
	if config.RabbitMQ.Port == "" {
		config.RabbitMQ.Port = "5672"
	}
	config.RabbitMQ.Username = os.Getenv("RABBITMQ_USER")
	if config.RabbitMQ.Username == "" {
		config.RabbitMQ.Username = "guest"
	}
	config.RabbitMQ.Password = os.Getenv("RABBITMQ_PASSWORD")
	if config.RabbitMQ.Password == "" {
		config.RabbitMQ.Password = "guest"
	}

	config.Minio.Endpoint = os.Getenv("MINIO_ENDPOINT")
	config.Minio.AccessKey = os.Getenv("MINIO_ACCESS_KEY")
	config.Minio.SecretKey = os.Getenv("MINIO_SECRET_KEY")
	config.Minio.DocumentBucket = os.Getenv("MINIO_DOCUMENT_BUCKET")
	if config.Minio.DocumentBucket == "" {
		config.Minio.DocumentBucket = "contract-documents"
	}

	// Job policy
	if val := os.Getenv("JOB_TIMEOUT_SECONDS"); val != "" {
		config.Jobs.TimeoutSeconds, _ = strconv.Atoi(val)
	}
	if config.Jobs.TimeoutSeconds <= 0 {
		config.Jobs.TimeoutSeconds = 600
	}
	if val := os.Getenv("JOB_WATCHDOG_SECONDS"); val != "" {
		config.Jobs.WatchdogSeconds, _ = strconv.Atoi(val)
	}
	if config.Jobs.WatchdogSeconds <= 0 {
		config.Jobs.WatchdogSeconds = 60
	}

	if val := os.Getenv("AI_CACHE_TTL_SECONDS"); val != "" {
		config.AICache.TTLSeconds, _ = strconv.Atoi(val)
	}
	if config.AICache.TTLSeconds <= 0 {
		config.AICache.TTLSeconds = 3600
	}

	if val := os.Getenv("REMINDER_SWEEP_SECONDS"); val != "" {
		config.Notifications.ReminderSweepSeconds, _ = strconv.Atoi(val)
	}
	if config.Notifications.ReminderSweepSeconds <= 0 {
		config.Notifications.ReminderSweepSeconds = 60
	}

	config.Signature.TokenSecret = os.Getenv("SIGNATURE_TOKEN_SECRET")
	if config.Signature.TokenSecret == "" {
		config.Signature.TokenSecret = config.JWT.SecretKey
	}

	// Grafana/OpenTelemetry
	grafanaEndpoint := os.Getenv("GRAFANA_OTLP_ENDPOINT")
	if strings.HasPrefix(grafanaEndpoint, "https://") {
		config.Grafana.OTLPEndpoint = strings.TrimPrefix(grafanaEndpoint, "https://")
	} else if strings.HasPrefix(grafanaEndpoint, "http://") {
		config.Grafana.OTLPEndpoint = strings.TrimPrefix(grafanaEndpoint, "http://")
	} else {
		config.Grafana.OTLPEndpoint = grafanaEndpoint
	}
	config.Grafana.ServiceName = os.Getenv("SERVICE_NAME")
	if config.Grafana.ServiceName == "" {
		config.Grafana.ServiceName = "contractify-backend"
	}

	config.Environment.Mode = os.Getenv("DEPLOY_ENV")
	if config.Environment.Mode == "" {
		config.Environment.Mode = "development"
	}
	config.Environment.Group = os.Getenv("GROUP_NAME")
	if config.Environment.Group == "" {
		config.Environment.Group = "local"
	}

	config.DomainName = os.Getenv("DOMAIN_NAME")
	if config.DomainName == "" {
		config.DomainName = "localhost:8080"
	}

	return &config
}
