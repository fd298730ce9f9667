package decoder

import "time"

// Config is read from the environment with config.Load.
type Config struct {
	Env           string        `env:"QRDECODE_ENV" envDefault:"development"`
	Service       string        `env:"QRDECODE_SERVICE" envDefault:"qrdecode"`
	LogLevel      string        `env:"QRDECODE_LOG_LEVEL"`
	LogFormat     string        `env:"QRDECODE_LOG_FORMAT"`
	TryHarder     bool          `env:"QRDECODE_TRY_HARDER" envDefault:"true"`
	UploadTimeout time.Duration `env:"QRDECODE_UPLOAD_TIMEOUT" envDefault:"30s"`
	S3            S3Config      `envPrefix:"QRDECODE_S3_"`
}

// S3Config holds credentials and endpoint settings for s3:// outputs.
// The bucket always comes from the output location.
type S3Config struct {
	Region         string `env:"REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"ACCESS_KEY_ID"`
	SecretKey      string `env:"SECRET_ACCESS_KEY"`
	Endpoint       string `env:"ENDPOINT"`
	BaseURL        string `env:"BASE_URL"`
	ForcePathStyle bool   `env:"FORCE_PATH_STYLE"`
}
