package cmd

import "time"

// Config is read from the environment (and .env) by core/config.
type Config struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"site"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:""`

	// LocalesSource is one of embed, dir, http or s3.
	LocalesSource   string   `env:"LOCALES_SOURCE" envDefault:"embed"`
	LocalesDir      string   `env:"LOCALES_DIR" envDefault:"languages"`
	LocalesPattern  string   `env:"LOCALES_PATTERN" envDefault:"%s.json"`
	LocalesURL      string   `env:"LOCALES_URL"`
	Languages       []string `env:"LANGUAGES" envDefault:"sw,en" envSeparator:","`
	DefaultLanguage string   `env:"DEFAULT_LANGUAGE" envDefault:"sw"`

	// PreferenceBackend is one of memory, file, redis or postgres.
	PreferenceBackend string `env:"PREFERENCE_BACKEND" envDefault:"file"`
	PreferenceFile    string `env:"PREFERENCE_FILE" envDefault:".site/preferences.json"`

	// Submitter is one of simulated, dev or postmark.
	Submitter    string        `env:"SUBMITTER" envDefault:"simulated"`
	SubmitDelay  time.Duration `env:"SUBMIT_DELAY" envDefault:"2s"`
	ContactInbox string        `env:"CONTACT_INBOX" envDefault:"info@example.com"`
	DevMailDir   string        `env:"DEV_MAIL_DIR" envDefault:".site/mail"`

	Timeout time.Duration `env:"COMMAND_TIMEOUT" envDefault:"30s"`
}
