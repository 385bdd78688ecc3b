package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  The types reflect how the values are used
// in the application: strings for identifiers and secrets, ints for
// durations and costs.  SMTP and operator settings are optional; when
// unset, confirmation mail is disabled and delivery attempts are logged
// as failures without affecting bookings.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	DBUser         string // database username
	DBPass         string // database password (optional)
	DBHost         string // database host address
	DBPort         string // database port number
	DBName         string // database name
	JWTSecret      string // secret used to sign JWTs
	AccessTTLMin   int    // access token time-to-live in minutes
	RefreshTTLDays int    // refresh token time-to-live in days
	BcryptCost     int    // bcrypt cost for password hashing
	StaffSetupCode string // shared code required to register a staff account
	ReceiptSecret  string // HMAC secret for receipt QR payloads (defaults to JWTSecret)
	SMTPHost       string // SMTP server host (empty disables mail)
	SMTPPort       string // SMTP server port
	SMTPUser       string // SMTP username (optional)
	SMTPPass       string // SMTP password (optional)
	SMTPFrom       string // From address on outgoing mail
	OperatorEmail  string // operator address receiving booking copies (optional)
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	cfg := Config{
		Env:            must("APP_ENV"),                   // environment (dev/test/prod)
		Port:           must("APP_PORT"),                  // port to bind the HTTP server
		DBUser:         must("DB_USER"),                   // database user
		DBPass:         os.Getenv("DB_PASS"),              // database password (empty allowed)
		DBHost:         must("DB_HOST"),                   // database host
		DBPort:         must("DB_PORT"),                   // database port
		DBName:         must("DB_NAME"),                   // database name
		JWTSecret:      must("JWT_SECRET"),                // secret used for signing JWTs
		AccessTTLMin:   mustInt("ACCESS_TOKEN_TTL_MIN"),   // TTL for access tokens in minutes
		RefreshTTLDays: mustInt("REFRESH_TOKEN_TTL_DAYS"), // TTL for refresh tokens in days
		BcryptCost:     mustInt("BCRYPT_COST"),            // bcrypt cost factor
		StaffSetupCode: must("STAFF_SETUP_CODE"),          // gate for staff registration
		ReceiptSecret:  os.Getenv("RECEIPT_SECRET"),       // QR signing secret (optional)
		SMTPHost:       os.Getenv("SMTP_HOST"),            // SMTP host (optional)
		SMTPPort:       getenv("SMTP_PORT", "587"),        // SMTP port with submission default
		SMTPUser:       os.Getenv("SMTP_USER"),            // SMTP user (optional)
		SMTPPass:       os.Getenv("SMTP_PASS"),            // SMTP password (optional)
		SMTPFrom:       os.Getenv("SMTP_FROM"),            // From address (optional)
		OperatorEmail:  os.Getenv("OPERATOR_EMAIL"),       // operator copy address (optional)
	}
	if cfg.ReceiptSecret == "" {
		cfg.ReceiptSecret = cfg.JWTSecret
	}
	return cfg
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
