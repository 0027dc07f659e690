// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig is the app-specific configuration for Storemap.
//
// Values are loaded through WAFFLE's config system (files, environment
// variables with the STOREMAP_ prefix, and command-line flags) and
// validated in ValidateConfig before any backends are connected.
type AppConfig struct {
	// MongoDB
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Sessions
	SessionKey    string
	SessionName   string
	SessionDomain string

	// CSRF protection for the HTML surface
	CSRFKey string

	// Uploaded store photos
	UploadsDir string
	UploadsURL string

	// Email/SMTP
	MailSMTPHost string
	MailSMTPPort int
	MailSMTPUser string
	MailSMTPPass string
	MailFrom     string
	MailFromName string

	// Base URL for links in outbound email (password resets)
	BaseURL string

	// Display name used in page titles and email
	SiteName string
}
