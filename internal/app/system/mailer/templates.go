// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// ResetEmailData holds data for the password-reset email.
type ResetEmailData struct {
	SiteName  string
	ResetURL  string
	ExpiresIn string // e.g. "1 hour"
}

// BuildPasswordResetEmail creates the password-reset email with both HTML
// and text bodies. The caller sets To.
func BuildPasswordResetEmail(data ResetEmailData) Email {
	return Email{
		Subject:  fmt.Sprintf("Reset your %s password", data.SiteName),
		TextBody: buildResetText(data),
		HTMLBody: buildResetHTML(data),
	}
}

func buildResetText(data ResetEmailData) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Someone asked to reset the password for your %s account.\n\n", data.SiteName))
	buf.WriteString("Use this link to choose a new password:\n")
	buf.WriteString(data.ResetURL + "\n\n")
	buf.WriteString(fmt.Sprintf("The link expires in %s.\n\n", data.ExpiresIn))
	buf.WriteString("If you did not ask for a reset, you can safely ignore this email.\n")
	return buf.String()
}

func buildResetHTML(data ResetEmailData) string {
	tmpl := template.Must(template.New("reset").Parse(resetHTMLTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}

const resetHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Password Reset</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; background-color: #f3f4f6;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f3f4f6;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px;">
          <tr>
            <td style="padding: 32px 32px 24px; text-align: center; border-bottom: 1px solid #e5e7eb;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #b45309;">{{.SiteName}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 32px;">
              <p style="margin: 0 0 24px; font-size: 16px; color: #374151; line-height: 1.5;">
                Someone asked to reset the password for your account. Click the button
                below to choose a new one.
              </p>
              <div style="text-align: center; margin-bottom: 24px;">
                <a href="{{.ResetURL}}" style="display: inline-block; padding: 12px 28px; background-color: #b45309; color: #ffffff; text-decoration: none; border-radius: 6px; font-size: 16px; font-weight: 600;">Reset password</a>
              </div>
              <p style="margin: 0 0 8px; font-size: 14px; color: #6b7280;">
                The link expires in {{.ExpiresIn}}.
              </p>
              <p style="margin: 0; font-size: 14px; color: #6b7280;">
                If you did not ask for a reset, you can safely ignore this email.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`
