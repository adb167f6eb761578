// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"bytes"
	"fmt"
	"html/template"
)

const (
	verificationSubject  = "Confirm your email address"
	passwordResetSubject = "Reset your password"
)

var verificationTemplate = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
  <div style="max-width: 560px; margin: 0 auto; padding: 16px;">
    <h2>Welcome{{if .FirstName}}, {{.FirstName}}{{end}}!</h2>
    <p>Please confirm your email address to activate your account:</p>
    <p><a href="{{.Link}}">Verify my email</a></p>
    {{- if .AccessCode}}
    <p>Access code <strong>{{.AccessCode}}</strong> was applied: {{.AccessCodeSummary}} of access.</p>
    {{- end}}
    <p>Your access runs until {{.TrialExpiry.Format "January 2, 2006 15:04 MST"}}.</p>
    <p>The link expires in 24 hours. If you did not sign up, ignore this email.</p>
  </div>
</body>
</html>`))

var passwordResetTemplate = template.Must(template.New("password_reset").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
  <div style="max-width: 560px; margin: 0 auto; padding: 16px;">
    <h2>Password reset</h2>
    <p>{{if .FirstName}}Hi {{.FirstName}}, w{{else}}W{{end}}e received a request to reset your password.</p>
    <p><a href="{{.Link}}">Choose a new password</a></p>
    <p>The link is valid until {{.ExpiresAt.Format "15:04 MST"}} and can be used once.</p>
    <p>If you did not ask for this, you can ignore this email.</p>
  </div>
</body>
</html>`))

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s email: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
