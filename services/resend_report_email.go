package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
)

// ResendClient handles email sending via the Resend API
type ResendClient struct {
	apiKey string
	from   string
}

// NewResendClient creates a new Resend client
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Fatal("RESEND_API_KEY environment variable not set")
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@ais.gov.example" // Default from address
	}

	return &ResendClient{
		apiKey: apiKey,
		from:   from,
	}
}

// ReportEmailData holds data for the report-ready email
type ReportEmailData struct {
	RecipientName  string
	RecipientEmail string
	ReportTitle    string
	ReportType     string
	GeneratedAt    string
	FilterSummary  []string // human-readable "State: Uttar Pradesh" lines
	PDFContent     []byte
	PDFFilename    string
}

// SendReportEmail sends a generated report with an HTML summary and the PDF
// attached via Resend
func (r *ResendClient) SendReportEmail(data ReportEmailData) error {
	htmlBody := r.buildReportHTML(data)

	payload := map[string]any{
		"from":    r.from,
		"to":      data.RecipientEmail,
		"subject": fmt.Sprintf("Your report is ready: %s", data.ReportTitle),
		"html":    htmlBody,
	}

	if len(data.PDFContent) > 0 {
		payload["attachments"] = []map[string]any{
			{
				"filename": data.PDFFilename,
				"content":  base64.StdEncoding.EncodeToString(data.PDFContent),
			},
		}
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("[resend] request failed: %v", err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[resend] API returned %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend API returned %d", resp.StatusCode)
	}

	log.Printf("[resend] report email sent to %s for %q", data.RecipientEmail, data.ReportTitle)
	return nil
}

func (r *ResendClient) buildReportHTML(data ReportEmailData) string {
	var filterRows strings.Builder
	for _, line := range data.FilterSummary {
		filterRows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 4px 0; font-size: 14px; color: #262622;">%s</td>
      </tr>
    `, line))
	}
	if filterRows.Len() == 0 {
		filterRows.WriteString(`
      <tr>
        <td style="padding: 4px 0; font-size: 14px; color: #79776d;">No filters applied (nationwide)</td>
      </tr>
    `)
	}

	var html strings.Builder
	html.WriteString(fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Report Ready - %s</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #fafaf7; line-height: 1.5; padding: 16px;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 640px; margin: auto; background: #ffffff; padding: 24px;">
    <tr>
      <td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 16px;">
        <h1 style="margin: 0; font-size: 24px; font-weight: bold; color: #262622;">Aadhaar Intelligence System</h1>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0;">
        <p style="margin: 0; font-size: 16px; color: #262622;">Hello %s,</p>
        <p style="margin: 8px 0; font-size: 14px; color: #262622;">
          Your report <strong>%s</strong> (%s) generated on %s is attached.
        </p>
      </td>
    </tr>

    <tr>
      <td style="padding: 8px 0;">
        <p style="margin: 0 0 4px 0; font-size: 14px; font-weight: bold; color: #262622;">Applied filters</p>
        <table width="100%%" cellpadding="0" cellspacing="0" border="0">
          %s
        </table>
      </td>
    </tr>

    <tr>
      <td style="border-top: 1px solid #e5e5e0; padding-top: 16px;">
        <p style="margin: 0; font-size: 12px; color: #79776d;">
          This is an automated message from the AIS monitoring dashboard.
        </p>
      </td>
    </tr>
  </table>
</body>
</html>
`, data.ReportTitle, data.RecipientName, data.ReportTitle, data.ReportType, data.GeneratedAt, filterRows.String()))

	return html.String()
}
