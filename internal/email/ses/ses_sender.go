package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"gstbill/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client:      sesv2.NewFromConfig(cfg),
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendInvoiceEmail(ctx context.Context, email port.InvoiceEmail) error {
	subject := fmt.Sprintf("Invoice %s from %s", email.InvoiceNumber, email.BusinessName)
	htmlBody := buildInvoiceHTML(email)
	textBody := fmt.Sprintf(
		"Dear %s,\n\nPlease find the details of invoice %s dated %s.\n\nAmount payable: Rs. %.2f\n(%s)\n\nRegards,\n%s",
		email.ToName, email.InvoiceNumber, email.InvoiceDate,
		email.GrandTotal, email.AmountInWords, email.BusinessName)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{email.ToEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildInvoiceHTML(email port.InvoiceEmail) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Invoice %s</h2>
  <p>Dear %s,</p>
  <p>Please find the details of your invoice dated %s.</p>
  <table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
    <tr>
      <td style="padding: 8px; border: 1px solid #ddd;">Amount payable</td>
      <td style="padding: 8px; border: 1px solid #ddd; text-align: right;"><strong>&#8377; %.2f</strong></td>
    </tr>
  </table>
  <p style="color: #666; font-style: italic;">%s</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">%s</p>
</body>
</html>`, email.InvoiceNumber, email.ToName, email.InvoiceDate,
		email.GrandTotal, email.AmountInWords, email.BusinessName)
}
