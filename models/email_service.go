package models

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"

	"furniture-shop/config"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService() (*EmailService, error) {
	cfg := config.AppConfig

	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass)

	return &EmailService{dialer: dialer, from: cfg.SMTPFrom}, nil
}

func (s *EmailService) SendInvoiceEmail(toEmail string, orderID int64, items []CartItem, totalAmount float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation #%d - Furniro", orderID))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; color: #b88e2f; }
        .order-box { background-color: #fcf8f3; padding: 20px; margin: 20px 0; border-radius: 8px; }
        table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
        th, td { text-align: left; padding: 8px; border-bottom: 1px solid #eee; }
        th { color: #b88e2f; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">Furniro</div>
        </div>
        <h2 style="color: #333;">Order Confirmation</h2>
        <p>Thank you for your order!</p>

        <div class="order-box">
            <p><strong>Order Number:</strong> #%d</p>
            <p><strong>Total Amount:</strong> %s</p>
        </div>

        <table>
            <tr><th>Item</th><th>Qty</th><th>Price</th></tr>
            %s
        </table>

        <p>Your order has been received and is being processed. Our courier will contact you before delivery.</p>

        <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee;">
            <p style="color: #666; font-size: 14px;">Thank you for choosing us!<br>The Furniro Team</p>
        </div>

        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
	`, orderID, formatAmount(totalAmount), itemRows(items))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func itemRows(items []CartItem) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(fmt.Sprintf(
			"<tr><td>%s</td><td>%d</td><td>%s</td></tr>",
			item.Title, item.Quantity, formatAmount(item.UnitPrice*float64(item.Quantity)),
		))
	}
	return b.String()
}

func formatAmount(amount float64) string {
	str := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(str, ".", 2)
	intPart := parts[0]

	n := len(intPart)
	if n <= 3 {
		return "Tk. " + str
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(digit)
	}
	return "Tk. " + b.String() + "." + parts[1]
}
