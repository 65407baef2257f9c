package mailer

import (
	"fmt"
	"log"

	"inventory-app/config"

	"gopkg.in/gomail.v2"
)

// SendLowStockAlert notifies the configured recipients that a product's
// stock dropped below the threshold. Errors are logged only; a failed alert
// never fails the stock mutation that triggered it.
func SendLowStockAlert(productName, productCode string, quantity int) {
	if config.SMTPHost == "" || len(config.AlertEmails) == 0 {
		return
	}

	subject := "⚠️ Low stock: " + productName
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Low stock warning</h3>
				<p>Product: <strong>%s</strong> (%s)</p>
				<p>Remaining quantity: <strong>%d</strong></p>
				<p>This is an auto-generated email. Please do not reply.</p>
			</body>
		</html>
	`, productName, productCode, quantity)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", config.AlertEmails...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Println("Failed to send low stock alert:", err)
	}
}
