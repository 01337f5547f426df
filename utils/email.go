package utils

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"net/smtp"
	"os"
	"strconv"

	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

// OrderConfirmationData feeds the confirmation email template.
type OrderConfirmationData struct {
	OrderNumber    string
	CustomerName   string
	PickupLocation string
	Items          []OrderConfirmationLine
	Total          float64
	PaymentMethod  string
}

type OrderConfirmationLine struct {
	Title    string
	Quantity int
	Subtotal float64
}

// SendOrderConfirmationEmail sends the confirmation with the pickup QR
// attached. Runs async so the checkout response is not delayed.
func SendOrderConfirmationEmail(to string, data OrderConfirmationData, qrPng []byte) {
	go func() {
		tmplPath := "templates/order_confirmation.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("failed to load email template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("failed to render email template: %v", err)
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", os.Getenv("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Order confirmation #"+data.OrderNumber)
		m.SetBody("text/html", body.String())

		if len(qrPng) > 0 {
			filename := "pickup_" + data.OrderNumber + ".png"
			m.Attach(filename, gomail.Rename(filename), gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := io.Copy(w, bytes.NewReader(qrPng))
				return err
			}))
		}

		if err := dialAndSend(m); err != nil {
			log.Printf("failed to send confirmation email: %v", err)
		}
	}()
}

// SendAdminSummaryEmail mails the daily sales digest to the shop operator.
// Plain send without attachments, so the lighter client suffices here; the
// confirmation mail keeps gomail for its QR attachment.
func SendAdminSummaryEmail(to, subject, htmlBody string) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	e := email.NewEmail()
	e.From = os.Getenv("SMTP_FROM")
	e.To = []string{to}
	e.Subject = subject
	e.HTML = []byte(htmlBody)
	return e.Send(host+":"+port, smtp.PlainAuth("", os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"), host))
}

func dialAndSend(m *gomail.Message) error {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	d := gomail.NewDialer(os.Getenv("SMTP_HOST"), port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
	return d.DialAndSend(m)
}
