package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
)

// WatiMessage represents the structure of a message to send via Wati API
type WatiMessage struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SendPaymentLinkWhatsApp delivers a payment link to the customer's phone
// via WhatsApp using the Wati API. Delivery is best effort: failures are
// logged, not surfaced, because the link is also stored on the lead.
func SendPaymentLinkWhatsApp(phoneNumber, link string, amount float64) {
	message := WatiMessage{
		Phone:   phoneNumber,
		Message: fmt.Sprintf("Please complete your payment of ₹%.2f here: %s", amount, link),
	}

	messageJSON, err := json.Marshal(message)
	if err != nil {
		log.Printf("Failed to marshal payment link message: %v", err)
		return
	}

	req, err := http.NewRequest("POST", os.Getenv("WATI_URL")+"/api/v1/sendSessionMessage", bytes.NewBuffer(messageJSON))
	if err != nil {
		log.Printf("Failed to create Wati API request: %v", err)
		return
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+os.Getenv("WATI_API_KEY"))

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("Failed to send payment link via WhatsApp: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Failed to send payment link via WhatsApp: received status code %d", resp.StatusCode)
	}
}
