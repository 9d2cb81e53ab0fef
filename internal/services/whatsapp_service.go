package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// WhatsAppService delivers one-time login codes over the whatsend
// gateway.
type WhatsAppService struct {
	baseURL     string
	instanceID  string
	accessToken string
}

// NewWhatsAppService creates a new WhatsAppService.
func NewWhatsAppService(baseURL, instanceID, accessToken string) *WhatsAppService {
	return &WhatsAppService{
		baseURL:     baseURL,
		instanceID:  instanceID,
		accessToken: accessToken,
	}
}

type whatsAppMessage struct {
	Number      string `json:"number"`
	Type        string `json:"type"`
	Message     string `json:"message"`
	InstanceID  string `json:"instance_id"`
	AccessToken string `json:"access_token"`
}

// SendMessage sends a text message to a phone number.
func (s *WhatsAppService) SendMessage(number, text string) error {
	if s.instanceID == "" || s.accessToken == "" {
		log.Println("[WhatsApp] gateway credentials not configured")
		return nil
	}

	msg := whatsAppMessage{
		Number:      number,
		Type:        "text",
		Message:     text,
		InstanceID:  s.instanceID,
		AccessToken: s.accessToken,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := http.Post(s.baseURL+"/api/send", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[WhatsApp] failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[WhatsApp] unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}

	return nil
}

// SendOTP delivers a one-time login code.
func (s *WhatsAppService) SendOTP(phone, code string) error {
	return s.SendMessage(phone, fmt.Sprintf("Your Daily Quiz code is: %s", code))
}

// Ping checks reachability of the gateway and returns the HTTP status.
func (s *WhatsAppService) Ping() (int, error) {
	resp, err := http.Get(s.baseURL)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}
