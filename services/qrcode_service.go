// services/qrcode_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"

	"go-ultimate-hub/logger"
	"go-ultimate-hub/models"
)

// QRCodeEncoder matches qrcode.Encode so tests can swap it.
type QRCodeEncoder func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error)

// DefaultQRCodeSize is the PNG edge length in pixels.
const DefaultQRCodeSize = 256

// GenerateQRCode renders content as a size x size PNG.
func GenerateQRCode(content string, size int, encoder QRCodeEncoder) ([]byte, error) {
	if size <= 0 {
		return nil, errors.New("invalid dimensions: size must be positive")
	}
	if encoder == nil {
		encoder = qrcode.Encode
	}

	png, err := encoder(content, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}

// TicketContent is the check-in payload for user at eventID.
func TicketContent(eventID models.EventID, userName string) (string, error) {
	id := eventID
	raw, err := json.Marshal(TicketPayload{EventID: &id, UserName: userName})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// GenerateTicket renders the QR ticket of a participant registered for eventID.
func GenerateTicket(events EventLookup, user models.User, eventID models.EventID, size int, encoder QRCodeEncoder) ([]byte, error) {
	ev, err := events.Event(eventID)
	if err != nil {
		return nil, err
	}
	if !ev.HasParticipant(user.ID) {
		logger.Warn.Printf("[GenerateTicket] %s requested a ticket for event %d without registering", user.ID, eventID)
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, user.ID)
	}

	content, err := TicketContent(eventID, user.Name)
	if err != nil {
		return nil, err
	}
	png, err := GenerateQRCode(content, size, encoder)
	if err != nil {
		logger.Error.Printf("[GenerateTicket] QR encoding failed for event %d: %v", eventID, err)
		return nil, err
	}
	return png, nil
}
