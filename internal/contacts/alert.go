package contacts

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultMessage is used when the caller sends an SOS without a message.
const DefaultMessage = "Emergency assistance needed"

// Location is the caller's position when the alert was raised.
type Location struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// MapsLink points at the location on Google Maps.
func (l Location) MapsLink() string {
	return "https://maps.google.com/maps?q=" +
		strconv.FormatFloat(l.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(l.Lng, 'f', -1, 64)
}

// Alert is a composed SOS message.
type Alert struct {
	Message   string    `json:"message"`
	Location  *Location `json:"location,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Body      string    `json:"body"`
}

// ComposeAlert renders the alert text. A blank message becomes DefaultMessage;
// a nil location is reported as unavailable.
func ComposeAlert(message string, loc *Location, now time.Time) Alert {
	message = strings.TrimSpace(message)
	if message == "" {
		message = DefaultMessage
	}
	locationText := "Location not available"
	if loc != nil {
		locationText = "Current Location: " + loc.MapsLink()
	}
	ts := now.UTC()

	var b strings.Builder
	b.WriteString("EMERGENCY ALERT\n\n")
	b.WriteString("This is an automated emergency message from Payana.\n\n")
	fmt.Fprintf(&b, "Message: %s\n\n", message)
	b.WriteString(locationText + "\n\n")
	fmt.Fprintf(&b, "Timestamp: %s\n\n", ts.Format(time.RFC1123))
	b.WriteString("Please respond immediately.\n")

	return Alert{Message: message, Location: loc, Timestamp: ts, Body: b.String()}
}

// Dispatcher delivers an alert to one contact.
type Dispatcher interface {
	Send(ctx context.Context, to Contact, a Alert) error
}

// LogDispatcher records alerts in the log instead of delivering them. It is the
// default until a mail transport is configured.
type LogDispatcher struct {
	logger *zap.Logger
}

func NewLogDispatcher(logger *zap.Logger) *LogDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Send(_ context.Context, to Contact, a Alert) error {
	d.logger.Warn("sos alert",
		zap.String("owner", to.Owner),
		zap.String("contact_id", to.ID),
		zap.String("email", to.Email),
		zap.Time("timestamp", a.Timestamp),
		zap.String("body", a.Body),
	)
	return nil
}

// SendResult reports how many contacts an alert reached.
type SendResult struct {
	Alert  Alert `json:"alert"`
	Sent   int   `json:"sent"`
	Failed int   `json:"failed"`
}

// SendAlert composes an alert and hands it to every contact of owner.
// It returns ErrNoContacts when the owner has none. A failed delivery to one
// contact does not stop the others.
func SendAlert(ctx context.Context, store Store, d Dispatcher, owner, message string, loc *Location, now time.Time) (SendResult, error) {
	if loc != nil {
		if err := validate.Struct(loc); err != nil {
			return SendResult{}, fmt.Errorf("%w: %v", ErrBadLocation, err)
		}
	}
	list, err := store.List(ctx, owner)
	if err != nil {
		return SendResult{}, err
	}
	if len(list) == 0 {
		return SendResult{}, ErrNoContacts
	}

	res := SendResult{Alert: ComposeAlert(message, loc, now)}
	for _, c := range list {
		if err := d.Send(ctx, c, res.Alert); err != nil {
			res.Failed++
			continue
		}
		res.Sent++
	}
	return res, nil
}
