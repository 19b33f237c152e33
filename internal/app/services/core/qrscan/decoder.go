package qrscan

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/exceptions"
	"strings"
)

const (
	payloadSeparator      = ":"
	appointmentPayloadTag = "APPT"
	demoPayloadTag        = "DEMO"
)

// DecodeQRPayload parses the scanned text into a ScanRequest. It is pure:
// no I/O, no authorization. Real payloads look like
// APPT:<appointmentId>:<referenceCode>, demo payloads like
// DEMO:<category>[:<cosmeticCode>].
func DecodeQRPayload(rawPayload string) (*models.ScanRequest, error) {
	trimmed := strings.TrimSpace(rawPayload)

	if strings.HasPrefix(trimmed, demoPayloadTag+payloadSeparator) {
		segments := strings.Split(trimmed, payloadSeparator)
		if len(segments) < 2 || segments[1] == "" {
			return nil, exceptions.ErrQRPayloadMalformed(nil)
		}
		scan := &models.ScanRequest{
			RawPayload:   rawPayload,
			Kind:         models.ScanKindDemo,
			DemoCategory: strings.ToLower(segments[1]),
		}
		if len(segments) > 2 {
			scan.ReferenceCode = segments[2]
		}
		return scan, nil
	}

	segments := strings.Split(trimmed, payloadSeparator)
	if len(segments) < 3 || segments[0] != appointmentPayloadTag || segments[1] == "" || segments[2] == "" {
		return nil, exceptions.ErrQRPayloadMalformed(nil)
	}

	return &models.ScanRequest{
		RawPayload:    rawPayload,
		Kind:          models.ScanKindAppointment,
		AppointmentID: segments[1],
		ReferenceCode: segments[2],
	}, nil
}
