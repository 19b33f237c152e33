package requests

type QRScan struct {
	QRPayload string `json:"qr_payload" validate:"required,max=512"`
}
