package contracts

import "context"

type StorageService interface {
	PresignedAttachmentURL(ctx context.Context, objectName string) (string, error)
}
