package notes

import (
	"bytes"
	"careplan-service/internal/app/contracts"
	"careplan-service/internal/pkg/constvars"
	"careplan-service/internal/pkg/exceptions"
	"context"

	"github.com/minio/minio-go/v7"
)

type minioNoteStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioNoteStorage(minioClient *minio.Client, bucketName string) contracts.NoteStorage {
	return &minioNoteStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioNoteStorage) StoreReviewNotes(ctx context.Context, fingerprintHex string, content []byte) error {
	objectName := constvars.MinioReviewNotesPrefix + fingerprintHex
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(content),
		int64(len(content)),
		minio.PutObjectOptions{
			ContentType: constvars.MIMETextPlain,
		},
	)
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, m.BucketName)
	}
	return nil
}
