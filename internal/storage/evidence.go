package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/shenikar/sos_intake_service/internal/intake"
	"github.com/shenikar/sos_intake_service/internal/models"
	"github.com/shenikar/sos_intake_service/internal/service"
)

// objectStore - часть клиента minio, которой пользуется хранилище
type objectStore interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// EvidenceStore складывает вложения обращений в бакет MinIO/S3
type EvidenceStore struct {
	client objectStore
	bucket string
	urlTTL time.Duration
}

func NewEvidenceStore(client *minio.Client, bucket string, urlTTL time.Duration) service.EvidenceStore {
	return newEvidenceStore(client, bucket, urlTTL)
}

func newEvidenceStore(client objectStore, bucket string, urlTTL time.Duration) *EvidenceStore {
	return &EvidenceStore{
		client: client,
		bucket: bucket,
		urlTTL: urlTTL,
	}
}

// Put загружает вложение и считает sha256 по пути
func (s *EvidenceStore) Put(ctx context.Context, caseID string, a intake.Attachment) (*models.Evidence, error) {
	if a.Open == nil {
		return nil, fmt.Errorf("evidence %q has no content", a.Filename)
	}
	rc, err := a.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open evidence %q: %w", a.Filename, err)
	}
	defer rc.Close()

	key := objectKey(caseID, uuid.New(), a.Filename)
	contentType := a.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	hasher := sha256.New()
	tee := io.TeeReader(rc, hasher)

	info, err := s.client.PutObject(ctx, s.bucket, key, tee, a.Size, minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"case-id": caseID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload evidence: %w", err)
	}

	size := info.Size
	if size <= 0 {
		size = a.Size
	}

	return &models.Evidence{
		Filename:    a.Filename,
		ContentType: contentType,
		ByteSize:    size,
		StorageKey:  key,
		Checksum:    hex.EncodeToString(hasher.Sum(nil)),
	}, nil
}

// PresignedURL выдает временную ссылку на скачивание
func (s *EvidenceStore) PresignedURL(ctx context.Context, storageKey, filename string) (string, error) {
	params := url.Values{}
	params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", safeName(filename)))

	u, err := s.client.PresignedGetObject(ctx, s.bucket, storageKey, s.urlTTL, params)
	if err != nil {
		return "", fmt.Errorf("failed to presign evidence url: %w", err)
	}
	return u.String(), nil
}

// Remove удаляет объект вложения
func (s *EvidenceStore) Remove(ctx context.Context, storageKey string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, storageKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove evidence: %w", err)
	}
	return nil
}

// objectKey строит ключ вида cases/<caseId>/<uuid>-<filename>
func objectKey(caseID string, id uuid.UUID, filename string) string {
	return fmt.Sprintf("cases/%s/%s-%s", caseID, id.String(), safeName(filename))
}

// safeName оставляет от имени файла только базовую часть без управляющих символов
func safeName(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, r == 0x7f, r == '"':
			return -1
		case r == ' ':
			return '_'
		}
		return r
	}, name)
	if name == "" || name == "." || name == "/" || name == ".." {
		return "evidence"
	}
	return name
}
