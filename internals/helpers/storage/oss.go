package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"legisq_backend/internals/configs"
	"legisq_backend/internals/constants"
)

// OSSStorage menyimpan dokumen di bucket Aliyun OSS, key = "<prefix>/<name>".
type OSSStorage struct {
	bucket *oss.Bucket
	prefix string
}

// NewOSSStorageFromEnv membaca ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET.
func NewOSSStorageFromEnv(prefix string) (*OSSStorage, error) {
	endpoint := configs.GetEnv("ALI_OSS_ENDPOINT")
	ak := configs.GetEnv("ALI_OSS_ACCESS_KEY")
	sk := configs.GetEnv("ALI_OSS_SECRET_KEY")
	sts := configs.GetEnv("ALI_OSS_SECURITY_TOKEN")
	bucketName := configs.GetEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var opts []oss.ClientOption
	if sts != "" {
		opts = append(opts, oss.SecurityToken(sts))
	}
	client, err := oss.New(endpoint, ak, sk, opts...)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}
	log.Printf("[OSS] using bucket=%s prefix=%s", bucketName, prefix)
	return &OSSStorage{bucket: bkt, prefix: strings.Trim(prefix, "/")}, nil
}

func (s *OSSStorage) key(name string) string {
	return path.Join(s.prefix, name)
}

func (s *OSSStorage) Save(ctx context.Context, name string, data []byte) (string, error) {
	name, err := cleanName(name)
	if err != nil {
		return "", err
	}
	key := s.key(name)
	err = s.bucket.PutObject(key, bytes.NewReader(data),
		oss.WithContext(ctx),
		oss.ContentType(constants.MimePDF),
		oss.ForbidOverWrite(true),
	)
	if err != nil {
		if ossStatus(err) == http.StatusConflict {
			return "", fmt.Errorf("%w: %s", ErrExists, key)
		}
		return "", fmt.Errorf("oss put %s: %w", key, err)
	}
	return key, nil
}

func (s *OSSStorage) Open(ctx context.Context, relPath string) (io.ReadCloser, error) {
	key, err := s.checkKey(relPath)
	if err != nil {
		return nil, err
	}
	rc, err := s.bucket.GetObject(key, oss.WithContext(ctx))
	if err != nil {
		if ossStatus(err) == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrNotExist, key)
		}
		return nil, fmt.Errorf("oss get %s: %w", key, err)
	}
	return rc, nil
}

func (s *OSSStorage) Remove(ctx context.Context, relPath string) error {
	key, err := s.checkKey(relPath)
	if err != nil {
		return err
	}
	// DeleteObject pada key yang tidak ada tetap sukses (204).
	if err := s.bucket.DeleteObject(key, oss.WithContext(ctx)); err != nil {
		return fmt.Errorf("oss delete %s: %w", key, err)
	}
	return nil
}

func (s *OSSStorage) checkKey(relPath string) (string, error) {
	key := path.Clean(strings.TrimSpace(relPath))
	dir, name := path.Split(key)
	if strings.Trim(dir, "/") != s.prefix {
		return "", fmt.Errorf("%w: %q", ErrBadPath, relPath)
	}
	if _, err := cleanName(name); err != nil {
		return "", err
	}
	return key, nil
}

func ossStatus(err error) int {
	var se oss.ServiceError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
