// file: internals/helpers/storage/oss_client.go
package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"path"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"aptads_backend/internals/configs"
)

type OSSService struct {
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	PublicBase string // optional CDN base (ALI_OSS_PUBLIC_BASE)
	Prefix     string // e.g. "uploads"
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := strings.TrimSpace(configs.GetEnv("ALI_OSS_ENDPOINT"))
	ak := strings.TrimSpace(configs.GetEnv("ALI_OSS_ACCESS_KEY"))
	sk := strings.TrimSpace(configs.GetEnv("ALI_OSS_SECRET_KEY"))
	bucketName := strings.TrimSpace(configs.GetEnv("ALI_OSS_BUCKET"))
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var opts []oss.ClientOption
	if sts := strings.TrimSpace(configs.GetEnv("ALI_OSS_SECURITY_TOKEN")); sts != "" {
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
	log.Printf("[OSS] bucket %s ready (endpoint=%s)", bucketName, endpoint)

	return &OSSService{
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		PublicBase: strings.TrimRight(configs.GetEnv("ALI_OSS_PUBLIC_BASE"), "/"),
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

func (s *OSSService) Put(ctx context.Context, key string, r io.Reader, contentType string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return s.Bucket.PutObject(key, r,
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	)
}

func (s *OSSService) Delete(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}

func (s *OSSService) PublicURL(key string) string {
	return PublicURL(s.PublicBase, s.BucketName, s.Endpoint, key)
}

// PublicURL prefers the CDN base, else https://<bucket>.<endpoint>/<key>.
func PublicURL(base, bucket, endpoint, key string) string {
	if key == "" {
		return ""
	}
	if base != "" {
		return base + "/" + key
	}
	end := strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", bucket, end, key)
}

// ObjectKey builds "<prefix>/<dir>/<base>_<ts>_<rand><ext>".
func ObjectKey(prefix, dir, base, ext string, now time.Time) string {
	base = slugify(base)
	name := fmt.Sprintf("%s_%s_%s%s", base, now.Format("20060102_150405"), randHex(3), ext)
	return path.Join(strings.Trim(prefix, "/"), strings.Trim(dir, "/"), name)
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "-", "_", "-").Replace(s)
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, s)
	if s == "" {
		return "file"
	}
	return s
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
