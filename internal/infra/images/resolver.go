package images

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
)

func isAbsolute(segment string) bool {
	s := strings.ToLower(segment)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "//")
}

// StaticResolver prefixes relative image segments with a base URL.
type StaticResolver struct {
	BaseURL string
}

func (r StaticResolver) Resolve(segment string) string {
	if r.BaseURL == "" || isAbsolute(segment) {
		return segment
	}
	return strings.TrimRight(r.BaseURL, "/") + "/" + strings.TrimLeft(segment, "/")
}

// Presigner is the subset of *s3.PresignClient the resolver uses.
type Presigner interface {
	PresignGetObject(
		ctx context.Context,
		params *s3.GetObjectInput,
		optFns ...func(*s3.PresignOptions),
	) (*PresignedRequest, error)
}

// PresignedRequest mirrors the URL part of v4.PresignedHTTPRequest.
type PresignedRequest struct {
	URL string
}

type s3Presigner struct {
	client *s3.PresignClient
}

func (p s3Presigner) PresignGetObject(
	ctx context.Context,
	params *s3.GetObjectInput,
	optFns ...func(*s3.PresignOptions),
) (*PresignedRequest, error) {

	req, err := p.client.PresignGetObject(ctx, params, optFns...)
	if err != nil {
		return nil, err
	}
	return &PresignedRequest{URL: req.URL}, nil
}

type S3Config struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
	TTL       time.Duration
}

// S3Resolver treats relative segments as object keys and returns
// presigned GET URLs. On presign failure it falls back to Fallback.
type S3Resolver struct {
	bucket    string
	ttl       time.Duration
	presigner Presigner
	fallback  StaticResolver
	log       logrus.FieldLogger
}

func NewS3Resolver(cfg S3Config, fallback StaticResolver, log logrus.FieldLogger) *S3Resolver {
	opts := s3.Options{
		Region:       cfg.Region,
		UsePathStyle: cfg.Endpoint != "",
	}
	if cfg.AccessKey != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	client := s3.New(opts)
	return NewS3ResolverWithPresigner(cfg, s3Presigner{client: s3.NewPresignClient(client)}, fallback, log)
}

func NewS3ResolverWithPresigner(
	cfg S3Config,
	presigner Presigner,
	fallback StaticResolver,
	log logrus.FieldLogger,
) *S3Resolver {

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &S3Resolver{
		bucket:    cfg.Bucket,
		ttl:       ttl,
		presigner: presigner,
		fallback:  fallback,
		log:       log,
	}
}

func (r *S3Resolver) Resolve(segment string) string {
	if isAbsolute(segment) {
		return segment
	}

	req, err := r.presigner.PresignGetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(strings.TrimLeft(segment, "/")),
	}, func(o *s3.PresignOptions) {
		o.Expires = r.ttl
	})
	if err != nil {
		r.log.WithError(err).WithField("key", segment).Warn("presign failed, using static url")
		return r.fallback.Resolve(segment)
	}
	return req.URL
}
