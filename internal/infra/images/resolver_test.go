package images

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestStaticResolver(t *testing.T) {
	r := StaticResolver{BaseURL: "https://cdn.example.vn/services/"}

	assert.Equal(t, "https://cdn.example.vn/services/a.jpg", r.Resolve("a.jpg"))
	assert.Equal(t, "https://cdn.example.vn/services/b.jpg", r.Resolve("/b.jpg"))
	assert.Equal(t, "https://other.vn/c.jpg", r.Resolve("https://other.vn/c.jpg"))
	assert.Equal(t, "d.jpg", StaticResolver{}.Resolve("d.jpg"))
}

type fakePresigner struct {
	err     error
	gotKey  string
	expires time.Duration
}

func (f *fakePresigner) PresignGetObject(
	_ context.Context,
	params *s3.GetObjectInput,
	optFns ...func(*s3.PresignOptions),
) (*PresignedRequest, error) {

	var o s3.PresignOptions
	for _, fn := range optFns {
		fn(&o)
	}
	f.expires = o.Expires
	f.gotKey = aws.ToString(params.Key)
	if f.err != nil {
		return nil, f.err
	}
	return &PresignedRequest{URL: "https://bucket.s3/" + f.gotKey + "?X-Amz-Signature=abc"}, nil
}

func TestS3ResolverPresignsKeys(t *testing.T) {
	log, _ := test.NewNullLogger()
	p := &fakePresigner{}
	r := NewS3ResolverWithPresigner(S3Config{Bucket: "salon", TTL: time.Minute}, p, StaticResolver{}, log)

	got := r.Resolve("/steps/a.jpg")

	assert.True(t, strings.HasPrefix(got, "https://bucket.s3/steps/a.jpg"))
	assert.Equal(t, "steps/a.jpg", p.gotKey)
	assert.Equal(t, time.Minute, p.expires)
}

func TestS3ResolverFallsBackOnError(t *testing.T) {
	log, hook := test.NewNullLogger()
	p := &fakePresigner{err: errors.New("no credentials")}
	r := NewS3ResolverWithPresigner(S3Config{Bucket: "salon"}, p, StaticResolver{BaseURL: "https://cdn.vn"}, log)

	assert.Equal(t, "https://cdn.vn/a.jpg", r.Resolve("a.jpg"))
	assert.Equal(t, "presign failed, using static url", hook.LastEntry().Message)
}

func TestS3ResolverKeepsAbsoluteURLs(t *testing.T) {
	log, _ := test.NewNullLogger()
	p := &fakePresigner{}
	r := NewS3ResolverWithPresigner(S3Config{Bucket: "salon"}, p, StaticResolver{}, log)

	assert.Equal(t, "https://x.vn/a.jpg", r.Resolve("https://x.vn/a.jpg"))
	assert.Empty(t, p.gotKey)
}

func TestNewS3ResolverBuildsClient(t *testing.T) {
	log, _ := test.NewNullLogger()
	r := NewS3Resolver(S3Config{
		Bucket:    "salon",
		Region:    "ap-southeast-1",
		AccessKey: "AKIDEXAMPLE",
		SecretKey: "secret",
	}, StaticResolver{}, log)

	got := r.Resolve("a.jpg")
	assert.Contains(t, got, "a.jpg")
	assert.Contains(t, got, "X-Amz-Signature")
}
