package export

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakePutter) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	raw, _ := io.ReadAll(in.Body)
	f.body = string(raw)
	return &s3.PutObjectOutput{}, f.err
}

func TestS3Uploader_Upload(t *testing.T) {
	fake := &fakePutter{}
	u := &S3Uploader{client: fake, bucket: "clinic-reports"}

	loc, err := u.Upload(context.Background(), "reports/x.json", "application/json", []byte(`{"ok":true}`))
	require.NoError(t, err)

	assert.Equal(t, "s3://clinic-reports/reports/x.json", loc)
	assert.Equal(t, "clinic-reports", aws.ToString(fake.input.Bucket))
	assert.Equal(t, "reports/x.json", aws.ToString(fake.input.Key))
	assert.Equal(t, "application/json", aws.ToString(fake.input.ContentType))
	assert.Equal(t, `{"ok":true}`, fake.body)
}

func TestS3Uploader_Error(t *testing.T) {
	u := &S3Uploader{client: &fakePutter{err: errors.New("denied")}, bucket: "b"}

	_, err := u.Upload(context.Background(), "k", "application/json", nil)
	assert.ErrorContains(t, err, "denied")
}

func TestNewS3Uploader(t *testing.T) {
	u := NewS3Uploader(S3Config{Bucket: "b", Region: "us-east-1", Endpoint: "http://localhost:9000", AccessKeyID: "a", SecretAccessKey: "s"})
	assert.Equal(t, "b", u.bucket)
	assert.NotNil(t, u.client)
}
