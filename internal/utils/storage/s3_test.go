package storage

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBucket struct {
	objects map[string][]byte
	deleted []string
}

func (f *fakeBucket) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = body
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeBucket) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func fileHeader(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func TestUploadAndUpdate(t *testing.T) {
	bucket := &fakeBucket{objects: map[string][]byte{}}
	s := &awsS3{client: bucket, bucket: "mealgo", region: "ap-southeast-1"}
	ctx := context.Background()

	key, err := s.UploadFile(ctx, "recipe-1", fileHeader(t, "salad.PNG", "png"), "recipes", AllowImage...)
	require.NoError(t, err)
	assert.Equal(t, "recipes/recipe-1.png", key)
	assert.Equal(t, []byte("png"), bucket.objects[key])

	link := s.GetPublicLinkKey(key)
	assert.Equal(t, "https://mealgo.s3.ap-southeast-1.amazonaws.com/recipes/recipe-1.png", link)
	assert.Equal(t, key, s.GetObjectKeyFromLink(link))
	assert.Empty(t, s.GetObjectKeyFromLink("https://elsewhere.example.com/x.png"))

	newKey, err := s.UpdateFile(ctx, key, fileHeader(t, "salad.jpg", "jpg"), AllowImage...)
	require.NoError(t, err)
	assert.Equal(t, "recipes/recipe-1.jpg", newKey)
	assert.Equal(t, []string{key}, bucket.deleted)
}

func TestUploadRejectsExtension(t *testing.T) {
	s := &awsS3{client: &fakeBucket{objects: map[string][]byte{}}, bucket: "b", region: "r"}
	_, err := s.UploadFile(context.Background(), "x", fileHeader(t, "notes.txt", "hi"), "recipes", AllowImage...)
	assert.ErrorIs(t, err, ErrFileNotAllowed)
}

func TestDisabledStorage(t *testing.T) {
	s := &awsS3{}
	_, err := s.UploadFile(context.Background(), "x", fileHeader(t, "a.png", "a"), "recipes", AllowImage...)
	assert.ErrorIs(t, err, ErrStorageDisabled)
}
