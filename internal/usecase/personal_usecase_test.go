package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"sync"
	"testing"

	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/repository"
	"github.com/fadilmartias/resume-builder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryImageStore struct {
	mu    sync.Mutex
	files map[string][]byte
}

func (s *memoryImageStore) Save(_ context.Context, name string, r io.Reader, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.files == nil {
		s.files = map[string][]byte{}
	}
	s.files[name] = data
	return nil
}

func (s *memoryImageStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, name)
	return nil
}

func (s *memoryImageStore) URL(name string) string {
	return "/uploads/" + name
}

// fileHeader builds an uploaded file the way net/http parses one.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func TestIsAllowedImage(t *testing.T) {
	for name, want := range map[string]bool{
		"me.png":    true,
		"me.JPG":    true,
		"me.jpeg":   true,
		"me.gif":    true,
		"me.webp":   false,
		"me":        false,
		"png":       false,
		"me.png.sh": false,
	} {
		assert.Equal(t, want, IsAllowedImage(name), name)
	}
}

func TestPersonalImageHandling(t *testing.T) {
	db := testutil.NewDB(t)
	store := &memoryImageStore{}
	uc := NewPersonalUsecase(NewSectionUsecase(repository.NewSectionRepository[model.Personal](db)), store)
	user := testutil.CreateUser(t, db, "alice")
	resume := testutil.CreateResume(t, db, user.ID, "cv")
	ctx := context.Background()

	personal := &model.Personal{Surname: "Doe", Name: "Jane", Gender: model.GenderFemale}
	require.NoError(t, uc.Create(ctx, resume.ID, personal, fileHeader(t, "Photo.PNG", []byte("png"))))
	require.NotEmpty(t, personal.Image)
	assert.Regexp(t, `^[0-9a-f-]{36}\.png$`, personal.Image)
	assert.Equal(t, []byte("png"), store.files[personal.Image])
	assert.Equal(t, "/uploads/"+personal.Image, uc.ImageURL(personal.Image))

	stored, err := uc.Get(resume.ID)
	require.NoError(t, err)
	image := stored.Image

	// no new upload keeps the photo
	stored.About = "hello"
	require.NoError(t, uc.Update(ctx, stored, nil))
	stored, err = uc.Get(resume.ID)
	require.NoError(t, err)
	assert.Equal(t, image, stored.Image)

	err = uc.Update(ctx, stored, fileHeader(t, "script.exe", []byte("x")))
	assert.True(t, errors.Is(err, ErrUnsupportedImage))
	assert.Len(t, store.files, 1)

	assert.Empty(t, uc.ImageURL(""))
}

func TestPersonalImageRemovedWhenSaveFails(t *testing.T) {
	db := testutil.NewDB(t)
	store := &memoryImageStore{}
	uc := NewPersonalUsecase(NewSectionUsecase(repository.NewSectionRepository[model.Personal](db)), store)
	user := testutil.CreateUser(t, db, "alice")
	resume := testutil.CreateResume(t, db, user.ID, "cv")
	ctx := context.Background()

	first := &model.Personal{Surname: "Doe", Name: "Jane", Gender: model.GenderFemale}
	require.NoError(t, uc.Create(ctx, resume.ID, first, fileHeader(t, "a.png", []byte("a"))))
	require.Len(t, store.files, 1)

	dup := &model.Personal{Surname: "Roe", Name: "Jim", Gender: model.GenderMale}
	err := uc.Create(ctx, resume.ID, dup, fileHeader(t, "b.png", []byte("b")))
	assert.True(t, errors.Is(err, ErrSectionExists))
	assert.Empty(t, dup.Image)
	assert.Len(t, store.files, 1)
	assert.Contains(t, store.files, first.Image)

	// violates the gender check, so the row is not written
	stored, err := uc.Get(resume.ID)
	require.NoError(t, err)
	stored.Gender = "other"
	require.Error(t, uc.Update(ctx, stored, fileHeader(t, "c.png", []byte("c"))))
	assert.Equal(t, first.Image, stored.Image)
	assert.Len(t, store.files, 1)
}
