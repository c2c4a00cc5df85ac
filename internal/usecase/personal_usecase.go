package usecase

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/fadilmartias/resume-builder/internal/model"
	"github.com/fadilmartias/resume-builder/internal/service"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrUnsupportedImage = errors.New("image must be a png, jpg, jpeg or gif file")

var allowedImageExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// IsAllowedImage checks the upload name against the accepted photo formats.
func IsAllowedImage(filename string) bool {
	return allowedImageExt[strings.ToLower(filepath.Ext(filename))]
}

type PersonalUsecase struct {
	sections *SectionUsecase[model.Personal]
	images   service.ImageStore
}

func NewPersonalUsecase(sections *SectionUsecase[model.Personal], images service.ImageStore) *PersonalUsecase {
	return &PersonalUsecase{sections: sections, images: images}
}

func (uc *PersonalUsecase) Exists(resumeID uint) (bool, error) {
	return uc.sections.Exists(resumeID)
}

func (uc *PersonalUsecase) Get(resumeID uint) (*model.Personal, error) {
	return uc.sections.Get(resumeID)
}

// Create stores the personal section and, when given, its photo.
func (uc *PersonalUsecase) Create(ctx context.Context, resumeID uint, personal *model.Personal, image *multipart.FileHeader) error {
	personal.ResumeID = resumeID
	if image == nil {
		return uc.sections.Create(resumeID, personal)
	}

	name, err := uc.storeImage(ctx, image)
	if err != nil {
		return err
	}
	personal.Image = name
	if err := uc.sections.Create(resumeID, personal); err != nil {
		personal.Image = ""
		uc.discardImage(ctx, name)
		return err
	}
	return nil
}

// Update saves personal. Without a new image the stored photo is kept.
func (uc *PersonalUsecase) Update(ctx context.Context, personal *model.Personal, image *multipart.FileHeader) error {
	if image == nil {
		return uc.sections.Update(personal)
	}

	name, err := uc.storeImage(ctx, image)
	if err != nil {
		return err
	}
	previous := personal.Image
	personal.Image = name
	if err := uc.sections.Update(personal); err != nil {
		personal.Image = previous
		uc.discardImage(ctx, name)
		return err
	}
	return nil
}

// ImageURL returns where the stored photo is served, or "" without one.
func (uc *PersonalUsecase) ImageURL(name string) string {
	if name == "" {
		return ""
	}
	return uc.images.URL(name)
}

// discardImage drops a photo whose row was never saved.
func (uc *PersonalUsecase) discardImage(ctx context.Context, name string) {
	if err := uc.images.Delete(ctx, name); err != nil {
		log.Warn().Err(err).Str("image", name).Msg("cannot remove unused image")
	}
}

func (uc *PersonalUsecase) storeImage(ctx context.Context, image *multipart.FileHeader) (string, error) {
	if !IsAllowedImage(image.Filename) {
		return "", ErrUnsupportedImage
	}

	f, err := image.Open()
	if err != nil {
		return "", fmt.Errorf("cannot open image: %w", err)
	}
	defer f.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(image.Filename))
	if err := uc.images.Save(ctx, name, f, image.Header.Get("Content-Type")); err != nil {
		return "", fmt.Errorf("cannot store image: %w", err)
	}
	return name, nil
}
