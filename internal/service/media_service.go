package service

import (
	"context"
	"mime/multipart"
	"path"
	"strconv"
	"strings"

	"Peakfuel/internal/api/dto"
	"Peakfuel/internal/pkg/consts"
	"Peakfuel/internal/pkg/minio"

	"github.com/google/uuid"
)

type MediaService interface {
	Upload(ctx context.Context, userID uint64, header *multipart.FileHeader) (*dto.MediaUploadDTO, error)
}

type mediaServiceImpl struct{}

func NewMediaService() MediaService {
	return &mediaServiceImpl{}
}

// Upload stores an image, video, or pdf object and returns its public URL.
func (s *mediaServiceImpl) Upload(ctx context.Context, userID uint64, header *multipart.FileHeader) (*dto.MediaUploadDTO, error) {
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) &&
		!strings.HasPrefix(contentType, consts.MimePrefixVideo) &&
		contentType != consts.MimePrefixPDF {
		return nil, ErrFileNotSupported
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	objectName := strconv.FormatUint(userID, 10) + "/" + uuid.NewString() + path.Ext(header.Filename)
	key, err := minio.UploadFile(ctx, objectName, file, header.Size, contentType)
	if err != nil {
		return nil, err
	}

	return &dto.MediaUploadDTO{
		MediaURL: minio.GetPublicURL(key),
		MimeType: contentType,
		Size:     header.Size,
	}, nil
}
